package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gridSheetCalc/contracts"
)

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	GridCalculator    contracts.GridCalculator
	WebhookDispatcher contracts.WebhookDispatcher
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type GridRequest struct {
	Grid string `json:"grid" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required"`
}

type SheetResponse struct {
	SheetId string `json:"sheet_id"`
	Grid    string `json:"grid"`
	Result  string `json:"result"`
}

func NewApiController(
	sheetRepository contracts.SheetRepository,
	gridCalculator contracts.GridCalculator,
	webhookDispatcher contracts.WebhookDispatcher,
) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		GridCalculator:    gridCalculator,
		WebhookDispatcher: webhookDispatcher,
	}
}

func (api *ApiController) EvaluateAction(c *gin.Context) {
	request := GridRequest{}
	response := &contracts.Sheet{}

	err := c.ShouldBindJSON(&request)

	if err == nil {
		response.Grid = request.Grid
		response.Result, err = api.GridCalculator.Calculate(request.Grid)
	}

	if err != nil {
		response.Result = err.Error()
		c.JSON(http.StatusUnprocessableEntity, response)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) CreateSheetAction(c *gin.Context) {
	request := GridRequest{}
	var sheet *contracts.Sheet

	sheetId := uuid.NewString()

	err := c.ShouldBindJSON(&request)
	if err == nil {
		sheet, err = api.SheetRepository.SetSheet(sheetId, request.Grid)
	}

	api.renderSetSheet(c, sheetId, request, sheet, err)
}

func (api *ApiController) SetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := GridRequest{}
	var sheet *contracts.Sheet

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		sheet, err = api.SheetRepository.SetSheet(params.SheetId, request.Grid)
	}

	api.renderSetSheet(c, params.SheetId, request, sheet, err)
}

func (api *ApiController) renderSetSheet(c *gin.Context, sheetId string, request GridRequest, sheet *contracts.Sheet, err error) {
	response := &SheetResponse{SheetId: strings.ToLower(sheetId), Grid: request.Grid}

	if err != nil {
		response.Result = err.Error()
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	response.Grid = sheet.Grid
	response.Result = sheet.Result
	c.JSON(http.StatusCreated, response)
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response *contracts.Sheet

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetSheet(params.SheetId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(strings.ToLower(params.SheetId), request.WebhookUrl)
	c.Status(http.StatusNoContent)
}
