package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gridSheetCalc/contracts"
)

const ApiVersion = "v1"

const evaluatePath = "evaluate"
const sheetsPath = "sheets"
const subscribePath = "subscribe"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/"+evaluatePath, controller.EvaluateAction)
	apiRouterGroup.POST("/"+sheetsPath, controller.CreateSheetAction)
	apiRouterGroup.POST("/"+sheetsPath+"/:sheet_id", controller.SetSheetAction)
	apiRouterGroup.GET("/"+sheetsPath+"/:sheet_id", controller.GetSheetAction)
	apiRouterGroup.POST("/"+sheetsPath+"/:sheet_id/"+subscribePath, controller.SubscribeAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
