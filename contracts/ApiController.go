package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	EvaluateAction(c *gin.Context)
	CreateSheetAction(c *gin.Context)
	SetSheetAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
