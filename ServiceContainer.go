package main

import (
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"

	"gridSheetCalc/contracts"
)

type ServiceContainer struct {
	Database          *bbolt.DB
	GridCalculator    contracts.GridCalculator
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer(configDbPath string) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(configDbPath, 0600, nil)
	serializer := NewSheetBinarySerializer()

	container.GridCalculator = NewGridCalculator()
	container.WebhookDispatcher = NewWebhookDispatcher()
	container.SheetRepository = NewSheetRepository(container.Database, container.GridCalculator, serializer, container.WebhookDispatcher)
	container.ApiController = NewApiController(container.SheetRepository, container.GridCalculator, container.WebhookDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return
}
