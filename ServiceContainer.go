package main

import (
	"github.com/gin-gonic/gin"

	"github.com/Shu-ler/SpreadSheet/contracts"
)

type ServiceContainer struct {
	FormulaParser     contracts.FormulaParser
	Sheet             contracts.Sheet
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer() (container ServiceContainer) {
	container.FormulaParser = NewFormulaParser()
	container.Sheet = NewSheet(container.FormulaParser)
	container.WebhookDispatcher = NewWebhookDispatcher()
	container.SheetRepository = NewSheetRepository(container.Sheet, container.WebhookDispatcher)
	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return
}
