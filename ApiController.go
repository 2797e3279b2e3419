package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shu-ler/SpreadSheet/contracts"
)

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
}

type CellEndpointParams struct {
	CellId string `uri:"cell_id" binding:"required"`
}

type SetCellRequest struct {
	Value string `json:"value"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required"`
}

type SheetResponse struct {
	Size  contracts.Size      `json:"size"`
	Cells *contracts.CellList `json:"cells"`
}

func NewApiController(sheetRepository contracts.SheetRepository, dispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		WebhookDispatcher: dispatcher,
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		response, err = api.SheetRepository.SetCell(params.CellId, request.Value)
	}

	if err != nil {
		if response == nil {
			response = &contracts.Cell{}
		}
		response.Value = request.Value
		response.Result = err.Error()
		c.JSON(http.StatusUnprocessableEntity, response)
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCell(params.CellId)
	}

	if errors.Is(err, contracts.CellNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, contracts.InvalidPositionError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) ClearCellAction(c *gin.Context) {
	params := CellEndpointParams{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = api.SheetRepository.ClearCell(params.CellId)
	}

	if errors.Is(err, contracts.InvalidPositionError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	cells, err := api.SheetRepository.GetCellList()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SheetResponse{
		Size:  api.SheetRepository.GetPrintableSize(),
		Cells: cells,
	})
}

func (api *ApiController) PrintValuesAction(c *gin.Context) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Status(http.StatusOK)
	_ = api.SheetRepository.PrintValues(c.Writer)
}

func (api *ApiController) PrintTextsAction(c *gin.Context) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Status(http.StatusOK)
	_ = api.SheetRepository.PrintTexts(c.Writer)
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if !contracts.PositionFromString(params.CellId).IsValid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": contracts.InvalidPositionError.Error()})
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(params.CellId, request.WebhookUrl)
	c.Status(http.StatusNoContent)
}
