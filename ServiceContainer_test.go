package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildServiceContainer(t *testing.T) {
	container := BuildServiceContainer()

	assert.NotNil(t, container.FormulaParser)
	assert.NotNil(t, container.Sheet)
	assert.NotNil(t, container.SheetRepository)
	assert.NotNil(t, container.WebhookDispatcher)
	assert.NotNil(t, container.ApiController)
	assert.NotNil(t, container.Router)
}
