package main

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	json "github.com/bytedance/sonic"

	"github.com/Shu-ler/SpreadSheet/contracts"
)

const WebhookWorkersCount = 5

type WebhookSendCommand struct {
	Webhook string
	Update  *contracts.CellUpdate
}

// WebhookDispatcher pushes cell updates to subscribed webhook urls.
// Filtering and change detection run synchronously on Notify; the
// HTTP deliveries drain through a worker pool.
type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	webhooks map[string]string
	lastSent map[string]string
}

func NewWebhookDispatcher() *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		webhooks: map[string]string{},
		lastSent: map[string]string{},
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(cellId string, webhookUrl string) {
	if webhookUrl == "" {
		delete(manager.webhooks, cellId)
		delete(manager.lastSent, cellId)
	} else {
		manager.webhooks[cellId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(cellId string) string {
	return manager.webhooks[cellId]
}

func (manager *WebhookDispatcher) Notify(updates []*contracts.CellUpdate) {
	pending := make([]WebhookSendCommand, 0, len(updates))

	for _, update := range updates {
		webhook, subscribed := manager.webhooks[update.CellId]
		if !subscribed {
			continue
		}

		if previous, sent := manager.lastSent[update.CellId]; sent && previous == update.Result {
			continue
		}
		manager.lastSent[update.CellId] = update.Result

		pending = append(pending, WebhookSendCommand{Webhook: webhook, Update: update})
	}

	if len(pending) == 0 {
		return
	}

	go manager.addToQueue(pending)
}

func (manager *WebhookDispatcher) addToQueue(pending []WebhookSendCommand) {
	for _, command := range pending {
		manager.queue <- command
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	for command := range manager.queue {
		payload, _ := json.Marshal(command.Update)
		response, err := client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			fmt.Printf("Webhook send error: %s\n", err)
		} else if response.StatusCode >= 300 {
			fmt.Printf("Unexpected webhook response HTTP status: %s\n", response.Status)
		}
	}
}
