package contracts

// CellUpdate is the webhook payload for one changed cell.
type CellUpdate struct {
	CellId string `json:"cell_id"`
	Cell
}

type WebhookDispatcher interface {
	// SetWebhookUrl subscribes a cell to change notifications. An
	// empty url removes the subscription.
	SetWebhookUrl(cellId string, webhookUrl string)
	GetWebhookUrl(cellId string) string

	// Notify queues updates for subscribed cells whose value changed
	// since the last notification.
	Notify(updates []*CellUpdate)

	Start()
	Close()
}
