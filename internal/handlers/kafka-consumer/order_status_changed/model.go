package order_status_changed

// createdEvent — тело сообщения топика order.status.changed.
type createdEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
