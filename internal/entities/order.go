package entities

import "time"

type Order struct {
	ID               string
	Status           OrderStatusType
	PharmacyLocation *GeoPoint
	DeliveryLocation *GeoPoint
	ReadyAt          time.Time
	RiderID          *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "pending"
	OrderPaid           OrderStatusType = "paid"
	OrderReadyForPickup OrderStatusType = "ready_for_pickup"
	OrderBatched        OrderStatusType = "batched"
	OrderAssigned       OrderStatusType = "assigned"
	OrderInTransit      OrderStatusType = "in_transit"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// orderTransitions перечисляет допустимые переходы статуса заказа.
// Всё, чего здесь нет, отклоняется централизованно.
var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderPending:        {OrderPaid, OrderCancelled},
	OrderPaid:           {OrderReadyForPickup, OrderCancelled},
	OrderReadyForPickup: {OrderBatched, OrderAssigned, OrderCancelled},
	OrderBatched:        {OrderAssigned, OrderCancelled},
	OrderAssigned:       {OrderInTransit, OrderCancelled},
	OrderInTransit:      {OrderDelivered},
}

func CanTransitionOrder(from, to OrderStatusType) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type OrderModify struct {
	ID               *string
	Status           *OrderStatusType
	PharmacyLocation *GeoPoint
	DeliveryLocation *GeoPoint
	ReadyAt          *time.Time
	RiderID          *int64
}
