package order

import "time"

type OrderDB struct {
	ID          string
	Status      string
	PharmacyLat *float64
	PharmacyLng *float64
	DeliveryLat *float64
	DeliveryLng *float64
	ReadyAt     time.Time
	RiderID     *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderModifyDB struct {
	ID          *string
	Status      *string
	PharmacyLat *float64
	PharmacyLng *float64
	DeliveryLat *float64
	DeliveryLng *float64
	ReadyAt     *time.Time
	RiderID     *int64
}
