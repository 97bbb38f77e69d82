package rider

import "time"

type RiderDB struct {
	ID          int64
	Name        string
	Phone       string
	Status      string
	VehicleType string
	Capacity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RiderModifyDB struct {
	ID          *int64
	Name        *string
	Phone       *string
	Status      *string
	VehicleType *string
	Capacity    *int
}
