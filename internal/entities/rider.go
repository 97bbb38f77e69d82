package entities

import (
	"time"
)

type Rider struct {
	ID          int64
	Name        string
	Phone       string
	Status      RiderStatusType
	VehicleType RiderVehicleType
	Capacity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RiderVehicleType string

const (
	Bicycle    RiderVehicleType = "bicycle"
	Motorcycle RiderVehicleType = "motorcycle"
	Car        RiderVehicleType = "car"
)

const DefaultVehicleType = Motorcycle

func (t RiderVehicleType) String() string {
	return string(t)
}

type RiderStatusType string

const (
	RiderAvailable RiderStatusType = "available"
	RiderBusy      RiderStatusType = "busy"
	RiderOffline   RiderStatusType = "offline"
)

const DefaultRiderStatus = RiderOffline

func (t RiderStatusType) String() string {
	return string(t)
}

type RiderModify struct {
	ID          *int64
	Name        *string
	Phone       *string
	Status      *RiderStatusType
	VehicleType *RiderVehicleType
	Capacity    *int
}

// RiderCandidate объединяет доступного райдера с его последней известной
// позицией. Райдер без позиции не участвует в назначении.
type RiderCandidate struct {
	Rider    Rider
	Location *GeoPoint
}
