package assignment_deadline

import (
	"time"

	"pharmago/internal/entities"
)

// AssignmentTimeFactory считает дедлайн забора партии: база зависит от
// транспорта райдера, каждый дополнительный заказ в партии добавляет время
// на точку забора.
type AssignmentTimeFactory struct{}

func New() *AssignmentTimeFactory {
	return &AssignmentTimeFactory{}
}

const perExtraOrder = 10 * time.Minute

func (d *AssignmentTimeFactory) CalculateDeadline(vehicleType entities.RiderVehicleType, batchSize int, baseTime time.Time) time.Time {
	resultTime := baseTime
	switch vehicleType {
	case entities.Bicycle:
		resultTime = resultTime.Add(time.Minute * 30)
	case entities.Motorcycle:
		resultTime = resultTime.Add(time.Minute * 15)
	case entities.Car:
		resultTime = resultTime.Add(time.Minute * 20)
	default:
		resultTime = resultTime.Add(time.Minute * 30)
	}

	if batchSize > 1 {
		resultTime = resultTime.Add(time.Duration(batchSize-1) * perExtraOrder)
	}

	return resultTime
}
