package entities

import "time"

// RiderAssignment привязывает одного райдера к партии заказов (batch)
// или к одиночному заказу. Порядок OrderIDs задаёт последовательность забора.
type RiderAssignment struct {
	ID         int64
	RiderID    int64
	OrderIDs   []string
	Status     AssignmentStatusType
	AssignedAt time.Time
	Deadline   time.Time
	CreatedAt  time.Time
}

type AssignmentStatusType string

const (
	AssignmentPendingPickup AssignmentStatusType = "pending_pickup"
	AssignmentInProgress    AssignmentStatusType = "in_progress"
	AssignmentCompleted     AssignmentStatusType = "completed"
	AssignmentCancelled     AssignmentStatusType = "cancelled"
)

func (s AssignmentStatusType) String() string {
	return string(s)
}

func (s AssignmentStatusType) IsActive() bool {
	return s == AssignmentPendingPickup || s == AssignmentInProgress
}

var assignmentTransitions = map[AssignmentStatusType][]AssignmentStatusType{
	AssignmentPendingPickup: {AssignmentInProgress, AssignmentCancelled},
	AssignmentInProgress:    {AssignmentCompleted, AssignmentCancelled},
}

func CanTransitionAssignment(from, to AssignmentStatusType) bool {
	for _, allowed := range assignmentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type AssignmentModify struct {
	ID         *int64
	RiderID    *int64
	OrderIDs   []string
	Status     *AssignmentStatusType
	AssignedAt *time.Time
	Deadline   *time.Time
}

// BatchAssignment — результат назначения партии, отдаётся наружу
// (handlers, kafka-handler) после успешной транзакции.
type BatchAssignment struct {
	AssignmentID int64
	RiderID      int64
	OrderIDs     []string
	AssignedAt   time.Time
	Deadline     time.Time
	VehicleType  RiderVehicleType
}
