package assignment

import "time"

type AssignmentDB struct {
	ID         int64
	RiderID    int64
	OrderIDs   []string
	Status     string
	AssignedAt time.Time
	Deadline   time.Time
	CreatedAt  time.Time
}

type AssignmentModifyDB struct {
	ID         *int64
	RiderID    *int64
	OrderIDs   []string
	Status     *string
	AssignedAt *time.Time
	Deadline   *time.Time
}
