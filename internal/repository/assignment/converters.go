package assignment

import "pharmago/internal/entities"

func ToDomain(a *AssignmentDB) *entities.RiderAssignment {
	if a == nil {
		return nil
	}
	return &entities.RiderAssignment{
		ID:         a.ID,
		RiderID:    a.RiderID,
		OrderIDs:   a.OrderIDs,
		Status:     entities.AssignmentStatusType(a.Status),
		AssignedAt: a.AssignedAt,
		Deadline:   a.Deadline,
		CreatedAt:  a.CreatedAt,
	}
}

func FromDomainModify(a *entities.AssignmentModify) *AssignmentModifyDB {
	if a == nil {
		return nil
	}
	assignmentDB := &AssignmentModifyDB{
		OrderIDs: a.OrderIDs,
	}

	if a.ID != nil {
		assignmentDB.ID = a.ID
	}
	if a.RiderID != nil {
		assignmentDB.RiderID = a.RiderID
	}
	if a.Status != nil {
		statusType := a.Status.String()
		assignmentDB.Status = &statusType
	}
	if a.AssignedAt != nil {
		assignmentDB.AssignedAt = a.AssignedAt
	}
	if a.Deadline != nil {
		assignmentDB.Deadline = a.Deadline
	}

	return assignmentDB
}
