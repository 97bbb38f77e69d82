package rider

import (
	"pharmago/internal/entities"
)

func ToDomain(r *RiderDB) *entities.Rider {
	if r == nil {
		return nil
	}

	return &entities.Rider{
		ID:          r.ID,
		Name:        r.Name,
		Phone:       r.Phone,
		Status:      entities.RiderStatusType(r.Status),
		VehicleType: entities.RiderVehicleType(r.VehicleType),
		Capacity:    r.Capacity,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromDomainModify(riderModify *entities.RiderModify) *RiderModifyDB {
	if riderModify == nil {
		return nil
	}
	riderDB := &RiderModifyDB{}

	if riderModify.ID != nil {
		riderDB.ID = riderModify.ID
	}
	if riderModify.Name != nil {
		riderDB.Name = riderModify.Name
	}
	if riderModify.Phone != nil {
		riderDB.Phone = riderModify.Phone
	}
	if riderModify.Status != nil {
		statusType := riderModify.Status.String()
		riderDB.Status = &statusType
	}
	if riderModify.VehicleType != nil {
		vehicleType := riderModify.VehicleType.String()
		riderDB.VehicleType = &vehicleType
	}
	if riderModify.Capacity != nil {
		riderDB.Capacity = riderModify.Capacity
	}

	return riderDB
}

func ToDomainList(ridersDB []RiderDB) []entities.Rider {
	if len(ridersDB) == 0 {
		return []entities.Rider{}
	}

	result := make([]entities.Rider, len(ridersDB))
	for i, riderDB := range ridersDB {
		result[i] = *ToDomain(&riderDB)
	}
	return result
}
