package order

import (
	"pharmago/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:        o.ID,
		Status:    entities.OrderStatusType(o.Status),
		ReadyAt:   o.ReadyAt,
		RiderID:   o.RiderID,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	// точка либо задана целиком, либо отсутствует
	if o.PharmacyLat != nil && o.PharmacyLng != nil {
		orderEntity.PharmacyLocation = &entities.GeoPoint{Lat: *o.PharmacyLat, Lng: *o.PharmacyLng}
	}
	if o.DeliveryLat != nil && o.DeliveryLng != nil {
		orderEntity.DeliveryLocation = &entities.GeoPoint{Lat: *o.DeliveryLat, Lng: *o.DeliveryLng}
	}

	return orderEntity
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.Status != nil {
		statusType := orderModify.Status.String()
		orderDB.Status = &statusType
	}
	if orderModify.PharmacyLocation != nil {
		orderDB.PharmacyLat = &orderModify.PharmacyLocation.Lat
		orderDB.PharmacyLng = &orderModify.PharmacyLocation.Lng
	}
	if orderModify.DeliveryLocation != nil {
		orderDB.DeliveryLat = &orderModify.DeliveryLocation.Lat
		orderDB.DeliveryLng = &orderModify.DeliveryLocation.Lng
	}
	if orderModify.ReadyAt != nil {
		orderDB.ReadyAt = orderModify.ReadyAt
	}
	if orderModify.RiderID != nil {
		orderDB.RiderID = orderModify.RiderID
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
