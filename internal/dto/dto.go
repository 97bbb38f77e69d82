// Package dto описывает JSON-схемы REST API.
package dto

import "time"

type (
	RiderCreate struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Status      string `json:"status"`
		VehicleType string `json:"vehicle_type"`
		Capacity    int    `json:"capacity"`
	}

	RiderCreateResponse struct {
		ID int64 `json:"id"`
	}

	RiderUpdate struct {
		ID          int64   `json:"id"`
		Name        *string `json:"name,omitempty"`
		Phone       *string `json:"phone,omitempty"`
		Status      *string `json:"status,omitempty"`
		VehicleType *string `json:"vehicle_type,omitempty"`
		Capacity    *int    `json:"capacity,omitempty"`
	}

	Rider struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		Status      string `json:"status"`
		VehicleType string `json:"vehicle_type"`
		Capacity    int    `json:"capacity"`
	}

	RiderLocationUpdate struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}

	GeoPoint struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}

	OrderCreate struct {
		ID               string    `json:"id"`
		PharmacyLocation GeoPoint  `json:"pharmacy_location"`
		DeliveryLocation GeoPoint  `json:"delivery_location"`
		ReadyAt          time.Time `json:"ready_at,omitzero"`
	}

	Order struct {
		ID               string    `json:"id"`
		Status           string    `json:"status"`
		PharmacyLocation *GeoPoint `json:"pharmacy_location,omitempty"`
		DeliveryLocation *GeoPoint `json:"delivery_location,omitempty"`
		ReadyAt          time.Time `json:"ready_at"`
		RiderID          *int64    `json:"rider_id,omitempty"`
	}

	BatchOrdersRequest struct {
		OrderIDs []string `json:"order_ids"`
	}

	Assignment struct {
		ID         int64     `json:"id"`
		RiderID    int64     `json:"rider_id"`
		OrderIDs   []string  `json:"order_ids"`
		Status     string    `json:"status"`
		AssignedAt time.Time `json:"assigned_at"`
		Deadline   time.Time `json:"deadline"`
	}

	BatchAssignment struct {
		AssignmentID int64     `json:"assignment_id"`
		RiderID      int64     `json:"rider_id"`
		OrderIDs     []string  `json:"order_ids"`
		AssignedAt   time.Time `json:"assigned_at"`
		Deadline     time.Time `json:"deadline"`
		VehicleType  string    `json:"vehicle_type"`
	}

	PingResponse struct {
		Message *string `json:"message,omitempty"`
	}

	DispatchRunResponse struct {
		Assignments      []BatchAssignment `json:"assignments"`
		UnassignedGroups int               `json:"unassigned_groups"`
		ExcludedOrders   int               `json:"excluded_orders"`
	}
)
