package rider

import (
	"context"
	"fmt"

	"pharmago/internal/entities"
)

type Rider struct {
	repository    Repository
	locationStore LocationStore
	txManager     TxManager
}

func New(repository Repository, locationStore LocationStore, txManager TxManager) *Rider {
	return &Rider{
		repository:    repository,
		locationStore: locationStore,
		txManager:     txManager,
	}
}

func (s *Rider) CreateRider(ctx context.Context, riderModify entities.RiderModify) (int64, error) {
	if riderModify.Name == nil ||
		riderModify.Phone == nil ||
		riderModify.Status == nil ||
		riderModify.VehicleType == nil ||
		riderModify.Capacity == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*riderModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*riderModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidStatus(riderModify.Status.String()) {
		return 0, ErrInvalidStatus
	}
	if !isValidVehicle(riderModify.VehicleType.String()) {
		return 0, ErrInvalidVehicle
	}
	if !isValidCapacity(*riderModify.Capacity) {
		return 0, ErrInvalidCapacity
	}

	id, err := s.repository.Create(ctx, riderModify)
	if err != nil {
		return 0, fmt.Errorf("create rider: %w", err)
	}

	return id, nil
}

func (s *Rider) UpdateRider(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error) {
	if riderModify.Name == nil &&
		riderModify.Phone == nil &&
		riderModify.Status == nil &&
		riderModify.VehicleType == nil &&
		riderModify.Capacity == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if riderModify.Name != nil && !isValidName(*riderModify.Name) {
		return nil, ErrInvalidName
	}
	if riderModify.Phone != nil && !isValidPhone(*riderModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if riderModify.Status != nil && !isValidStatus(riderModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if riderModify.VehicleType != nil && !isValidVehicle(riderModify.VehicleType.String()) {
		return nil, ErrInvalidVehicle
	}
	if riderModify.Capacity != nil && !isValidCapacity(*riderModify.Capacity) {
		return nil, ErrInvalidCapacity
	}

	rider, err := s.repository.Update(ctx, riderModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update rider: %w", err)
	}
	return rider, nil
}

func (s *Rider) GetRider(ctx context.Context, id int64) (*entities.Rider, error) {
	rider, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rider: %w", err)
	}

	return rider, nil
}

func (s *Rider) GetRiders(ctx context.Context) ([]entities.Rider, error) {
	riders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get riders: %w", err)
	}

	return riders, nil
}

// UpdateLocation сохраняет текущую позицию райдера. Позиция живёт
// в Redis с TTL: протухшая позиция выводит райдера из кандидатов назначения.
func (s *Rider) UpdateLocation(ctx context.Context, riderID int64, location entities.GeoPoint) error {
	if riderID <= 0 {
		return ErrInvalidRiderID
	}
	if !location.InRange() {
		return ErrInvalidLocation
	}

	if _, err := s.repository.GetByID(ctx, riderID); err != nil {
		return fmt.Errorf("failed to get rider: %w", err)
	}

	if err := s.locationStore.SetLocation(ctx, riderID, location); err != nil {
		return fmt.Errorf("failed to store rider location: %w", err)
	}
	return nil
}

// Location отдаёт последнюю известную позицию райдера.
func (s *Rider) Location(ctx context.Context, riderID int64) (*entities.GeoPoint, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}

	location, err := s.locationStore.Location(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rider location: %w", err)
	}
	return location, nil
}

// GetAvailableWithCapacity отдаёт свободных райдеров, способных взять
// партию из minCapacity заказов.
func (s *Rider) GetAvailableWithCapacity(ctx context.Context, minCapacity int) ([]entities.Rider, error) {
	if minCapacity < 1 {
		return nil, ErrInvalidCapacity
	}

	riders, err := s.repository.GetAvailableWithCapacity(ctx, minCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to get available riders: %w", err)
	}
	return riders, nil
}
