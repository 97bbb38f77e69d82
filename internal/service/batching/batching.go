package batching

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"pharmago/internal/entities"
	"pharmago/internal/geo"
	"pharmago/pkg/logger"
)

type Batching struct {
	log             logger.Logger
	orderRepo       OrderRepository
	assignmentRepo  AssignmentRepository
	riderRepo       RiderRepository
	riderService    RiderService
	riderLocator    RiderLocator
	deadlineFactory DeadlineFactory
	txManager       TxManager
	cfg             Config
}

func New(
	log logger.Logger,
	orderRepo OrderRepository,
	assignmentRepo AssignmentRepository,
	riderRepo RiderRepository,
	riderService RiderService,
	riderLocator RiderLocator,
	deadlineFactory DeadlineFactory,
	txManager TxManager,
	cfg Config,
) (*Batching, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Batching{
		log:             log.With(),
		orderRepo:       orderRepo,
		assignmentRepo:  assignmentRepo,
		riderRepo:       riderRepo,
		riderService:    riderService,
		riderLocator:    riderLocator,
		deadlineFactory: deadlineFactory,
		txManager:       txManager,
		cfg:             cfg,
	}, nil
}

// CanBatchOrders проверяет, можно ли везти два заказа одной поездкой.
// Все три условия (близость аптек, близость адресов доставки, окно готовности)
// конъюнктивны: "близкие аптеки, далёкие адреса" никогда не группируются.
func CanBatchOrders(a, b entities.Order, cfg Config) (bool, error) {
	if a.Status != entities.OrderReadyForPickup || b.Status != entities.OrderReadyForPickup {
		return false, ErrOrderNotReady
	}
	if a.PharmacyLocation == nil || a.DeliveryLocation == nil ||
		b.PharmacyLocation == nil || b.DeliveryLocation == nil {
		return false, geo.ErrInvalidCoordinate
	}

	pharmaciesClose, err := geo.IsWithinRange(*a.PharmacyLocation, *b.PharmacyLocation, cfg.PharmacyProximityKm)
	if err != nil {
		return false, err
	}
	if !pharmaciesClose {
		return false, nil
	}

	destinationsClose, err := geo.IsWithinRange(*a.DeliveryLocation, *b.DeliveryLocation, cfg.DestinationProximityKm)
	if err != nil {
		return false, err
	}
	if !destinationsClose {
		return false, nil
	}

	readyDelta := a.ReadyAt.Sub(b.ReadyAt)
	if readyDelta < 0 {
		readyDelta = -readyDelta
	}

	return readyDelta <= cfg.TimeWindow, nil
}

// ExcludedOrder — заказ, выброшенный из прохода группировки
// (невалидные координаты, неподходящий статус). Повторяется на следующем проходе.
type ExcludedOrder struct {
	OrderID string
	Reason  error
}

// FindBatchableOrders разбивает пул готовых заказов на группы жадной
// кластеризацией: пул обходится по возрастанию ReadyAt (затем ID — для
// детерминизма), каждый свободный заказ открывает группу, и в неё добавляется
// любой заказ, совместимый с КАЖДЫМ уже включённым (транзитивная близость,
// а не близость только к seed). Группа растёт до cfg.MaxBatchSize.
//
// Результат — точное разбиение валидной части пула: каждый валидный заказ
// попадает ровно в одну группу, одиночки — это группы размера 1. Невалидные
// заказы возвращаются отдельно и из прохода исключаются, не прерывая его.
func FindBatchableOrders(pool []entities.Order, cfg Config) ([][]entities.Order, []ExcludedOrder) {
	valid := make([]entities.Order, 0, len(pool))
	excluded := make([]ExcludedOrder, 0)

	for _, order := range pool {
		if err := validateForBatching(order); err != nil {
			excluded = append(excluded, ExcludedOrder{OrderID: order.ID, Reason: err})
			continue
		}
		valid = append(valid, order)
	}

	sort.Slice(valid, func(i, j int) bool {
		if !valid[i].ReadyAt.Equal(valid[j].ReadyAt) {
			return valid[i].ReadyAt.Before(valid[j].ReadyAt)
		}
		return valid[i].ID < valid[j].ID
	})

	groups := make([][]entities.Order, 0, len(valid))
	grouped := make(map[string]bool, len(valid))

	for i, seed := range valid {
		if grouped[seed.ID] {
			continue
		}

		group := []entities.Order{seed}
		grouped[seed.ID] = true

		for j := i + 1; j < len(valid); j++ {
			if len(group) >= cfg.MaxBatchSize {
				break
			}

			candidate := valid[j]
			if grouped[candidate.ID] {
				continue
			}

			if fitsGroup(candidate, group, cfg) {
				group = append(group, candidate)
				grouped[candidate.ID] = true
			}
		}

		groups = append(groups, group)
	}

	return groups, excluded
}

// fitsGroup требует совместимости кандидата с каждым участником группы,
// чтобы география поездки оставалась компактной.
func fitsGroup(candidate entities.Order, group []entities.Order, cfg Config) bool {
	for _, member := range group {
		ok, err := CanBatchOrders(candidate, member, cfg)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

func validateForBatching(order entities.Order) error {
	if order.Status != entities.OrderReadyForPickup {
		return fmt.Errorf("%w: order %s has status %s", ErrOrderNotReady, order.ID, order.Status)
	}
	if order.PharmacyLocation == nil || !order.PharmacyLocation.InRange() ||
		order.DeliveryLocation == nil || !order.DeliveryLocation.InRange() {
		return fmt.Errorf("%w: order %s", geo.ErrInvalidCoordinate, order.ID)
	}
	return nil
}

// CreateBatchAssignment выбирает райдера для группы и атомарно создаёт
// назначение: запись RiderAssignment, переход заказов в assigned и перевод
// райдера в busy происходят в одной транзакции.
func (b *Batching) CreateBatchAssignment(
	ctx context.Context,
	group []entities.Order,
	candidates []entities.RiderCandidate,
) (*entities.BatchAssignment, error) {
	if len(group) == 0 {
		return nil, ErrEmptyGroup
	}
	for _, order := range group {
		if err := validateForBatching(order); err != nil {
			return nil, err
		}
	}

	rider, err := selectNearestRider(*group[0].PharmacyLocation, len(group), candidates)
	if err != nil {
		return nil, err
	}

	assignTime := time.Now().UTC()
	deadline := b.deadlineFactory.CalculateDeadline(rider.VehicleType, len(group), assignTime)

	orderIDs := make([]string, 0, len(group))
	for _, order := range group {
		orderIDs = append(orderIDs, order.ID)
	}

	batchAssignment := entities.BatchAssignment{}

	err = b.txManager.Do(ctx, func(ctx context.Context) error {
		pendingStatus := entities.AssignmentPendingPickup
		assignmentModify := entities.AssignmentModify{
			RiderID:    &rider.ID,
			OrderIDs:   orderIDs,
			Status:     &pendingStatus,
			AssignedAt: &assignTime,
			Deadline:   &deadline,
		}

		assignment, err := b.assignmentRepo.Create(ctx, assignmentModify)
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		for _, order := range group {
			if !entities.CanTransitionOrder(order.Status, entities.OrderAssigned) {
				return fmt.Errorf("%w: order %s cannot move to assigned", ErrOrderNotReady, order.ID)
			}
			err := b.orderRepo.UpdateStatus(ctx, order.ID, entities.OrderAssigned, &rider.ID)
			if err != nil {
				return fmt.Errorf("update order %s status: %w", order.ID, err)
			}
		}

		busyStatus := entities.RiderBusy
		riderModify := entities.RiderModify{
			ID:     &rider.ID,
			Status: &busyStatus,
		}
		updatedRider, err := b.riderService.UpdateRider(ctx, riderModify)
		if err != nil {
			return fmt.Errorf("update rider status: %w", err)
		}

		batchAssignment = entities.BatchAssignment{
			AssignmentID: assignment.ID,
			RiderID:      updatedRider.ID,
			OrderIDs:     orderIDs,
			AssignedAt:   assignment.AssignedAt,
			Deadline:     assignment.Deadline,
			VehicleType:  updatedRider.VehicleType,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &batchAssignment, nil
}

// selectNearestRider выбирает кандидата с достаточной вместимостью,
// ближайшего к аптеке первого забора. Равные дистанции разрешаются
// по возрастанию ID райдера.
func selectNearestRider(
	firstPickup entities.GeoPoint,
	groupSize int,
	candidates []entities.RiderCandidate,
) (*entities.Rider, error) {
	var best *entities.RiderCandidate
	var bestDistance float64

	for i := range candidates {
		candidate := candidates[i]
		if candidate.Rider.Capacity < groupSize || candidate.Location == nil {
			continue
		}

		distance, err := geo.DistanceKm(firstPickup, *candidate.Location)
		if err != nil {
			continue
		}

		switch {
		case best == nil,
			distance < bestDistance,
			distance == bestDistance && candidate.Rider.ID < best.Rider.ID:
			best = &candidates[i]
			bestDistance = distance
		}
	}

	if best == nil {
		return nil, ErrNoAvailableRider
	}
	return &best.Rider, nil
}

// DispatchResult — сводка одного прохода диспетчеризации.
type DispatchResult struct {
	Assignments      []entities.BatchAssignment
	UnassignedGroups int
	ExcludedOrders   int
}

// DispatchPass выполняет один проход: снимок пула готовых заказов,
// группировка, независимое назначение райдера каждой группе. Ошибка
// назначения одной группы не останавливает остальные; группа без райдера
// остаётся в пуле и будет повторена на следующем проходе.
//
// Конкурентные проходы не предполагаются: внешний слой (background task)
// сериализует вызовы.
func (b *Batching) DispatchPass(ctx context.Context) (*DispatchResult, error) {
	pool, err := b.orderRepo.GetUnassignedByStatus(ctx, entities.OrderReadyForPickup)
	if err != nil {
		return nil, fmt.Errorf("load ready orders: %w", err)
	}

	groups, excludedOrders := FindBatchableOrders(pool, b.cfg)
	for _, excluded := range excludedOrders {
		b.log.With(
			logger.NewField("order", excluded.OrderID),
			logger.NewField("reason", excluded.Reason),
		).Warn("order excluded from dispatch pass")
	}

	result := DispatchResult{
		Assignments:    make([]entities.BatchAssignment, 0, len(groups)),
		ExcludedOrders: len(excludedOrders),
	}

	for _, group := range groups {
		candidates, err := b.riderCandidates(ctx, len(group))
		if err != nil {
			return &result, fmt.Errorf("load rider candidates: %w", err)
		}

		assignment, err := b.CreateBatchAssignment(ctx, group, candidates)
		if err != nil {
			if errors.Is(err, ErrNoAvailableRider) {
				result.UnassignedGroups++
				b.log.With(
					logger.NewField("group_size", len(group)),
					logger.NewField("first_order", group[0].ID),
				).Warn("no available rider for group, will retry next pass")
				continue
			}

			result.UnassignedGroups++
			b.log.With(
				logger.NewField("first_order", group[0].ID),
				logger.NewField("error", err),
			).Error("group assignment failed")
			continue
		}

		result.Assignments = append(result.Assignments, *assignment)
	}

	return &result, nil
}

// BatchOrders группирует и назначает явно перечисленные заказы — ручной
// триггер для админов и аптек. Заказы обязаны быть готовы к забору и
// совместимы попарно.
func (b *Batching) BatchOrders(ctx context.Context, orders []entities.Order) (*entities.BatchAssignment, error) {
	if len(orders) == 0 {
		return nil, ErrEmptyGroup
	}
	if len(orders) > b.cfg.MaxBatchSize {
		return nil, fmt.Errorf("%w: group of %d exceeds max batch size %d", ErrInvalidConfig, len(orders), b.cfg.MaxBatchSize)
	}

	for i := range orders {
		for j := i + 1; j < len(orders); j++ {
			ok, err := CanBatchOrders(orders[i], orders[j], b.cfg)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("%w: %s and %s", ErrNotBatchable, orders[i].ID, orders[j].ID)
			}
		}
	}

	candidates, err := b.riderCandidates(ctx, len(orders))
	if err != nil {
		return nil, fmt.Errorf("load rider candidates: %w", err)
	}

	return b.CreateBatchAssignment(ctx, orders, candidates)
}

func (b *Batching) riderCandidates(ctx context.Context, minCapacity int) ([]entities.RiderCandidate, error) {
	riders, err := b.riderRepo.GetAvailableWithCapacity(ctx, minCapacity)
	if err != nil {
		return nil, err
	}

	candidates := make([]entities.RiderCandidate, 0, len(riders))
	for _, rider := range riders {
		location, err := b.riderLocator.Location(ctx, rider.ID)
		if err != nil {
			b.log.With(
				logger.NewField("rider", rider.ID),
				logger.NewField("error", err),
			).Warn("rider location unavailable, skipping candidate")
			continue
		}

		candidates = append(candidates, entities.RiderCandidate{
			Rider:    rider,
			Location: location,
		})
	}

	return candidates, nil
}
