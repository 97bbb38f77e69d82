//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"pharmago/internal/handlers/rest/assignment_cancel_post"
	"pharmago/internal/handlers/rest/assignment_complete_post"
	"pharmago/internal/handlers/rest/assignment_pickup_post"
	"pharmago/internal/handlers/rest/dispatch_run_post"
	"pharmago/internal/handlers/rest/order_post"
	"pharmago/internal/handlers/rest/orders_batch_post"
	"pharmago/internal/handlers/rest/rider_get"
	"pharmago/internal/handlers/rest/rider_location_put"
	"pharmago/internal/handlers/rest/rider_post"
	"pharmago/internal/handlers/rest/rider_put"
	"pharmago/internal/handlers/rest/riders_get"
	"pharmago/internal/handlers/tasks/assignment_cleanup"
	"pharmago/internal/handlers/tasks/order_dispatch"
	"pharmago/internal/pkg/config"
	"pharmago/internal/pkg/factory/assignment_deadline"
	"pharmago/internal/pkg/factory/order_handle"

	assignmentRepo "pharmago/internal/repository/assignment"
	orderRepo "pharmago/internal/repository/order"
	riderRepo "pharmago/internal/repository/rider"
	"pharmago/internal/repository/riderlocation"
	assignmentService "pharmago/internal/service/assignment"
	batchingService "pharmago/internal/service/batching"
	orderService "pharmago/internal/service/order"
	riderService "pharmago/internal/service/rider"

	"pharmago/pkg/background"
	"pharmago/pkg/logger"
	"pharmago/pkg/querier"
	"pharmago/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

type (
	DispatchInterval time.Duration
	CleanupInterval  time.Duration
)

type Application struct {
	ServiceRider      ServiceRider
	ServiceOrder      ServiceOrder
	ServiceBatching   ServiceBatching
	ServiceAssignment ServiceAssignment
	BackgroundWorkers *background.Worker
}

type ServiceRider interface {
	rider_get.Service
	rider_post.Service
	rider_put.Service
	riders_get.Service
	rider_location_put.Service
}

type ServiceOrder interface {
	order_post.Service
	orders_batch_post.OrderService
}

type ServiceBatching interface {
	dispatch_run_post.Service
	orders_batch_post.BatchingService
}

type ServiceAssignment interface {
	assignment_pickup_post.Service
	assignment_complete_post.Service
	assignment_cancel_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideDispatchInterval,
		provideCleanupInterval,
		provideBatchingConfig,

		provideRiderRepository,
		provideOrderRepository,
		provideAssignmentRepository,
		provideRiderLocationRepository,

		provideServiceRider,
		provideServiceAssignment,
		provideServiceBatching,
		provideStatusHandlerFactory,
		provideServiceOrder,
		assignment_deadline.New,

		provideOrderDispatchTask,
		provideAssignmentCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRider), new(*riderService.Rider)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceBatching), new(*batchingService.Batching)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),

		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(riderService.LocationStore), new(*riderlocation.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.Dispatcher), new(*batchingService.Batching)),
		wire.Bind(new(orderService.AssignmentService), new(*assignmentService.Assignment)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),
		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.RiderService), new(*riderService.Rider)),
		wire.Bind(new(batchingService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(batchingService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(batchingService.RiderRepository), new(*riderRepo.Repository)),
		wire.Bind(new(batchingService.RiderService), new(*riderService.Rider)),
		wire.Bind(new(batchingService.RiderLocator), new(*riderlocation.Repository)),
		wire.Bind(new(batchingService.DeadlineFactory), new(*assignment_deadline.AssignmentTimeFactory)),

		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(batchingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_dispatch.Service), new(*batchingService.Batching)),
		wire.Bind(new(assignment_cleanup.Service), new(*assignmentService.Assignment)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideBatchingConfig,

		provideRiderRepository,
		provideOrderRepository,
		provideAssignmentRepository,
		provideRiderLocationRepository,

		provideServiceRider,
		provideServiceAssignment,
		provideServiceBatching,
		provideStatusHandlerFactory,
		provideServiceOrder,
		assignment_deadline.New,

		wire.Bind(new(riderService.Repository), new(*riderRepo.Repository)),
		wire.Bind(new(riderService.LocationStore), new(*riderlocation.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.Dispatcher), new(*batchingService.Batching)),
		wire.Bind(new(orderService.AssignmentService), new(*assignmentService.Assignment)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),
		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.RiderService), new(*riderService.Rider)),
		wire.Bind(new(batchingService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(batchingService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(batchingService.RiderRepository), new(*riderRepo.Repository)),
		wire.Bind(new(batchingService.RiderService), new(*riderService.Rider)),
		wire.Bind(new(batchingService.RiderLocator), new(*riderlocation.Repository)),
		wire.Bind(new(batchingService.DeadlineFactory), new(*assignment_deadline.AssignmentTimeFactory)),

		wire.Bind(new(riderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(batchingService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideRiderRepository(querier *querier.Querier) *riderRepo.Repository {
	return riderRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideRiderLocationRepository(client *goredis.Client, cfg *config.Config) *riderlocation.Repository {
	return riderlocation.New(client, cfg.Redis.RiderLocationTTL)
}

func provideServiceRider(
	repository riderService.Repository,
	locationStore riderService.LocationStore,
	txManager riderService.TxManager,
) *riderService.Rider {
	return riderService.New(repository, locationStore, txManager)
}

func provideServiceAssignment(
	repository assignmentService.Repository,
	orderRepository assignmentService.OrderRepository,
	riders assignmentService.RiderService,
	txManager assignmentService.TxManager,
) *assignmentService.Assignment {
	return assignmentService.New(repository, orderRepository, riders, txManager)
}

func provideBatchingConfig(cfg *config.Config) batchingService.Config {
	return batchingService.Config{
		PharmacyProximityKm:    cfg.Batching.PharmacyProximityKm,
		DestinationProximityKm: cfg.Batching.DestinationProximityKm,
		TimeWindow:             cfg.Batching.TimeWindow,
		MaxBatchSize:           cfg.Batching.MaxBatchSize,
	}
}

func provideServiceBatching(
	log logger.Logger,
	orderRepository batchingService.OrderRepository,
	assignmentRepository batchingService.AssignmentRepository,
	riderRepository batchingService.RiderRepository,
	riders batchingService.RiderService,
	riderLocator batchingService.RiderLocator,
	deadlineFactory batchingService.DeadlineFactory,
	txManager batchingService.TxManager,
	cfg batchingService.Config,
) (*batchingService.Batching, error) {
	return batchingService.New(
		log,
		orderRepository,
		assignmentRepository,
		riderRepository,
		riders,
		riderLocator,
		deadlineFactory,
		txManager,
		cfg,
	)
}

func provideStatusHandlerFactory(
	dispatcher orderService.Dispatcher,
	assignments orderService.AssignmentService,
) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(dispatcher, assignments)
}

func provideServiceOrder(
	repository orderService.Repository,
	statusFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(repository, statusFactory)
}

func provideDispatchInterval(cfg *config.Config) DispatchInterval {
	return DispatchInterval(cfg.Tasks.DispatchInterval)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.AssignmentCleanupInterval)
}

func provideOrderDispatchTask(
	log logger.Logger,
	dispatcher order_dispatch.Service,
	interval DispatchInterval,
) *order_dispatch.OrderDispatch {
	return order_dispatch.NewOrderDispatch(log, dispatcher, time.Duration(interval))
}

func provideAssignmentCleanupTask(
	log logger.Logger,
	assignments assignment_cleanup.Service,
	interval CleanupInterval,
) *assignment_cleanup.AssignmentCleanup {
	return assignment_cleanup.NewAssignmentCleanup(log, assignments, time.Duration(interval))
}

func provideTaskList(
	orderDispatchTask *order_dispatch.OrderDispatch,
	assignmentCleanupTask *assignment_cleanup.AssignmentCleanup,
) []background.Task {
	return []background.Task{
		orderDispatchTask,
		assignmentCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
