package app

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gasline/internal/gateway/kafka/orderevents"
	"gasline/internal/handlers/rest/driver_get"
	"gasline/internal/handlers/rest/driver_post"
	"gasline/internal/handlers/rest/driver_put"
	"gasline/internal/handlers/rest/drivers_get"
	"gasline/internal/handlers/rest/order_active_get"
	"gasline/internal/handlers/rest/order_assign_post"
	"gasline/internal/handlers/rest/order_cancel_post"
	"gasline/internal/handlers/rest/order_confirm_post"
	"gasline/internal/handlers/rest/order_post"
	"gasline/internal/handlers/rest/order_transition_post"
	"gasline/internal/handlers/rest/pos_eligibility_get"
	"gasline/internal/handlers/tasks/driver_presence"
	"gasline/internal/handlers/tasks/order_dispatch"
	"gasline/internal/pkg/config"
	"gasline/internal/pkg/factory/driver_score"
	driverRepo "gasline/internal/repository/driver"
	orderRepo "gasline/internal/repository/order"
	userRepo "gasline/internal/repository/user"
	dispatchService "gasline/internal/service/dispatch"
	driverService "gasline/internal/service/driver"
	orderService "gasline/internal/service/order"
	paymentService "gasline/internal/service/payment"
	"gasline/pkg/background"
	"gasline/pkg/logger"
	"gasline/pkg/querier"
	retrierconfig "gasline/pkg/retrier"
	"gasline/pkg/retrier/backoff_adapter"
	"gasline/pkg/tx"
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceDispatch   ServiceDispatch
	ServiceDriver     ServiceDriver
	ServicePayment    ServicePayment
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_active_get.Service
	order_transition_post.Service
	order_cancel_post.Service
	order_confirm_post.Service
}

type ServiceDispatch interface {
	order_assign_post.Service
}

type ServiceDriver interface {
	driver_post.Service
	driver_put.Service
	driver_get.Service
	drivers_get.Service
}

type ServicePayment interface {
	pos_eligibility_get.Service
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Service
}

// Conflict retry budget. Serializable transactions under assignment
// contention fail fast, the retrier absorbs short bursts.
const (
	retryInitialInterval = 50 * time.Millisecond
	retryMaxInterval     = 500 * time.Millisecond
	retryMaxElapsedTime  = 2 * time.Second
	retryRandomization   = 0.5
	retryMultiplier      = 2.0
	retryMaxAttempts     = 3
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideOrderEventsGateway(producer sarama.SyncProducer, cfg *config.Config, log logger.Logger) *orderevents.Gateway {
	return orderevents.New(producer, cfg.Kafka.ProducerTopic, log)
}

func provideServiceDriver(
	repository *driverRepo.Repository,
	users *userRepo.Repository,
	txManager *tx.Manager,
) *driverService.Service {
	return driverService.New(repository, users, txManager)
}

func provideServicePayment(orders *orderRepo.Repository) *paymentService.Service {
	return paymentService.New(orders)
}

func provideServiceOrder(
	repository *orderRepo.Repository,
	drivers *driverService.Service,
	posPolicy *paymentService.Service,
	events *orderevents.Gateway,
	txManager *tx.Manager,
) *orderService.Service {
	return orderService.New(
		repository,
		drivers,
		posPolicy,
		events,
		txManager,
		newConflictRetrier(func(err error) bool {
			return errors.Is(err, orderService.ErrConcurrentModification)
		}),
	)
}

func provideServiceDispatch(
	orders *orderRepo.Repository,
	drivers *driverRepo.Repository,
	scorer *driver_score.ScoreFactory,
	events *orderevents.Gateway,
	txManager *tx.Manager,
	cfg *config.Config,
) *dispatchService.Service {
	return dispatchService.New(
		orders,
		drivers,
		scorer,
		events,
		txManager,
		newConflictRetrier(func(err error) bool {
			return errors.Is(err, dispatchService.ErrConcurrentModification)
		}),
		cfg.Dispatch.AssignMaxRetries,
	)
}

func provideOrderDispatchTask(
	log logger.Logger,
	dispatchSvc *dispatchService.Service,
	cfg *config.Config,
) *order_dispatch.OrderDispatch {
	return order_dispatch.NewOrderDispatch(log, dispatchSvc, cfg.Tasks.OrderDispatchInterval)
}

func provideDriverPresenceTask(
	log logger.Logger,
	driverSvc *driverService.Service,
	cfg *config.Config,
) *driver_presence.DriverPresence {
	return driver_presence.NewDriverPresence(
		log,
		driverSvc,
		cfg.Tasks.DriverPresenceInterval,
		cfg.Tasks.DriverOfflineAfter,
	)
}

func provideTaskList(
	orderDispatchTask *order_dispatch.OrderDispatch,
	driverPresenceTask *driver_presence.DriverPresence,
) []background.Task {
	return []background.Task{
		orderDispatchTask,
		driverPresenceTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func newConflictRetrier(shouldRetry retrierconfig.ShouldRetryFunc) *backoff_adapter.Retrier {
	return backoff_adapter.New(retrierconfig.Config{
		InitialInterval: retryInitialInterval,
		MaxInterval:     retryMaxInterval,
		MaxElapsedTime:  retryMaxElapsedTime,
		MaxRetries:      retryMaxAttempts,
		Randomization:   retryRandomization,
		Multiplier:      retryMultiplier,
		ShouldRetry:     shouldRetry,
	})
}
