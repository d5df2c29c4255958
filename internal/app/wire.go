//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"gasline/internal/pkg/config"
	"gasline/internal/pkg/factory/driver_score"
	dispatchService "gasline/internal/service/dispatch"
	driverService "gasline/internal/service/driver"
	orderService "gasline/internal/service/order"
	paymentService "gasline/internal/service/payment"
	"gasline/pkg/logger"
)

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideDriverRepository,
		provideUserRepository,

		driver_score.New,
		provideOrderEventsGateway,

		provideServiceDriver,
		provideServicePayment,
		provideServiceOrder,
		provideServiceDispatch,

		provideOrderDispatchTask,
		provideDriverPresenceTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Service)),
		wire.Bind(new(ServiceDriver), new(*driverService.Service)),
		wire.Bind(new(ServicePayment), new(*paymentService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp wires the payment status worker
// (cmd/worker-payment-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideOrderRepository,
		provideServicePayment,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
