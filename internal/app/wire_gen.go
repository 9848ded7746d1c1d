// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"engine/internal/handlers/tasks/capacity_reconciliation"
	"engine/internal/handlers/tasks/hold_expiry"
	"engine/internal/handlers/tasks/payment_expiry"
	"engine/internal/handlers/tasks/status_backfill"
	"engine/internal/notifier"
	"engine/internal/pkg/config"
	"engine/internal/pkg/factory/return_hold"
	"engine/internal/pkg/factory/route_pricing"
	"engine/internal/repository"
	admintask2 "engine/internal/repository/admintask"
	assignment2 "engine/internal/repository/assignment"
	capacity2 "engine/internal/repository/capacity"
	eventlog2 "engine/internal/repository/eventlog"
	manifest2 "engine/internal/repository/manifest"
	payment2 "engine/internal/repository/payment"
	returns2 "engine/internal/repository/returns"
	shipment2 "engine/internal/repository/shipment"
	"engine/internal/service/admintask"
	"engine/internal/service/assignment"
	"engine/internal/service/capacity"
	"engine/internal/service/eventlog"
	"engine/internal/service/manifest"
	"engine/internal/service/payment"
	"engine/internal/service/returns"
	"engine/internal/service/shipment"
	"engine/pkg/background"
	"engine/pkg/logger"
	"engine/pkg/querier"
	"engine/pkg/retrier"
	"engine/pkg/retrier/backoff_adapter"
	"engine/pkg/tx"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"time"
)

// Injectors from wire.go:

func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, producer sarama.SyncProducer, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideShipmentRepository(querier)
	eventlogRepository := provideEventLogRepository(querier)
	admintaskRepository := provideAdminTaskRepository(querier)
	manager := provideTxManager(pool)
	queue := provideAdminQueue(admintaskRepository, manager)
	recorder := provideEventRecorder(eventlogRepository, queue)
	assignmentRepository := provideAssignmentRepository(querier)
	capacityRepository := provideCapacityRepository(querier)
	retrier := provideConflictRetrier()
	tracker := provideCapacityTracker(capacityRepository, queue, manager, retrier)
	coordinator := provideAssignmentCoordinator(assignmentRepository, tracker, manager, retrier)
	paymentRepository := providePaymentRepository(querier)
	ledger := providePaymentLedger(paymentRepository, manager, retrier)
	manifestRepository := provideManifestRepository(querier)
	consolidator := provideManifestConsolidator(manifestRepository, manager, retrier)
	routePricingFactory := route_pricing.New()
	notifier := provideNotifier(log, producer, cfg)
	machine := provideShipmentMachine(repository, recorder, coordinator, ledger, consolidator, tracker, queue, routePricingFactory, routePricingFactory, notifier, manager, retrier)
	returnsRepository := provideReturnsRepository(querier)
	holdPolicyFactory := return_hold.New()
	returnsManager := provideReturnManager(returnsRepository, machine, holdPolicyFactory, queue, manager, retrier)
	paymentExpiry := providePaymentExpiryTask(log, ledger, cfg)
	holdExpiry := provideHoldExpiryTask(log, returnsManager, cfg)
	capacityReconciliation := provideCapacityReconciliationTask(log, tracker, cfg)
	statusBackfill := provideStatusBackfillTask(log, machine, cfg)
	v := provideTaskList(paymentExpiry, holdExpiry, capacityReconciliation, statusBackfill)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ShipmentMachine:       machine,
		AssignmentCoordinator: coordinator,
		CapacityTracker:       tracker,
		PaymentLedger:         ledger,
		ManifestConsolidator:  consolidator,
		ReturnManager:         returnsManager,
		EventRecorder:         recorder,
		AdminQueue:            queue,
		BackgroundWorkers:     worker,
	}
	return application, nil
}

// wire.go:

type Application struct {
	ShipmentMachine       *shipment.Machine
	AssignmentCoordinator *assignment.Coordinator
	CapacityTracker       *capacity.Tracker
	PaymentLedger         *payment.Ledger
	ManifestConsolidator  *manifest.Consolidator
	ReturnManager         *returns.Manager
	EventRecorder         *eventlog.Recorder
	AdminQueue            *admintask.Queue
	BackgroundWorkers     *background.Worker
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

// provideConflictRetrier: конфликт сериализации или гонка check-then-insert
// повторяется ровно один раз, затем ошибка уходит вызывающему.
func provideConflictRetrier() *backoff_adapter.Retrier {
	return backoff_adapter.New(retrier.Config{
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     200 * time.Millisecond,
		MaxElapsedTime:  2 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      1,
		ShouldRetry: func(err error) bool {
			return repository.IsRetryableConflict(err) || repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation)
		},
	})
}

func provideNotifier(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *notifier.Notifier {
	return notifier.New(log, producer, cfg.Kafka.Topic)
}

func provideShipmentRepository(querier2 *querier.Querier) *shipment2.Repository {
	return shipment2.New(querier2)
}

func provideAssignmentRepository(querier2 *querier.Querier) *assignment2.Repository {
	return assignment2.New(querier2)
}

func provideCapacityRepository(querier2 *querier.Querier) *capacity2.Repository {
	return capacity2.New(querier2)
}

func providePaymentRepository(querier2 *querier.Querier) *payment2.Repository {
	return payment2.New(querier2)
}

func provideManifestRepository(querier2 *querier.Querier) *manifest2.Repository {
	return manifest2.New(querier2)
}

func provideReturnsRepository(querier2 *querier.Querier) *returns2.Repository {
	return returns2.New(querier2)
}

func provideAdminTaskRepository(querier2 *querier.Querier) *admintask2.Repository {
	return admintask2.New(querier2)
}

func provideEventLogRepository(querier2 *querier.Querier) *eventlog2.Repository {
	return eventlog2.New(querier2)
}

func provideAdminQueue(repository2 admintask.Repository,

	txManager admintask.TxManager,
) *admintask.Queue {
	return admintask.New(repository2, txManager)
}

func provideEventRecorder(repository2 eventlog.Repository,

	adminTasks eventlog.AdminTasks,
) *eventlog.Recorder {
	return eventlog.New(repository2, adminTasks)
}

func provideCapacityTracker(repository2 capacity.Repository,

	adminTasks capacity.AdminTasks,
	txManager capacity.TxManager, retrier2 capacity.Retrier,

) *capacity.Tracker {
	return capacity.New(repository2, adminTasks, txManager, retrier2)
}

func provideAssignmentCoordinator(repository2 assignment.Repository, capacity3 assignment.CapacityService,

	txManager assignment.TxManager, retrier2 assignment.Retrier,

) *assignment.Coordinator {
	return assignment.New(repository2, capacity3, txManager, retrier2)
}

func providePaymentLedger(repository2 payment.Repository,

	txManager payment.TxManager, retrier2 payment.Retrier,

) *payment.Ledger {
	return payment.New(repository2, txManager, retrier2)
}

func provideManifestConsolidator(repository2 manifest.Repository,

	txManager manifest.TxManager, retrier2 manifest.Retrier,

) *manifest.Consolidator {
	return manifest.New(repository2, txManager, retrier2)
}

func provideShipmentMachine(
	repo shipment.Repository,
	eventLog shipment.EventLog,
	assignments shipment.Assignments,
	payments shipment.Payments,
	manifests shipment.Manifests, capacity3 shipment.Capacity,

	adminTasks shipment.AdminTasks,
	routes shipment.RouteResolver,
	pricing shipment.PricingService, notifier2 shipment.Notifier,

	txManager shipment.TxManager, retrier2 shipment.Retrier,

) *shipment.Machine {
	return shipment.New(
		repo,
		eventLog,
		assignments,
		payments,
		manifests, capacity3, adminTasks,
		routes,
		pricing, notifier2, txManager, retrier2,
	)
}

func provideReturnManager(repository2 returns.Repository,

	shipments returns.ShipmentService,
	holdPolicy returns.HoldPolicy,
	adminTasks returns.AdminTasks,
	txManager returns.TxManager, retrier2 returns.Retrier,

) *returns.Manager {
	return returns.New(repository2, shipments,
		holdPolicy,
		adminTasks,
		txManager, retrier2,
	)
}

func providePaymentExpiryTask(
	log logger.Logger,
	paymentLedger payment_expiry.Service,
	cfg *config.Config,
) *payment_expiry.PaymentExpiry {
	return payment_expiry.NewPaymentExpiry(log, paymentLedger, cfg.Tasks.PaymentExpiryInterval, cfg.Tasks.PaymentExpiryBatch)
}

func provideHoldExpiryTask(
	log logger.Logger,
	returnManager hold_expiry.Service,
	cfg *config.Config,
) *hold_expiry.HoldExpiry {
	return hold_expiry.NewHoldExpiry(log, returnManager, cfg.Tasks.HoldExpiryInterval, cfg.Tasks.HoldExpiryBatch)
}

func provideCapacityReconciliationTask(
	log logger.Logger,
	capacityTracker capacity_reconciliation.Service,
	cfg *config.Config,
) *capacity_reconciliation.CapacityReconciliation {
	return capacity_reconciliation.NewCapacityReconciliation(log, capacityTracker, cfg.Tasks.CapacityReconcileInterval)
}

func provideStatusBackfillTask(
	log logger.Logger,
	shipmentMachine status_backfill.Service,
	cfg *config.Config,
) *status_backfill.StatusBackfill {
	return status_backfill.NewStatusBackfill(log, shipmentMachine, cfg.Tasks.StatusBackfillInterval, cfg.Tasks.StatusBackfillChunk)
}

func provideTaskList(
	paymentExpiryTask *payment_expiry.PaymentExpiry,
	holdExpiryTask *hold_expiry.HoldExpiry,
	capacityReconciliationTask *capacity_reconciliation.CapacityReconciliation,
	statusBackfillTask *status_backfill.StatusBackfill,
) []background.Task {
	return []background.Task{
		paymentExpiryTask,
		holdExpiryTask,
		capacityReconciliationTask,
		statusBackfillTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
