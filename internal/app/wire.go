//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"engine/internal/handlers/tasks/capacity_reconciliation"
	"engine/internal/handlers/tasks/hold_expiry"
	"engine/internal/handlers/tasks/payment_expiry"
	"engine/internal/handlers/tasks/status_backfill"
	"engine/internal/notifier"
	"engine/internal/pkg/config"
	"engine/internal/pkg/factory/return_hold"
	"engine/internal/pkg/factory/route_pricing"
	"engine/internal/repository"

	admintaskRepo "engine/internal/repository/admintask"
	assignmentRepo "engine/internal/repository/assignment"
	capacityRepo "engine/internal/repository/capacity"
	eventlogRepo "engine/internal/repository/eventlog"
	manifestRepo "engine/internal/repository/manifest"
	paymentRepo "engine/internal/repository/payment"
	returnsRepo "engine/internal/repository/returns"
	shipmentRepo "engine/internal/repository/shipment"

	admintaskService "engine/internal/service/admintask"
	assignmentService "engine/internal/service/assignment"
	capacityService "engine/internal/service/capacity"
	eventlogService "engine/internal/service/eventlog"
	manifestService "engine/internal/service/manifest"
	paymentService "engine/internal/service/payment"
	returnsService "engine/internal/service/returns"
	shipmentService "engine/internal/service/shipment"

	"engine/pkg/background"
	"engine/pkg/logger"
	"engine/pkg/querier"
	retrierconfig "engine/pkg/retrier"
	"engine/pkg/retrier/backoff_adapter"
	"engine/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ShipmentMachine       *shipmentService.Machine
	AssignmentCoordinator *assignmentService.Coordinator
	CapacityTracker       *capacityService.Tracker
	PaymentLedger         *paymentService.Ledger
	ManifestConsolidator  *manifestService.Consolidator
	ReturnManager         *returnsService.Manager
	EventRecorder         *eventlogService.Recorder
	AdminQueue            *admintaskService.Queue
	BackgroundWorkers     *background.Worker
}

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
		provideConflictRetrier,
		provideNotifier,

		provideShipmentRepository,
		provideAssignmentRepository,
		provideCapacityRepository,
		providePaymentRepository,
		provideManifestRepository,
		provideReturnsRepository,
		provideAdminTaskRepository,
		provideEventLogRepository,

		provideAdminQueue,
		provideEventRecorder,
		provideCapacityTracker,
		provideAssignmentCoordinator,
		providePaymentLedger,
		provideManifestConsolidator,
		provideShipmentMachine,
		provideReturnManager,
		return_hold.New,
		route_pricing.New,

		providePaymentExpiryTask,
		provideHoldExpiryTask,
		provideCapacityReconciliationTask,
		provideStatusBackfillTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.EventLog), new(*eventlogService.Recorder)),
		wire.Bind(new(shipmentService.Assignments), new(*assignmentService.Coordinator)),
		wire.Bind(new(shipmentService.Payments), new(*paymentService.Ledger)),
		wire.Bind(new(shipmentService.Manifests), new(*manifestService.Consolidator)),
		wire.Bind(new(shipmentService.Capacity), new(*capacityService.Tracker)),
		wire.Bind(new(shipmentService.AdminTasks), new(*admintaskService.Queue)),
		wire.Bind(new(shipmentService.RouteResolver), new(*route_pricing.RoutePricingFactory)),
		wire.Bind(new(shipmentService.PricingService), new(*route_pricing.RoutePricingFactory)),
		wire.Bind(new(shipmentService.Notifier), new(*notifier.Notifier)),

		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(assignmentService.CapacityService), new(*capacityService.Tracker)),

		wire.Bind(new(capacityService.Repository), new(*capacityRepo.Repository)),
		wire.Bind(new(capacityService.AdminTasks), new(*admintaskService.Queue)),

		wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),

		wire.Bind(new(manifestService.Repository), new(*manifestRepo.Repository)),

		wire.Bind(new(returnsService.Repository), new(*returnsRepo.Repository)),
		wire.Bind(new(returnsService.ShipmentService), new(*shipmentService.Machine)),
		wire.Bind(new(returnsService.HoldPolicy), new(*return_hold.HoldPolicyFactory)),
		wire.Bind(new(returnsService.AdminTasks), new(*admintaskService.Queue)),

		wire.Bind(new(eventlogService.Repository), new(*eventlogRepo.Repository)),
		wire.Bind(new(eventlogService.AdminTasks), new(*admintaskService.Queue)),

		wire.Bind(new(admintaskService.Repository), new(*admintaskRepo.Repository)),

		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(capacityService.TxManager), new(*tx.Manager)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(manifestService.TxManager), new(*tx.Manager)),
		wire.Bind(new(returnsService.TxManager), new(*tx.Manager)),
		wire.Bind(new(admintaskService.TxManager), new(*tx.Manager)),

		wire.Bind(new(shipmentService.Retrier), new(*backoff_adapter.Retrier)),
		wire.Bind(new(assignmentService.Retrier), new(*backoff_adapter.Retrier)),
		wire.Bind(new(capacityService.Retrier), new(*backoff_adapter.Retrier)),
		wire.Bind(new(paymentService.Retrier), new(*backoff_adapter.Retrier)),
		wire.Bind(new(manifestService.Retrier), new(*backoff_adapter.Retrier)),
		wire.Bind(new(returnsService.Retrier), new(*backoff_adapter.Retrier)),

		wire.Bind(new(payment_expiry.Service), new(*paymentService.Ledger)),
		wire.Bind(new(hold_expiry.Service), new(*returnsService.Manager)),
		wire.Bind(new(capacity_reconciliation.Service), new(*capacityService.Tracker)),
		wire.Bind(new(status_backfill.Service), new(*shipmentService.Machine)),
	)
	return &Application{}, nil
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
	return backoff_adapter.New(retrierconfig.Config{
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     200 * time.Millisecond,
		MaxElapsedTime:  2 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      1,
		ShouldRetry: func(err error) bool {
			return repository.IsRetryableConflict(err) ||
				repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation)
		},
	})
}

func provideNotifier(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *notifier.Notifier {
	return notifier.New(log, producer, cfg.Kafka.Topic)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideCapacityRepository(querier *querier.Querier) *capacityRepo.Repository {
	return capacityRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideManifestRepository(querier *querier.Querier) *manifestRepo.Repository {
	return manifestRepo.New(querier)
}

func provideReturnsRepository(querier *querier.Querier) *returnsRepo.Repository {
	return returnsRepo.New(querier)
}

func provideAdminTaskRepository(querier *querier.Querier) *admintaskRepo.Repository {
	return admintaskRepo.New(querier)
}

func provideEventLogRepository(querier *querier.Querier) *eventlogRepo.Repository {
	return eventlogRepo.New(querier)
}

func provideAdminQueue(
	repository admintaskService.Repository,
	txManager admintaskService.TxManager,
) *admintaskService.Queue {
	return admintaskService.New(repository, txManager)
}

func provideEventRecorder(
	repository eventlogService.Repository,
	adminTasks eventlogService.AdminTasks,
) *eventlogService.Recorder {
	return eventlogService.New(repository, adminTasks)
}

func provideCapacityTracker(
	repository capacityService.Repository,
	adminTasks capacityService.AdminTasks,
	txManager capacityService.TxManager,
	retrier capacityService.Retrier,
) *capacityService.Tracker {
	return capacityService.New(repository, adminTasks, txManager, retrier)
}

func provideAssignmentCoordinator(
	repository assignmentService.Repository,
	capacity assignmentService.CapacityService,
	txManager assignmentService.TxManager,
	retrier assignmentService.Retrier,
) *assignmentService.Coordinator {
	return assignmentService.New(repository, capacity, txManager, retrier)
}

func providePaymentLedger(
	repository paymentService.Repository,
	txManager paymentService.TxManager,
	retrier paymentService.Retrier,
) *paymentService.Ledger {
	return paymentService.New(repository, txManager, retrier)
}

func provideManifestConsolidator(
	repository manifestService.Repository,
	txManager manifestService.TxManager,
	retrier manifestService.Retrier,
) *manifestService.Consolidator {
	return manifestService.New(repository, txManager, retrier)
}

func provideShipmentMachine(
	repo shipmentService.Repository,
	eventLog shipmentService.EventLog,
	assignments shipmentService.Assignments,
	payments shipmentService.Payments,
	manifests shipmentService.Manifests,
	capacity shipmentService.Capacity,
	adminTasks shipmentService.AdminTasks,
	routes shipmentService.RouteResolver,
	pricing shipmentService.PricingService,
	notifier shipmentService.Notifier,
	txManager shipmentService.TxManager,
	retrier shipmentService.Retrier,
) *shipmentService.Machine {
	return shipmentService.New(
		repo,
		eventLog,
		assignments,
		payments,
		manifests,
		capacity,
		adminTasks,
		routes,
		pricing,
		notifier,
		txManager,
		retrier,
	)
}

func provideReturnManager(
	repository returnsService.Repository,
	shipments returnsService.ShipmentService,
	holdPolicy returnsService.HoldPolicy,
	adminTasks returnsService.AdminTasks,
	txManager returnsService.TxManager,
	retrier returnsService.Retrier,
) *returnsService.Manager {
	return returnsService.New(
		repository,
		shipments,
		holdPolicy,
		adminTasks,
		txManager,
		retrier,
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
