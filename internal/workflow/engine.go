//go:generate mockgen -source ./engine.go -destination=./mocks/engine.go -package=mock_workflow
package workflow

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/centrominero/gil/internal/cache"
	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/repository"
)

type EquipmentRepository interface {
	Create(ctx context.Context, eq *repository.Equipment) error
	GetByID(ctx context.Context, id int64) (*repository.Equipment, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Equipment, error)
	UpdateTx(ctx context.Context, tx db.Tx, eq *repository.Equipment) error
	ListAvailable(ctx context.Context) ([]*repository.Equipment, error)
	ListInService(ctx context.Context) ([]*repository.Equipment, error)
}

type LoanRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, loan *repository.Loan) error
	GetByID(ctx context.Context, id int64) (*repository.Loan, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Loan, error)
	UpdateTx(ctx context.Context, tx db.Tx, loan *repository.Loan) error
	ListActive(ctx context.Context, requesterID int64) ([]*repository.Loan, error)
	ExistsOverlappingTx(ctx context.Context, tx db.Tx, equipmentID int64, start, end time.Time) (bool, error)
	CountActiveTx(ctx context.Context, tx db.Tx, equipmentID int64) (int, error)
}

type MaintenanceRepository interface {
	GetTypeByID(ctx context.Context, id int64) (*repository.MaintenanceType, error)
	ListPreventiveTypes(ctx context.Context) ([]*repository.MaintenanceType, error)
	CreateRecordTx(ctx context.Context, tx db.Tx, rec *repository.MaintenanceRecord) error
	LastRecord(ctx context.Context, equipmentID, typeID int64) (*repository.MaintenanceRecord, error)
	ListByEquipment(ctx context.Context, equipmentID int64) ([]*repository.MaintenanceRecord, error)
}

type AlertRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, alert *repository.Alert) error
	GetByID(ctx context.Context, id int64) (*repository.Alert, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Alert, error)
	UpdateTx(ctx context.Context, tx db.Tx, alert *repository.Alert) error
	ListPending(ctx context.Context) ([]*repository.Alert, error)
	FindOpenForPairTx(ctx context.Context, tx db.Tx, equipmentID, typeID int64) (*repository.Alert, error)
	ListOpenByEquipmentTx(ctx context.Context, tx db.Tx, equipmentID int64) ([]*repository.Alert, error)
}

type OutboxRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
}

type Config struct {
	LeadWindowDays int
	RetryAttempts  int
	RetryBackoff   time.Duration
	AlertTopic     string
}

func (c Config) withDefaults() Config {
	if c.LeadWindowDays <= 0 {
		c.LeadWindowDays = 7
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = 3
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 50 * time.Millisecond
	}
	if c.AlertTopic == "" {
		c.AlertTopic = "alertas_notificaciones"
	}
	return c
}

func (c Config) leadWindow() time.Duration {
	return time.Duration(c.LeadWindowDays) * 24 * time.Hour
}

// Engine implements the equipment lifecycle and loan/maintenance workflow.
// It owns no state: every operation is a transactional read-modify-write
// against the store, serialized per equipment by row locks.
type Engine struct {
	db        db.DB
	equipment EquipmentRepository
	loans     LoanRepository
	maint     MaintenanceRepository
	alerts    AlertRepository
	outbox    OutboxRepository
	clock     Clock
	cfg       Config
	cache     *cache.EquipmentCache
	logger    *zap.Logger
}

func NewEngine(
	database db.DB,
	equipment EquipmentRepository,
	loans LoanRepository,
	maint MaintenanceRepository,
	alerts AlertRepository,
	outbox OutboxRepository,
	clock Clock,
	cfg Config,
	logger *zap.Logger,
) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		db:        database,
		equipment: equipment,
		loans:     loans,
		maint:     maint,
		alerts:    alerts,
		outbox:    outbox,
		clock:     clock,
		cfg:       cfg.withDefaults(),
		logger:    logger,
	}
}

// WithCache attaches the availability cache kept in sync by loan and
// maintenance transitions.
func (e *Engine) WithCache(c *cache.EquipmentCache) *Engine {
	e.cache = c
	return e
}

func (e *Engine) inTx(ctx context.Context, fn func(tx db.Tx) error) error {
	tx, err := e.db.BeginTx(ctx)
	if err != nil {
		return classifyStoreErr(err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return classifyStoreErr(err)
	}
	return nil
}

func (e *Engine) cacheSet(eq *repository.Equipment) {
	if e.cache != nil {
		e.cache.Set(eq)
	}
}
