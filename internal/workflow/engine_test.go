package workflow

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	mock_database "github.com/centrominero/gil/internal/db/mocks"
	mock_workflow "github.com/centrominero/gil/internal/workflow/mocks"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

type engineMocks struct {
	db        *mock_database.MockDB
	tx        *mock_database.MockTx
	equipment *mock_workflow.MockEquipmentRepository
	loans     *mock_workflow.MockLoanRepository
	maint     *mock_workflow.MockMaintenanceRepository
	alerts    *mock_workflow.MockAlertRepository
	outbox    *mock_workflow.MockOutboxRepository
}

// expectTx wires a successful transaction: Begin, the body, Commit. The
// deferred Rollback after commit is a no-op and always allowed.
func (m *engineMocks) expectTx() {
	m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

// expectTxRollback wires a transaction whose body fails before commit.
func (m *engineMocks) expectTxRollback() {
	m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func newTestEngine(t *testing.T, now time.Time) (*Engine, *engineMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &engineMocks{
		db:        mock_database.NewMockDB(ctrl),
		tx:        mock_database.NewMockTx(ctrl),
		equipment: mock_workflow.NewMockEquipmentRepository(ctrl),
		loans:     mock_workflow.NewMockLoanRepository(ctrl),
		maint:     mock_workflow.NewMockMaintenanceRepository(ctrl),
		alerts:    mock_workflow.NewMockAlertRepository(ctrl),
		outbox:    mock_workflow.NewMockOutboxRepository(ctrl),
	}

	engine := NewEngine(
		m.db,
		m.equipment,
		m.loans,
		m.maint,
		m.alerts,
		m.outbox,
		fixedClock{t: now},
		Config{RetryBackoff: time.Millisecond},
		nil,
	)
	return engine, m
}
