package workflow

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/repository"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func availableEquipment(id int64) *repository.Equipment {
	return &repository.Equipment{
		ID:           id,
		InternalCode: "EQ-001",
		Name:         "Espectrómetro de masas",
		State:        repository.EquipmentAvailable,
		Condition:    repository.GradeGood,
		RegisteredAt: testNow.AddDate(-1, 0, 0),
	}
}

func TestRequestLoan(t *testing.T) {
	ctx := context.Background()
	start := testNow.AddDate(0, 0, 1)
	end := testNow.AddDate(0, 0, 5)

	t.Run("creates a requested loan", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.expectTx()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(availableEquipment(10), nil)
		m.loans.EXPECT().ExistsOverlappingTx(gomock.Any(), m.tx, int64(10), start, end).Return(false, nil)
		m.loans.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, l *repository.Loan) error {
				l.ID = 77
				return nil
			})

		loan, err := engine.RequestLoan(ctx, 10, 3, "práctica de laboratorio", start, end)
		require.NoError(t, err)
		assert.Equal(t, int64(77), loan.ID)
		assert.Equal(t, repository.LoanRequested, loan.Status)
		assert.Equal(t, testNow, loan.RequestedAt)
		assert.True(t, strings.HasPrefix(loan.Code, "PRE-"))
		assert.Len(t, loan.Code, 12)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		engine, _ := newTestEngine(t, testNow)

		_, err := engine.RequestLoan(ctx, 10, 3, "", end, start)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects missing identifiers", func(t *testing.T) {
		engine, _ := newTestEngine(t, testNow)

		_, err := engine.RequestLoan(ctx, 0, 3, "", start, end)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("refuses decommissioned equipment", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		eq.State = repository.EquipmentDecommissioned
		m.expectTxRollback()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(eq, nil)

		_, err := engine.RequestLoan(ctx, 10, 3, "", start, end)
		assert.ErrorIs(t, err, ErrInvalidEquipmentState)
	})

	t.Run("refuses an overlapping window", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.expectTxRollback()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(availableEquipment(10), nil)
		m.loans.EXPECT().ExistsOverlappingTx(gomock.Any(), m.tx, int64(10), start, end).Return(true, nil)

		_, err := engine.RequestLoan(ctx, 10, 3, "", start, end)
		assert.ErrorIs(t, err, ErrConflictingLoan)
	})

	t.Run("maps a missing equipment to not found", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.expectTxRollback()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(99)).Return(nil, repository.ErrObjectNotFound)

		_, err := engine.RequestLoan(ctx, 99, 3, "", start, end)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestApproveLoan(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a requested loan", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.expectTx()
		m.loans.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(5)).
			Return(&repository.Loan{ID: 5, Status: repository.LoanRequested}, nil)
		m.loans.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, l *repository.Loan) error {
				assert.Equal(t, repository.LoanApproved, l.Status)
				require.NotNil(t, l.ApproverID)
				assert.Equal(t, int64(2), *l.ApproverID)
				return nil
			})

		loan, err := engine.ApproveLoan(ctx, 5, 2)
		require.NoError(t, err)
		assert.Equal(t, repository.LoanApproved, loan.Status)
	})

	t.Run("refuses to approve an active loan", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.expectTxRollback()
		m.loans.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(5)).
			Return(&repository.Loan{ID: 5, Status: repository.LoanActive}, nil)

		_, err := engine.ApproveLoan(ctx, 5, 2)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("requires an approver", func(t *testing.T) {
		engine, _ := newTestEngine(t, testNow)

		_, err := engine.ApproveLoan(ctx, 5, 0)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestRejectLoan(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a requested loan with a reason", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.expectTx()
		m.loans.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(5)).
			Return(&repository.Loan{ID: 5, Status: repository.LoanRequested}, nil)
		m.loans.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, l *repository.Loan) error {
				assert.Equal(t, repository.LoanRejected, l.Status)
				require.NotNil(t, l.Notes)
				assert.Equal(t, "equipo reservado para tesis", *l.Notes)
				return nil
			})

		loan, err := engine.RejectLoan(ctx, 5, "equipo reservado para tesis")
		require.NoError(t, err)
		assert.Equal(t, repository.LoanRejected, loan.Status)
	})

	t.Run("refuses to reject a returned loan", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.expectTxRollback()
		m.loans.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(5)).
			Return(&repository.Loan{ID: 5, Status: repository.LoanReturned}, nil)

		_, err := engine.RejectLoan(ctx, 5, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestActivateLoan(t *testing.T) {
	ctx := context.Background()

	approvedLoan := func() *repository.Loan {
		return &repository.Loan{ID: 5, EquipmentID: 10, Status: repository.LoanApproved}
	}

	t.Run("activates and marks equipment loaned", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.loans.EXPECT().GetByID(gomock.Any(), int64(5)).Return(approvedLoan(), nil)
		m.expectTx()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(availableEquipment(10), nil)
		m.loans.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(5)).Return(approvedLoan(), nil)
		m.loans.EXPECT().CountActiveTx(gomock.Any(), m.tx, int64(10)).Return(0, nil)
		m.loans.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, l *repository.Loan) error {
				assert.Equal(t, repository.LoanActive, l.Status)
				return nil
			})
		m.equipment.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, eq *repository.Equipment) error {
				assert.Equal(t, repository.EquipmentLoaned, eq.State)
				assert.Equal(t, testNow, eq.UpdatedAt)
				return nil
			})

		loan, err := engine.ActivateLoan(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, repository.LoanActive, loan.Status)
	})

	t.Run("refuses a second active loan on the equipment", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.loans.EXPECT().GetByID(gomock.Any(), int64(5)).Return(approvedLoan(), nil)
		m.expectTxRollback()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(availableEquipment(10), nil)
		m.loans.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(5)).Return(approvedLoan(), nil)
		m.loans.EXPECT().CountActiveTx(gomock.Any(), m.tx, int64(10)).Return(1, nil)

		_, err := engine.ActivateLoan(ctx, 5)
		assert.ErrorIs(t, err, ErrConflictingLoan)
	})

	t.Run("refuses when equipment is not available", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		eq.State = repository.EquipmentMaintenance
		m.loans.EXPECT().GetByID(gomock.Any(), int64(5)).Return(approvedLoan(), nil)
		m.expectTxRollback()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(eq, nil)
		m.loans.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(5)).Return(approvedLoan(), nil)
		m.loans.EXPECT().CountActiveTx(gomock.Any(), m.tx, int64(10)).Return(0, nil)

		_, err := engine.ActivateLoan(ctx, 5)
		assert.ErrorIs(t, err, ErrInvalidEquipmentState)
	})

	t.Run("refuses to activate a requested loan", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		requested := &repository.Loan{ID: 5, EquipmentID: 10, Status: repository.LoanRequested}
		m.loans.EXPECT().GetByID(gomock.Any(), int64(5)).Return(requested, nil)
		m.expectTxRollback()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(availableEquipment(10), nil)
		m.loans.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(5)).Return(requested, nil)

		_, err := engine.ActivateLoan(ctx, 5)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestReturnLoan(t *testing.T) {
	ctx := context.Background()

	activeLoan := func() *repository.Loan {
		return &repository.Loan{ID: 5, EquipmentID: 10, Code: "PRE-AB12CD34", Status: repository.LoanActive}
	}
	loanedEquipment := func() *repository.Equipment {
		eq := availableEquipment(10)
		eq.State = repository.EquipmentLoaned
		return eq
	}

	t.Run("good condition puts equipment back in rotation", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.loans.EXPECT().GetByID(gomock.Any(), int64(5)).Return(activeLoan(), nil)
		m.expectTx()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(loanedEquipment(), nil)
		m.loans.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(5)).Return(activeLoan(), nil)
		m.loans.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, l *repository.Loan) error {
				assert.Equal(t, repository.LoanReturned, l.Status)
				require.NotNil(t, l.ReturnedAt)
				assert.Equal(t, testNow, *l.ReturnedAt)
				require.NotNil(t, l.ReturnGrade)
				assert.Equal(t, repository.GradeGood, *l.ReturnGrade)
				return nil
			})
		m.equipment.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, eq *repository.Equipment) error {
				assert.Equal(t, repository.EquipmentAvailable, eq.State)
				assert.Equal(t, repository.GradeGood, eq.Condition)
				return nil
			})

		loan, err := engine.ReturnLoan(ctx, 5, repository.GradeGood, "")
		require.NoError(t, err)
		assert.Equal(t, repository.LoanReturned, loan.Status)
	})

	t.Run("bad condition sends equipment to maintenance with an urgent alert", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.loans.EXPECT().GetByID(gomock.Any(), int64(5)).Return(activeLoan(), nil)
		m.expectTx()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(loanedEquipment(), nil)
		m.loans.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(5)).Return(activeLoan(), nil)
		m.loans.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.alerts.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, a *repository.Alert) error {
				a.ID = 42
				assert.Equal(t, repository.AlertUrgentReview, a.Kind)
				assert.Equal(t, repository.PriorityHigh, a.Priority)
				assert.Equal(t, repository.AlertPending, a.State)
				assert.Equal(t, int64(10), a.EquipmentID)
				assert.Equal(t, testNow, a.Deadline)
				return nil
			})
		m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
				assert.Equal(t, "alertas_notificaciones", task.Topic)
				assert.Contains(t, string(task.Payload), `"revision_urgente"`)
				return nil
			})
		m.equipment.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, eq *repository.Equipment) error {
				assert.Equal(t, repository.EquipmentMaintenance, eq.State)
				assert.Equal(t, repository.GradeBad, eq.Condition)
				return nil
			})

		loan, err := engine.ReturnLoan(ctx, 5, repository.GradeBad, "pantalla rota")
		require.NoError(t, err)
		require.NotNil(t, loan.ReturnNotes)
		assert.Equal(t, "pantalla rota", *loan.ReturnNotes)
	})

	t.Run("rejects an unknown grade", func(t *testing.T) {
		engine, _ := newTestEngine(t, testNow)

		_, err := engine.ReturnLoan(ctx, 5, "perfecto", "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("refuses to return an approved loan", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		approved := &repository.Loan{ID: 5, EquipmentID: 10, Status: repository.LoanApproved}
		m.loans.EXPECT().GetByID(gomock.Any(), int64(5)).Return(approved, nil)
		m.expectTxRollback()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(loanedEquipment(), nil)
		m.loans.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(5)).Return(approved, nil)

		_, err := engine.ReturnLoan(ctx, 5, repository.GradeGood, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
