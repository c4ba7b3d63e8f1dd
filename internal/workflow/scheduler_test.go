package workflow

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/repository"
)

func calibrationType() *repository.MaintenanceType {
	return &repository.MaintenanceType{
		ID:             2,
		Name:           "Calibración",
		RecurrenceDays: 90,
		Preventive:     true,
	}
}

func TestSchedulePair(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an overdue alert for long-neglected equipment", func(t *testing.T) {
		// Acquired 400 days ago, 90-day cycle, never maintained: the due
		// date is far in the past, so the alert is born overdue.
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		acquired := testNow.AddDate(0, 0, -400)
		eq.AcquiredAt = &acquired
		mt := calibrationType()
		expectedDue := acquired.AddDate(0, 0, 90)

		m.maint.EXPECT().LastRecord(gomock.Any(), int64(10), int64(2)).Return(nil, repository.ErrObjectNotFound)
		m.expectTx()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(eq, nil)
		m.alerts.EXPECT().FindOpenForPairTx(gomock.Any(), m.tx, int64(10), int64(2)).Return(nil, repository.ErrObjectNotFound)
		m.alerts.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, a *repository.Alert) error {
				a.ID = 1
				assert.Equal(t, repository.AlertOverdueMaintenance, a.Kind)
				assert.Equal(t, repository.PriorityHigh, a.Priority)
				assert.Equal(t, expectedDue, a.Deadline)
				require.NotNil(t, a.TypeID)
				assert.Equal(t, int64(2), *a.TypeID)
				return nil
			})
		m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)

		require.NoError(t, engine.schedulePair(ctx, eq, mt))
	})

	t.Run("creates a scheduled alert inside the lead window", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		mt := calibrationType()
		nextDue := testNow.AddDate(0, 0, 3)
		last := &repository.MaintenanceRecord{
			EquipmentID: 10,
			TypeID:      2,
			PerformedAt: nextDue.AddDate(0, 0, -90),
			NextDueAt:   &nextDue,
		}

		m.maint.EXPECT().LastRecord(gomock.Any(), int64(10), int64(2)).Return(last, nil)
		m.expectTx()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(eq, nil)
		m.alerts.EXPECT().FindOpenForPairTx(gomock.Any(), m.tx, int64(10), int64(2)).Return(nil, repository.ErrObjectNotFound)
		m.alerts.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, a *repository.Alert) error {
				assert.Equal(t, repository.AlertScheduledMaintenance, a.Kind)
				assert.Equal(t, repository.PriorityMedium, a.Priority)
				assert.Equal(t, nextDue, a.Deadline)
				return nil
			})
		m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)

		require.NoError(t, engine.schedulePair(ctx, eq, mt))
	})

	t.Run("does nothing when the due date is outside the lead window", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		mt := calibrationType()
		nextDue := testNow.AddDate(0, 0, 30)
		last := &repository.MaintenanceRecord{NextDueAt: &nextDue}

		m.maint.EXPECT().LastRecord(gomock.Any(), int64(10), int64(2)).Return(last, nil)

		require.NoError(t, engine.schedulePair(ctx, eq, mt))
	})

	t.Run("is idempotent when an open alert already exists", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		mt := calibrationType()
		nextDue := testNow.AddDate(0, 0, 3)
		last := &repository.MaintenanceRecord{NextDueAt: &nextDue}
		typeID := int64(2)
		open := &repository.Alert{
			ID:          7,
			EquipmentID: 10,
			TypeID:      &typeID,
			Kind:        repository.AlertScheduledMaintenance,
			State:       repository.AlertPending,
		}

		m.maint.EXPECT().LastRecord(gomock.Any(), int64(10), int64(2)).Return(last, nil)
		m.expectTx()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(eq, nil)
		m.alerts.EXPECT().FindOpenForPairTx(gomock.Any(), m.tx, int64(10), int64(2)).Return(open, nil)

		require.NoError(t, engine.schedulePair(ctx, eq, mt))
	})

	t.Run("escalates a scheduled alert once it slips past due", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		mt := calibrationType()
		nextDue := testNow.AddDate(0, 0, -2)
		last := &repository.MaintenanceRecord{NextDueAt: &nextDue}
		typeID := int64(2)
		open := &repository.Alert{
			ID:          7,
			EquipmentID: 10,
			TypeID:      &typeID,
			Kind:        repository.AlertScheduledMaintenance,
			Priority:    repository.PriorityMedium,
			State:       repository.AlertPending,
		}

		m.maint.EXPECT().LastRecord(gomock.Any(), int64(10), int64(2)).Return(last, nil)
		m.expectTx()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(eq, nil)
		m.alerts.EXPECT().FindOpenForPairTx(gomock.Any(), m.tx, int64(10), int64(2)).Return(open, nil)
		m.alerts.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, a *repository.Alert) error {
				assert.Equal(t, repository.AlertOverdueMaintenance, a.Kind)
				assert.Equal(t, repository.PriorityHigh, a.Priority)
				return nil
			})

		require.NoError(t, engine.schedulePair(ctx, eq, mt))
	})

	t.Run("takes the equipment row lock before the duplicate check", func(t *testing.T) {
		// Ordering matters: with no open alert there is no alert row to
		// lock, so the equipment lock is what keeps two concurrent passes
		// from both inserting.
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		mt := calibrationType()
		nextDue := testNow.AddDate(0, 0, 3)
		last := &repository.MaintenanceRecord{NextDueAt: &nextDue}

		m.maint.EXPECT().LastRecord(gomock.Any(), int64(10), int64(2)).Return(last, nil)
		m.expectTx()
		lock := m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(eq, nil)
		m.alerts.EXPECT().FindOpenForPairTx(gomock.Any(), m.tx, int64(10), int64(2)).
			Return(nil, repository.ErrObjectNotFound).After(lock)
		m.alerts.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.outbox.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)

		require.NoError(t, engine.schedulePair(ctx, eq, mt))
	})

	t.Run("skips a unit retired since it was listed", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		mt := calibrationType()
		nextDue := testNow.AddDate(0, 0, 3)
		last := &repository.MaintenanceRecord{NextDueAt: &nextDue}
		retired := availableEquipment(10)
		retired.State = repository.EquipmentDecommissioned

		m.maint.EXPECT().LastRecord(gomock.Any(), int64(10), int64(2)).Return(last, nil)
		m.expectTx()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(retired, nil)

		require.NoError(t, engine.schedulePair(ctx, eq, mt))
	})

	t.Run("skips corrective types", func(t *testing.T) {
		engine, _ := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		mt := &repository.MaintenanceType{ID: 4, Name: "Reparación correctiva", Preventive: false}

		require.NoError(t, engine.schedulePair(ctx, eq, mt))
	})
}

func TestRunPass(t *testing.T) {
	ctx := context.Background()

	t.Run("walks every in-service equipment and preventive type", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq1 := availableEquipment(10)
		eq2 := availableEquipment(11)
		eq2.InternalCode = "EQ-002"
		mt := calibrationType()
		farDue := testNow.AddDate(0, 0, 60)
		last := &repository.MaintenanceRecord{NextDueAt: &farDue}

		m.maint.EXPECT().ListPreventiveTypes(gomock.Any()).Return([]*repository.MaintenanceType{mt}, nil)
		m.equipment.EXPECT().ListInService(gomock.Any()).Return([]*repository.Equipment{eq1, eq2}, nil)
		m.maint.EXPECT().LastRecord(gomock.Any(), int64(10), int64(2)).Return(last, nil)
		m.maint.EXPECT().LastRecord(gomock.Any(), int64(11), int64(2)).Return(last, nil)

		require.NoError(t, engine.RunPass(ctx))
	})

	t.Run("keeps going when one pair fails", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq1 := availableEquipment(10)
		eq2 := availableEquipment(11)
		mt := calibrationType()
		farDue := testNow.AddDate(0, 0, 60)

		m.maint.EXPECT().ListPreventiveTypes(gomock.Any()).Return([]*repository.MaintenanceType{mt}, nil)
		m.equipment.EXPECT().ListInService(gomock.Any()).Return([]*repository.Equipment{eq1, eq2}, nil)
		m.maint.EXPECT().LastRecord(gomock.Any(), int64(10), int64(2)).Return(nil, assert.AnError)
		m.maint.EXPECT().LastRecord(gomock.Any(), int64(11), int64(2)).
			Return(&repository.MaintenanceRecord{NextDueAt: &farDue}, nil)

		err := engine.RunPass(ctx)
		assert.Error(t, err)
	})
}

func TestRecordMaintenance(t *testing.T) {
	ctx := context.Background()

	input := func() MaintenanceInput {
		return MaintenanceInput{
			EquipmentID:     10,
			TypeID:          2,
			TechnicianID:    4,
			WorkDescription: "calibración de sensores",
			Cost:            decimal.NewFromInt(150),
			DowntimeHours:   decimal.NewFromInt(2),
			ResultGrade:     repository.GradeGood,
		}
	}

	t.Run("records work and releases equipment from maintenance", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		eq.State = repository.EquipmentMaintenance
		mt := calibrationType()
		expectedDue := testNow.AddDate(0, 0, 90)

		m.maint.EXPECT().GetTypeByID(gomock.Any(), int64(2)).Return(mt, nil)
		m.expectTx()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(eq, nil)
		m.maint.EXPECT().CreateRecordTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, r *repository.MaintenanceRecord) error {
				r.ID = 33
				assert.Equal(t, testNow, r.PerformedAt)
				require.NotNil(t, r.NextDueAt)
				assert.Equal(t, expectedDue, *r.NextDueAt)
				return nil
			})
		m.equipment.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, eq *repository.Equipment) error {
				assert.Equal(t, repository.EquipmentAvailable, eq.State)
				assert.Equal(t, repository.GradeGood, eq.Condition)
				return nil
			})
		m.alerts.EXPECT().FindOpenForPairTx(gomock.Any(), m.tx, int64(10), int64(2)).
			Return(&repository.Alert{ID: 7, State: repository.AlertPending}, nil)
		m.alerts.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, a *repository.Alert) error {
				assert.Equal(t, repository.AlertResolved, a.State)
				require.NotNil(t, a.ResolvedAt)
				return nil
			})
		// The follow-up cycle is 90 days out, beyond the lead window, so the
		// post-maintenance scheduling stops after reading the history.
		m.maint.EXPECT().LastRecord(gomock.Any(), int64(10), int64(2)).
			DoAndReturn(func(_ context.Context, _, _ int64) (*repository.MaintenanceRecord, error) {
				return &repository.MaintenanceRecord{NextDueAt: &expectedDue}, nil
			})

		rec, err := engine.RecordMaintenance(ctx, input())
		require.NoError(t, err)
		assert.Equal(t, int64(33), rec.ID)
	})

	t.Run("keeps equipment in repair when the result is still bad", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		eq.State = repository.EquipmentRepair
		mt := &repository.MaintenanceType{ID: 4, Name: "Reparación correctiva", Preventive: false}
		in := input()
		in.TypeID = 4
		in.ResultGrade = repository.GradeBad

		m.maint.EXPECT().GetTypeByID(gomock.Any(), int64(4)).Return(mt, nil)
		m.expectTx()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(eq, nil)
		m.maint.EXPECT().CreateRecordTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, r *repository.MaintenanceRecord) error {
				assert.Nil(t, r.NextDueAt)
				return nil
			})
		m.equipment.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, eq *repository.Equipment) error {
				assert.Equal(t, repository.EquipmentRepair, eq.State)
				assert.Equal(t, repository.GradeBad, eq.Condition)
				return nil
			})
		m.alerts.EXPECT().FindOpenForPairTx(gomock.Any(), m.tx, int64(10), int64(4)).
			Return(nil, repository.ErrObjectNotFound)

		_, err := engine.RecordMaintenance(ctx, in)
		require.NoError(t, err)
	})

	t.Run("refuses work on decommissioned equipment", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		eq := availableEquipment(10)
		eq.State = repository.EquipmentDecommissioned

		m.maint.EXPECT().GetTypeByID(gomock.Any(), int64(2)).Return(calibrationType(), nil)
		m.expectTxRollback()
		m.equipment.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(10)).Return(eq, nil)

		_, err := engine.RecordMaintenance(ctx, input())
		assert.ErrorIs(t, err, ErrInvalidEquipmentState)
	})

	t.Run("validates the input", func(t *testing.T) {
		engine, _ := newTestEngine(t, testNow)
		in := input()
		in.Cost = decimal.NewFromInt(-1)

		_, err := engine.RecordMaintenance(ctx, in)
		assert.ErrorIs(t, err, ErrValidation)
	})
}
