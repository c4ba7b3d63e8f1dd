package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/centrominero/gil/internal/repository"
)

func TestListActiveLoans(t *testing.T) {
	ctx := context.Background()

	t.Run("annotates loans with their temporal status", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		loans := []*repository.Loan{
			{ID: 1, Status: repository.LoanActive, ScheduledEnd: testNow.AddDate(0, 0, 10)},
			{ID: 2, Status: repository.LoanActive, ScheduledEnd: testNow.Add(6 * time.Hour)},
			{ID: 3, Status: repository.LoanActive, ScheduledEnd: testNow.AddDate(0, 0, -2)},
		}
		m.loans.EXPECT().ListActive(gomock.Any(), int64(0)).Return(loans, nil)

		views, err := engine.ListActiveLoans(ctx, 0)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, StatusCurrent, views[0].TemporalStatus)
		assert.Equal(t, StatusDueSoon, views[1].TemporalStatus)
		assert.Equal(t, StatusOverdue, views[2].TemporalStatus)
	})

	t.Run("forwards the requester filter", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.loans.EXPECT().ListActive(gomock.Any(), int64(3)).Return(nil, nil)

		views, err := engine.ListActiveLoans(ctx, 3)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestListPendingAlerts(t *testing.T) {
	engine, m := newTestEngine(t, testNow)
	alerts := []*repository.Alert{
		{ID: 1, Priority: repository.PriorityLow, Deadline: testNow.AddDate(0, 0, 5)},
		{ID: 2, Priority: repository.PriorityCritical, Deadline: testNow.AddDate(0, 0, -1)},
		{ID: 3, Priority: repository.PriorityMedium, Deadline: testNow.Add(time.Hour)},
	}
	m.alerts.EXPECT().ListPending(gomock.Any()).Return(alerts, nil)

	views, err := engine.ListPendingAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, int64(2), views[0].ID)
	assert.Equal(t, StatusOverdue, views[0].TemporalStatus)
	assert.Equal(t, int64(3), views[1].ID)
	assert.Equal(t, StatusDueSoon, views[1].TemporalStatus)
	assert.Equal(t, int64(1), views[2].ID)
	assert.Equal(t, StatusCurrent, views[2].TemporalStatus)
}

func TestListAvailableEquipment(t *testing.T) {
	t.Run("falls back to the store without a cache", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.equipment.EXPECT().ListAvailable(gomock.Any()).
			Return([]*repository.Equipment{availableEquipment(10)}, nil)

		items, err := engine.ListAvailableEquipment(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestGetLoan(t *testing.T) {
	engine, m := newTestEngine(t, testNow)
	m.loans.EXPECT().GetByID(gomock.Any(), int64(5)).
		Return(&repository.Loan{ID: 5, Status: repository.LoanActive, ScheduledEnd: testNow.Add(time.Hour)}, nil)

	view, err := engine.GetLoan(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, StatusDueSoon, view.TemporalStatus)
}

func TestMaintenanceHistory(t *testing.T) {
	t.Run("returns records for an existing equipment", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.equipment.EXPECT().GetByID(gomock.Any(), int64(10)).Return(availableEquipment(10), nil)
		m.maint.EXPECT().ListByEquipment(gomock.Any(), int64(10)).
			Return([]*repository.MaintenanceRecord{{ID: 1}}, nil)

		recs, err := engine.MaintenanceHistory(context.Background(), 10)
		require.NoError(t, err)
		assert.Len(t, recs, 1)
	})

	t.Run("maps a missing equipment to not found", func(t *testing.T) {
		engine, m := newTestEngine(t, testNow)
		m.equipment.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, repository.ErrObjectNotFound)

		_, err := engine.MaintenanceHistory(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
