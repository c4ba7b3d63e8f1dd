package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/centrominero/gil/internal/db/mocks"
	"github.com/centrominero/gil/internal/repository"
)

// scanRow feeds canned values into a Scan call.
type scanRow struct {
	values []interface{}
	err    error
}

func (r scanRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *int:
			*v = r.values[i].(int)
		case *int64:
			*v = r.values[i].(int64)
		}
	}
	return nil
}

func TestLoanRepoGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("maps no rows to the sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewLoanRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), int64(99)).
			Return(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("fills the loan from the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockDB := mock_database.NewMockDB(ctrl)
		repo := NewLoanRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), int64(5)).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				loan := dest.(*repository.Loan)
				loan.ID = 5
				loan.Status = repository.LoanActive
				return nil
			})

		loan, err := repo.GetByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), loan.ID)
		assert.Equal(t, repository.LoanActive, loan.Status)
	})
}

func TestLoanRepoUpdateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("reports a vanished row as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := NewLoanRepo(nil)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateTx(ctx, mockTx, &repository.Loan{ID: 99})
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("succeeds when the row is updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := NewLoanRepo(nil)

		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		err := repo.UpdateTx(ctx, mockTx, &repository.Loan{ID: 5})
		assert.NoError(t, err)
	})
}

func TestLoanRepoExistsOverlappingTx(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 4)

	tests := []struct {
		name     string
		count    int
		expected bool
	}{
		{"no overlap", 0, false},
		{"one overlapping loan", 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockTx := mock_database.NewMockTx(ctrl)
			repo := NewLoanRepo(nil)

			mockTx.EXPECT().
				ExecQueryRow(gomock.Any(), gomock.Any(), int64(10),
					repository.LoanRequested, repository.LoanApproved, repository.LoanActive,
					end, start).
				Return(scanRow{values: []interface{}{tc.count}})

			got, err := repo.ExistsOverlappingTx(ctx, mockTx, 10, start, end)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestLoanRepoCountActiveTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := NewLoanRepo(nil)

	mockTx.EXPECT().
		ExecQueryRow(gomock.Any(), gomock.Any(), int64(10), repository.LoanActive).
		Return(scanRow{values: []interface{}{1}})

	count, err := repo.CountActiveTx(context.Background(), mockTx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
