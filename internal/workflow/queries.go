package workflow

import (
	"context"

	"github.com/centrominero/gil/internal/repository"
)

// LoanView pairs a loan with its temporal status relative to the scheduled
// return date. The status is derived at read time, never stored.
type LoanView struct {
	*repository.Loan
	TemporalStatus TemporalStatus `json:"estado_temporal"`
}

// AlertView pairs an alert with its temporal status relative to its deadline.
type AlertView struct {
	*repository.Alert
	TemporalStatus TemporalStatus `json:"estado_temporal"`
}

// ListActiveLoans returns active loans annotated with their temporal status.
// A zero requesterID lists loans for all requesters.
func (e *Engine) ListActiveLoans(ctx context.Context, requesterID int64) ([]LoanView, error) {
	loans, err := e.loans.ListActive(ctx, requesterID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}

	now := e.clock.Now()
	views := make([]LoanView, 0, len(loans))
	for _, l := range loans {
		views = append(views, LoanView{Loan: l, TemporalStatus: Classify(l.ScheduledEnd, now)})
	}
	return views, nil
}

// GetLoan fetches a loan by id with its temporal status.
func (e *Engine) GetLoan(ctx context.Context, loanID int64) (*LoanView, error) {
	l, err := e.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return &LoanView{Loan: l, TemporalStatus: Classify(l.ScheduledEnd, e.clock.Now())}, nil
}

// ListAvailableEquipment serves from the in-memory availability cache when
// attached, and falls back to the store.
func (e *Engine) ListAvailableEquipment(ctx context.Context) ([]*repository.Equipment, error) {
	if e.cache != nil {
		return e.cache.List(), nil
	}
	items, err := e.equipment.ListAvailable(ctx)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return items, nil
}

// ListPendingAlerts returns open alerts in dispatch order: priority first,
// then nearest deadline, annotated with their temporal status.
func (e *Engine) ListPendingAlerts(ctx context.Context) ([]AlertView, error) {
	alerts, err := e.alerts.ListPending(ctx)
	if err != nil {
		return nil, classifyStoreErr(err)
	}

	ranked := RankPending(alerts)
	now := e.clock.Now()
	views := make([]AlertView, 0, len(ranked))
	for _, a := range ranked {
		views = append(views, AlertView{Alert: a, TemporalStatus: Classify(a.Deadline, now)})
	}
	return views, nil
}

// MaintenanceHistory returns the maintenance records of an equipment unit,
// most recent first.
func (e *Engine) MaintenanceHistory(ctx context.Context, equipmentID int64) ([]*repository.MaintenanceRecord, error) {
	if _, err := e.equipment.GetByID(ctx, equipmentID); err != nil {
		return nil, classifyStoreErr(err)
	}
	recs, err := e.maint.ListByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	return recs, nil
}
