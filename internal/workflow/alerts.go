package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/metrics"
	"github.com/centrominero/gil/internal/repository"
)

// createAlertTx persists the alert and enqueues its notification in the same
// transaction, so the feed never sees an alert the store does not have.
func (e *Engine) createAlertTx(ctx context.Context, tx db.Tx, alert *repository.Alert) error {
	if err := e.alerts.CreateTx(ctx, tx, alert); err != nil {
		return classifyStoreErr(err)
	}

	payload, err := json.Marshal(repository.AlertNotification{
		AlertID:     alert.ID,
		EquipmentID: alert.EquipmentID,
		Kind:        string(alert.Kind),
		Priority:    string(alert.Priority),
		Deadline:    alert.Deadline,
		Description: alert.Description,
		RaisedAt:    alert.RaisedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal alert notification: %w", err)
	}

	task := &repository.OutboxTask{
		Payload: payload,
		Topic:   e.cfg.AlertTopic,
	}
	if err := e.outbox.CreateTx(ctx, tx, task); err != nil {
		return classifyStoreErr(err)
	}

	metrics.AlertsCreatedTotal.WithLabelValues(string(alert.Kind)).Inc()
	return nil
}

// AssignAlert puts a pending alert in progress under the given user.
func (e *Engine) AssignAlert(ctx context.Context, alertID, assigneeID int64) (*repository.Alert, error) {
	if assigneeID <= 0 {
		return nil, fmt.Errorf("%w: assignee is required", ErrValidation)
	}

	var alert *repository.Alert
	op := func() error {
		return e.inTx(ctx, func(tx db.Tx) error {
			a, err := e.alerts.GetByIDTx(ctx, tx, alertID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if a.State != repository.AlertPending {
				return fmt.Errorf("%w: cannot assign an alert in state %q", ErrInvalidTransition, a.State)
			}

			a.State = repository.AlertInProgress
			a.AssigneeID = &assigneeID
			if err := e.alerts.UpdateTx(ctx, tx, a); err != nil {
				return classifyStoreErr(err)
			}
			alert = a
			return nil
		})
	}

	if err := withRetry(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, op); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("assign_alert").Inc()
		return nil, err
	}

	e.logger.Info("alert assigned", zap.Int64("alert_id", alertID), zap.Int64("assignee_id", assigneeID))
	return alert, nil
}

// ResolveAlert closes an open alert with resolution notes.
func (e *Engine) ResolveAlert(ctx context.Context, alertID int64, notes string) (*repository.Alert, error) {
	return e.closeAlert(ctx, alertID, repository.AlertResolved, notes, "resolve_alert")
}

// CancelAlert discards an open alert, e.g. when it was raised by mistake or
// superseded by another one.
func (e *Engine) CancelAlert(ctx context.Context, alertID int64, notes string) (*repository.Alert, error) {
	return e.closeAlert(ctx, alertID, repository.AlertCancelled, notes, "cancel_alert")
}

func (e *Engine) closeAlert(ctx context.Context, alertID int64, final repository.AlertState, notes, operation string) (*repository.Alert, error) {
	var alert *repository.Alert
	op := func() error {
		return e.inTx(ctx, func(tx db.Tx) error {
			a, err := e.alerts.GetByIDTx(ctx, tx, alertID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if a.State != repository.AlertPending && a.State != repository.AlertInProgress {
				return fmt.Errorf("%w: alert already closed as %q", ErrInvalidTransition, a.State)
			}

			now := e.clock.Now()
			a.State = final
			a.ResolvedAt = &now
			if notes != "" {
				a.ResolutionNotes = &notes
			}
			if err := e.alerts.UpdateTx(ctx, tx, a); err != nil {
				return classifyStoreErr(err)
			}
			alert = a
			return nil
		})
	}

	if err := withRetry(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, op); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
		return nil, err
	}

	e.logger.Info("alert closed",
		zap.Int64("alert_id", alertID),
		zap.String("state", string(alert.State)))
	return alert, nil
}

// ReportPredictedFailure raises a falla_predicha alert for an equipment unit,
// typically fed by an external analysis job.
func (e *Engine) ReportPredictedFailure(ctx context.Context, equipmentID int64, description string, deadline time.Time, priority repository.AlertPriority) (*repository.Alert, error) {
	switch priority {
	case repository.PriorityLow, repository.PriorityMedium, repository.PriorityHigh, repository.PriorityCritical:
	default:
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, priority)
	}

	var alert *repository.Alert
	op := func() error {
		return e.inTx(ctx, func(tx db.Tx) error {
			eq, err := e.equipment.GetByIDTx(ctx, tx, equipmentID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if eq.State == repository.EquipmentDecommissioned {
				return fmt.Errorf("%w: equipment %s is decommissioned", ErrInvalidEquipmentState, eq.InternalCode)
			}

			a := &repository.Alert{
				EquipmentID: equipmentID,
				Kind:        repository.AlertPredictedFailure,
				Description: description,
				RaisedAt:    e.clock.Now(),
				Deadline:    deadline,
				Priority:    priority,
				State:       repository.AlertPending,
			}
			if err := e.createAlertTx(ctx, tx, a); err != nil {
				return err
			}
			alert = a
			return nil
		})
	}

	if err := withRetry(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, op); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("report_predicted_failure").Inc()
		return nil, err
	}

	e.logger.Info("predicted failure reported",
		zap.Int64("equipment_id", equipmentID),
		zap.String("priority", string(priority)))
	return alert, nil
}
