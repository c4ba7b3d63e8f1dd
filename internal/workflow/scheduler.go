package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/metrics"
	"github.com/centrominero/gil/internal/repository"
)

// MaintenanceInput carries the fields of a completed maintenance job.
type MaintenanceInput struct {
	EquipmentID     int64
	TypeID          int64
	TechnicianID    int64
	WorkDescription string
	Cost            decimal.Decimal
	DowntimeHours   decimal.Decimal
	ResultGrade     repository.ConditionGrade
}

func (in MaintenanceInput) validate() error {
	if in.EquipmentID <= 0 || in.TypeID <= 0 || in.TechnicianID <= 0 {
		return fmt.Errorf("%w: equipment, type and technician are required", ErrValidation)
	}
	if !validGrade(in.ResultGrade) {
		return fmt.Errorf("%w: unknown condition grade %q", ErrValidation, in.ResultGrade)
	}
	if in.Cost.IsNegative() || in.DowntimeHours.IsNegative() {
		return fmt.Errorf("%w: cost and downtime cannot be negative", ErrValidation)
	}
	return nil
}

// RecordMaintenance writes an immutable maintenance record, refreshes the
// equipment condition and resolves the open alert for the equipment/type
// pair. For preventive types the next due date is stamped on the record so
// scheduler passes pick it up directly.
func (e *Engine) RecordMaintenance(ctx context.Context, in MaintenanceInput) (*repository.MaintenanceRecord, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	mt, err := e.maint.GetTypeByID(ctx, in.TypeID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}

	var rec *repository.MaintenanceRecord
	var equipment *repository.Equipment
	op := func() error {
		return e.inTx(ctx, func(tx db.Tx) error {
			eq, err := e.equipment.GetByIDTx(ctx, tx, in.EquipmentID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if eq.State == repository.EquipmentDecommissioned {
				return fmt.Errorf("%w: equipment %s is decommissioned", ErrInvalidEquipmentState, eq.InternalCode)
			}

			now := e.clock.Now()
			r := &repository.MaintenanceRecord{
				EquipmentID:     in.EquipmentID,
				TypeID:          in.TypeID,
				PerformedAt:     now,
				TechnicianID:    in.TechnicianID,
				WorkDescription: in.WorkDescription,
				Cost:            in.Cost,
				DowntimeHours:   in.DowntimeHours,
				ResultGrade:     in.ResultGrade,
				CreatedAt:       now,
			}
			if mt.Preventive && mt.RecurrenceDays > 0 {
				next := now.AddDate(0, 0, mt.RecurrenceDays)
				r.NextDueAt = &next
			}
			if err := e.maint.CreateRecordTx(ctx, tx, r); err != nil {
				return classifyStoreErr(err)
			}

			eq.Condition = in.ResultGrade
			eq.UpdatedAt = now
			// Equipment held for maintenance or repair goes back in rotation
			// once the work leaves it in serviceable shape.
			inShop := eq.State == repository.EquipmentMaintenance || eq.State == repository.EquipmentRepair
			serviceable := in.ResultGrade == repository.GradeExcellent || in.ResultGrade == repository.GradeGood
			if inShop && serviceable {
				eq.State = repository.EquipmentAvailable
			}
			if err := e.equipment.UpdateTx(ctx, tx, eq); err != nil {
				return classifyStoreErr(err)
			}

			open, err := e.alerts.FindOpenForPairTx(ctx, tx, in.EquipmentID, in.TypeID)
			if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
				return classifyStoreErr(err)
			}
			if open != nil {
				notes := fmt.Sprintf("Mantenimiento registrado (%s)", mt.Name)
				open.State = repository.AlertResolved
				open.ResolvedAt = &now
				open.ResolutionNotes = &notes
				if err := e.alerts.UpdateTx(ctx, tx, open); err != nil {
					return classifyStoreErr(err)
				}
			}

			rec = r
			equipment = eq
			return nil
		})
	}

	if err := withRetry(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, op); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("record_maintenance").Inc()
		return nil, err
	}

	e.cacheSet(equipment)
	e.logger.Info("maintenance recorded",
		zap.Int64("equipment_id", in.EquipmentID),
		zap.Int64("type_id", in.TypeID),
		zap.String("grade", string(in.ResultGrade)))

	// Re-evaluate the pair right away so the follow-up alert for the next
	// cycle does not wait for the next scheduler pass.
	if mt.Preventive && mt.RecurrenceDays > 0 {
		if err := e.schedulePair(ctx, equipment, mt); err != nil {
			e.logger.Warn("post-maintenance scheduling failed",
				zap.Int64("equipment_id", in.EquipmentID),
				zap.Int64("type_id", in.TypeID),
				zap.Error(err))
		}
	}
	return rec, nil
}

// RunPass evaluates every in-service equipment against every preventive
// maintenance type and raises or escalates alerts for due work. Passes are
// idempotent: at most one open alert exists per equipment/type pair.
func (e *Engine) RunPass(ctx context.Context) error {
	started := time.Now()
	defer func() {
		metrics.SchedulerPassDuration.Observe(time.Since(started).Seconds())
	}()

	types, err := e.maint.ListPreventiveTypes(ctx)
	if err != nil {
		return classifyStoreErr(err)
	}
	items, err := e.equipment.ListInService(ctx)
	if err != nil {
		return classifyStoreErr(err)
	}

	var failed int
	for _, eq := range items {
		for _, mt := range types {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := e.schedulePair(ctx, eq, mt); err != nil {
				failed++
				e.logger.Warn("scheduler pair failed",
					zap.Int64("equipment_id", eq.ID),
					zap.Int64("type_id", mt.ID),
					zap.Error(err))
			}
		}
	}

	e.logger.Info("scheduler pass finished",
		zap.Int("equipment", len(items)),
		zap.Int("types", len(types)),
		zap.Int("failed_pairs", failed),
		zap.Duration("took", time.Since(started)))
	if failed > 0 {
		return fmt.Errorf("scheduler pass: %d pair(s) failed", failed)
	}
	return nil
}

// nextDueFor computes when the given maintenance type is next due on the
// equipment. With no history the cycle anchors on the acquisition date, or
// the registration date when acquisition is unknown.
func (e *Engine) nextDueFor(ctx context.Context, eq *repository.Equipment, mt *repository.MaintenanceType) (time.Time, error) {
	last, err := e.maint.LastRecord(ctx, eq.ID, mt.ID)
	switch {
	case err == nil:
		if last.NextDueAt != nil {
			return *last.NextDueAt, nil
		}
		return last.PerformedAt.AddDate(0, 0, mt.RecurrenceDays), nil
	case errors.Is(err, repository.ErrObjectNotFound):
		base := eq.RegisteredAt
		if eq.AcquiredAt != nil {
			base = *eq.AcquiredAt
		}
		return base.AddDate(0, 0, mt.RecurrenceDays), nil
	default:
		return time.Time{}, classifyStoreErr(err)
	}
}

func (e *Engine) schedulePair(ctx context.Context, eq *repository.Equipment, mt *repository.MaintenanceType) error {
	if !mt.Preventive || mt.RecurrenceDays <= 0 {
		return nil
	}

	nextDue, err := e.nextDueFor(ctx, eq, mt)
	if err != nil {
		return err
	}

	now := e.clock.Now()
	if nextDue.Sub(now) > e.cfg.leadWindow() {
		return nil
	}
	overdue := now.After(nextDue)

	op := func() error {
		return e.inTx(ctx, func(tx db.Tx) error {
			// The equipment row is the mutex for check-and-create: FOR UPDATE
			// on an absent alert row locks nothing, so two concurrent passes
			// would otherwise both see "not found" and both insert.
			locked, err := e.equipment.GetByIDTx(ctx, tx, eq.ID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if locked.State == repository.EquipmentDecommissioned {
				return nil
			}

			open, err := e.alerts.FindOpenForPairTx(ctx, tx, eq.ID, mt.ID)
			if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
				return classifyStoreErr(err)
			}

			if open == nil {
				kind := repository.AlertScheduledMaintenance
				priority := repository.PriorityMedium
				if overdue {
					kind = repository.AlertOverdueMaintenance
					priority = repository.PriorityHigh
				}
				typeID := mt.ID
				alert := &repository.Alert{
					EquipmentID: eq.ID,
					TypeID:      &typeID,
					Kind:        kind,
					Description: fmt.Sprintf("%s para equipo %s", mt.Name, locked.InternalCode),
					RaisedAt:    now,
					Deadline:    nextDue,
					Priority:    priority,
					State:       repository.AlertPending,
				}
				return e.createAlertTx(ctx, tx, alert)
			}

			// Escalate a scheduled alert whose due date has slipped past.
			if overdue && open.Kind == repository.AlertScheduledMaintenance {
				open.Kind = repository.AlertOverdueMaintenance
				open.Priority = repository.PriorityHigh
				if err := e.alerts.UpdateTx(ctx, tx, open); err != nil {
					return classifyStoreErr(err)
				}
				e.logger.Info("alert escalated to overdue",
					zap.Int64("alert_id", open.ID),
					zap.Int64("equipment_id", eq.ID),
					zap.Int64("type_id", mt.ID))
			}
			return nil
		})
	}

	return withRetry(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, op)
}
