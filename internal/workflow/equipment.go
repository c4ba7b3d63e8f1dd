package workflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/metrics"
	"github.com/centrominero/gil/internal/repository"
)

// RegisterEquipment adds a new unit to the inventory in available state.
func (e *Engine) RegisterEquipment(ctx context.Context, eq *repository.Equipment) (*repository.Equipment, error) {
	if eq.InternalCode == "" || eq.Name == "" {
		return nil, fmt.Errorf("%w: internal code and name are required", ErrValidation)
	}
	if eq.CategoryID <= 0 || eq.LaboratoryID <= 0 {
		return nil, fmt.Errorf("%w: category and laboratory are required", ErrValidation)
	}

	now := e.clock.Now()
	eq.State = repository.EquipmentAvailable
	if !validGrade(eq.Condition) {
		eq.Condition = repository.GradeGood
	}
	eq.RegisteredAt = now
	eq.UpdatedAt = now

	if err := e.equipment.Create(ctx, eq); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("register_equipment").Inc()
		return nil, classifyStoreErr(err)
	}

	e.cacheSet(eq)
	e.logger.Info("equipment registered",
		zap.Int64("equipment_id", eq.ID),
		zap.String("code", eq.InternalCode))
	return eq, nil
}

// DecommissionEquipment retires a unit permanently. Refused while the unit
// has an open loan; open maintenance alerts are cancelled.
func (e *Engine) DecommissionEquipment(ctx context.Context, equipmentID int64, reason string) (*repository.Equipment, error) {
	var equipment *repository.Equipment
	op := func() error {
		return e.inTx(ctx, func(tx db.Tx) error {
			eq, err := e.equipment.GetByIDTx(ctx, tx, equipmentID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if eq.State == repository.EquipmentDecommissioned {
				return fmt.Errorf("%w: equipment %s is already decommissioned", ErrInvalidEquipmentState, eq.InternalCode)
			}

			active, err := e.loans.CountActiveTx(ctx, tx, equipmentID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if active > 0 {
				return fmt.Errorf("%w: equipment %s has an active loan", ErrConflictingLoan, eq.InternalCode)
			}

			now := e.clock.Now()
			eq.State = repository.EquipmentDecommissioned
			eq.UpdatedAt = now
			if err := e.equipment.UpdateTx(ctx, tx, eq); err != nil {
				return classifyStoreErr(err)
			}

			open, err := e.alerts.ListOpenByEquipmentTx(ctx, tx, equipmentID)
			if err != nil {
				return classifyStoreErr(err)
			}
			for _, a := range open {
				notes := "Equipo dado de baja"
				if reason != "" {
					notes = fmt.Sprintf("Equipo dado de baja: %s", reason)
				}
				a.State = repository.AlertCancelled
				a.ResolvedAt = &now
				a.ResolutionNotes = &notes
				if err := e.alerts.UpdateTx(ctx, tx, a); err != nil {
					return classifyStoreErr(err)
				}
			}

			equipment = eq
			return nil
		})
	}

	if err := withRetry(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, op); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("decommission_equipment").Inc()
		return nil, err
	}

	if e.cache != nil {
		e.cache.Delete(equipmentID)
	}
	e.logger.Info("equipment decommissioned",
		zap.Int64("equipment_id", equipmentID),
		zap.String("reason", reason))
	return equipment, nil
}
