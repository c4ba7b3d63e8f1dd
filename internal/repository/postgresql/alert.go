package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/repository"
)

type AlertRepo struct {
	db db.DB
}

func NewAlertRepo(db db.DB) *AlertRepo {
	return &AlertRepo{db: db}
}

func (r *AlertRepo) CreateTx(ctx context.Context, tx db.Tx, alert *repository.Alert) error {
	err := tx.ExecQueryRow(ctx, `
        INSERT INTO alertas_mantenimiento (
            id_equipo, id_tipo_mantenimiento, tipo_alerta, descripcion_alerta,
            fecha_alerta, fecha_limite, prioridad, estado_alerta, asignado_a
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id_alerta
    `, alert.EquipmentID, alert.TypeID, alert.Kind, alert.Description,
		alert.RaisedAt, alert.Deadline, alert.Priority, alert.State, alert.AssigneeID).Scan(&alert.ID)
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}
	return nil
}

func (r *AlertRepo) GetByID(ctx context.Context, id int64) (*repository.Alert, error) {
	var alert repository.Alert
	err := r.db.Get(ctx, &alert, "SELECT * FROM alertas_mantenimiento WHERE id_alerta = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Alert, error) {
	var alert repository.Alert
	err := tx.Get(ctx, &alert, "SELECT * FROM alertas_mantenimiento WHERE id_alerta = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *AlertRepo) UpdateTx(ctx context.Context, tx db.Tx, alert *repository.Alert) error {
	tag, err := tx.Exec(ctx, `
        UPDATE alertas_mantenimiento
        SET
            tipo_alerta = $1,
            prioridad = $2,
            estado_alerta = $3,
            asignado_a = $4,
            fecha_resolucion = $5,
            observaciones_resolucion = $6
        WHERE id_alerta = $7
    `, alert.Kind, alert.Priority, alert.State, alert.AssigneeID,
		alert.ResolvedAt, alert.ResolutionNotes, alert.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *AlertRepo) ListPending(ctx context.Context) ([]*repository.Alert, error) {
	var alerts []*repository.Alert
	err := r.db.Select(ctx, &alerts, `
        SELECT * FROM alertas_mantenimiento
        WHERE estado_alerta = $1
        ORDER BY id_alerta ASC
    `, repository.AlertPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending alerts: %w", err)
	}
	return alerts, nil
}

// ListOpenByEquipmentTx returns every open (pending or in-progress) alert on
// the equipment, locked for update.
func (r *AlertRepo) ListOpenByEquipmentTx(ctx context.Context, tx db.Tx, equipmentID int64) ([]*repository.Alert, error) {
	var alerts []*repository.Alert
	err := tx.Select(ctx, &alerts, `
        SELECT * FROM alertas_mantenimiento
        WHERE id_equipo = $1
          AND estado_alerta IN ($2, $3)
        ORDER BY id_alerta ASC
        FOR UPDATE
    `, equipmentID, repository.AlertPending, repository.AlertInProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to list open alerts for equipment %d: %w", equipmentID, err)
	}
	return alerts, nil
}

// FindOpenForPairTx looks for an open (pending or in-progress) maintenance
// alert for the equipment/type pair. The row lock only covers an existing
// alert; callers doing check-and-create must hold the equipos row lock,
// since an absent row locks nothing.
func (r *AlertRepo) FindOpenForPairTx(ctx context.Context, tx db.Tx, equipmentID, typeID int64) (*repository.Alert, error) {
	var alert repository.Alert
	err := tx.Get(ctx, &alert, `
        SELECT * FROM alertas_mantenimiento
        WHERE id_equipo = $1
          AND id_tipo_mantenimiento = $2
          AND estado_alerta IN ($3, $4)
          AND tipo_alerta IN ($5, $6)
        ORDER BY id_alerta ASC
        LIMIT 1
        FOR UPDATE
    `, equipmentID, typeID,
		repository.AlertPending, repository.AlertInProgress,
		repository.AlertScheduledMaintenance, repository.AlertOverdueMaintenance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &alert, nil
}
