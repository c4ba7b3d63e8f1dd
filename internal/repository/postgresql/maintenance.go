package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/repository"
)

type MaintenanceRepo struct {
	db db.DB
}

func NewMaintenanceRepo(db db.DB) *MaintenanceRepo {
	return &MaintenanceRepo{db: db}
}

func (r *MaintenanceRepo) GetTypeByID(ctx context.Context, id int64) (*repository.MaintenanceType, error) {
	var mt repository.MaintenanceType
	err := r.db.Get(ctx, &mt, "SELECT * FROM tipos_mantenimiento WHERE id_tipo_mantenimiento = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &mt, nil
}

// ListPreventiveTypes returns the recurring preventive types. Corrective
// types (frecuencia_dias = 0) never produce scheduled alerts.
func (r *MaintenanceRepo) ListPreventiveTypes(ctx context.Context) ([]*repository.MaintenanceType, error) {
	var types []*repository.MaintenanceType
	err := r.db.Select(ctx, &types, `
        SELECT * FROM tipos_mantenimiento
        WHERE es_preventivo = true AND frecuencia_dias > 0
        ORDER BY id_tipo_mantenimiento ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list preventive maintenance types: %w", err)
	}
	return types, nil
}

func (r *MaintenanceRepo) CreateRecordTx(ctx context.Context, tx db.Tx, rec *repository.MaintenanceRecord) error {
	err := tx.ExecQueryRow(ctx, `
        INSERT INTO historial_mantenimiento (
            id_equipo, id_tipo_mantenimiento, fecha_mantenimiento, tecnico_responsable_id,
            descripcion_trabajo, costo_mantenimiento, tiempo_inactividad_horas,
            estado_post_mantenimiento, proxima_fecha_mantenimiento, fecha_registro
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id_mantenimiento
    `, rec.EquipmentID, rec.TypeID, rec.PerformedAt, rec.TechnicianID,
		rec.WorkDescription, rec.Cost, rec.DowntimeHours,
		rec.ResultGrade, rec.NextDueAt, rec.CreatedAt).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("failed to insert maintenance record: %w", err)
	}
	return nil
}

// LastRecord returns the most recent record for an equipment/type pair, or
// ErrObjectNotFound when the pair has no history yet.
func (r *MaintenanceRepo) LastRecord(ctx context.Context, equipmentID, typeID int64) (*repository.MaintenanceRecord, error) {
	var rec repository.MaintenanceRecord
	err := r.db.Get(ctx, &rec, `
        SELECT * FROM historial_mantenimiento
        WHERE id_equipo = $1 AND id_tipo_mantenimiento = $2
        ORDER BY fecha_mantenimiento DESC
        LIMIT 1
    `, equipmentID, typeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *MaintenanceRepo) ListByEquipment(ctx context.Context, equipmentID int64) ([]*repository.MaintenanceRecord, error) {
	var recs []*repository.MaintenanceRecord
	err := r.db.Select(ctx, &recs, `
        SELECT * FROM historial_mantenimiento
        WHERE id_equipo = $1
        ORDER BY fecha_mantenimiento DESC
    `, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance history: %w", err)
	}
	return recs, nil
}
