package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/repository"
)

type EquipmentRepo struct {
	db db.DB
}

func NewEquipmentRepo(db db.DB) *EquipmentRepo {
	return &EquipmentRepo{db: db}
}

func (r *EquipmentRepo) Create(ctx context.Context, eq *repository.Equipment) error {
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO equipos (
            codigo_interno, nombre_equipo, marca, modelo, numero_serie,
            id_categoria, id_laboratorio, valor_adquisicion, fecha_adquisicion,
            estado_equipo, estado_fisico, fecha_registro, fecha_actualizacion
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id_equipo
    `, eq.InternalCode, eq.Name, eq.Brand, eq.Model, eq.SerialNumber,
		eq.CategoryID, eq.LaboratoryID, eq.AcquisitionValue, eq.AcquiredAt,
		eq.State, eq.Condition, eq.RegisteredAt, eq.UpdatedAt).Scan(&eq.ID)
	if err != nil {
		return fmt.Errorf("failed to insert equipment: %w", err)
	}
	return nil
}

func (r *EquipmentRepo) GetByID(ctx context.Context, id int64) (*repository.Equipment, error) {
	var eq repository.Equipment
	err := r.db.Get(ctx, &eq, "SELECT * FROM equipos WHERE id_equipo = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &eq, nil
}

// GetByIDTx locks the equipment row for the rest of the transaction. Every
// transition touching an equipment goes through this lock.
func (r *EquipmentRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Equipment, error) {
	var eq repository.Equipment
	err := tx.Get(ctx, &eq, "SELECT * FROM equipos WHERE id_equipo = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &eq, nil
}

func (r *EquipmentRepo) UpdateTx(ctx context.Context, tx db.Tx, eq *repository.Equipment) error {
	tag, err := tx.Exec(ctx, `
        UPDATE equipos
        SET
            estado_equipo = $1,
            estado_fisico = $2,
            fecha_actualizacion = $3
        WHERE id_equipo = $4
    `, eq.State, eq.Condition, eq.UpdatedAt, eq.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *EquipmentRepo) ListAvailable(ctx context.Context) ([]*repository.Equipment, error) {
	var items []*repository.Equipment
	err := r.db.Select(ctx, &items, `
        SELECT * FROM equipos
        WHERE estado_equipo = $1
        ORDER BY codigo_interno ASC
    `, repository.EquipmentAvailable)
	if err != nil {
		return nil, fmt.Errorf("failed to list available equipment: %w", err)
	}
	return items, nil
}

// ListInService returns every unit that is still tracked, i.e. not
// decommissioned. The maintenance scheduler walks this set.
func (r *EquipmentRepo) ListInService(ctx context.Context) ([]*repository.Equipment, error) {
	var items []*repository.Equipment
	err := r.db.Select(ctx, &items, `
        SELECT * FROM equipos
        WHERE estado_equipo <> $1
        ORDER BY id_equipo ASC
    `, repository.EquipmentDecommissioned)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment in service: %w", err)
	}
	return items, nil
}
