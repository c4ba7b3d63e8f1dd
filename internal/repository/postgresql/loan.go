package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/repository"
)

type LoanRepo struct {
	db db.DB
}

func NewLoanRepo(db db.DB) *LoanRepo {
	return &LoanRepo{db: db}
}

func (r *LoanRepo) CreateTx(ctx context.Context, tx db.Tx, loan *repository.Loan) error {
	err := tx.ExecQueryRow(ctx, `
        INSERT INTO prestamos (
            codigo_prestamo, id_equipo, id_usuario_solicitante, id_usuario_autorizador,
            fecha_solicitud, fecha_prestamo, fecha_devolucion_programada, fecha_devolucion_real,
            proposito_prestamo, observaciones_prestamo, observaciones_devolucion,
            estado_prestamo, calificacion_devolucion
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id_prestamo
    `, loan.Code, loan.EquipmentID, loan.RequesterID, loan.ApproverID,
		loan.RequestedAt, loan.ScheduledStart, loan.ScheduledEnd, loan.ReturnedAt,
		loan.Purpose, loan.Notes, loan.ReturnNotes,
		loan.Status, loan.ReturnGrade).Scan(&loan.ID)
	if err != nil {
		return fmt.Errorf("failed to insert loan: %w", err)
	}
	return nil
}

func (r *LoanRepo) GetByID(ctx context.Context, id int64) (*repository.Loan, error) {
	var loan repository.Loan
	err := r.db.Get(ctx, &loan, "SELECT * FROM prestamos WHERE id_prestamo = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &loan, nil
}

func (r *LoanRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Loan, error) {
	var loan repository.Loan
	err := tx.Get(ctx, &loan, "SELECT * FROM prestamos WHERE id_prestamo = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &loan, nil
}

func (r *LoanRepo) UpdateTx(ctx context.Context, tx db.Tx, loan *repository.Loan) error {
	tag, err := tx.Exec(ctx, `
        UPDATE prestamos
        SET
            id_usuario_autorizador = $1,
            fecha_devolucion_real = $2,
            observaciones_prestamo = $3,
            observaciones_devolucion = $4,
            estado_prestamo = $5,
            calificacion_devolucion = $6
        WHERE id_prestamo = $7
    `, loan.ApproverID, loan.ReturnedAt, loan.Notes, loan.ReturnNotes,
		loan.Status, loan.ReturnGrade, loan.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// ListActive returns loans in state 'activo', newest first. requesterID = 0
// means no requester filter.
func (r *LoanRepo) ListActive(ctx context.Context, requesterID int64) ([]*repository.Loan, error) {
	query := "SELECT * FROM prestamos WHERE estado_prestamo = $1"
	args := []interface{}{repository.LoanActive}

	if requesterID > 0 {
		query += " AND id_usuario_solicitante = $2"
		args = append(args, requesterID)
	}
	query += " ORDER BY fecha_prestamo DESC"

	var loans []*repository.Loan
	err := r.db.Select(ctx, &loans, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active loans: %w", err)
	}
	return loans, nil
}

// ExistsOverlappingTx reports whether an open loan (requested, approved or
// active) on the equipment overlaps the [start, end] window. Runs under the
// equipment row lock so concurrent requests serialize.
func (r *LoanRepo) ExistsOverlappingTx(ctx context.Context, tx db.Tx, equipmentID int64, start, end time.Time) (bool, error) {
	var count int
	err := tx.ExecQueryRow(ctx, `
        SELECT COUNT(*) FROM prestamos
        WHERE id_equipo = $1
          AND estado_prestamo IN ($2, $3, $4)
          AND fecha_prestamo <= $5
          AND fecha_devolucion_programada >= $6
    `, equipmentID,
		repository.LoanRequested, repository.LoanApproved, repository.LoanActive,
		end, start).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping loans: %w", err)
	}
	return count > 0, nil
}

// CountActiveTx counts loans in state 'activo' for the equipment inside the
// caller's transaction. Invariant guard for activation.
func (r *LoanRepo) CountActiveTx(ctx context.Context, tx db.Tx, equipmentID int64) (int, error) {
	var count int
	err := tx.ExecQueryRow(ctx, `
        SELECT COUNT(*) FROM prestamos
        WHERE id_equipo = $1 AND estado_prestamo = $2
    `, equipmentID, repository.LoanActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active loans: %w", err)
	}
	return count, nil
}
