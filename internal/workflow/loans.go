package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/centrominero/gil/internal/db"
	"github.com/centrominero/gil/internal/metrics"
	"github.com/centrominero/gil/internal/repository"
)

func newLoanCode() string {
	return "PRE-" + strings.ToUpper(uuid.NewString()[:8])
}

func validGrade(g repository.ConditionGrade) bool {
	switch g {
	case repository.GradeExcellent, repository.GradeGood, repository.GradeRegular, repository.GradeBad:
		return true
	}
	return false
}

// RequestLoan registers a new loan request for an equipment unit. The
// equipment row is locked for the duration of the overlap check so two
// concurrent requests for the same window cannot both pass.
func (e *Engine) RequestLoan(ctx context.Context, equipmentID, requesterID int64, purpose string, scheduledStart, scheduledEnd time.Time) (*repository.Loan, error) {
	if equipmentID <= 0 || requesterID <= 0 {
		return nil, fmt.Errorf("%w: equipment and requester are required", ErrValidation)
	}
	if !scheduledEnd.After(scheduledStart) {
		return nil, fmt.Errorf("%w: scheduled end must be after scheduled start", ErrValidation)
	}

	var loan *repository.Loan
	op := func() error {
		return e.inTx(ctx, func(tx db.Tx) error {
			eq, err := e.equipment.GetByIDTx(ctx, tx, equipmentID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if eq.State == repository.EquipmentDecommissioned {
				return fmt.Errorf("%w: equipment %s is decommissioned", ErrInvalidEquipmentState, eq.InternalCode)
			}

			overlaps, err := e.loans.ExistsOverlappingTx(ctx, tx, equipmentID, scheduledStart, scheduledEnd)
			if err != nil {
				return classifyStoreErr(err)
			}
			if overlaps {
				return fmt.Errorf("%w: equipment %s already booked in the requested window", ErrConflictingLoan, eq.InternalCode)
			}

			l := &repository.Loan{
				Code:           newLoanCode(),
				EquipmentID:    equipmentID,
				RequesterID:    requesterID,
				RequestedAt:    e.clock.Now(),
				ScheduledStart: scheduledStart,
				ScheduledEnd:   scheduledEnd,
				Purpose:        purpose,
				Status:         repository.LoanRequested,
			}
			if err := e.loans.CreateTx(ctx, tx, l); err != nil {
				return classifyStoreErr(err)
			}
			loan = l
			return nil
		})
	}

	if err := withRetry(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, op); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("request_loan").Inc()
		return nil, err
	}

	metrics.LoansRequestedTotal.Inc()
	e.logger.Info("loan requested",
		zap.String("code", loan.Code),
		zap.Int64("equipment_id", equipmentID),
		zap.Int64("requester_id", requesterID))
	return loan, nil
}

// ApproveLoan moves a requested loan to approved and records the approver.
func (e *Engine) ApproveLoan(ctx context.Context, loanID, approverID int64) (*repository.Loan, error) {
	if approverID <= 0 {
		return nil, fmt.Errorf("%w: approver is required", ErrValidation)
	}

	var loan *repository.Loan
	op := func() error {
		return e.inTx(ctx, func(tx db.Tx) error {
			l, err := e.loans.GetByIDTx(ctx, tx, loanID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if !canTransition(l.Status, repository.LoanApproved) {
				return invalidTransitionf(l.Status, "approve")
			}

			l.Status = repository.LoanApproved
			l.ApproverID = &approverID
			if err := e.loans.UpdateTx(ctx, tx, l); err != nil {
				return classifyStoreErr(err)
			}
			loan = l
			return nil
		})
	}

	if err := withRetry(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, op); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("approve_loan").Inc()
		return nil, err
	}

	e.logger.Info("loan approved", zap.Int64("loan_id", loanID), zap.Int64("approver_id", approverID))
	return loan, nil
}

// RejectLoan terminates a requested loan. Also used by requesters to abandon
// their own request before approval.
func (e *Engine) RejectLoan(ctx context.Context, loanID int64, reason string) (*repository.Loan, error) {
	var loan *repository.Loan
	op := func() error {
		return e.inTx(ctx, func(tx db.Tx) error {
			l, err := e.loans.GetByIDTx(ctx, tx, loanID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if !canTransition(l.Status, repository.LoanRejected) {
				return invalidTransitionf(l.Status, "reject")
			}

			l.Status = repository.LoanRejected
			if reason != "" {
				l.Notes = &reason
			}
			if err := e.loans.UpdateTx(ctx, tx, l); err != nil {
				return classifyStoreErr(err)
			}
			loan = l
			return nil
		})
	}

	if err := withRetry(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, op); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("reject_loan").Inc()
		return nil, err
	}

	e.logger.Info("loan rejected", zap.Int64("loan_id", loanID))
	return loan, nil
}

// ActivateLoan hands the equipment over: approved -> active, equipment ->
// prestado. The active-loan count is re-checked under the equipment row lock
// so two concurrent activations can never both succeed.
func (e *Engine) ActivateLoan(ctx context.Context, loanID int64) (*repository.Loan, error) {
	// Peek at the loan to learn its equipment, then lock equipment before
	// loan. Every writer takes the locks in that order.
	peek, err := e.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}

	var loan *repository.Loan
	var equipment *repository.Equipment
	op := func() error {
		return e.inTx(ctx, func(tx db.Tx) error {
			eq, err := e.equipment.GetByIDTx(ctx, tx, peek.EquipmentID)
			if err != nil {
				return classifyStoreErr(err)
			}
			l, err := e.loans.GetByIDTx(ctx, tx, loanID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if !canTransition(l.Status, repository.LoanActive) {
				return invalidTransitionf(l.Status, "activate")
			}

			active, err := e.loans.CountActiveTx(ctx, tx, eq.ID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if active > 0 {
				metrics.LoanConflictsTotal.Inc()
				return fmt.Errorf("%w: equipment %s already has an active loan", ErrConflictingLoan, eq.InternalCode)
			}
			if eq.State != repository.EquipmentAvailable {
				return fmt.Errorf("%w: equipment %s is %s", ErrInvalidEquipmentState, eq.InternalCode, eq.State)
			}

			l.Status = repository.LoanActive
			if err := e.loans.UpdateTx(ctx, tx, l); err != nil {
				return classifyStoreErr(err)
			}

			eq.State = repository.EquipmentLoaned
			eq.UpdatedAt = e.clock.Now()
			if err := e.equipment.UpdateTx(ctx, tx, eq); err != nil {
				return classifyStoreErr(err)
			}
			loan = l
			equipment = eq
			return nil
		})
	}

	if err := withRetry(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, op); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("activate_loan").Inc()
		return nil, err
	}

	e.cacheSet(equipment)
	metrics.LoansActivatedTotal.Inc()
	e.logger.Info("loan activated",
		zap.Int64("loan_id", loanID),
		zap.Int64("equipment_id", equipment.ID))
	return loan, nil
}

// ReturnLoan closes an active loan. The equipment goes back to disponible,
// or to mantenimiento with an urgent-review alert when it came back in
// regular or bad shape. Loan and equipment mutate in one transaction.
func (e *Engine) ReturnLoan(ctx context.Context, loanID int64, returnGrade repository.ConditionGrade, observations string) (*repository.Loan, error) {
	if !validGrade(returnGrade) {
		return nil, fmt.Errorf("%w: unknown condition grade %q", ErrValidation, returnGrade)
	}

	peek, err := e.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, classifyStoreErr(err)
	}

	var loan *repository.Loan
	var equipment *repository.Equipment
	op := func() error {
		return e.inTx(ctx, func(tx db.Tx) error {
			eq, err := e.equipment.GetByIDTx(ctx, tx, peek.EquipmentID)
			if err != nil {
				return classifyStoreErr(err)
			}
			l, err := e.loans.GetByIDTx(ctx, tx, loanID)
			if err != nil {
				return classifyStoreErr(err)
			}
			if !canTransition(l.Status, repository.LoanReturned) {
				return invalidTransitionf(l.Status, "return")
			}

			now := e.clock.Now()
			l.Status = repository.LoanReturned
			l.ReturnedAt = &now
			l.ReturnGrade = &returnGrade
			if observations != "" {
				l.ReturnNotes = &observations
			}
			if err := e.loans.UpdateTx(ctx, tx, l); err != nil {
				return classifyStoreErr(err)
			}

			eq.Condition = returnGrade
			eq.UpdatedAt = now
			if returnGrade == repository.GradeRegular || returnGrade == repository.GradeBad {
				eq.State = repository.EquipmentMaintenance
				alert := &repository.Alert{
					EquipmentID: eq.ID,
					Kind:        repository.AlertUrgentReview,
					Description: fmt.Sprintf("Equipo %s devuelto en estado %s (préstamo %s)", eq.InternalCode, returnGrade, l.Code),
					RaisedAt:    now,
					Deadline:    now,
					Priority:    repository.PriorityHigh,
					State:       repository.AlertPending,
				}
				if err := e.createAlertTx(ctx, tx, alert); err != nil {
					return err
				}
			} else {
				eq.State = repository.EquipmentAvailable
			}
			if err := e.equipment.UpdateTx(ctx, tx, eq); err != nil {
				return classifyStoreErr(err)
			}
			loan = l
			equipment = eq
			return nil
		})
	}

	if err := withRetry(ctx, e.cfg.RetryAttempts, e.cfg.RetryBackoff, op); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("return_loan").Inc()
		return nil, err
	}

	e.cacheSet(equipment)
	metrics.LoansReturnedTotal.Inc()
	e.logger.Info("loan returned",
		zap.Int64("loan_id", loanID),
		zap.Int64("equipment_id", equipment.ID),
		zap.String("grade", string(returnGrade)))
	return loan, nil
}
