package workflow

import "github.com/centrominero/gil/internal/repository"

// loanTransitions is the single source of truth for the loan state machine:
//
//	solicitado -> aprobado | rechazado
//	aprobado   -> activo
//	activo     -> devuelto
//
// 'rechazado' and 'devuelto' are terminal. An overdue active loan is a
// temporal classification of 'activo', not a distinct stored state.
var loanTransitions = map[repository.LoanStatus][]repository.LoanStatus{
	repository.LoanRequested: {repository.LoanApproved, repository.LoanRejected},
	repository.LoanApproved:  {repository.LoanActive},
	repository.LoanActive:    {repository.LoanReturned},
}

func canTransition(from, to repository.LoanStatus) bool {
	for _, next := range loanTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
