package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/centrominero/gil/internal/repository"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    repository.LoanStatus
		to      repository.LoanStatus
		allowed bool
	}{
		{"request to approved", repository.LoanRequested, repository.LoanApproved, true},
		{"request to rejected", repository.LoanRequested, repository.LoanRejected, true},
		{"approved to active", repository.LoanApproved, repository.LoanActive, true},
		{"active to returned", repository.LoanActive, repository.LoanReturned, true},

		{"request straight to active", repository.LoanRequested, repository.LoanActive, false},
		{"request straight to returned", repository.LoanRequested, repository.LoanReturned, false},
		{"approved to rejected", repository.LoanApproved, repository.LoanRejected, false},
		{"approved to returned", repository.LoanApproved, repository.LoanReturned, false},
		{"active to approved", repository.LoanActive, repository.LoanApproved, false},
		{"returned is terminal", repository.LoanReturned, repository.LoanActive, false},
		{"rejected is terminal", repository.LoanRejected, repository.LoanApproved, false},
		{"self transition", repository.LoanActive, repository.LoanActive, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, canTransition(tc.from, tc.to))
		})
	}
}
