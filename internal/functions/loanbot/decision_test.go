package loanbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		wage       int
		requested  int
		wantResult DecisionResult
	}{
		{
			name:       "approved when half wage strictly exceeds request",
			wage:       1000,
			requested:  499,
			wantResult: DecisionApproved,
		},
		{
			name:       "tie denies",
			wage:       1000,
			requested:  500,
			wantResult: DecisionDenied,
		},
		{
			name:       "denied when request exceeds half wage",
			wage:       1000,
			requested:  501,
			wantResult: DecisionDenied,
		},
		{
			name:       "zero wage denies",
			wage:       0,
			requested:  0,
			wantResult: DecisionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.wage, tt.requested)
			assert.Equal(t, tt.wantResult, got.Result)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestDecide_IsDeterministic(t *testing.T) {
	first := Decide(2400, 900)
	second := Decide(2400, 900)
	assert.Equal(t, first, second)
}
