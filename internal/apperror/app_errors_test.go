package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{fmt.Errorf("%w: bad cell", ErrValidation), CodeValidation},
		{fmt.Errorf("failed to submit move: %w", ErrInvalidTurn), CodeInvalidTurn},
		{ErrCellOccupied, CodeCellOccupied},
		{fmt.Errorf("match %w", ErrNotFound), CodeNotFound},
		{ErrNotParticipant, CodeNotParticipant},
		{ErrConflict, CodeConflict},
		{errors.New("redis: connection refused"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}
