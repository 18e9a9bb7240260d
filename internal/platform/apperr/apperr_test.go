package apperr

import (
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "validation keeps message", err: Validation("name is required"), want: "name is required"},
		{name: "wrapped not found keeps message", err: fmt.Errorf("get: %w", NotFound("pet not found")), want: "pet not found"},
		{name: "bare sentinel", err: ErrUnauthenticated, want: "unauthenticated"},
		{name: "storage fault hidden", err: pkgerrors.Wrap(fmt.Errorf("disk I/O error"), "insert pet"), want: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err, "internal error"))
		})
	}
}

func TestIsBusiness(t *testing.T) {
	assert.True(t, IsBusiness(Validation("x")))
	assert.True(t, IsBusiness(fmt.Errorf("wrap: %w", NotFound("x"))))
	assert.True(t, IsBusiness(Unauthenticated("x")))
	assert.False(t, IsBusiness(fmt.Errorf("boom")))
}
