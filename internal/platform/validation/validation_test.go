package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pet-health/internal/platform/apperr"
)

type sample struct {
	Name    string  `json:"name" validate:"required"`
	Species string  `json:"species" validate:"omitempty,oneof=cat dog other"`
	Date    string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Weight  float64 `json:"weight" validate:"gte=0"`
}

func TestStruct_Messages(t *testing.T) {
	tests := []struct {
		name string
		in   sample
		want string
	}{
		{name: "ok", in: sample{Name: "Mango", Species: "cat", Date: "2026-02-10"}, want: ""},
		{name: "required uses json name", in: sample{}, want: "name is required"},
		{name: "oneof lists options", in: sample{Name: "x", Species: "fish"}, want: "species must be one of: cat, dog, other"},
		{name: "datetime", in: sample{Name: "x", Date: "2026/02/10"}, want: "date must be YYYY-MM-DD"},
		{name: "gte", in: sample{Name: "x", Weight: -1}, want: "weight must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.want)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}
