package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/pgmodel/dialect"
)

func TestOf(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"postgres", dialect.Postgres},
		{"pgx", dialect.Postgres},
		{"pgx/v5", dialect.Postgres},
		{"mysql", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, dialect.Of(tt.input))
		})
	}
}
