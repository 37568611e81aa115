package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gestaoplug/erp-api/pkg/money"
)

func TestBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"33.33", "R$ 33,33"},
		{"1234.56", "R$ 1.234,56"},
		{"-10.50", "-R$ 10,50"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, money.BRL(decimal.RequireFromString(tc.in)), "entrada %s", tc.in)
	}
}
