package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFeeStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 1, 0)
	past := now.AddDate(0, -1, 0)

	tests := []struct {
		name    string
		amount  float64
		paid    float64
		dueDate time.Time
		current FeeStatus
		want    FeeStatus
	}{
		{"unpaid before due date", 1000, 0, future, FeePending, FeePending},
		{"unpaid past due date", 1000, 0, past, FeePending, FeeOverdue},
		{"partial payment", 1000, 400, future, FeePending, FeePartial},
		{"partial payment past due date", 1000, 400, past, FeeOverdue, FeePartial},
		{"fully paid", 1000, 1000, past, FeePartial, FeePaid},
		{"waived stays waived", 1000, 0, past, FeeWaived, FeeWaived},
		{"waived ignores payments", 1000, 1000, future, FeeWaived, FeeWaived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveFeeStatus(tt.amount, tt.paid, tt.dueDate, tt.current, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeeOutstanding(t *testing.T) {
	fee := &Fee{Amount: 1500, AmountPaid: 600}
	assert.Equal(t, 900.0, fee.Outstanding())
}

func TestFeeEnumValidity(t *testing.T) {
	assert.True(t, FeeTuition.IsValid())
	assert.False(t, FeeType("XXX").IsValid())

	assert.True(t, PaymentUPI.IsValid())
	assert.False(t, PaymentMode("WIRE").IsValid())

	assert.True(t, FeeOverdue.IsValid())
	assert.False(t, FeeStatus("NOPE").IsValid())
}
