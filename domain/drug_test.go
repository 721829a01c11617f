package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name   string
		expiry time.Time
		want   ExpiryStatus
	}{
		{"one day past", now.AddDate(0, 0, -1), StatusCritical},
		{"long past", now.AddDate(-1, 0, 0), StatusCritical},
		{"expiring today", now, StatusWarning},
		{"expiring today late evening", time.Date(2026, time.March, 10, 23, 59, 0, 0, time.Local), StatusWarning},
		{"exactly 30 days out", now.AddDate(0, 0, 30), StatusWarning},
		{"exactly 31 days out", now.AddDate(0, 0, 31), StatusSafe},
		{"far future", now.AddDate(2, 0, 0), StatusSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := DrugRecord{ExpiryDate: tt.expiry}
			assert.Equal(t, tt.want, Classify(rec, now))
		})
	}
}

func TestDaysUntilExpiryUsesCalendarDays(t *testing.T) {
	// 23:00 today to 01:00 tomorrow is two hours apart but one calendar day.
	now := time.Date(2026, time.June, 1, 23, 0, 0, 0, time.Local)
	rec := DrugRecord{ExpiryDate: time.Date(2026, time.June, 2, 1, 0, 0, 0, time.Local)}
	assert.Equal(t, 1, DaysUntilExpiry(rec, now))

	rec.ExpiryDate = time.Date(2026, time.May, 31, 23, 59, 0, 0, time.Local)
	assert.Equal(t, -1, DaysUntilExpiry(rec, now))
}

func TestStockFlags(t *testing.T) {
	assert.True(t, IsLowStock(DrugRecord{Quantity: 0}))
	assert.True(t, IsLowStock(DrugRecord{Quantity: 4}))
	assert.False(t, IsLowStock(DrugRecord{Quantity: 5}))

	assert.True(t, IsOutOfStock(DrugRecord{Quantity: 0}))
	assert.False(t, IsOutOfStock(DrugRecord{Quantity: 1}))
}
