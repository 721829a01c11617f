package domain

import (
	"math"
	"time"
)

// ExpiryStatus classifies a drug record against its expiry date.
type ExpiryStatus string

const (
	StatusCritical ExpiryStatus = "critical"
	StatusWarning  ExpiryStatus = "warning"
	StatusSafe     ExpiryStatus = "safe"
)

const (
	// WarningWindowDays is the horizon within which a drug counts as
	// expiring soon.
	WarningWindowDays = 30
	// LowStockThreshold is the quantity below which a drug counts as
	// running low.
	LowStockThreshold = 5
)

// DrugRecord is one tracked inventory entry. The JSON field names are the
// on-disk layout and must stay stable.
type DrugRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Quantity   int64     `json:"quantity"`
	ExpiryDate time.Time `json:"expiryDate"`
	AddedAt    time.Time `json:"addedAt"`
}

// DaysUntilExpiry returns the whole-day distance from now to the record's
// expiry date. Both instants are truncated to local midnight, so a record
// expiring any time today reads as 0 days remaining, and yesterday as -1.
func DaysUntilExpiry(rec DrugRecord, now time.Time) int {
	diff := midnight(rec.ExpiryDate).Sub(midnight(now))
	// Round rather than truncate: a DST transition makes one day 23 or 25
	// hours long.
	return int(math.Round(diff.Hours() / 24))
}

// Classify maps a record's expiry date to its status relative to now.
func Classify(rec DrugRecord, now time.Time) ExpiryStatus {
	days := DaysUntilExpiry(rec, now)
	switch {
	case days < 0:
		return StatusCritical
	case days <= WarningWindowDays:
		return StatusWarning
	default:
		return StatusSafe
	}
}

// IsLowStock reports whether the record's quantity is below the low-stock
// threshold.
func IsLowStock(rec DrugRecord) bool {
	return rec.Quantity < LowStockThreshold
}

// IsOutOfStock reports whether the record is fully depleted.
func IsOutOfStock(rec DrugRecord) bool {
	return rec.Quantity == 0
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Local().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
