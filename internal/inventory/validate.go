package inventory

import (
	"strconv"
	"strings"
	"time"
)

const expiryDateLayout = "2006-01-02"

// NewDrug is the validated input to Store.Add. Construct it with
// ParseNewDrug; the store does not re-check these fields.
type NewDrug struct {
	Name       string
	Quantity   int64
	ExpiryDate time.Time
}

// ValidationError reports which input field was rejected and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// ParseNewDrug is the validation boundary in front of Add. Quantity and
// expiry date arrive as raw text from the UI form; the expiry date is
// normalized to device-local midnight of the given calendar day.
func ParseNewDrug(name, quantity, expiryDate string) (NewDrug, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewDrug{}, &ValidationError{Field: "name", Reason: "is required"}
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(quantity), 10, 64)
	if err != nil {
		return NewDrug{}, &ValidationError{Field: "quantity", Reason: "must be a whole number"}
	}
	if qty < 0 {
		return NewDrug{}, &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	expiry, err := time.ParseInLocation(expiryDateLayout, strings.TrimSpace(expiryDate), time.Local)
	if err != nil {
		return NewDrug{}, &ValidationError{Field: "expiry_date", Reason: "must be in YYYY-MM-DD format"}
	}
	return NewDrug{Name: name, Quantity: qty, ExpiryDate: expiry}, nil
}
