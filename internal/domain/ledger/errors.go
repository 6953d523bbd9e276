package ledger

import (
	"fmt"

	"github.com/flowik/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ErrNoActiveDebt is returned when a payment is submitted for a client
// with nothing outstanding to pay toward.
var ErrNoActiveDebt = shared.NewDomainError("NO_ACTIVE_DEBT", "Client has no active debt to pay toward")

// OverpaymentError is returned when a payment exceeds the client's
// outstanding total. It carries the computed outstanding total so the
// caller can retry with a corrected amount.
type OverpaymentError struct {
	Outstanding decimal.Decimal
}

// Error implements the error interface
func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment exceeds outstanding debt total of %s", e.Outstanding.StringFixed(2))
}

// Code returns the stable error code for API mapping
func (e *OverpaymentError) Code() string {
	return "OVERPAYMENT_REJECTED"
}
