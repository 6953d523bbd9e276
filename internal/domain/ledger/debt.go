package ledger

import (
	"time"

	"github.com/flowik/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Default ageing thresholds, applied when a tenant registers a debt
// without explicit values.
const (
	DefaultOverdueDays  = 30
	DefaultCriticalDays = 60
)

// DebtStatus represents the status of a debt
type DebtStatus string

const (
	DebtStatusUnpaid        DebtStatus = "UNPAID"
	DebtStatusPartiallyPaid DebtStatus = "PARTIAL"
	DebtStatusPaid          DebtStatus = "PAID"
	DebtStatusOverdue       DebtStatus = "OVERDUE"
	DebtStatusCritical      DebtStatus = "CRITICAL"
)

// IsValid checks if the status is a valid DebtStatus
func (s DebtStatus) IsValid() bool {
	switch s {
	case DebtStatusUnpaid, DebtStatusPartiallyPaid, DebtStatusPaid,
		DebtStatusOverdue, DebtStatusCritical:
		return true
	}
	return false
}

// String returns the string representation of DebtStatus
func (s DebtStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the debt is in a terminal state.
// Paid is the only terminal status: a paid debt is exempt from
// reclassification and cannot receive further payments.
func (s DebtStatus) IsTerminal() bool {
	return s == DebtStatusPaid
}

// CanApplyPayment returns true if payments can be applied in this status
func (s DebtStatus) CanApplyPayment() bool {
	return !s.IsTerminal()
}

// Debt is the aggregate root for a client's registered debt.
// A debt is never physically deleted, only deactivated. Its status is
// mutated only by the payment allocator (on payment) or the
// reclassification sweep (on ageing thresholds).
type Debt struct {
	shared.TenantAggregateRoot
	ClientID       uuid.UUID       `json:"client_id"`
	Principal      decimal.Decimal `json:"principal"`
	DebtDate       time.Time       `json:"debt_date"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	OverdueDays    int             `json:"overdue_days"`
	CriticalDays   int             `json:"critical_days"`
	Status         DebtStatus      `json:"status"`
	Active         bool            `json:"active"`
}

// NewDebt creates a new debt for a client. Threshold values of zero or
// below fall back to the tenant defaults.
func NewDebt(
	tenantID uuid.UUID,
	clientID uuid.UUID,
	principal decimal.Decimal,
	expirationDate *time.Time,
	overdueDays int,
	criticalDays int,
	actorID uuid.UUID,
) (*Debt, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}
	if principal.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRINCIPAL", "Debt principal cannot be negative")
	}
	if actorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Actor identity is required")
	}
	if overdueDays <= 0 {
		overdueDays = DefaultOverdueDays
	}
	if criticalDays <= 0 {
		criticalDays = DefaultCriticalDays
	}
	if criticalDays < overdueDays {
		return nil, shared.NewDomainError("INVALID_THRESHOLDS", "Critical threshold cannot precede overdue threshold")
	}

	return &Debt{
		TenantAggregateRoot: shared.NewTenantAggregateRootWithCreator(tenantID, actorID),
		ClientID:            clientID,
		Principal:           principal,
		DebtDate:            time.Now(),
		ExpirationDate:      expirationDate,
		OverdueDays:         overdueDays,
		CriticalDays:        criticalDays,
		Status:              DebtStatusUnpaid,
		Active:              true,
	}, nil
}

// AgeReference returns the date ageing is measured from: the expiration
// date when present, otherwise the debt creation date.
func (d *Debt) AgeReference() time.Time {
	if d.ExpirationDate != nil {
		return *d.ExpirationDate
	}
	return d.DebtDate
}

// CanReceivePayment returns true if the allocator may apply money to this debt
func (d *Debt) CanReceivePayment() bool {
	return d.Active && d.Status.CanApplyPayment()
}

// MarkPaid transitions the debt to the terminal Paid status
func (d *Debt) MarkPaid() {
	d.Status = DebtStatusPaid
	d.UpdatedAt = time.Now()
}

// MarkPartiallyPaid records that the debt received a payment smaller
// than its remaining balance
func (d *Debt) MarkPartiallyPaid() {
	d.Status = DebtStatusPartiallyPaid
	d.UpdatedAt = time.Now()
}

// Promote applies a sweep-computed severity, forward only. It returns
// true when the status actually changed. A debt is never demoted to a
// less severe status by the sweep; only a payment resolves it.
func (d *Debt) Promote(severity DebtStatus) bool {
	if d.Status.IsTerminal() {
		return false
	}
	if SeverityRank(severity) <= SeverityRank(d.Status) {
		return false
	}
	d.Status = severity
	d.UpdatedAt = time.Now()
	return true
}

// Deactivate soft-deletes the debt
func (d *Debt) Deactivate() {
	d.Active = false
	d.UpdatedAt = time.Now()
}
