package models

import (
	"time"

	"github.com/flowik/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtModel is the persistence model for debts
type DebtModel struct {
	TenantAggregateModel
	ClientID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Principal      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DebtDate       time.Time       `gorm:"not null;index"`
	ExpirationDate *time.Time
	OverdueDays    int               `gorm:"not null"`
	CriticalDays   int               `gorm:"not null"`
	Status         ledger.DebtStatus `gorm:"type:varchar(20);not null;index"`
	Active         bool              `gorm:"not null;default:true;index"`
}

// TableName specifies the table name for DebtModel
func (DebtModel) TableName() string {
	return "debts"
}

// ToDomain converts DebtModel to the domain Debt
func (m *DebtModel) ToDomain() *ledger.Debt {
	debt := &ledger.Debt{
		ClientID:       m.ClientID,
		Principal:      m.Principal,
		DebtDate:       m.DebtDate,
		ExpirationDate: m.ExpirationDate,
		OverdueDays:    m.OverdueDays,
		CriticalDays:   m.CriticalDays,
		Status:         m.Status,
		Active:         m.Active,
	}
	m.PopulateTenantAggregateRoot(&debt.TenantAggregateRoot)
	return debt
}

// DebtModelFromDomain converts a domain Debt to DebtModel
func DebtModelFromDomain(d *ledger.Debt) *DebtModel {
	m := &DebtModel{
		ClientID:       d.ClientID,
		Principal:      d.Principal,
		DebtDate:       d.DebtDate,
		ExpirationDate: d.ExpirationDate,
		OverdueDays:    d.OverdueDays,
		CriticalDays:   d.CriticalDays,
		Status:         d.Status,
		Active:         d.Active,
	}
	m.FromDomainTenantAggregateRoot(d.TenantAggregateRoot)
	return m
}

// PaymentModel is the persistence model for payments
type PaymentModel struct {
	TenantAggregateModel
	DebtID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName specifies the table name for PaymentModel
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts PaymentModel to the domain Payment
func (m *PaymentModel) ToDomain() *ledger.Payment {
	payment := &ledger.Payment{
		DebtID: m.DebtID,
		Amount: m.Amount,
	}
	m.PopulateTenantAggregateRoot(&payment.TenantAggregateRoot)
	return payment
}

// PaymentModelFromDomain converts a domain Payment to PaymentModel
func PaymentModelFromDomain(p *ledger.Payment) *PaymentModel {
	m := &PaymentModel{
		DebtID: p.DebtID,
		Amount: p.Amount,
	}
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	return m
}
