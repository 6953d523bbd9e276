package ledger

import "time"

// SeverityRank orders debt statuses from least to most severe. The
// reclassification sweep only moves a debt up this order.
func SeverityRank(s DebtStatus) int {
	switch s {
	case DebtStatusUnpaid:
		return 0
	case DebtStatusPartiallyPaid:
		return 1
	case DebtStatusOverdue:
		return 2
	case DebtStatusCritical:
		return 3
	default:
		return -1
	}
}

// ClassifyDebtAge maps elapsed days against the debt's thresholds.
// daysElapsed < overdueDays            -> Unpaid
// overdueDays <= daysElapsed < critical -> Overdue
// daysElapsed >= criticalDays          -> Critical
func ClassifyDebtAge(daysElapsed, overdueDays, criticalDays int) DebtStatus {
	switch {
	case daysElapsed >= criticalDays:
		return DebtStatusCritical
	case daysElapsed >= overdueDays:
		return DebtStatusOverdue
	default:
		return DebtStatusUnpaid
	}
}

// DaysElapsed returns whole days between a reference date and now,
// truncated to calendar days.
func DaysElapsed(reference, now time.Time) int {
	ref := reference.Truncate(24 * time.Hour)
	cur := now.Truncate(24 * time.Hour)
	return int(cur.Sub(ref).Hours() / 24)
}
