package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDebtAge(t *testing.T) {
	tests := []struct {
		name         string
		daysElapsed  int
		overdueDays  int
		criticalDays int
		want         DebtStatus
	}{
		{"before overdue threshold", 29, 30, 60, DebtStatusUnpaid},
		{"exactly at overdue threshold", 30, 30, 60, DebtStatusOverdue},
		{"between thresholds", 45, 30, 60, DebtStatusOverdue},
		{"one day before critical", 59, 30, 60, DebtStatusOverdue},
		{"exactly at critical threshold", 60, 30, 60, DebtStatusCritical},
		{"far past critical", 400, 30, 60, DebtStatusCritical},
		{"fresh debt", 0, 30, 60, DebtStatusUnpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDebtAge(tt.daysElapsed, tt.overdueDays, tt.criticalDays))
		})
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	assert.Less(t, SeverityRank(DebtStatusUnpaid), SeverityRank(DebtStatusPartiallyPaid))
	assert.Less(t, SeverityRank(DebtStatusPartiallyPaid), SeverityRank(DebtStatusOverdue))
	assert.Less(t, SeverityRank(DebtStatusOverdue), SeverityRank(DebtStatusCritical))
}

func TestDaysElapsed(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysElapsed(now, now))
	assert.Equal(t, 1, DaysElapsed(now.AddDate(0, 0, -1), now))
	assert.Equal(t, 44, DaysElapsed(time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC), now))
}
