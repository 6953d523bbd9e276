package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/flowik/backend"

var (
	initOnce sync.Once

	paymentsAllocated       metric.Int64Counter
	allocationsRejected     metric.Int64Counter
	sweepEntitiesProcessed  metric.Int64Counter
	sweepEntitiesFailed     metric.Int64Counter
	notificationsEmitted    metric.Int64Counter
	notificationsSuppressed metric.Int64Counter
	notificationsPurged     metric.Int64Counter
)

// init lazily creates the business counters against the global meter
// provider. Without an SDK wired in, these are no-ops.
func initMetrics() {
	initOnce.Do(func() {
		meter := otel.Meter(meterName)
		paymentsAllocated, _ = meter.Int64Counter("ledger.payments.allocated",
			metric.WithDescription("Payment rows created by the allocator"))
		allocationsRejected, _ = meter.Int64Counter("ledger.allocations.rejected",
			metric.WithDescription("Allocation calls rejected before mutation"))
		sweepEntitiesProcessed, _ = meter.Int64Counter("sweep.entities.processed",
			metric.WithDescription("Entities evaluated by a reclassification sweep"))
		sweepEntitiesFailed, _ = meter.Int64Counter("sweep.entities.failed",
			metric.WithDescription("Entities the sweep failed to persist or evaluate"))
		notificationsEmitted, _ = meter.Int64Counter("notifications.emitted",
			metric.WithDescription("Notifications persisted by the deduper"))
		notificationsSuppressed, _ = meter.Int64Counter("notifications.suppressed",
			metric.WithDescription("Notifications suppressed by an active prior alert"))
		notificationsPurged, _ = meter.Int64Counter("notifications.purged",
			metric.WithDescription("Notifications removed by the retention task"))
	})
}

// RecordPaymentsAllocated counts payment rows created by one allocation
func RecordPaymentsAllocated(ctx context.Context, n int) {
	initMetrics()
	paymentsAllocated.Add(ctx, int64(n))
}

// RecordAllocationRejected counts a validation-class allocation failure
func RecordAllocationRejected(ctx context.Context, reason string) {
	initMetrics()
	allocationsRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// RecordSweepEntity counts one sweep-evaluated entity, failed or not
func RecordSweepEntity(ctx context.Context, kind string, failed bool) {
	initMetrics()
	attrs := metric.WithAttributes(attribute.String("kind", kind))
	sweepEntitiesProcessed.Add(ctx, 1, attrs)
	if failed {
		sweepEntitiesFailed.Add(ctx, 1, attrs)
	}
}

// RecordNotificationDecision counts a deduper emit/suppress decision
func RecordNotificationDecision(ctx context.Context, subjectType string, emitted bool) {
	initMetrics()
	attrs := metric.WithAttributes(attribute.String("subject_type", subjectType))
	if emitted {
		notificationsEmitted.Add(ctx, 1, attrs)
	} else {
		notificationsSuppressed.Add(ctx, 1, attrs)
	}
}

// RecordNotificationsPurged counts rows removed by the retention task
func RecordNotificationsPurged(ctx context.Context, n int64) {
	initMetrics()
	notificationsPurged.Add(ctx, n)
}
