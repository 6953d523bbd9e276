package notification

import "context"

// RetentionTask adapts the retention purge to the scheduler task contract
type RetentionTask struct {
	service *NotifierService
}

// NewRetentionTask creates a new RetentionTask
func NewRetentionTask(service *NotifierService) *RetentionTask {
	return &RetentionTask{service: service}
}

// Name identifies this task in scheduler logs
func (t *RetentionTask) Name() string {
	return "notification-retention"
}

// Run purges notifications past the retention window
func (t *RetentionTask) Run(ctx context.Context) error {
	return t.service.RunRetention(ctx)
}
