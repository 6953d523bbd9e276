package notification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationValidation(t *testing.T) {
	tenantID, refID, ownerID := uuid.New(), uuid.New(), uuid.New()

	n, err := New(tenantID, SubjectTypeDebt, refID, ownerID, "Critical debt alert", "desc")
	require.NoError(t, err)
	assert.False(t, n.Read)

	_, err = New(tenantID, SubjectType("EMAIL"), refID, ownerID, "t", "d")
	assert.Error(t, err)

	_, err = New(tenantID, SubjectTypeStock, uuid.Nil, ownerID, "t", "d")
	assert.Error(t, err)

	_, err = New(tenantID, SubjectTypeStock, refID, uuid.Nil, "t", "d")
	assert.Error(t, err)

	_, err = New(tenantID, SubjectTypeStock, refID, ownerID, "", "d")
	assert.Error(t, err)
}

func TestMarkReadIsMonotonic(t *testing.T) {
	n, err := New(uuid.New(), SubjectTypeStock, uuid.New(), uuid.New(), "Low stock alert", "")
	require.NoError(t, err)

	n.MarkRead()
	assert.True(t, n.Read)
	firstUpdate := n.UpdatedAt

	n.MarkRead()
	assert.True(t, n.Read)
	assert.Equal(t, firstUpdate, n.UpdatedAt, "second MarkRead is a no-op")
}

func TestDedupKey(t *testing.T) {
	refID, ownerID := uuid.New(), uuid.New()
	a, _ := New(uuid.New(), SubjectTypeDebt, refID, ownerID, "Overdue debt alert", "first")
	b, _ := New(uuid.New(), SubjectTypeDebt, refID, ownerID, "Overdue debt alert", "second")
	c, _ := New(uuid.New(), SubjectTypeDebt, refID, ownerID, "Critical debt alert", "third")

	assert.Equal(t, a.Key(), b.Key(), "same condition, same key regardless of description")
	assert.NotEqual(t, a.Key(), c.Key(), "different title is a different condition")
}
