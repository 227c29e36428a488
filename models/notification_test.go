package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionNotification(t *testing.T) {
	allowed := [][2]string{
		{NOTIFICATION_STATUS_PENDING, NOTIFICATION_STATUS_SENDING},
		{NOTIFICATION_STATUS_SENDING, NOTIFICATION_STATUS_SENT},
		{NOTIFICATION_STATUS_SENDING, NOTIFICATION_STATUS_FAILED},
		{NOTIFICATION_STATUS_SENT, NOTIFICATION_STATUS_DELIVERED},
		{NOTIFICATION_STATUS_SENT, NOTIFICATION_STATUS_FAILED},
	}
	statuses := []string{
		NOTIFICATION_STATUS_PENDING,
		NOTIFICATION_STATUS_SENDING,
		NOTIFICATION_STATUS_SENT,
		NOTIFICATION_STATUS_DELIVERED,
		NOTIFICATION_STATUS_FAILED,
	}

	isAllowed := func(from, to string) bool {
		for _, pair := range allowed {
			if pair[0] == from && pair[1] == to {
				return true
			}
		}
		return false
	}

	for _, from := range statuses {
		for _, to := range statuses {
			assert.Equal(t, isAllowed(from, to), CanTransitionNotification(from, to),
				"transição %s -> %s", from, to)
		}
	}
}

func TestTerminalStatusesHaveNoExit(t *testing.T) {
	assert.True(t, IsTerminalNotificationStatus(NOTIFICATION_STATUS_DELIVERED))
	assert.True(t, IsTerminalNotificationStatus(NOTIFICATION_STATUS_FAILED))
	assert.False(t, IsTerminalNotificationStatus(NOTIFICATION_STATUS_PENDING))
	assert.False(t, IsTerminalNotificationStatus(NOTIFICATION_STATUS_SENDING))
	assert.False(t, IsTerminalNotificationStatus(NOTIFICATION_STATUS_SENT))
}
