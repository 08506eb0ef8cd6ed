package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nest/internal/domains/booking/model"
)

func TestNotificationFor(t *testing.T) {
	tests := []struct {
		name      string
		oldStatus string
		newStatus string
		want      model.Notification
	}{
		{"pending to confirmed", model.StatusPending, model.StatusConfirmed, model.NotificationConfirmation},
		{"completed to confirmed", model.StatusCompleted, model.StatusConfirmed, model.NotificationConfirmation},
		{"cancelled to confirmed", model.StatusCancelled, model.StatusConfirmed, model.NotificationConfirmation},
		{"confirmed to confirmed", model.StatusConfirmed, model.StatusConfirmed, model.NotificationNone},
		{"confirmed to cancelled", model.StatusConfirmed, model.StatusCancelled, model.NotificationCancellation},
		{"pending to cancelled", model.StatusPending, model.StatusCancelled, model.NotificationNone},
		{"completed to cancelled", model.StatusCompleted, model.StatusCancelled, model.NotificationNone},
		{"pending to completed", model.StatusPending, model.StatusCompleted, model.NotificationNone},
		{"confirmed to completed", model.StatusConfirmed, model.StatusCompleted, model.NotificationNone},
		{"no status change requested", model.StatusPending, "", model.NotificationNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NotificationFor(tt.oldStatus, tt.newStatus))
		})
	}
}
