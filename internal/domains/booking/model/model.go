package model

import (
	"time"

	"nest/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                    = "id"
	FieldName                  = "name"
	FieldEmail                 = "email"
	FieldPhone                 = "phone"
	FieldDate                  = "date"
	FieldTime                  = "time"
	FieldPropertyType          = "property_type"
	FieldBudget                = "budget"
	FieldLocation              = "location"
	FieldMessage               = "message"
	FieldNotes                 = "notes"
	FieldStatus                = "status"
	FieldGoogleCalendarEventID = "google_calendar_event_id"

	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type Booking struct {
	ID                    int64     `db:"id"`
	Name                  string    `db:"name"`
	Email                 string    `db:"email"`
	Phone                 string    `db:"phone"`
	Date                  time.Time `db:"date"`
	Time                  string    `db:"time"`
	PropertyType          *string   `db:"property_type"`
	Budget                *string   `db:"budget"`
	Location              *string   `db:"location"`
	Message               *string   `db:"message"`
	Notes                 *string   `db:"notes"`
	Status                string    `db:"status"`
	GoogleCalendarEventID *string   `db:"google_calendar_event_id"`
	model.Metadata
}

// Notification is the side effect owed when a booking moves between
// statuses. It is derived purely from the previously persisted status and
// the requested one, so a Confirmed booking edited without a status change
// never re-sends anything.
type Notification int

const (
	NotificationNone Notification = iota
	NotificationConfirmation
	NotificationCancellation
)

func NotificationFor(oldStatus, newStatus string) Notification {
	switch {
	case newStatus == StatusConfirmed && oldStatus != StatusConfirmed:
		return NotificationConfirmation
	case newStatus == StatusCancelled && oldStatus == StatusConfirmed:
		return NotificationCancellation
	default:
		return NotificationNone
	}
}
