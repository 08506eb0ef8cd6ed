package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nest/internal/domains/booking/model"
	"nest/internal/domains/booking/model/dto"
	"nest/shared/timezone"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateBookingRequest_Normalize(t *testing.T) {
	req := dto.CreateBookingRequest{
		Name:  "  Jane Roe ",
		Email: " Jane.Roe@Example.COM ",
		Phone: " +62 812 0000 ",
		Date:  " 2026-09-15 ",
		Time:  " 2:00 PM ",
	}

	req.Normalize()

	assert.Equal(t, "Jane Roe", req.Name)
	assert.Equal(t, "jane.roe@example.com", req.Email)
	assert.Equal(t, "+62 812 0000", req.Phone)
	assert.Equal(t, "2026-09-15", req.Date)
	assert.Equal(t, "2:00 PM", req.Time)
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	t.Run("defaults to pending", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			Name:  "Jane Roe",
			Email: "jane.roe@example.com",
			Phone: "+62 812 0000",
			Date:  "2026-09-15",
			Time:  "2:00 PM",
		}

		mod, err := req.ToModel()

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, mod.Status)
		assert.Equal(t, "2026-09-15", mod.Date.Format("2006-01-02"))
		assert.False(t, mod.CreatedAt.IsZero())
	})

	t.Run("explicit status wins", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			Name:   "Jane Roe",
			Email:  "jane.roe@example.com",
			Phone:  "+62 812 0000",
			Date:   "2026-09-15",
			Time:   "2:00 PM",
			Status: model.StatusConfirmed,
		}

		mod, err := req.ToModel()

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, mod.Status)
	})

	t.Run("invalid date", func(t *testing.T) {
		req := dto.CreateBookingRequest{Date: "15-09-2026"}

		_, err := req.ToModel()

		assert.Error(t, err)
	})
}

func TestUpdateBookingRequest_Merge(t *testing.T) {
	date := timezone.Now()

	prev := model.Booking{
		Name:     "Jane Roe",
		Email:    "jane.roe@example.com",
		Date:     date,
		Time:     "2:00 PM",
		Location: strPtr("Jakarta"),
		Message:  strPtr("Looking for a family home"),
	}

	t.Run("status-only update keeps previous details", func(t *testing.T) {
		req := dto.UpdateBookingRequest{Status: model.StatusConfirmed}

		details := req.Merge(prev)

		assert.Equal(t, "Jane Roe", details.Name)
		assert.Equal(t, "jane.roe@example.com", details.Email)
		assert.Equal(t, date.Format("2006-01-02"), details.Date)
		assert.Equal(t, "2:00 PM", details.Time)
		assert.Equal(t, "Jakarta", details.Location)
		assert.Equal(t, "Looking for a family home", details.Message)
	})

	t.Run("updated values take precedence", func(t *testing.T) {
		req := dto.UpdateBookingRequest{
			Name:     "Janet Roe",
			Time:     "4:00 PM",
			Location: strPtr("Bandung"),
		}

		details := req.Merge(prev)

		assert.Equal(t, "Janet Roe", details.Name)
		assert.Equal(t, "4:00 PM", details.Time)
		assert.Equal(t, "Bandung", details.Location)
		assert.Equal(t, "jane.roe@example.com", details.Email)
	})
}

func TestNotificationDetailsFromModel(t *testing.T) {
	date := timezone.Now()

	details := dto.NotificationDetailsFromModel(model.Booking{
		Name:  "Jane Roe",
		Email: "jane.roe@example.com",
		Date:  date,
		Time:  "2:00 PM",
	})

	assert.Equal(t, "Jane Roe", details.Name)
	assert.Equal(t, date.Format("2006-01-02"), details.Date)
	assert.Empty(t, details.Location)
	assert.Empty(t, details.Message)
}

func TestBookingResponse_FromModel(t *testing.T) {
	date := timezone.Now()

	mod := model.Booking{
		ID:     42,
		Name:   "Jane Roe",
		Email:  "jane.roe@example.com",
		Phone:  "+62 812 0000",
		Date:   date,
		Time:   "2:00 PM",
		Status: model.StatusPending,
	}

	var res dto.BookingResponse
	res.FromModel(mod)

	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, date.Format("2006-01-02"), res.Date)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Nil(t, res.GoogleCalendarEventID)
}
