package dto

import (
	"strings"

	"nest/internal/domains/booking/model"
	"nest/shared"
	"nest/shared/constant"
	gDto "nest/shared/dto"
	gModel "nest/shared/model"
	"nest/shared/timezone"
)

type CreateBookingRequest struct {
	Name         string  `json:"name"         validate:"required,max=100"`
	Email        string  `json:"email"        validate:"required,email,max=100"`
	Phone        string  `json:"phone"        validate:"required,max=30"`
	Date         string  `json:"date"         validate:"required,datetime=2006-01-02"`
	Time         string  `json:"time"         validate:"required,max=20"`
	PropertyType *string `json:"propertyType" validate:"omitempty,max=100"`
	Budget       *string `json:"budget"       validate:"omitempty,max=100"`
	Location     *string `json:"location"     validate:"omitempty,max=200"`
	Message      *string `json:"message"      validate:"omitempty,max=2000"`
	Status       string  `json:"status"       validate:"omitempty,oneof=Pending Confirmed Completed Cancelled"`
	Notes        *string `json:"notes"        validate:"omitempty,max=2000"`
}

func (c *CreateBookingRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	c.Date = strings.TrimSpace(c.Date)
	c.Time = strings.TrimSpace(c.Time)
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	date, err := timezone.Parse(constant.BookingDateFormat, c.Date)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	now := timezone.Now()

	return model.Booking{
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Date:         date,
		Time:         c.Time,
		PropertyType: c.PropertyType,
		Budget:       c.Budget,
		Location:     c.Location,
		Message:      c.Message,
		Notes:        c.Notes,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

type UpdateBookingRequest struct {
	Name         string  `db:"name"          json:"name"         validate:"omitempty,max=100"`
	Email        string  `db:"email"         json:"email"        validate:"omitempty,email,max=100"`
	Phone        string  `db:"phone"         json:"phone"        validate:"omitempty,max=30"`
	Date         string  `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	Time         string  `db:"time"          json:"time"         validate:"omitempty,max=20"`
	PropertyType *string `db:"property_type" json:"propertyType" validate:"omitempty,max=100"`
	Budget       *string `db:"budget"        json:"budget"       validate:"omitempty,max=100"`
	Location     *string `db:"location"      json:"location"     validate:"omitempty,max=200"`
	Message      *string `db:"message"       json:"message"      validate:"omitempty,max=2000"`
	Notes        *string `db:"notes"         json:"notes"        validate:"omitempty,max=2000"`
	Status       string  `db:"status"        json:"status"       validate:"omitempty,oneof=Pending Confirmed Completed Cancelled"`
}

func (u *UpdateBookingRequest) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Phone = strings.TrimSpace(u.Phone)
	u.Date = strings.TrimSpace(u.Date)
	u.Time = strings.TrimSpace(u.Time)
}

// NotificationDetails carries the values an outbound booking mail and
// calendar event are built from.
type NotificationDetails struct {
	Name     string
	Email    string
	Date     string
	Time     string
	Location string
	Message  string
}

// Merge resolves each notification value to the one supplied in this update
// when present, falling back to the previously persisted booking, so a
// status-only update still produces a complete notification.
func (u *UpdateBookingRequest) Merge(prev model.Booking) NotificationDetails {
	details := NotificationDetailsFromModel(prev)

	if u.Name != "" {
		details.Name = u.Name
	}

	if u.Email != "" {
		details.Email = u.Email
	}

	if u.Date != "" {
		details.Date = u.Date
	}

	if u.Time != "" {
		details.Time = u.Time
	}

	if u.Location != nil && *u.Location != "" {
		details.Location = *u.Location
	}

	if u.Message != nil && *u.Message != "" {
		details.Message = *u.Message
	}

	return details
}

func NotificationDetailsFromModel(mod model.Booking) NotificationDetails {
	details := NotificationDetails{
		Name:  mod.Name,
		Email: mod.Email,
		Date:  mod.Date.Format(constant.BookingDateFormat),
		Time:  mod.Time,
	}

	if mod.Location != nil {
		details.Location = *mod.Location
	}

	if mod.Message != nil {
		details.Message = *mod.Message
	}

	return details
}

type BookingResponse struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
	Date                  string  `json:"date"`
	Time                  string  `json:"time"`
	PropertyType          *string `json:"propertyType,omitempty"`
	Budget                *string `json:"budget,omitempty"`
	Location              *string `json:"location,omitempty"`
	Message               *string `json:"message,omitempty"`
	Notes                 *string `json:"notes,omitempty"`
	Status                string  `json:"status"`
	GoogleCalendarEventID *string `json:"googleCalendarEventId"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.Date = mod.Date.Format(constant.BookingDateFormat)
	r.Time = mod.Time
	r.PropertyType = mod.PropertyType
	r.Budget = mod.Budget
	r.Location = mod.Location
	r.Message = mod.Message
	r.Notes = mod.Notes
	r.Status = mod.Status
	r.GoogleCalendarEventID = mod.GoogleCalendarEventID
	r.Metadata.FromModel(mod.Metadata)
}

// DeleteBookingResponse echoes the removed booking alongside the
// confirmation message so admin tooling can offer an undo.
type DeleteBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
