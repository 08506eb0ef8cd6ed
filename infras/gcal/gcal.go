package gcal

//go:generate go run go.uber.org/mock/mockgen -source=./gcal.go -destination=./mocks/gcal_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"nest/config"
	"nest/infras/otel"
	"nest/shared/constant"
	"nest/shared/timezone"
)

const (
	otelAttrEventID  = "calendar.event_id"
	otelAttrCalendar = "calendar.id"

	displayTimeFormat    = "3:04 PM"
	defaultEventDuration = time.Hour
)

// EventInput carries the fields a consultation appointment needs on the
// shared calendar. Date uses the YYYY-MM-DD form, Time the display form
// (e.g. "2:00 PM") and may be empty.
type EventInput struct {
	Summary     string
	Description string
	Location    string
	Date        string
	Time        string
}

// Calendar wraps the Google Calendar API. When credentials are not
// configured the implementation degrades to a logged no-op.
type Calendar interface {
	CreateEvent(ctx context.Context, input EventInput) (eventID string, err error)
	DeleteEvent(ctx context.Context, eventID string) error
	Enabled() bool
}

type googleCalendar struct {
	service    *calendar.Service
	calendarID string
	otel       otel.Otel
}

func New(conf *config.Config, ot otel.Otel) Calendar {
	gcalConf := conf.External.GoogleCalendar

	if gcalConf.CredentialsJSON == "" || gcalConf.CalendarID == "" {
		log.Warn().Msg("Google Calendar is not configured, calendar events are disabled")

		return &googleCalendar{otel: ot}
	}

	service, err := calendar.NewService(
		context.Background(),
		option.WithCredentialsJSON([]byte(gcalConf.CredentialsJSON)),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize Google Calendar client, calendar events are disabled")

		return &googleCalendar{otel: ot}
	}

	return &googleCalendar{
		service:    service,
		calendarID: gcalConf.CalendarID,
		otel:       ot,
	}
}

func (c *googleCalendar) Enabled() bool {
	return c.service != nil && c.calendarID != ""
}

func (c *googleCalendar) CreateEvent(ctx context.Context, input EventInput) (eventID string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelCalendarScopeName, constant.OtelCalendarScopeName+".CreateEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrCalendar, c.calendarID)

	if !c.Enabled() {
		log.Warn().Str("summary", input.Summary).Msg("skipping calendar event, Google Calendar is not configured")

		return constant.Empty, nil
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
	}

	start, parseErr := parseStart(input.Date, input.Time)
	if parseErr != nil {
		// Fall back to an all-day event when the display time is not parseable.
		event.Start = &calendar.EventDateTime{Date: input.Date}
		event.End = &calendar.EventDateTime{Date: input.Date}
	} else {
		event.Start = &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)}
		event.End = &calendar.EventDateTime{DateTime: start.Add(defaultEventDuration).Format(time.RFC3339)}
	}

	created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		log.Error().Err(err).Str("summary", input.Summary).Msg("failed to create calendar event")

		return constant.Empty, fmt.Errorf("failed to create calendar event: %w", err)
	}

	scope.SetAttribute(otelAttrEventID, created.Id)
	log.Info().Str("event_id", created.Id).Str("summary", input.Summary).Msg("calendar event created")

	return created.Id, nil
}

func (c *googleCalendar) DeleteEvent(ctx context.Context, eventID string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelCalendarScopeName, constant.OtelCalendarScopeName+".DeleteEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrCalendar: c.calendarID,
		otelAttrEventID:  eventID,
	})

	if !c.Enabled() || eventID == "" {
		return nil
	}

	if err = c.service.Events.Delete(c.calendarID, eventID).Context(ctx).Do(); err != nil {
		log.Error().Err(err).Str("event_id", eventID).Msg("failed to delete calendar event")

		return fmt.Errorf("failed to delete calendar event: %w", err)
	}

	return nil
}

func parseStart(date, displayTime string) (time.Time, error) {
	loc := timezone.GetLocation()

	if displayTime != "" {
		start, err := time.ParseInLocation(constant.BookingDateFormat+" "+displayTimeFormat, date+" "+displayTime, loc)
		if err == nil {
			return start, nil
		}
	}

	return time.Time{}, fmt.Errorf("no parseable start time for %q %q", date, displayTime)
}
