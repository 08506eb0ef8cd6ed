package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nest/config"
	"nest/infras/gcal"
	"nest/infras/mailer"
	"nest/infras/otel"
	"nest/internal/domains/booking/model"
	"nest/internal/domains/booking/model/dto"
	"nest/internal/domains/booking/repository"
	"nest/shared"
	"nest/shared/cache"
	"nest/shared/constant"
	gDto "nest/shared/dto"
	"nest/shared/failure"
	"nest/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	codeBookingNotFound = "BOOKING_NOT_FOUND"

	// Bound on how long an outbound mail or calendar call may run after the
	// HTTP response has already been written.
	notifyTimeout = 15 * time.Second
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (dto.BookingResponse, error)
	Delete(ctx context.Context, id int64) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	mailer   mailer.Mailer
	calendar gcal.Calendar
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, mailer mailer.Mailer, calendar gcal.Calendar) Booking {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		mailer:   mailer,
		calendar: calendar,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking date")

		return res, failure.BadRequestWithCode(failure.InvalidField(model.FieldDate), fmt.Sprintf("invalid date: %v", err)) //nolint:wrapcheck
	}

	id, err := s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = id
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, fmt.Sprint(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound(codeBookingNotFound, "booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	prev, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if prev.ID == 0 {
		return res, failure.NotFound(codeBookingNotFound, "booking not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)

	if req.Date != "" {
		date, parseErr := timezone.Parse(constant.BookingDateFormat, req.Date)
		if parseErr != nil {
			return res, failure.BadRequestWithCode(failure.InvalidField(model.FieldDate), fmt.Sprintf("invalid date: %v", parseErr)) //nolint:wrapcheck
		}

		updatedFields[model.FieldDate] = date
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated booking")

		return res, fmt.Errorf("failed to get updated booking: %w", err)
	}

	res.FromModel(updated)

	s.dispatchNotification(ctx, model.NotificationFor(prev.Status, req.Status), updated, req.Merge(prev))
	s.invalidateBookingCaches(ctx, id)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		log.Error().Int64("id", id).Msg("booking not found")

		return res, failure.NotFound(codeBookingNotFound, "booking not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return res, fmt.Errorf("failed to delete booking: %w", err)
	}

	// A booking that was Confirmed when removed owes its customer a
	// cancellation notice, built from the row as it stood.
	if booking.Status == model.StatusConfirmed {
		s.dispatchNotification(ctx, model.NotificationCancellation, booking, dto.NotificationDetailsFromModel(booking))
	}

	res.FromModel(booking)

	s.invalidateBookingCaches(ctx, id)

	return res, nil
}

// dispatchNotification performs the mail and calendar side effects of a
// status transition. It runs detached from the request with a bounded
// timeout; failures are logged and swallowed so they can never fail or roll
// back the booking write that triggered them.
func (s *serviceImpl) dispatchNotification(ctx context.Context, notification model.Notification, booking model.Booking, details dto.NotificationDetails) {
	if notification == model.NotificationNone {
		return
	}

	go func() {
		c, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		switch notification {
		case model.NotificationConfirmation:
			s.sendConfirmation(c, booking, details)
		case model.NotificationCancellation:
			s.sendCancellation(c, booking, details)
		case model.NotificationNone:
		}
	}()
}

func (s *serviceImpl) sendConfirmation(ctx context.Context, booking model.Booking, details dto.NotificationDetails) {
	subject, body := confirmationMail(details)

	if err := s.mailer.Send(ctx, details.Email, subject, body); err != nil {
		log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to send confirmation mail")
	}

	if adminEmail := s.mailer.AdminEmail(); adminEmail != "" {
		adminSubject, adminBody := adminConfirmationMail(details)
		if err := s.mailer.Send(ctx, adminEmail, adminSubject, adminBody); err != nil {
			log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to send admin confirmation mail")
		}
	}

	if !s.calendar.Enabled() {
		return
	}

	eventID, err := s.calendar.CreateEvent(ctx, gcal.EventInput{
		Summary:     fmt.Sprintf("Consultation with %s", details.Name),
		Description: calendarDescription(details),
		Location:    details.Location,
		Date:        details.Date,
		Time:        details.Time,
	})
	if err != nil {
		log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to create calendar event")

		return
	}

	if eventID == "" {
		return
	}

	fields := map[string]any{
		model.FieldGoogleCalendarEventID: eventID,
		constant.FieldUpdatedAt:          timezone.Now(),
	}
	if err := s.repo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Int64("booking_id", booking.ID).Str("event_id", eventID).Msg("failed to store calendar event id")
	}
}

func (s *serviceImpl) sendCancellation(ctx context.Context, booking model.Booking, details dto.NotificationDetails) {
	subject, body := cancellationMail(details)

	if err := s.mailer.Send(ctx, details.Email, subject, body); err != nil {
		log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to send cancellation mail")
	}

	if adminEmail := s.mailer.AdminEmail(); adminEmail != "" {
		adminSubject, adminBody := adminCancellationMail(details)
		if err := s.mailer.Send(ctx, adminEmail, adminSubject, adminBody); err != nil {
			log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to send admin cancellation mail")
		}
	}

	if booking.GoogleCalendarEventID == nil || *booking.GoogleCalendarEventID == "" {
		return
	}

	if err := s.calendar.DeleteEvent(ctx, *booking.GoogleCalendarEventID); err != nil {
		log.Error().Err(err).Int64("booking_id", booking.ID).Msg("failed to delete calendar event")
	}
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, fmt.Sprint(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
