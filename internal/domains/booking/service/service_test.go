package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nest/config"
	gcalMocks "nest/infras/gcal/mocks"
	mailerMocks "nest/infras/mailer/mocks"
	"nest/infras/otel/mocks"
	bookingMocks "nest/internal/domains/booking/mocks"
	"nest/internal/domains/booking/model"
	"nest/internal/domains/booking/model/dto"
	"nest/internal/domains/booking/service"
	cacheMocks "nest/shared/cache/mocks"
	gDto "nest/shared/dto"
	"nest/shared/failure"
	"nest/shared/timezone"
)

type bookingMocksBundle struct {
	repo     *bookingMocks.MockBooking
	cache    *cacheMocks.MockRedisCache
	mailer   *mailerMocks.MockMailer
	calendar *gcalMocks.MockCalendar
}

func newBookingService(t *testing.T) (service.Booking, bookingMocksBundle) {
	t.Helper()

	ctrl := gomock.NewController(t)

	bundle := bookingMocksBundle{
		repo:     bookingMocks.NewMockBooking(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		mailer:   mailerMocks.NewMockMailer(ctrl),
		calendar: gcalMocks.NewMockCalendar(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(bundle.repo, cfg, bundle.cache, mocks.NewOtel(), bundle.mailer, bundle.calendar)

	return svc, bundle
}

func allowCacheInvalidation(m bookingMocksBundle) {
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func pendingBooking() model.Booking {
	return model.Booking{
		ID:     42,
		Name:   "Jane Roe",
		Email:  "jane.roe@example.com",
		Phone:  "+62 812 0000",
		Date:   timezone.Now().AddDate(0, 0, 7),
		Time:   "2:00 PM",
		Status: model.StatusPending,
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowCacheInvalidation(m)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(int64(42), nil)

		res, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			Name:  "Jane Roe",
			Email: "jane.roe@example.com",
			Phone: "+62 812 0000",
			Date:  "2026-09-15",
			Time:  "2:00 PM",
		})

		time.Sleep(20 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), res.ID)
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc, _ := newBookingService(t)

		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			Name:  "Jane Roe",
			Email: "jane.roe@example.com",
			Phone: "+62 812 0000",
			Date:  "15/09/2026",
			Time:  "2:00 PM",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetStatus(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("database error"))

		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			Name:  "Jane Roe",
			Email: "jane.roe@example.com",
			Phone: "+62 812 0000",
			Date:  "2026-09-15",
			Time:  "2:00 PM",
		})

		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingBooking(), nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), 42)

		time.Sleep(20 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), 999)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetStatus(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	svc, m := newBookingService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{pendingBooking()}, nil)

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(20 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Bookings, 1)
}

func TestBookingService_Update(t *testing.T) {
	t.Run("confirming sends confirmation notification", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowCacheInvalidation(m)

		prev := pendingBooking()
		confirmed := prev
		confirmed.Status = model.StatusConfirmed

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(prev, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil)

		m.mailer.EXPECT().
			Send(gomock.Any(), prev.Email, gomock.Any(), gomock.Any()).
			Return(nil)

		m.mailer.EXPECT().
			AdminEmail().
			Return("")

		m.calendar.EXPECT().
			Enabled().
			Return(false)

		res, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusConfirmed}, 42)

		time.Sleep(50 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})

	t.Run("re-confirming sends nothing", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowCacheInvalidation(m)

		confirmed := pendingBooking()
		confirmed.Status = model.StatusConfirmed

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil).
			Times(2)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusConfirmed}, 42)

		time.Sleep(50 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("cancelling a pending booking sends nothing", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowCacheInvalidation(m)

		prev := pendingBooking()
		cancelled := prev
		cancelled.Status = model.StatusCancelled

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(prev, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cancelled, nil)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusCancelled}, 42)

		time.Sleep(50 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("cancelling a confirmed booking sends cancellation", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowCacheInvalidation(m)

		eventID := "calendar-event-id"
		prev := pendingBooking()
		prev.Status = model.StatusConfirmed
		prev.GoogleCalendarEventID = &eventID

		cancelled := prev
		cancelled.Status = model.StatusCancelled

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(prev, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cancelled, nil)

		m.mailer.EXPECT().
			Send(gomock.Any(), prev.Email, gomock.Any(), gomock.Any()).
			Return(nil)

		m.mailer.EXPECT().
			AdminEmail().
			Return("")

		m.calendar.EXPECT().
			DeleteEvent(gomock.Any(), eventID).
			Return(nil)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusCancelled}, 42)

		time.Sleep(50 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("notification failure does not fail the update", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowCacheInvalidation(m)

		prev := pendingBooking()
		confirmed := prev
		confirmed.Status = model.StatusConfirmed

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(prev, nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil)

		m.mailer.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp unreachable"))

		m.mailer.EXPECT().
			AdminEmail().
			Return("")

		m.calendar.EXPECT().
			Enabled().
			Return(false)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusConfirmed}, 42)

		time.Sleep(50 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusConfirmed}, 999)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetStatus(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("deleting a confirmed booking sends cancellation", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowCacheInvalidation(m)

		confirmed := pendingBooking()
		confirmed.Status = model.StatusConfirmed

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmed, nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		m.mailer.EXPECT().
			Send(gomock.Any(), confirmed.Email, gomock.Any(), gomock.Any()).
			Return(nil)

		m.mailer.EXPECT().
			AdminEmail().
			Return("")

		res, err := svc.Delete(context.Background(), 42)

		time.Sleep(50 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, confirmed.ID, res.ID)
		assert.Equal(t, confirmed.Name, res.Name)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})

	t.Run("deleting a pending booking sends nothing", func(t *testing.T) {
		svc, m := newBookingService(t)
		allowCacheInvalidation(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingBooking(), nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Delete(context.Background(), 42)

		time.Sleep(50 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), res.ID)
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, m := newBookingService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Delete(context.Background(), 999)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetStatus(err))
	})
}
