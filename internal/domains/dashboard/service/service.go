package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"nest/config"
	"nest/infras/otel"
	bookingModel "nest/internal/domains/booking/model"
	bookingRepository "nest/internal/domains/booking/repository"
	contactModel "nest/internal/domains/contact/model"
	contactRepository "nest/internal/domains/contact/repository"
	"nest/internal/domains/dashboard/model/dto"
	partnerRepository "nest/internal/domains/partner/repository"
	postModel "nest/internal/domains/post/model"
	postRepository "nest/internal/domains/post/repository"
	propertyRepository "nest/internal/domains/property/repository"
	testimonialRepository "nest/internal/domains/testimonial/repository"
	"nest/shared"
	"nest/shared/cache"
	"nest/shared/constant"
	gDto "nest/shared/dto"
)

const cacheDashboardStats = "dashboard:stats"

type Dashboard interface {
	Stats(ctx context.Context) (dto.DashboardStatsResponse, error)
}

type serviceImpl struct {
	bookingRepo     bookingRepository.Booking
	contactRepo     contactRepository.Contact
	propertyRepo    propertyRepository.Property
	postRepo        postRepository.Post
	testimonialRepo testimonialRepository.Testimonial
	partnerRepo     partnerRepository.Partner
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	bookingRepo bookingRepository.Booking,
	contactRepo contactRepository.Contact,
	propertyRepo propertyRepository.Property,
	postRepo postRepository.Post,
	testimonialRepo testimonialRepository.Testimonial,
	partnerRepo partnerRepository.Partner,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		bookingRepo:     bookingRepo,
		contactRepo:     contactRepo,
		propertyRepo:    propertyRepo,
		postRepo:        postRepo,
		testimonialRepo: testimonialRepo,
		partnerRepo:     partnerRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboardStats, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboardStats).Msg("cache hit for dashboard stats")

		return res, nil
	}

	noFilter := gDto.FilterGroup{}

	if res.Bookings.Total, err = s.bookingRepo.Count(ctx, noFilter); err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookingStatuses := []struct {
		status string
		target *int
	}{
		{bookingModel.StatusPending, &res.Bookings.Pending},
		{bookingModel.StatusConfirmed, &res.Bookings.Confirmed},
		{bookingModel.StatusCompleted, &res.Bookings.Completed},
		{bookingModel.StatusCancelled, &res.Bookings.Cancelled},
	}

	for _, bs := range bookingStatuses {
		filter := shared.FilterByID(bs.status, bookingModel.FieldStatus, bookingModel.TableName)

		if *bs.target, err = s.bookingRepo.Count(ctx, filter); err != nil {
			return res, fmt.Errorf("failed to count %s bookings: %w", bs.status, err)
		}
	}

	if res.Contacts.Total, err = s.contactRepo.Count(ctx, noFilter); err != nil {
		return res, fmt.Errorf("failed to count contacts: %w", err)
	}

	unreplied := shared.FilterByID(false, contactModel.FieldReplied, contactModel.TableName)
	if res.Contacts.Unreplied, err = s.contactRepo.Count(ctx, unreplied); err != nil {
		return res, fmt.Errorf("failed to count unreplied contacts: %w", err)
	}

	if res.Properties, err = s.propertyRepo.Count(ctx, noFilter); err != nil {
		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	published := shared.FilterByID(true, postModel.FieldPublished, postModel.TableName)
	if res.PublishedPosts, err = s.postRepo.Count(ctx, published); err != nil {
		return res, fmt.Errorf("failed to count published posts: %w", err)
	}

	if res.Testimonials, err = s.testimonialRepo.Count(ctx, noFilter); err != nil {
		return res, fmt.Errorf("failed to count testimonials: %w", err)
	}

	if res.Partners, err = s.partnerRepo.Count(ctx, noFilter); err != nil {
		return res, fmt.Errorf("failed to count partners: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboardStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}
