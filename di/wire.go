//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"nest/config"
	"nest/infras/gcal"
	"nest/infras/mailer"
	"nest/infras/otel"
	"nest/infras/postgres"
	"nest/infras/redis"
	"nest/infras/s3"
	"nest/shared/cache"
	"nest/transport/http"
	"nest/transport/http/middleware"
	"nest/transport/http/router"

	authRepository "nest/internal/domains/auth/repository"
	authService "nest/internal/domains/auth/service"
	bookingRepository "nest/internal/domains/booking/repository"
	bookingService "nest/internal/domains/booking/service"
	contactRepository "nest/internal/domains/contact/repository"
	contactService "nest/internal/domains/contact/service"
	dashboardService "nest/internal/domains/dashboard/service"
	faqRepository "nest/internal/domains/faq/repository"
	faqService "nest/internal/domains/faq/service"
	galleryRepository "nest/internal/domains/gallery/repository"
	galleryService "nest/internal/domains/gallery/service"
	partnerRepository "nest/internal/domains/partner/repository"
	partnerService "nest/internal/domains/partner/service"
	postRepository "nest/internal/domains/post/repository"
	postService "nest/internal/domains/post/service"
	propertyRepository "nest/internal/domains/property/repository"
	propertyService "nest/internal/domains/property/service"
	statRepository "nest/internal/domains/stat/repository"
	statService "nest/internal/domains/stat/service"
	testimonialRepository "nest/internal/domains/testimonial/repository"
	testimonialService "nest/internal/domains/testimonial/service"
	userRepository "nest/internal/domains/user/repository"

	authHandler "nest/internal/handlers/auth"
	bookingHandler "nest/internal/handlers/booking"
	contactHandler "nest/internal/handlers/contact"
	dashboardHandler "nest/internal/handlers/dashboard"
	faqHandler "nest/internal/handlers/faq"
	galleryHandler "nest/internal/handlers/gallery"
	partnerHandler "nest/internal/handlers/partner"
	postHandler "nest/internal/handlers/post"
	propertyHandler "nest/internal/handlers/property"
	statHandler "nest/internal/handlers/stat"
	testimonialHandler "nest/internal/handlers/testimonial"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	mailer.New,
	gcal.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authRepository.NewSession,
	authRepository.NewAdminEmail,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var postDomain = wire.NewSet(
	postRepository.New,
	postService.New,
)

var testimonialDomain = wire.NewSet(
	testimonialRepository.New,
	testimonialService.New,
)

var partnerDomain = wire.NewSet(
	partnerRepository.New,
	partnerService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var faqDomain = wire.NewSet(
	faqRepository.New,
	faqService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var statDomain = wire.NewSet(
	statRepository.New,
	statService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	authDomain,
	bookingDomain,
	propertyDomain,
	postDomain,
	testimonialDomain,
	partnerDomain,
	contactDomain,
	faqDomain,
	galleryDomain,
	statDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	propertyHandler.New,
	postHandler.New,
	testimonialHandler.New,
	partnerHandler.New,
	contactHandler.New,
	faqHandler.New,
	galleryHandler.New,
	statHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
