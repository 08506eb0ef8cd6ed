package router

import (
	"github.com/go-chi/chi/v5"

	"nest/internal/handlers/auth"
	"nest/internal/handlers/booking"
	"nest/internal/handlers/contact"
	"nest/internal/handlers/dashboard"
	"nest/internal/handlers/faq"
	"nest/internal/handlers/gallery"
	"nest/internal/handlers/partner"
	"nest/internal/handlers/post"
	"nest/internal/handlers/property"
	"nest/internal/handlers/stat"
	"nest/internal/handlers/testimonial"
	"nest/transport/http/middleware"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Booking     booking.Handler
	Property    property.Handler
	Post        post.Handler
	Testimonial testimonial.Handler
	Partner     partner.Handler
	Contact     contact.Handler
	Faq         faq.Handler
	Gallery     gallery.Handler
	Stat        stat.Handler
	Dashboard   dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup, r.AuthMiddleware)
		r.DomainHandlers.Booking.Router(routerGroup, r.AuthMiddleware)
		r.DomainHandlers.Property.Router(routerGroup, r.AuthMiddleware)
		r.DomainHandlers.Post.Router(routerGroup, r.AuthMiddleware)
		r.DomainHandlers.Testimonial.Router(routerGroup, r.AuthMiddleware)
		r.DomainHandlers.Partner.Router(routerGroup, r.AuthMiddleware)
		r.DomainHandlers.Contact.Router(routerGroup, r.AuthMiddleware)
		r.DomainHandlers.Faq.Router(routerGroup, r.AuthMiddleware)
		r.DomainHandlers.Gallery.Router(routerGroup, r.AuthMiddleware)
		r.DomainHandlers.Stat.Router(routerGroup, r.AuthMiddleware)
		r.DomainHandlers.Dashboard.Router(routerGroup, r.AuthMiddleware)
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
