package faq

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nest/infras/otel"
	"nest/internal/domains/faq/model"
	"nest/internal/domains/faq/model/dto"
	"nest/internal/domains/faq/service"
	"nest/shared/constant"
	gDto "nest/shared/dto"
	"nest/shared/validator"
	"nest/transport/http/middleware"
	"nest/transport/http/response"
)

type Handler struct {
	service service.Faq
	otel    otel.Otel
}

func New(service service.Faq, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, auth middleware.Auth) {
	router.Route("/faqs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFaqs)
		routerGroup.Get("/{id}", handler.GetFaqByID)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(auth.Authenticate, auth.RequireAdmin)
			adminGroup.Post("/", handler.CreateFaq)
			adminGroup.Patch("/{id}", handler.UpdateFaq)
			adminGroup.Delete("/{id}", handler.DeleteFaq)
		})
	})
}

// CreateFaq handles the creation of a new FAQ.
// @Summary Create a new FAQ
// @Description Create a new FAQ with the provided details.
// @Tags Faq
// @Accept json
// @Produce json
// @Param request body dto.CreateFaqRequest true "Create Faq Request"
// @Success 201 {object} response.Message "Faq created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/faqs [post]
// @Security BearerAuth
func (handler *Handler) CreateFaq(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFaq")
	defer scope.End()

	req := dto.CreateFaqRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create FAQ")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Faq created successfully")

	response.WithMessage(writer, http.StatusCreated, "Faq created successfully")
}

// GetFaqs retrieves FAQs with pagination.
// @Summary Get all FAQs
// @Description Retrieve FAQs with optional filtering and pagination.
// @Tags Faq
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive substring match on question"
// @Success 200 {object} response.Data[dto.GetFaqsResponse] "List of FAQs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/faqs [get]
func (handler *Handler) GetFaqs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFaqs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortDir == "" {
		queryParams.SortDir = gDto.SortDirAsc
	}

	queryParams.RestrictSort(model.FieldPosition, constant.DefaultValueSortBy, model.FieldQuestion)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldQuestion,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	faqs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get FAQs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Faqs retrieved successfully")

	response.WithJSON(w, http.StatusOK, faqs)
}

// GetFaqByID retrieves a FAQ by its ID.
// @Summary Get a FAQ by ID
// @Description Retrieve a FAQ by its unique identifier.
// @Tags Faq
// @Accept json
// @Produce json
// @Param id path string true "Faq ID"
// @Success 200 {object} response.Data[dto.FaqResponse] "Faq details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/faqs/{id} [get]
func (handler *Handler) GetFaqByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFaqByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	faq, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get FAQ by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Faq retrieved successfully")

	response.WithJSON(w, http.StatusOK, faq)
}

// UpdateFaq updates an existing FAQ by its ID.
// @Summary Update a FAQ by ID
// @Description Update the details of an existing FAQ.
// @Tags Faq
// @Accept json
// @Produce json
// @Param id path string true "Faq ID"
// @Param request body dto.UpdateFaqRequest true "Update Faq Request"
// @Success 200 {object} response.Message "Faq updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/faqs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateFaq(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFaq")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFaqRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update FAQ")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Faq updated successfully")

	response.WithMessage(w, http.StatusOK, "Faq updated successfully")
}

// DeleteFaq deletes a FAQ by its ID.
// @Summary Delete a FAQ by ID
// @Description Delete a FAQ using its unique identifier.
// @Tags Faq
// @Accept json
// @Produce json
// @Param id path string true "Faq ID"
// @Success 200 {object} response.Message "Faq deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/faqs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFaq(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFaq")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete FAQ")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Faq deleted successfully")

	response.WithMessage(w, http.StatusOK, "Faq deleted successfully")
}
