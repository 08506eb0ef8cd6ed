package partner

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nest/infras/otel"
	"nest/internal/domains/partner/model"
	"nest/internal/domains/partner/model/dto"
	"nest/internal/domains/partner/service"
	"nest/shared/constant"
	gDto "nest/shared/dto"
	"nest/shared/validator"
	"nest/transport/http/middleware"
	"nest/transport/http/response"
)

type Handler struct {
	service service.Partner
	otel    otel.Otel
}

func New(service service.Partner, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, auth middleware.Auth) {
	router.Route("/partners", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPartners)
		routerGroup.Get("/{id}", handler.GetPartnerByID)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(auth.Authenticate, auth.RequireAdmin)
			adminGroup.Post("/", handler.CreatePartner)
			adminGroup.Patch("/{id}", handler.UpdatePartner)
			adminGroup.Delete("/{id}", handler.DeletePartner)
		})
	})
}

// CreatePartner handles the creation of a new partner.
// @Summary Create a new partner
// @Description Create a new partner with the provided details.
// @Tags Partner
// @Accept json
// @Produce json
// @Param request body dto.CreatePartnerRequest true "Create Partner Request"
// @Success 201 {object} response.Message "Partner created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/partners [post]
// @Security BearerAuth
func (handler *Handler) CreatePartner(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePartner")
	defer scope.End()

	req := dto.CreatePartnerRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create partner")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Partner created successfully")

	response.WithMessage(writer, http.StatusCreated, "Partner created successfully")
}

// GetPartners retrieves partners with pagination.
// @Summary Get all partners
// @Description Retrieve partners with optional filtering and pagination.
// @Tags Partner
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive substring match on name"
// @Success 200 {object} response.Data[dto.GetPartnersResponse] "List of partners"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/partners [get]
func (handler *Handler) GetPartners(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPartners")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(constant.DefaultValueSortBy, model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	partners, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get partners")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Partners retrieved successfully")

	response.WithJSON(w, http.StatusOK, partners)
}

// GetPartnerByID retrieves a partner by its ID.
// @Summary Get a partner by ID
// @Description Retrieve a partner by its unique identifier.
// @Tags Partner
// @Accept json
// @Produce json
// @Param id path string true "Partner ID"
// @Success 200 {object} response.Data[dto.PartnerResponse] "Partner details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/partners/{id} [get]
func (handler *Handler) GetPartnerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPartnerByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	partner, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get partner by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Partner retrieved successfully")

	response.WithJSON(w, http.StatusOK, partner)
}

// UpdatePartner updates an existing partner by its ID.
// @Summary Update a partner by ID
// @Description Update the details of an existing partner.
// @Tags Partner
// @Accept json
// @Produce json
// @Param id path string true "Partner ID"
// @Param request body dto.UpdatePartnerRequest true "Update Partner Request"
// @Success 200 {object} response.Message "Partner updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/partners/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePartner")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePartnerRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update partner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Partner updated successfully")

	response.WithMessage(w, http.StatusOK, "Partner updated successfully")
}

// DeletePartner deletes a partner by its ID.
// @Summary Delete a partner by ID
// @Description Delete a partner using its unique identifier.
// @Tags Partner
// @Accept json
// @Produce json
// @Param id path string true "Partner ID"
// @Success 200 {object} response.Message "Partner deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/partners/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePartner")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete partner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Partner deleted successfully")

	response.WithMessage(w, http.StatusOK, "Partner deleted successfully")
}
