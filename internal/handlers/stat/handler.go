package stat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nest/infras/otel"
	"nest/internal/domains/stat/model"
	"nest/internal/domains/stat/model/dto"
	"nest/internal/domains/stat/service"
	"nest/shared/constant"
	gDto "nest/shared/dto"
	"nest/shared/validator"
	"nest/transport/http/middleware"
	"nest/transport/http/response"
)

type Handler struct {
	service service.Stat
	otel    otel.Otel
}

func New(service service.Stat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, auth middleware.Auth) {
	router.Route("/stats", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetStats)
		routerGroup.Get("/{id}", handler.GetStatByID)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(auth.Authenticate, auth.RequireAdmin)
			adminGroup.Post("/", handler.CreateStat)
			adminGroup.Patch("/{id}", handler.UpdateStat)
			adminGroup.Delete("/{id}", handler.DeleteStat)
		})
	})
}

// CreateStat handles the creation of a new stat.
// @Summary Create a new stat
// @Description Create a new stat with the provided details.
// @Tags Stat
// @Accept json
// @Produce json
// @Param request body dto.CreateStatRequest true "Create Stat Request"
// @Success 201 {object} response.Message "Stat created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats [post]
// @Security BearerAuth
func (handler *Handler) CreateStat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStat")
	defer scope.End()

	req := dto.CreateStatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create stat")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Stat created successfully")

	response.WithMessage(writer, http.StatusCreated, "Stat created successfully")
}

// GetStats retrieves homepage stats with pagination.
// @Summary Get all homepage stats
// @Description Retrieve homepage stats with optional filtering and pagination.
// @Tags Stat
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetStatsResponse] "List of homepage stats"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats [get]
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortDir == "" {
		queryParams.SortDir = gDto.SortDirAsc
	}

	queryParams.RestrictSort(model.FieldPosition, constant.DefaultValueSortBy, model.FieldLabel)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	stats, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get homepage stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// GetStatByID retrieves a stat by its ID.
// @Summary Get a stat by ID
// @Description Retrieve a stat by its unique identifier.
// @Tags Stat
// @Accept json
// @Produce json
// @Param id path string true "Stat ID"
// @Success 200 {object} response.Data[dto.StatResponse] "Stat details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats/{id} [get]
func (handler *Handler) GetStatByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	stat, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stat by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stat retrieved successfully")

	response.WithJSON(w, http.StatusOK, stat)
}

// UpdateStat updates an existing stat by its ID.
// @Summary Update a stat by ID
// @Description Update the details of an existing stat.
// @Tags Stat
// @Accept json
// @Produce json
// @Param id path string true "Stat ID"
// @Param request body dto.UpdateStatRequest true "Update Stat Request"
// @Success 200 {object} response.Message "Stat updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStat")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update stat")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stat updated successfully")

	response.WithMessage(w, http.StatusOK, "Stat updated successfully")
}

// DeleteStat deletes a stat by its ID.
// @Summary Delete a stat by ID
// @Description Delete a stat using its unique identifier.
// @Tags Stat
// @Accept json
// @Produce json
// @Param id path string true "Stat ID"
// @Success 200 {object} response.Message "Stat deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStat")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete stat")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stat deleted successfully")

	response.WithMessage(w, http.StatusOK, "Stat deleted successfully")
}
