package contact

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nest/infras/otel"
	"nest/internal/domains/contact/model"
	"nest/internal/domains/contact/model/dto"
	"nest/internal/domains/contact/service"
	"nest/shared/constant"
	gDto "nest/shared/dto"
	"nest/shared/validator"
	"nest/transport/http/middleware"
	"nest/transport/http/response"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, auth middleware.Auth) {
	router.Route("/contacts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContact)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(auth.Authenticate, auth.RequireAdmin)
			adminGroup.Get("/", handler.GetContacts)
			adminGroup.Get("/{id}", handler.GetContactByID)
			adminGroup.Patch("/{id}/replied", handler.MarkReplied)
			adminGroup.Delete("/{id}", handler.DeleteContact)
		})
	})
}

// CreateContact handles a contact form submission from the public site.
// @Summary Create a new contact message
// @Description Submit a contact form message.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Create Contact Request"
// @Success 201 {object} response.Message "Contact message sent successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts [post]
func (handler *Handler) CreateContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	req := dto.CreateContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact created successfully")

	response.WithMessage(writer, http.StatusCreated, "Contact message sent successfully")
}

// GetContacts retrieves contact messages with filtering and pagination.
// @Summary Get all contact messages
// @Description Retrieve contact messages with search and replied filters.
// @Tags Contact
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive substring match across name and email"
// @Param replied query bool false "Filter by replied flag"
// @Success 200 {object} response.Data[dto.GetContactsResponse] "List of contacts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(constant.DefaultValueSortBy, model.FieldName, model.FieldReplied)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
				gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
			},
		})
	}

	if replied := r.URL.Query().Get(model.FieldReplied); replied != "" {
		if repliedBool, err := strconv.ParseBool(replied); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.FieldReplied,
				Operator: gDto.FilterOperatorEq,
				Value:    repliedBool,
				Table:    model.TableName,
			})
		}
	}

	contacts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contacts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contacts retrieved successfully")

	response.WithJSON(w, http.StatusOK, contacts)
}

// GetContactByID retrieves a contact message by its ID.
// @Summary Get a contact message by ID
// @Description Retrieve a contact message by its unique identifier.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Data[dto.ContactResponse] "Contact details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContactByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	contact, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact retrieved successfully")

	response.WithJSON(w, http.StatusOK, contact)
}

// MarkReplied marks a contact message as replied.
// @Summary Mark a contact message as replied
// @Description Flag a contact message as having been replied to.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Message "Contact marked as replied"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts/{id}/replied [patch]
// @Security BearerAuth
func (handler *Handler) MarkReplied(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkReplied")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkReplied(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark contact as replied")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact marked as replied")

	response.WithMessage(w, http.StatusOK, "Contact marked as replied")
}

// DeleteContact deletes a contact message by its ID.
// @Summary Delete a contact message by ID
// @Description Delete a contact message using its unique identifier.
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Message "Contact deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contacts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contact deleted successfully")

	response.WithMessage(w, http.StatusOK, "Contact deleted successfully")
}
