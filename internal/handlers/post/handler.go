package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"nest/infras/otel"
	"nest/internal/domains/post/model"
	"nest/internal/domains/post/model/dto"
	"nest/internal/domains/post/service"
	"nest/shared/constant"
	gDto "nest/shared/dto"
	"nest/shared/validator"
	"nest/transport/http/middleware"
	"nest/transport/http/response"
)

type Handler struct {
	service service.Post
	otel    otel.Otel
}

func New(service service.Post, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, auth middleware.Auth) {
	router.Route("/posts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPosts)
		routerGroup.Get("/slug/{slug}", handler.GetPostBySlug)
		routerGroup.Get("/{id}", handler.GetPostByID)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(auth.Authenticate, auth.RequireAdmin)
			adminGroup.Post("/", handler.CreatePost)
			adminGroup.Patch("/{id}", handler.UpdatePost)
			adminGroup.Delete("/{id}", handler.DeletePost)
		})
	})
}

// CreatePost handles the creation of a new blog post.
// @Summary Create a new post
// @Description Create a new blog post. The slug is derived from the title when absent.
// @Tags Post
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Create Post Request"
// @Success 201 {object} response.Message "Post created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts [post]
// @Security BearerAuth
func (handler *Handler) CreatePost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePost")
	defer scope.End()

	req := dto.CreatePostRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create post")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Post created successfully")

	response.WithMessage(writer, http.StatusCreated, "Post created successfully")
}

// GetPosts retrieves blog posts with filtering and pagination.
// @Summary Get all posts
// @Description Retrieve blog posts with title search and published filters.
// @Tags Post
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive substring match on title"
// @Param published query bool false "Filter by published flag"
// @Success 200 {object} response.Data[dto.GetPostsResponse] "List of posts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts [get]
func (handler *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPosts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(constant.DefaultValueSortBy, model.FieldTitle, model.FieldPublishedAt)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	if published := r.URL.Query().Get(model.FieldPublished); published != "" {
		if publishedBool, err := strconv.ParseBool(published); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.FieldPublished,
				Operator: gDto.FilterOperatorEq,
				Value:    publishedBool,
				Table:    model.TableName,
			})
		}
	}

	posts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get posts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Posts retrieved successfully")

	response.WithJSON(w, http.StatusOK, posts)
}

// GetPostByID retrieves a post by its ID.
// @Summary Get a post by ID
// @Description Retrieve a blog post by its unique identifier.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Data[dto.PostResponse] "Post details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{id} [get]
func (handler *Handler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	post, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get post by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post retrieved successfully")

	response.WithJSON(w, http.StatusOK, post)
}

// GetPostBySlug retrieves a post by its slug.
// @Summary Get a post by slug
// @Description Retrieve a blog post by its URL slug.
// @Tags Post
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Data[dto.PostResponse] "Post details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/slug/{slug} [get]
func (handler *Handler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostBySlug")
	defer scope.End()

	slug := chi.URLParam(r, "slug")

	post, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get post by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post retrieved successfully")

	response.WithJSON(w, http.StatusOK, post)
}

// UpdatePost updates an existing post by its ID.
// @Summary Update a post by ID
// @Description Update the details of an existing blog post. The first publish stamps published_at.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.UpdatePostRequest true "Update Post Request"
// @Success 200 {object} response.Message "Post updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePostRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update post")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post updated successfully")

	response.WithMessage(w, http.StatusOK, "Post updated successfully")
}

// DeletePost deletes a post by its ID.
// @Summary Delete a post by ID
// @Description Delete a blog post using its unique identifier.
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Message "Post deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete post")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post deleted successfully")

	response.WithMessage(w, http.StatusOK, "Post deleted successfully")
}
