package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"nest/config"
	"nest/infras/otel"
	"nest/internal/domains/post/model"
	"nest/internal/domains/post/model/dto"
	"nest/internal/domains/post/repository"
	"nest/shared"
	"nest/shared/cache"
	"nest/shared/constant"
	gDto "nest/shared/dto"
	"nest/shared/failure"
	"nest/shared/timezone"
)

const (
	cacheGetPost    = "post:get"
	cacheGetAllPost = "post:get_all"
	cacheCountPost  = "post:count"

	codePostNotFound  = "POST_NOT_FOUND"
	codeDuplicateSlug = "DUPLICATE_SLUG"
)

type Post interface {
	Create(ctx context.Context, req dto.CreatePostRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPostsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PostResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.PostResponse, error)
	Update(ctx context.Context, req dto.UpdatePostRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Post
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Post, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Post {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePostRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		if isUniqueViolation(err) {
			return failure.Conflict(codeDuplicateSlug, "post slug already exists") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create post")

		return fmt.Errorf("failed to create post: %w", err)
	}

	s.invalidateListCaches(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPostsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPost, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for posts")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count posts")

		return res, err
	}

	posts, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get posts")

		return res, err
	}

	res.FromModels(posts, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save posts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPost, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for post count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count posts")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save post count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.getOne(ctx, shared.BuildCacheKey(cacheGetPost, id), shared.FilterByID(id, model.FieldID, model.TableName))
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.getOne(ctx, shared.BuildCacheKey(cacheGetPost, "slug", slug), shared.FilterByID(slug, model.FieldSlug, model.TableName))
}

func (s *serviceImpl) getOne(ctx context.Context, cacheKey string, filter gDto.FilterGroup) (res dto.PostResponse, err error) {
	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for post")

		return res, nil
	}

	post, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get post")

		return res, fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == constant.Empty {
		return res, failure.NotFound(codePostNotFound, "post not found") //nolint:wrapcheck
	}

	res.FromModel(post)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save post to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePostRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	prev, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get post")

		return fmt.Errorf("failed to get post: %w", err)
	}

	if prev.ID == constant.Empty {
		return failure.NotFound(codePostNotFound, "post not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)

	// First publish stamps published_at.
	if req.Published != nil && *req.Published && prev.PublishedAt == nil {
		updatedFields[model.FieldPublishedAt] = timezone.Now()
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		if isUniqueViolation(err) {
			return failure.Conflict(codeDuplicateSlug, "post slug already exists") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update post")

		return fmt.Errorf("failed to update post: %w", err)
	}

	s.invalidateCaches(ctx, id, prev.Slug)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	post, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get post")

		return fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == constant.Empty {
		return failure.NotFound(codePostNotFound, "post not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete post")

		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.invalidateCaches(ctx, id, post.Slug)

	return nil
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPost)
		shared.InvalidateCaches(c, s.cache, cacheCountPost)
	}()
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id, slug string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPost, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete post cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPost, "slug", slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete post slug cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPost)
		shared.InvalidateCaches(c, s.cache, cacheCountPost)
	}()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}
