package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"nest/infras/otel"
	"nest/infras/postgres"
	"nest/internal/domains/auth/model"
	gDto "nest/shared/dto"
	gRepo "nest/shared/repository"
)

type Session interface {
	Insert(ctx context.Context, model model.Session) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Session, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type sessionRepositoryImpl struct {
	gRepo.Repository[model.Session]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSession(db *postgres.Connection, otel otel.Otel) Session {
	return &sessionRepositoryImpl{
		Repository: gRepo.NewRepository[model.Session](model.SessionEntityName, model.SessionTableName, model.SessionFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type AdminEmail interface {
	Insert(ctx context.Context, model model.AdminEmail) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AdminEmail, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AdminEmail, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type adminEmailRepositoryImpl struct {
	gRepo.Repository[model.AdminEmail]
	db   *postgres.Connection
	otel otel.Otel
}

func NewAdminEmail(db *postgres.Connection, otel otel.Otel) AdminEmail {
	return &adminEmailRepositoryImpl{
		Repository: gRepo.NewRepository[model.AdminEmail](model.AdminEmailEntityName, model.AdminEmailTableName, model.AdminEmailFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
