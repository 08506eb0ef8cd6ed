package model

import (
	"time"

	"nest/shared/model"
)

const (
	TableName  = "posts"
	EntityName = "post"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldExcerpt     = "excerpt"
	FieldContent     = "content"
	FieldCoverImage  = "cover_image"
	FieldPublished   = "published"
	FieldPublishedAt = "published_at"
)

type Post struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     string     `db:"excerpt"`
	Content     string     `db:"content"`
	CoverImage  string     `db:"cover_image"`
	Published   bool       `db:"published"`
	PublishedAt *time.Time `db:"published_at"`
	model.Metadata
}
