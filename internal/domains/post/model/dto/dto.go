package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"nest/internal/domains/post/model"
	"nest/shared"
	"nest/shared/constant"
	gDto "nest/shared/dto"
	gModel "nest/shared/model"
	"nest/shared/timezone"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: lower-cased, runs of
// non-alphanumeric characters collapsed into single hyphens.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

type CreatePostRequest struct {
	Title      string `json:"title"       validate:"required,min=3,max=200"`
	Slug       string `json:"slug"        validate:"omitempty,max=200"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"     validate:"required"`
	CoverImage string `json:"cover_image" validate:"omitempty,url"`
	Published  bool   `json:"published"`
}

func (c *CreatePostRequest) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Slug = strings.TrimSpace(c.Slug)
	c.Excerpt = strings.TrimSpace(c.Excerpt)
}

func (c *CreatePostRequest) ToModel() model.Post {
	slug := c.Slug
	if slug == constant.Empty {
		slug = Slugify(c.Title)
	}

	var publishedAt *time.Time
	if c.Published {
		now := timezone.Now()
		publishedAt = &now
	}

	return model.Post{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Slug:        slug,
		Excerpt:     c.Excerpt,
		Content:     c.Content,
		CoverImage:  c.CoverImage,
		Published:   c.Published,
		PublishedAt: publishedAt,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdatePostRequest struct {
	Title      string `db:"title"       json:"title"       validate:"omitempty,min=3,max=200"`
	Slug       string `db:"slug"        json:"slug"        validate:"omitempty,max=200"`
	Excerpt    string `db:"excerpt"     json:"excerpt"     validate:"omitempty"`
	Content    string `db:"content"     json:"content"     validate:"omitempty"`
	CoverImage string `db:"cover_image" json:"cover_image" validate:"omitempty,url"`
	Published  *bool  `db:"published"   json:"published"   validate:"omitempty"`
}

func (u *UpdatePostRequest) Normalize() {
	u.Title = strings.TrimSpace(u.Title)
	u.Slug = strings.TrimSpace(u.Slug)
	u.Excerpt = strings.TrimSpace(u.Excerpt)
}

type PostResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	CoverImage  string `json:"cover_image"`
	Published   bool   `json:"published"`
	PublishedAt string `json:"published_at,omitempty"`
	gDto.Metadata
}

func (r *PostResponse) FromModel(model model.Post) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Excerpt = model.Excerpt
	r.Content = model.Content
	r.CoverImage = model.CoverImage
	r.Published = model.Published

	if model.PublishedAt != nil {
		r.PublishedAt = timezone.Format(*model.PublishedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPostsResponse struct {
	Posts     []PostResponse `json:"posts"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPostsResponse) FromModels(models []model.Post, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Posts = make([]PostResponse, len(models))
	for i, m := range models {
		r.Posts[i].FromModel(m)
	}
}
