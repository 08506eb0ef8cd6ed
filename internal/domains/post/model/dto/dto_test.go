package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nest/internal/domains/post/model/dto"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Market Update", "market-update"},
		{"mixed case and punctuation", "Q3 2026: What Buyers Should Know!", "q3-2026-what-buyers-should-know"},
		{"leading and trailing separators", "  --Hello World--  ", "hello-world"},
		{"collapses runs", "a   b///c", "a-b-c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.Slugify(tt.title))
		})
	}
}

func TestCreatePostRequest_ToModel(t *testing.T) {
	t.Run("derives slug from title", func(t *testing.T) {
		req := dto.CreatePostRequest{
			Title:   "Market Update",
			Content: "Prices are up.",
		}

		mod := req.ToModel()

		assert.Equal(t, "market-update", mod.Slug)
		assert.False(t, mod.Published)
		assert.Nil(t, mod.PublishedAt)
	})

	t.Run("explicit slug wins", func(t *testing.T) {
		req := dto.CreatePostRequest{
			Title:   "Market Update",
			Slug:    "custom-slug",
			Content: "Prices are up.",
		}

		mod := req.ToModel()

		assert.Equal(t, "custom-slug", mod.Slug)
	})

	t.Run("publishing stamps published_at", func(t *testing.T) {
		req := dto.CreatePostRequest{
			Title:     "Market Update",
			Content:   "Prices are up.",
			Published: true,
		}

		mod := req.ToModel()

		assert.True(t, mod.Published)
		if assert.NotNil(t, mod.PublishedAt) {
			assert.False(t, mod.PublishedAt.IsZero())
		}
	})
}
