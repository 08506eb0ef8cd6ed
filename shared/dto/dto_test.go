package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"nest/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want dto.QueryParams
	}{
		{
			name: "defaults applied",
			url:  "/bookings",
			want: dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name: "offset disables page default",
			url:  "/bookings?offset=20&limit=5",
			want: dto.QueryParams{Offset: 20, Limit: 5},
		},
		{
			name: "limit capped at 100",
			url:  "/bookings?limit=500",
			want: dto.QueryParams{Page: 1, Limit: 100},
		},
		{
			name: "sort parsed and upper-cased",
			url:  "/bookings?sort_by=date&sort_dir=desc",
			want: dto.QueryParams{Page: 1, Limit: 10, SortBy: "date", SortDir: "DESC"},
		},
		{
			name: "invalid numbers ignored",
			url:  "/bookings?limit=abc&offset=-3",
			want: dto.QueryParams{Page: 1, Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			q := dto.QueryParams{}
			q.FromRequest(r, true)

			assert.Equal(t, tt.want, q)
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	tests := []struct {
		name    string
		in      dto.QueryParams
		allowed []string
		want    dto.QueryParams
	}{
		{
			name:    "allowed column passes through",
			in:      dto.QueryParams{SortBy: "name", SortDir: "ASC"},
			allowed: []string{"name", "status"},
			want:    dto.QueryParams{SortBy: "name", SortDir: "ASC"},
		},
		{
			name:    "fallback column passes through",
			in:      dto.QueryParams{SortBy: "created_at", SortDir: "DESC"},
			allowed: []string{"name"},
			want:    dto.QueryParams{SortBy: "created_at", SortDir: "DESC"},
		},
		{
			name:    "unknown column falls back",
			in:      dto.QueryParams{SortBy: "password", SortDir: "ASC"},
			allowed: []string{"name"},
			want:    dto.QueryParams{SortBy: "created_at", SortDir: "ASC"},
		},
		{
			name:    "sql fragment falls back",
			in:      dto.QueryParams{SortBy: "id; DROP TABLE bookings; --", SortDir: "DESC"},
			allowed: []string{"name", "status"},
			want:    dto.QueryParams{SortBy: "created_at", SortDir: "DESC"},
		},
		{
			name:    "empty sort gets fallback and direction",
			in:      dto.QueryParams{},
			allowed: []string{"name"},
			want:    dto.QueryParams{SortBy: "created_at", SortDir: "DESC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.RestrictSort("created_at", tt.allowed...)

			assert.Equal(t, tt.want, q)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	f := dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "Pending", Table: "bookings"}

	where, args := f.GetWhereClause()

	assert.Equal(t, "bookings.status = :status", where)
	assert.Equal(t, map[string]any{"status": "Pending"}, args)
}

func TestFilterGroup_NestedOrSearch(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "Confirmed", Table: "bookings"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "alex", Table: "bookings"},
					dto.Filter{Field: "email", Operator: dto.FilterOperatorLike, Value: "alex", Table: "bookings"},
					dto.Filter{Field: "phone", Operator: dto.FilterOperatorLike, Value: "alex", Table: "bookings"},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Contains(t, where, "bookings.status = :status")
	assert.Contains(t, where, "LOWER(bookings.name) LIKE LOWER(:name)")
	assert.Contains(t, where, " OR ")
	assert.Contains(t, where, " AND ")
	assert.Equal(t, "%alex%", args["name"])
	assert.Equal(t, "%alex%", args["email"])
	assert.Equal(t, "%alex%", args["phone"])
}
