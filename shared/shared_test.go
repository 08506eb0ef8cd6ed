package shared_test

import (
	"reflect"
	"testing"
	"time"

	"nest/shared"
	"nest/shared/constant"
	"nest/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name   string  `db:"name"`
		Email  string  `db:"email"`
		Phone  string  `db:"phone"`
		Notes  *string `db:"notes"`
		NoTag  string
		Status string `db:"status"`
	}

	notes := "call after 6pm"
	req := updateRequest{
		Name:   "Alex Kim",
		Notes:  &notes,
		NoTag:  "ignored",
		Status: "Confirmed",
	}

	result := shared.TransformFields(req)

	if result["name"] != "Alex Kim" {
		t.Errorf("expected name to be set, got %v", result["name"])
	}
	if result["status"] != "Confirmed" {
		t.Errorf("expected status to be set, got %v", result["status"])
	}
	if result["notes"] != notes {
		t.Errorf("expected pointer field to be dereferenced, got %v", result["notes"])
	}
	if _, ok := result["email"]; ok {
		t.Error("expected zero-value email to be skipped")
	}
	if _, ok := result["phone"]; ok {
		t.Error("expected zero-value phone to be skipped")
	}

	updatedAt, ok := result[constant.FieldUpdatedAt].(time.Time)
	if !ok {
		t.Fatal("expected updated_at to be a time.Time")
	}
	if time.Since(updatedAt) > time.Minute {
		t.Error("expected updated_at to be refreshed")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(42), "id", "bookings")

	where, args := group.GetWhereClause()

	if where != "(bookings.id = :id)" {
		t.Errorf("unexpected where clause: %s", where)
	}
	if !reflect.DeepEqual(args, map[string]any{"id": int64(42)}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Limit: 10, Offset: 20, SortBy: "date", SortDir: "DESC"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "Pending", Table: "bookings"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if first != second {
		t.Errorf("expected stable cache keys, got %s and %s", first, second)
	}

	params.Offset = 30

	third := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	if first == third {
		t.Error("expected different cache keys for different queries")
	}
}
