package dto_test

import (
	"net/http"
	"net/http/httptest"
	"spa/shared/constant"
	"spa/shared/dto"
	"spa/shared/model"
	"spa/shared/timezone"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 3, 1, 11, 30, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		UpdatedBy: "manager",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.DateFormat)
	expectedUpdatedAt := timezone.Format(updatedAt, constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.UpdatedAt != expectedUpdatedAt {
		t.Errorf("expected UpdatedAt to be %s, got %s", expectedUpdatedAt, metadata.UpdatedAt)
	}

	if metadata.UpdatedBy != "manager" {
		t.Errorf("expected UpdatedBy to be 'manager', got %s", metadata.UpdatedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		rawQuery     string
		withDefaults bool
		expected     dto.QueryParams
	}{
		{
			name:     "every parameter given",
			rawQuery: "page=2&limit=20&sort_by=date&sort_dir=ASC",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "date", SortDir: dto.SortDirAsc},
		},
		{
			name:     "sort is normalised",
			rawQuery: "sort_by=+Room+&sort_dir=desc",
			expected: dto.QueryParams{SortBy: "room", SortDir: dto.SortDirDesc},
		},
		{
			name:     "unknown sort direction is dropped",
			rawQuery: "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
		{
			name:         "defaults fill what is missing",
			rawQuery:     "page=3",
			withDefaults: true,
			expected:     dto.QueryParams{Page: 3, Limit: constant.DefaultValueLimit},
		},
		{
			name:         "malformed numbers fall back to defaults",
			rawQuery:     "page=abc&limit=-5",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:         "zero page falls back to the default",
			rawQuery:     "page=0",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit is capped",
			rawQuery: "limit=5000",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:     "nothing given and no defaults",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/assignments?"+tt.rawQuery, nil)

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.withDefaults)

			if queryParams != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, queryParams)
			}
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	tests := []struct {
		params dto.QueryParams
		want   int
	}{
		{params: dto.QueryParams{Page: 1, Limit: 10}, want: 0},
		{params: dto.QueryParams{Page: 3, Limit: 25}, want: 50},
		{params: dto.QueryParams{Limit: 10}, want: 0},
		{params: dto.QueryParams{Page: 4}, want: 0},
	}

	for _, tt := range tests {
		if got := tt.params.Offset(); got != tt.want {
			t.Errorf("Offset() of %+v = %d, want %d", tt.params, got, tt.want)
		}
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name: "date and assigned_by",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "date", Value: "2025-03-01", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "assigned_by", Value: "manual", Operator: dto.FilterOperatorEq, Table: "room_assignments"},
				},
			},
			wantWhere: "(date = :date AND room_assignments.assigned_by = :assigned_by)",
			wantArgs:  map[string]any{"date": "2025-03-01", "assigned_by": "manual"},
		},
		{
			name: "in operator expands named args",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "room", Value: []string{"5", "6"}, Operator: dto.FilterOperatorIn},
				},
			},
			wantWhere: "(room IN (:room_0, :room_1))",
			wantArgs:  map[string]any{"room_0": "5", "room_1": "6"},
		},
		{
			name: "range and nested group",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{ArgName: "date_from", Field: "date", Value: "2025-03-01", Operator: dto.FilterOperatorGreaterEq},
					dto.Filter{ArgName: "date_to", Field: "date", Value: "2025-03-07", Operator: dto.FilterOperatorLessEq},
					dto.FilterGroup{
						Operator: dto.FilterGroupOperatorOr,
						Filters: []any{
							dto.Filter{Field: "reason", Operator: dto.FilterIsNull},
							dto.Filter{Field: "reason", Value: "busy", Operator: dto.FilterOperatorLike},
						},
					},
				},
			},
			wantWhere: "(date >= :date_from AND date <= :date_to AND (reason IS NULL OR LOWER(reason) LIKE LOWER(:reason)))",
			wantArgs:  map[string]any{"date_from": "2025-03-01", "date_to": "2025-03-07", "reason": "%busy%"},
		},
		{
			name: "unknown operators are skipped and AND is the default",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "room", Value: "1", Operator: "regex"},
					dto.Filter{Field: "room", Value: "1", Operator: dto.FilterOperatorNotEq},
					dto.Filter{Field: "date", Value: "2025-03-01", Operator: dto.FilterOperatorEq},
				},
			},
			wantWhere: "(room != :room AND date = :date)",
			wantArgs:  map[string]any{"room": "1", "date": "2025-03-01"},
		},
		{
			name: "empty in list matches nothing",
			group: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "room", Value: []string{}, Operator: dto.FilterOperatorIn},
				},
			},
			wantWhere: "(FALSE)",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()
			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}
			for key, value := range tt.wantArgs {
				if args[key] != value {
					t.Errorf("expected arg %s to be %v, got %v", key, value, args[key])
				}
			}
		})
	}
}
