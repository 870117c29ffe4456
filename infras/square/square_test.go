package square_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spa/config"
	"spa/infras/otel/mocks"
	"spa/infras/square"
	"spa/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) square.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Provider.AccessToken = "token-123"
	cfg.Provider.LocationID = "LOC1"
	cfg.Provider.BaseURL = server.URL
	cfg.Provider.APIVersion = "2024-10-17"
	cfg.Provider.TimeoutSeconds = 5

	return square.New(cfg, mocks.NewOtel())
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNew_NotConfigured(t *testing.T) {
	client := square.New(&config.Config{}, mocks.NewOtel())

	assert.False(t, client.Configured())

	_, err := client.ListBookings(context.Background(), time.Now(), time.Now())
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))

	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(client.Ping(context.Background())))
}

func TestListBookings_FollowsCursor(t *testing.T) {
	calls := 0
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++

		assert.Equal(t, "/v2/bookings", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "2024-10-17", r.Header.Get("Square-Version"))
		assert.Equal(t, "LOC1", r.URL.Query().Get("location_id"))
		assert.Equal(t, "2025-03-01T00:00:00Z", r.URL.Query().Get("start_at_min"))
		assert.Equal(t, "2025-03-02T00:00:00Z", r.URL.Query().Get("start_at_max"))

		if r.URL.Query().Get("cursor") == "" {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"bookings": []map[string]any{{"id": "bk-1", "status": "ACCEPTED", "start_at": "2025-03-01T10:00:00Z"}},
				"cursor":   "next",
			})

			return
		}

		assert.Equal(t, "next", r.URL.Query().Get("cursor"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"bookings": []map[string]any{{
				"id":       "bk-2",
				"status":   "ACCEPTED",
				"start_at": "2025-03-01T11:00:00Z",
				"appointment_segments": []map[string]any{
					{"duration_minutes": 60, "team_member_id": "TM1", "service_variation_id": "SV1"},
				},
			}},
		})
	})

	bookings, err := client.ListBookings(context.Background(), start, start.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	require.Len(t, bookings, 2)
	assert.Equal(t, "bk-1", bookings[0].ID)
	assert.Equal(t, 60, bookings[1].AppointmentSegments[0].DurationMinutes)
	assert.Equal(t, "TM1", bookings[1].AppointmentSegments[0].TeamMemberID)
}

func TestListBookings_ProviderError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{
			"errors": []map[string]any{{"category": "AUTHENTICATION_ERROR", "code": "UNAUTHORIZED", "detail": "bad token"}},
		})
	})

	_, err := client.ListBookings(context.Background(), time.Now(), time.Now())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.Contains(t, err.Error(), "UNAUTHORIZED: bad token")
}

func TestListTeamMembers(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/team-members/search", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "query")

		writeJSON(t, w, http.StatusOK, map[string]any{
			"team_members": []map[string]any{
				{"id": "TM1", "given_name": "Sophia", "family_name": "Lee"},
				{"id": "TM2", "display_name": "Mia"},
				{"id": "TM3"},
			},
		})
	})

	members, err := client.ListTeamMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 3)

	assert.Equal(t, "Sophia Lee", members[0].Name())
	assert.Equal(t, "Mia", members[1].Name())
	assert.Equal(t, "TM3", members[2].Name())
}

func TestRetrieveCatalogObject(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/catalog/object/SV1", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("include_related_objects"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"object": map[string]any{
				"id":                  "SV1",
				"type":                "ITEM_VARIATION",
				"item_variation_data": map[string]any{"item_id": "IT1"},
			},
			"related_objects": []map[string]any{
				{"id": "IT1", "type": "ITEM", "item_data": map[string]any{"name": "Couples Massage"}},
			},
		})
	})

	res, err := client.RetrieveCatalogObject(context.Background(), "SV1")
	require.NoError(t, err)
	assert.Equal(t, "Couples Massage", res.ServiceName())
}

func TestRetrieveCustomer(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v2/customers/missing" {
			writeJSON(t, w, http.StatusNotFound, map[string]any{
				"errors": []map[string]any{{"code": "NOT_FOUND", "detail": "no customer"}},
			})

			return
		}

		writeJSON(t, w, http.StatusOK, map[string]any{
			"customer": map[string]any{"id": "C1", "email_address": "guest@example.com"},
		})
	})

	customer, err := client.RetrieveCustomer(context.Background(), "C1")
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", customer.DisplayName())

	_, err = client.RetrieveCustomer(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestPing(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/locations/LOC1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"location": map[string]any{"id": "LOC1"}})
	})

	assert.NoError(t, client.Ping(context.Background()))
}

func TestCatalogObjectResponse_ServiceName(t *testing.T) {
	tests := []struct {
		name     string
		response square.CatalogObjectResponse
		expected string
	}{
		{
			name: "variation name",
			response: square.CatalogObjectResponse{Object: square.CatalogObject{
				Type:              square.CatalogTypeItemVariation,
				ItemVariationData: &square.ItemVariationData{Name: "60 min"},
			}},
			expected: "60 min",
		},
		{
			name: "item name",
			response: square.CatalogObjectResponse{Object: square.CatalogObject{
				Type:     square.CatalogTypeItem,
				ItemData: &square.ItemData{Name: "Deep Tissue"},
			}},
			expected: "Deep Tissue",
		},
		{
			name: "any related item as last resort",
			response: square.CatalogObjectResponse{
				Object: square.CatalogObject{Type: square.CatalogTypeItemVariation},
				RelatedObjects: []square.CatalogObject{
					{Type: square.CatalogTypeItem, ItemData: &square.ItemData{Name: "Hot Stone"}},
				},
			},
			expected: "Hot Stone",
		},
		{
			name:     "nothing resolvable",
			response: square.CatalogObjectResponse{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.response.ServiceName())
		})
	}
}
