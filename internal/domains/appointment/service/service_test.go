package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"spa/config"
	"spa/infras/otel/mocks"
	"spa/infras/square"
	squareMocks "spa/infras/square/mocks"
	"spa/internal/domains/appointment/model"
	"spa/internal/domains/appointment/model/dto"
	"spa/internal/domains/appointment/service"
	roomModel "spa/internal/domains/room/model"
	"spa/shared/cache"
	cacheMocks "spa/shared/cache/mocks"
	"spa/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDate = "2025-03-01"

type fixture struct {
	provider *squareMocks.MockClient
	cache    *cacheMocks.MockRedisCache
	cfg      *config.Config
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Provider.CouplePattern = "couple"

	return fixture{
		provider: squareMocks.NewMockClient(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		cfg:      cfg,
	}
}

func (f fixture) service() service.Appointment {
	return service.New(f.provider, f.cache, f.cfg, mocks.NewOtel())
}

func segment(minutes int, member, variation string) square.Segment {
	return square.Segment{DurationMinutes: minutes, TeamMemberID: member, ServiceVariationID: variation}
}

func catalog(name string) square.CatalogObjectResponse {
	return square.CatalogObjectResponse{Object: square.CatalogObject{
		Type:              square.CatalogTypeItemVariation,
		ItemVariationData: &square.ItemVariationData{Name: name},
	}}
}

func TestAppointmentService_GetDay(t *testing.T) {
	f := newFixture(t)
	svc := f.service()

	bookings := []square.Booking{
		{
			ID:                  "bk-couple",
			Status:              "ACCEPTED",
			StartAt:             "2025-03-01T11:00:00Z",
			CustomerID:          "CUST0001XYZ",
			AppointmentSegments: []square.Segment{segment(60, "TM1", "SV-COUPLE"), segment(30, "TM2", "SV-ADDON")},
		},
		{
			ID:                  "bk-single",
			Status:              "ACCEPTED",
			StartAt:             "2025-03-01T10:00:00Z",
			CustomerNote:        "Walk-in guest",
			AppointmentSegments: []square.Segment{segment(60, "TM2", "SV-SINGLE")},
		},
		{ID: "bk-cancelled", Status: "CANCELLED_BY_CUSTOMER", StartAt: "2025-03-01T10:00:00Z", AppointmentSegments: []square.Segment{segment(60, "TM1", "SV-SINGLE")}},
		{ID: "bk-noshow", Status: "NO_SHOW", StartAt: "2025-03-01T10:00:00Z", AppointmentSegments: []square.Segment{segment(60, "TM1", "SV-SINGLE")}},
		{ID: "bk-nosegments", Status: "ACCEPTED", StartAt: "2025-03-01T10:00:00Z"},
		{ID: "bk-zero", Status: "ACCEPTED", StartAt: "2025-03-01T10:00:00Z", AppointmentSegments: []square.Segment{segment(0, "TM1", "")}},
	}

	f.provider.EXPECT().Configured().Return(true)
	f.cache.EXPECT().Get(gomock.Any(), "appointment:day:2025-03-01", gomock.Any()).Return(cache.Nil)
	f.provider.EXPECT().ListBookings(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, start, end time.Time) ([]square.Booking, error) {
			assert.Equal(t, 24*time.Hour, end.Sub(start))

			return bookings, nil
		})
	f.provider.EXPECT().ListTeamMembers(gomock.Any()).Return([]square.TeamMember{
		{ID: "TM1", GivenName: "Sophia", FamilyName: "Lee"},
		{ID: "TM2", DisplayName: "Mia"},
		{ID: "TM3", GivenName: "Olivia"},
	}, nil)
	f.provider.EXPECT().RetrieveCustomer(gomock.Any(), "CUST0001XYZ").Return(square.Customer{}, nil)
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).Times(3)
	f.provider.EXPECT().RetrieveCatalogObject(gomock.Any(), "SV-COUPLE").Return(catalog("Couples Massage"), nil)
	f.provider.EXPECT().RetrieveCatalogObject(gomock.Any(), "SV-ADDON").Return(catalog("Hot Stones"), nil)
	f.provider.EXPECT().RetrieveCatalogObject(gomock.Any(), "SV-SINGLE").Return(catalog("Swedish"), nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).AnyTimes()

	res, err := svc.GetDay(context.Background(), testDate, false)
	require.NoError(t, err)

	assert.Equal(t, testDate, res.Date)
	require.Len(t, res.Appointments, 2)

	single := res.Appointments[0]
	assert.Equal(t, "bk-single", single.ID)
	assert.Equal(t, roomModel.KindSingle, single.Kind)
	assert.Equal(t, "Mia", single.Therapist)
	assert.Equal(t, "Walk-in guest", single.Customer)
	assert.Equal(t, "Swedish", single.Service)
	assert.Equal(t, time.Hour, single.Duration())

	couple := res.Appointments[1]
	assert.Equal(t, "bk-couple", couple.ID)
	assert.Equal(t, roomModel.KindCouple, couple.Kind)
	assert.Equal(t, "Sophia Lee", couple.Therapist)
	assert.Equal(t, "Customer CUST0001", couple.Customer)
	assert.Equal(t, "Couples Massage, Hot Stones", couple.Service)
	assert.Equal(t, 90*time.Minute, couple.Duration())

	assert.Equal(t, []string{"Mia", "Olivia", "Sophia Lee"}, res.Therapists)
}

func TestAppointmentService_GetDay_CacheHit(t *testing.T) {
	f := newFixture(t)

	cached := dto.DayAppointments{Date: testDate, Therapists: []string{"Mia"}, Appointments: []model.Appointment{{ID: "bk-1"}}}

	f.provider.EXPECT().Configured().Return(true)
	f.cache.EXPECT().Get(gomock.Any(), "appointment:day:2025-03-01", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*dto.DayAppointments) = cached

			return nil
		})

	res, err := f.service().GetDay(context.Background(), testDate, false)
	require.NoError(t, err)
	assert.Equal(t, cached, res)
}

func TestAppointmentService_GetDay_RefreshBypassesCache(t *testing.T) {
	f := newFixture(t)

	f.provider.EXPECT().Configured().Return(true)
	f.provider.EXPECT().ListBookings(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.provider.EXPECT().ListTeamMembers(gomock.Any()).Return(nil, errors.New("boom"))
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.service().GetDay(context.Background(), testDate, true)
	require.NoError(t, err)
	assert.Empty(t, res.Appointments)
	assert.Empty(t, res.Therapists)
}

func TestAppointmentService_GetDay_AllowList(t *testing.T) {
	f := newFixture(t)
	f.cfg.Provider.AllowedTherapists = []string{"Sophia", "Grace Kim"}
	f.cfg.Provider.CoupleServiceID = "SV-DUO"

	f.provider.EXPECT().Configured().Return(true)
	f.provider.EXPECT().ListBookings(gomock.Any(), gomock.Any(), gomock.Any()).Return([]square.Booking{
		{ID: "bk-1", Status: "ACCEPTED", StartAt: "2025-03-01T10:00:00Z", AppointmentSegments: []square.Segment{segment(60, "TM1", "SV-DUO")}},
		{ID: "bk-2", Status: "ACCEPTED", StartAt: "2025-03-01T10:00:00Z", AppointmentSegments: []square.Segment{segment(60, "TM2", "SV-DUO")}},
	}, nil)
	f.provider.EXPECT().ListTeamMembers(gomock.Any()).Return([]square.TeamMember{
		{ID: "TM1", GivenName: "Sophia", FamilyName: "Lee"},
		{ID: "TM2", DisplayName: "Mia"},
	}, nil)
	f.cache.EXPECT().Get(gomock.Any(), "appointment:service:SV-DUO", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*string) = "Duo Retreat"

			return nil
		})
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.service().GetDay(context.Background(), testDate, true)
	require.NoError(t, err)

	require.Len(t, res.Appointments, 1)
	assert.Equal(t, "bk-1", res.Appointments[0].ID)
	assert.Equal(t, roomModel.KindCouple, res.Appointments[0].Kind)
	assert.Equal(t, "Duo Retreat", res.Appointments[0].Service)
	assert.Equal(t, model.UnknownCustomer, res.Appointments[0].Customer)

	assert.Equal(t, []string{"Grace Kim", "Sophia Lee"}, res.Therapists)
}

func TestAppointmentService_GetDay_Errors(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service().GetDay(context.Background(), "01-03-2025", false)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("provider not configured", func(t *testing.T) {
		f := newFixture(t)
		f.provider.EXPECT().Configured().Return(false)

		_, err := f.service().GetDay(context.Background(), testDate, false)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})

	t.Run("provider failure", func(t *testing.T) {
		f := newFixture(t)
		f.provider.EXPECT().Configured().Return(true)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.provider.EXPECT().ListBookings(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, failure.BadGateway(errors.New("upstream down")))

		_, err := f.service().GetDay(context.Background(), testDate, false)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}

func TestAppointmentService_InvalidateDay(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Delete(gomock.Any(), "appointment:day:2025-03-01").Return(errors.New("redis down"))

	f.service().InvalidateDay(context.Background(), testDate)
}

func TestAppointmentService_ProviderStatus(t *testing.T) {
	tests := []struct {
		name        string
		configured  bool
		pingErr     error
		wantHealthy bool
	}{
		{name: "not configured", configured: false},
		{name: "ping fails", configured: true, pingErr: failure.BadGateway(errors.New("unauthorized"))},
		{name: "healthy", configured: true, wantHealthy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.provider.EXPECT().Environment().Return("sandbox")
			f.provider.EXPECT().Configured().Return(tt.configured)

			if tt.configured {
				f.provider.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)
			}

			res := f.service().ProviderStatus(context.Background())

			assert.Equal(t, tt.configured, res.ProviderConfigured)
			assert.Equal(t, tt.wantHealthy, res.ProviderHealthy)
			assert.Equal(t, "sandbox", res.Environment)
			assert.NotEmpty(t, res.Message)
		})
	}
}
