package square

//go:generate go run go.uber.org/mock/mockgen -source=./square.go -destination=./mocks/square_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"spa/config"
	"spa/infras/otel"
	"spa/shared/constant"
	"spa/shared/failure"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"

	sandboxBaseURL    = "https://connect.squareupsandbox.com"
	productionBaseURL = "https://connect.squareup.com"

	headerSquareVersion = "Square-Version"

	listBookingsLimit = 100
	teamMembersLimit  = 200
	maxRetryWaitTime  = 5 * time.Second
)

var errProvider = errors.New("booking provider error")

// Client is the booking provider handle. Every call fails with failure.ProviderNotConfigured
// until both an access token and a location id are set.
type Client interface {
	Configured() bool
	Environment() string
	Ping(ctx context.Context) error
	ListBookings(ctx context.Context, startAtMin, startAtMax time.Time) ([]Booking, error)
	ListTeamMembers(ctx context.Context) ([]TeamMember, error)
	RetrieveCatalogObject(ctx context.Context, objectID string) (CatalogObjectResponse, error)
	RetrieveCustomer(ctx context.Context, customerID string) (Customer, error)
}

type clientImpl struct {
	http        *resty.Client
	otel        otel.Otel
	locationID  string
	environment string
	configured  bool
}

func New(cfg *config.Config, ot otel.Otel) Client {
	provider := cfg.Provider

	baseURL := provider.BaseURL
	if baseURL == constant.Empty {
		baseURL = sandboxBaseURL
		if provider.Environment == EnvironmentProduction {
			baseURL = productionBaseURL
		}
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(time.Duration(provider.TimeoutSeconds)*time.Second).
		SetRetryCount(provider.RetryCount).
		SetRetryWaitTime(time.Duration(provider.RetryWaitTimeMillis)*time.Millisecond).
		SetRetryMaxWaitTime(maxRetryWaitTime).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}

			return resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= http.StatusInternalServerError
		}).
		SetAuthToken(provider.AccessToken).
		SetHeader(headerSquareVersion, provider.APIVersion).
		SetHeader(constant.RequestHeaderContentType, constant.ContentTypeJSON).
		SetHeader("Accept", constant.ContentTypeJSON)

	configured := provider.AccessToken != constant.Empty && provider.LocationID != constant.Empty
	if !configured {
		log.Warn().Msg("Booking provider credentials missing, provider calls will be rejected")
	} else {
		log.Info().Str("environment", provider.Environment).Str("baseURL", baseURL).Msg("Booking provider client initialized")
	}

	return &clientImpl{
		http:        httpClient,
		otel:        ot,
		locationID:  provider.LocationID,
		environment: provider.Environment,
		configured:  configured,
	}
}

func (c *clientImpl) Configured() bool {
	return c.configured
}

func (c *clientImpl) Environment() string {
	return c.environment
}

// Ping checks that the credentials can read the configured location.
func (c *clientImpl) Ping(ctx context.Context) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Ping")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !c.configured {
		return failure.ProviderNotConfigured
	}

	var apiErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&apiErr).
		SetPathParam("locationID", c.locationID).
		Get("/v2/locations/{locationID}")

	return c.check(resp, err, apiErr, "ping")
}

// ListBookings returns every booking starting in [startAtMin, startAtMax), following the cursor.
func (c *clientImpl) ListBookings(ctx context.Context, startAtMin, startAtMax time.Time) (res []Booking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ListBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !c.configured {
		return nil, failure.ProviderNotConfigured
	}

	cursor := constant.Empty
	pages := 0

	for {
		var (
			page   listBookingsResponse
			apiErr errorResponse
		)

		req := c.http.R().
			SetContext(ctx).
			SetResult(&page).
			SetError(&apiErr).
			SetQueryParams(map[string]string{
				"location_id":  c.locationID,
				"start_at_min": startAtMin.UTC().Format(time.RFC3339),
				"start_at_max": startAtMax.UTC().Format(time.RFC3339),
				"limit":        fmt.Sprint(listBookingsLimit),
			})

		if cursor != constant.Empty {
			req.SetQueryParam("cursor", cursor)
		}

		resp, err := req.Get("/v2/bookings")
		if err = c.check(resp, err, apiErr, "list bookings"); err != nil {
			return nil, err
		}

		res = append(res, page.Bookings...)
		pages++

		if page.Cursor == constant.Empty {
			break
		}

		cursor = page.Cursor
	}

	scope.SetAttributes(map[string]any{"bookings": len(res), "pages": pages})
	log.Debug().Int("bookings", len(res)).Int("pages", pages).Msg("Fetched bookings from provider")

	return res, nil
}

// ListTeamMembers returns the active team members of the configured location.
func (c *clientImpl) ListTeamMembers(ctx context.Context) (res []TeamMember, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ListTeamMembers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !c.configured {
		return nil, failure.ProviderNotConfigured
	}

	body := searchTeamMembersRequest{
		Query: teamMemberQuery{Filter: teamMemberFilter{
			LocationIDs: []string{c.locationID},
			Status:      "ACTIVE",
		}},
		Limit: teamMembersLimit,
	}

	for {
		var (
			page   searchTeamMembersResponse
			apiErr errorResponse
		)

		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(body).
			SetResult(&page).
			SetError(&apiErr).
			Post("/v2/team-members/search")
		if err = c.check(resp, err, apiErr, "search team members"); err != nil {
			return nil, err
		}

		res = append(res, page.TeamMembers...)

		if page.Cursor == constant.Empty {
			break
		}

		body.Cursor = page.Cursor
	}

	return res, nil
}

func (c *clientImpl) RetrieveCatalogObject(ctx context.Context, objectID string) (res CatalogObjectResponse, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".RetrieveCatalogObject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !c.configured {
		return res, failure.ProviderNotConfigured
	}

	var apiErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&res).
		SetError(&apiErr).
		SetPathParam("objectID", objectID).
		SetQueryParam("include_related_objects", "true").
		Get("/v2/catalog/object/{objectID}")

	return res, c.check(resp, err, apiErr, "retrieve catalog object")
}

func (c *clientImpl) RetrieveCustomer(ctx context.Context, customerID string) (res Customer, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".RetrieveCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !c.configured {
		return res, failure.ProviderNotConfigured
	}

	var (
		body   retrieveCustomerResponse
		apiErr errorResponse
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		SetError(&apiErr).
		SetPathParam("customerID", customerID).
		Get("/v2/customers/{customerID}")

	return body.Customer, c.check(resp, err, apiErr, "retrieve customer")
}

func (c *clientImpl) check(resp *resty.Response, err error, apiErr errorResponse, action string) error {
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("Booking provider request failed")

		return failure.ServiceUnavailable(fmt.Sprintf("failed to %s: %s", action, err.Error()))
	}

	if resp.IsError() {
		detail := apiErr.String()
		log.Error().
			Int("status", resp.StatusCode()).
			Str("action", action).
			Str("detail", detail).
			Msg("Booking provider returned an error")

		if resp.StatusCode() == http.StatusNotFound {
			return failure.NotFound(fmt.Sprintf("%s: not found", action)) //nolint:wrapcheck
		}

		return failure.BadGateway(fmt.Errorf("failed to %s (status %d, %s): %w", action, resp.StatusCode(), detail, errProvider))
	}

	return nil
}
