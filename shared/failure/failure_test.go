package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"spa/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		failure *failure.Failure
		code    int
		message string
	}{
		{failure: failure.InvalidDateParam, code: http.StatusBadRequest, message: "invalid date, expected YYYY-MM-DD"},
		{failure: failure.InvalidAPIKey, code: http.StatusUnauthorized, message: "invalid or missing API key"},
		{failure: failure.ProviderNotConfigured, code: http.StatusServiceUnavailable, message: "booking provider is not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.EqualError(t, tt.failure, tt.message)
			assert.Equal(t, tt.code, failure.GetCode(tt.failure))
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("upstream said no")

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(cause), code: http.StatusBadRequest, message: "upstream said no"},
		{name: "bad request from string", err: failure.BadRequestFromString("room is required"), code: http.StatusBadRequest, message: "room is required"},
		{name: "unauthorized", err: failure.Unauthorized("token has expired"), code: http.StatusUnauthorized, message: "token has expired"},
		{name: "not found", err: failure.NotFound("assignment not found"), code: http.StatusNotFound, message: "assignment not found"},
		{name: "conflict", err: failure.Conflict("not a manual pin"), code: http.StatusConflict, message: "not a manual pin"},
		{name: "service unavailable", err: failure.ServiceUnavailable("provider down"), code: http.StatusServiceUnavailable, message: "provider down"},
		{name: "bad gateway", err: failure.BadGateway(cause), code: http.StatusBadGateway, message: "upstream said no"},
		{name: "custom", err: failure.New(http.StatusTeapot, "short and stout"), code: http.StatusTeapot, message: "short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.message)
		})
	}
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.BadGateway(nil))
	assert.NoError(t, failure.Wrap(http.StatusInternalServerError, nil))
}

func TestWrap_KeepsCause(t *testing.T) {
	sentinel := errors.New("booking provider error")

	err := failure.BadGateway(fmt.Errorf("failed to list bookings: %w", sentinel))

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
		{name: "wrapped failure", err: fmt.Errorf("failed to pin room: %w", failure.NotFound("assignment not found")), want: http.StatusNotFound},
		{name: "sentinel failure", err: fmt.Errorf("day: %w", failure.ProviderNotConfigured), want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestIs_Sentinel(t *testing.T) {
	err := fmt.Errorf("recompute 2025-03-01: %w", failure.ProviderNotConfigured)

	assert.ErrorIs(t, err, failure.ProviderNotConfigured)
	assert.NotErrorIs(t, err, failure.InvalidDateParam)
}
