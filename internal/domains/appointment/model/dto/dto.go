package dto

import (
	"spa/internal/domains/appointment/model"
)

// DayAppointments is the normalised view of one day of provider bookings.
type DayAppointments struct {
	Date         string              `json:"date"`
	Therapists   []string            `json:"therapists"`
	Appointments []model.Appointment `json:"appointments"`
}

type ProviderStatusResponse struct {
	ProviderConfigured bool   `json:"provider_configured"`
	ProviderHealthy    bool   `json:"provider_healthy"`
	Environment        string `json:"environment"`
	Message            string `json:"message"`
}
