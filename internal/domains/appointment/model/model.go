package model

import (
	"slices"
	"spa/internal/domains/room/model"
	"strings"
	"time"
)

const (
	StatusCancelledByCustomer = "CANCELLED_BY_CUSTOMER"
	StatusCancelledBySeller   = "CANCELLED_BY_SELLER"
	StatusDeclined            = "DECLINED"
	StatusNoShow              = "NO_SHOW"
)

const (
	UnknownTherapist = "Unknown Therapist"
	UnknownCustomer  = "Unknown Customer"
	UnknownService   = "Unknown Service"
)

var droppedStatuses = []string{
	StatusCancelledByCustomer,
	StatusCancelledBySeller,
	StatusDeclined,
	StatusNoShow,
}

// Dropped reports whether bookings in the status never occupy a room.
func Dropped(status string) bool {
	return slices.Contains(droppedStatuses, status)
}

// Appointment is a provider booking normalised for room assignment.
type Appointment struct {
	ID        string     `json:"id"`
	Kind      model.Kind `json:"kind"`
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	Therapist string     `json:"therapist"`
	Customer  string     `json:"customer"`
	Service   string     `json:"service"`
}

func (a Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// Overlaps uses half-open intervals, so back-to-back appointments do not overlap.
func (a Appointment) Overlaps(other Appointment) bool {
	return a.Start.Before(other.End) && other.Start.Before(a.End)
}

// Before orders by start, then by id.
func (a Appointment) Before(other Appointment) bool {
	if !a.Start.Equal(other.Start) {
		return a.Start.Before(other.Start)
	}

	return a.ID < other.ID
}

// SortAppointments sorts in place by start, then by id.
func SortAppointments(appointments []Appointment) {
	slices.SortStableFunc(appointments, func(a, b Appointment) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})
}

// TherapistFilter is the optional allow-list of therapist names.
type TherapistFilter struct {
	names []string
	raw   []string
}

func NewTherapistFilter(names []string) TherapistFilter {
	filter := TherapistFilter{}

	for _, name := range names {
		normalized := NormalizeName(name)
		if normalized == "" {
			continue
		}

		filter.names = append(filter.names, normalized)
		filter.raw = append(filter.raw, strings.TrimSpace(name))
	}

	return filter
}

func (f TherapistFilter) Enabled() bool {
	return len(f.names) > 0
}

// Names returns the configured names as written.
func (f TherapistFilter) Names() []string {
	return slices.Clone(f.raw)
}

// Allows matches by equality or by prefix in either direction. A disabled filter allows everyone.
func (f TherapistFilter) Allows(name string) bool {
	if !f.Enabled() {
		return true
	}

	normalized := NormalizeName(name)
	if normalized == "" {
		return false
	}

	for _, allowed := range f.names {
		if normalized == allowed || strings.HasPrefix(normalized, allowed) || strings.HasPrefix(allowed, normalized) {
			return true
		}
	}

	return false
}

// NormalizeName lowercases and collapses whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
