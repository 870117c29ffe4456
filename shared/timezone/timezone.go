package timezone

import (
	"fmt"
	"spa/config"
	"spa/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const fallbackTimezone = "UTC"

var appLocation = time.UTC

func init() {
	appLocation = load(config.Get().App.Timezone)
}

func load(name string) *time.Location {
	if name == constant.Empty {
		log.Warn().Str("timezone", fallbackTimezone).Msg("No timezone configured, using the fallback")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Location is the application timezone.
func Location() *time.Location {
	return appLocation
}

func Now() time.Time {
	return time.Now().In(appLocation)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

// Parse reads value as a wall clock time in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation)
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// DayBounds returns the [start, end) window of a YYYY-MM-DD day. The window is shorter or
// longer than 24h on daylight saving transitions.
func DayBounds(day string) (time.Time, time.Time, error) {
	start, err := Parse(constant.DayFormat, day)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to parse day %q: %w", day, err)
	}

	return start, start.AddDate(0, 0, 1), nil
}

func Today() string {
	return Now().Format(constant.DayFormat)
}
