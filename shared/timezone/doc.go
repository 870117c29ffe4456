// Package timezone pins every calendar day the service reasons about to the spa's local
// timezone, read from APP_TIMEZONE at import time (UTC when unset or unknown).
//
//	today := timezone.Today()                      // "2025-03-01"
//	start, end, err := timezone.DayBounds(today)   // [00:00, next 00:00) local
//	stamp := timezone.Format(t, constant.DateFormat)
//
// Only IANA names such as "Asia/Jakarta" or "Europe/London" are accepted.
package timezone
