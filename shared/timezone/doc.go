// Package timezone pins stay dates and audit timestamps to APP_TIMEZONE.
//
// Check-in and check-out days are parsed as local midnight, and nights are
// counted in calendar days so a DST change never adds or drops a night.
// Use IANA names such as "UTC" or "Asia/Jakarta"; an unknown name falls back to UTC.
package timezone
