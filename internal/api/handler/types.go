package handler

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/taskhive/backoffice/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

var dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateTime accepts the two wire forms date fields arrive in: a full RFC3339
// timestamp or a bare YYYY-MM-DD calendar date. A bare date normalizes to
// local midnight, not UTC midnight, so it cannot drift a day when the server
// and the user sit in different timezones.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string")
	}
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

func parseDate(s string) (time.Time, error) {
	if dateOnlyRe.MatchString(s) {
		return time.ParseInLocation("2006-01-02", s, time.Local)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want RFC3339 or YYYY-MM-DD)", s)
}

// --- Optional conversion helpers (request schema → service input) ---

func timePtr(d *DateTime) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func optTime(o domain.Optional[DateTime]) domain.Optional[time.Time] {
	out := domain.Optional[time.Time]{Set: o.Set}
	if o.Value != nil {
		t := o.Value.Time
		out.Value = &t
	}
	return out
}
