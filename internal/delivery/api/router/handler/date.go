package handler

import (
	"bytes"
	"encoding/json"
	"time"

	"shiptrack/internal/errors"
)

const dateLayout = time.DateOnly

// OptionalDate is a JSON date that accepts RFC 3339 timestamps or plain
// YYYY-MM-DD dates. Set tells an explicit null apart from an absent key.
type OptionalDate struct {
	Set   bool
	Value *time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *OptionalDate) UnmarshalJSON(data []byte) error {
	d.Set = true
	if bytes.Equal(data, []byte("null")) {
		d.Value = nil

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "date must be a string")
	}
	if raw == "" {
		d.Value = nil

		return nil
	}

	parsed, err := parseDate(raw)
	if err != nil {
		return err
	}
	d.Value = &parsed

	return nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", raw)
	}

	return t, nil
}
