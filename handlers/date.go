package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// dateLayouts are tried in order; a bare date is midnight UTC
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

var errInvalidDate = errors.New("date must be an ISO 8601 date, e.g. 2025-07-20 or 2025-07-20T21:00:00Z")

// Date accepts ISO 8601 date strings with or without a time part
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return errInvalidDate
}
