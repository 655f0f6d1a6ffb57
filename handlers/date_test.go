package handlers

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2025-07-20"`, time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)},
		{`"2025-07-20T21:30:00Z"`, time.Date(2025, 7, 20, 21, 30, 0, 0, time.UTC)},
		{`"2025-07-20T21:30:00.250+02:00"`, time.Date(2025, 7, 20, 19, 30, 0, 250e6, time.UTC)},
		{`"2025-07-20T21:30:00"`, time.Date(2025, 7, 20, 21, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		var d Date
		if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if !d.Equal(tt.want) {
			t.Fatalf("%s = %v, want %v", tt.in, d.Time, tt.want)
		}
	}
}

func TestDate_UnmarshalJSONRejectsGarbage(t *testing.T) {
	for _, in := range []string{`"20/07/2025"`, `""`, `12`, `"2025-13-01"`} {
		var d Date
		err := json.Unmarshal([]byte(in), &d)
		if !errors.Is(err, errInvalidDate) {
			t.Fatalf("%s: err = %v, want errInvalidDate", in, err)
		}
	}
}
