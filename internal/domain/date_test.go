package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-05-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if date.Year() != 2024 || date.Month() != time.May || date.Day() != 1 {
		t.Errorf("ParseDate = %v", date)
	}

	for _, bad := range []string{"05/01/2024", "2024-5-1", "yesterday", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected an error", bad)
		}
	}
}

func TestDateJSON(t *testing.T) {
	date := NewDate(2024, time.May, 1)

	data, err := json.Marshal(date)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2024-05-01"` {
		t.Errorf("Marshal = %s", data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Equal(date.Time) {
		t.Errorf("round trip = %v, want %v", decoded, date)
	}

	var empty Date
	if err := json.Unmarshal([]byte(`""`), &empty); err != nil {
		t.Fatalf("Unmarshal empty: %v", err)
	}
	if !empty.IsZero() {
		t.Errorf("empty string should decode to the zero date, got %v", empty)
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &decoded); err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2024, time.May, 1).String(); got != "2024-05-01" {
		t.Errorf("String = %q", got)
	}
	if got := (Date{}).String(); got != "" {
		t.Errorf("zero String = %q, want empty", got)
	}
}
