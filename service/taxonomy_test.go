package service

import (
	"testing"
	"time"
)

func TestParseYearDate(t *testing.T) {
	fallback := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	got, err := parseYearDate("", fallback)
	if err != nil {
		t.Fatalf("empty value: %v", err)
	}
	if !got.Equal(fallback) {
		t.Fatalf("empty value should keep fallback, got %v", got)
	}

	got, err = parseYearDate("2027-03-01", fallback)
	if err != nil {
		t.Fatalf("valid value: %v", err)
	}
	if got.Year() != 2027 || got.Month() != time.March || got.Day() != 1 {
		t.Fatalf("got %v", got)
	}

	if _, err := parseYearDate("03/01/2027", fallback); err == nil {
		t.Fatal("expected error for wrong format")
	}
}
