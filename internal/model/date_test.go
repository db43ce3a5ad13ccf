package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-03-01", NewDate(2025, time.March, 1), false},
		{"2025-03-01T15:04:05Z", NewDate(2025, time.March, 1), false},
		{"2025-03-01T23:59:59+07:00", NewDate(2025, time.March, 1), false},
		{"03/01/2025", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2025, time.March, 1))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-03-01"` {
		t.Errorf("marshal = %s", b)
	}

	// Zero date marshals as null for open-ended contract end dates.
	b, err = json.Marshal(Date{})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Errorf("zero date marshal = %s, want null", b)
	}

	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatal(err)
	}
	if !d.IsZero() {
		t.Error("null should unmarshal to the zero date")
	}
	if err := json.Unmarshal([]byte(`"2099-12-31"`), &d); err != nil {
		t.Fatal(err)
	}
	if !d.Equal(FarFuture) {
		t.Errorf("got %s, want the far-future sentinel", d)
	}
}

func TestDaysUntil(t *testing.T) {
	a := NewDate(2025, time.March, 1)
	if got := a.DaysUntil(NewDate(2025, time.March, 3)); got != 2 {
		t.Errorf("DaysUntil = %d, want 2", got)
	}
	if got := a.DaysUntil(a); got != 0 {
		t.Errorf("DaysUntil same day = %d, want 0", got)
	}
	if got := a.DaysUntil(NewDate(2025, time.February, 27)); got != -2 {
		t.Errorf("DaysUntil backwards = %d, want -2", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2025, time.April, 30},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestContractEffectiveEnd(t *testing.T) {
	open := MonthlyContract{StartDate: NewDate(2025, time.January, 1)}
	if !open.EffectiveEnd().Equal(FarFuture) {
		t.Errorf("open-ended contract end = %s, want sentinel", open.EffectiveEnd())
	}
	bounded := MonthlyContract{EndDate: NewDate(2025, time.June, 30)}
	if !bounded.EffectiveEnd().Equal(NewDate(2025, time.June, 30)) {
		t.Errorf("bounded contract end = %s", bounded.EffectiveEnd())
	}
}
