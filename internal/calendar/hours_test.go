package calendar

import (
	"testing"
	"time"
)

func TestDefaultHours_OpeningBeforeClosing(t *testing.T) {
	hours := DefaultHours()

	for _, dayType := range []DayType{DayTypeWorkday, DayTypeHoliday} {
		if hours.OpeningTime(dayType) >= hours.ClosingTime(dayType) {
			t.Errorf("%v: opening %v is not before closing %v",
				dayType, hours.OpeningTime(dayType), hours.ClosingTime(dayType))
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Clock
		wantErr bool
	}{
		{"Full clock", "06:00:00", NewClock(6, 0, 0), false},
		{"Without seconds", "18:30", NewClock(18, 30, 0), false},
		{"Last second", "23:59:59", NewClock(23, 59, 59), false},
		{"Out of range", "25:00", 0, true},
		{"Garbage", "six", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClock(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClock_OnAndString(t *testing.T) {
	date := time.Date(2021, 3, 6, 19, 20, 33, 500, time.UTC)
	clock := NewClock(18, 0, 0)

	got := clock.On(date)
	want := time.Date(2021, 3, 6, 18, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("On() = %v, want %v", got, want)
	}

	if s := ClockOf(date).String(); s != "19:20:33" {
		t.Errorf("ClockOf().String() = %q, want 19:20:33", s)
	}
	if ClockOf(date) <= NewClock(19, 20, 33) {
		t.Errorf("ClockOf() dropped sub-second part")
	}
}

func TestWindow_Duration(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		want   time.Duration
	}{
		{"Workday", Window{NewClock(6, 0, 0), NewClock(20, 0, 0)}, 14 * time.Hour},
		{"Holiday", Window{NewClock(7, 0, 0), NewClock(18, 0, 0)}, 11 * time.Hour},
		{"Night shift crosses midnight", Window{NewClock(22, 0, 0), NewClock(6, 0, 0)}, 8 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindow_CrossesMidnight(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		want   bool
	}{
		{"Day window", Window{NewClock(6, 0, 0), NewClock(20, 0, 0)}, false},
		{"Night shift", Window{NewClock(22, 0, 0), NewClock(6, 0, 0)}, true},
		{"Round the clock", Window{NewClock(8, 0, 0), NewClock(8, 0, 0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.CrossesMidnight(); got != tt.want {
				t.Errorf("CrossesMidnight(%v) = %v, want %v", tt.window, got, tt.want)
			}
		})
	}
}
