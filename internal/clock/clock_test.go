package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestRealClockNow(t *testing.T) {
	if (RealClock{}).Now().IsZero() {
		t.Fatalf("expected non-zero time")
	}
}

func TestSystem_LocalizesWallClock(t *testing.T) {
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	clk := &fakeClock{now: start}
	p := System{Clock: clk}

	got, err := p.Now("America/New_York")
	require.NoError(t, err)
	require.True(t, got.Equal(start))
	require.Equal(t, "America/New_York", got.Location().String())
	require.Equal(t, 8, got.Hour())

	clk.Advance(90 * time.Minute)
	got, err = p.Now("UTC")
	require.NoError(t, err)
	require.True(t, got.Equal(start.Add(90*time.Minute)))
	require.Equal(t, "UTC", got.Location().String())
}

func TestSystem_DefaultsToRealClock(t *testing.T) {
	before := time.Now()
	got, err := System{}.Now("Europe/Helsinki")
	require.NoError(t, err)
	require.False(t, got.Before(before.Add(-time.Second)))
	require.Equal(t, "Europe/Helsinki", got.Location().String())
}

func TestProviders_InvalidTimezone(t *testing.T) {
	providers := map[string]Provider{
		"system": System{Clock: &fakeClock{now: time.Unix(0, 0)}},
		"fixed":  Fixed{At: time.Unix(0, 0)},
	}
	for name, p := range providers {
		t.Run(name, func(t *testing.T) {
			_, err := p.Now("Not/AZone")
			if !errors.Is(err, ErrInvalidTimezone) {
				t.Fatalf("want ErrInvalidTimezone, got %v", err)
			}
			require.Contains(t, err.Error(), `"Not/AZone"`)
		})
	}
}

func TestFixed_SameInstantAcrossZones(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := Fixed{At: at}
	for _, tz := range []string{"UTC", "Asia/Tokyo", "America/Los_Angeles", ""} {
		got, err := p.Now(tz)
		require.NoError(t, err, tz)
		require.True(t, got.Equal(at), tz)
	}
	tokyo, err := p.Now("Asia/Tokyo")
	require.NoError(t, err)
	require.Equal(t, 9, tokyo.Hour())
}

func TestLocation_NamesPassedThroughUnchanged(t *testing.T) {
	for _, tz := range []string{"   ", "  America/New_York  ", "\tUTC"} {
		_, err := Location(tz)
		if !errors.Is(err, ErrInvalidTimezone) {
			t.Fatalf("Location(%q): want ErrInvalidTimezone, got %v", tz, err)
		}
		_, err = System{Clock: &fakeClock{now: time.Unix(0, 0)}}.Now(tz)
		if !errors.Is(err, ErrInvalidTimezone) {
			t.Fatalf("System.Now(%q): want ErrInvalidTimezone, got %v", tz, err)
		}
	}
}

func TestLocation_EmptyIsUTC(t *testing.T) {
	loc, err := Location("")
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)
}

func TestParseInstant(t *testing.T) {
	want := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		in string
	}{
		{"2024-03-10T12:00:00Z"},
		{"2024-03-10T08:00:00-04:00"},
		{"2024-03-10 12:00:00"},
		{"1710072000"},
	}
	for _, tc := range cases {
		got, err := ParseInstant(tc.in)
		if err != nil {
			t.Fatalf("ParseInstant(%q): %v", tc.in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseInstant(%q) = %v; want %v", tc.in, got, want)
		}
	}
}

func TestParseInstant_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "not a date"} {
		if _, err := ParseInstant(in); err == nil {
			t.Fatalf("ParseInstant(%q): expected error", in)
		}
	}
}
