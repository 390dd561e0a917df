package payroll

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduledMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "day shift", start: "09:00", end: "17:00", want: 480},
		{name: "with seconds", start: "09:00:00", end: "17:30:00", want: 510},
		{name: "overnight shift", start: "22:00", end: "02:00", want: 240},
		{name: "end equals start spans a full day", start: "08:00", end: "08:00", want: 1440},
		{name: "ends at midnight", start: "16:00", end: "00:00", want: 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScheduledMinutes(mustDate("2024-01-01"), tt.start, tt.end, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduledMinutes_DSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Clocks jump from 02:00 to 03:00 on this date.
	got, err := ScheduledMinutes(mustDate("2024-03-10"), "01:00", "05:00", loc)
	require.NoError(t, err)
	assert.Equal(t, 180, got)
}

func TestScheduledMinutes_InvalidTime(t *testing.T) {
	for _, value := range []string{"", "25:00", "9am", "12:60"} {
		t.Run(value, func(t *testing.T) {
			_, err := ScheduledMinutes(mustDate("2024-01-01"), value, "17:00", time.UTC)
			assert.ErrorIs(t, err, payroll.ErrInvalidTimeOfDay)
		})
	}
}

func TestElapsedMinutes(t *testing.T) {
	base := mustInstant("2024-01-01T09:00:00Z")

	assert.Equal(t, 90, ElapsedMinutes(base, base.Add(90*time.Minute+59*time.Second)))
	assert.Equal(t, 0, ElapsedMinutes(base, base))
	assert.Equal(t, -30, ElapsedMinutes(base, base.Add(-30*time.Minute)))
}

func TestWeeksInPeriod(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  int
	}{
		{start: "2024-01-01", end: "2024-01-01", want: 1},
		{start: "2024-01-01", end: "2024-01-07", want: 1},
		{start: "2024-01-01", end: "2024-01-08", want: 1},
		{start: "2024-01-01", end: "2024-01-09", want: 2},
		{start: "2024-01-01", end: "2024-01-31", want: 5},
		{start: "2024-01-10", end: "2024-01-01", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.start+"_"+tt.end, func(t *testing.T) {
			assert.Equal(t, tt.want, WeeksInPeriod(mustDate(tt.start), mustDate(tt.end)))
		})
	}
}

func TestClassifyShift(t *testing.T) {
	tests := []struct {
		name            string
		requiresCheckIn bool
		attended        bool
		actualHours     float64
		want            ShiftOutcome
	}{
		{name: "monitored no-show", requiresCheckIn: true, attended: false, want: OutcomeMissed},
		{name: "monitored attended with hours", requiresCheckIn: true, attended: true, actualHours: 8, want: OutcomeWorked},
		{name: "monitored still clocked in", requiresCheckIn: true, attended: true, want: OutcomePending},
		{name: "unmonitored no attendance", requiresCheckIn: false, attended: false, want: OutcomeWorked},
		{name: "unmonitored attended", requiresCheckIn: false, attended: true, actualHours: 4, want: OutcomeWorked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyShift(tt.requiresCheckIn, tt.attended, tt.actualHours)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.String())
		})
	}
}
