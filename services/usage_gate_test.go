package services

import (
	"math"
	"testing"
	"time"
)

func tp(t time.Time) *time.Time { return &t }

func TestEvaluateUsage(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		state     UsageState
		want      bool
		wantState GateState
		wantHours float64
	}{
		{
			name:      "subscribed bypasses everything",
			state:     UsageState{Subscribed: true, UsageCount: 999, FirstUsageTime: tp(now.Add(-time.Hour)), LastUsageTime: tp(now.Add(-time.Minute))},
			want:      true,
			wantState: GateSubscribed,
		},
		{
			name:      "never used",
			state:     UsageState{},
			want:      true,
			wantState: GateFreeUseAvailable,
		},
		{
			name:      "inside trial window under allowance",
			state:     UsageState{UsageCount: 4, FirstUsageTime: tp(now.Add(-2 * time.Hour)), LastUsageTime: tp(now.Add(-time.Minute))},
			want:      true,
			wantState: GateTrialWindow,
		},
		{
			name:      "inside trial window allowance spent",
			state:     UsageState{UsageCount: 5, FirstUsageTime: tp(now.Add(-2 * time.Hour)), LastUsageTime: tp(now.Add(-2 * time.Hour))},
			want:      false,
			wantState: GateDailyLimitReached,
			wantHours: 22,
		},
		{
			// the window lapses in 1h, but the rolling daily rule would
			// still deny then; the promised wait must cover both
			name:      "allowance spent, recent use extends the wait past the window",
			state:     UsageState{UsageCount: 5, FirstUsageTime: tp(now.Add(-23 * time.Hour)), LastUsageTime: tp(now.Add(-time.Hour))},
			want:      false,
			wantState: GateDailyLimitReached,
			wantHours: 23,
		},
		{
			name:      "after trial, last use older than a day",
			state:     UsageState{UsageCount: 8, FirstUsageTime: tp(now.Add(-72 * time.Hour)), LastUsageTime: tp(now.Add(-25 * time.Hour))},
			want:      true,
			wantState: GateFreeUseAvailable,
		},
		{
			name:      "after trial, used six hours ago",
			state:     UsageState{UsageCount: 8, FirstUsageTime: tp(now.Add(-72 * time.Hour)), LastUsageTime: tp(now.Add(-6 * time.Hour))},
			want:      false,
			wantState: GateDailyLimitReached,
			wantHours: 18,
		},
		{
			name:      "exactly at the daily boundary is allowed",
			state:     UsageState{UsageCount: 8, FirstUsageTime: tp(now.Add(-72 * time.Hour)), LastUsageTime: tp(now.Add(-24 * time.Hour))},
			want:      true,
			wantState: GateFreeUseAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateUsage(tt.state, now)
			if got.Allowed != tt.want {
				t.Fatalf("Allowed = %v, want %v", got.Allowed, tt.want)
			}
			if got.State != tt.wantState {
				t.Errorf("State = %q, want %q", got.State, tt.wantState)
			}
			if math.Abs(got.HoursUntilNextUse-tt.wantHours) > 1e-9 {
				t.Errorf("HoursUntilNextUse = %v, want %v", got.HoursUntilNextUse, tt.wantHours)
			}
		})
	}
}

func TestApplyUsage(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first use starts the trial window", func(t *testing.T) {
		next := ApplyUsage(UsageState{}, now)
		if next.UsageCount != 1 {
			t.Errorf("UsageCount = %d, want 1", next.UsageCount)
		}
		if next.FirstUsageTime == nil || !next.FirstUsageTime.Equal(now) {
			t.Errorf("FirstUsageTime = %v, want %v", next.FirstUsageTime, now)
		}
		if next.LastUsageTime == nil || !next.LastUsageTime.Equal(now) {
			t.Errorf("LastUsageTime = %v, want %v", next.LastUsageTime, now)
		}
	})

	t.Run("later uses keep the window anchor", func(t *testing.T) {
		first := now.Add(-3 * time.Hour)
		next := ApplyUsage(UsageState{UsageCount: 2, FirstUsageTime: &first, LastUsageTime: &first}, now)
		if !next.FirstUsageTime.Equal(first) {
			t.Errorf("FirstUsageTime moved to %v", next.FirstUsageTime)
		}
		if !next.LastUsageTime.Equal(now) {
			t.Errorf("LastUsageTime = %v, want %v", next.LastUsageTime, now)
		}
		if next.UsageCount != 3 {
			t.Errorf("UsageCount = %d, want 3", next.UsageCount)
		}
	})
}

// Five analyses fit in the trial window; the sixth must wait for the
// window to lapse, after which the rolling daily allowance takes over.
func TestGateTrialThenDaily(t *testing.T) {
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	state := UsageState{}

	now := start
	for i := 0; i < 5; i++ {
		d := EvaluateUsage(state, now)
		if !d.Allowed {
			t.Fatalf("use %d denied: %+v", i+1, d)
		}
		state = ApplyUsage(state, now)
		now = now.Add(30 * time.Minute)
	}

	if d := EvaluateUsage(state, now); d.Allowed {
		t.Fatal("sixth use inside the trial window should be denied")
	}

	// window lapses 24h after first use
	now = start.Add(24*time.Hour + time.Minute)
	d := EvaluateUsage(state, now)
	if !d.Allowed || d.State != GateFreeUseAvailable {
		t.Fatalf("post-window use should be allowed: %+v", d)
	}
	state = ApplyUsage(state, now)

	if d := EvaluateUsage(state, now.Add(time.Hour)); d.Allowed {
		t.Fatal("second post-window use within 24h should be denied")
	}
	if d := EvaluateUsage(state, now.Add(24*time.Hour)); !d.Allowed {
		t.Fatal("use a full day later should be allowed")
	}
}
