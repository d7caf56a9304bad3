package services

import "time"

// Free-tier allowances. A brand-new user gets a 24-hour trial window
// with 5 analyses, counted from their first use; after the window it's
// one free analysis per rolling 24 hours from the last use. A
// subscription bypasses all of it.
const (
	trialWindow       = 24 * time.Hour
	trialAllowance    = 5
	dailyFreeInterval = 24 * time.Hour
)

type GateState string

const (
	GateSubscribed        GateState = "subscribed"
	GateTrialWindow       GateState = "trial_window"
	GateFreeUseAvailable  GateState = "free_use_available"
	GateDailyLimitReached GateState = "daily_limit_reached"
)

// UsageState is the minimal gate input. All transitions are pure
// functions of (state, now); persistence lives in UsageService.
type UsageState struct {
	UsageCount     int
	FirstUsageTime *time.Time
	LastUsageTime  *time.Time
	Subscribed     bool
}

type UsageDecision struct {
	Allowed           bool
	State             GateState
	HoursUntilNextUse float64
}

// EvaluateUsage decides whether one more analysis is allowed right now.
func EvaluateUsage(state UsageState, now time.Time) UsageDecision {
	if state.Subscribed {
		return UsageDecision{Allowed: true, State: GateSubscribed}
	}
	if state.FirstUsageTime == nil {
		// never used before: the trial window starts on first use
		return UsageDecision{Allowed: true, State: GateFreeUseAvailable}
	}

	if now.Sub(*state.FirstUsageTime) < trialWindow {
		if state.UsageCount < trialAllowance {
			return UsageDecision{Allowed: true, State: GateTrialWindow}
		}
		// the next use needs the window to lapse AND the rolling daily
		// rule to clear, whichever comes later
		next := state.FirstUsageTime.Add(trialWindow)
		if state.LastUsageTime != nil {
			if daily := state.LastUsageTime.Add(dailyFreeInterval); daily.After(next) {
				next = daily
			}
		}
		return UsageDecision{
			Allowed:           false,
			State:             GateDailyLimitReached,
			HoursUntilNextUse: hoursUntil(next, now),
		}
	}

	if state.LastUsageTime == nil || now.Sub(*state.LastUsageTime) >= dailyFreeInterval {
		return UsageDecision{Allowed: true, State: GateFreeUseAvailable}
	}
	return UsageDecision{
		Allowed:           false,
		State:             GateDailyLimitReached,
		HoursUntilNextUse: hoursUntil(state.LastUsageTime.Add(dailyFreeInterval), now),
	}
}

// ApplyUsage records one successful analysis attempt.
func ApplyUsage(state UsageState, now time.Time) UsageState {
	if state.FirstUsageTime == nil {
		t := now
		state.FirstUsageTime = &t
	}
	t := now
	state.LastUsageTime = &t
	state.UsageCount++
	return state
}

// WithinTrialWindow reports whether now is inside the 24h window that
// started on first use.
func WithinTrialWindow(state UsageState, now time.Time) bool {
	return state.FirstUsageTime != nil && now.Sub(*state.FirstUsageTime) < trialWindow
}

func hoursUntil(t, now time.Time) float64 {
	h := t.Sub(now).Hours()
	if h < 0 {
		return 0
	}
	return h
}
