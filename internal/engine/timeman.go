package engine

import "time"

// TimeManager tracks the wall-clock budget for one move decision. The budget
// is a soft ceiling: it is consulted only between completed iterative
// deepening levels, never mid-tree, so one call may overrun by the cost of
// its last depth level.
type TimeManager struct {
	start  time.Time
	budget time.Duration
}

// NewTimeManager starts the clock for a budget. A zero budget means no limit.
func NewTimeManager(budget time.Duration) *TimeManager {
	return &TimeManager{start: time.Now(), budget: budget}
}

// Elapsed returns the time since the clock started.
func (tm *TimeManager) Elapsed() time.Duration {
	return time.Since(tm.start)
}

// Exceeded returns true once the budget has been spent.
func (tm *TimeManager) Exceeded() bool {
	return tm.budget > 0 && tm.Elapsed() >= tm.budget
}
