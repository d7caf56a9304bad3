package models

import "time"

// Alert types emitted by the app.
const (
    AlertUsageLimit   = "usage_limit"   // free analysis limit reached
    AlertGoalExceeded = "goal_exceeded" // daily calorie goal passed
    AlertSubscription = "subscription"  // subscription started/ended
)

type Alert struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    UserID    uint      `gorm:"index" json:"user_id"`
    Type      string    `gorm:"size:20" json:"type"`
    Message   string    `gorm:"type:text" json:"message"`
    CreatedAt time.Time `json:"created_at"`
}
