package models

import (
    "time"

    "gorm.io/gorm"
)

// UsageRecord tracks free-tier analysis usage and subscription status
// for one user. Rows are never hard-deleted; cancellation flips
// Subscribed back to false but keeps the usage history.
type UsageRecord struct {
    gorm.Model
    UserID         uint       `gorm:"uniqueIndex;not null"`
    UsageCount     int        `gorm:"not null;default:0"`
    FirstUsageTime *time.Time
    LastUsageTime  *time.Time

    Subscribed           bool
    SubscriptionEnd      *time.Time
    StripeCustomerID     string `gorm:"size:64"`
    StripeSubscriptionID string `gorm:"size:64"`
}
