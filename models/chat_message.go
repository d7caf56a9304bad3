package models

import "time"

// ChatMessage is one turn of a user's conversation with the nutrition coach.
type ChatMessage struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    UserID    uint      `gorm:"index" json:"-"`
    Role      string    `gorm:"size:16" json:"role"` // "user" | "assistant"
    Content   string    `gorm:"type:text" json:"content"`
    CreatedAt time.Time `json:"timestamp"`
}
