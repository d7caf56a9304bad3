package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"backend/models"
)

func TestChatSend(t *testing.T) {
	db := newTestDB(t)
	diary := NewDiaryService(db)
	gw := &scriptedGateway{responses: []string{
		"Great job logging lunch! Try to add a protein source at dinner.",
	}}
	svc := NewChatService(db, gw, diary)
	user := newTestUser(t, db, "coach@example.com")

	reply, err := svc.Send(context.Background(), user, "how am I doing today?")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if reply.Role != "assistant" || !strings.Contains(reply.Content, "protein") {
		t.Errorf("reply: %+v", reply)
	}

	history, err := svc.History(user.ID, 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "assistant" {
		t.Errorf("history order: %s then %s", history[0].Role, history[1].Role)
	}
}

func TestChatSendGatewayDownKeepsUserMessage(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db, &scriptedGateway{responses: []string{""}}, NewDiaryService(db))
	user := newTestUser(t, db, "coach-down@example.com")

	_, err := svc.Send(context.Background(), user, "hello?")
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("want GatewayError, got %v", err)
	}

	var count int64
	db.Model(&models.ChatMessage{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("user message should persist, count = %d", count)
	}
}

func TestChatHistoryLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db, &scriptedGateway{}, NewDiaryService(db))
	user := newTestUser(t, db, "history@example.com")

	for i := 0; i < 30; i++ {
		msg := models.ChatMessage{UserID: user.ID, Role: "user", Content: "m"}
		if err := db.Create(&msg).Error; err != nil {
			t.Fatalf("seed message: %v", err)
		}
	}

	history, err := svc.History(user.ID, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 20 {
		t.Errorf("default limit should be 20, got %d", len(history))
	}
}
