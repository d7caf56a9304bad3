package services

import (
	"context"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

const chatHistoryLimit = 20

// CoachProfile is everything the coach prompt knows about the user.
type CoachProfile struct {
	FullName       string
	HeightCm       float64
	WeightKg       float64
	TargetWeightKg float64
	FitnessGoal    string

	CalorieGoal float64
	ProteinGoal float64
	CarbsGoal   float64
	FatGoal     float64

	TodayEntries []models.FoodEntry
}

// ChatService runs the AI nutrition coach: per-user persisted history,
// replies generated by the gateway with the user's targets and today's
// diary in the system prompt.
type ChatService struct {
	db      *gorm.DB
	gateway Completer
	diary   *DiaryService
}

func NewChatService(db *gorm.DB, gateway Completer, diary *DiaryService) *ChatService {
	return &ChatService{db: db, gateway: gateway, diary: diary}
}

func (s *ChatService) History(userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = chatHistoryLimit
	}
	var history []models.ChatMessage
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	// reverse into chronological order
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history, nil
}

// Send stores the user's message, asks the gateway for a coach reply,
// and stores that too. A gateway failure leaves the user message saved
// so the transcript stays consistent with what they typed.
func (s *ChatService) Send(ctx context.Context, user *models.User, content string) (*models.ChatMessage, error) {
	userMsg := models.ChatMessage{UserID: user.ID, Role: "user", Content: content}
	if err := s.db.Create(&userMsg).Error; err != nil {
		return nil, &PersistenceError{Err: err}
	}

	profile, err := s.buildProfile(user)
	if err != nil {
		return nil, err
	}

	history, err := s.History(user.ID, chatHistoryLimit)
	if err != nil {
		return nil, err
	}

	messages := []Message{TextMessage("system", coachSystemPrompt(*profile))}
	for _, m := range history {
		messages = append(messages, TextMessage(m.Role, m.Content))
	}

	reply, err := s.gateway.Complete(ctx, messages, 0.7, 500)
	if err != nil {
		return nil, err
	}

	assistantMsg := models.ChatMessage{UserID: user.ID, Role: "assistant", Content: reply}
	if err := s.db.Create(&assistantMsg).Error; err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return &assistantMsg, nil
}

func (s *ChatService) buildProfile(user *models.User) (*CoachProfile, error) {
	profile := &CoachProfile{
		FullName:       user.FullName,
		HeightCm:       user.HeightCm,
		WeightKg:       user.WeightKg,
		TargetWeightKg: user.TargetWeightKg,
		FitnessGoal:    user.FitnessGoal,
	}

	var goal models.DailyGoal
	if err := s.db.Where("user_id = ?", user.ID).First(&goal).Error; err == nil {
		profile.CalorieGoal = goal.Calories
		profile.ProteinGoal = goal.Protein
		profile.CarbsGoal = goal.Carbs
		profile.FatGoal = goal.Fat
	}

	entries, err := s.diary.ListByDate(user.ID, time.Now())
	if err != nil {
		return nil, err
	}
	profile.TodayEntries = entries
	return profile, nil
}
