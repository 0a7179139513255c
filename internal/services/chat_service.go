package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "minify/internal/errors"
	"minify/internal/models"
)

// chatService persists the assistant conversation of each user.
type chatService struct {
	db *gorm.DB
}

// NewChatService creates a new ChatServicer.
func NewChatService(db *gorm.DB) ChatServicer {
	return &chatService{db: db}
}

// ListChatMessages returns the user's conversation, oldest first.
func (s *chatService) ListChatMessages(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return messages, nil
}

// AddChatMessages stores messages in order within one transaction and
// returns them with ids assigned. Either all are stored or none.
func (s *chatService) AddChatMessages(ctx context.Context, userID string, messages []models.ChatMessage) ([]models.ChatMessage, error) {
	if len(messages) == 0 {
		return nil, nil
	}
	stored := make([]models.ChatMessage, len(messages))
	for i, m := range messages {
		if !m.Role.Valid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown chat role "+string(m.Role))
		}
		m.ID = ""
		m.UserID = userID
		stored[i] = m
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range stored {
			if err := tx.Create(&stored[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stored, nil
}
