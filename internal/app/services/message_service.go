package services

import (
	"context"
	"strings"

	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/app/models/dto"
	"github.com/selimk/coursehub/internal/app/repositories"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
	"github.com/selimk/coursehub/internal/pkg/helpers"
	"github.com/selimk/coursehub/internal/pkg/logger"
)

// MessageService handles broadcast messages
type MessageService struct {
	messageRepo *repositories.MessageRepository
}

// NewMessageService creates a new message service instance
func NewMessageService(messageRepo *repositories.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// SendMessage records a broadcast message from the identity
func (s *MessageService) SendMessage(ctx context.Context, senderID int64, req *dto.SendMessageRequest) (*models.Message, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return nil, apperrors.NewMissingParameterError("subject")
	}

	message := &models.Message{
		SenderID: senderID,
		Subject:  subject,
		Body:     req.Body,
	}

	id, err := s.messageRepo.CreateMessage(ctx, message)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("messageID", id).Int64("senderID", senderID).Msg("Message sent")
	return s.messageRepo.GetMessageByID(ctx, id)
}

// ListMessages retrieves all broadcast messages, newest first
func (s *MessageService) ListMessages(ctx context.Context, page, size int) ([]*models.Message, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.messageRepo.ListMessages(ctx, offset, limit)
}

// GetMessage retrieves a single message
func (s *MessageService) GetMessage(ctx context.Context, id int64) (*models.Message, error) {
	return s.messageRepo.GetMessageByID(ctx, id)
}

// MarkRead flags a message as read
func (s *MessageService) MarkRead(ctx context.Context, id int64) error {
	return s.messageRepo.MarkMessageRead(ctx, id)
}

// DeleteMessage removes a broadcast message. Only the sender or staff may
// delete it.
func (s *MessageService) DeleteMessage(ctx context.Context, actorID int64, isStaff bool, id int64) error {
	message, err := s.messageRepo.GetMessageByID(ctx, id)
	if err != nil {
		return err
	}

	if !isStaff && message.SenderID != actorID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.messageRepo.DeleteMessage(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("messageID", id).Msg("Message deleted")
	return nil
}
