package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
	"github.com/selimk/coursehub/internal/pkg/logger"
)

// MessageRepository handles broadcast message database operations
type MessageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanMessage(row pgx.Row) (*models.Message, error) {
	message := &models.Message{Sender: &models.User{}}
	err := row.Scan(
		&message.ID, &message.SenderID, &message.Subject, &message.Body,
		&message.SentAt, &message.IsRead,
		&message.Sender.ID, &message.Sender.Email, &message.Sender.Username,
		&message.Sender.FirstName, &message.Sender.LastName,
	)
	if err != nil {
		return nil, err
	}
	return message, nil
}

func (r *MessageRepository) messageSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"m.id", "m.sender_id", "m.subject", "m.body", "m.sent_at", "m.is_read",
		"u.id", "u.email", "u.username", "u.first_name", "u.last_name").
		From("messages m").
		Join("users u ON u.id = m.sender_id")
}

// CreateMessage inserts a broadcast message and returns its ID
func (r *MessageRepository) CreateMessage(ctx context.Context, message *models.Message) (int64, error) {
	sql, args, err := r.sb.Insert("messages").
		Columns("sender_id", "subject", "body").
		Values(message.SenderID, message.Subject, message.Body).
		Suffix("RETURNING id, sent_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create message SQL")
		return 0, fmt.Errorf("failed to build create message query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &message.SentAt); err != nil {
		logger.Error().Err(err).Int64("senderID", message.SenderID).Msg("Error executing create message query")
		return 0, fmt.Errorf("error creating message: %w", err)
	}

	return id, nil
}

// GetMessageByID retrieves a message with its sender
func (r *MessageRepository) GetMessageByID(ctx context.Context, id int64) (*models.Message, error) {
	sql, args, err := r.messageSelect().
		Where(squirrel.Eq{"m.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get message query: %w", err)
	}

	message, err := scanMessage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		logger.Error().Err(err).Int64("messageID", id).Msg("Error scanning message row")
		return nil, fmt.Errorf("error getting message by ID: %w", err)
	}

	return message, nil
}

// ListMessages retrieves messages with senders, newest first. Returns the
// rows plus the total count.
func (r *MessageRepository) ListMessages(ctx context.Context, offset, limit int) ([]*models.Message, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("messages").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count messages query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting messages")
		return nil, 0, fmt.Errorf("error counting messages: %w", err)
	}

	sql, args, err := r.messageSelect().
		OrderBy("m.sent_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list messages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list messages query")
		return nil, 0, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	messages := []*models.Message{}
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, total, nil
}

// MarkMessageRead flags a message as read
func (r *MessageRepository) MarkMessageRead(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("messages").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark message read query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("messageID", id).Msg("Error executing mark message read query")
		return fmt.Errorf("error marking message read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}

	return nil
}

// DeleteMessage removes a message
func (r *MessageRepository) DeleteMessage(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("messages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete message query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("messageID", id).Msg("Error executing delete message query")
		return fmt.Errorf("error deleting message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}

	return nil
}
