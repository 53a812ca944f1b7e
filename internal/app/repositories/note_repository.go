package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
	"github.com/selimk/coursehub/internal/pkg/logger"
)

var noteColumns = []string{
	"id", "title", "course_id", "category", "difficulty_level", "content",
	"tags", "is_featured", "display_order", "estimated_read_time",
	"is_active", "created_by", "created_at", "updated_at",
}

// NoteRepository handles course note database operations
type NoteRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanNote(row pgx.Row) (*models.CourseNote, error) {
	note := &models.CourseNote{}
	err := row.Scan(
		&note.ID, &note.Title, &note.CourseID, &note.Category, &note.DifficultyLevel,
		&note.Content, &note.Tags, &note.IsFeatured, &note.Order, &note.EstimatedReadTime,
		&note.IsActive, &note.CreatedBy, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return note, nil
}

// CreateNote creates a new course note and returns its ID
func (r *NoteRepository) CreateNote(ctx context.Context, note *models.CourseNote) (int64, error) {
	sql, args, err := r.sb.Insert("course_notes").
		Columns("title", "course_id", "category", "difficulty_level", "content",
			"tags", "is_featured", "display_order", "estimated_read_time", "is_active", "created_by").
		Values(note.Title, note.CourseID, note.Category, note.DifficultyLevel, note.Content,
			note.Tags, note.IsFeatured, note.Order, note.EstimatedReadTime, true, note.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create note SQL")
		return 0, fmt.Errorf("failed to build create note query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("courseID", note.CourseID).Msg("Error executing create note query")
		return 0, fmt.Errorf("error creating note: %w", err)
	}

	return id, nil
}

// GetNoteByID retrieves an active note by ID
func (r *NoteRepository) GetNoteByID(ctx context.Context, id int64) (*models.CourseNote, error) {
	sql, args, err := r.sb.Select(noteColumns...).
		From("course_notes").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get note by ID SQL")
		return nil, fmt.Errorf("failed to build get note query: %w", err)
	}

	note, err := scanNote(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Int64("noteID", id).Msg("Error scanning note row")
		return nil, fmt.Errorf("error getting note by ID: %w", err)
	}

	return note, nil
}

// ListNotes retrieves active notes matching the optional filters, ordered
// by display order then newest first. Returns the rows plus the total count.
func (r *NoteRepository) ListNotes(ctx context.Context, courseID *int64, category, difficulty *string, offset, limit int) ([]*models.CourseNote, int64, error) {
	base := r.sb.Select(noteColumns...).
		From("course_notes").
		Where(squirrel.Eq{"is_active": true})
	countQuery := r.sb.Select("COUNT(*)").
		From("course_notes").
		Where(squirrel.Eq{"is_active": true})

	if courseID != nil {
		base = base.Where(squirrel.Eq{"course_id": *courseID})
		countQuery = countQuery.Where(squirrel.Eq{"course_id": *courseID})
	}
	if category != nil {
		base = base.Where(squirrel.Eq{"category": *category})
		countQuery = countQuery.Where(squirrel.Eq{"category": *category})
	}
	if difficulty != nil {
		base = base.Where(squirrel.Eq{"difficulty_level": *difficulty})
		countQuery = countQuery.Where(squirrel.Eq{"difficulty_level": *difficulty})
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count notes query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting notes")
		return nil, 0, fmt.Errorf("error counting notes: %w", err)
	}

	sql, args, err := base.
		OrderBy("display_order ASC", "created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list notes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list notes query")
		return nil, 0, fmt.Errorf("error querying notes: %w", err)
	}
	defer rows.Close()

	notes := []*models.CourseNote{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning note row: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, total, nil
}

// ListFeaturedNotes retrieves active featured notes, optionally scoped to a
// course, ordered by display order
func (r *NoteRepository) ListFeaturedNotes(ctx context.Context, courseID *int64, limit int) ([]*models.CourseNote, error) {
	query := r.sb.Select(noteColumns...).
		From("course_notes").
		Where(squirrel.Eq{"is_active": true, "is_featured": true})
	if courseID != nil {
		query = query.Where(squirrel.Eq{"course_id": *courseID})
	}

	sql, args, err := query.
		OrderBy("display_order ASC", "created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build featured notes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing featured notes query")
		return nil, fmt.Errorf("error querying featured notes: %w", err)
	}
	defer rows.Close()

	notes := []*models.CourseNote{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning note row: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}

// UpdateNote updates a note, including its recomputed read time
func (r *NoteRepository) UpdateNote(ctx context.Context, note *models.CourseNote) error {
	sql, args, err := r.sb.Update("course_notes").
		Set("title", note.Title).
		Set("category", note.Category).
		Set("difficulty_level", note.DifficultyLevel).
		Set("content", note.Content).
		Set("tags", note.Tags).
		Set("is_featured", note.IsFeatured).
		Set("display_order", note.Order).
		Set("estimated_read_time", note.EstimatedReadTime).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": note.ID, "is_active": true}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update note SQL")
		return fmt.Errorf("failed to build update note query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("noteID", note.ID).Msg("Error executing update note query")
		return fmt.Errorf("error updating note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}

// DeleteNote deletes a note
func (r *NoteRepository) DeleteNote(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("course_notes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete note query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("noteID", id).Msg("Error executing delete note query")
		return fmt.Errorf("error deleting note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}
