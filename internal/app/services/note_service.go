package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/app/models/dto"
	"github.com/selimk/coursehub/internal/app/repositories"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
	"github.com/selimk/coursehub/internal/pkg/helpers"
	"github.com/selimk/coursehub/internal/pkg/logger"
)

// wordsPerMinute is the reading speed used to estimate note read time.
const wordsPerMinute = 200

// featuredNotesLimit caps the featured listing.
const featuredNotesLimit = 20

// EstimateReadTime derives the read time in minutes from note content,
// never less than one minute.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// NoteService handles course note operations
type NoteService struct {
	noteRepo   *repositories.NoteRepository
	courseRepo *repositories.CourseRepository
	userRepo   *repositories.UserRepository
}

// NewNoteService creates a new note service instance
func NewNoteService(noteRepo *repositories.NoteRepository, courseRepo *repositories.CourseRepository, userRepo *repositories.UserRepository) *NoteService {
	return &NoteService{
		noteRepo:   noteRepo,
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}

// CreateNote creates a note under an existing course. Read time defaults to
// the content-derived estimate when the request does not supply one.
func (s *NoteService) CreateNote(ctx context.Context, creatorID int64, req *dto.CreateNoteRequest) (*models.CourseNote, error) {
	if _, err := s.courseRepo.GetCourseByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	readTime := EstimateReadTime(req.Content)
	if req.EstimatedReadTime != nil && *req.EstimatedReadTime > 0 {
		readTime = *req.EstimatedReadTime
	}

	note := &models.CourseNote{
		Title:             strings.TrimSpace(req.Title),
		CourseID:          req.CourseID,
		Category:          noteCategoryOrDefault(req.Category),
		DifficultyLevel:   difficultyOrDefault(req.DifficultyLevel),
		Content:           req.Content,
		Tags:              strings.TrimSpace(req.Tags),
		IsFeatured:        req.IsFeatured,
		Order:             req.Order,
		EstimatedReadTime: readTime,
		IsActive:          true,
		CreatedBy:         &creatorID,
	}

	id, err := s.noteRepo.CreateNote(ctx, note)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("noteID", id).Int64("courseID", req.CourseID).Msg("Note created")
	return s.noteRepo.GetNoteByID(ctx, id)
}

func noteCategoryOrDefault(category string) models.NoteCategory {
	if category == "" {
		return models.NoteCategoryLecture
	}
	return models.NoteCategory(category)
}

func difficultyOrDefault(level string) models.DifficultyLevel {
	if level == "" {
		return models.DifficultyBeginner
	}
	return models.DifficultyLevel(level)
}

// GetNote retrieves a note by ID
func (s *NoteService) GetNote(ctx context.Context, id int64) (*models.CourseNote, error) {
	return s.noteRepo.GetNoteByID(ctx, id)
}

// ListNotes retrieves notes with filters and pagination
func (s *NoteService) ListNotes(ctx context.Context, params *dto.NoteListParams) ([]*models.CourseNote, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)
	return s.noteRepo.ListNotes(ctx, params.CourseID, params.Category, params.Difficulty, offset, limit)
}

// ListNotesByCourse retrieves the notes of a single course. The course scope
// is mandatory.
func (s *NoteService) ListNotesByCourse(ctx context.Context, courseID int64, page, size int) ([]*models.CourseNote, int64, error) {
	if courseID <= 0 {
		return nil, 0, apperrors.NewMissingParameterError("course_id")
	}

	if _, err := s.courseRepo.GetCourseByID(ctx, courseID); err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.noteRepo.ListNotes(ctx, &courseID, nil, nil, offset, limit)
}

// ListFeaturedNotes retrieves featured notes across courses
func (s *NoteService) ListFeaturedNotes(ctx context.Context, courseID *int64) ([]*models.CourseNote, error) {
	return s.noteRepo.ListFeaturedNotes(ctx, courseID, featuredNotesLimit)
}

// UpdateNote updates a note. The read time is recomputed from the new
// content so it never drifts from what readers actually see. Only the
// creator or staff may modify it.
func (s *NoteService) UpdateNote(ctx context.Context, actorID int64, isStaff bool, id int64, req *dto.UpdateNoteRequest) (*models.CourseNote, error) {
	note, err := s.noteRepo.GetNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isStaff && (note.CreatedBy == nil || *note.CreatedBy != actorID) {
		return nil, apperrors.ErrPermissionDenied
	}

	note.Title = strings.TrimSpace(req.Title)
	note.Category = noteCategoryOrDefault(req.Category)
	note.DifficultyLevel = difficultyOrDefault(req.DifficultyLevel)
	note.Content = req.Content
	note.Tags = strings.TrimSpace(req.Tags)
	note.IsFeatured = req.IsFeatured
	note.Order = req.Order
	note.EstimatedReadTime = EstimateReadTime(req.Content)

	if err := s.noteRepo.UpdateNote(ctx, note); err != nil {
		return nil, err
	}

	return s.noteRepo.GetNoteByID(ctx, id)
}

// CreatorSummary loads the creator of a note if the account still exists
func (s *NoteService) CreatorSummary(ctx context.Context, note *models.CourseNote) (*models.User, error) {
	if note.CreatedBy == nil {
		return nil, nil
	}
	user, err := s.userRepo.GetUserByID(ctx, *note.CreatedBy)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// DeleteNote deletes a note. Only the creator or staff may delete it.
func (s *NoteService) DeleteNote(ctx context.Context, actorID int64, isStaff bool, id int64) error {
	note, err := s.noteRepo.GetNoteByID(ctx, id)
	if err != nil {
		return err
	}

	if !isStaff && (note.CreatedBy == nil || *note.CreatedBy != actorID) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.noteRepo.DeleteNote(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("noteID", id).Msg("Note deleted")
	return nil
}
