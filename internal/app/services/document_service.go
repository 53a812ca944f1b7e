package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/app/models/dto"
	"github.com/selimk/coursehub/internal/app/repositories"
	"github.com/selimk/coursehub/internal/db"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
	"github.com/selimk/coursehub/internal/pkg/filestorage"
	"github.com/selimk/coursehub/internal/pkg/helpers"
	"github.com/selimk/coursehub/internal/pkg/logger"
)

// DocumentService handles course document classification, storage and listing
type DocumentService struct {
	pool         *pgxpool.Pool
	documentRepo *repositories.DocumentRepository
	courseRepo   *repositories.CourseRepository
	userRepo     *repositories.UserRepository
	storage      *filestorage.LocalStorage
}

// NewDocumentService creates a new document service instance
func NewDocumentService(
	pool *pgxpool.Pool,
	documentRepo *repositories.DocumentRepository,
	courseRepo *repositories.CourseRepository,
	userRepo *repositories.UserRepository,
	storage *filestorage.LocalStorage,
) *DocumentService {
	return &DocumentService{
		pool:         pool,
		documentRepo: documentRepo,
		courseRepo:   courseRepo,
		userRepo:     userRepo,
		storage:      storage,
	}
}

// UploadDocument classifies an uploaded file, stores its bytes and records
// its metadata. The file write and the metadata insert share one
// transaction: any failure after the file landed removes it again, and a
// failed write commits no row.
func (s *DocumentService) UploadDocument(ctx context.Context, uploaderID int64, req *dto.CreateDocumentRequest, fileHeader *multipart.FileHeader) (*models.CourseDocument, error) {
	ext := NormalizeExtension(fileHeader.Filename)
	docType, err := ClassifyExtension(ext)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	storagePath := BuildStoragePath(course.Department.Code, course.CourseCode, req.Title, ext)

	// Cheap pre-check; the unique index is the real guarantee
	exists, err := s.documentRepo.StoragePathExists(ctx, storagePath)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateDocument
	}

	doc := &models.CourseDocument{
		Title:        req.Title,
		CourseID:     course.ID,
		DocumentType: docType,
		StoragePath:  storagePath,
		Description:  req.Description,
		UploadedBy:   &uploaderID,
		IsActive:     true,
	}

	var fileSaved bool
	err = db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		src, err := fileHeader.Open()
		if err != nil {
			return fmt.Errorf("failed to open uploaded file: %w", err)
		}
		defer src.Close()

		written, err := s.storage.Save(storagePath, src)
		if err != nil {
			// A racing upload that landed the file first owns the path
			if errors.Is(err, filestorage.ErrFileExists) {
				return apperrors.ErrDuplicateDocument
			}
			return err
		}
		fileSaved = true
		doc.FileSize = written

		id, err := s.documentRepo.CreateDocumentTx(ctx, tx, doc)
		if err != nil {
			return err
		}
		doc.ID = id
		return nil
	})
	if err != nil {
		// Compensation covers insert and commit failures alike. The racing
		// loser never saved, so the winner's file is never touched.
		if fileSaved {
			if rmErr := s.storage.Remove(storagePath); rmErr != nil {
				logger.Error().Err(rmErr).Str("storagePath", storagePath).
					Msg("Failed to remove file after transaction failure")
			}
		}
		return nil, err
	}

	logger.Info().Int64("documentID", doc.ID).Str("storagePath", storagePath).
		Str("documentType", string(docType)).Msg("Document uploaded")

	return s.documentRepo.GetDocumentByID(ctx, doc.ID)
}

// GetDocument retrieves a document by ID
func (s *DocumentService) GetDocument(ctx context.Context, id int64) (*models.CourseDocument, error) {
	return s.documentRepo.GetDocumentByID(ctx, id)
}

// ListDocuments retrieves documents of a course, optionally filtered by
// type. The course scope is mandatory.
func (s *DocumentService) ListDocuments(ctx context.Context, params *dto.DocumentListParams) ([]*models.CourseDocument, int64, error) {
	if params.CourseID <= 0 {
		return nil, 0, apperrors.NewMissingParameterError("course")
	}

	if _, err := s.courseRepo.GetCourseByID(ctx, params.CourseID); err != nil {
		return nil, 0, err
	}

	if params.DocumentType != nil {
		switch models.DocumentType(*params.DocumentType) {
		case models.DocumentTypePDF, models.DocumentTypeDoc, models.DocumentTypeExcel,
			models.DocumentTypePPT, models.DocumentTypeImage, models.DocumentTypeOther:
		default:
			return nil, 0, apperrors.NewBadRequestError("unknown document type: " + *params.DocumentType)
		}
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)
	return s.documentRepo.ListDocuments(ctx, params.CourseID, params.DocumentType, offset, limit)
}

// UpdateDocument updates a document's editable metadata. Only the uploader
// or staff may modify it.
func (s *DocumentService) UpdateDocument(ctx context.Context, actorID int64, isStaff bool, id int64, title string, description *string) (*models.CourseDocument, error) {
	doc, err := s.documentRepo.GetDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isStaff && (doc.UploadedBy == nil || *doc.UploadedBy != actorID) {
		return nil, apperrors.ErrPermissionDenied
	}

	doc.Title = title
	doc.Description = description
	if err := s.documentRepo.UpdateDocument(ctx, doc); err != nil {
		return nil, err
	}

	return s.documentRepo.GetDocumentByID(ctx, id)
}

// DeleteDocument removes a document's metadata and stored file. Only the
// uploader or staff may delete it.
func (s *DocumentService) DeleteDocument(ctx context.Context, actorID int64, isStaff bool, id int64) error {
	doc, err := s.documentRepo.GetDocumentByID(ctx, id)
	if err != nil {
		return err
	}

	if !isStaff && (doc.UploadedBy == nil || *doc.UploadedBy != actorID) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.documentRepo.DeleteDocument(ctx, id); err != nil {
		return err
	}

	if err := s.storage.Remove(doc.StoragePath); err != nil {
		logger.Warn().Err(err).Str("storagePath", doc.StoragePath).Msg("Failed to remove stored file")
	}

	logger.Info().Int64("documentID", id).Msg("Document deleted")
	return nil
}

// FileURL returns the serving URL of a stored document
func (s *DocumentService) FileURL(doc *models.CourseDocument) string {
	return s.storage.URL(doc.StoragePath)
}

// UploaderSummary loads the uploader of a document if it still exists
func (s *DocumentService) UploaderSummary(ctx context.Context, doc *models.CourseDocument) (*models.User, error) {
	if doc.UploadedBy == nil {
		return nil, nil
	}
	user, err := s.userRepo.GetUserByID(ctx, *doc.UploadedBy)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
