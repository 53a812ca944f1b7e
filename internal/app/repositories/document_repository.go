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
	"github.com/selimk/coursehub/internal/pkg/dberrors"
	"github.com/selimk/coursehub/internal/pkg/logger"
)

var documentColumns = []string{
	"id", "title", "course_id", "document_type", "storage_path",
	"file_size", "description", "uploaded_by", "is_active",
	"uploaded_at", "updated_at",
}

// DocumentRepository handles course document database operations
type DocumentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanDocument(row pgx.Row) (*models.CourseDocument, error) {
	doc := &models.CourseDocument{}
	err := row.Scan(
		&doc.ID, &doc.Title, &doc.CourseID, &doc.DocumentType, &doc.StoragePath,
		&doc.FileSize, &doc.Description, &doc.UploadedBy, &doc.IsActive,
		&doc.UploadedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// CreateDocumentTx inserts a document inside an existing transaction so the
// metadata write can be rolled back if the file write fails
func (r *DocumentRepository) CreateDocumentTx(ctx context.Context, tx pgx.Tx, doc *models.CourseDocument) (int64, error) {
	sql, args, err := r.sb.Insert("course_documents").
		Columns("title", "course_id", "document_type", "storage_path",
			"file_size", "description", "uploaded_by", "is_active").
		Values(doc.Title, doc.CourseID, doc.DocumentType, doc.StoragePath,
			doc.FileSize, doc.Description, doc.UploadedBy, true).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create document SQL")
		return 0, fmt.Errorf("failed to build create document query: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "course_documents_storage_path_key") {
			return 0, apperrors.ErrDuplicateDocument
		}
		logger.Error().Err(err).Str("storagePath", doc.StoragePath).Msg("Error executing create document query")
		return 0, fmt.Errorf("error creating document: %w", err)
	}

	return id, nil
}

// GetDocumentByID retrieves an active document by ID
func (r *DocumentRepository) GetDocumentByID(ctx context.Context, id int64) (*models.CourseDocument, error) {
	sql, args, err := r.sb.Select(documentColumns...).
		From("course_documents").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get document by ID SQL")
		return nil, fmt.Errorf("failed to build get document query: %w", err)
	}

	doc, err := scanDocument(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		logger.Error().Err(err).Int64("documentID", id).Msg("Error scanning document row")
		return nil, fmt.Errorf("error getting document by ID: %w", err)
	}

	return doc, nil
}

// StoragePathExists reports whether an active document already occupies the
// given storage path
func (r *DocumentRepository) StoragePathExists(ctx context.Context, storagePath string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("course_documents").
		Where(squirrel.Eq{"storage_path": storagePath}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build storage path exists query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.Error().Err(err).Str("storagePath", storagePath).Msg("Error checking storage path existence")
		return false, fmt.Errorf("error checking storage path existence: %w", err)
	}
	return true, nil
}

// ListDocuments retrieves active documents of a course, optionally filtered
// by document type, newest first. Returns the rows plus the total count.
func (r *DocumentRepository) ListDocuments(ctx context.Context, courseID int64, documentType *string, offset, limit int) ([]*models.CourseDocument, int64, error) {
	base := r.sb.Select(documentColumns...).
		From("course_documents").
		Where(squirrel.Eq{"course_id": courseID, "is_active": true})
	countQuery := r.sb.Select("COUNT(*)").
		From("course_documents").
		Where(squirrel.Eq{"course_id": courseID, "is_active": true})

	if documentType != nil {
		base = base.Where(squirrel.Eq{"document_type": *documentType})
		countQuery = countQuery.Where(squirrel.Eq{"document_type": *documentType})
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count documents query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting documents")
		return nil, 0, fmt.Errorf("error counting documents: %w", err)
	}

	sql, args, err := base.
		OrderBy("uploaded_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list documents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list documents query")
		return nil, 0, fmt.Errorf("error querying documents: %w", err)
	}
	defer rows.Close()

	docs := []*models.CourseDocument{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning document row: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, total, nil
}

// UpdateDocument updates the client-editable fields of a document. Storage
// path, type and size are derived values and never updated here.
func (r *DocumentRepository) UpdateDocument(ctx context.Context, doc *models.CourseDocument) error {
	sql, args, err := r.sb.Update("course_documents").
		Set("title", doc.Title).
		Set("description", doc.Description).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": doc.ID, "is_active": true}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update document SQL")
		return fmt.Errorf("failed to build update document query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("documentID", doc.ID).Msg("Error executing update document query")
		return fmt.Errorf("error updating document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}

// DeleteDocument removes a document row. Called after the stored file has
// been handled by the service layer.
func (r *DocumentRepository) DeleteDocument(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("course_documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete document query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("documentID", id).Msg("Error executing delete document query")
		return fmt.Errorf("error deleting document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}
