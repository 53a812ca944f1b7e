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

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateDepartment creates a new department and returns its ID
func (r *DepartmentRepository) CreateDepartment(ctx context.Context, department *models.Department) (int64, error) {
	sql, args, err := r.sb.Insert("departments").
		Columns("name", "code", "description").
		Values(department.Name, department.Code, department.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create department SQL")
		return 0, fmt.Errorf("failed to build create department query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrDepartmentAlreadyExists
		}
		logger.Error().Err(err).Str("code", department.Code).Msg("Error executing create department query")
		return 0, fmt.Errorf("error creating department: %w", err)
	}

	return id, nil
}

// GetDepartmentByID retrieves a department by ID
func (r *DepartmentRepository) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.sb.Select("id", "name", "code", "description", "created_at", "updated_at").
		From("departments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get department by ID SQL")
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	department := &models.Department{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&department.ID, &department.Name, &department.Code,
		&department.Description, &department.CreatedAt, &department.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error scanning department row")
		return nil, fmt.Errorf("error getting department by ID: %w", err)
	}

	return department, nil
}

// GetDepartmentByCode retrieves a department by its unique code
func (r *DepartmentRepository) GetDepartmentByCode(ctx context.Context, code string) (*models.Department, error) {
	sql, args, err := r.sb.Select("id", "name", "code", "description", "created_at", "updated_at").
		From("departments").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department by code query: %w", err)
	}

	department := &models.Department{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&department.ID, &department.Name, &department.Code,
		&department.Description, &department.CreatedAt, &department.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Str("code", code).Msg("Error scanning department row")
		return nil, fmt.Errorf("error getting department by code: %w", err)
	}

	return department, nil
}

// ListDepartments retrieves departments matching the optional search term,
// ordered and paginated. Returns the rows plus the total match count.
func (r *DepartmentRepository) ListDepartments(ctx context.Context, search, ordering string, offset, limit int) ([]*models.Department, int64, error) {
	base := r.sb.Select("id", "name", "code", "description", "created_at", "updated_at").
		From("departments")
	countQuery := r.sb.Select("COUNT(*)").From("departments")

	if search != "" {
		like := "%" + search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"name": like},
			squirrel.ILike{"code": like},
		}
		base = base.Where(cond)
		countQuery = countQuery.Where(cond)
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count departments query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting departments")
		return nil, 0, fmt.Errorf("error counting departments: %w", err)
	}

	sql, args, err := base.
		OrderBy(ordering).
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list departments query")
		return nil, 0, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		department := &models.Department{}
		if err := rows.Scan(
			&department.ID, &department.Name, &department.Code,
			&department.Description, &department.CreatedAt, &department.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, total, nil
}

// CountCourses returns the number of courses attached to a department
func (r *DepartmentRepository) CountCourses(ctx context.Context, departmentID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("courses").
		Where(squirrel.Eq{"department_id": departmentID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("departmentID", departmentID).Msg("Error counting department courses")
		return 0, fmt.Errorf("error counting department courses: %w", err)
	}

	return count, nil
}

// UpdateDepartment updates a department
func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Update("departments").
		Set("name", department.Name).
		Set("code", department.Code).
		Set("description", department.Description).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": department.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update department SQL")
		return fmt.Errorf("failed to build update department query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		logger.Error().Err(err).Int64("departmentID", department.ID).Msg("Error executing update department query")
		return fmt.Errorf("error updating department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// DeleteDepartment deletes a department. Courses under it are removed by
// the ON DELETE CASCADE constraint.
func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete department query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error executing delete department query")
		return fmt.Errorf("error deleting department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
