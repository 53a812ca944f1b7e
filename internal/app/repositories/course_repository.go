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

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourseWithDepartment(row pgx.Row) (*models.Course, error) {
	course := &models.Course{Department: &models.Department{}}
	err := row.Scan(
		&course.ID, &course.Title, &course.CourseCode, &course.DepartmentID,
		&course.Description, &course.IconName, &course.ColorCode,
		&course.CreatedAt, &course.UpdatedAt,
		&course.Department.ID, &course.Department.Name, &course.Department.Code,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// CreateCourse creates a new course and returns its ID
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "course_code", "department_id", "description", "icon_name", "color_code").
		Values(course.Title, course.CourseCode, course.DepartmentID,
			course.Description, course.IconName, course.ColorCode).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_course_code_key") {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Str("courseCode", course.CourseCode).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetCourseByID retrieves a course with its department by ID
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(
		"c.id", "c.title", "c.course_code", "c.department_id",
		"c.description", "c.icon_name", "c.color_code",
		"c.created_at", "c.updated_at",
		"d.id", "d.name", "d.code").
		From("courses c").
		Join("departments d ON d.id = c.department_id").
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourseWithDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetCourseByCode retrieves a course with its department by course code
func (r *CourseRepository) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	sql, args, err := r.sb.Select(
		"c.id", "c.title", "c.course_code", "c.department_id",
		"c.description", "c.icon_name", "c.color_code",
		"c.created_at", "c.updated_at",
		"d.id", "d.name", "d.code").
		From("courses c").
		Join("departments d ON d.id = c.department_id").
		Where(squirrel.Eq{"c.course_code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course by code query: %w", err)
	}

	course, err := scanCourseWithDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseCode", code).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by code: %w", err)
	}

	return course, nil
}

// ListCourses retrieves courses with their departments, filtered by the
// given params, ordered and paginated. Returns the rows plus the total
// match count.
func (r *CourseRepository) ListCourses(ctx context.Context, search, ordering string, departmentID *int64, departmentCode *string, offset, limit int) ([]*models.Course, int64, error) {
	base := r.sb.Select(
		"c.id", "c.title", "c.course_code", "c.department_id",
		"c.description", "c.icon_name", "c.color_code",
		"c.created_at", "c.updated_at",
		"d.id", "d.name", "d.code").
		From("courses c").
		Join("departments d ON d.id = c.department_id")
	countQuery := r.sb.Select("COUNT(*)").
		From("courses c").
		Join("departments d ON d.id = c.department_id")

	if search != "" {
		like := "%" + search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"c.title": like},
			squirrel.ILike{"c.course_code": like},
		}
		base = base.Where(cond)
		countQuery = countQuery.Where(cond)
	}
	if departmentID != nil {
		base = base.Where(squirrel.Eq{"c.department_id": *departmentID})
		countQuery = countQuery.Where(squirrel.Eq{"c.department_id": *departmentID})
	}
	if departmentCode != nil {
		base = base.Where(squirrel.Eq{"d.code": *departmentCode})
		countQuery = countQuery.Where(squirrel.Eq{"d.code": *departmentCode})
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting courses")
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	sql, args, err := base.
		OrderBy(ordering).
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, 0, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourseWithDepartment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, total, nil
}

// UpdateCourse updates a course
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("title", course.Title).
		Set("course_code", course.CourseCode).
		Set("department_id", course.DepartmentID).
		Set("description", course.Description).
		Set("icon_name", course.IconName).
		Set("color_code", course.ColorCode).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_course_code_key") {
			return apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// DeleteCourse deletes a course. Documents, notes and enrollments under it
// are removed by ON DELETE CASCADE constraints.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
