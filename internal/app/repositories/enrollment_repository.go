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
	"github.com/selimk/coursehub/internal/pkg/dberrors"
	"github.com/selimk/coursehub/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment ledger database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateEnrollment inserts an enrollment row. The unique constraint on
// (student_id, course_id) makes the check-then-insert race safe.
func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, studentID, courseID int64) (int64, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id", "is_active").
		Values(studentID, courseID, true).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_student_course_key") {
			return 0, apperrors.ErrAlreadyEnrolled
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).
			Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}

// EnrollmentExists reports whether any ledger row exists for the pair,
// active or not
func (r *EnrollmentRepository) EnrollmentExists(ctx context.Context, studentID, courseID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentID, "course_id": courseID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build enrollment exists query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("courseID", courseID).
			Msg("Error checking enrollment existence")
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}
	return true, nil
}

// GetEnrollmentByID retrieves a single ledger row with student and course
func (r *EnrollmentRepository) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	sql, args, err := r.enrollmentSelect().
		Where(squirrel.Eq{"e.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error scanning enrollment row")
		return nil, fmt.Errorf("error getting enrollment by ID: %w", err)
	}

	return enrollment, nil
}

func (r *EnrollmentRepository) enrollmentSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"e.id", "e.student_id", "e.course_id", "e.enrolled_at", "e.is_active",
		"u.id", "u.email", "u.username", "u.first_name", "u.last_name",
		"c.id", "c.title", "c.course_code", "c.department_id",
		"c.description", "c.icon_name", "c.color_code",
		"d.id", "d.name", "d.code").
		From("enrollments e").
		Join("users u ON u.id = e.student_id").
		Join("courses c ON c.id = e.course_id").
		Join("departments d ON d.id = c.department_id")
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{
		Student: &models.User{},
		Course:  &models.Course{Department: &models.Department{}},
	}
	err := row.Scan(
		&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID,
		&enrollment.EnrolledAt, &enrollment.IsActive,
		&enrollment.Student.ID, &enrollment.Student.Email, &enrollment.Student.Username,
		&enrollment.Student.FirstName, &enrollment.Student.LastName,
		&enrollment.Course.ID, &enrollment.Course.Title, &enrollment.Course.CourseCode,
		&enrollment.Course.DepartmentID, &enrollment.Course.Description,
		&enrollment.Course.IconName, &enrollment.Course.ColorCode,
		&enrollment.Course.Department.ID, &enrollment.Course.Department.Name,
		&enrollment.Course.Department.Code,
	)
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ListEnrollments retrieves ledger rows with student and course joined,
// optionally filtered by student and course, newest first. Returns the rows
// plus the total match count.
func (r *EnrollmentRepository) ListEnrollments(ctx context.Context, studentID, courseID *int64, offset, limit int) ([]*models.Enrollment, int64, error) {
	base := r.enrollmentSelect()
	countQuery := r.sb.Select("COUNT(*)").From("enrollments e")

	if studentID != nil {
		base = base.Where(squirrel.Eq{"e.student_id": *studentID})
		countQuery = countQuery.Where(squirrel.Eq{"e.student_id": *studentID})
	}
	if courseID != nil {
		base = base.Where(squirrel.Eq{"e.course_id": *courseID})
		countQuery = countQuery.Where(squirrel.Eq{"e.course_id": *courseID})
	}

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count enrollments query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting enrollments")
		return nil, 0, fmt.Errorf("error counting enrollments: %w", err)
	}

	sql, args, err := base.
		OrderBy("e.enrolled_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrollments query")
		return nil, 0, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, total, nil
}

// ListStudentCourses retrieves the active courses a student is enrolled in
func (r *EnrollmentRepository) ListStudentCourses(ctx context.Context, studentID int64) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(
		"c.id", "c.title", "c.course_code", "c.department_id",
		"c.description", "c.icon_name", "c.color_code",
		"c.created_at", "c.updated_at",
		"d.id", "d.name", "d.code").
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Join("departments d ON d.id = c.department_id").
		Where(squirrel.Eq{"e.student_id": studentID, "e.is_active": true}).
		OrderBy("e.enrolled_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing student courses query")
		return nil, fmt.Errorf("error querying student courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourseWithDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// DeleteEnrollment removes a ledger row
func (r *EnrollmentRepository) DeleteEnrollment(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", id).Msg("Error executing delete enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
