package services

import (
	"context"

	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/app/models/dto"
	"github.com/selimk/coursehub/internal/app/repositories"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
	"github.com/selimk/coursehub/internal/pkg/helpers"
	"github.com/selimk/coursehub/internal/pkg/logger"
)

// EnrollmentService handles the enrollment ledger
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	courseRepo     *repositories.CourseRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository, courseRepo *repositories.CourseRepository) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
	}
}

// Enroll records an enrollment of the identity into a course. Any existing
// ledger row for the pair, active or not, blocks a second one; under
// concurrency the unique constraint settles ties.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	if _, err := s.courseRepo.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	exists, err := s.enrollmentRepo.EnrollmentExists(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	id, err := s.enrollmentRepo.CreateEnrollment(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", studentID).Int64("courseID", courseID).Msg("Student enrolled")
	return s.enrollmentRepo.GetEnrollmentByID(ctx, id)
}

// MyCourses retrieves the active courses of the identity, most recently
// enrolled first
func (s *EnrollmentService) MyCourses(ctx context.Context, studentID int64) ([]*models.Course, error) {
	return s.enrollmentRepo.ListStudentCourses(ctx, studentID)
}

// ListEnrollments retrieves ledger rows. Staff see everything; students see
// only their own rows regardless of requested filters.
func (s *EnrollmentService) ListEnrollments(ctx context.Context, actorID int64, isStaff bool, params *dto.EnrollmentListParams) ([]*models.Enrollment, int64, error) {
	studentID := params.StudentID
	if !isStaff {
		studentID = &actorID
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)
	return s.enrollmentRepo.ListEnrollments(ctx, studentID, params.CourseID, offset, limit)
}

// Unenroll removes a ledger row. Staff may remove any row; a student only
// their own.
func (s *EnrollmentService) Unenroll(ctx context.Context, actorID int64, isStaff bool, enrollmentID int64) error {
	enrollment, err := s.enrollmentRepo.GetEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return err
	}

	if !isStaff && enrollment.StudentID != actorID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.enrollmentRepo.DeleteEnrollment(ctx, enrollmentID); err != nil {
		return err
	}

	logger.Info().Int64("enrollmentID", enrollmentID).Msg("Enrollment removed")
	return nil
}
