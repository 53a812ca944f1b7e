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

// courseOrderings whitelists ordering fields for course listings.
var courseOrderings = map[string]string{
	"title":        "c.title ASC",
	"-title":       "c.title DESC",
	"course_code":  "c.course_code ASC",
	"-course_code": "c.course_code DESC",
	"created_at":   "c.created_at ASC",
	"-created_at":  "c.created_at DESC",
}

// CourseService handles course catalog operations
type CourseService struct {
	courseRepo     *repositories.CourseRepository
	departmentRepo *repositories.DepartmentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, departmentRepo *repositories.DepartmentRepository) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
	}
}

// CreateCourse creates a new course under an existing department
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if _, err := s.departmentRepo.GetDepartmentByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:        strings.TrimSpace(req.Title),
		CourseCode:   strings.ToUpper(strings.TrimSpace(req.CourseCode)),
		DepartmentID: req.DepartmentID,
		Description:  req.Description,
		IconName:     req.IconName,
		ColorCode:    req.ColorCode,
	}

	id, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("courseID", id).Str("courseCode", course.CourseCode).Msg("Course created")
	return s.courseRepo.GetCourseByID(ctx, id)
}

// GetCourse retrieves a course by ID
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetCourseByID(ctx, id)
}

// ListCourses retrieves courses with filters, ordering and pagination
func (s *CourseService) ListCourses(ctx context.Context, params *dto.CourseListParams) ([]*models.Course, int64, error) {
	ordering, ok := courseOrderings[params.Ordering]
	if !ok {
		if params.Ordering != "" {
			return nil, 0, apperrors.NewBadRequestError("unsupported ordering field: " + params.Ordering)
		}
		ordering = courseOrderings["title"]
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)
	return s.courseRepo.ListCourses(ctx, strings.TrimSpace(params.Search), ordering,
		params.DepartmentID, params.DepartmentCode, offset, limit)
}

// UpdateCourse updates a course
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != course.DepartmentID {
		if _, err := s.departmentRepo.GetDepartmentByID(ctx, req.DepartmentID); err != nil {
			return nil, err
		}
	}

	course.Title = strings.TrimSpace(req.Title)
	course.CourseCode = strings.ToUpper(strings.TrimSpace(req.CourseCode))
	course.DepartmentID = req.DepartmentID
	course.Description = req.Description
	course.IconName = req.IconName
	course.ColorCode = req.ColorCode

	if err := s.courseRepo.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}

	return s.courseRepo.GetCourseByID(ctx, id)
}

// DeleteCourse deletes a course and, via cascade, its documents, notes and
// enrollments
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.DeleteCourse(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}
