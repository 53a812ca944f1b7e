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

// departmentOrderings whitelists ordering fields for department listings.
var departmentOrderings = map[string]string{
	"name":        "name ASC",
	"-name":       "name DESC",
	"code":        "code ASC",
	"-code":       "code DESC",
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
}

// DepartmentService handles department catalog operations
type DepartmentService struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	department := &models.Department{
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Description: req.Description,
	}

	id, err := s.departmentRepo.CreateDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	department.ID = id

	logger.Info().Int64("departmentID", id).Str("code", department.Code).Msg("Department created")
	return s.departmentRepo.GetDepartmentByID(ctx, id)
}

// GetDepartment retrieves a department by ID
func (s *DepartmentService) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetDepartmentByID(ctx, id)
}

// ListDepartments retrieves departments with search, ordering and pagination
func (s *DepartmentService) ListDepartments(ctx context.Context, params *dto.CatalogListParams) ([]*models.Department, int64, error) {
	ordering, ok := departmentOrderings[params.Ordering]
	if !ok {
		if params.Ordering != "" {
			return nil, 0, apperrors.NewBadRequestError("unsupported ordering field: " + params.Ordering)
		}
		ordering = departmentOrderings["name"]
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)
	return s.departmentRepo.ListDepartments(ctx, strings.TrimSpace(params.Search), ordering, offset, limit)
}

// CountCourses returns the number of courses a department owns
func (s *DepartmentService) CountCourses(ctx context.Context, departmentID int64) (int, error) {
	return s.departmentRepo.CountCourses(ctx, departmentID)
}

// UpdateDepartment updates a department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := s.departmentRepo.GetDepartmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department.Name = strings.TrimSpace(req.Name)
	department.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	department.Description = req.Description

	if err := s.departmentRepo.UpdateDepartment(ctx, department); err != nil {
		return nil, err
	}

	return s.departmentRepo.GetDepartmentByID(ctx, id)
}

// DeleteDepartment deletes a department and, via cascade, its courses
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.departmentRepo.DeleteDepartment(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("departmentID", id).Msg("Department deleted")
	return nil
}
