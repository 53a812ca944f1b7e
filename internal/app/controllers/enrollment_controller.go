package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/selimk/coursehub/internal/app/models/dto"
	"github.com/selimk/coursehub/internal/app/services"
	"github.com/selimk/coursehub/internal/middleware"
	"github.com/selimk/coursehub/internal/pkg/helpers"
)

// EnrollmentController handles enrollment ledger endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// ListEnrollments lists ledger rows, role-branched
// @Summary List enrollments
// @Description Staff see all enrollments; students see only their own.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param student query int false "Filter by student ID (staff only)"
// @Param course query int false "Filter by course ID"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Enrollments"
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	params := &dto.EnrollmentListParams{Page: page, Size: size}

	if studentStr := ctx.Query("student"); studentStr != "" {
		studentID, err := strconv.ParseInt(studentStr, 10, 64)
		if err != nil || studentID <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student filter").
				WithDetails("student must be a positive number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		params.StudentID = &studentID
	}
	if courseStr := ctx.Query("course"); courseStr != "" {
		courseID, err := strconv.ParseInt(courseStr, 10, 64)
		if err != nil || courseID <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course filter").
				WithDetails("course must be a positive number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		params.CourseID = &courseID
	}

	enrollments, total, err := c.enrollmentService.ListEnrollments(ctx, userID, middleware.CurrentUserIsStaff(ctx), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		items = append(items, toEnrollmentResponse(enrollment))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// MyCourses lists the authenticated identity's active courses
// @Summary List my courses
// @Description Courses of the identity's active enrollments, most recent first.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses"
// @Router /enrollments/my_courses [get]
func (c *EnrollmentController) MyCourses(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	courses, err := c.enrollmentService.MyCourses(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(toCourseResponses(courses)))
}

// Unenroll removes a ledger row
// @Summary Remove an enrollment
// @Description Staff may remove any enrollment; a student only their own.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse "Enrollment removed"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	if err := c.enrollmentService.Unenroll(ctx, userID, middleware.CurrentUserIsStaff(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Enrollment removed"))
}
