package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/selimk/coursehub/internal/app/models"
	"github.com/selimk/coursehub/internal/app/models/dto"
	"github.com/selimk/coursehub/internal/app/services"
	"github.com/selimk/coursehub/internal/middleware"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
	"github.com/selimk/coursehub/internal/pkg/helpers"
)

// NoteController handles course note endpoints
type NoteController struct {
	noteService *services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService *services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

func (c *NoteController) toResponse(ctx *gin.Context, note *models.CourseNote) (dto.NoteResponse, error) {
	creator, err := c.noteService.CreatorSummary(ctx, note)
	if err != nil {
		return dto.NoteResponse{}, err
	}
	return toNoteResponse(note, creator), nil
}

// CreateNote creates a course note
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNoteRequest true "Note data"
// @Success 201 {object} dto.APIResponse{data=dto.NoteResponse} "Note created"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateNoteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	note, err := c.noteService.CreateNote(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.toResponse(ctx, note)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// GetNote retrieves a note by ID
// @Summary Get a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.NoteResponse} "Note"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{id} [get]
func (c *NoteController) GetNote(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	note, err := c.noteService.GetNote(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.toResponse(ctx, note)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// ListNotes lists notes with filters and pagination
// @Summary List notes
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param course query int false "Filter by course ID"
// @Param category query string false "Filter by category"
// @Param difficulty query string false "Filter by difficulty level"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Notes"
// @Router /notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	params := &dto.NoteListParams{Page: page, Size: size}

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
	if category := ctx.Query("category"); category != "" {
		params.Category = &category
	}
	if difficulty := ctx.Query("difficulty"); difficulty != "" {
		params.Difficulty = &difficulty
	}

	notes, total, err := c.noteService.ListNotes(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		item, err := c.toResponse(ctx, note)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		items = append(items, item)
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// ListFeaturedNotes lists featured notes across courses
// @Summary List featured notes
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param course query int false "Scope to a course"
// @Success 200 {object} dto.APIResponse{data=[]dto.NoteResponse} "Featured notes"
// @Router /notes/featured [get]
func (c *NoteController) ListFeaturedNotes(ctx *gin.Context) {
	var courseID *int64
	if courseStr := ctx.Query("course"); courseStr != "" {
		id, err := strconv.ParseInt(courseStr, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course filter").
				WithDetails("course must be a positive number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		courseID = &id
	}

	notes, err := c.noteService.ListFeaturedNotes(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		item, err := c.toResponse(ctx, note)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		items = append(items, item)
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// ListNotesByCourse lists the notes of one course
// @Summary List notes of a course
// @Description The course_id parameter is mandatory.
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param course_id query int true "Course ID"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Notes"
// @Failure 400 {object} dto.ErrorResponse "Missing course_id parameter"
// @Router /notes/by_course [get]
func (c *NoteController) ListNotesByCourse(ctx *gin.Context) {
	courseStr := ctx.Query("course_id")
	if courseStr == "" {
		middleware.HandleAPIError(ctx, apperrors.NewMissingParameterError("course_id"))
		return
	}

	courseID, err := strconv.ParseInt(courseStr, 10, 64)
	if err != nil || courseID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course_id parameter").
			WithDetails("course_id must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	notes, total, err := c.noteService.ListNotesByCourse(ctx, courseID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		item, err := c.toResponse(ctx, note)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		items = append(items, item)
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// UpdateNote updates a note
// @Summary Update a note
// @Description Read time is recomputed from the new content. Creator or staff only.
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body dto.UpdateNoteRequest true "Note data"
// @Success 200 {object} dto.APIResponse{data=dto.NoteResponse} "Note updated"
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
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

	var req dto.UpdateNoteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	note, err := c.noteService.UpdateNote(ctx, userID, middleware.CurrentUserIsStaff(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.toResponse(ctx, note)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// DeleteNote deletes a note
// @Summary Delete a note
// @Description Creator or staff only.
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.APIResponse "Note deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
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

	if err := c.noteService.DeleteNote(ctx, userID, middleware.CurrentUserIsStaff(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Note deleted"))
}
