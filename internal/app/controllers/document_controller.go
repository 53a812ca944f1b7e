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

// DocumentController handles course document endpoints
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

func (c *DocumentController) toResponse(ctx *gin.Context, doc *models.CourseDocument) (dto.DocumentResponse, error) {
	uploader, err := c.documentService.UploaderSummary(ctx, doc)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	return dto.DocumentResponse{
		ID:           doc.ID,
		Title:        doc.Title,
		CourseID:     doc.CourseID,
		DocumentType: string(doc.DocumentType),
		FileSize:     doc.FileSize,
		FileURL:      c.documentService.FileURL(doc),
		Description:  doc.Description,
		UploadedBy:   toUserSummary(uploader),
		UploadedAt:   doc.UploadedAt,
	}, nil
}

// UploadDocument handles a multipart document upload
// @Summary Upload a course document
// @Description Classifies the file by extension, stores it and records metadata atomically
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Document title"
// @Param course formData int true "Course ID"
// @Param description formData string false "Description"
// @Param file formData file true "Document file"
// @Success 201 {object} dto.APIResponse{data=dto.DocumentResponse} "Document uploaded"
// @Failure 400 {object} dto.ErrorResponse "Unsupported file type"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate document"
// @Router /documents [post]
func (c *DocumentController) UploadDocument(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateDocumentRequest
	if !middleware.BindForm(ctx, &req) {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewMissingParameterError("file"))
		return
	}

	doc, err := c.documentService.UploadDocument(ctx, userID, &req, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.toResponse(ctx, doc)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// GetDocument retrieves a document by ID
// @Summary Get a document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.DocumentResponse} "Document"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [get]
func (c *DocumentController) GetDocument(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	doc, err := c.documentService.GetDocument(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.toResponse(ctx, doc)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// ListDocuments lists the documents of a course
// @Summary List course documents
// @Description Lists documents of a course, newest first. The course parameter is mandatory.
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param course query int true "Course ID"
// @Param type query string false "Filter by document type (pdf, doc, xlsx, ppt, img, other)"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Documents"
// @Failure 400 {object} dto.ErrorResponse "Missing course parameter"
// @Router /documents [get]
func (c *DocumentController) ListDocuments(ctx *gin.Context) {
	courseStr := ctx.Query("course")
	if courseStr == "" {
		middleware.HandleAPIError(ctx, apperrors.NewMissingParameterError("course"))
		return
	}

	courseID, err := strconv.ParseInt(courseStr, 10, 64)
	if err != nil || courseID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course parameter").
			WithDetails("course must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	params := &dto.DocumentListParams{
		CourseID: courseID,
		Page:     page,
		Size:     size,
	}
	if docType := ctx.Query("type"); docType != "" {
		params.DocumentType = &docType
	}

	docs, total, err := c.documentService.ListDocuments(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp, err := c.toResponse(ctx, doc)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		items = append(items, resp)
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// DeleteDocument deletes a document and its stored file
// @Summary Delete a document
// @Description Removes a document's metadata and stored file. Uploader or staff only.
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse "Document deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [delete]
func (c *DocumentController) DeleteDocument(ctx *gin.Context) {
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

	if err := c.documentService.DeleteDocument(ctx, userID, middleware.CurrentUserIsStaff(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Document deleted"))
}

// UpdateDocument updates a document's editable metadata
// @Summary Update a document
// @Description Title and description only; the stored file is immutable. Uploader or staff only.
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Param request body dto.UpdateDocumentRequest true "Document metadata"
// @Success 200 {object} dto.APIResponse{data=dto.DocumentResponse} "Document updated"
// @Failure 403 {object} dto.ErrorResponse "Not the uploader"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /documents/{id} [put]
func (c *DocumentController) UpdateDocument(ctx *gin.Context) {
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

	var req dto.UpdateDocumentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	doc, err := c.documentService.UpdateDocument(ctx, userID, middleware.CurrentUserIsStaff(ctx), id, req.Title, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.toResponse(ctx, doc)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
