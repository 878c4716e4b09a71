package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fabshop-backend/internal/middleware"
	"fabshop-backend/internal/models"
	"fabshop-backend/internal/services"
	"fabshop-backend/internal/supabase"
)

// Attachment uploads are capped well below Supabase Storage's limit; model
// files for quoting rarely exceed a few tens of megabytes.
const maxAttachmentSize = 50 << 20

type FilesHandler struct {
	dbClient          *supabase.DatabaseClient
	attachmentService *services.AttachmentService
}

func NewFilesHandler(dbClient *supabase.DatabaseClient, attachmentService *services.AttachmentService) *FilesHandler {
	return &FilesHandler{
		dbClient:          dbClient,
		attachmentService: attachmentService,
	}
}

// UploadFile godoc
// @Summary     Attach a file to a quote
// @Description Uploads a model/reference file for a quote to Supabase Storage and records it
// @Tags        files
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       quote_id path int true "Quote ID"
// @Param       file formData file true "File to attach"
// @Success     201 {object} models.FileResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /quotes/{quote_id}/files [post]
func (h *FilesHandler) UploadFile(c *gin.Context) {
	if h.dbClient == nil || h.attachmentService == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "storage not available"})
		return
	}

	userIDStr, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return
	}

	quoteID, ok := parseID(c, "quote_id")
	if !ok {
		return
	}

	if _, err := h.dbClient.GetQuote(quoteID); err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get quote",
			Message: err.Error(),
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing file field"})
		return
	}
	if fileHeader.Size > maxAttachmentSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "file too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read file",
			Message: err.Error(),
		})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read file",
			Message: err.Error(),
		})
		return
	}

	file, err := h.attachmentService.Upload(quoteID, userID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to upload file",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, fileResponse(file))
}

// GetFiles godoc
// @Summary     List quote attachments
// @Description Returns the files attached to a quote with their storage URLs
// @Tags        files
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       quote_id path int true "Quote ID"
// @Success     200 {object} models.FileListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /quotes/{quote_id}/files [get]
func (h *FilesHandler) GetFiles(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	quoteID, ok := parseID(c, "quote_id")
	if !ok {
		return
	}

	files, err := h.dbClient.GetQuoteFiles(quoteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get files",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.FileResponse, len(files))
	for i := range files {
		responses[i] = fileResponse(&files[i])
	}

	c.JSON(http.StatusOK, models.FileListResponse{Files: responses})
}

// DeleteFile godoc
// @Summary     Delete a quote attachment
// @Description Removes the attachment record and its stored blob
// @Tags        files
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       file_id path string true "File ID (UUID)"
// @Success     204 "No Content"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /files/{file_id} [delete]
func (h *FilesHandler) DeleteFile(c *gin.Context) {
	if h.attachmentService == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "storage not available"})
		return
	}

	fileID, err := uuid.Parse(c.Param("file_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid file id"})
		return
	}

	if err := h.attachmentService.Delete(fileID); err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "file not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete file",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func fileResponse(f *models.QuoteFile) models.FileResponse {
	fileSize := int64(0)
	if f.FileSize.Valid {
		fileSize = f.FileSize.Int64
	}
	return models.FileResponse{
		ID:         f.ID.String(),
		QuoteID:    f.QuoteID,
		Filename:   f.Filename,
		StorageURL: f.StorageURL,
		FileSize:   fileSize,
		MimeType:   f.MimeType,
		CreatedOn:  f.CreatedOn,
	}
}
