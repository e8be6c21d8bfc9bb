package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"profileparser/models"
	"profileparser/parsers"
	"profileparser/services"
	"profileparser/utils"
)

// ProfileHandler wires document extraction and profile parsing into the HTTP
// surface. Store and profiles are optional: endpoints that need them answer
// 503 when the backing service is not configured.
type ProfileHandler struct {
	parser    *parsers.ProfileParser
	extractor *parsers.DocumentExtractor
	store     *services.S3Service
	profiles  *models.ProfileModel
}

func NewProfileHandler(store *services.S3Service, profiles *models.ProfileModel) *ProfileHandler {
	return &ProfileHandler{
		parser:    parsers.NewProfileParser(),
		extractor: parsers.NewDocumentExtractor(),
		store:     store,
		profiles:  profiles,
	}
}

// ParseResume accepts a multipart upload under the "resume" field, extracts
// its text, and returns the structured profile.
func (h *ProfileHandler) ParseResume(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		utils.BadRequestError(c, "Could not read uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.BadRequestError(c, "Could not read uploaded file", err)
		return
	}

	contentType := header.Header.Get("Content-Type")
	text, err := h.extractor.ExtractText(data, header.Filename, contentType)
	if errors.Is(err, parsers.ErrUnsupportedFormat) {
		utils.BadRequestError(c, "Unsupported document format", err)
		return
	}
	if err != nil {
		utils.UnprocessableError(c, "Could not extract text from document", err)
		return
	}

	profile := h.parser.Parse(text)

	if h.store != nil {
		go h.archiveUpload(header.Filename, data, contentType)
	}

	utils.SuccessResponse(c, http.StatusOK, "Resume parsed", profile)
}

// archiveUpload stores the original document for later re-parsing. Failures
// are logged, never surfaced to the upload response.
func (h *ProfileHandler) archiveUpload(filename string, data []byte, contentType string) {
	key := fmt.Sprintf("resumes/%d-%s", time.Now().UnixNano(), filename)
	if _, err := h.store.UploadDocument(key, data, contentType); err != nil {
		utils.LogError("Failed to archive uploaded resume", err, map[string]string{"key": key})
	}
}

type parseFromS3Request struct {
	Key string `json:"key" binding:"required"`
}

// ParseFromS3 re-parses a previously stored document by its object key.
func (h *ProfileHandler) ParseFromS3(c *gin.Context) {
	if h.store == nil {
		utils.ErrorResponseWithCode(c, http.StatusServiceUnavailable, "Document storage is not configured", nil)
		return
	}

	var req parseFromS3Request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	data, err := h.store.DownloadDocument(req.Key)
	if err != nil {
		utils.NotFoundError(c, "Stored document not found")
		return
	}

	text, err := h.extractor.ExtractText(data, req.Key, "")
	if errors.Is(err, parsers.ErrUnsupportedFormat) {
		utils.BadRequestError(c, "Unsupported document format", err)
		return
	}
	if err != nil {
		utils.UnprocessableError(c, "Could not extract text from document", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resume parsed", h.parser.Parse(text))
}

type mergeProfileRequest struct {
	UserID  int             `json:"userId" binding:"required"`
	Profile parsers.Profile `json:"profile"`
}

// MergeProfile folds a parsed profile into the stored one for a user and
// returns the merged result. Stored values win over extracted ones.
func (h *ProfileHandler) MergeProfile(c *gin.Context) {
	if h.profiles == nil {
		utils.ErrorResponseWithCode(c, http.StatusServiceUnavailable, "Profile persistence is not configured", nil)
		return
	}

	var req mergeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	existing, err := h.profiles.GetByUserID(req.UserID)
	if err != nil {
		utils.InternalServerError(c, "Failed to load stored profile", err)
		return
	}

	merged := services.MergeProfiles(existing, &req.Profile)
	if err := h.profiles.CreateOrUpdate(req.UserID, merged); err != nil {
		utils.InternalServerError(c, "Failed to save merged profile", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile merged", merged)
}

// DeleteDocument removes a stored resume document.
func (h *ProfileHandler) DeleteDocument(c *gin.Context) {
	if h.store == nil {
		utils.ErrorResponseWithCode(c, http.StatusServiceUnavailable, "Document storage is not configured", nil)
		return
	}

	key := c.Param("key")
	if err := h.store.DeleteDocument(key); err != nil {
		utils.InternalServerError(c, "Failed to delete stored document", err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Document deleted", nil)
}

// Health reports service liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
