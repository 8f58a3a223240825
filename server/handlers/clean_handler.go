// Package handlers implements the HTTP endpoints around the cleaning
// pipeline.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"datapurity/cleaning"
	"datapurity/importer"
	apperrors "datapurity/server/errors"
	"datapurity/server/middleware"
)

// CleanHandler runs uploaded contact tables through the cleaning
// pipeline. It holds no per-request state; every request gets its own
// settings value and pipeline.
type CleanHandler struct {
	settings      cleaning.Settings
	maxUploadSize int64
	logger        *slog.Logger
}

// NewCleanHandler creates the handler with the service-wide default
// cleaning settings and upload limit in bytes.
func NewCleanHandler(settings cleaning.Settings, maxUploadSize int64) *CleanHandler {
	return &CleanHandler{
		settings:      settings,
		maxUploadSize: maxUploadSize,
		logger:        slog.Default().With("component", "clean_handler"),
	}
}

// CleanRequest is the JSON request body alternative to a file upload.
type CleanRequest struct {
	Rows []cleaning.Row `json:"rows"`
}

// CleanResponse is the cleaned table plus run statistics.
type CleanResponse struct {
	Contacts []*cleaning.Record `json:"contacts"`
	Stats    cleaning.Stats     `json:"stats"`
}

// HandleClean cleans a contact table submitted either as a multipart
// file upload (field "file", .xlsx/.csv) or as a JSON rows array.
// Query parameters country, min_name_len, fuzzy and fuzzy_threshold
// override the default settings for this request only.
func (h *CleanHandler) HandleClean(c *gin.Context) {
	settings, appErr := h.requestSettings(c)
	if appErr != nil {
		sendJSONError(c, appErr)
		return
	}

	rows, appErr := h.readRows(c)
	if appErr != nil {
		sendJSONError(c, appErr)
		return
	}

	pipeline, err := cleaning.NewPipeline(settings)
	if err != nil {
		sendJSONError(c, apperrors.NewValidationError("invalid cleaning configuration", err))
		return
	}

	contacts, stats, err := pipeline.Clean(rows)
	if err != nil {
		if errors.Is(err, cleaning.ErrInvalidInput) {
			sendJSONError(c, apperrors.NewValidationError("invalid input table", err))
			return
		}
		sendJSONError(c, apperrors.NewInternalError("cleaning run failed", err))
		return
	}

	h.logger.Info("Cleaned uploaded contacts",
		"rows_original", stats.RowsOriginal,
		"rows_final", stats.RowsFinal,
		"request_id", middleware.GetRequestID(c),
	)

	c.JSON(http.StatusOK, CleanResponse{Contacts: contacts, Stats: stats})
}

// requestSettings applies per-request overrides on top of the service
// defaults. Invalid values are rejected here rather than silently
// ignored; domain validation happens once, in the pipeline constructor.
func (h *CleanHandler) requestSettings(c *gin.Context) (cleaning.Settings, *apperrors.AppError) {
	settings := h.settings

	if country := c.Query("country"); country != "" {
		settings.DefaultCountryCode = country
	}
	if v := c.Query("min_name_len"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return settings, apperrors.NewValidationError("min_name_len must be an integer", err)
		}
		settings.MinValidNameLen = parsed
	}
	if v := c.Query("fuzzy"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return settings, apperrors.NewValidationError("fuzzy must be a boolean", err)
		}
		settings.EnableFuzzyDedup = parsed
	}
	if v := c.Query("fuzzy_threshold"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return settings, apperrors.NewValidationError("fuzzy_threshold must be an integer", err)
		}
		settings.FuzzyNameThreshold = parsed
	}

	return settings, nil
}

// readRows extracts the raw table from the request: multipart upload
// when a file is attached, JSON body otherwise.
func (h *CleanHandler) readRows(c *gin.Context) ([]cleaning.Row, *apperrors.AppError) {
	fileHeader, err := c.FormFile("file")
	if err == nil {
		if fileHeader.Size > h.maxUploadSize {
			return nil, apperrors.NewPayloadTooLargeError("uploaded file exceeds the size limit", nil)
		}

		format, err := importer.FormatForPath(fileHeader.Filename)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error(), err)
		}

		file, err := fileHeader.Open()
		if err != nil {
			return nil, apperrors.NewInternalError("failed to open uploaded file", err)
		}
		defer file.Close()

		rows, err := importer.ReadContacts(file, format)
		if err != nil {
			return nil, apperrors.NewValidationError("failed to parse uploaded file", err)
		}
		return rows, nil
	}

	var req CleanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperrors.NewValidationError("request must contain a file upload or a JSON rows array", err)
	}
	return req.Rows, nil
}

// HandleHealth reports service liveness.
func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func sendJSONError(c *gin.Context, appErr *apperrors.AppError) {
	slog.Error("HTTP error",
		"error", appErr.Error(),
		"status_code", appErr.StatusCode(),
		"request_id", middleware.GetRequestID(c),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.AbortWithStatusJSON(appErr.StatusCode(), gin.H{
		"error":      appErr.UserMessage(),
		"request_id": middleware.GetRequestID(c),
	})
}
