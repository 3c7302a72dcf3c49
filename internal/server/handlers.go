package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"targetcheck/internal/common"
	"targetcheck/internal/entity"
	"targetcheck/internal/validation"
)

// ValidateRequest is the JSON body of POST /api/v1/validate. DocumentText and
// Pages are alternatives; when both are set the pages win.
type ValidateRequest struct {
	DocumentText     string                `json:"documentText"`
	Pages            []string              `json:"pages"`
	Expected         entity.ExpectedRecord `json:"expected"`
	SignaturePresent *bool                 `json:"signaturePresent,omitempty"`
}

// ValidateResponse is the wire shape of a validation outcome. Success reports
// whether a verdict was obtained at all; IsValid reports the verdict itself.
type ValidateResponse struct {
	Success    bool                   `json:"success"`
	IsValid    bool                   `json:"isValid"`
	Message    string                 `json:"message"`
	Mismatches []entity.FieldMismatch `json:"mismatches"`
}

type Handler struct {
	svc    *validation.Service
	logger *slog.Logger
}

func NewHandler(svc *validation.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) HandleValidate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ValidateResponse{
			Success:    false,
			Message:    "invalid request body: " + err.Error(),
			Mismatches: []entity.FieldMismatch{},
		})
		return
	}
	if req.Expected.AgentName == "" && req.Expected.CustomerName == "" && len(req.Expected.Targets) == 0 {
		c.JSON(http.StatusBadRequest, ValidateResponse{
			Success:    false,
			Message:    "expected record is required",
			Mismatches: []entity.FieldMismatch{},
		})
		return
	}

	pages := req.Pages
	if len(pages) == 0 && req.DocumentText != "" {
		pages = []string{req.DocumentText}
	}

	reqID := uuid.New().String()
	ctx := common.WithRequestID(c.Request.Context(), reqID)

	result, err := h.svc.ValidateDocument(ctx, validation.Request{
		Pages:            pages,
		Expected:         req.Expected,
		SignaturePresent: req.SignaturePresent,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, common.ErrTransport) {
			status = http.StatusBadGateway
		}
		h.logger.Error("server.validate_failed", "req_id", reqID, "error", err)
		c.JSON(status, ValidateResponse{
			Success:    false,
			Message:    "verifier call failed",
			Mismatches: []entity.FieldMismatch{},
		})
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{
		Success:    true,
		IsValid:    result.Valid,
		Message:    result.Message,
		Mismatches: result.Mismatches,
	})
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
