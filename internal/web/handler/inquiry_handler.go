package handler

import (
	"log/slog"

	"github.com/cloud-inquiry-balance-web/internal/presentation"
	"github.com/cloud-inquiry-balance-web/internal/web/middleware"
	"github.com/cloud-inquiry-balance-web/internal/web/service"
	"github.com/gin-gonic/gin"
)

// InquiryHandler serves the JSON inquiry API
type InquiryHandler struct {
	inquiryService  service.InquiryService
	logger          *slog.Logger
	defaultCurrency string
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(logger *slog.Logger, inquiryService service.InquiryService, defaultCurrency string) *InquiryHandler {
	return &InquiryHandler{
		inquiryService:  inquiryService,
		logger:          logger,
		defaultCurrency: defaultCurrency,
	}
}

// Inquire runs one inquiry and returns the backend payload unchanged
func (h *InquiryHandler) Inquire(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	resp, err := h.inquiryService.Inquire(c.Request.Context(), req.Account)
	if err != nil {
		h.logFailure(c, req.Account, err)
		RespondWithError(c, err)
		return
	}

	RespondOK(c, resp)
}

// InquireView runs one inquiry and returns the display model instead of the raw payload
func (h *InquiryHandler) InquireView(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	resp, err := h.inquiryService.Inquire(c.Request.Context(), req.Account)
	if err != nil {
		h.logFailure(c, req.Account, err)
		RespondWithError(c, err)
		return
	}

	RespondOK(c, presentation.BuildView(resp, h.defaultCurrency))
}

// Health proxies the backend health payload
func (h *InquiryHandler) Health(c *gin.Context) {
	status, err := h.inquiryService.Health(c.Request.Context())
	if err != nil {
		h.logger.Warn("Backend health check failed",
			"error", err,
			"correlation_id", middleware.GetCorrelationID(c))
		RespondWithError(c, err)
		return
	}

	RespondOK(c, status)
}

func (h *InquiryHandler) bind(c *gin.Context) (InquiryRequest, bool) {
	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body")
		return req, false
	}
	return req, true
}

func (h *InquiryHandler) logFailure(c *gin.Context, account string, err error) {
	h.logger.Warn("Inquiry failed",
		"account", presentation.MaskAccountNumber(account),
		"error", err,
		"correlation_id", middleware.GetCorrelationID(c))
}
