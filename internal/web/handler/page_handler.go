package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/cloud-inquiry-balance-web/internal/presentation"
	"github.com/cloud-inquiry-balance-web/internal/web/middleware"
	"github.com/cloud-inquiry-balance-web/internal/web/service"
	"github.com/cloud-inquiry-balance-web/internal/web/templates"
	"github.com/gin-gonic/gin"
)

// PageHandler renders the server-side inquiry screen.
// Each request carries its own query; nothing is kept between requests.
type PageHandler struct {
	inquiryService  service.InquiryService
	logger          *slog.Logger
	defaultTheme    string
	defaultCurrency string
}

// NewPageHandler creates a new page handler
func NewPageHandler(logger *slog.Logger, inquiryService service.InquiryService, defaultTheme, defaultCurrency string) *PageHandler {
	return &PageHandler{
		inquiryService:  inquiryService,
		logger:          logger,
		defaultTheme:    defaultTheme,
		defaultCurrency: defaultCurrency,
	}
}

// Index renders the idle screen
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, templates.InquiryPage, h.page(c))
}

// Inquire handles the search form and renders the outcome
func (h *PageHandler) Inquire(c *gin.Context) {
	data := h.page(c)
	data.Input = c.PostForm("account")

	resp, err := h.inquiryService.Inquire(c.Request.Context(), data.Input)
	if err != nil {
		apiErr := inquiry.AsAPIError(err)
		h.logger.Warn("Inquiry failed",
			"account", presentation.MaskAccountNumber(data.Input),
			"response_code", apiErr.ResponseCode,
			"correlation_id", middleware.GetCorrelationID(c))

		data.Error = presentation.BuildErrorView(apiErr)
		c.HTML(apiErr.HTTPStatus(), templates.InquiryPage, data)
		return
	}

	data.View = presentation.BuildView(resp, h.defaultCurrency)
	c.HTML(http.StatusOK, templates.InquiryPage, data)
}

// Reset clears the screen by sending the browser back to the idle page
func (h *PageHandler) Reset(c *gin.Context) {
	theme := templates.ResolveTheme(c.Query("theme"), h.defaultTheme)
	c.Redirect(http.StatusSeeOther, "/?theme="+url.QueryEscape(theme))
}

func (h *PageHandler) page(c *gin.Context) PageData {
	return PageData{
		Theme:               templates.ResolveTheme(c.Query("theme"), h.defaultTheme),
		Themes:              templates.Themes,
		CustomerUnavailable: presentation.CustomerUnavailableMessage,
	}
}
