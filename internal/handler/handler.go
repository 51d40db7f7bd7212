package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"tinylink/internal/domain"
	"tinylink/internal/service"
	"tinylink/internal/validation"
)

var (
	errInvalidBody  = map[string]string{"error": "invalid request body"}
	errURLRequired  = map[string]string{"error": "Missing url in body"}
	errCodeRequired = map[string]string{"error": "code is required"}
	errLinkNotFound = map[string]string{"error": "Not found"}
	errCodeTaken    = map[string]string{"error": "short code already taken"}
	errServer       = map[string]string{"error": "Server error"}
	errInvalidURL   = map[string]string{"error": "invalid url format"}
	errUnsafeURL    = map[string]string{"error": "url protocol not allowed"}
	errURLTooLong   = map[string]string{"error": "url exceeds maximum length"}
	errPrivateIP    = map[string]string{"error": "private ip addresses not allowed"}
)

type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

type Handler struct {
	linkService  LinkService
	urlValidator URLValidator
	health       HealthChecker
	logger       *slog.Logger
}

func New(
	linkService LinkService,
	urlValidator URLValidator,
	health HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		linkService:  linkService,
		urlValidator: urlValidator,
		health:       health,
		logger:       logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/shorten", h.Shorten)
	api.GET("/links", h.ListLinks)
	api.GET("/links/:code", h.GetLink)
	api.DELETE("/links/:code", h.DeleteLink)
	e.GET("/:code", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	backend := h.health.Kind().String()
	if err := h.health.Ping(c.Request().Context()); err != nil {
		h.logger.Error("health check failed",
			slog.String("backend", backend),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Backend: backend})
	}
	return c.JSON(http.StatusOK, healthResponse{Status: "ok", Backend: backend})
}

func (h *Handler) Shorten(c echo.Context) error {
	var req domain.ShortenRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	target := h.urlValidator.Normalize(req.URL)
	if err := h.urlValidator.ValidateURL(target); err != nil {
		return h.handleValidationError(c, err)
	}

	resp, err := h.linkService.Shorten(c.Request().Context(), target)
	if err != nil {
		if errors.Is(err, service.ErrCodeTaken) {
			return c.JSON(http.StatusConflict, errCodeTaken)
		}
		h.logger.Error("failed to shorten url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errServer)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListLinks(c echo.Context) error {
	links, err := h.linkService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list links", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errServer)
	}
	return c.JSON(http.StatusOK, links)
}

func (h *Handler) GetLink(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	link, err := h.linkService.Get(c.Request().Context(), code)
	if err != nil {
		return h.handleLookupError(c, "failed to get link", err)
	}
	return c.JSON(http.StatusOK, link)
}

func (h *Handler) DeleteLink(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	if err := h.linkService.Delete(c.Request().Context(), code); err != nil {
		return h.handleLookupError(c, "failed to delete link", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Redirect(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	target, err := h.linkService.Resolve(c.Request().Context(), code)
	if err != nil {
		return h.handleLookupError(c, "failed to resolve link", err)
	}

	return c.Redirect(http.StatusFound, target)
}

func (h *Handler) handleLookupError(c echo.Context, msg string, err error) error {
	switch {
	case errors.Is(err, service.ErrLinkNotFound):
		return c.JSON(http.StatusNotFound, errLinkNotFound)
	default:
		h.logger.Error(msg,
			slog.String("code", c.Param("code")),
			slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errServer)
	}
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyURL):
		return c.JSON(http.StatusBadRequest, errURLRequired)
	case errors.Is(err, validation.ErrInvalidURLFormat):
		return c.JSON(http.StatusBadRequest, errInvalidURL)
	case errors.Is(err, validation.ErrUnsafeProtocol):
		return c.JSON(http.StatusBadRequest, errUnsafeURL)
	case errors.Is(err, validation.ErrURLTooLong):
		return c.JSON(http.StatusBadRequest, errURLTooLong)
	case errors.Is(err, validation.ErrPrivateIPNotAllowed):
		return c.JSON(http.StatusBadRequest, errPrivateIP)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}
