package handler

import (
	"log/slog"
	"net/http"

	"supermall/internal/delivery/http/response"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuditHandlerParams holds dependencies for AuditHandler, injected by Fx.
type AuditHandlerParams struct {
	fx.In

	AuditUC usecase.AuditUsecase
	Logger  *slog.Logger
}

// AuditHandler holds dependencies for the admin action trail handlers
type AuditHandler struct {
	auditUC usecase.AuditUsecase
	logger  *slog.Logger
}

// NewAuditHandler is the constructor for AuditHandler
func NewAuditHandler(params AuditHandlerParams) *AuditHandler {
	return &AuditHandler{
		auditUC: params.AuditUC,
		logger:  params.Logger,
	}
}

// ListLogs returns the most recent action log records, newest first.
func (h *AuditHandler) ListLogs(c echo.Context) error {
	logs, err := h.auditUC.ListLogs(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, logs, "")
}
