package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shinyyama/companion-backend/internal/service"
)

type SummaryHandler struct {
	svc service.SummaryService
}

func NewSummaryHandler(svc service.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

type SummaryRequest struct {
	UserID string `json:"userId"`
}

func (h *SummaryHandler) Generate(c echo.Context) error {
	var req SummaryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if strings.TrimSpace(req.UserID) == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId is required"))
	}
	summary, err := h.svc.GenerateSummary(c.Request().Context(), req.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("upstream_error", err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]string{"summary": summary})
}
