package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shinyyama/companion-backend/internal/service"
	"github.com/shinyyama/companion-backend/internal/tarot"
)

type TarotHandler struct {
	svc service.TarotService
}

func NewTarotHandler(svc service.TarotService) *TarotHandler {
	return &TarotHandler{svc: svc}
}

type TarotResponse struct {
	Cards []tarot.Card `json:"cards"`
}

func (h *TarotHandler) Random(c echo.Context) error {
	count, _ := strconv.Atoi(c.QueryParam("count"))
	cards := h.svc.Draw(count)
	return c.JSON(http.StatusOK, TarotResponse{Cards: cards})
}
