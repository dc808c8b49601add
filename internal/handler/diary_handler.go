package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/service"
)

type DiaryHandler struct {
	svc service.DiaryService
}

func NewDiaryHandler(svc service.DiaryService) *DiaryHandler {
	return &DiaryHandler{svc: svc}
}

type DiaryItem struct {
	Diary   string `json:"diary"`
	Date    string `json:"date"`
	DateInt int    `json:"date_int"`
}

type DiaryListResponse struct {
	DiaryList []DiaryItem `json:"diary_list"`
}

// List returns diaries for an explicit date_int range, backfilling first.
func (h *DiaryHandler) List(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId is required"))
	}
	start, err := strconv.Atoi(c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid start"))
	}
	end, err := strconv.Atoi(c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid end"))
	}
	diaries, err := h.svc.GetDiaries(c.Request().Context(), userID, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.JSON(http.StatusOK, toDiaryListResponse(diaries))
}

// Recent is the last-7-days convenience fetch.
func (h *DiaryHandler) Recent(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId is required"))
	}
	diaries, err := h.svc.GetRecentDiaries(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.JSON(http.StatusOK, toDiaryListResponse(diaries))
}

func toDiaryListResponse(diaries []model.Diary) DiaryListResponse {
	resp := DiaryListResponse{DiaryList: make([]DiaryItem, 0, len(diaries))}
	for _, d := range diaries {
		resp.DiaryList = append(resp.DiaryList, DiaryItem{
			Diary:   d.Diary,
			Date:    d.Date,
			DateInt: d.DateInt,
		})
	}
	return resp
}
