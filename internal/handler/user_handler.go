package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shinyyama/companion-backend/internal/model"
	"github.com/shinyyama/companion-backend/internal/service"
	"github.com/shinyyama/companion-backend/internal/task"
)

type UserHandler struct {
	userSvc   service.UserService
	growthSvc service.GrowthService
}

func NewUserHandler(userSvc service.UserService, growthSvc service.GrowthService) *UserHandler {
	return &UserHandler{userSvc: userSvc, growthSvc: growthSvc}
}

type CreateUserRequest struct {
	UserID       string `json:"userId"`
	UserNickName string `json:"userNickName"`
	AIAgentName  string `json:"aiAgentName"`
}

type UpdateUserRequest struct {
	UserNickName *string `json:"userNickName"`
	AIAgentName  *string `json:"aiAgentName"`
	AgentID      *string `json:"agentId"`
}

type LoginRequest struct {
	Code         string `json:"code"`
	UserNickName string `json:"userNickName"`
	AIAgentName  string `json:"aiAgentName"`
}

type UserStatusResponse struct {
	UserID        string `json:"userId"`
	UserNickName  string `json:"userNickName"`
	AIAgentName   string `json:"aiAgentName"`
	Status        string `json:"status"`
	CurrentPoints int    `json:"currentPoints"`
	TotalPoints   int    `json:"totalPoints"`
	ElapsedDays   int    `json:"elapsedDays"`
}

type UserTaskResponse struct {
	TaskType      string `json:"taskType"`
	TaskName      string `json:"taskName"`
	Progress      int    `json:"progress"`
	RequiredProgress int `json:"requiredProgress"`
	IsCompleted   bool   `json:"isCompleted"`
	PointsClaimed bool   `json:"pointsClaimed"`
}

type UserGrowthResponse struct {
	CurrentPoints int                `json:"currentPoints"`
	TotalPoints   int                `json:"totalPoints"`
	Tasks         []UserTaskResponse `json:"tasks"`
}

func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "userId is required"))
	}
	if _, err := h.userSvc.Create(c.Request().Context(), req.UserID, req.UserNickName, req.AIAgentName); err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User created successfully"})
}

func (h *UserHandler) Update(c echo.Context) error {
	userID := c.Param("userId")
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	err := h.userSvc.Update(c.Request().Context(), userID, req.UserNickName, req.AIAgentName, req.AgentID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User updated successfully"})
}

func (h *UserHandler) GetStatus(c echo.Context) error {
	userID := c.Param("userId")
	info, err := h.userSvc.GetStatus(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch user status"))
	}
	return c.JSON(http.StatusOK, UserStatusResponse{
		UserID:        info.User.UserID,
		UserNickName:  info.User.UserNickName,
		AIAgentName:   info.User.AIAgentName,
		Status:        string(info.User.Status),
		CurrentPoints: info.CurrentPoints,
		TotalPoints:   info.TotalPoints,
		ElapsedDays:   info.ElapsedDays,
	})
}

func (h *UserHandler) GetGrowth(c echo.Context) error {
	userID := c.Param("userId")
	info, err := h.growthSvc.GetGrowth(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user growth not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch user growth"))
	}
	resp := UserGrowthResponse{
		CurrentPoints: info.CurrentPoints,
		TotalPoints:   info.TotalPoints,
		Tasks:         make([]UserTaskResponse, 0, len(info.Tasks)),
	}
	for i := range info.Tasks {
		resp.Tasks = append(resp.Tasks, toUserTaskResponse(&info.Tasks[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) AdvanceTask(c echo.Context) error {
	userID := c.Param("userId")
	taskType := task.Type(c.Param("taskType"))
	t, err := h.growthSvc.AdvanceTask(c.Request().Context(), userID, taskType)
	if err != nil {
		return h.taskError(c, err)
	}
	return c.JSON(http.StatusOK, toUserTaskResponse(t))
}

func (h *UserHandler) CompleteTask(c echo.Context) error {
	userID := c.Param("userId")
	taskType := task.Type(c.Param("taskType"))
	t, err := h.growthSvc.CompleteTask(c.Request().Context(), userID, taskType)
	if err != nil {
		return h.taskError(c, err)
	}
	return c.JSON(http.StatusOK, toUserTaskResponse(t))
}

func (h *UserHandler) ClaimTaskPoints(c echo.Context) error {
	userID := c.Param("userId")
	taskType := task.Type(c.Param("taskType"))
	points, err := h.growthSvc.ClaimTaskPoints(c.Request().Context(), userID, taskType)
	if err != nil {
		if errors.Is(err, service.ErrRewardUnavailable) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "task not completed or reward already claimed"))
		}
		return h.taskError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"pointsAwarded": points})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	user, err := h.userSvc.Login(c.Request().Context(), req.Code, req.UserNickName, req.AIAgentName)
	if err != nil {
		if errors.Is(err, service.ErrLoginRejected) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "login rejected"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]string{
		"userId": user.UserID,
		"status": string(user.Status),
	})
}

func (h *UserHandler) taskError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownTask):
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "unknown task type"))
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "task not found"))
	default:
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", err.Error()))
	}
}

func toUserTaskResponse(t *model.UserTask) UserTaskResponse {
	required := t.Progress
	if spec, ok := task.Lookup(task.Type(t.TaskType)); ok {
		required = spec.RequiredProgress
	}
	return UserTaskResponse{
		TaskType:         t.TaskType,
		TaskName:         t.TaskName,
		Progress:         t.Progress,
		RequiredProgress: required,
		IsCompleted:      t.IsCompleted,
		PointsClaimed:    t.PointsClaimed,
	}
}
