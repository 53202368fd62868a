package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/services"
)

const invalidIDMessage = "Invalid ID format"

type taskResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreationDate time.Time `json:"creationDate"`
	DueDate      time.Time `json:"dueDate"`
	IsCompleted  bool      `json:"isCompleted"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:           task.ID().String(),
		Title:        task.Title,
		Description:  task.Description,
		CreationDate: task.CreatedAt(),
		DueDate:      task.DueAt,
		IsCompleted:  task.IsCompleted(),
	}
}

func newTaskResponses(tasks []*models.Task) []taskResponse {
	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}
	return response
}

type createTaskRequest struct {
	Title       string    `json:"title" validate:"notblank,min=3,max=200"`
	Description *string   `json:"description" validate:"omitempty,max=1000"`
	DueDate     time.Time `json:"dueDate" validate:"required,due_min_lead,due_max_horizon"`
	UserID      string    `json:"userId" validate:"required,owner_id"`
}

// newCreateTaskParams expects req to be validated.
func newCreateTaskParams(req *createTaskRequest) *services.CreateTaskParams {
	params := &services.CreateTaskParams{
		Title:  req.Title,
		DueAt:  req.DueDate.UTC(),
		UserID: uuid.MustParse(req.UserID),
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	return params
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		_ = c.Error(services.NewBusinessError("Invalid request body"))
		return
	}

	err = h.validator.ValidateCreateTask(&req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), newCreateTaskParams(&req))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", "/api/tasks/"+task.UserID().String())
	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleGetUserTasks(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	tasks, err := h.tasks.GetUserTasks(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponses(tasks))
}

func (h *handlerImpl) HandleCompleteTask(c *gin.Context) {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	err = h.tasks.CompleteTask(c.Request.Context(), taskID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	err = h.tasks.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseIDParam reads the ":id" route segment. field names it in the
// validation failure.
func parseIDParam(c *gin.Context, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, services.NewValidationErrorFromFields(map[string][]string{
			field: {invalidIDMessage},
		})
	}
	return id, nil
}
