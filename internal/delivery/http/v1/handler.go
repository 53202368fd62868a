package v1

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/services"
)

type Handler interface {
	HandleRequestBoundary(c *gin.Context)
	HandleHealth(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetUserTasks(c *gin.Context)
	HandleCompleteTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

// Pinger reports whether the storage behind the services is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type handlerImpl struct {
	logger           zerolog.Logger
	tasks            services.TaskService
	storage          Pinger
	validator        *requestValidator
	newCorrelationID func() string
	now              func() time.Time
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	storage Pinger,
) (Handler, error) {
	reqValidator, err := newRequestValidator(time.Now)
	if err != nil {
		return nil, err
	}

	newCorrelationID, err := newCorrelationIDGenerator()
	if err != nil {
		return nil, err
	}

	return &handlerImpl{
		logger:           logger,
		tasks:            taskService,
		storage:          storage,
		validator:        reqValidator,
		newCorrelationID: newCorrelationID,
		now:              time.Now,
	}, nil
}

// RegisterRoutes mounts the handler on router. The request boundary
// wraps every route.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.Use(h.HandleRequestBoundary)
	router.GET("/health", h.HandleHealth)

	tasks := router.Group("/api/tasks")
	{
		tasks.POST("", h.HandleCreateTask)
		tasks.GET("/:id", h.HandleGetUserTasks)
		tasks.PUT("/:id/complete", h.HandleCompleteTask)
		tasks.DELETE("/:id", h.HandleDeleteTask)
	}
}
