package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-manager/internal/config"
	v1 "github.com/adanyl0v/go-task-manager/internal/delivery/http/v1"
	"github.com/adanyl0v/go-task-manager/internal/services"
)

// ListenAndServeHTTP serves the API until the process receives SIGINT or
// SIGTERM and returns the exit code of the shutdown.
func ListenAndServeHTTP() int {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	mustRegisterRoutes(router)

	server := &http.Server{
		Addr:              net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler:           router,
		ReadHeaderTimeout: httpCfg.ReadHeaderTimeout,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		httpCfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				globalLogger.Info().Msg("shutting down http server")
				err := server.Shutdown(ctx)
				if err != nil {
					globalLogger.Error().
						Err(err).
						Msg("failed to shutdown http server")
					return err
				}
				globalLogger.Info().Msg("shut down http server")
				return nil
			},
		},
	)

	exitCode := <-wait
	globalLogger.Info().
		Int("exit_code", exitCode).
		Msg("http server exited")
	return exitCode
}

func mustRegisterRoutes(router gin.IRouter) {
	taskService := services.NewTaskService(globalLogger, globalTaskRepository)

	v1Handler, err := v1.New(globalLogger, taskService, globalTaskRepository)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to create http handler")
		panic(err)
	}
	v1.RegisterRoutes(router, v1Handler)
}
