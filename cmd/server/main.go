package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brunohenrs/northstar/internal/config"
	"github.com/brunohenrs/northstar/internal/container"
	"github.com/brunohenrs/northstar/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		GoalHandler:     c.GoalContainer.Handler,
		TaskHandler:     c.TaskContainer.Handler,
		FocusHandler:    c.FocusContainer.Handler,
		ProgressHandler: c.ProgressContainer.Handler,
		HealthHandler:   c.HealthHandler,
	})

	srv := &http.Server{
		Addr:         ":" + config.Port(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Forced shutdown")
	}
	if err := c.Store.Close(); err != nil {
		logrus.WithError(err).Error("Failed to close storage")
	}
}
