package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// serve will create and run a server for our application.
func (app *application) serve() error {
	// Cancelled on return, which stops the middleware's background goroutines.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.Port),
		Handler:      app.routes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		// Errors from the http.Server are written through our logger at the ERROR level.
		ErrorLog: log.New(app.logger, "", 0),
	}

	shutdownError := make(chan error)

	// Spin up a goroutine that will just listen for OS signals.
	// This goroutine will intercept the SIGINT and SIGTERM signals and shut the server down gracefully.
	go func() {
		quit := make(chan os.Signal, 1)

		// Listen for the given signals.
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		// This line will block until a signal is received.
		s := <-quit

		app.logger.PrintInfo("shutting down server", map[string]string{
			"signal": s.String(),
		})

		// In-flight requests get 20 seconds to complete.
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.PrintInfo("starting server", map[string]string{
		"addr": srv.Addr,
		"env":  app.config.Env,
	})

	// ListenAndServe returns http.ErrServerClosed as soon as Shutdown is called.
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// Wait for Shutdown to finish draining connections.
	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.PrintInfo("stopped server", map[string]string{
		"addr": srv.Addr,
	})

	return nil
}
