// Package server exposes the hazard engine over HTTP. It is a thin
// boundary layer: handlers validate requests and delegate every computation
// to the pkg/ packages.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Controller represents the hazard REST server
type Controller struct {
	ctx      context.Context
	wg       *sync.WaitGroup
	Server   http.Server
	logger   *zap.SugaredLogger
	handlers *Handlers
}

// NewController creates a new REST server controller listening on addr.
func NewController(ctx context.Context, wg *sync.WaitGroup, addr string, logger *zap.SugaredLogger) *Controller {
	ctrl := &Controller{
		ctx:    ctx,
		wg:     wg,
		logger: logger,
	}
	ctrl.handlers = NewHandlers(ctrl)

	router := mux.NewRouter()
	router.HandleFunc("/api/hazard-curve", ctrl.handlers.HazardCurve).Methods(http.MethodPost)
	router.HandleFunc("/api/disaggregation", ctrl.handlers.Disaggregation).Methods(http.MethodPost)
	router.HandleFunc("/api/periods", ctrl.handlers.Periods).Methods(http.MethodGet)
	router.Use(ctrl.requestLogger)

	ctrl.Server = http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return ctrl
}

// Start runs the HTTP server and shuts it down when the controller's
// context is cancelled.
func (c *Controller) Start() error {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		<-c.ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Server.Shutdown(shutdownCtx); err != nil {
			c.logger.Errorf("error shutting down REST server: %v", err)
		}
	}()

	c.logger.Infof("starting hazard REST server on %s", c.Server.Addr)
	if err := c.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
