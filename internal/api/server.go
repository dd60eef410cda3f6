package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vgsales-dashboard-api/internal/api/handler"
	"github.com/vfg2006/vgsales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/vgsales-dashboard-api/internal/charts"
	"github.com/vfg2006/vgsales-dashboard-api/internal/config"
	"github.com/vfg2006/vgsales-dashboard-api/internal/export"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/predicting"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	dashboardService dashboarding.Dashboarder,
	predictionService predicting.Predictor,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, dashboardService, predictionService),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta rotas e middlewares; separado de New para uso em testes com httptest
func NewHandler(
	config *config.Config,
	dashboardService dashboarding.Dashboarder,
	predictionService predicting.Predictor,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(dashboardService, export.NewExcelExporter())...),
		router.WithRoutes(handler.Charts(dashboardService, charts.DefaultChartConfig(config.Charts.Theme))...),
		router.WithRoutes(handler.Predictions(predictionService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

const shutdownTimeout = 15 * time.Second

// Run atende requisições até receber SIGINT/SIGTERM, o contexto ser cancelado ou o listener falhar
func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("server: listening")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case sig := <-done:
		logrus.WithField("signal", sig.String()).Info("server: signal received")
	case <-ctx.Done():
		logrus.Info("server: context cancelled")
	case err, ok := <-serveErr:
		if ok {
			logrus.WithError(err).Error("server: listener failed")
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("server: shutting down")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: shutdown failed")
		return err
	}

	logrus.Info("server: stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
