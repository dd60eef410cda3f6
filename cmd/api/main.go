package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vgsales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/vgsales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/vgsales-dashboard-api/internal/api"
	"github.com/vfg2006/vgsales-dashboard-api/internal/config"
	"github.com/vfg2006/vgsales-dashboard-api/internal/dataset"
	"github.com/vfg2006/vgsales-dashboard-api/internal/inference"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/vgsales-dashboard-api/internal/usecases/predicting"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
)

const datasetLoadTimeout = 30 * time.Second

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if level, ok := log.Configure(cfg.App.LogLevel); !ok {
		logrus.Warnf("invalid log level %q, falling back to %s", cfg.App.LogLevel, level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource := datasetSource(ctx, cfg)
	defer closeSource()

	loadCtx, cancelLoad := context.WithTimeout(ctx, datasetLoadTimeout)
	ds, err := dataset.NewLoader(source).Load(loadCtx)
	cancelLoad()
	if err != nil {
		logrus.WithError(err).Fatal(datasetFailureMessage(cfg, err))
	}

	// Falha na carga do modelo não impede a inicialização: o dashboard segue sem previsões
	model, modelErr := inference.NewLoader(
		cfg.Model.Paths,
		inference.WithRemoteTimeout(cfg.Model.RemoteTimeout),
	).Load()

	predictionService := predicting.NewPredictionService(model, modelErr)
	dashboardService := dashboarding.NewDashboardService(ds, predictionService)

	server, err := api.New(cfg, dashboardService, predictionService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// datasetSource escolhe a origem conforme DATASET_SOURCE. O retorno close libera a conexão, se houver.
func datasetSource(ctx context.Context, cfg *config.Config) (dataset.Source, func()) {
	if cfg.Dataset.Source != config.DatasetSourcePostgres {
		return dataset.NewCSVSource(cfg.Dataset.Path), func() {}
	}

	conn := pgconn(ctx, cfg.Database)
	return repository.NewSalesRecordRepository(conn, cfg.Dataset.Table), func() {
		_ = conn.Close()
	}
}

// datasetFailureMessage orienta o usuário a corrigir a origem do dataset
func datasetFailureMessage(cfg *config.Config, err error) string {
	switch {
	case errors.Is(err, dataset.ErrDatasetNotFound):
		return fmt.Sprintf("dataset file '%s' not found. Place the dataset in the dataset/ directory or set DATASET_PATH", cfg.Dataset.Path)
	case errors.Is(err, dataset.ErrMissingColumn), errors.Is(err, dataset.ErrEmptyDataset):
		return fmt.Sprintf("dataset '%s' is not a valid video game sales file: %v", cfg.Dataset.Path, err)
	case cfg.Dataset.Source == config.DatasetSourcePostgres:
		return fmt.Sprintf("could not read table '%s' from postgres. Check DATABASE_URL and DATASET_TABLE", cfg.Dataset.Table)
	default:
		return fmt.Sprintf("could not load dataset '%s'", cfg.Dataset.Path)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to postgres. Check DATABASE_URL, DATABASE_USER and DATABASE_PASSWORD")
	}

	logrus.Info("postgres: connection established")
	return conn
}
