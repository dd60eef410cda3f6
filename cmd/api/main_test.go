package main

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/vgsales-dashboard-api/internal/config"
	"github.com/vfg2006/vgsales-dashboard-api/internal/dataset"
)

func TestDatasetFailureMessage(t *testing.T) {
	csvConfig := &config.Config{Dataset: config.Dataset{Source: config.DatasetSourceCSV, Path: "dataset/vgsales.csv"}}
	pgConfig := &config.Config{Dataset: config.Dataset{Source: config.DatasetSourcePostgres, Table: "vgsales"}}

	tests := []struct {
		name string
		cfg  *config.Config
		err  error
		want string
	}{
		{
			name: "arquivo ausente",
			cfg:  csvConfig,
			err:  pkgerrors.Wrapf(dataset.ErrDatasetNotFound, "file %q", "dataset/vgsales.csv"),
			want: "dataset file 'dataset/vgsales.csv' not found. Place the dataset in the dataset/ directory or set DATASET_PATH",
		},
		{
			name: "coluna obrigatória ausente",
			cfg:  csvConfig,
			err:  fmt.Errorf("%w: Year", dataset.ErrMissingColumn),
			want: "dataset 'dataset/vgsales.csv' is not a valid video game sales file: required column missing from dataset: Year",
		},
		{
			name: "tabela inacessível",
			cfg:  pgConfig,
			err:  errors.New(`pq: relation "vgsales" does not exist`),
			want: "could not read table 'vgsales' from postgres. Check DATABASE_URL and DATASET_TABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, datasetFailureMessage(tt.cfg, tt.err))
		})
	}
}
