package dataset

import (
	"context"
	"sync"

	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
)

// Source é uma origem de dados capaz de produzir o dataset completo
type Source interface {
	Name() string
	Read(ctx context.Context) (*domain.Dataset, error)
}

// Loader lê a origem uma única vez e devolve sempre o mesmo dataset
type Loader struct {
	source  Source
	once    sync.Once
	dataset *domain.Dataset
	err     error
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load é idempotente: chamadas seguintes retornam o resultado da primeira leitura, inclusive o erro
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	l.once.Do(func() {
		logger := log.ForContext(ctx).WithField("source", l.source.Name())
		logger.Info("dataset: loading")

		l.dataset, l.err = l.source.Read(ctx)
		if l.err != nil {
			logger.WithError(l.err).Error("dataset: load failed")
			return
		}

		logger.WithField("records", l.dataset.Len()).Info("dataset: loaded")
	})

	return l.dataset, l.err
}
