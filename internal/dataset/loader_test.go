package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
)

type countingSource struct {
	reads int
	ds    *domain.Dataset
	err   error
}

func (s *countingSource) Name() string { return "counting" }

func (s *countingSource) Read(ctx context.Context) (*domain.Dataset, error) {
	s.reads++
	return s.ds, s.err
}

func TestLoader_ReadsOnce(t *testing.T) {
	source := &countingSource{
		ds: domain.NewDataset([]domain.SalesRecord{{Year: 2001, Genre: "Action", GlobalSales: 1}}, domain.ExpectedColumns),
	}
	loader := NewLoader(source)

	first, err := loader.Load(context.Background())
	require.NoError(t, err)

	second, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, source.reads)
}

func TestLoader_CachesError(t *testing.T) {
	source := &countingSource{err: errors.New("boom")}
	loader := NewLoader(source)

	_, err := loader.Load(context.Background())
	assert.EqualError(t, err, "boom")

	_, err = loader.Load(context.Background())
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 1, source.reads)
}
