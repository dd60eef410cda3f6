package charts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
)

func TestRenderGenreChart(t *testing.T) {
	var buf bytes.Buffer

	err := RenderGenreChart(&buf, []domain.GenreSales{
		{Genre: "Action", GlobalSales: 4.0},
		{Genre: "Sports", GlobalSales: 2.0},
	}, DefaultChartConfig(""))
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Global Sales by Genre")
	assert.Contains(t, html, "Action")
	assert.Contains(t, html, GenrePalette[0])
	assert.Contains(t, html, GenrePalette[1])
}

func TestRenderYearlyChart(t *testing.T) {
	var buf bytes.Buffer

	err := RenderYearlyChart(&buf, []domain.YearSales{
		{Year: 2000, GlobalSales: 1.0},
		{Year: 2001, GlobalSales: 5.0},
	}, DefaultChartConfig("dark"))
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "2001")
	assert.Contains(t, html, GlobalSalesColor)
}

func TestRenderRegionalChart(t *testing.T) {
	var buf bytes.Buffer

	err := RenderRegionalChart(&buf, []domain.YearRegionSales{
		{Year: 2000, Sales: map[domain.Region]float64{domain.RegionNA: 0.5, domain.RegionJP: 0.1}},
		{Year: 2001, Sales: map[domain.Region]float64{domain.RegionNA: 2.5, domain.RegionJP: 0.5}},
	}, []domain.Region{domain.RegionNA, domain.RegionJP}, DefaultChartConfig(""))
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, RegionColors[domain.RegionNA])
	assert.Contains(t, html, RegionColors[domain.RegionJP])
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer

	assert.ErrorIs(t, RenderGenreChart(&buf, nil, DefaultChartConfig("")), ErrNoData)
	assert.ErrorIs(t, RenderYearlyChart(&buf, []domain.YearSales{}, DefaultChartConfig("")), ErrNoData)
	assert.ErrorIs(t, RenderRegionalChart(&buf, []domain.YearRegionSales{{Year: 2000}}, nil, DefaultChartConfig("")), ErrNoData)
	assert.Zero(t, buf.Len())
}
