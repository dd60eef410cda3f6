package charts

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
)

// ErrNoData indica que não há pontos para desenhar
var ErrNoData = errors.New("no data to render")

// GenrePalette são as cores das barras de gênero, repetidas em ciclo
var GenrePalette = []string{"#22c55e", "#0ea5e9", "#a855f7", "#eab308", "#f97316", "#fb7185", "#38bdf8", "#2dd4bf"}

const GlobalSalesColor = "#38bdf8"

// RegionColors são as cores fixas das linhas do gráfico regional
var RegionColors = map[domain.Region]string{
	domain.RegionNA:    "#f97316",
	domain.RegionEU:    "#22c55e",
	domain.RegionJP:    "#a855f7",
	domain.RegionOther: "#94a3b8",
}

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title      string
	Subtitle   string
	YAxisLabel string
	XAxisLabel string
	Width      string
	Height     string
	Theme      string
	ShowLegend bool
	Smooth     bool
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig(theme string) ChartConfig {
	if theme == "" {
		theme = "chalk"
	}
	return ChartConfig{
		Width:      "900px",
		Height:     "500px",
		Theme:      theme,
		ShowLegend: true,
		Smooth:     true,
		YAxisLabel: "Sales (millions)",
	}
}

func globalOptions(config ChartConfig) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(config.ShowLegend),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: config.XAxisLabel,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: config.YAxisLabel,
		}),
	}
}

// RenderGenreChart desenha as vendas globais por gênero em barras, uma cor por gênero
func RenderGenreChart(w io.Writer, data []domain.GenreSales, config ChartConfig) error {
	if len(data) == 0 {
		return ErrNoData
	}

	if config.Title == "" {
		config.Title = "Global Sales by Genre"
	}
	config.XAxisLabel = "Genre"
	config.ShowLegend = false

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(config)...)

	xLabels := make([]string, len(data))
	yData := make([]opts.BarData, len(data))
	for i, point := range data {
		xLabels[i] = point.Genre
		yData[i] = opts.BarData{
			Name:  point.Genre,
			Value: point.GlobalSales,
			ItemStyle: &opts.ItemStyle{
				Color: GenrePalette[i%len(GenrePalette)],
			},
		}
	}

	bar.SetXAxis(xLabels).
		AddSeries("Global Sales", yData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}

// RenderYearlyChart desenha a tendência de vendas globais por ano
func RenderYearlyChart(w io.Writer, data []domain.YearSales, config ChartConfig) error {
	if len(data) == 0 {
		return ErrNoData
	}

	if config.Title == "" {
		config.Title = "Global Sales by Year"
	}
	config.XAxisLabel = "Year"

	line := charts.NewLine()
	line.SetGlobalOptions(append(globalOptions(config),
		charts.WithColorsOpts(opts.Colors{GlobalSalesColor}),
	)...)

	xLabels := make([]string, len(data))
	yData := make([]opts.LineData, len(data))
	for i, point := range data {
		xLabels[i] = strconv.Itoa(point.Year)
		yData[i] = opts.LineData{Value: point.GlobalSales}
	}

	line.SetXAxis(xLabels).
		AddSeries("Global Sales", yData).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(config.Smooth),
			}),
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}

// RenderRegionalChart desenha uma linha por região, com os anos no eixo X
func RenderRegionalChart(w io.Writer, data []domain.YearRegionSales, regions []domain.Region, config ChartConfig) error {
	if len(data) == 0 || len(regions) == 0 {
		return ErrNoData
	}

	if config.Title == "" {
		config.Title = "Regional Sales Trends"
	}
	config.XAxisLabel = "Year"

	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(config)...)

	xLabels := make([]string, len(data))
	for i, point := range data {
		xLabels[i] = strconv.Itoa(point.Year)
	}
	line.SetXAxis(xLabels)

	for _, region := range regions {
		yData := make([]opts.LineData, len(data))
		for i, point := range data {
			yData[i] = opts.LineData{Value: point.Sales[region]}
		}

		line.AddSeries(string(region), yData,
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(config.Smooth),
			}),
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: RegionColors[region],
			}),
			charts.WithLineStyleOpts(opts.LineStyle{
				Color: RegionColors[region],
			}),
		)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}
