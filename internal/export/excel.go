package export

import (
	"fmt"
	"io"

	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary = "Summary"
	SheetGenre   = "Genre"
	SheetYearly  = "Yearly"
	SheetRegions = "Regions"
)

const headerBgColor = "1E293B"

// sheet é uma tabela com cabeçalho, gravada em uma aba própria.
// Valores de vendas vão arredondados em duas casas.
type sheet struct {
	name    string
	headers []string
	rows    [][]any
}

// ExcelExporter gera a planilha do dashboard filtrado usando excelize
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export escreve uma aba por visão do dashboard: Summary, Genre, Yearly e Regions
func (e *ExcelExporter) Export(dashboard *domain.DashboardResponse, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{headerBgColor},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, s := range buildSheets(dashboard) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}

		if err := writeSheet(f, s, headerStyle); err != nil {
			return fmt.Errorf("failed to write sheet %s: %w", s.name, err)
		}
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}

	return nil
}

func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	for col, header := range s.headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.name, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(s.name, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for r, row := range s.rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(s.name, cell, value); err != nil {
				return err
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(s.headers))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(s.name, "A", lastCol, 18); err != nil {
		return err
	}

	if err := f.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if len(s.rows) > 0 {
		return f.AutoFilter(s.name, fmt.Sprintf("A1:%s%d", lastCol, len(s.rows)+1), nil)
	}

	return nil
}

func buildSheets(d *domain.DashboardResponse) []sheet {
	genre := d.Filters.Genre
	if genre == domain.AllGenres {
		genre = "All"
	}

	summary := sheet{
		name:    SheetSummary,
		headers: []string{"Metric", "Value"},
		rows: [][]any{
			{"Year from", d.Filters.YearMin},
			{"Year to", d.Filters.YearMax},
			{"Genre", genre},
			{"Total Global Sales (millions)", utils.RoundWithTwoDecimalPlace(d.Metrics.TotalGlobalSales)},
			{"Records", d.Metrics.RecordCount},
			{"Mean Global Sales (millions)", utils.RoundWithTwoDecimalPlace(d.Metrics.MeanGlobalSales)},
			{"Top Genre", d.Metrics.TopGenre},
		},
	}

	byGenre := sheet{
		name:    SheetGenre,
		headers: []string{"Genre", "Global Sales (millions)"},
		rows:    make([][]any, 0, len(d.SalesByGenre)),
	}
	for _, g := range d.SalesByGenre {
		byGenre.rows = append(byGenre.rows, []any{g.Genre, utils.RoundWithTwoDecimalPlace(g.GlobalSales)})
	}

	byYear := sheet{
		name:    SheetYearly,
		headers: []string{"Year", "Global Sales (millions)"},
		rows:    make([][]any, 0, len(d.SalesByYear)),
	}
	for _, y := range d.SalesByYear {
		byYear.rows = append(byYear.rows, []any{y.Year, utils.RoundWithTwoDecimalPlace(y.GlobalSales)})
	}

	byRegion := sheet{
		name:    SheetRegions,
		headers: []string{"Year"},
		rows:    make([][]any, 0, len(d.SalesByRegion)),
	}
	for _, region := range d.Regions {
		byRegion.headers = append(byRegion.headers, region.Column())
	}
	for _, y := range d.SalesByRegion {
		row := []any{y.Year}
		for _, region := range d.Regions {
			row = append(row, utils.RoundWithTwoDecimalPlace(y.Sales[region]))
		}
		byRegion.rows = append(byRegion.rows, row)
	}

	return []sheet{summary, byGenre, byYear, byRegion}
}
