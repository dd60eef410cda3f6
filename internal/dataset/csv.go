package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
	"github.com/vfg2006/vgsales-dashboard-api/pkg/log"
)

// ParseStats resume a limpeza aplicada durante a leitura
type ParseStats struct {
	RowsRead           int
	DroppedMissingYear int
	DroppedBadSales    int
	MalformedRows      int
}

// Dropped retorna o total de linhas descartadas
func (s ParseStats) Dropped() int {
	return s.DroppedMissingYear + s.DroppedBadSales + s.MalformedRows
}

// CSVSource lê o dataset de um arquivo CSV com o cabeçalho do vgsales
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Name() string {
	return "csv:" + s.path
}

func (s *CSVSource) Read(ctx context.Context) (*domain.Dataset, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pkgerrors.Wrapf(ErrDatasetNotFound, "file %q", s.path)
		}
		return nil, pkgerrors.Wrapf(err, "dataset: opening %s", s.path)
	}
	defer func() { _ = file.Close() }()

	ds, stats, err := ParseCSV(file)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "dataset: parsing %s", s.path)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"path":                 s.path,
		"rows_read":            stats.RowsRead,
		"records":              ds.Len(),
		"dropped_missing_year": stats.DroppedMissingYear,
		"dropped_bad_sales":    stats.DroppedBadSales,
		"malformed_rows":       stats.MalformedRows,
	}).Info("dataset: csv parsed")

	return ds, nil
}

// ParseCSV lê o CSV completo. Linhas sem ano válido são descartadas e o ano é convertido para inteiro.
func ParseCSV(r io.Reader) (*domain.Dataset, ParseStats, error) {
	var stats ParseStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, stats, ErrEmptyDataset
	}
	if err != nil {
		return nil, stats, pkgerrors.Wrap(err, "reading header")
	}

	cols := parseHeader(header)
	for _, required := range domain.RequiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, stats, pkgerrors.Wrapf(ErrMissingColumn, "column %s", required)
		}
	}

	present := make([]string, 0, len(cols))
	for _, c := range domain.ExpectedColumns {
		if _, ok := cols[c]; ok {
			present = append(present, c)
		}
	}

	records := make([]domain.SalesRecord, 0, 1024)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		stats.RowsRead++
		if err != nil {
			log.L.Warnf("dataset: skipping malformed row %d: %v", stats.RowsRead, err)
			stats.MalformedRows++
			continue
		}

		year, ok := parseYear(field(row, cols, domain.ColumnYear))
		if !ok {
			stats.DroppedMissingYear++
			continue
		}

		record, ok := buildRecord(row, cols, year)
		if !ok {
			stats.DroppedBadSales++
			continue
		}

		records = append(records, record)
	}

	if stats.DroppedBadSales > 0 {
		log.L.Warnf("dataset: dropped %d rows with non-numeric sales values", stats.DroppedBadSales)
	}

	return domain.NewDataset(records, present), stats, nil
}

func parseHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		cols[name] = i
	}
	return cols
}

func field(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseYear aceita "2006" e "2006.0"; "N/A", vazio e valores não numéricos são rejeitados
func parseYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return int(f), true
}

// parseSales trata vazio como zero, igual à soma que ignora valores ausentes
func parseSales(s string) (float64, bool) {
	if s == "" {
		return 0, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

func buildRecord(row []string, cols map[string]int, year int) (domain.SalesRecord, bool) {
	rank, _ := strconv.Atoi(field(row, cols, domain.ColumnRank))

	record := domain.SalesRecord{
		Rank:      rank,
		Name:      field(row, cols, domain.ColumnName),
		Platform:  field(row, cols, domain.ColumnPlatform),
		Year:      year,
		Genre:     field(row, cols, domain.ColumnGenre),
		Publisher: field(row, cols, domain.ColumnPublisher),
	}

	sales := []struct {
		column string
		target *float64
	}{
		{domain.ColumnNASales, &record.NASales},
		{domain.ColumnEUSales, &record.EUSales},
		{domain.ColumnJPSales, &record.JPSales},
		{domain.ColumnOtherSales, &record.OtherSales},
		{domain.ColumnGlobalSales, &record.GlobalSales},
	}

	for _, s := range sales {
		v, ok := parseSales(field(row, cols, s.column))
		if !ok {
			return domain.SalesRecord{}, false
		}
		*s.target = v
	}

	return record, true
}
