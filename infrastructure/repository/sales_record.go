// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"math"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/vgsales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/vgsales-dashboard-api/internal/domain"
)

// SalesRecordRepository lê o dataset de vendas de uma tabela com as mesmas colunas do CSV em snake_case
type SalesRecordRepository struct {
	conn  postgres.Queryer
	table string
}

func NewSalesRecordRepository(conn postgres.Queryer, table string) *SalesRecordRepository {
	return &SalesRecordRepository{
		conn:  conn,
		table: table,
	}
}

func (r *SalesRecordRepository) Name() string {
	return "postgres:" + r.table
}

// Read carrega todos os registros com ano informado, na ordem do rank
func (r *SalesRecordRepository) Read(ctx context.Context) (*domain.Dataset, error) {
	sqlQuery, args, err := r.selectQuery().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building sales query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "querying table %s", r.table)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		record, ok, err := scanSalesRecord(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scanning sales record")
		}
		if ok {
			records = append(records, record)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating sales records")
	}

	return domain.NewDataset(records, domain.ExpectedColumns), nil
}

func (r *SalesRecordRepository) selectQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"rank",
			"name",
			"platform",
			"year",
			"genre",
			"publisher",
			"na_sales",
			"eu_sales",
			"jp_sales",
			"other_sales",
			"global_sales",
		).
		From(r.table).
		Where(squirrel.NotEq{"year": nil}).
		OrderBy("rank ASC").
		PlaceholderFormat(squirrel.Dollar)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanSalesRecord descarta (ok=false) linhas cujo ano não é um número finito.
// year pode ser INTEGER ou NUMERIC; "2006.0" vira 2006, como no CSV.
func scanSalesRecord(row rowScanner) (domain.SalesRecord, bool, error) {
	var (
		rank                                  sql.NullInt64
		name, platform, genre, publisher      sql.NullString
		year                                  sql.NullFloat64
		naSales, euSales, jpSales, otherSales sql.NullFloat64
		globalSales                           sql.NullFloat64
	)

	err := row.Scan(
		&rank,
		&name,
		&platform,
		&year,
		&genre,
		&publisher,
		&naSales,
		&euSales,
		&jpSales,
		&otherSales,
		&globalSales,
	)
	if err != nil {
		return domain.SalesRecord{}, false, err
	}

	if !year.Valid || math.IsNaN(year.Float64) || math.IsInf(year.Float64, 0) {
		return domain.SalesRecord{}, false, nil
	}

	return domain.SalesRecord{
		Rank:        int(rank.Int64),
		Name:        name.String,
		Platform:    platform.String,
		Year:        int(year.Float64),
		Genre:       genre.String,
		Publisher:   publisher.String,
		NASales:     naSales.Float64,
		EUSales:     euSales.Float64,
		JPSales:     jpSales.Float64,
		OtherSales:  otherSales.Float64,
		GlobalSales: globalSales.Float64,
	}, true, nil
}
