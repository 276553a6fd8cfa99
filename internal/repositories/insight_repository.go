package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"transaction-insights/internal/models"

	"gorm.io/gorm"
)

type insightRepository struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) InsightRepositoryInterface {
	return &insightRepository{
		db: db,
	}
}

// Run executes a parameterized query and returns its rows. An empty result
// is an empty slice. Failures are wrapped as "database error".
//
// Rows are scanned into plain interface values rather than through gorm's
// typed scan, which would read NUMERIC as float64 on pgx. NUMERIC and
// DECIMAL columns come back as exact decimal text.
func (r *insightRepository) Run(ctx context.Context, query models.Query) ([]models.Row, error) {
	sqlRows, err := r.db.WithContext(ctx).Raw(query.SQL, query.Args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer sqlRows.Close()

	rows, err := scanRows(sqlRows)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return rows, nil
}

func scanRows(sqlRows *sql.Rows) ([]models.Row, error) {
	columns, err := sqlRows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	rows := make([]models.Row, 0)
	values := make([]any, len(columns))
	targets := make([]any, len(columns))
	for sqlRows.Next() {
		for i := range values {
			values[i] = nil
			targets[i] = &values[i]
		}
		if err := sqlRows.Scan(targets...); err != nil {
			return nil, err
		}

		row := make(models.Row, len(columns))
		for i, col := range columns {
			row[col.Name()] = values[i]
		}
		row.Normalize()

		for _, col := range columns {
			if !isNumericType(col.DatabaseTypeName()) {
				continue
			}
			text, err := row.DecimalText(col.Name())
			if err != nil {
				return nil, err
			}
			if text != "" {
				row[col.Name()] = text
			}
		}
		rows = append(rows, row)
	}
	return rows, sqlRows.Err()
}

func isNumericType(name string) bool {
	switch strings.ToUpper(name) {
	case "NUMERIC", "DECIMAL":
		return true
	}
	return false
}
