package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"brandintel/internal/dataset"
)

type DatasetRepo struct {
	db *pgxpool.Pool
}

func NewDatasetRepo(db *pgxpool.Pool) *DatasetRepo {
	return &DatasetRepo{db: db}
}

// StoreRecords inserts response records in bulk.
func (r *DatasetRepo) StoreRecords(ctx context.Context, records []dataset.ResponseRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO response_record (id, date, category, country, platform, criteria, prompt, response, source_citation)
		VALUES %s
	`

	valueStrings := make([]string, 0, len(records))
	valueArgs := make([]interface{}, 0, len(records)*9)

	for i, rec := range records {
		idx := i*9 + 1
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				idx, idx+1, idx+2, idx+3, idx+4, idx+5, idx+6, idx+7, idx+8,
			))
		valueArgs = append(valueArgs,
			rec.ID, rec.Date, rec.Category, rec.Country, rec.Platform, rec.Criteria, rec.Prompt, rec.Response, rec.Source,
		)
	}

	finalQuery := fmt.Sprintf(query, strings.Join(valueStrings, ","))

	_, err := r.db.Exec(ctx, finalQuery, valueArgs...)
	return err
}

// LoadRecords reads the full dataset back, oldest first.
func (r *DatasetRepo) LoadRecords(ctx context.Context) ([]dataset.ResponseRecord, error) {
	query := `
		SELECT id, date, category, country, platform, criteria, prompt, response, source_citation
		FROM response_record
		ORDER BY date ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query response records: %w", err)
	}
	defer rows.Close()

	var records []dataset.ResponseRecord
	for rows.Next() {
		var rec dataset.ResponseRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Date,
			&rec.Category,
			&rec.Country,
			&rec.Platform,
			&rec.Criteria,
			&rec.Prompt,
			&rec.Response,
			&rec.Source,
		); err != nil {
			return nil, fmt.Errorf("scan response record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate response records: %w", err)
	}

	return records, nil
}
