package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelgrid/modelgrid/internal/domain/model"
	apperrors "github.com/modelgrid/modelgrid/internal/errors"
)

// RecordRepo implements core.ModelReader against the local Postgres
// record store. It backs standalone/dev deployments where no upstream
// REST layer is configured: schemas live in model_schemas, records as
// JSONB rows in model_records.
type RecordRepo struct {
	DB *sql.DB
}

// NewRecordRepo creates a new RecordRepo.
func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{DB: db}
}

// defaultStoreLimit bounds an unwindowed page read, mirroring the default
// the upstream REST layer would apply.
const defaultStoreLimit = 50

// GetSchema loads the model's schema document.
func (r *RecordRepo) GetSchema(ctx context.Context, id model.RouteIdentity) (model.Schema, error) {
	var (
		propsRaw []byte
		listRaw  []byte
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT properties, list_display
		FROM model_schemas
		WHERE app_name = $1 AND model_name = $2
	`, id.AppName, id.ModelName).Scan(&propsRaw, &listRaw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Schema{}, apperrors.NotFoundf("model %s is not registered", id)
		}
		return model.Schema{}, apperrors.MapDBError(err)
	}

	var schema model.Schema
	if err := json.Unmarshal(propsRaw, &schema.Properties); err != nil {
		return model.Schema{}, fmt.Errorf("decode schema properties for %s: %w", id, err)
	}
	if err := json.Unmarshal(listRaw, &schema.ListDisplay); err != nil {
		return model.Schema{}, fmt.Errorf("decode list_display for %s: %w", id, err)
	}
	return schema, nil
}

// ListRecords returns one page of records plus the total count for the
// model. A zero limit falls back to the store default.
func (r *RecordRepo) ListRecords(ctx context.Context, id model.RouteIdentity, pq model.PageQuery) (model.Page, error) {
	limit := pq.Limit
	if limit <= 0 {
		limit = defaultStoreLimit
	}
	offset := pq.Offset
	if offset < 0 {
		offset = 0
	}

	var count int
	if err := r.DB.QueryRowContext(ctx, `
		SELECT count(*) FROM model_records
		WHERE app_name = $1 AND model_name = $2
	`, id.AppName, id.ModelName).Scan(&count); err != nil {
		return model.Page{}, apperrors.MapDBError(err)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT data FROM model_records
		WHERE app_name = $1 AND model_name = $2
		ORDER BY id
		LIMIT $3 OFFSET $4
	`, id.AppName, id.ModelName, limit, offset)
	if err != nil {
		return model.Page{}, apperrors.MapDBError(err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	results := make([]model.Record, 0, limit)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return model.Page{}, apperrors.MapDBError(err)
		}
		var rec model.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return model.Page{}, fmt.Errorf("decode record for %s: %w", id, err)
		}
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return model.Page{}, apperrors.MapDBError(err)
	}

	return model.Page{Results: results, Count: count}, nil
}

// UpsertSchema registers or replaces a model's schema document. Used by
// the dev seeder.
func (r *RecordRepo) UpsertSchema(ctx context.Context, id model.RouteIdentity, schema model.Schema) error {
	propsRaw, err := json.Marshal(schema.Properties)
	if err != nil {
		return fmt.Errorf("encode schema properties for %s: %w", id, err)
	}
	listDisplay := schema.ListDisplay
	if listDisplay == nil {
		listDisplay = []string{}
	}
	listRaw, err := json.Marshal(listDisplay)
	if err != nil {
		return fmt.Errorf("encode list_display for %s: %w", id, err)
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO model_schemas (app_name, model_name, properties, list_display)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (app_name, model_name) DO UPDATE
		SET properties = EXCLUDED.properties,
		    list_display = EXCLUDED.list_display,
		    updated_at = now()
	`, id.AppName, id.ModelName, propsRaw, listRaw)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

// InsertRecords appends records for a model. Used by the dev seeder.
func (r *RecordRepo) InsertRecords(ctx context.Context, id model.RouteIdentity, records []model.Record) error {
	for _, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode record for %s: %w", id, err)
		}
		if _, err := r.DB.ExecContext(ctx, `
			INSERT INTO model_records (app_name, model_name, data)
			VALUES ($1, $2, $3)
		`, id.AppName, id.ModelName, raw); err != nil {
			return apperrors.MapDBError(err)
		}
	}
	return nil
}
