// Package devseed populates the local record store with sample models so
// the list views render something useful in standalone development mode.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/modelgrid/modelgrid/internal/data"
	"github.com/modelgrid/modelgrid/internal/domain/model"
)

// Seed registers sample schemas and records. It is idempotent for
// schemas; records are only inserted when the model is empty.
func Seed(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	repo := data.NewRecordRepo(db)

	for _, m := range sampleModels() {
		if err := repo.UpsertSchema(ctx, m.identity, m.schema); err != nil {
			return fmt.Errorf("seed schema %s: %w", m.identity, err)
		}

		page, err := repo.ListRecords(ctx, m.identity, model.PageQuery{Limit: 1})
		if err != nil {
			return fmt.Errorf("inspect %s: %w", m.identity, err)
		}
		if page.Count > 0 {
			continue
		}

		if err := repo.InsertRecords(ctx, m.identity, m.records); err != nil {
			return fmt.Errorf("seed records %s: %w", m.identity, err)
		}
		logger.InfoContext(ctx, "seeded model", "model", m.identity.String(), "records", len(m.records))
	}
	return nil
}

type sampleModel struct {
	identity model.RouteIdentity
	schema   model.Schema
	records  []model.Record
}

func sampleModels() []sampleModel {
	return []sampleModel{
		{
			identity: model.RouteIdentity{AppName: "dcim", ModelName: "devices"},
			schema: model.Schema{
				Properties: model.NewOrderedProperties(
					model.OrderedProperty{Name: "name", Field: model.FieldSchema{Title: "Name", Type: "string"}},
					model.OrderedProperty{Name: "status", Field: model.FieldSchema{Title: "Status", Type: "string"}},
					model.OrderedProperty{Name: "site", Field: model.FieldSchema{Title: "Site", Type: "object"}},
					model.OrderedProperty{Name: "serial", Field: model.FieldSchema{Title: "Serial Number", Type: "string"}},
				),
				ListDisplay: []string{"name", "status", "site"},
			},
			records: []model.Record{
				{"name": "edge-router-1", "status": "active", "site": map[string]any{"name": "AMS1"}, "serial": "FX31907"},
				{"name": "edge-router-2", "status": "active", "site": map[string]any{"name": "AMS1"}, "serial": "FX31908"},
				{"name": "access-switch-1", "status": "offline", "site": map[string]any{"name": "FRA2"}, "serial": "SW90112"},
			},
		},
		{
			identity: model.RouteIdentity{AppName: "circuits", ModelName: "circuit-types"},
			schema: model.Schema{
				Properties: model.NewOrderedProperties(
					model.OrderedProperty{Name: "name", Field: model.FieldSchema{Title: "Name", Type: "string"}},
					model.OrderedProperty{Name: "description", Field: model.FieldSchema{Title: "Description", Type: "string"}},
				),
				// Empty list_display: the view falls back to every column.
				ListDisplay: []string{},
			},
			records: []model.Record{
				{"name": "Dark Fiber", "description": "Point to point dark fiber"},
				{"name": "MPLS", "description": "Provider MPLS circuit"},
			},
		},
	}
}
