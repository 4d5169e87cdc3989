// internal/catalog/loader.go
package catalog

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vaibhavisingh876/SwarSaathi/internal/common/config"
	"github.com/vaibhavisingh876/SwarSaathi/internal/common/errors"
	"github.com/vaibhavisingh876/SwarSaathi/internal/models"
)

//go:embed data/schemes.json
var seedFS embed.FS

// LoadEmbedded builds the catalog from the seed document compiled into
// the binary.
func LoadEmbedded() (*Catalog, error) {
	raw, err := seedFS.ReadFile("data/schemes.json")
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError("embedded", err)
	}
	return loadDocument(raw)
}

// LoadFile builds the catalog from a JSON document on disk.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}
	return loadDocument(raw)
}

// LoadPostgres builds the catalog from a table holding one JSON record
// per row, in catalog order.
func LoadPostgres(ctx context.Context, db *sql.DB, table string) (*Catalog, error) {
	query := fmt.Sprintf(`SELECT record FROM %s ORDER BY position ASC`, table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError("postgres", err)
	}
	defer rows.Close()

	var schemes []models.Scheme
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.NewCatalogLoadFailedError("postgres", err)
		}
		var s models.Scheme
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, errors.NewCatalogValidationFailedError(err.Error())
		}
		schemes = append(schemes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewCatalogLoadFailedError("postgres", err)
	}

	// Re-serialize for schema validation so every source passes the
	// same checks.
	doc, err := json.Marshal(schemes)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError("postgres", err)
	}
	return loadDocument(doc)
}

// Load picks the source from configuration.
func Load(ctx context.Context, cfg config.CatalogConfig, db *sql.DB) (*Catalog, error) {
	switch cfg.Source {
	case "embedded", "":
		return LoadEmbedded()
	case "file":
		return LoadFile(cfg.Path)
	case "postgres":
		if db == nil {
			return nil, errors.NewCatalogLoadFailedError("postgres", fmt.Errorf("no database connection"))
		}
		return LoadPostgres(ctx, db, cfg.Table)
	default:
		return nil, errors.NewCatalogValidationFailedError(fmt.Sprintf("unknown catalog source %q", cfg.Source))
	}
}

func loadDocument(raw []byte) (*Catalog, error) {
	if err := ValidateDocument(raw); err != nil {
		return nil, errors.NewCatalogValidationFailedError(err.Error())
	}

	var schemes []models.Scheme
	if err := json.Unmarshal(raw, &schemes); err != nil {
		return nil, errors.NewCatalogValidationFailedError(err.Error())
	}

	cat, err := New(schemes)
	if err != nil {
		return nil, errors.NewCatalogValidationFailedError(err.Error())
	}
	return cat, nil
}
