package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/archive-viewer/internal/logger"
	"github.com/sbilibin2017/archive-viewer/internal/models"
)

// ErrInvalidCollection is returned when a collection name is not a plain SQL identifier.
var ErrInvalidCollection = errors.New("invalid collection name")

var collectionPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// documentRow is a single row of a collection table: id TEXT, data JSONB.
type documentRow struct {
	ID   string `db:"id"`
	Data []byte `db:"data"`
}

// DocumentRepository reads documents from a PostgreSQL JSONB document store.
// Every collection is a table with an id column and a data column.
type DocumentRepository struct {
	db *sqlx.DB
}

// NewDocumentRepository creates a new repository instance.
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// GetAll returns every document of a collection.
func (r *DocumentRepository) GetAll(ctx context.Context, collection string) ([]models.Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, data
		FROM %q
		ORDER BY id
	`, collection)

	var rows []documentRow
	err := r.db.SelectContext(ctx, &rows, query)
	logQuery(query, nil, len(rows), err)
	if err != nil {
		return nil, err
	}

	return decodeRows(rows)
}

// Query returns the documents of a collection matching every equality filter.
func (r *DocumentRepository) Query(ctx context.Context, collection string, filters ...models.Filter) ([]models.Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	cond := make(map[string]any, len(filters))
	for _, f := range filters {
		cond[f.Field] = f.Value
	}
	payload, err := json.Marshal(cond)
	if err != nil {
		return nil, fmt.Errorf("encode filters: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, data
		FROM %q
		WHERE data @> $1::jsonb
		ORDER BY id
	`, collection)
	args := []any{string(payload)}

	var rows []documentRow
	err = r.db.SelectContext(ctx, &rows, query, args...)
	logQuery(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}

	return decodeRows(rows)
}

// GetByID returns a single document, or nil when it does not exist.
func (r *DocumentRepository) GetByID(ctx context.Context, collection, id string) (*models.Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, data
		FROM %q
		WHERE id = $1
	`, collection)
	args := []any{id}

	var row documentRow
	err := r.db.GetContext(ctx, &row, query, args...)
	found := 1
	if err != nil {
		found = 0
	}
	logQuery(query, args, found, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	doc, err := decodeRow(row)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func validateCollection(name string) error {
	if !collectionPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	return nil
}

func decodeRows(rows []documentRow) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func decodeRow(row documentRow) (models.Document, error) {
	data := map[string]any{}
	if len(row.Data) > 0 {
		dec := json.NewDecoder(bytes.NewReader(row.Data))
		dec.UseNumber()
		if err := dec.Decode(&data); err != nil {
			return models.Document{}, fmt.Errorf("decode document %s: %w", row.ID, err)
		}
	}
	return models.Document{ID: row.ID, Data: data}, nil
}

// logQuery logs the query on a single line.
func logQuery(query string, args []any, result int, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
