package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/archive-viewer/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupDocumentPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users_v3 (
		id TEXT PRIMARY KEY,
		data JSONB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS archives_v3 (
		id TEXT PRIMARY KEY,
		data JSONB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS archives_v3_data_idx ON archives_v3 USING GIN (data);

	INSERT INTO users_v3 (id, data) VALUES
		('u1', '{"username": "adalovelace", "fullName": "Ada Lovelace"}'),
		('u2', '{"username": "grace"}');

	INSERT INTO archives_v3 (id, data) VALUES
		('e1', '{"userId": "u1", "category": "music", "title": "Blue Train", "rating": 5}'),
		('e2', '{"userId": "u1", "category": "book", "title": "Dune", "rating": "4.5"}'),
		('e3', '{"userId": "u2", "category": "music", "title": "Kind of Blue"}');
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestDocumentRepository_Postgres(t *testing.T) {
	db, teardown := setupDocumentPostgresContainer(t)
	defer teardown()

	repo := NewDocumentRepository(db)
	ctx := context.Background()

	t.Run("GetAll", func(t *testing.T) {
		docs, err := repo.GetAll(ctx, "users_v3")
		assert.NoError(t, err)
		assert.Len(t, docs, 2)
		assert.Equal(t, "adalovelace", docs[0].Data["username"])
	})

	t.Run("QueryByUserAndCategory", func(t *testing.T) {
		docs, err := repo.Query(ctx, "archives_v3",
			models.Filter{Field: "userId", Value: "u1"},
			models.Filter{Field: "category", Value: "music"},
		)
		assert.NoError(t, err)
		if assert.Len(t, docs, 1) {
			assert.Equal(t, "e1", docs[0].ID)
		}
	})

	t.Run("QueryByUser", func(t *testing.T) {
		docs, err := repo.Query(ctx, "archives_v3", models.Filter{Field: "userId", Value: "u1"})
		assert.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("GetByID", func(t *testing.T) {
		doc, err := repo.GetByID(ctx, "users_v3", "u2")
		assert.NoError(t, err)
		if assert.NotNil(t, doc) {
			assert.Equal(t, "grace", doc.Data["username"])
		}
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		doc, err := repo.GetByID(ctx, "users_v3", "nobody")
		assert.NoError(t, err)
		assert.Nil(t, doc)
	})
}
