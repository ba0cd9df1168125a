//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"plateshare-server/internal/domain/document"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func InsertListing(t *testing.T, db DBLike, doc document.Document) string {
	t.Helper()
	return insertDocument(t, db, "INSERT INTO foods (doc) VALUES ($1::jsonb) RETURNING id::text", doc)
}

func InsertFoodRequest(t *testing.T, db DBLike, doc document.Document) string {
	t.Helper()
	return insertDocument(t, db, "INSERT INTO food_requests (doc) VALUES ($1::jsonb) RETURNING id::text", doc)
}

func FetchListing(t *testing.T, db DBLike, id string) document.Document {
	t.Helper()
	return fetchDocument(t, db, "SELECT doc FROM foods WHERE id = $1::uuid", id)
}

func FetchFoodRequest(t *testing.T, db DBLike, id string) document.Document {
	t.Helper()
	return fetchDocument(t, db, "SELECT doc FROM food_requests WHERE id = $1::uuid", id)
}

func CountFoodRequests(t *testing.T, db DBLike, listingID string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM food_requests WHERE doc->>'foodId' = $1", listingID).Scan(&n)
	require.NoError(t, err)
	return n
}

func insertDocument(t *testing.T, db DBLike, sql string, doc document.Document) string {
	t.Helper()
	b, err := json.Marshal(doc)
	require.NoError(t, err)

	var id string
	err = db.QueryRow(context.Background(), sql, string(b)).Scan(&id)
	require.NoError(t, err)
	return id
}

func fetchDocument(t *testing.T, db DBLike, sql, id string) document.Document {
	t.Helper()
	var raw []byte
	err := db.QueryRow(context.Background(), sql, id).Scan(&raw)
	require.NoError(t, err)

	var doc document.Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

// truncates both document tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE foods, food_requests RESTART IDENTITY")
	return err
}
