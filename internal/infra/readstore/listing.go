package readstore

import (
	"context"

	"plateshare-server/internal/infra"
	"plateshare-server/internal/infra/db"
	"plateshare-server/internal/pkg/pgconv"
	"plateshare-server/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const (
	listListingsSQL = `
SELECT id::text, doc FROM foods
 WHERE ($1::text = '' OR doc->>'food_status' = $1::text)
   AND ($2::text = '' OR doc->>'donorEmail' = $2::text)
 ORDER BY seq`

	// Listings without a numeric quantity sort last.
	featuredListingsSQL = `
SELECT id::text, doc FROM foods
 ORDER BY CASE WHEN jsonb_typeof(doc->'foodQuantity') = 'number'
               THEN (doc->>'foodQuantity')::numeric END DESC NULLS LAST,
          seq
 LIMIT $1`

	getListingViewSQL = `SELECT id::text, doc FROM foods WHERE id = $1`
)

type ListingReadStore struct {
	db db.DBTX
}

func NewListingReadStore(db db.DBTX) *ListingReadStore {
	return &ListingReadStore{db: db}
}

func (r *ListingReadStore) List(ctx context.Context, filter queries.ListingFilter) ([]*queries.ListingView, error) {
	rows, err := r.db.Query(ctx, listListingsSQL, filter.Status, filter.DonorEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}
	return collectListingViews(rows)
}

func (r *ListingReadStore) Featured(ctx context.Context, limit int) ([]*queries.ListingView, error) {
	rows, err := r.db.Query(ctx, featuredListingsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list featured listings", err)
	}
	return collectListingViews(rows)
}

func (r *ListingReadStore) FindByID(ctx context.Context, id string) (*queries.ListingView, error) {
	uid, err := pgconv.ParseUUID(id)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid listing id", err, infra.KindInvalidID)
	}
	view, err := scanListingView(r.db.QueryRow(ctx, getListingViewSQL, uid))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing view by id", err)
	}
	return view, nil
}

func collectListingViews(rows pgx.Rows) ([]*queries.ListingView, error) {
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ListingView, error) {
		return scanListingView(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan listings", err)
	}
	if views == nil {
		views = []*queries.ListingView{}
	}
	return views, nil
}

func scanListingView(row pgx.Row) (*queries.ListingView, error) {
	var (
		id  string
		raw []byte
	)
	if err := row.Scan(&id, &raw); err != nil {
		return nil, err
	}
	doc, err := pgconv.DocumentFromJSONB(raw)
	if err != nil {
		return nil, err
	}
	return &queries.ListingView{ID: id, Document: doc}, nil
}
