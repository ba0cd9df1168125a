package readstore

import (
	"context"

	"plateshare-server/internal/infra"
	"plateshare-server/internal/infra/db"
	"plateshare-server/internal/pkg/pgconv"
	"plateshare-server/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const listFoodRequestsByListingSQL = `
SELECT id::text, doc FROM food_requests
 WHERE doc->>'foodId' = $1
 ORDER BY seq`

type FoodRequestReadStore struct {
	db db.DBTX
}

func NewFoodRequestReadStore(db db.DBTX) *FoodRequestReadStore {
	return &FoodRequestReadStore{db: db}
}

func (r *FoodRequestReadStore) ListByListing(ctx context.Context, listingID string) ([]*queries.FoodRequestView, error) {
	rows, err := r.db.Query(ctx, listFoodRequestsByListingSQL, listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list food requests", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.FoodRequestView, error) {
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
		return &queries.FoodRequestView{ID: id, Document: doc}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan food requests", err)
	}
	if views == nil {
		views = []*queries.FoodRequestView{}
	}
	return views, nil
}
