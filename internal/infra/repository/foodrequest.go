package repository

import (
	"context"
	"time"

	"plateshare-server/internal/domain/foodrequest"
	"plateshare-server/internal/infra"
	"plateshare-server/internal/infra/db"
	"plateshare-server/internal/pkg/pgconv"
)

const (
	insertFoodRequestSQL = `INSERT INTO food_requests (doc) VALUES ($1::jsonb) RETURNING id::text`

	selectFoodRequestForUpdateSQL = `SELECT id::text, doc FROM food_requests WHERE id = $1 FOR UPDATE`

	updateFoodRequestStatusSQL = `
UPDATE food_requests
   SET doc = doc || jsonb_build_object('status', $2::text, 'respondedAt', $3::text)
 WHERE id = $1`

	deleteFoodRequestsByListingSQL = `DELETE FROM food_requests WHERE doc->>'foodId' = $1`
)

type FoodRequestRepository struct {
	db db.DBTX
}

func NewFoodRequestRepository(db db.DBTX) *FoodRequestRepository {
	return &FoodRequestRepository{db: db}
}

func (r *FoodRequestRepository) Create(ctx context.Context, req *foodrequest.Request) (string, error) {
	payload, err := pgconv.DocumentToJSONB(req.Document())
	if err != nil {
		return "", infra.WrapRepoErr("failed to encode food request", err)
	}
	var id string
	if err := r.db.QueryRow(ctx, insertFoodRequestSQL, payload).Scan(&id); err != nil {
		return "", infra.WrapRepoErr("failed to create food request", err)
	}
	return id, nil
}

func (r *FoodRequestRepository) FindByIDForUpdate(ctx context.Context, id string) (*foodrequest.Request, error) {
	uid, err := pgconv.ParseUUID(id)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid food request id", err, infra.KindInvalidID)
	}
	var (
		rowID string
		raw   []byte
	)
	if err := r.db.QueryRow(ctx, selectFoodRequestForUpdateSQL, uid).Scan(&rowID, &raw); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("food request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get food request by id", err)
	}
	doc, err := pgconv.DocumentFromJSONB(raw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode food request", err)
	}
	return foodrequest.ReconstructRequest(rowID, doc), nil
}

func (r *FoodRequestRepository) UpdateStatus(ctx context.Context, id string, status foodrequest.Status, respondedAt time.Time) error {
	uid, err := pgconv.ParseUUID(id)
	if err != nil {
		return infra.WrapRepoErr("invalid food request id", err, infra.KindInvalidID)
	}
	tag, err := r.db.Exec(ctx, updateFoodRequestStatusSQL, uid, status.String(), respondedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return infra.WrapRepoErr("failed to update food request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("food request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *FoodRequestRepository) DeleteByListing(ctx context.Context, listingID string) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteFoodRequestsByListingSQL, listingID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete food requests", err)
	}
	return tag.RowsAffected(), nil
}
