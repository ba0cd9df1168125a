package repository

import (
	"context"

	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/domain/listing"
	"plateshare-server/internal/infra"
	"plateshare-server/internal/infra/db"
	"plateshare-server/internal/pkg/pgconv"
	"plateshare-server/internal/usecase/shared"
)

const (
	insertListingSQL = `INSERT INTO foods (doc) VALUES ($1::jsonb) RETURNING id::text`

	selectListingSQL = `SELECT id::text, doc FROM foods WHERE id = $1`

	// prev captures the row before the merge so modified can be reported.
	updateListingFieldsSQL = `
WITH prev AS (
    SELECT id, doc FROM foods WHERE id = $1 FOR UPDATE
)
UPDATE foods f
   SET doc = f.doc || $2::jsonb
  FROM prev
 WHERE f.id = prev.id
RETURNING prev.doc IS DISTINCT FROM f.doc`

	updateListingStatusSQL = `UPDATE foods SET doc = jsonb_set(doc, '{food_status}', to_jsonb($2::text)) WHERE id = $1`

	deleteListingSQL = `DELETE FROM foods WHERE id = $1`
)

type ListingRepository struct {
	db db.DBTX
}

func NewListingRepository(db db.DBTX) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) (string, error) {
	payload, err := pgconv.DocumentToJSONB(l.Document())
	if err != nil {
		return "", infra.WrapRepoErr("failed to encode listing", err)
	}
	var id string
	if err := r.db.QueryRow(ctx, insertListingSQL, payload).Scan(&id); err != nil {
		return "", infra.WrapRepoErr("failed to create listing", err)
	}
	return id, nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*listing.Listing, error) {
	uid, err := pgconv.ParseUUID(id)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid listing id", err, infra.KindInvalidID)
	}
	var (
		rowID string
		raw   []byte
	)
	if err := r.db.QueryRow(ctx, selectListingSQL, uid).Scan(&rowID, &raw); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing by id", err)
	}
	doc, err := pgconv.DocumentFromJSONB(raw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode listing", err)
	}
	return listing.ReconstructListing(rowID, doc), nil
}

func (r *ListingRepository) UpdateFields(ctx context.Context, id string, fields document.Document) (shared.UpdateResult, error) {
	uid, err := pgconv.ParseUUID(id)
	if err != nil {
		return shared.UpdateResult{}, infra.WrapRepoErr("invalid listing id", err, infra.KindInvalidID)
	}
	patch, err := pgconv.DocumentToJSONB(fields)
	if err != nil {
		return shared.UpdateResult{}, infra.WrapRepoErr("failed to encode listing fields", err)
	}
	var modified bool
	if err := r.db.QueryRow(ctx, updateListingFieldsSQL, uid, patch).Scan(&modified); err != nil {
		if pgconv.IsNoRows(err) {
			return shared.UpdateResult{}, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return shared.UpdateResult{}, infra.WrapRepoErr("failed to update listing", err)
	}
	res := shared.UpdateResult{Matched: 1}
	if modified {
		res.Modified = 1
	}
	return res, nil
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, id string, status listing.Status) error {
	uid, err := pgconv.ParseUUID(id)
	if err != nil {
		return infra.WrapRepoErr("invalid listing id", err, infra.KindInvalidID)
	}
	tag, err := r.db.Exec(ctx, updateListingStatusSQL, uid, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update listing status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	uid, err := pgconv.ParseUUID(id)
	if err != nil {
		return infra.WrapRepoErr("invalid listing id", err, infra.KindInvalidID)
	}
	tag, err := r.db.Exec(ctx, deleteListingSQL, uid)
	if err != nil {
		return infra.WrapRepoErr("failed to delete listing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}
