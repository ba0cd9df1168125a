package queries

import (
	"context"

	"plateshare-server/internal/domain/listing"
	"plateshare-server/internal/pkg/errs"
	"plateshare-server/internal/usecase/shared"
)

type ListingReadStore interface {
	List(ctx context.Context, filter ListingFilter) ([]*ListingView, error)
	Featured(ctx context.Context, limit int) ([]*ListingView, error)
	FindByID(ctx context.Context, id string) (*ListingView, error)
}

type ListingQueries interface {
	List(ctx context.Context, filter ListingFilter) ([]*ListingView, error)
	ListByDonor(ctx context.Context, email string) ([]*ListingView, error)
	Featured(ctx context.Context) ([]*ListingView, error)
	GetByID(ctx context.Context, id string) (*ListingView, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

func (q *listingQueriesImpl) List(ctx context.Context, filter ListingFilter) ([]*ListingView, error) {
	views, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrListingNotFound)
	}
	return views, nil
}

// ListByDonor backs the donor's manage page. An empty email lists nothing
// rather than everything.
func (q *listingQueriesImpl) ListByDonor(ctx context.Context, email string) ([]*ListingView, error) {
	if email == "" {
		return []*ListingView{}, nil
	}
	return q.List(ctx, ListingFilter{DonorEmail: email})
}

func (q *listingQueriesImpl) Featured(ctx context.Context) ([]*ListingView, error) {
	views, err := q.store.Featured(ctx, listing.FeaturedLimit)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrListingNotFound)
	}
	return views, nil
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id string) (*ListingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrListingNotFound)
	}
	return view, nil
}
