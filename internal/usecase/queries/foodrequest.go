package queries

import (
	"context"

	"plateshare-server/internal/domain/listing"
	"plateshare-server/internal/pkg/errs"
	"plateshare-server/internal/usecase/shared"
)

type FoodRequestReadStore interface {
	ListByListing(ctx context.Context, listingID string) ([]*FoodRequestView, error)
}

type FoodRequestQueries interface {
	// ListForOwner returns the requests made against a listing, but only to
	// the listing's donor.
	ListForOwner(ctx context.Context, listingID, callerEmail string) ([]*FoodRequestView, error)
}

type foodRequestQueriesImpl struct {
	listings ListingReadStore
	requests FoodRequestReadStore
}

func NewFoodRequestQueries(listings ListingReadStore, requests FoodRequestReadStore) FoodRequestQueries {
	return &foodRequestQueriesImpl{listings: listings, requests: requests}
}

func (q *foodRequestQueriesImpl) ListForOwner(ctx context.Context, listingID, callerEmail string) ([]*FoodRequestView, error) {
	l, err := q.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrListingNotFound)
	}

	if callerEmail == "" {
		return nil, errs.ErrCallerEmailRequired
	}
	if !listing.ReconstructListing(l.ID, l.Document).IsOwnedBy(callerEmail) {
		return nil, errs.ErrNotListingOwner
	}

	views, err := q.requests.ListByListing(ctx, l.ID)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrFoodRequestNotFound)
	}
	return views, nil
}
