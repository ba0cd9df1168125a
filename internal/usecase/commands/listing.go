package commands

import (
	"context"

	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/domain/listing"
	"plateshare-server/internal/pkg/errs"
	"plateshare-server/internal/usecase/shared"
)

type UpdateListingResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

type DeleteListingResult struct {
	DeletedCount         int64
	DeletedRequestsCount int64
}

type ListingCommands interface {
	Create(ctx context.Context, doc document.Document) (string, error)
	Update(ctx context.Context, id string, details listing.Details) (*UpdateListingResult, error)
	Delete(ctx context.Context, id string) (*DeleteListingResult, error)
}

type listingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewListingCommands(uow shared.UnitOfWork) ListingCommands {
	return &listingCommandsImpl{uow: uow}
}

func (uc *listingCommandsImpl) Create(ctx context.Context, doc document.Document) (string, error) {
	l, err := listing.NewListing(doc)
	if err != nil {
		return "", errs.Mark(err, errs.ErrInvalidPayload)
	}
	id, err := uc.uow.Listings().Create(ctx, l)
	if err != nil {
		return "", shared.TranslateRepoErr(err, errs.ErrListingNotFound)
	}
	return id, nil
}

// Update overwrites the editable fields only. food_status is never part of
// the write.
func (uc *listingCommandsImpl) Update(ctx context.Context, id string, details listing.Details) (*UpdateListingResult, error) {
	res, err := uc.uow.Listings().UpdateFields(ctx, id, details.Fields())
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrListingNotFound)
	}
	return &UpdateListingResult{MatchedCount: res.Matched, ModifiedCount: res.Modified}, nil
}

// Delete removes the listing together with every request made against it.
func (uc *listingCommandsImpl) Delete(ctx context.Context, id string) (*DeleteListingResult, error) {
	result := &DeleteListingResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Listings().Delete(ctx, id); derr != nil {
			return derr
		}
		n, derr := tx.FoodRequests().DeleteByListing(ctx, document.CanonicalID(id))
		if derr != nil {
			return derr
		}
		result.DeletedCount = 1
		result.DeletedRequestsCount = n
		return nil
	})
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrListingNotFound)
	}
	return result, nil
}
