package commands

import (
	"context"

	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/domain/foodrequest"
	"plateshare-server/internal/domain/listing"
	"plateshare-server/internal/infra"
	"plateshare-server/internal/pkg/clock"
	"plateshare-server/internal/pkg/errs"
	"plateshare-server/internal/usecase/shared"
)

type FoodRequestCommands interface {
	Create(ctx context.Context, doc document.Document) (string, error)
	// Accept marks the request accepted and its listing Donated in one
	// transaction. An empty listingID means "the listing the request references".
	Accept(ctx context.Context, requestID, listingID string) error
	Reject(ctx context.Context, requestID string) error
}

type foodRequestCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFoodRequestCommands(uow shared.UnitOfWork, clk clock.Clock) FoodRequestCommands {
	return &foodRequestCommandsImpl{uow: uow, clock: clk}
}

func (uc *foodRequestCommandsImpl) Create(ctx context.Context, doc document.Document) (string, error) {
	req, err := foodrequest.NewRequest(doc)
	if err != nil {
		return "", errs.Mark(err, errs.ErrInvalidPayload)
	}
	id, err := uc.uow.FoodRequests().Create(ctx, req)
	if err != nil {
		return "", shared.TranslateRepoErr(err, errs.ErrFoodRequestNotFound)
	}
	return id, nil
}

func (uc *foodRequestCommandsImpl) Accept(ctx context.Context, requestID, listingID string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := uc.load(ctx, tx, requestID)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		if err = req.Accept(now); err != nil {
			return errs.Mark(err, errs.ErrRequestNotPending)
		}
		if listingID != "" && !req.BelongsTo(listingID) {
			return errs.Wrap(errs.ErrListingMismatch, "accept "+requestID+" for listing "+listingID)
		}
		if err = tx.FoodRequests().UpdateStatus(ctx, req.ID(), req.Status(), now); err != nil {
			return shared.TranslateRepoErr(err, errs.ErrFoodRequestNotFound)
		}

		err = tx.Listings().UpdateStatus(ctx, req.ListingID(), listing.StatusDonated)
		if infra.IsKind(err, infra.KindInvalidID) {
			// a stored reference that is not a valid id cannot name an existing listing
			return errs.Mark(err, errs.ErrListingNotFound)
		}
		return shared.TranslateRepoErr(err, errs.ErrListingNotFound)
	})
}

func (uc *foodRequestCommandsImpl) Reject(ctx context.Context, requestID string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := uc.load(ctx, tx, requestID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err = req.Reject(now); err != nil {
			return errs.Mark(err, errs.ErrRequestNotPending)
		}
		err = tx.FoodRequests().UpdateStatus(ctx, req.ID(), req.Status(), now)
		return shared.TranslateRepoErr(err, errs.ErrFoodRequestNotFound)
	})
}

func (uc *foodRequestCommandsImpl) load(ctx context.Context, tx shared.Tx, requestID string) (*foodrequest.Request, error) {
	req, err := tx.FoodRequests().FindByIDForUpdate(ctx, requestID)
	if err != nil {
		return nil, shared.TranslateRepoErr(err, errs.ErrFoodRequestNotFound)
	}
	return req, nil
}
