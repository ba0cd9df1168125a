package shared

import (
	"context"
	"time"

	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/domain/foodrequest"
	"plateshare-server/internal/domain/listing"
)

type UnitOfWork interface {
	// Within: Full transaction for multi-write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Listings / FoodRequests: single-statement writes outside a transaction
	Listings() ListingRepository
	FoodRequests() FoodRequestRepository
}

type Tx interface {
	Listings() ListingRepository
	FoodRequests() FoodRequestRepository
}

// UpdateResult mirrors the counters document stores report for an update.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing) (string, error)
	FindByID(ctx context.Context, id string) (*listing.Listing, error)
	// UpdateFields overwrites the given keys and leaves every other key alone.
	UpdateFields(ctx context.Context, id string, fields document.Document) (UpdateResult, error)
	UpdateStatus(ctx context.Context, id string, status listing.Status) error
	Delete(ctx context.Context, id string) error
}

type FoodRequestRepository interface {
	Create(ctx context.Context, r *foodrequest.Request) (string, error)
	// FindByIDForUpdate locks the request until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*foodrequest.Request, error)
	UpdateStatus(ctx context.Context, id string, status foodrequest.Status, respondedAt time.Time) error
	DeleteByListing(ctx context.Context, listingID string) (int64, error)
}
