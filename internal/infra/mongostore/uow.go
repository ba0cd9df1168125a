package mongostore

import (
	"context"

	"plateshare-server/internal/infra"
	"plateshare-server/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUoW runs multi-write operations in a session transaction. Outside
// Within, writes go straight to the collections. Transactions need a replica
// set, which every Atlas cluster provides.
type MongoUoW struct {
	client   *mongo.Client
	listings *ListingStore
	requests *FoodRequestStore
}

func NewMongoUoW(client *mongo.Client, db *mongo.Database) *MongoUoW {
	return &MongoUoW{
		client:   client,
		listings: NewListingStore(db),
		requests: NewFoodRequestStore(db),
	}
}

func (u *MongoUoW) Listings() shared.ListingRepository {
	return u.listings
}

func (u *MongoUoW) FoodRequests() shared.FoodRequestRepository {
	return u.requests
}

// Within passes the session context down so every repository call joins the
// transaction.
func (u *MongoUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	session, err := u.client.StartSession()
	if err != nil {
		return infra.WrapRepoErr("failed to start mongo session", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc, u)
	})
	return err
}
