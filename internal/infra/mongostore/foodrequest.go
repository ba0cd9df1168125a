package mongostore

import (
	"context"
	"errors"
	"time"

	"plateshare-server/internal/domain/foodrequest"
	"plateshare-server/internal/infra"
	"plateshare-server/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodRequestStore struct {
	coll *mongo.Collection
}

func NewFoodRequestStore(db *mongo.Database) *FoodRequestStore {
	return &FoodRequestStore{coll: db.Collection(FoodRequestsCollection)}
}

func (s *FoodRequestStore) Create(ctx context.Context, req *foodrequest.Request) (string, error) {
	res, err := s.coll.InsertOne(ctx, toBSON(req.Document()))
	if err != nil {
		return "", infra.WrapRepoErr("failed to create food request", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", infra.WrapRepoErr("unexpected inserted id type", nil)
	}
	return oid.Hex(), nil
}

// FindByIDForUpdate relies on the surrounding session transaction: a
// concurrent writer makes one of the two transactions abort with a write
// conflict, which WithTransaction retries.
func (s *FoodRequestStore) FindByIDForUpdate(ctx context.Context, id string) (*foodrequest.Request, error) {
	oid, err := objectID(id, "food request")
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("food request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get food request by id", err)
	}
	rowID, doc := fromBSON(m)
	return foodrequest.ReconstructRequest(rowID, doc), nil
}

func (s *FoodRequestStore) UpdateStatus(ctx context.Context, id string, status foodrequest.Status, respondedAt time.Time) error {
	oid, err := objectID(id, "food request")
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		foodrequest.FieldStatus:      status.String(),
		foodrequest.FieldRespondedAt: respondedAt.UTC().Format(time.RFC3339),
	}}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return infra.WrapRepoErr("failed to update food request status", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("food request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *FoodRequestStore) DeleteByListing(ctx context.Context, listingID string) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, requestsOf(listingID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete food requests", err)
	}
	return res.DeletedCount, nil
}

func (s *FoodRequestStore) ListByListing(ctx context.Context, listingID string) ([]*queries.FoodRequestView, error) {
	cur, err := s.coll.Find(ctx, requestsOf(listingID), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list food requests", err)
	}
	var records []bson.M
	if err := cur.All(ctx, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to decode food requests", err)
	}
	views := make([]*queries.FoodRequestView, 0, len(records))
	for _, m := range records {
		id, doc := fromBSON(m)
		views = append(views, &queries.FoodRequestView{ID: id, Document: doc})
	}
	return views, nil
}

func requestsOf(listingID string) bson.M {
	return bson.M{foodrequest.FieldListingID: listingID}
}
