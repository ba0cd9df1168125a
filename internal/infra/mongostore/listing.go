package mongostore

import (
	"context"
	"errors"

	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/domain/listing"
	"plateshare-server/internal/infra"
	"plateshare-server/internal/usecase/queries"
	"plateshare-server/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListingStore serves both the write and the read side for listings.
type ListingStore struct {
	coll *mongo.Collection
}

func NewListingStore(db *mongo.Database) *ListingStore {
	return &ListingStore{coll: db.Collection(ListingsCollection)}
}

func (s *ListingStore) Create(ctx context.Context, l *listing.Listing) (string, error) {
	res, err := s.coll.InsertOne(ctx, toBSON(l.Document()))
	if err != nil {
		return "", infra.WrapRepoErr("failed to create listing", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", infra.WrapRepoErr("unexpected inserted id type", nil)
	}
	return oid.Hex(), nil
}

func (s *ListingStore) FindByID(ctx context.Context, id string) (*listing.Listing, error) {
	view, err := s.findView(ctx, id)
	if err != nil {
		return nil, err
	}
	return listing.ReconstructListing(view.ID, view.Document), nil
}

func (s *ListingStore) UpdateFields(ctx context.Context, id string, fields document.Document) (shared.UpdateResult, error) {
	oid, err := objectID(id, "listing")
	if err != nil {
		return shared.UpdateResult{}, err
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": toBSON(fields)})
	if err != nil {
		return shared.UpdateResult{}, infra.WrapRepoErr("failed to update listing", err)
	}
	if res.MatchedCount == 0 {
		return shared.UpdateResult{}, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return shared.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (s *ListingStore) UpdateStatus(ctx context.Context, id string, status listing.Status) error {
	oid, err := objectID(id, "listing")
	if err != nil {
		return err
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{listing.FieldStatus: status.String()}})
	if err != nil {
		return infra.WrapRepoErr("failed to update listing status", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *ListingStore) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id, "listing")
	if err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return infra.WrapRepoErr("failed to delete listing", err)
	}
	if res.DeletedCount == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (s *ListingStore) List(ctx context.Context, filter queries.ListingFilter) ([]*queries.ListingView, error) {
	return s.find(ctx, listingQuery(filter), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (s *ListingStore) Featured(ctx context.Context, limit int) ([]*queries.ListingView, error) {
	return s.find(ctx, bson.M{}, featuredOptions(limit))
}

// listingQuery matches on each non-empty filter field.
func listingQuery(filter queries.ListingFilter) bson.M {
	q := bson.M{}
	if filter.Status != "" {
		q[listing.FieldStatus] = filter.Status
	}
	if filter.DonorEmail != "" {
		q[listing.FieldDonorEmail] = filter.DonorEmail
	}
	return q
}

// featuredOptions sorts by quantity, largest first. Ties keep insertion order.
func featuredOptions(limit int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: listing.FieldQuantity, Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))
}

func (s *ListingStore) findView(ctx context.Context, id string) (*queries.ListingView, error) {
	oid, err := objectID(id, "listing")
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing by id", err)
	}
	rowID, doc := fromBSON(m)
	return &queries.ListingView{ID: rowID, Document: doc}, nil
}

func (s *ListingStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*queries.ListingView, error) {
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}
	var records []bson.M
	if err := cur.All(ctx, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to decode listings", err)
	}
	views := make([]*queries.ListingView, 0, len(records))
	for _, m := range records {
		id, doc := fromBSON(m)
		views = append(views, &queries.ListingView{ID: id, Document: doc})
	}
	return views, nil
}

// listingReads narrows ListingStore to the query-side interface so FindByID
// returns a view instead of the domain entity.
type listingReads struct {
	*ListingStore
}

func (r listingReads) FindByID(ctx context.Context, id string) (*queries.ListingView, error) {
	return r.findView(ctx, id)
}

func NewListingReadStore(db *mongo.Database) queries.ListingReadStore {
	return listingReads{NewListingStore(db)}
}
