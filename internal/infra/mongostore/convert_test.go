//go:build unit

package mongostore

import (
	"testing"
	"time"

	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/infra"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFromBSON(t *testing.T) {
	oid := primitive.NewObjectID()
	when := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	id, doc := fromBSON(bson.M{
		"_id":          oid,
		"foodName":     "Bread",
		"foodQuantity": int32(5),
		"expireDate":   primitive.NewDateTimeFromTime(when),
		"donor":        bson.M{"name": "Ann", "age": int64(30)},
		"tags":         bson.A{"bakery", bson.M{"k": "v"}},
		"ref":          oid,
	})

	assert.Equal(t, oid.Hex(), id)
	want := document.Document{
		"foodName":     "Bread",
		"foodQuantity": 5.0,
		"expireDate":   when,
		"donor":        map[string]any{"name": "Ann", "age": 30.0},
		"tags":         []any{"bakery", map[string]any{"k": "v"}},
		"ref":          oid.Hex(),
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestToBSONDropsID(t *testing.T) {
	m := toBSON(document.Document{"_id": "client", "foodName": "Bread"})
	assert.Equal(t, bson.M{"foodName": "Bread"}, m)
}

func TestObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	got, err := objectID(oid.Hex(), "listing")
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	_, err = objectID("not-hex", "listing")
	assert.True(t, infra.IsKind(err, infra.KindInvalidID))
}
