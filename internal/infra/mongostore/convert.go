package mongostore

import (
	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/infra"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func objectID(id, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, infra.WrapRepoErr("invalid "+what+" id", err, infra.KindInvalidID)
	}
	return oid, nil
}

// fromBSON splits a decoded record into its hex id and a plain document.
func fromBSON(m bson.M) (string, document.Document) {
	var id string
	if oid, ok := m[document.IDKey].(primitive.ObjectID); ok {
		id = oid.Hex()
	}
	doc := make(document.Document, len(m))
	for k, v := range m {
		if k == document.IDKey {
			continue
		}
		doc[k] = plain(v)
	}
	return id, doc
}

// plain turns driver types into the shapes encoding/json would produce, so
// both stores hand identical documents to the upper layers.
func plain(v any) any {
	switch t := v.(type) {
	case bson.M:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = plain(vv)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plain(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i := range t {
			out[i] = plain(t[i])
		}
		return out
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return v
	}
}

func toBSON(doc document.Document) bson.M {
	return bson.M(doc.Without(document.IDKey))
}
