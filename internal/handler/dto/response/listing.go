package response

import (
	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/usecase/queries"
)

// Documents are returned as stored, with the identifier under "_id".

func FromListingView(v *queries.ListingView) document.Document {
	return v.Document.WithID(v.ID)
}

func FromListingViews(vs []*queries.ListingView) []document.Document {
	out := make([]document.Document, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromListingView(v))
	}
	return out
}

func FromFoodRequestViews(vs []*queries.FoodRequestView) []document.Document {
	out := make([]document.Document, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Document.WithID(v.ID))
	}
	return out
}
