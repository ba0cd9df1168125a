//go:build unit || e2e

package builder

import (
	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/domain/foodrequest"
	"plateshare-server/internal/usecase/queries"
)

type FoodRequestBuilder struct {
	ID             string
	ListingID      string
	RequesterEmail string
	Status         foodrequest.Status
	Extra          document.Document
}

func NewFoodRequestBuilder() *FoodRequestBuilder {
	return &FoodRequestBuilder{
		ID:             "64b7f0c2a1e4d3b2c1a09f88",
		ListingID:      "64b7f0c2a1e4d3b2c1a09f87",
		RequesterEmail: "requester@example.com",
		Status:         foodrequest.StatusPending,
		Extra:          document.Document{"additionalNotes": "Evening pickup"},
	}
}

func (b *FoodRequestBuilder) With(mutate func(*FoodRequestBuilder)) *FoodRequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *FoodRequestBuilder) BuildDocument() document.Document {
	doc := document.Document{
		foodrequest.FieldListingID:      b.ListingID,
		foodrequest.FieldRequesterEmail: b.RequesterEmail,
		foodrequest.FieldStatus:         string(b.Status),
	}
	for k, v := range b.Extra {
		doc[k] = v
	}
	return doc
}

func (b *FoodRequestBuilder) BuildDomain() *foodrequest.Request {
	return foodrequest.ReconstructRequest(b.ID, b.BuildDocument())
}

func (b *FoodRequestBuilder) BuildView() *queries.FoodRequestView {
	return &queries.FoodRequestView{ID: b.ID, Document: b.BuildDocument()}
}
