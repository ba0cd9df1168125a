//go:build unit || e2e

package builder

import (
	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/domain/listing"
	reqdto "plateshare-server/internal/handler/dto/request"
	"plateshare-server/internal/usecase/queries"
)

type ListingBuilder struct {
	ID             string
	FoodName       string
	FoodQuantity   any
	PickupLocation string
	ExpireDate     string
	Notes          string
	DonorEmail     string
	Status         listing.Status
	Extra          document.Document
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:             "64b7f0c2a1e4d3b2c1a09f87",
		FoodName:       "Vegetable Curry",
		FoodQuantity:   float64(10),
		PickupLocation: "Dhaka",
		ExpireDate:     "2026-12-31",
		Notes:          "Keep refrigerated",
		DonorEmail:     "donor@example.com",
		Status:         listing.StatusAvailable,
		Extra:          document.Document{},
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ListingBuilder) BuildDocument() document.Document {
	doc := document.Document{
		listing.FieldName:           b.FoodName,
		listing.FieldQuantity:       b.FoodQuantity,
		listing.FieldPickupLocation: b.PickupLocation,
		listing.FieldExpireDate:     b.ExpireDate,
		listing.FieldNotes:          b.Notes,
		listing.FieldDonorEmail:     b.DonorEmail,
		listing.FieldStatus:         string(b.Status),
	}
	for k, v := range b.Extra {
		doc[k] = v
	}
	return doc
}

func (b *ListingBuilder) BuildDomain() *listing.Listing {
	return listing.ReconstructListing(b.ID, b.BuildDocument())
}

func (b *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{ID: b.ID, Document: b.BuildDocument()}
}

func (b *ListingBuilder) BuildDetails() listing.Details {
	return listing.Details{
		FoodName:       b.FoodName,
		FoodQuantity:   b.FoodQuantity,
		PickupLocation: b.PickupLocation,
		ExpireDate:     b.ExpireDate,
		Notes:          b.Notes,
	}
}

func (b *ListingBuilder) BuildUpdateRequestDTO() reqdto.UpdateListingRequest {
	return reqdto.UpdateListingRequest{
		FoodName:       b.FoodName,
		FoodQuantity:   b.FoodQuantity,
		PickupLocation: b.PickupLocation,
		ExpireDate:     b.ExpireDate,
		Notes:          b.Notes,
	}
}
