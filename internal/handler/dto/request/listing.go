package request

import (
	"plateshare-server/internal/domain/listing"

	"github.com/jinzhu/copier"
)

// UpdateListingRequest lists the only keys PATCH /foods/:id honours. Any
// other key in the body is ignored; a key that is absent is written as null.
type UpdateListingRequest struct {
	FoodName       any `json:"foodName" swaggertype:"string"`
	FoodQuantity   any `json:"foodQuantity" swaggertype:"number"`
	PickupLocation any `json:"pickupLocation" swaggertype:"string"`
	ExpireDate     any `json:"expireDate" swaggertype:"string"`
	Notes          any `json:"notes" swaggertype:"string"`
}

func (r *UpdateListingRequest) ToDomain() (listing.Details, error) {
	var d listing.Details
	if err := copier.Copy(&d, r); err != nil {
		return listing.Details{}, err
	}
	return d, nil
}

// ListingQuery accepts both the short names and the stored field names.
type ListingQuery struct {
	Status     string `form:"status"`
	FoodStatus string `form:"food_status"`
	Email      string `form:"email"`
	DonorEmail string `form:"donorEmail"`
}

func (q ListingQuery) StatusFilter() string {
	if q.Status != "" {
		return q.Status
	}
	return q.FoodStatus
}

func (q ListingQuery) EmailFilter() string {
	if q.Email != "" {
		return q.Email
	}
	return q.DonorEmail
}
