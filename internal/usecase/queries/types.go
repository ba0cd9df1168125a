package queries

import "plateshare-server/internal/domain/document"

// ListingView is a stored listing as the API returns it.
type ListingView struct {
	ID       string
	Document document.Document
}

// FoodRequestView is a stored food request as the API returns it.
type FoodRequestView struct {
	ID       string
	Document document.Document
}

// ListingFilter holds optional equality filters. Empty fields match everything.
type ListingFilter struct {
	Status     string
	DonorEmail string
}
