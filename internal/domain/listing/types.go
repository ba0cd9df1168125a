package listing

// JSON keys of a food listing document.
const (
	FieldName           = "foodName"
	FieldQuantity       = "foodQuantity"
	FieldPickupLocation = "pickupLocation"
	FieldExpireDate     = "expireDate"
	FieldNotes          = "notes"
	FieldDonorEmail     = "donorEmail"
	FieldStatus         = "food_status"
)

// FeaturedLimit caps the featured listings view.
const FeaturedLimit = 6

type Status string

const (
	StatusAvailable Status = "available"
	StatusDonated   Status = "Donated"
)

func (s Status) String() string {
	return string(s)
}
