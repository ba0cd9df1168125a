package foodrequest

// JSON keys of a food request document.
const (
	FieldListingID      = "foodId"
	FieldRequesterEmail = "requesterEmail"
	FieldStatus         = "status"
	FieldRespondedAt    = "respondedAt"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}
