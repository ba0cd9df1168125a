package listing

import (
	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/pkg/errs"
)

var ErrNilDocument = errs.New("listing document is required")

// Listing is a donor's food listing. The document is kept exactly as the
// donor submitted it; only the typed accessors below interpret it.
type Listing struct {
	id  string
	doc document.Document
}

func NewListing(doc document.Document) (*Listing, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	return &Listing{doc: doc.Without(document.IDKey)}, nil
}

func ReconstructListing(id string, doc document.Document) *Listing {
	return &Listing{id: id, doc: doc.Without(document.IDKey)}
}

func (l *Listing) ID() string                  { return l.id }
func (l *Listing) Document() document.Document { return l.doc.Clone() }
func (l *Listing) DonorEmail() string          { return l.doc.String(FieldDonorEmail) }
func (l *Listing) Status() Status              { return Status(l.doc.String(FieldStatus)) }

// IsOwnedBy compares the donor email exactly. An empty email never owns anything.
func (l *Listing) IsOwnedBy(email string) bool {
	return email != "" && l.DonorEmail() == email
}

// Details is the set of fields a donor may edit after creation.
type Details struct {
	FoodName       any
	FoodQuantity   any
	PickupLocation any
	ExpireDate     any
	Notes          any
}

// Fields renders every editable field, including nulls, so the store
// overwrites all five regardless of what the caller sent.
func (d Details) Fields() document.Document {
	return document.Document{
		FieldName:           d.FoodName,
		FieldQuantity:       d.FoodQuantity,
		FieldPickupLocation: d.PickupLocation,
		FieldExpireDate:     d.ExpireDate,
		FieldNotes:          d.Notes,
	}
}
