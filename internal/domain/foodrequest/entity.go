package foodrequest

import (
	"time"

	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/pkg/errs"
)

var (
	ErrMissingListingReference = errs.New("food request must reference a listing")
	ErrInvalidTransition       = errs.New("food request is no longer pending")
)

// Request is a recipient's claim against a listing.
type Request struct {
	id        string
	listingID string
	status    Status
	doc       document.Document
}

// NewRequest keeps the payload verbatim apart from the listing reference,
// which is stored in canonical form. A missing status starts the request in
// pending.
func NewRequest(doc document.Document) (*Request, error) {
	if doc == nil || doc.String(FieldListingID) == "" {
		return nil, ErrMissingListingReference
	}
	r := ReconstructRequest("", doc)
	r.doc[FieldListingID] = r.listingID
	r.doc[FieldStatus] = r.status.String()
	return r, nil
}

// ReconstructRequest rebuilds a stored request. Documents without a status
// are treated as pending.
func ReconstructRequest(id string, doc document.Document) *Request {
	status := Status(doc.String(FieldStatus))
	if status == "" {
		status = StatusPending
	}
	return &Request{
		id:        id,
		listingID: document.CanonicalID(doc.String(FieldListingID)),
		status:    status,
		doc:       doc.Without(document.IDKey),
	}
}

func (r *Request) ID() string                  { return r.id }
func (r *Request) ListingID() string           { return r.listingID }
func (r *Request) Status() Status              { return r.status }
func (r *Request) Document() document.Document { return r.doc.Clone() }

func (r *Request) BelongsTo(listingID string) bool {
	return r.listingID == document.CanonicalID(listingID)
}

func (r *Request) Accept(now time.Time) error {
	return r.transition(StatusAccepted, now)
}

func (r *Request) Reject(now time.Time) error {
	return r.transition(StatusRejected, now)
}

func (r *Request) transition(to Status, now time.Time) error {
	if r.status != StatusPending {
		return errs.Wrap(ErrInvalidTransition, "cannot move "+r.status.String()+" request to "+to.String())
	}
	r.status = to
	r.doc[FieldStatus] = to.String()
	r.doc[FieldRespondedAt] = now.UTC().Format(time.RFC3339)
	return nil
}
