//go:build unit

package listing_test

import (
	"testing"

	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/domain/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListing(t *testing.T) {
	t.Run("keeps payload verbatim without id", func(t *testing.T) {
		doc := document.Document{
			document.IDKey:          "client-supplied",
			listing.FieldName:       "Bread",
			listing.FieldQuantity:   5.0,
			listing.FieldDonorEmail: "a@x.com",
			listing.FieldStatus:     "available",
			"donorName":             "Ann",
		}

		l, err := listing.NewListing(doc)
		require.NoError(t, err)

		got := l.Document()
		assert.False(t, got.Has(document.IDKey))
		assert.Equal(t, "Ann", got["donorName"])
		assert.Equal(t, "a@x.com", l.DonorEmail())
		assert.Equal(t, listing.StatusAvailable, l.Status())
		assert.Empty(t, l.ID())
	})

	t.Run("nil document is rejected", func(t *testing.T) {
		_, err := listing.NewListing(nil)
		assert.ErrorIs(t, err, listing.ErrNilDocument)
	})
}

func TestIsOwnedBy(t *testing.T) {
	l := listing.ReconstructListing("I1", document.Document{listing.FieldDonorEmail: "a@x.com"})

	cases := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "exact match", email: "a@x.com", want: true},
		{name: "different email", email: "b@x.com", want: false},
		{name: "case differs", email: "A@x.com", want: false},
		{name: "empty email", email: "", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, l.IsOwnedBy(tc.email))
		})
	}

	t.Run("listing without donor is owned by nobody", func(t *testing.T) {
		orphan := listing.ReconstructListing("I2", document.Document{})
		assert.False(t, orphan.IsOwnedBy(""))
	})
}

func TestDetailsFields(t *testing.T) {
	d := listing.Details{FoodName: "Soup", FoodQuantity: 3.0}

	fields := d.Fields()
	assert.Len(t, fields, 5)
	assert.Equal(t, "Soup", fields[listing.FieldName])
	assert.True(t, fields.Has(listing.FieldNotes))
	assert.Nil(t, fields[listing.FieldNotes])
	assert.False(t, fields.Has(listing.FieldStatus))
}
