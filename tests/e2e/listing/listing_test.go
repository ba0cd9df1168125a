//go:build e2e

package listing_test

import (
	"fmt"
	"net/http"
	"testing"

	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/handler/api"
	"plateshare-server/internal/handler/dto/response"
	"plateshare-server/internal/handler/httperr"
	"plateshare-server/tests/common/builder"
	"plateshare-server/tests/common/dbtest"
	"plateshare-server/tests/common/httptest"
	"plateshare-server/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	foodsURL    = "/foods"
	foodURL     = "/food/%s"
	foodByIDURL = "/foods/%s"
	manageURL   = "/foods-manage?email=%s"
	featuredURL = "/featured-foods"
	addFoodURL  = "/add-food"
)

type ListingSuite struct {
	e2e.SharedSuite
}

func TestListingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ListingSuite))
}

func (s *ListingSuite) TestRoot() {
	s.Run("Normal case: liveness text", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, api.LivenessMessage, w.Body.String())
	})

	s.Run("Normal case: health reports the store", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Error case: unknown route", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/nope", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, httperr.CodeNotFound)
	})
}

func (s *ListingSuite) TestCreateAndGet() {
	s.Run("Normal case: body is stored verbatim", func() {
		t := s.T()
		body := builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
			b.Extra = document.Document{"foodImage": "https://img.example.com/curry.png"}
		}).BuildDocument()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, addFoodURL, body, "")
		var created response.InsertResult
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.True(t, created.Acknowledged)
		require.NotEmpty(t, created.InsertedID)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(foodURL, created.InsertedID), nil, "")
		var got map[string]any
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &got)

		want := map[string]any(body.WithID(created.InsertedID))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("listing mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: unparsable body", func() {
		t := s.T()
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, addFoodURL, "{not json")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, httperr.CodeInvalidArgument)
	})

	s.Run("Error case: malformed id", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(foodURL, "abc"), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, httperr.CodeInvalidArgument)
	})

	s.Run("Error case: unknown id", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(foodURL, "00000000-0000-0000-0000-000000000000"), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, httperr.CodeNotFound)
	})
}

func (s *ListingSuite) TestList() {
	s.Run("Normal case: filters by status and donor in insertion order", func() {
		t := s.T()
		a := dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
			b.FoodName = "A"
		}).BuildDocument())
		dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
			b.FoodName = "B"
			b.Status = "Donated"
		}).BuildDocument())
		c := dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
			b.FoodName = "C"
		}).BuildDocument())
		dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
			b.FoodName = "D"
			b.DonorEmail = "other@example.com"
		}).BuildDocument())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, foodsURL+"?status=available&email=donor@example.com", nil, "")
		var got []map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		require.Len(t, got, 2)
		assert.Equal(t, a, got[0]["_id"])
		assert.Equal(t, c, got[1]["_id"])
	})

	s.Run("Normal case: aliases match the same filters", func() {
		t := s.T()
		dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().BuildDocument())
		dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
			b.Status = "Donated"
		}).BuildDocument())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, foodsURL+"?food_status=Donated&donorEmail=donor@example.com", nil, "")
		var got []map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Donated", got[0]["food_status"])
	})

	s.Run("Normal case: empty store returns an empty array", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, foodsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	s.Run("Normal case: manage view lists one donor", func() {
		t := s.T()
		id := dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().BuildDocument())
		dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
			b.DonorEmail = "other@example.com"
		}).BuildDocument())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(manageURL, "donor@example.com"), nil, "")
		var got []map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 1)
		assert.Equal(t, id, got[0]["_id"])
	})
}

func (s *ListingSuite) TestFeatured() {
	s.Run("Normal case: six largest quantities, descending", func() {
		t := s.T()
		for _, q := range []float64{3, 9, 1, 7, 5, 8, 2, 6} {
			dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
				b.FoodQuantity = q
			}).BuildDocument())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, featuredURL, nil, "")
		var got []map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		quantities := make([]float64, 0, len(got))
		for _, l := range got {
			quantities = append(quantities, l["foodQuantity"].(float64))
		}
		if diff := cmp.Diff([]float64{9, 8, 7, 6, 5, 3}, quantities); diff != "" {
			t.Errorf("featured order mismatch (-want +got):\n%s", diff)
		}
	})
}

func (s *ListingSuite) TestUpdate() {
	s.Run("Normal case: overwrites the five fields and keeps the rest", func() {
		t := s.T()
		id := dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().With(func(b *builder.ListingBuilder) {
			b.Extra = document.Document{"foodImage": "x.png"}
		}).BuildDocument())

		body := map[string]any{
			"foodName":     "Rice",
			"foodQuantity": 4,
			"food_status":  "Donated",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(foodByIDURL, id), body, "")
		var res response.UpdateResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, response.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, res)

		doc := dbtest.FetchListing(t, s.DB, id)
		assert.Equal(t, "Rice", doc["foodName"])
		assert.Equal(t, float64(4), doc["foodQuantity"])
		assert.Nil(t, doc["pickupLocation"])
		assert.Equal(t, "available", doc["food_status"])
		assert.Equal(t, "x.png", doc["foodImage"])
	})

	s.Run("Normal case: identical payload reports no modification", func() {
		t := s.T()
		b := builder.NewListingBuilder()
		id := dbtest.InsertListing(t, s.DB, b.BuildDocument())

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(foodByIDURL, id), b.BuildUpdateRequestDTO(), "")
		var res response.UpdateResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(0), res.ModifiedCount)
	})

	s.Run("Error case: unknown id", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(foodByIDURL, "00000000-0000-0000-0000-000000000000"),
			builder.NewListingBuilder().BuildUpdateRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, httperr.CodeNotFound)
	})
}

func (s *ListingSuite) TestDelete() {
	s.Run("Normal case: removes the listing and its requests", func() {
		t := s.T()
		id := dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().BuildDocument())
		for range 2 {
			dbtest.InsertFoodRequest(t, s.DB, builder.NewFoodRequestBuilder().With(func(b *builder.FoodRequestBuilder) {
				b.ListingID = id
			}).BuildDocument())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(foodByIDURL, id), nil, "")
		var res response.DeleteResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, response.DeleteResult{Acknowledged: true, DeletedCount: 1}, res)
		assert.Zero(t, dbtest.CountFoodRequests(t, s.DB, id))

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(foodURL, id), nil, "")
		httptest.AssertErrorResponse(t, gw, http.StatusNotFound, httperr.CodeNotFound)
	})

	s.Run("Error case: second delete is not found", func() {
		t := s.T()
		id := dbtest.InsertListing(t, s.DB, builder.NewListingBuilder().BuildDocument())
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(foodByIDURL, id), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(foodByIDURL, id), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, httperr.CodeNotFound)
	})
}
