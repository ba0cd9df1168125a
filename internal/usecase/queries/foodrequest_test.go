//go:build unit

package queries_test

import (
	"context"
	"testing"

	"plateshare-server/internal/infra"
	"plateshare-server/internal/pkg/errs"
	"plateshare-server/internal/usecase/queries"
	"plateshare-server/tests/common/builder"
	queriesmock "plateshare-server/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FoodRequestQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	listings *queriesmock.MockListingReadStore
	requests *queriesmock.MockFoodRequestReadStore
	uc       queries.FoodRequestQueries
}

func (s *FoodRequestQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.listings = queriesmock.NewMockListingReadStore(s.ctrl)
	s.requests = queriesmock.NewMockFoodRequestReadStore(s.ctrl)
	s.uc = queries.NewFoodRequestQueries(s.listings, s.requests)
}

func (s *FoodRequestQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFoodRequestQueriesSuite(t *testing.T) {
	suite.Run(t, new(FoodRequestQueriesTestSuite))
}

func (s *FoodRequestQueriesTestSuite) TestListForOwner() {
	ctx := context.Background()
	listingView := builder.NewListingBuilder().BuildView()

	s.Run("donor sees the requests", func() {
		views := []*queries.FoodRequestView{builder.NewFoodRequestBuilder().BuildView()}
		s.listings.EXPECT().FindByID(ctx, listingView.ID).Return(listingView, nil).Times(1)
		s.requests.EXPECT().ListByListing(ctx, listingView.ID).Return(views, nil).Times(1)

		got, err := s.uc.ListForOwner(ctx, listingView.ID, "donor@example.com")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), views, got)
	})

	s.Run("missing listing is reported before the caller check", func() {
		s.listings.EXPECT().FindByID(ctx, "gone").
			Return(nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.uc.ListForOwner(ctx, "gone", "")
		assert.True(s.T(), errs.Is(err, errs.ErrListingNotFound))
	})

	s.Run("no caller email", func() {
		s.listings.EXPECT().FindByID(ctx, listingView.ID).Return(listingView, nil).Times(1)

		_, err := s.uc.ListForOwner(ctx, listingView.ID, "")
		assert.True(s.T(), errs.Is(err, errs.ErrCallerEmailRequired))
	})

	s.Run("someone else's listing", func() {
		s.listings.EXPECT().FindByID(ctx, listingView.ID).Return(listingView, nil).Times(1)

		_, err := s.uc.ListForOwner(ctx, listingView.ID, "stranger@example.com")
		assert.True(s.T(), errs.Is(err, errs.ErrNotListingOwner))
	})

	s.Run("email comparison is exact", func() {
		s.listings.EXPECT().FindByID(ctx, listingView.ID).Return(listingView, nil).Times(1)

		_, err := s.uc.ListForOwner(ctx, listingView.ID, "Donor@Example.com")
		assert.True(s.T(), errs.Is(err, errs.ErrNotListingOwner))
	})
}
