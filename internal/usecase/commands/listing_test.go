//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"plateshare-server/internal/domain/document"
	"plateshare-server/internal/domain/listing"
	"plateshare-server/internal/infra"
	"plateshare-server/internal/pkg/errs"
	"plateshare-server/internal/usecase/commands"
	"plateshare-server/internal/usecase/shared"
	"plateshare-server/tests/common/builder"
	sharedmock "plateshare-server/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	listings *sharedmock.MockListingRepository
	requests *sharedmock.MockFoodRequestRepository
	uc       commands.ListingCommands
}

func (s *ListingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.listings = sharedmock.NewMockListingRepository(s.ctrl)
	s.requests = sharedmock.NewMockFoodRequestRepository(s.ctrl)

	s.uow.EXPECT().Listings().Return(s.listings).AnyTimes()
	s.uow.EXPECT().FoodRequests().Return(s.requests).AnyTimes()
	s.tx.EXPECT().Listings().Return(s.listings).AnyTimes()
	s.tx.EXPECT().FoodRequests().Return(s.requests).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()

	s.uc = commands.NewListingCommands(s.uow)
}

func (s *ListingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestListingCommandsSuite(t *testing.T) {
	suite.Run(t, new(ListingCommandsTestSuite))
}

func (s *ListingCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("stores the document as given", func() {
		doc := builder.NewListingBuilder().BuildDocument()
		s.listings.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, l *listing.Listing) (string, error) {
				assert.Equal(s.T(), map[string]any(doc), map[string]any(l.Document()))
				return "new-id", nil
			}).Times(1)

		id, err := s.uc.Create(ctx, doc)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), "new-id", id)
	})

	s.Run("nil document is an invalid payload", func() {
		_, err := s.uc.Create(ctx, nil)
		assert.True(s.T(), errs.Is(err, errs.ErrInvalidPayload))
	})

	s.Run("store failure", func() {
		s.listings.EXPECT().Create(ctx, gomock.Any()).
			Return("", infra.WrapRepoErr("insert failed", errors.New("conn reset"))).Times(1)

		_, err := s.uc.Create(ctx, document.Document{"foodName": "x"})
		assert.True(s.T(), errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func (s *ListingCommandsTestSuite) TestUpdate() {
	ctx := context.Background()
	details := builder.NewListingBuilder().BuildDetails()

	s.Run("writes exactly the five fields", func() {
		s.listings.EXPECT().UpdateFields(ctx, "L1", details.Fields()).
			Return(shared.UpdateResult{Matched: 1, Modified: 0}, nil).Times(1)

		res, err := s.uc.Update(ctx, "L1", details)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), &commands.UpdateListingResult{MatchedCount: 1, ModifiedCount: 0}, res)
	})

	s.Run("missing listing", func() {
		s.listings.EXPECT().UpdateFields(ctx, "L1", gomock.Any()).
			Return(shared.UpdateResult{}, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.uc.Update(ctx, "L1", details)
		assert.True(s.T(), errs.Is(err, errs.ErrListingNotFound))
	})

	s.Run("malformed id", func() {
		s.listings.EXPECT().UpdateFields(ctx, "bad", gomock.Any()).
			Return(shared.UpdateResult{}, infra.WrapRepoErr("invalid listing id", errors.New("bad"), infra.KindInvalidID)).Times(1)

		_, err := s.uc.Update(ctx, "bad", details)
		assert.True(s.T(), errs.Is(err, errs.ErrInvalidID))
	})
}

func (s *ListingCommandsTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("removes the listing and its requests", func() {
		gomock.InOrder(
			s.listings.EXPECT().Delete(ctx, "L1").Return(nil),
			s.requests.EXPECT().DeleteByListing(ctx, "L1").Return(int64(2), nil),
		)

		res, err := s.uc.Delete(ctx, "L1")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), &commands.DeleteListingResult{DeletedCount: 1, DeletedRequestsCount: 2}, res)
	})

	s.Run("requests are matched on the canonical listing id", func() {
		gomock.InOrder(
			s.listings.EXPECT().Delete(ctx, "64B7F0C2A1E4D3B2C1A09F87").Return(nil),
			s.requests.EXPECT().DeleteByListing(ctx, "64b7f0c2a1e4d3b2c1a09f87").Return(int64(1), nil),
		)

		res, err := s.uc.Delete(ctx, "64B7F0C2A1E4D3B2C1A09F87")
		require.NoError(s.T(), err)
		assert.Equal(s.T(), int64(1), res.DeletedRequestsCount)
	})

	s.Run("missing listing leaves requests alone", func() {
		s.listings.EXPECT().Delete(ctx, "L1").
			Return(infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.uc.Delete(ctx, "L1")
		assert.True(s.T(), errs.Is(err, errs.ErrListingNotFound))
	})

	s.Run("request cleanup failure fails the whole delete", func() {
		s.listings.EXPECT().Delete(ctx, "L1").Return(nil).Times(1)
		s.requests.EXPECT().DeleteByListing(ctx, "L1").
			Return(int64(0), infra.WrapRepoErr("delete failed", errors.New("timeout"))).Times(1)

		_, err := s.uc.Delete(ctx, "L1")
		assert.True(s.T(), errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
