package cartrepo_test

import (
	"context"
	"testing"

	"catering/internal/adapters/out/postgres/cartrepo"
	"catering/internal/adapters/out/postgres/pgtest"
	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *cartrepo.GormCartRepository
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = cartrepo.NewGormCartRepository(suite.database.DB, tracker)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *CartRepositoryIntegrationTestSuite) TestAdd_SecondCartForSameEventAndCustomer_AlreadyExists() {
	ctx := context.Background()
	eventID, customerID := kernel.NewUUID(), kernel.NewUUID()

	first, err := cart.NewCart(eventID, customerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := cart.NewCart(eventID, customerID)
	suite.Require().NoError(err)
	suite.ErrorIs(suite.repository.Add(ctx, second), ports.ErrAlreadyExists)

	stored, err := suite.repository.GetByEventAndCustomer(ctx, eventID, customerID)
	suite.Require().NoError(err)
	suite.True(stored.ID().IsEqual(first.ID()))
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetByEventAndCustomer_NoCart_NotFound() {
	_, err := suite.repository.GetByEventAndCustomer(context.Background(), kernel.NewUUID(), kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CartRepositoryIntegrationTestSuite) TestItems_AddUpdateRemove() {
	ctx := context.Background()
	c := suite.storeCart()

	full := suite.addItem(c, cart.Full, 2, "800", false)
	half := suite.addItem(c, cart.Half, 1, "150", true)

	stored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Require().Len(stored.Items(), 2)
	_, found := stored.Item(full.ID())
	suite.True(found)
	totals := stored.Totals()
	suite.Equal("1600.00", totals.Primary.String())
	suite.Equal("150.00", totals.Backup.String())

	updated, err := stored.UpdateQuantity(full.ID(), 3)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.UpdateItem(ctx, updated))

	suite.Require().NoError(suite.repository.RemoveItem(ctx, half.ID()))
	suite.Require().NoError(suite.repository.RemoveItem(ctx, half.ID()), "Removing twice is not an error")

	stored, err = suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Require().Len(stored.Items(), 1)
	suite.Equal(3, stored.Items()[0].Quantity())
	suite.Equal("2400.00", stored.Totals().Primary.String())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetByItemID() {
	ctx := context.Background()
	c := suite.storeCart()
	item := suite.addItem(c, cart.Quarter, 4, "42.50", false)

	owner, err := suite.repository.GetByItemID(ctx, item.ID())
	suite.Require().NoError(err)
	suite.True(owner.ID().IsEqual(c.ID()))

	_, err = suite.repository.GetByItemID(ctx, kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CartRepositoryIntegrationTestSuite) TestUpdateItem_DeletedLine_NotFound() {
	ctx := context.Background()
	c := suite.storeCart()
	item := suite.addItem(c, cart.Full, 1, "10", false)
	suite.Require().NoError(suite.repository.RemoveItem(ctx, item.ID()))

	suite.ErrorIs(suite.repository.UpdateItem(ctx, item), errs.ErrObjectNotFound)
}

func (suite *CartRepositoryIntegrationTestSuite) storeCart() *cart.Cart {
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), c))
	return c
}

func (suite *CartRepositoryIntegrationTestSuite) addItem(c *cart.Cart, size cart.TraySize, quantity int, price string, backup bool) *cart.Item {
	unitPrice, err := kernel.MoneyFromString(price)
	suite.Require().NoError(err)
	item, err := c.AddItem(kernel.NewUUID(), size, quantity, kernel.NewUUID(), unitPrice, backup)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddItem(context.Background(), item))
	return item
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
