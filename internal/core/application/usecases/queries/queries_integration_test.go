package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "catering/internal/adapters/out/postgres"
	"catering/internal/adapters/out/postgres/catalogrepo"
	"catering/internal/adapters/out/postgres/pgtest"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/event"
	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) session(userID kernel.UUID, role identity.Role) identity.Session {
	session, err := identity.NewSession(userID, role)
	suite.Require().NoError(err)
	return session
}

func (suite *QueriesIntegrationTestSuite) money(amount string) kernel.Money {
	m, err := kernel.MoneyFromString(amount)
	suite.Require().NoError(err)
	return m
}

func (suite *QueriesIntegrationTestSuite) storeProvider(userID kernel.UUID, name string, t catalog.ProviderType, active bool) *catalog.Provider {
	now := time.Now().UTC()
	p, err := catalog.RestoreProvider(kernel.NewUUID(), userID, name, gofakeit.BuzzWord(), gofakeit.City(), t,
		catalog.Contact{Phone: gofakeit.Phone(), Email: gofakeit.Email()}, active, now, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().ProviderRepository().Add(context.Background(), p))
	return p
}

func (suite *QueriesIntegrationTestSuite) storeFoodItem(providerID kernel.UUID, name string, available bool, createdAt time.Time) *catalog.FoodItem {
	item, err := catalog.RestoreFoodItem(kernel.NewUUID(), providerID, name, "", "italian",
		suite.money("120.00"), cart.Full, catalog.Dietary{Vegetarian: true}, available, createdAt, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().FoodItemRepository().Add(context.Background(), item))
	return item
}

func (suite *QueriesIntegrationTestSuite) storeEvent(userID kernel.UUID, name string, date time.Time) *event.Event {
	e, err := event.NewEvent(userID, event.Details{Name: name, Date: date, Location: gofakeit.City(), GuestCount: 40})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().EventRepository().Add(context.Background(), e))
	return e
}

func (suite *QueriesIntegrationTestSuite) storeCart(eventID, customerID kernel.UUID) *cart.Cart {
	c, err := cart.NewCart(eventID, customerID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().CartRepository().Add(context.Background(), c))
	return c
}

func (suite *QueriesIntegrationTestSuite) storeCartItem(c *cart.Cart, food *catalog.FoodItem, quantity int, backup bool) *cart.Item {
	item, err := c.AddItem(food.ID(), food.TraySize(), quantity, food.ProviderID(), food.PricePerTray(), backup)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().CartRepository().AddItem(context.Background(), item))
	return item
}

func (suite *QueriesIntegrationTestSuite) storeOrder(customerID, primaryID kernel.UUID, backupID *kernel.UUID) *order.Order {
	c, err := cart.NewCart(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)
	item, err := c.AddItem(kernel.NewUUID(), cart.Half, 2, primaryID, suite.money("50.00"), false)
	suite.Require().NoError(err)
	line, err := order.LineFromCartItem(item)
	suite.Require().NoError(err)

	o, err := order.NewOrder(c.EventID(), c.ID(), customerID, primaryID, backupID, []order.LineItem{line}, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) TestListProviders_ActiveOnlyOrderedByName() {
	ctx := context.Background()
	suite.storeProvider(kernel.NewUUID(), "Zesty Kitchen", catalog.CloudKitchen, true)
	suite.storeProvider(kernel.NewUUID(), "Amber Bistro", catalog.Restaurant, true)
	suite.storeProvider(kernel.NewUUID(), "Closed Caterer", catalog.IndependentCaterer, false)

	query, err := queries.NewListProvidersQuery(nil)
	suite.Require().NoError(err)
	providers, err := queries.NewListProvidersQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(providers, 2)
	suite.Equal("Amber Bistro", providers[0].Name)
	suite.Equal("Zesty Kitchen", providers[1].Name)
	suite.Equal(catalog.CloudKitchen, providers[1].Type)
	suite.True(providers[1].IsActive)
}

func (suite *QueriesIntegrationTestSuite) TestListProviders_FilteredByType() {
	ctx := context.Background()
	kitchen := suite.storeProvider(kernel.NewUUID(), "Zesty Kitchen", catalog.CloudKitchen, true)
	suite.storeProvider(kernel.NewUUID(), "Amber Bistro", catalog.Restaurant, true)

	kitchens := catalog.CloudKitchen
	query, err := queries.NewListProvidersQuery(&kitchens)
	suite.Require().NoError(err)
	providers, err := queries.NewListProvidersQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(providers, 1)
	suite.True(kitchen.ID().IsEqual(providers[0].ID))
	suite.Equal(kitchen.Contact(), providers[0].Contact)
}

func (suite *QueriesIntegrationTestSuite) TestGetProvider() {
	ctx := context.Background()
	inactive := suite.storeProvider(kernel.NewUUID(), "Closed Caterer", catalog.IndependentCaterer, false)
	handler := queries.NewGetProviderQueryHandler(suite.database.DB)

	query, err := queries.NewGetProviderQuery(inactive.ID())
	suite.Require().NoError(err)
	found, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("Closed Caterer", found.Name)
	suite.False(found.IsActive)
	suite.True(inactive.UserID().IsEqual(found.UserID))

	query, err = queries.NewGetProviderQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestResolveProvider() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	p := suite.storeProvider(userID, "Amber Bistro", catalog.Restaurant, true)
	handler := queries.NewResolveProviderQueryHandler(suite.database.DB)

	query, err := queries.NewResolveProviderQuery(userID)
	suite.Require().NoError(err)
	id, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(p.ID().IsEqual(id))

	query, err = queries.NewResolveProviderQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListFoodItems_AvailableNewestFirst() {
	ctx := context.Background()
	p := suite.storeProvider(kernel.NewUUID(), "Amber Bistro", catalog.Restaurant, true)
	other := suite.storeProvider(kernel.NewUUID(), "Zesty Kitchen", catalog.CloudKitchen, true)
	base := time.Now().UTC().Add(-time.Hour)
	suite.storeFoodItem(p.ID(), "Lasagna", true, base)
	suite.storeFoodItem(p.ID(), "Risotto", true, base.Add(time.Minute))
	suite.storeFoodItem(p.ID(), "Retired Soup", false, base.Add(2*time.Minute))
	suite.storeFoodItem(other.ID(), "Ramen", true, base)

	query, err := queries.NewListFoodItemsQuery(p.ID())
	suite.Require().NoError(err)
	items, err := queries.NewListFoodItemsQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(items, 2)
	suite.Equal("Risotto", items[0].Name)
	suite.Equal("Lasagna", items[1].Name)
	suite.Equal(cart.Full, items[0].TraySize)
	suite.True(items[0].Dietary.Vegetarian)
	suite.True(suite.money("120").IsEqual(items[0].PricePerTray))
}

func (suite *QueriesIntegrationTestSuite) TestListEvents_OwnEventsByDate() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	now := time.Now().UTC()
	suite.storeEvent(userID, "Wedding", now.Add(72*time.Hour))
	suite.storeEvent(userID, "Birthday", now.Add(24*time.Hour))
	suite.storeEvent(kernel.NewUUID(), "Conference", now.Add(48*time.Hour))

	query, err := queries.NewListEventsQuery(suite.session(userID, identity.Organizer))
	suite.Require().NoError(err)
	events, err := queries.NewListEventsQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(events, 2)
	suite.Equal("Birthday", events[0].Name)
	suite.Equal("Wedding", events[1].Name)
	suite.Equal(event.Planning, events[0].Status)
	suite.Nil(events[0].Budget)
}

func (suite *QueriesIntegrationTestSuite) TestGetCart_ItemsWithNamesAndTotals() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	primary := suite.storeProvider(kernel.NewUUID(), "Amber Bistro", catalog.Restaurant, true)
	backup := suite.storeProvider(kernel.NewUUID(), "Zesty Kitchen", catalog.CloudKitchen, true)
	lasagna := suite.storeFoodItem(primary.ID(), "Lasagna", true, time.Now().UTC())
	ramen := suite.storeFoodItem(backup.ID(), "Ramen", true, time.Now().UTC())

	e := suite.storeEvent(customerID, "Birthday", time.Now().UTC().Add(24*time.Hour))
	c := suite.storeCart(e.ID(), customerID)
	first := suite.storeCartItem(c, lasagna, 3, false)
	suite.storeCartItem(c, ramen, 1, true)

	query, err := queries.NewGetCartQuery(suite.session(customerID, identity.Customer), c.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetCartQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(e.ID().IsEqual(view.EventID))
	suite.Require().Len(view.Items, 2)
	suite.True(first.ID().IsEqual(view.Items[0].ID))
	suite.Equal("Lasagna", view.Items[0].FoodItemName)
	suite.Equal("Amber Bistro", view.Items[0].ProviderName)
	suite.True(suite.money("360").IsEqual(view.Items[0].Subtotal))
	suite.Equal("Zesty Kitchen", view.Items[1].ProviderName)
	suite.True(view.Items[1].IsBackupProvider)
	suite.True(suite.money("360").IsEqual(view.Totals.Primary))
	suite.True(suite.money("120").IsEqual(view.Totals.Backup))
}

func (suite *QueriesIntegrationTestSuite) TestGetCart_EmptyCart() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	c := suite.storeCart(kernel.NewUUID(), customerID)

	query, err := queries.NewGetCartQuery(suite.session(customerID, identity.Customer), c.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetCartQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.NotNil(view.Items)
	suite.Empty(view.Items)
	suite.True(view.Totals.Sum().IsZero())
}

func (suite *QueriesIntegrationTestSuite) TestGetCart_ForeignAndUnknown() {
	ctx := context.Background()
	c := suite.storeCart(kernel.NewUUID(), kernel.NewUUID())
	handler := queries.NewGetCartQueryHandler(suite.database.DB)
	stranger := suite.session(kernel.NewUUID(), identity.Customer)

	query, err := queries.NewGetCartQuery(stranger, c.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.ErrorIs(err, errs.ErrForbidden)

	query, err = queries.NewGetCartQuery(stranger, kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_ScopedByRole() {
	ctx := context.Background()
	customerID, otherCustomerID := kernel.NewUUID(), kernel.NewUUID()
	primaryUser, backupUser := kernel.NewUUID(), kernel.NewUUID()
	primary := suite.storeProvider(primaryUser, "Amber Bistro", catalog.Restaurant, true)
	backup := suite.storeProvider(backupUser, "Zesty Kitchen", catalog.CloudKitchen, true)
	backupID := backup.ID()

	withBackup := suite.storeOrder(customerID, primary.ID(), &backupID)
	plain := suite.storeOrder(customerID, primary.ID(), nil)
	foreign := suite.storeOrder(otherCustomerID, backup.ID(), nil)

	tests := []struct {
		name    string
		session identity.Session
		want    []*order.Order
	}{
		{"customer sees own orders", suite.session(customerID, identity.Customer), []*order.Order{plain, withBackup}},
		{"primary provider", suite.session(primaryUser, identity.Restaurant), []*order.Order{plain, withBackup}},
		{"backup provider", suite.session(backupUser, identity.Caterer), []*order.Order{foreign, withBackup}},
		{"provider without profile", suite.session(kernel.NewUUID(), identity.Caterer), nil},
		{"organizer", suite.session(kernel.NewUUID(), identity.Organizer), nil},
		{"admin sees all", suite.session(kernel.NewUUID(), identity.Admin), []*order.Order{foreign, plain, withBackup}},
	}

	handler := queries.NewGetOrdersQueryHandler(suite.database.DB)
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			query, err := queries.NewGetOrdersQuery(tt.session)
			suite.Require().NoError(err)

			got, err := handler.Handle(ctx, query)
			suite.Require().NoError(err)
			suite.Require().NotNil(got)
			suite.Require().Len(got, len(tt.want))
			for i, want := range tt.want {
				suite.True(want.ID().IsEqual(got[i].ID), "position %d", i)
			}
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_ReturnsSnapshotLines() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	p := suite.storeProvider(kernel.NewUUID(), "Amber Bistro", catalog.Restaurant, true)
	placed := suite.storeOrder(customerID, p.ID(), nil)

	query, err := queries.NewGetOrdersQuery(suite.session(customerID, identity.Customer))
	suite.Require().NoError(err)
	got, err := queries.NewGetOrdersQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(got, 1)
	suite.Equal(order.Pending, got[0].Status)
	suite.Nil(got[0].BackupProviderID)
	suite.Nil(got[0].SourceOrderID)
	suite.True(placed.TotalPrimary().IsEqual(got[0].TotalPrimary))
	suite.True(got[0].TotalAmount.IsEqual(got[0].TotalPrimary))
	suite.Require().Len(got[0].Items, 1)
	suite.Equal(2, got[0].Items[0].Quantity)
	suite.Equal(cart.Half, got[0].Items[0].TraySize)
	suite.Empty(got[0].Items[0].FoodItemName)
}

func (suite *QueriesIntegrationTestSuite) storeMenu(providerID kernel.UUID, title string, createdAt time.Time) *catalog.Menu {
	menu, err := catalog.RestoreMenu(kernel.NewUUID(), providerID, title, gofakeit.Sentence(5), createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().MenuRepository().Add(context.Background(), menu))
	return menu
}

func (suite *QueriesIntegrationTestSuite) TestListMenus_ByProviderNewestFirst() {
	ctx := context.Background()
	p := suite.storeProvider(kernel.NewUUID(), "Amber Bistro", catalog.Restaurant, true)
	other := suite.storeProvider(kernel.NewUUID(), "Zesty Kitchen", catalog.CloudKitchen, true)
	now := time.Now().UTC()
	suite.storeMenu(p.ID(), "Brunch", now.Add(-time.Hour))
	suite.storeMenu(p.ID(), "Dinner", now)
	suite.storeMenu(other.ID(), "Lunch", now)

	providerID := p.ID()
	query, err := queries.NewListMenusQuery(identity.Anonymous(), &providerID)
	suite.Require().NoError(err)
	menus, err := queries.NewListMenusQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(menus, 2)
	suite.Equal("Dinner", menus[0].Title)
	suite.Equal("Brunch", menus[1].Title)
	suite.True(menus[0].ProviderID.IsEqual(p.ID()))
}

func (suite *QueriesIntegrationTestSuite) TestListMenus_OwnProfile() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	p := suite.storeProvider(userID, "Casa Verde", catalog.IndependentCaterer, true)
	suite.storeMenu(p.ID(), "Wedding buffet", time.Now().UTC())

	query, err := queries.NewListMenusQuery(suite.session(userID, identity.Caterer), nil)
	suite.Require().NoError(err)
	menus, err := queries.NewListMenusQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(menus, 1)
	suite.Equal("Wedding buffet", menus[0].Title)

	query, err = queries.NewListMenusQuery(suite.session(kernel.NewUUID(), identity.Restaurant), nil)
	suite.Require().NoError(err)
	menus, err = queries.NewListMenusQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(menus)
}

func (suite *QueriesIntegrationTestSuite) TestListReviews_NewestFirst() {
	ctx := context.Background()
	p := suite.storeProvider(kernel.NewUUID(), "Amber Bistro", catalog.Restaurant, true)
	other := suite.storeProvider(kernel.NewUUID(), "Zesty Kitchen", catalog.CloudKitchen, true)
	customerID := kernel.NewUUID()
	now := time.Now().UTC()
	for _, r := range []catalogrepo.ReviewDTO{
		{ID: kernel.NewUUID().Raw(), ProviderID: p.ID().Raw(), CustomerID: customerID.Raw(), Rating: 4, Comment: "great trays", CreatedAt: now.Add(-time.Hour), UpdatedAt: now},
		{ID: kernel.NewUUID().Raw(), ProviderID: p.ID().Raw(), CustomerID: customerID.Raw(), Rating: 2, Comment: "late delivery", CreatedAt: now, UpdatedAt: now},
		{ID: kernel.NewUUID().Raw(), ProviderID: other.ID().Raw(), CustomerID: customerID.Raw(), Rating: 5, CreatedAt: now, UpdatedAt: now},
	} {
		suite.Require().NoError(suite.database.DB.Create(&r).Error)
	}

	query, err := queries.NewListReviewsQuery(p.ID())
	suite.Require().NoError(err)
	reviews, err := queries.NewListReviewsQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(reviews, 2)
	suite.Equal(2, reviews[0].Rating)
	suite.Equal("late delivery", reviews[0].Comment)
	suite.Equal("great trays", reviews[1].Comment)
	suite.True(reviews[1].CustomerID.IsEqual(customerID))

	query, err = queries.NewListReviewsQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	reviews, err = queries.NewListReviewsQueryHandler(suite.database.DB).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(reviews)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
