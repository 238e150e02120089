package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/event"
	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/outbox"
	"catering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) GetByEventAndCustomer(ctx context.Context, eventID, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, eventID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) AddItem(ctx context.Context, item *cart.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartRepository) UpdateItem(ctx context.Context, item *cart.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartRepository) RemoveItem(ctx context.Context, itemID kernel.UUID) error {
	return m.Called(ctx, itemID).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetBySourceOrder(ctx context.Context, sourceID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, msg *outbox.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockOutboxRepository) Update(ctx context.Context, msg *outbox.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockOutboxRepository) GetByAggregate(ctx context.Context, kind outbox.Kind, aggregateID kernel.UUID) (*outbox.Message, error) {
	args := m.Called(ctx, kind, aggregateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbox.Message), args.Error(1)
}

func (m *MockOutboxRepository) ListPending(ctx context.Context, kind outbox.Kind, maxAttempts, limit int) ([]*outbox.Message, error) {
	args := m.Called(ctx, kind, maxAttempts, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*outbox.Message), args.Error(1)
}

type MockProviderRepository struct{ mock.Mock }

func (m *MockProviderRepository) Add(ctx context.Context, p *catalog.Provider) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProviderRepository) Update(ctx context.Context, p *catalog.Provider) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProviderRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Provider), args.Error(1)
}

func (m *MockProviderRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*catalog.Provider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Provider), args.Error(1)
}

type MockFoodItemRepository struct{ mock.Mock }

func (m *MockFoodItemRepository) Add(ctx context.Context, f *catalog.FoodItem) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFoodItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.FoodItem), args.Error(1)
}

func (m *MockFoodItemRepository) Update(ctx context.Context, f *catalog.FoodItem) error {
	return m.Called(ctx, f).Error(0)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, menu *catalog.Menu) error {
	return m.Called(ctx, menu).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Menu), args.Error(1)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Add(ctx context.Context, e *event.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEventRepository) Get(ctx context.Context, id kernel.UUID) (*event.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

// MockUoW satisfies every per-command unit of work interface.
type MockUoW struct {
	mock.Mock

	carts     *MockCartRepository
	orders    *MockOrderRepository
	outbox    *MockOutboxRepository
	providers *MockProviderRepository
	foodItems *MockFoodItemRepository
	menus     *MockMenuRepository
	events    *MockEventRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		carts:     new(MockCartRepository),
		orders:    new(MockOrderRepository),
		outbox:    new(MockOutboxRepository),
		providers: new(MockProviderRepository),
		foodItems: new(MockFoodItemRepository),
		menus:     new(MockMenuRepository),
		events:    new(MockEventRepository),
	}
}

// expectTx registers a transaction, committed or not.
func (m *MockUoW) expectTx(commit bool) *MockUoW {
	m.On("Begin", mock.Anything).Return(nil).Once()
	if commit {
		m.On("Commit", mock.Anything).Return(nil).Once()
	}
	m.On("Rollback", mock.Anything).Return(nil).Once()
	return m
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) CartRepository() ports.CartRepository { return m.carts }
func (m *MockUoW) OrderRepository() ports.OrderRepository { return m.orders }
func (m *MockUoW) OutboxRepository() ports.OutboxRepository { return m.outbox }
func (m *MockUoW) ProviderRepository() ports.ProviderRepository { return m.providers }
func (m *MockUoW) FoodItemRepository() ports.FoodItemRepository { return m.foodItems }
func (m *MockUoW) MenuRepository() ports.MenuRepository { return m.menus }
func (m *MockUoW) EventRepository() ports.EventRepository { return m.events }

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.carts.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.outbox.AssertExpectations(t)
	m.providers.AssertExpectations(t)
	m.foodItems.AssertExpectations(t)
	m.menus.AssertExpectations(t)
	m.events.AssertExpectations(t)
}

// factory hands out the same MockUoW for every Create call.
type factory struct{ uow *MockUoW }

func (f factory) cart() commands.CartUoWFactory { return cartFactory(f) }
func (f factory) order() commands.OrderUoWFactory { return orderFactory(f) }
func (f factory) outbox() commands.OutboxUoWFactory { return outboxFactory(f) }
func (f factory) catalog() commands.CatalogUoWFactory { return catalogFactory(f) }
func (f factory) event() commands.EventUoWFactory { return eventFactory(f) }

type cartFactory factory

func (f cartFactory) Create() commands.CartUoW { return f.uow }

type orderFactory factory

func (f orderFactory) Create() commands.OrderUoW { return f.uow }

type outboxFactory factory

func (f outboxFactory) Create() commands.OutboxUoW { return f.uow }

type catalogFactory factory

func (f catalogFactory) Create() commands.CatalogUoW { return f.uow }

type eventFactory factory

func (f eventFactory) Create() commands.EventUoW { return f.uow }

type MockBackupOrderCreator struct{ mock.Mock }

func (m *MockBackupOrderCreator) Handle(ctx context.Context, cmd commands.CreateBackupOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// recordingNotifier keeps every notification it receives.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []ports.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification ports.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

func (n *recordingNotifier) kinds() []ports.NotificationKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ports.NotificationKind, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.Kind)
	}
	return out
}

func newSession(t *testing.T, role identity.Role) identity.Session {
	t.Helper()
	s, err := identity.NewSession(kernel.NewUUID(), role)
	require.NoError(t, err)
	return s
}

func money(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func newProvider(t *testing.T, userID kernel.UUID) *catalog.Provider {
	t.Helper()
	p, err := catalog.NewProvider(userID, "Casa Verde", "", "Austin", catalog.Restaurant, catalog.Contact{})
	require.NoError(t, err)
	return p
}

// referenceCart holds a full tray × 2 at 800 from primaryID and a half
// tray × 1 at 150 from backupID.
func referenceCart(t *testing.T, customerID, primaryID, backupID kernel.UUID) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	_, err = c.AddItem(kernel.NewUUID(), cart.Full, 2, primaryID, money(t, "800"), false)
	require.NoError(t, err)
	_, err = c.AddItem(kernel.NewUUID(), cart.Half, 1, backupID, money(t, "150"), true)
	require.NoError(t, err)
	return c
}

func placedOrder(t *testing.T, customerID, primaryID kernel.UUID, backupID *kernel.UUID) *order.Order {
	t.Helper()
	backupProvider := kernel.NewUUID()
	if backupID != nil {
		backupProvider = *backupID
	}
	c := referenceCart(t, customerID, primaryID, backupProvider)
	lines := make([]order.LineItem, 0, 2)
	for _, item := range c.Items() {
		line, err := order.LineFromCartItem(item)
		require.NoError(t, err)
		lines = append(lines, line)
	}
	o, err := order.NewOrder(c.EventID(), c.ID(), customerID, primaryID, backupID, lines, "")
	require.NoError(t, err)
	return o
}

func newFoodItem(t *testing.T, providerID kernel.UUID) *catalog.FoodItem {
	t.Helper()
	f, err := catalog.NewFoodItem(providerID, "Enchiladas", "", "mexican", money(t, "800"), cart.Full, catalog.Dietary{})
	require.NoError(t, err)
	return f
}

func mustDate(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 12, 5, 18, 0, 0, 0, time.UTC)
}
