package commands_test

import (
	"errors"
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/cart"
	"catering/internal/core/domain/model/event"
	"catering/internal/core/domain/model/identity"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateCartCommandHandler_ReturnsExisting(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	existing, err := cart.NewCart(kernel.NewUUID(), session.UserID())
	require.NoError(t, err)

	uow := newMockUoW().expectTx(false)
	uow.carts.On("GetByEventAndCustomer", mock.Anything, existing.EventID(), session.UserID()).Return(existing, nil).Once()
	notifier := &recordingNotifier{}

	cmd, err := commands.NewGetOrCreateCartCommand(session, existing.EventID())
	require.NoError(t, err)
	h := commands.NewGetOrCreateCartCommandHandler(factory{uow}.cart(), notifier)
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, existing, got)
	assert.Empty(t, notifier.sent)
	uow.assertAll(t)
}

func TestGetOrCreateCartCommandHandler_CreatesOnFirstAccess(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	eventID := kernel.NewUUID()
	planned, err := event.NewEvent(session.UserID(), event.Details{
		Name: "Launch", Date: mustDate(t), Location: "Austin", GuestCount: 40, CuisineType: "tex-mex",
	})
	require.NoError(t, err)

	uow := newMockUoW().expectTx(true)
	uow.carts.On("GetByEventAndCustomer", mock.Anything, eventID, session.UserID()).
		Return(nil, errs.NewObjectNotFoundError("cart", eventID)).Once()
	uow.events.On("Get", mock.Anything, eventID).Return(planned, nil).Once()
	uow.carts.On("Add", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()

	cmd, err := commands.NewGetOrCreateCartCommand(session, eventID)
	require.NoError(t, err)
	h := commands.NewGetOrCreateCartCommandHandler(factory{uow}.cart(), &recordingNotifier{})
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, got.EventID().IsEqual(eventID))
	assert.True(t, got.IsOwnedBy(session.UserID()))
	assert.Empty(t, got.Items())
	uow.assertAll(t)
}

func TestGetOrCreateCartCommandHandler_RetriesAfterConcurrentCreate(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	eventID := kernel.NewUUID()
	winner, err := cart.NewCart(eventID, session.UserID())
	require.NoError(t, err)
	planned, err := event.NewEvent(session.UserID(), event.Details{
		Name: "Launch", Date: mustDate(t), Location: "Austin", GuestCount: 40, CuisineType: "tex-mex",
	})
	require.NoError(t, err)

	uow := newMockUoW().expectTx(false).expectTx(false)
	uow.carts.On("GetByEventAndCustomer", mock.Anything, eventID, session.UserID()).
		Return(nil, errs.NewObjectNotFoundError("cart", eventID)).Once()
	uow.events.On("Get", mock.Anything, eventID).Return(planned, nil).Once()
	uow.carts.On("Add", mock.Anything, mock.Anything).Return(ports.ErrAlreadyExists).Once()
	uow.carts.On("GetByEventAndCustomer", mock.Anything, eventID, session.UserID()).Return(winner, nil).Once()

	cmd, err := commands.NewGetOrCreateCartCommand(session, eventID)
	require.NoError(t, err)
	h := commands.NewGetOrCreateCartCommandHandler(factory{uow}.cart(), &recordingNotifier{})
	got, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, winner, got)
	uow.assertAll(t)
}

func TestGetOrCreateCartCommandHandler_UnknownEvent(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	eventID := kernel.NewUUID()

	uow := newMockUoW().expectTx(false)
	uow.carts.On("GetByEventAndCustomer", mock.Anything, eventID, session.UserID()).
		Return(nil, errs.NewObjectNotFoundError("cart", eventID)).Once()
	uow.events.On("Get", mock.Anything, eventID).Return(nil, errs.NewObjectNotFoundError("event", eventID)).Once()
	notifier := &recordingNotifier{}

	cmd, err := commands.NewGetOrCreateCartCommand(session, eventID)
	require.NoError(t, err)
	h := commands.NewGetOrCreateCartCommandHandler(factory{uow}.cart(), notifier)
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, []ports.NotificationKind{ports.NotificationError}, notifier.kinds())
	uow.assertAll(t)
}

func TestNewGetOrCreateCartCommand_RequiresSession(t *testing.T) {
	_, err := commands.NewGetOrCreateCartCommand(identity.Anonymous(), kernel.NewUUID())

	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestAddCartItemCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	c, err := cart.NewCart(kernel.NewUUID(), session.UserID())
	require.NoError(t, err)
	provider := newProvider(t, kernel.NewUUID())
	food := newFoodItem(t, provider.ID())

	uow := newMockUoW().expectTx(true)
	uow.carts.On("Get", mock.Anything, c.ID()).Return(c, nil).Once()
	uow.foodItems.On("Get", mock.Anything, food.ID()).Return(food, nil).Once()
	uow.providers.On("Get", mock.Anything, provider.ID()).Return(provider, nil).Once()
	uow.carts.On("AddItem", mock.Anything, mock.AnythingOfType("*cart.Item")).Return(nil).Once()
	notifier := &recordingNotifier{}

	cmd, err := commands.NewAddCartItemCommand(session, c.ID(), commands.CartItemInput{
		FoodItemID: food.ID(),
		TraySize:   cart.Full,
		Quantity:   2,
		ProviderID: provider.ID(),
		UnitPrice:  money(t, "800"),
	})
	require.NoError(t, err)
	h := commands.NewAddCartItemCommandHandler(factory{uow}.cart(), notifier)
	added, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, food.Name(), added.FoodItemName)
	assert.Equal(t, provider.Name(), added.ProviderName)
	assert.Equal(t, 2, added.Item.Quantity())
	assert.True(t, c.Totals().Primary.IsEqual(money(t, "1600")))
	assert.Equal(t, []ports.NotificationKind{ports.NotificationInfo}, notifier.kinds())
	uow.assertAll(t)
}

func TestAddCartItemCommandHandler_ForeignCart(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	c, err := cart.NewCart(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	uow := newMockUoW().expectTx(false)
	uow.carts.On("Get", mock.Anything, c.ID()).Return(c, nil).Once()
	notifier := &recordingNotifier{}

	cmd, err := commands.NewAddCartItemCommand(session, c.ID(), commands.CartItemInput{
		FoodItemID: kernel.NewUUID(), TraySize: cart.Half, Quantity: 1, ProviderID: kernel.NewUUID(), UnitPrice: money(t, "10"),
	})
	require.NoError(t, err)
	h := commands.NewAddCartItemCommandHandler(factory{uow}.cart(), notifier)
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, []ports.NotificationKind{ports.NotificationError}, notifier.kinds())
	uow.assertAll(t)
}

func TestAddCartItemCommandHandler_UnknownFoodItem(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	c, err := cart.NewCart(kernel.NewUUID(), session.UserID())
	require.NoError(t, err)
	foodItemID := kernel.NewUUID()

	uow := newMockUoW().expectTx(false)
	uow.carts.On("Get", mock.Anything, c.ID()).Return(c, nil).Once()
	uow.foodItems.On("Get", mock.Anything, foodItemID).Return(nil, errs.NewObjectNotFoundError("foodItem", foodItemID)).Once()

	cmd, err := commands.NewAddCartItemCommand(session, c.ID(), commands.CartItemInput{
		FoodItemID: foodItemID, TraySize: cart.Half, Quantity: 1, ProviderID: kernel.NewUUID(), UnitPrice: money(t, "10"),
	})
	require.NoError(t, err)
	h := commands.NewAddCartItemCommandHandler(factory{uow}.cart(), &recordingNotifier{})
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, c.Items())
	uow.assertAll(t)
}

func TestNewAddCartItemCommand_QuantityFloor(t *testing.T) {
	session := newSession(t, identity.Customer)

	_, err := commands.NewAddCartItemCommand(session, kernel.NewUUID(), commands.CartItemInput{
		FoodItemID: kernel.NewUUID(), TraySize: cart.Full, Quantity: 0, ProviderID: kernel.NewUUID(), UnitPrice: money(t, "10"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "quantity is invalid")
}

func TestRemoveCartItemCommandHandler_UnknownItemIsNoop(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	itemID := kernel.NewUUID()

	uow := newMockUoW().expectTx(false)
	uow.carts.On("GetByItemID", mock.Anything, itemID).Return(nil, errs.NewObjectNotFoundError("cartItem", itemID)).Once()
	notifier := &recordingNotifier{}

	cmd, err := commands.NewRemoveCartItemCommand(session, itemID)
	require.NoError(t, err)
	h := commands.NewRemoveCartItemCommandHandler(factory{uow}.cart(), notifier)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, []ports.NotificationKind{ports.NotificationInfo}, notifier.kinds())
	uow.carts.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything)
	uow.assertAll(t)
}

func TestRemoveCartItemCommandHandler_RemovesOwnedLine(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	c := referenceCart(t, session.UserID(), kernel.NewUUID(), kernel.NewUUID())
	itemID := c.Items()[0].ID()

	uow := newMockUoW().expectTx(true)
	uow.carts.On("GetByItemID", mock.Anything, itemID).Return(c, nil).Once()
	uow.carts.On("RemoveItem", mock.Anything, itemID).Return(nil).Once()

	cmd, err := commands.NewRemoveCartItemCommand(session, itemID)
	require.NoError(t, err)
	h := commands.NewRemoveCartItemCommandHandler(factory{uow}.cart(), &recordingNotifier{})

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Len(t, c.Items(), 1)
	uow.assertAll(t)
}

func TestUpdateCartItemQuantityCommandHandler_ZeroRemoves(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	c := referenceCart(t, session.UserID(), kernel.NewUUID(), kernel.NewUUID())
	itemID := c.Items()[1].ID()

	uow := newMockUoW().expectTx(true)
	uow.carts.On("GetByItemID", mock.Anything, itemID).Return(c, nil).Once()
	uow.carts.On("RemoveItem", mock.Anything, itemID).Return(nil).Once()

	cmd, err := commands.NewUpdateCartItemQuantityCommand(session, itemID, 0)
	require.NoError(t, err)
	h := commands.NewUpdateCartItemQuantityCommandHandler(factory{uow}.cart(), &recordingNotifier{})
	item, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, item)
	assert.True(t, c.Totals().Backup.IsZero())
	uow.assertAll(t)
}

func TestUpdateCartItemQuantityCommandHandler_Updates(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	c := referenceCart(t, session.UserID(), kernel.NewUUID(), kernel.NewUUID())
	itemID := c.Items()[0].ID()

	uow := newMockUoW().expectTx(true)
	uow.carts.On("GetByItemID", mock.Anything, itemID).Return(c, nil).Once()
	uow.carts.On("UpdateItem", mock.Anything, mock.MatchedBy(func(i *cart.Item) bool {
		return i.ID().IsEqual(itemID) && i.Quantity() == 3
	})).Return(nil).Once()

	cmd, err := commands.NewUpdateCartItemQuantityCommand(session, itemID, 3)
	require.NoError(t, err)
	h := commands.NewUpdateCartItemQuantityCommandHandler(factory{uow}.cart(), &recordingNotifier{})
	item, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity())
	assert.True(t, c.Totals().Primary.IsEqual(money(t, "2400")))
	uow.assertAll(t)
}

func TestUpdateCartItemQuantityCommandHandler_StoreFailure(t *testing.T) {
	ctx := t.Context()
	session := newSession(t, identity.Customer)
	itemID := kernel.NewUUID()

	uow := newMockUoW().expectTx(false)
	uow.carts.On("GetByItemID", mock.Anything, itemID).Return(nil, errors.New("connection refused")).Once()
	notifier := &recordingNotifier{}

	cmd, err := commands.NewUpdateCartItemQuantityCommand(session, itemID, 2)
	require.NoError(t, err)
	h := commands.NewUpdateCartItemQuantityCommandHandler(factory{uow}.cart(), notifier)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Len(t, notifier.sent, 1)
	assert.NotContains(t, notifier.sent[0].Message, "connection refused")
	uow.assertAll(t)
}
