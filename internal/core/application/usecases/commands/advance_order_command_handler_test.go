package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAdvanceOrderRepository struct{ mock.Mock }

func (m *MockAdvanceOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockAdvanceOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockAdvanceOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockAdvanceOrderRepository) GetAllInProgress(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAdvanceUoW struct{ mock.Mock }

func (m *MockAdvanceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAdvanceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAdvanceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdvanceUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAdvanceUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

type MockAdvanceUoWFactory struct{ mock.Mock }

func (m *MockAdvanceUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func restorePreparingOrder(t *testing.T, deliveryType kernel.DeliveryType, agentID *int64, timeRemaining int) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		5, 7, time.Now().UTC(), deliveryType, order.StatusPreparing, agentID, timeRemaining, nil,
	)
	require.NoError(t, err)
	return o
}

func TestAdvanceOrderCommandHandler_Handle_IntermediateStep(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAdvanceOrderCommand(5)

	agentID := int64(2)
	o := restorePreparingOrder(t, kernel.DeliveryTypeHomeDelivery, &agentID, 3)

	repo := new(MockAdvanceOrderRepository)
	uow := new(MockAdvanceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(5)).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusOutForDelivery, o.Status())
	assert.Equal(t, 2, o.TimeRemaining())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_FinalStepReleasesAgent(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAdvanceOrderCommand(5)

	agentID := int64(2)
	o, err := order.RestoreOrder(
		5, 7, time.Now().UTC(), kernel.DeliveryTypeHomeDelivery,
		order.StatusOutForDelivery, &agentID, 1, nil,
	)
	require.NoError(t, err)
	busyAgent, err := agent.RestoreAgent(2, "Jane Smith", agent.StatusBusy)
	require.NoError(t, err)

	repo := new(MockAdvanceOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockAdvanceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(5)).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", mock.Anything, int64(2)).Return(busyAgent, nil).Once(),
		agentRepo.On("Update", mock.Anything, busyAgent).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDone, o.Status())
	assert.True(t, busyAgent.IsAvailable())
	repo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_TakeawayCompletesWithoutAgent(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAdvanceOrderCommand(5)

	o := restorePreparingOrder(t, kernel.DeliveryTypeTakeaway, nil, 1)

	repo := new(MockAdvanceOrderRepository)
	uow := new(MockAdvanceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(5)).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDone, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_AlreadyDone(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAdvanceOrderCommand(5)

	o, err := order.RestoreOrder(
		5, 7, time.Now().UTC(), kernel.DeliveryTypeTakeaway, order.StatusDone, nil, 0, nil,
	)
	require.NoError(t, err)

	repo := new(MockAdvanceOrderRepository)
	uow := new(MockAdvanceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(5)).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderAlreadyDone)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAdvanceOrderCommand(5)

	repo := new(MockAdvanceOrderRepository)
	uow := new(MockAdvanceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(5)).Return(nil, errors.New("get error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAdvanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
