package commands_test

import (
	"context"
	"errors"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) Get(_ context.Context, _ int64) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllInProgress(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(_ context.Context, _ *agent.Agent) error {
	return errors.New("not implemented in mock")
}
func (m *MockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAgentRepository) Get(ctx context.Context, id int64) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}
func (m *MockAgentRepository) GetAllAvailableLocked(ctx context.Context) ([]*agent.Agent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agent.Agent), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// stubScheduler records Schedule calls without spawning anything.
type stubScheduler struct {
	orderIDs    []int64
	transitions []int
}

func (s *stubScheduler) Schedule(orderID int64, transitions int) {
	s.orderIDs = append(s.orderIDs, orderID)
	s.transitions = append(s.transitions, transitions)
}

func TestCreateOrderCommandHandler_Handle_Takeaway(t *testing.T) {
	ctx := t.Context()
	items := []order.LineItem{order.NewLineItem(1, 2)}
	cmd, _ := commands.NewCreateOrderCommand(7, items, kernel.DeliveryTypeTakeaway)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*order.Order).AssignID(42))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	scheduler := &stubScheduler{}
	h := commands.NewCreateOrderCommandHandler(factory, scheduler)
	orderID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(42), orderID)
	assert.Equal(t, []int64{42}, scheduler.orderIDs)
	assert.Equal(t, []int{1}, scheduler.transitions)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_HomeDeliveryAcquiresAgent(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(7, nil, kernel.DeliveryTypeHomeDelivery)

	freeAgent, err := agent.RestoreAgent(3, "John Doe", agent.StatusAvailable)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("GetAllAvailableLocked", ctx).Return([]*agent.Agent{freeAgent}, nil).Once(),
		agentRepo.On("Update", mock.Anything, freeAgent).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*order.Order).AssignID(10))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	scheduler := &stubScheduler{}
	h := commands.NewCreateOrderCommandHandler(factory, scheduler)
	orderID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(10), orderID)
	assert.False(t, freeAgent.IsAvailable())
	assert.Equal(t, []int{3}, scheduler.transitions)
	repo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoAgentAvailable(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(7, nil, kernel.DeliveryTypeHomeDelivery)

	agentRepo := new(MockAgentRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("GetAllAvailableLocked", ctx).Return([]*agent.Agent{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	scheduler := &stubScheduler{}
	h := commands.NewCreateOrderCommandHandler(factory, scheduler)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNoAgentAvailable)
	assert.Empty(t, scheduler.orderIDs)
	agentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, &stubScheduler{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(7, nil, kernel.DeliveryTypeTakeaway)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	scheduler := &stubScheduler{}
	h := commands.NewCreateOrderCommandHandler(factory, scheduler)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Empty(t, scheduler.orderIDs)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
