package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

const sessionContextKey = "session"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	sessions *SessionStore

	// Command handlers
	registerUserHandler commands.RegisterUserCommandHandler
	createOrderHandler  commands.CreateOrderCommandHandler

	// Query handlers
	authenticateUserHandler queries.AuthenticateUserQueryHandler
	getMenuHandler          queries.GetMenuQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	getUserOrdersHandler    queries.GetUserOrdersQueryHandler
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getAllAgentsHandler     queries.GetAllAgentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	sessions *SessionStore,
	registerUserHandler commands.RegisterUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllAgentsHandler queries.GetAllAgentsQueryHandler,
) *Server {
	return &Server{
		sessions:                sessions,
		registerUserHandler:     registerUserHandler,
		createOrderHandler:      createOrderHandler,
		authenticateUserHandler: authenticateUserHandler,
		getMenuHandler:          getMenuHandler,
		getOrderHandler:         getOrderHandler,
		getUserOrdersHandler:    getUserOrdersHandler,
		getAllOrdersHandler:     getAllOrdersHandler,
		getAllAgentsHandler:     getAllAgentsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/users/register", s.Register)
	api.POST("/users/login", s.Login)
	api.GET("/menu", s.GetMenu)

	authed := api.Group("", s.requireAuth)
	authed.POST("/users/logout", s.Logout)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.GetMyOrders)
	authed.GET("/orders/:id", s.GetOrder)

	admin := api.Group("/admin", s.requireAuth, s.requireManager)
	admin.GET("/orders", s.GetAllOrders)
	admin.GET("/agents", s.GetAllAgents)
}

// requireAuth resolves the bearer token and stores the session in the request context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return errorJSON(ctx, http.StatusUnauthorized, "Missing bearer token")
		}

		session, found := s.sessions.Get(token)
		if !found {
			return errorJSON(ctx, http.StatusUnauthorized, "Invalid or expired token")
		}

		ctx.Set(sessionContextKey, session)
		return next(ctx)
	}
}

// requireManager rejects sessions without the manager role.
func (s *Server) requireManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		session := currentSession(ctx)
		if session.Role != user.RoleManager.String() {
			return errorJSON(ctx, http.StatusForbidden, "Manager role required")
		}
		return next(ctx)
	}
}

func currentSession(ctx echo.Context) Session {
	session, _ := ctx.Get(sessionContextKey).(Session)
	return session
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// Register handles POST /api/v1/users/register - creates a customer account.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(req.Username, req.Password, user.RoleCustomer)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid registration data: "+err.Error())
	}

	userID, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrValueAlreadyExists) {
			return errorJSON(ctx, http.StatusConflict, "Username already taken")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to register user")
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{
		UserID:   userID,
		Username: req.Username,
	})
}

// Login handles POST /api/v1/users/login - checks credentials and issues a token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	query, err := queries.NewAuthenticateUserQuery(req.Username, req.Password)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid login data: "+err.Error())
	}

	account, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCredentials) {
			return errorJSON(ctx, http.StatusUnauthorized, "Invalid username or password")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to log in")
	}

	session := s.sessions.Issue(account.UserID, account.Username, account.Role)

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:    session.Token,
		Username: session.Username,
		Role:     session.Role,
	})
}

// Logout handles POST /api/v1/users/logout - revokes the current session.
func (s *Server) Logout(ctx echo.Context) error {
	session := currentSession(ctx)
	s.sessions.Revoke(session.Token)
	return ctx.NoContent(http.StatusNoContent)
}

// GetMenu handles GET /api/v1/menu - retrieves the fixed menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve menu")
	}

	response := make([]MenuItemResponse, len(menu))
	for i, item := range menu {
		response[i] = MenuItemResponse{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	items := make([]order.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, order.NewLineItem(item.MenuItemID, item.Quantity))
	}

	session := currentSession(ctx)
	cmd, err := commands.NewCreateOrderCommand(
		session.UserID, items, kernel.ParseDeliveryType(req.DeliveryType),
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, services.ErrNoAgentAvailable) {
			return errorJSON(ctx, http.StatusConflict, "No delivery agent available")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID: orderID,
		Status:  order.StatusPreparing.String(),
	})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "Order not found")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// GetMyOrders handles GET /api/v1/orders - retrieves the caller's order history.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	session := currentSession(ctx)

	query, err := queries.NewGetUserOrdersQuery(session.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetAllOrders handles GET /api/v1/admin/orders - retrieves every order.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetAllAgents handles GET /api/v1/admin/agents - retrieves the delivery fleet.
func (s *Server) GetAllAgents(ctx echo.Context) error {
	agents, err := s.getAllAgentsHandler.Handle(ctx.Request().Context(), queries.NewGetAllAgentsQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve agents")
	}

	response := make([]AgentResponse, len(agents))
	for i, a := range agents {
		response[i] = AgentResponse{
			ID:     a.ID,
			Name:   a.Name,
			Status: a.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toOrderResponse(result queries.OrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItemResponse{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}

	return OrderResponse{
		ID:            result.ID,
		Username:      result.Username,
		DeliveryType:  result.DeliveryType,
		Status:        result.Status,
		TimeRemaining: result.TimeRemaining,
		CreatedAt:     result.CreatedAt,
		AgentName:     result.AgentName,
		Items:         items,
		Total:         result.Total,
	}
}

func toOrderResponses(results []queries.OrderQueryResponse) []OrderResponse {
	responses := make([]OrderResponse, len(results))
	for i, result := range results {
		responses[i] = toOrderResponse(result)
	}
	return responses
}
