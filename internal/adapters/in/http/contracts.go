// Package http exposes the application over a JSON REST API using echo.
// Handlers translate wire requests into commands and queries and map
// application errors onto HTTP status codes.
package http

import "time"

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRequest is the body of POST /api/v1/users/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse confirms a created account.
type RegisterResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// LoginRequest is the body of POST /api/v1/users/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MenuItemResponse is one entry of GET /api/v1/menu.
type MenuItemResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderItemRequest is one line of a new order.
type OrderItemRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	DeliveryType string             `json:"delivery_type"`
	Items        []OrderItemRequest `json:"items"`
}

// CreateOrderResponse confirms a placed order.
type CreateOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// OrderItemResponse is one priced line of an order projection.
type OrderItemResponse struct {
	MenuItemID int64   `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// OrderResponse is the order projection returned by the order endpoints.
// Username is present only on the manager listing; AgentName only when a
// delivery agent is assigned.
type OrderResponse struct {
	ID            int64               `json:"id"`
	Username      string              `json:"username,omitempty"`
	DeliveryType  string              `json:"delivery_type"`
	Status        string              `json:"status"`
	TimeRemaining int                 `json:"time_remaining"`
	CreatedAt     time.Time           `json:"created_at"`
	AgentName     *string             `json:"agent_name,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	Total         float64             `json:"total"`
}

// AgentResponse is one entry of GET /api/v1/admin/agents.
type AgentResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
