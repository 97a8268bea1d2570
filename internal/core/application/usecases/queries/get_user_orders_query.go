package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
	ErrUserIDIsInvalid = errors.New("user id must be greater than 0")
)

// GetUserOrdersQuery retrieves every order placed by one user, newest first.
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	userID int64

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for the orders of the given user.
// Validates that the user id is positive.
func NewGetUserOrdersQuery(userID int64) (GetUserOrdersQuery, error) {
	query := GetUserOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserOrdersQueryIsNotConstructed if validation fails.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose orders are requested.
func (q GetUserOrdersQuery) UserID() int64 {
	return q.userID
}

func (q *GetUserOrdersQuery) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	q.userID = userID
	return nil
}
