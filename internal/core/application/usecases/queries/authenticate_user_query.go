package queries

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// AuthenticateUserQuery checks a username and password pair against the
// stored credential.
type AuthenticateUserQuery struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a credential check for the given pair.
// Validates that username and password are not empty.
func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	query := AuthenticateUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUsername(username),
		query.setPassword(password),
	); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateUserQueryIsNotConstructed if validation fails.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Username returns the account name being checked.
func (q AuthenticateUserQuery) Username() string {
	return q.username
}

// Password returns the plain-text password being checked.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

func (q *AuthenticateUserQuery) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	q.username = username
	return nil
}

func (q *AuthenticateUserQuery) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	q.password = password
	return nil
}

// AuthenticateUserQueryResponse identifies the authenticated account.
type AuthenticateUserQueryResponse struct {
	UserID   int64
	Username string
	Role     string
}
