package queries

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for an unknown username and for a wrong
// password alike, so the response never reveals which half was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthenticateUserQueryHandler checks credentials against the stored bcrypt hash.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for credential checks.
// Requires a GORM database connection for query execution.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle executes the credential check.
// Returns ErrInvalidCredentials when the username does not exist or the
// password does not match the stored hash.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	var response AuthenticateUserQueryResponse
	var passwordHash string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			password_hash,
			role
		FROM users
		WHERE username = ?
	`, query.Username()).Row()

	err := row.Scan(
		&response.UserID,
		&response.Username,
		&passwordHash,
		&response.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
		}
		return AuthenticateUserQueryResponse{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())); err != nil {
		return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
	}

	return response, nil
}
