package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"foodorder/internal/core/domain/model/user"
)

// RegisterUserCommandHandler creates new user accounts.
// Hashes the password with bcrypt before the user aggregate is built, so plain
// text never reaches the domain or the store.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the account and returns the assigned user id.
// A duplicate username surfaces as errs.ErrValueAlreadyExists from the
// repository; callers map it to their own conflict responses.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	newUser, err := user.NewUser(cmd.Username(), string(hash), cmd.Role())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newUser.ID(), nil
}
