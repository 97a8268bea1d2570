// Package userrepo provides data transfer objects and mapping functions for
// user account persistence.
package userrepo

import (
	"foodorder/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
// The unique index on username is what turns a duplicate registration into
// a constraint violation instead of a lost write.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255)"`
	Role         string `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(dto.ID, dto.Username, dto.PasswordHash, user.Role(dto.Role))
}
