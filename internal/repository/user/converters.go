package user

import (
	"gasline/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:          u.ID,
		PhoneNumber: u.PhoneNumber,
		Role:        entities.UserRoleType(u.Role),
		IsActive:    u.IsActive,
		IsBlocked:   u.IsBlocked,
		CreatedAt:   u.CreatedAt,
	}
}
