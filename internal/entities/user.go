package entities

import "time"

type User struct {
	ID          int64
	PhoneNumber string
	Role        UserRoleType
	IsActive    bool
	IsBlocked   bool
	CreatedAt   time.Time
}

type UserRoleType string

const (
	RoleClient UserRoleType = "client"
	RoleDriver UserRoleType = "driver"
)

func (r UserRoleType) String() string {
	return string(r)
}
