package user

import "time"

type UserDB struct {
	ID          int64
	PhoneNumber string
	Role        string
	IsActive    bool
	IsBlocked   bool
	CreatedAt   time.Time
}
