package model

import "time"

type Role string

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusBlocked  UserStatus = "blocked"
	UserStatusInactive UserStatus = "inactive"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusBlocked, UserStatusInactive:
		return true
	}
	return false
}

// Caller is the authenticated identity a request is executed for.
type Caller struct {
	ID   int  `json:"id"`
	Role Role `json:"role"`
}

func (c Caller) IsAdmin() bool    { return c.Role == RoleAdmin }
func (c Caller) IsProvider() bool { return c.Role == RoleProvider }

type User struct {
	ID           int        `json:"id" db:"id"`
	FirstName    string     `json:"firstName" db:"first_name"`
	LastName     string     `json:"lastName" db:"last_name"`
	Email        string     `json:"email" db:"email"`
	Role         Role       `json:"role" db:"role"`
	Status       UserStatus `json:"status" db:"status"`
	Phone        *string    `json:"phone,omitempty" db:"phone"`
	ProfileImage *string    `json:"profileImage,omitempty" db:"profile_image"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

type CreateUserRequest struct {
	FirstName    string     `json:"firstName" binding:"required,max=100"`
	LastName     string     `json:"lastName" binding:"required,max=100"`
	Email        string     `json:"email" binding:"required,email"`
	Role         Role       `json:"role" binding:"omitempty,oneof=user provider admin"`
	Status       UserStatus `json:"status" binding:"omitempty,oneof=active blocked inactive"`
	Phone        *string    `json:"phone"`
	ProfileImage *string    `json:"profileImage"`
}

type UpdateUserParams struct {
	FirstName    *string     `json:"firstName" binding:"omitempty,max=100"`
	LastName     *string     `json:"lastName" binding:"omitempty,max=100"`
	Email        *string     `json:"email" binding:"omitempty,email"`
	Role         *Role       `json:"role" binding:"omitempty,oneof=user provider admin"`
	Status       *UserStatus `json:"status" binding:"omitempty,oneof=active blocked inactive"`
	Phone        *string     `json:"phone"`
	ProfileImage *string     `json:"profileImage"`
}

type UpdateUserStatusRequest struct {
	Status UserStatus `json:"status" binding:"required,oneof=active blocked inactive"`
}

type UserFilter struct {
	Role   Role       `form:"role"`
	Status UserStatus `form:"status"`
	// Search matches first name, last name or email.
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}
