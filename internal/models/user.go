package models

import (
	"github.com/google/uuid"
	"time"
)

// User is the signed in entrepreneur. There is at most one user per workspace.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar,omitempty"`
	JoinDate time.Time `json:"joinDate"`
}

// NewUser creates a user that joined at now.
func NewUser(name, email string, now time.Time) User {
	return User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Avatar:   "",
		JoinDate: now,
	}
}

// FirstName is used for greetings.
func (u User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}

// UserPatch is a partial update to User. Nil fields are left untouched.
type UserPatch struct {
	Name   *string
	Email  *string
	Avatar *string
}

// Apply returns a copy of u with the non-nil fields of p merged in.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	return u
}
