package user

import (
	"time"

	"github.com/google/uuid"
)

// User identity record. The booking scheduler only reads id and role;
// the rest backs registration and login.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	firstName    string
	lastName     string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash, firstName, lastName string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		isActive:     true,
	}
}

// Reconstruct rebuilds a user from stored columns, revalidating the
// email and role on the way in.
func Reconstruct(
	id uuid.UUID,
	email, passwordHash, firstName, lastName, role string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	em, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	r, err := NewRole(role)
	if err != nil {
		return nil, err
	}
	return &User{
		id:           id,
		email:        em,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         r,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) DisplayName() string {
	return u.firstName + " " + u.lastName
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
