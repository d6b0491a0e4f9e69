package readmodel

import "github.com/google/uuid"

type AuthorizedUserRM struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      string
	IsActive  bool
}

func (u *AuthorizedUserRM) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
