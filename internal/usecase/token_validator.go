package usecase

import (
	"context"
	"errors"

	"doorserve/internal/infra"
	"doorserve/internal/pkg/errs"
	"doorserve/internal/pkg/jwt"
	"doorserve/internal/usecase/readmodel"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenValidator turns a bearer token into the authorized user, which
// rejects tokens for deleted or deactivated accounts.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*readmodel.AuthorizedUserRM, error)
}

type tokenValidatorImpl struct {
	jwtSvc   *jwt.Service
	userRepo UserRepository
}

func NewTokenValidator(jwtSvc *jwt.Service, userRepo UserRepository) TokenValidator {
	return &tokenValidatorImpl{jwtSvc: jwtSvc, userRepo: userRepo}
}

func (v *tokenValidatorImpl) Validate(ctx context.Context, token string) (*readmodel.AuthorizedUserRM, error) {
	claims, err := v.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	rm, err := v.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if !rm.IsActive {
		return nil, ErrInvalidToken
	}
	return rm, nil
}
