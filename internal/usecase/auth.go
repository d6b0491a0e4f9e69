package usecase

import (
	"context"
	"errors"

	"doorserve/internal/domain/user"
	"doorserve/internal/infra"
	"doorserve/internal/pkg/errs"
	"doorserve/internal/pkg/jwt"
	"doorserve/internal/pkg/password"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyTaken     = errors.New("email already registered")
	ErrAuthenticationFailed  = errors.New("invalid email or password")
	ErrAccountDeactivated    = errors.New("account is deactivated")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserValidation        = errors.New("user validation failed")
	ErrTokenGenerationFailed = errors.New("failed to generate token")
)

type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type LoginResult struct {
	Token string
	User  *readmodel.AuthorizedUserRM
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, params RegisterParams) (*LoginResult, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	userRepo UserRepository
	jwtSvc   *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtSvc *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{userRepo: userRepo, jwtSvc: jwtSvc}
}

func (u *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (*LoginResult, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}
	pw, err := user.NewPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}
	role, err := user.NewRole(params.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrUserValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity := user.NewUser(email, hash, params.FirstName, params.LastName, role)
	if err := u.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyTaken
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return u.issueToken(entity.ID(), entity.Role(), &readmodel.AuthorizedUserRM{
		ID:        entity.ID(),
		Email:     entity.Email().Value(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
		Role:      entity.Role().String(),
		IsActive:  entity.IsActive(),
	})
}

func (u *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	entity, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if err := password.ComparePassword(entity.PasswordHash(), plainPassword); err != nil {
		return nil, ErrAuthenticationFailed
	}
	if !entity.IsActive() {
		return nil, ErrAccountDeactivated
	}

	return u.issueToken(entity.ID(), entity.Role(), &readmodel.AuthorizedUserRM{
		ID:        entity.ID(),
		Email:     entity.Email().Value(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
		Role:      entity.Role().String(),
		IsActive:  entity.IsActive(),
	})
}

func (u *authUseCaseImpl) Me(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	rm, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return rm, nil
}

func (u *authUseCaseImpl) issueToken(id uuid.UUID, role user.Role, rm *readmodel.AuthorizedUserRM) (*LoginResult, error) {
	token, err := u.jwtSvc.GenerateToken(id, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGenerationFailed)
	}
	return &LoginResult{Token: token, User: rm}, nil
}
