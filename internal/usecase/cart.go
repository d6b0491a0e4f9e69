package usecase

import (
	"context"
	"errors"

	"doorserve/internal/infra"
	"doorserve/internal/infra/db"
	"doorserve/internal/pkg/errs"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrInvalidCartQuantity = errors.New("quantity must be positive")
	ErrOfferingUnavailable = errors.New("offering is not available")
)

type CartRepository interface {
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*readmodel.CartItemRM, error)
	AddItem(ctx context.Context, customerID, offeringID uuid.UUID, quantity int32) (*readmodel.CartItemRM, error)
	UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int32) (*readmodel.CartItemRM, error)
	RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error
	Clear(ctx context.Context, tx db.DBTX, customerID uuid.UUID) error
}

type CartUseCase interface {
	List(ctx context.Context, customerID uuid.UUID) ([]*readmodel.CartItemRM, error)
	Add(ctx context.Context, customerID, offeringID uuid.UUID, quantity int32) (*readmodel.CartItemRM, error)
	UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int32) (*readmodel.CartItemRM, error)
	Remove(ctx context.Context, customerID, itemID uuid.UUID) error
}

type cartUseCaseImpl struct {
	cartRepo CartRepository
	catalog  OfferingCatalog
}

func NewCartUseCase(cartRepo CartRepository, catalog OfferingCatalog) CartUseCase {
	return &cartUseCaseImpl{cartRepo: cartRepo, catalog: catalog}
}

func (u *cartUseCaseImpl) List(ctx context.Context, customerID uuid.UUID) ([]*readmodel.CartItemRM, error) {
	items, err := u.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return items, nil
}

func (u *cartUseCaseImpl) Add(ctx context.Context, customerID, offeringID uuid.UUID, quantity int32) (*readmodel.CartItemRM, error) {
	if quantity <= 0 {
		return nil, ErrInvalidCartQuantity
	}

	offering, err := u.catalog.FindOfferingByID(ctx, offeringID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if !offering.Available {
		return nil, ErrOfferingUnavailable
	}

	item, err := u.cartRepo.AddItem(ctx, customerID, offeringID, quantity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return item, nil
}

// UpdateQuantity treats a non-positive quantity as removal and returns
// a nil item in that case.
func (u *cartUseCaseImpl) UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int32) (*readmodel.CartItemRM, error) {
	if quantity <= 0 {
		return nil, u.Remove(ctx, customerID, itemID)
	}

	item, err := u.cartRepo.UpdateQuantity(ctx, customerID, itemID, quantity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return item, nil
}

func (u *cartUseCaseImpl) Remove(ctx context.Context, customerID, itemID uuid.UUID) error {
	if err := u.cartRepo.RemoveItem(ctx, customerID, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCartItemNotFound
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}
