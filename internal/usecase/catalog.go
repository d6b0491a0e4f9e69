package usecase

import (
	"context"
	"errors"

	"doorserve/internal/infra"
	"doorserve/internal/pkg/errs"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrOfferingNotFound = errors.New("offering not found")

type CatalogRepository interface {
	OfferingCatalog
	FindAllServices(ctx context.Context, category *string) ([]*readmodel.CatalogServiceRM, error)
	FindServiceByID(ctx context.Context, id uuid.UUID) (*readmodel.CatalogServiceRM, error)
	FindOfferingsByService(ctx context.Context, serviceID uuid.UUID) ([]*readmodel.OfferingRM, error)
}

type CatalogUseCase interface {
	ListServices(ctx context.Context, category *string) ([]*readmodel.CatalogServiceRM, error)
	GetService(ctx context.Context, id uuid.UUID) (*readmodel.CatalogServiceRM, error)
	ListOfferings(ctx context.Context, serviceID uuid.UUID) ([]*readmodel.OfferingRM, error)
	GetOffering(ctx context.Context, id uuid.UUID) (*readmodel.OfferingRM, error)
}

type catalogUseCaseImpl struct {
	catalogRepo CatalogRepository
}

func NewCatalogUseCase(catalogRepo CatalogRepository) CatalogUseCase {
	return &catalogUseCaseImpl{catalogRepo: catalogRepo}
}

func (u *catalogUseCaseImpl) ListServices(ctx context.Context, category *string) ([]*readmodel.CatalogServiceRM, error) {
	services, err := u.catalogRepo.FindAllServices(ctx, category)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return services, nil
}

func (u *catalogUseCaseImpl) GetService(ctx context.Context, id uuid.UUID) (*readmodel.CatalogServiceRM, error) {
	service, err := u.catalogRepo.FindServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return service, nil
}

func (u *catalogUseCaseImpl) ListOfferings(ctx context.Context, serviceID uuid.UUID) ([]*readmodel.OfferingRM, error) {
	if _, err := u.GetService(ctx, serviceID); err != nil {
		return nil, err
	}
	offerings, err := u.catalogRepo.FindOfferingsByService(ctx, serviceID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return offerings, nil
}

func (u *catalogUseCaseImpl) GetOffering(ctx context.Context, id uuid.UUID) (*readmodel.OfferingRM, error) {
	offering, err := u.catalogRepo.FindOfferingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return offering, nil
}
