package components

import (
	"doorserve/internal/infra/payment"
	"doorserve/internal/pkg/clock"
	"doorserve/internal/pkg/config"
	"doorserve/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
		usecase.NewBookingUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewCartUseCase,
		usecase.NewReviewUseCase,
		NewPaymentUseCase,
	),
)

func NewPaymentUseCase(
	paymentRepo usecase.PaymentRepository,
	orderRepo usecase.OrderRepository,
	cartRepo usecase.CartRepository,
	bookingRepo usecase.BookingRepository,
	catalog usecase.OfferingCatalog,
	gateway payment.Gateway,
	pool *pgxpool.Pool,
	cfg config.Config,
) usecase.PaymentUseCase {
	return usecase.NewPaymentUseCase(
		paymentRepo, orderRepo, cartRepo, bookingRepo, catalog, gateway, pool,
		cfg.Payment.Currency,
	)
}
