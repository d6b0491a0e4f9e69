package components

import (
	"doorserve/internal/handler"
	"doorserve/internal/handler/api"
	"doorserve/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewPaymentHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	catalog *api.CatalogHandler,
	cart *api.CartHandler,
	payment *api.PaymentHandler,
	review *api.ReviewHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Booking: booking,
		Catalog: catalog,
		Cart:    cart,
		Payment: payment,
		Review:  review,
	}
}
