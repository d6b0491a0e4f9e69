package bootstrap

import (
	"doorserve/internal/infra/payment"
	"doorserve/internal/pkg/config"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config) payment.Gateway {
	return payment.NewGateway(cfg.Payment)
}
