//go:build unit

package usecase

import (
	"context"
	"testing"

	"doorserve/internal/domain/user"
	"doorserve/internal/infra/payment"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// The confirm flow is tested against its transaction body directly;
// the pool-backed wrapper only supplies the transaction handle.
type PaymentConfirmTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockPayments *MockPaymentRepository
	mockOrders   *MockOrderRepository
	mockCart     *MockCartStore
	mockGateway  *MockPaymentGateway
	useCase      *paymentUseCaseImpl
	ctx          context.Context
	actor        Actor
	orderID      uuid.UUID
}

func (s *PaymentConfirmTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayments = NewMockPaymentRepository(s.mockCtrl)
	s.mockOrders = NewMockOrderRepository(s.mockCtrl)
	s.mockCart = NewMockCartStore(s.mockCtrl)
	s.mockGateway = NewMockPaymentGateway(s.mockCtrl)
	s.useCase = &paymentUseCaseImpl{
		paymentRepo: s.mockPayments,
		orderRepo:   s.mockOrders,
		cartRepo:    s.mockCart,
		gateway:     s.mockGateway,
		currency:    "usd",
	}
	s.ctx = context.Background()
	s.actor = Actor{ID: uuid.New(), Role: user.RoleCustomer}
	s.orderID = uuid.New()
}

func (s *PaymentConfirmTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentConfirmSuite(t *testing.T) {
	suite.Run(t, new(PaymentConfirmTestSuite))
}

func (s *PaymentConfirmTestSuite) pendingPayment() *readmodel.PaymentRM {
	return &readmodel.PaymentRM{
		ID:              uuid.New(),
		CustomerID:      s.actor.ID,
		PaymentIntentID: "pi_test",
		AmountCents:     8500,
		Currency:        "usd",
		Status:          "pending",
	}
}

func (s *PaymentConfirmTestSuite) TestConfirm() {
	s.Run("confirms a pending order", func() {
		s.mockPayments.EXPECT().
			FindByIntentID(s.ctx, gomock.Nil(), "pi_test").
			Return(s.pendingPayment(), s.orderID, nil)
		s.mockOrders.EXPECT().
			FindOrderByID(s.ctx, gomock.Nil(), s.orderID).
			Return(&readmodel.OrderRM{ID: s.orderID, CustomerID: s.actor.ID, Status: "pending"}, nil)
		s.mockGateway.EXPECT().
			RetrieveIntent(s.ctx, "pi_test").
			Return(&payment.Intent{ID: "pi_test", Status: "succeeded"}, nil)
		s.mockPayments.EXPECT().
			UpdateStatus(s.ctx, gomock.Nil(), "pi_test", "succeeded").
			Return(nil)
		s.mockOrders.EXPECT().
			MarkOrderPaid(s.ctx, gomock.Nil(), s.orderID).
			Return(nil)
		s.mockOrders.EXPECT().
			FindOrderItems(s.ctx, gomock.Nil(), s.orderID).
			Return([]*readmodel.OrderItemRM{{OrderID: s.orderID, Quantity: 1, PriceCents: 8500}}, nil)
		s.mockCart.EXPECT().
			Clear(s.ctx, gomock.Nil(), s.actor.ID).
			Return(nil)

		bookings, err := s.useCase.confirmInTx(s.ctx, nil, s.actor, "pi_test")
		s.NoError(err)
		s.Empty(bookings)
	})

	s.Run("rejects an order already marked paid", func() {
		s.mockPayments.EXPECT().
			FindByIntentID(s.ctx, gomock.Nil(), "pi_test").
			Return(s.pendingPayment(), s.orderID, nil)
		s.mockOrders.EXPECT().
			FindOrderByID(s.ctx, gomock.Nil(), s.orderID).
			Return(&readmodel.OrderRM{ID: s.orderID, CustomerID: s.actor.ID, Status: "paid"}, nil)

		_, err := s.useCase.confirmInTx(s.ctx, nil, s.actor, "pi_test")
		s.ErrorIs(err, ErrPaymentAlreadyConfirmed)
	})

	s.Run("rejects a payment already succeeded without touching the order", func() {
		row := s.pendingPayment()
		row.Status = "succeeded"
		s.mockPayments.EXPECT().
			FindByIntentID(s.ctx, gomock.Nil(), "pi_test").
			Return(row, s.orderID, nil)

		_, err := s.useCase.confirmInTx(s.ctx, nil, s.actor, "pi_test")
		s.ErrorIs(err, ErrPaymentAlreadyConfirmed)
	})

	s.Run("denies another customer's payment", func() {
		row := s.pendingPayment()
		row.CustomerID = uuid.New()
		s.mockPayments.EXPECT().
			FindByIntentID(s.ctx, gomock.Nil(), "pi_test").
			Return(row, s.orderID, nil)

		_, err := s.useCase.confirmInTx(s.ctx, nil, s.actor, "pi_test")
		s.ErrorIs(err, ErrPaymentAccessDenied)
	})

	s.Run("rejects an intent the gateway has not settled", func() {
		s.mockPayments.EXPECT().
			FindByIntentID(s.ctx, gomock.Nil(), "pi_test").
			Return(s.pendingPayment(), s.orderID, nil)
		s.mockOrders.EXPECT().
			FindOrderByID(s.ctx, gomock.Nil(), s.orderID).
			Return(&readmodel.OrderRM{ID: s.orderID, CustomerID: s.actor.ID, Status: "pending"}, nil)
		s.mockGateway.EXPECT().
			RetrieveIntent(s.ctx, "pi_test").
			Return(&payment.Intent{ID: "pi_test", Status: "requires_payment_method"}, nil)

		_, err := s.useCase.confirmInTx(s.ctx, nil, s.actor, "pi_test")
		s.ErrorIs(err, ErrPaymentNotSucceeded)
	})
}
