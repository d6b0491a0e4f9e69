//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"doorserve/internal/domain/booking"
	"doorserve/internal/domain/user"
	"doorserve/internal/infra"
	"doorserve/internal/usecase"
	"doorserve/internal/usecase/readmodel"
	"doorserve/tests/common/builder"
	usecasemock "doorserve/tests/mock/usecase"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRepo    *usecasemock.MockBookingRepository
	mockUsers   *usecasemock.MockUserDirectory
	mockCatalog *usecasemock.MockOfferingCatalog
	useCase     usecase.BookingUseCase
	ctx         context.Context
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = usecasemock.NewMockBookingRepository(s.mockCtrl)
	s.mockUsers = usecasemock.NewMockUserDirectory(s.mockCtrl)
	s.mockCatalog = usecasemock.NewMockOfferingCatalog(s.mockCtrl)
	// Transactional paths need a live pool and are covered elsewhere;
	// these tests exercise the validation and authorization prefixes.
	s.useCase = usecase.NewBookingUseCase(s.mockRepo, s.mockUsers, s.mockCatalog, nil)
	s.ctx = context.Background()
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func (s *BookingUseCaseTestSuite) customer() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Role: user.RoleCustomer}
}

func (s *BookingUseCaseTestSuite) createParams() usecase.CreateBookingParams {
	start, err := booking.ParseTimeOfDay("10:00")
	s.Require().NoError(err)
	return usecase.CreateBookingParams{
		PartnerID:   uuid.New(),
		ServiceID:   uuid.New(),
		BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   start,
		PriceCents:  8500,
		DurationMin: 120,
	}
}

func (s *BookingUseCaseTestSuite) partnerRM(id uuid.UUID) *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:        id,
		Email:     "partner@example.com",
		FirstName: "Pat",
		LastName:  "Partner",
		Role:      user.RolePartner.String(),
		IsActive:  true,
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingUseCaseTestSuite) TestCreate() {
	s.Run("error: partner role cannot book", func() {
		actor := usecase.Actor{ID: uuid.New(), Role: user.RolePartner}

		_, err := s.useCase.Create(s.ctx, s.createParams(), actor)
		s.ErrorIs(err, usecase.ErrOnlyCustomersBook)
	})

	s.Run("error: admin role cannot book", func() {
		actor := usecase.Actor{ID: uuid.New(), Role: user.RoleAdmin}

		_, err := s.useCase.Create(s.ctx, s.createParams(), actor)
		s.ErrorIs(err, usecase.ErrOnlyCustomersBook)
	})

	s.Run("error: unknown partner", func() {
		params := s.createParams()
		s.mockUsers.EXPECT().FindByID(gomock.Any(), params.PartnerID).
			Return(nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.useCase.Create(s.ctx, params, s.customer())
		s.ErrorIs(err, usecase.ErrPartnerNotFound)
	})

	s.Run("error: target user is not a partner", func() {
		params := s.createParams()
		other := s.partnerRM(params.PartnerID)
		other.Role = user.RoleCustomer.String()
		s.mockUsers.EXPECT().FindByID(gomock.Any(), params.PartnerID).
			Return(other, nil).Times(1)

		_, err := s.useCase.Create(s.ctx, params, s.customer())
		s.ErrorIs(err, usecase.ErrPartnerNotFound)
	})

	s.Run("error: unknown offering", func() {
		params := s.createParams()
		s.mockUsers.EXPECT().FindByID(gomock.Any(), params.PartnerID).
			Return(s.partnerRM(params.PartnerID), nil).Times(1)
		s.mockCatalog.EXPECT().FindOfferingByID(gomock.Any(), params.ServiceID).
			Return(nil, infra.WrapRepoErr("offering not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.useCase.Create(s.ctx, params, s.customer())
		s.ErrorIs(err, usecase.ErrServiceNotFound)
	})

	s.Run("error: non-positive duration", func() {
		params := s.createParams()
		params.DurationMin = 0
		s.mockUsers.EXPECT().FindByID(gomock.Any(), params.PartnerID).
			Return(s.partnerRM(params.PartnerID), nil).Times(1)
		s.mockCatalog.EXPECT().FindOfferingByID(gomock.Any(), params.ServiceID).
			Return(&readmodel.OfferingRM{ID: params.ServiceID, Available: true}, nil).Times(1)

		_, err := s.useCase.Create(s.ctx, params, s.customer())
		s.ErrorIs(err, usecase.ErrInvalidSchedule)
	})

	s.Run("error: slot crossing midnight", func() {
		params := s.createParams()
		start, err := booking.ParseTimeOfDay("23:30")
		s.Require().NoError(err)
		params.StartTime = start
		params.DurationMin = 60
		s.mockUsers.EXPECT().FindByID(gomock.Any(), params.PartnerID).
			Return(s.partnerRM(params.PartnerID), nil).Times(1)
		s.mockCatalog.EXPECT().FindOfferingByID(gomock.Any(), params.ServiceID).
			Return(&readmodel.OfferingRM{ID: params.ServiceID, Available: true}, nil).Times(1)

		_, err = s.useCase.Create(s.ctx, params, s.customer())
		s.ErrorIs(err, usecase.ErrInvalidSchedule)
	})

	s.Run("error: store failure surfaces as such", func() {
		params := s.createParams()
		s.mockUsers.EXPECT().FindByID(gomock.Any(), params.PartnerID).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset"))).Times(1)

		_, err := s.useCase.Create(s.ctx, params, s.customer())
		s.ErrorIs(err, usecase.ErrStoreFailure)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingUseCaseTestSuite) TestList() {
	listRM := builder.NewBookingBuilder().BuildListRM()

	s.Run("success: customer sees own bookings", func() {
		actor := s.customer()
		s.mockRepo.EXPECT().FindByCustomer(gomock.Any(), actor.ID, gomock.Nil()).
			Return([]*readmodel.BookingListRM{listRM}, nil).Times(1)

		rows, err := s.useCase.List(s.ctx, actor, nil)
		s.NoError(err)
		s.Len(rows, 1)
	})

	s.Run("success: partner sees assigned bookings", func() {
		actor := usecase.Actor{ID: uuid.New(), Role: user.RolePartner}
		s.mockRepo.EXPECT().FindByPartner(gomock.Any(), actor.ID, gomock.Nil()).
			Return([]*readmodel.BookingListRM{listRM}, nil).Times(1)

		rows, err := s.useCase.List(s.ctx, actor, nil)
		s.NoError(err)
		s.Len(rows, 1)
	})

	s.Run("success: admin sees everything", func() {
		actor := usecase.Actor{ID: uuid.New(), Role: user.RoleAdmin}
		s.mockRepo.EXPECT().FindAll(gomock.Any(), gomock.Nil()).
			Return([]*readmodel.BookingListRM{listRM}, nil).Times(1)

		rows, err := s.useCase.List(s.ctx, actor, nil)
		s.NoError(err)
		s.Len(rows, 1)
	})

	s.Run("success: status filter is parsed and forwarded", func() {
		actor := s.customer()
		filter := "confirmed"
		s.mockRepo.EXPECT().FindByCustomer(gomock.Any(), actor.ID, gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, status *booking.Status) ([]*readmodel.BookingListRM, error) {
				s.Require().NotNil(status)
				s.Equal(booking.StatusConfirmed, *status)
				return nil, nil
			}).Times(1)

		_, err := s.useCase.List(s.ctx, actor, &filter)
		s.NoError(err)
	})

	s.Run("error: unknown status filter", func() {
		filter := "bogus"

		_, err := s.useCase.List(s.ctx, s.customer(), &filter)
		s.ErrorIs(err, usecase.ErrInvalidStatusFilter)
	})

	s.Run("error: unknown role is denied", func() {
		actor := usecase.Actor{ID: uuid.New(), Role: user.Role("ghost")}

		_, err := s.useCase.List(s.ctx, actor, nil)
		s.ErrorIs(err, usecase.ErrBookingAccessDenied)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingUseCaseTestSuite) TestGet() {
	s.Run("success: customer reads own booking", func() {
		actor := s.customer()
		rm := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CustomerID = actor.ID
		}).BuildRM()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil).Times(1)

		got, err := s.useCase.Get(s.ctx, rm.ID, actor)
		s.NoError(err)
		s.Equal(rm.ID, got.ID)
	})

	s.Run("success: assigned partner reads booking", func() {
		actor := usecase.Actor{ID: uuid.New(), Role: user.RolePartner}
		rm := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.PartnerID = actor.ID
		}).BuildRM()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil).Times(1)

		_, err := s.useCase.Get(s.ctx, rm.ID, actor)
		s.NoError(err)
	})

	s.Run("success: admin reads any booking", func() {
		actor := usecase.Actor{ID: uuid.New(), Role: user.RoleAdmin}
		rm := builder.NewBookingBuilder().BuildRM()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil).Times(1)

		_, err := s.useCase.Get(s.ctx, rm.ID, actor)
		s.NoError(err)
	})

	s.Run("error: customer reading a foreign booking", func() {
		rm := builder.NewBookingBuilder().BuildRM()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil).Times(1)

		_, err := s.useCase.Get(s.ctx, rm.ID, s.customer())
		s.ErrorIs(err, usecase.ErrBookingAccessDenied)
	})

	s.Run("error: unassigned partner is denied", func() {
		actor := usecase.Actor{ID: uuid.New(), Role: user.RolePartner}
		rm := builder.NewBookingBuilder().BuildRM()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil).Times(1)

		_, err := s.useCase.Get(s.ctx, rm.ID, actor)
		s.ErrorIs(err, usecase.ErrBookingAccessDenied)
	})

	s.Run("error: unknown booking", func() {
		id := uuid.New()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.useCase.Get(s.ctx, id, s.customer())
		s.ErrorIs(err, usecase.ErrBookingNotFound)
	})
}

// ================================================================================
// TestReschedule
// ================================================================================

func (s *BookingUseCaseTestSuite) TestReschedule() {
	s.Run("error: slot validation happens before any store access", func() {
		params := usecase.RescheduleParams{
			BookingDate: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
			StartTime:   booking.TimeOfDay(23 * 60),
			DurationMin: 120,
		}

		_, err := s.useCase.Reschedule(s.ctx, uuid.New(), params, s.customer())
		s.ErrorIs(err, usecase.ErrInvalidSchedule)
	})
}
