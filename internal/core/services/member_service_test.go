package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/umarali/qisst_management_app/internal/apperrors"
	"github.com/umarali/qisst_management_app/internal/core/domain"
	portssvc "github.com/umarali/qisst_management_app/internal/core/ports/services"
	"github.com/umarali/qisst_management_app/internal/core/services"
	"github.com/umarali/qisst_management_app/internal/dto"
)

// --- Test Suite ---
type MemberServiceTestSuite struct {
	suite.Suite
	mockMemberRepo   *MockMemberRepository
	mockCycleRepo    *MockCycleRepository
	mockPaymentRepo  *MockPaymentRepository
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.MemberSvcFacade
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockCycleRepo = new(MockCycleRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewMemberService(new(sync.RWMutex), suite.mockMemberRepo, suite.mockCycleRepo, suite.mockPaymentRepo, suite.mockSettingsRepo)
}

// --- Test Cases ---

func (suite *MemberServiceTestSuite) TestCreateMember_Success() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{Name: "  Ayesha Khan  ", Phone: "0300-1234567"}

	suite.mockMemberRepo.On("LoadMembers", ctx).Return([]domain.Member{}, nil).Once()
	suite.mockMemberRepo.On("SaveMembers", ctx, mock.MatchedBy(func(members []domain.Member) bool {
		return len(members) == 1 && members[0].Name == "Ayesha Khan" && members[0].MemberID != ""
	})).Return(nil).Once()

	member, err := suite.service.CreateMember(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(member)
	suite.Equal("Ayesha Khan", member.Name)
	suite.Equal("0300-1234567", member.Phone)
	suite.False(member.HasReceivedPot)
	suite.Nil(member.ReceivedDate)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestCreateMember_BlankName() {
	ctx := context.Background()

	member, err := suite.service.CreateMember(ctx, dto.CreateMemberRequest{Name: "   "})

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "SaveMembers", mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestCreateMember_AppendsToExisting() {
	ctx := context.Background()
	existing := []domain.Member{{MemberID: uuid.NewString(), Name: "Bilal"}}

	suite.mockMemberRepo.On("LoadMembers", ctx).Return(existing, nil).Once()
	suite.mockMemberRepo.On("SaveMembers", ctx, mock.MatchedBy(func(members []domain.Member) bool {
		return len(members) == 2 && members[0].Name == "Bilal" && members[1].Name == "Zara"
	})).Return(nil).Once()

	_, err := suite.service.CreateMember(ctx, dto.CreateMemberRequest{Name: "Zara"})

	suite.Require().NoError(err)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestGetMemberByID_NotFound() {
	ctx := context.Background()

	suite.mockMemberRepo.On("LoadMembers", ctx).Return([]domain.Member{}, nil).Once()

	member, err := suite.service.GetMemberByID(ctx, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_PartialUpdate() {
	ctx := context.Background()
	memberID := uuid.NewString()
	existing := []domain.Member{{MemberID: memberID, Name: "Old Name", Phone: "111"}}
	newPhone := "222"

	suite.mockMemberRepo.On("LoadMembers", ctx).Return(existing, nil).Once()
	suite.mockMemberRepo.On("SaveMembers", ctx, mock.MatchedBy(func(members []domain.Member) bool {
		return members[0].Name == "Old Name" && members[0].Phone == "222"
	})).Return(nil).Once()

	member, err := suite.service.UpdateMember(ctx, memberID, dto.UpdateMemberRequest{Phone: &newPhone})

	suite.Require().NoError(err)
	suite.Equal("Old Name", member.Name)
	suite.Equal("222", member.Phone)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestUpdateMember_EmptyNameRejected() {
	ctx := context.Background()
	memberID := uuid.NewString()
	blank := "  "

	suite.mockMemberRepo.On("LoadMembers", ctx).Return([]domain.Member{{MemberID: memberID, Name: "Keep"}}, nil).Once()

	member, err := suite.service.UpdateMember(ctx, memberID, dto.UpdateMemberRequest{Name: &blank})

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "SaveMembers", mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestDeleteMember_KeepsOtherMembers() {
	ctx := context.Background()
	target := uuid.NewString()
	other := uuid.NewString()
	existing := []domain.Member{
		{MemberID: other, Name: "Stays"},
		{MemberID: target, Name: "Goes"},
	}

	suite.mockMemberRepo.On("LoadMembers", ctx).Return(existing, nil).Once()
	suite.mockMemberRepo.On("SaveMembers", ctx, mock.MatchedBy(func(members []domain.Member) bool {
		return len(members) == 1 && members[0].MemberID == other
	})).Return(nil).Once()

	err := suite.service.DeleteMember(ctx, target)

	suite.Require().NoError(err)
	suite.mockMemberRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestDeleteMember_NotFound() {
	ctx := context.Background()

	suite.mockMemberRepo.On("LoadMembers", ctx).Return([]domain.Member{}, nil).Once()

	err := suite.service.DeleteMember(ctx, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "SaveMembers", mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestGetMemberSummary_CountsOnlyOwnPayments() {
	ctx := context.Background()
	memberID := uuid.NewString()
	otherID := uuid.NewString()
	cycleA := uuid.NewString()
	cycleB := uuid.NewString()
	now := time.Now()

	members := []domain.Member{{MemberID: memberID, Name: "Hina"}, {MemberID: otherID, Name: "Omar"}}
	cycles := []domain.Cycle{
		{CycleID: cycleB, Label: "Month 2", StartDate: now},
		{CycleID: cycleA, Label: "Month 1", StartDate: now.AddDate(0, -1, 0)},
	}
	payments := []domain.PaymentRecord{
		{MemberID: memberID, CycleID: cycleA, Status: domain.Paid, DatePaid: now},
		{MemberID: otherID, CycleID: cycleA, Status: domain.Paid, DatePaid: now},
		{MemberID: otherID, CycleID: cycleB, Status: domain.Paid, DatePaid: now},
	}
	settings := domain.CommitteeSettings{
		CommitteeName:     "Street 12",
		InstallmentAmount: decimal.NewFromInt(500),
		Currency:          "PKR",
		Frequency:         domain.Monthly,
	}

	suite.mockMemberRepo.On("LoadMembers", ctx).Return(members, nil).Once()
	suite.mockCycleRepo.On("LoadCycles", ctx).Return(cycles, nil).Once()
	suite.mockPaymentRepo.On("LoadPayments", ctx).Return(payments, nil).Once()
	suite.mockSettingsRepo.On("LoadSettings", ctx).Return(settings, nil).Once()

	summary, err := suite.service.GetMemberSummary(ctx, memberID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.TotalPaidCycles)
	suite.True(summary.TotalPaidAmount.Equal(decimal.NewFromInt(500)))
	suite.Equal(1, summary.PendingCycles)
	suite.Len(summary.History, 2)
	suite.Equal("Month 2", summary.History[0].Cycle.Label)
	suite.False(summary.History[0].Paid)
	suite.True(summary.History[1].Paid)
}

func (suite *MemberServiceTestSuite) TestGetMemberSummary_MemberNotFound() {
	ctx := context.Background()

	suite.mockMemberRepo.On("LoadMembers", ctx).Return([]domain.Member{}, nil).Once()

	summary, err := suite.service.GetMemberSummary(ctx, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MemberServiceTestSuite) TestListMembers_PropagatesRepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockMemberRepo.On("LoadMembers", ctx).Return(nil, expectedErr).Once()

	members, err := suite.service.ListMembers(ctx)

	suite.Require().Error(err)
	suite.Nil(members)
	suite.ErrorIs(err, expectedErr)
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
