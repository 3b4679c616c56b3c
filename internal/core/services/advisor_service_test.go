package services_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/umarali/qisst_management_app/internal/core/domain"
	portssvc "github.com/umarali/qisst_management_app/internal/core/ports/services"
	"github.com/umarali/qisst_management_app/internal/core/services"
)

// --- Test Suite ---
type AdvisorServiceTestSuite struct {
	suite.Suite
	mockMemberRepo   *MockMemberRepository
	mockCycleRepo    *MockCycleRepository
	mockSettingsRepo *MockSettingsRepository
	mockGenerator    *MockAdviceGenerator
	service          portssvc.AdvisorSvcFacade
}

func (suite *AdvisorServiceTestSuite) SetupTest() {
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.mockCycleRepo = new(MockCycleRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockGenerator = new(MockAdviceGenerator)
	suite.service = services.NewAdvisorService(new(sync.RWMutex), suite.mockMemberRepo, suite.mockCycleRepo, suite.mockSettingsRepo, suite.mockGenerator)
}

func (suite *AdvisorServiceTestSuite) expectCommitteeData() {
	ctx := context.Background()
	settings := domain.CommitteeSettings{
		CommitteeName:     "Street 12",
		InstallmentAmount: decimal.NewFromInt(1000),
		Currency:          "PKR",
		Frequency:         domain.Monthly,
	}
	members := []domain.Member{
		{MemberID: "m1", Name: "Sana", HasReceivedPot: true},
		{MemberID: "m2", Name: "Adeel"},
	}
	cycles := []domain.Cycle{{CycleID: "c1", Label: "Month 1"}}

	suite.mockSettingsRepo.On("LoadSettings", ctx).Return(settings, nil).Once()
	suite.mockMemberRepo.On("LoadMembers", ctx).Return(members, nil).Once()
	suite.mockCycleRepo.On("LoadCycles", ctx).Return(cycles, nil).Once()
}

// --- Test Cases ---

func (suite *AdvisorServiceTestSuite) TestGetAdvice_UnconfiguredReturnsKeyMessage() {
	ctx := context.Background()

	suite.mockGenerator.On("Configured").Return(false).Once()

	answer, err := suite.service.GetAdvice(ctx, "How much should we save?")

	suite.Require().NoError(err)
	suite.Equal("Please configure the API Key to use the AI Advisor.", answer)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "LoadSettings", ctx)
	suite.mockGenerator.AssertNotCalled(suite.T(), "GenerateAdvice", mock.Anything, mock.Anything)
}

func (suite *AdvisorServiceTestSuite) TestGetAdvice_PromptCarriesCommitteeData() {
	ctx := context.Background()
	suite.expectCommitteeData()

	suite.mockGenerator.On("Configured").Return(true).Once()
	suite.mockGenerator.On("GenerateAdvice", ctx, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Street 12") &&
			strings.Contains(prompt, "PKR 1000") &&
			strings.Contains(prompt, "Total Members: 2") &&
			strings.Contains(prompt, "Sana") &&
			!strings.Contains(prompt, "Adeel") &&
			strings.Contains(prompt, "User Query: Is our pot size healthy?")
	})).Return("Your pot covers two installments.", nil).Once()

	answer, err := suite.service.GetAdvice(ctx, "Is our pot size healthy?")

	suite.Require().NoError(err)
	suite.Equal("Your pot covers two installments.", answer)
	suite.mockGenerator.AssertExpectations(suite.T())
}

func (suite *AdvisorServiceTestSuite) TestGetAdvice_GeneratorFailureDegrades() {
	ctx := context.Background()
	suite.expectCommitteeData()

	suite.mockGenerator.On("Configured").Return(true).Once()
	suite.mockGenerator.On("GenerateAdvice", ctx, mock.AnythingOfType("string")).Return("", assert.AnError).Once()

	answer, err := suite.service.GetAdvice(ctx, "help")

	suite.Require().NoError(err)
	suite.Equal("Sorry, I am having trouble connecting to the advice service right now.", answer)
}

func (suite *AdvisorServiceTestSuite) TestGetAdvice_BlankAnswerDegrades() {
	ctx := context.Background()
	suite.expectCommitteeData()

	suite.mockGenerator.On("Configured").Return(true).Once()
	suite.mockGenerator.On("GenerateAdvice", ctx, mock.AnythingOfType("string")).Return("  \n", nil).Once()

	answer, err := suite.service.GetAdvice(ctx, "help")

	suite.Require().NoError(err)
	suite.Equal("I couldn't generate a response at this time.", answer)
}

func TestAdvisorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdvisorServiceTestSuite))
}

func TestBuildAdvicePrompt_NoWinnersListsNone(t *testing.T) {
	settings := domain.DefaultSettings()
	members := []domain.Member{{MemberID: "m1", Name: "Adeel"}}

	prompt := services.BuildAdvicePrompt("q", settings, members, nil)

	assert.Contains(t, prompt, "already received the pot: None")
	assert.Contains(t, prompt, "Current Cycle Count: 0")
}
