package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/umarali/qisst_management_app/internal/core/domain"
	portsrepo "github.com/umarali/qisst_management_app/internal/core/ports/repositories"
	"github.com/umarali/qisst_management_app/internal/middleware"
)

// Advisor fallback messages. The advisory path never fails hard; any problem
// degrades to one of these fixed strings.
const (
	adviceMissingKeyMsg  = "Please configure the API Key to use the AI Advisor."
	adviceEmptyMsg       = "I couldn't generate a response at this time."
	adviceUnavailableMsg = "Sorry, I am having trouble connecting to the advice service right now."
)

// AdviceGenerator is the outbound port to the external text-generation
// service. Implementations return the generated text or an error; they never
// mutate application state.
type AdviceGenerator interface {
	// GenerateAdvice sends the composed prompt and returns the answer text.
	GenerateAdvice(ctx context.Context, prompt string) (string, error)

	// Configured reports whether the client has credentials to use.
	Configured() bool
}

type advisorService struct {
	mu           *sessionLock
	memberRepo   portsrepo.MemberReader
	cycleRepo    portsrepo.CycleReader
	settingsRepo portsrepo.SettingsReader
	generator    AdviceGenerator

	// inFlight serializes advisory calls: a second query waits for the prior
	// one to resolve instead of racing it.
	inFlight sync.Mutex
}

// NewAdvisorService creates the advisor service.
func NewAdvisorService(mu *sessionLock, memberRepo portsrepo.MemberReader, cycleRepo portsrepo.CycleReader, settingsRepo portsrepo.SettingsReader, generator AdviceGenerator) *advisorService {
	return &advisorService{
		mu:           mu,
		memberRepo:   memberRepo,
		cycleRepo:    cycleRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
	}
}

// GetAdvice composes a read-only summary of the committee plus the operator's
// question and forwards it to the external service. Failures yield a fixed
// fallback string, never an error visible to the operator.
func (s *advisorService) GetAdvice(ctx context.Context, query string) (string, error) {
	if !s.generator.Configured() {
		return adviceMissingKeyMsg, nil
	}

	prompt, err := s.buildPrompt(ctx, query)
	if err != nil {
		return "", err
	}

	s.inFlight.Lock()
	defer s.inFlight.Unlock()

	answer, err := s.generator.GenerateAdvice(ctx, prompt)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Advice service unavailable", slog.String("error", err.Error()))
		return adviceUnavailableMsg, nil
	}
	if strings.TrimSpace(answer) == "" {
		return adviceEmptyMsg, nil
	}
	return answer, nil
}

func (s *advisorService) buildPrompt(ctx context.Context, query string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, err := s.settingsRepo.LoadSettings(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}
	members, err := s.memberRepo.LoadMembers(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load members: %w", err)
	}
	cycles, err := s.cycleRepo.LoadCycles(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load cycles: %w", err)
	}

	return BuildAdvicePrompt(query, settings, members, cycles), nil
}

// BuildAdvicePrompt formats the advisory prompt: committee facts, the names
// of past winners, and the operator's question.
func BuildAdvicePrompt(query string, settings domain.CommitteeSettings, members []domain.Member, cycles []domain.Cycle) string {
	winners := make([]string, 0, len(members))
	for _, m := range members {
		if m.HasReceivedPot {
			winners = append(winners, m.Name)
		}
	}
	winnerList := "None"
	if len(winners) > 0 {
		winnerList = strings.Join(winners, ", ")
	}

	var b strings.Builder
	b.WriteString("You are an expert financial advisor specifically for informal savings circles (ROSCA/Committee/Qisst).\n\n")
	b.WriteString("Current Committee Data:\n")
	fmt.Fprintf(&b, "- Name: %s\n", settings.CommitteeName)
	fmt.Fprintf(&b, "- Installment Amount: %s %s\n", settings.Currency, settings.InstallmentAmount.String())
	fmt.Fprintf(&b, "- Frequency: %s\n", settings.Frequency)
	fmt.Fprintf(&b, "- Total Members: %d\n", len(members))
	fmt.Fprintf(&b, "- Members who have already received the pot: %s\n", winnerList)
	fmt.Fprintf(&b, "- Current Cycle Count: %d\n", len(cycles))
	fmt.Fprintf(&b, "\nUser Query: %s\n", query)
	b.WriteString("\nProvide a helpful, polite, and professional answer. Keep it concise.\n")
	return b.String()
}
