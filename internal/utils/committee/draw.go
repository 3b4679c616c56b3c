package committee

import (
	"math/rand/v2"

	"github.com/umarali/qisst_management_app/internal/apperrors"
	"github.com/umarali/qisst_management_app/internal/core/domain"
)

// SelectWinner picks one member uniformly at random from those who have not
// yet received the pot. The random source is injected so draws can be made
// deterministic in tests. Selection does not mutate anything; committing the
// winner is a separate, explicitly confirmed step.
func SelectWinner(members []domain.Member, rng *rand.Rand) (domain.Member, error) {
	eligible := domain.EligibleMembers(members)
	if len(eligible) == 0 {
		return domain.Member{}, apperrors.ErrNoEligibleMembers
	}
	return eligible[rng.IntN(len(eligible))], nil
}
