package committee_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umarali/qisst_management_app/internal/apperrors"
	"github.com/umarali/qisst_management_app/internal/core/domain"
	"github.com/umarali/qisst_management_app/internal/utils/committee"
)

func settingsWith(amount int64, freq domain.Frequency) domain.CommitteeSettings {
	return domain.CommitteeSettings{
		CommitteeName:     "Friends Committee",
		InstallmentAmount: decimal.NewFromInt(amount),
		Currency:          "PKR",
		Frequency:         freq,
	}
}

func testMembers(n int) []domain.Member {
	members := make([]domain.Member, 0, n)
	for i := 0; i < n; i++ {
		members = append(members, domain.Member{
			MemberID: string(rune('a' + i)),
			Name:     "Member " + string(rune('A'+i)),
			JoinDate: time.Now(),
		})
	}
	return members
}

func TestTogglePayment_InsertThenRemove(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	payments := committee.TogglePayment(nil, "m1", "c1", now)
	require.Len(t, payments, 1)
	assert.Equal(t, domain.Paid, payments[0].Status)
	assert.Equal(t, now, payments[0].DatePaid)

	// Second toggle restores the original (empty) collection.
	payments = committee.TogglePayment(payments, "m1", "c1", now)
	assert.Empty(t, payments)
}

func TestTogglePayment_NeverDuplicatesPair(t *testing.T) {
	now := time.Now()
	var payments []domain.PaymentRecord
	pairs := [][2]string{{"m1", "c1"}, {"m2", "c1"}, {"m1", "c2"}, {"m1", "c1"}, {"m1", "c1"}}
	for _, pair := range pairs {
		payments = committee.TogglePayment(payments, pair[0], pair[1], now)
	}

	seen := map[[2]string]int{}
	for _, p := range payments {
		seen[[2]string{p.MemberID, p.CycleID}]++
	}
	for pair, count := range seen {
		assert.Equal(t, 1, count, "pair %v recorded more than once", pair)
	}
}

func TestTogglePayment_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	original := committee.TogglePayment(nil, "m1", "c1", now)
	original = committee.TogglePayment(original, "m2", "c1", now)

	snapshot := make([]domain.PaymentRecord, len(original))
	copy(snapshot, original)

	_ = committee.TogglePayment(original, "m1", "c1", now)
	_ = committee.TogglePayment(original, "m3", "c1", now)
	assert.Equal(t, snapshot, original)
}

func TestCycleLabel(t *testing.T) {
	assert.Equal(t, "Month 1", committee.CycleLabel(domain.Monthly, 0))
	assert.Equal(t, "Month 4", committee.CycleLabel(domain.Monthly, 3))
	assert.Equal(t, "Cycle 1", committee.CycleLabel(domain.Daily, 0))
	assert.Equal(t, "Cycle 2", committee.CycleLabel(domain.Weekly, 1))
}

func TestPotAmount_FrequencyEquivalence(t *testing.T) {
	// DAILY at amount A equals MONTHLY at 30×A for the same member count.
	daily := committee.PotAmount(5, settingsWith(100, domain.Daily))
	monthly := committee.PotAmount(5, settingsWith(3000, domain.Monthly))
	assert.True(t, daily.Equal(monthly), "daily %s != monthly %s", daily, monthly)

	weekly := committee.PotAmount(3, settingsWith(250, domain.Weekly))
	assert.True(t, weekly.Equal(decimal.NewFromInt(3000)))
}

func TestPotAmount_MonotonicInMemberCount(t *testing.T) {
	settings := settingsWith(1000, domain.Monthly)
	prev := decimal.Zero
	for n := 0; n <= 10; n++ {
		pot := committee.PotAmount(n, settings)
		assert.True(t, pot.GreaterThanOrEqual(prev), "pot shrank at %d members", n)
		prev = pot
	}
}

func TestCollectionRate_Bounds(t *testing.T) {
	now := time.Now()
	var payments []domain.PaymentRecord
	for i := 0; i < 7; i++ {
		payments = committee.TogglePayment(payments, string(rune('a'+i)), "c1", now)
	}

	for memberCount := 0; memberCount <= 20; memberCount++ {
		rate := committee.CollectionRate(payments[:min(len(payments), memberCount)], "c1", memberCount)
		assert.GreaterOrEqual(t, rate, 0.0)
		assert.LessOrEqual(t, rate, 100.0)
	}
}

func TestCollectionRate_EmptyCommittee(t *testing.T) {
	assert.Equal(t, 0.0, committee.CollectionRate(nil, "c1", 0))
}

func TestScenario_NewCycleThenPay(t *testing.T) {
	// 3 members, MONTHLY at 1000: two payments yield 67% and a pot of 3000.
	settings := settingsWith(1000, domain.Monthly)
	members := testMembers(3)
	now := time.Now()

	cycle := domain.Cycle{CycleID: "c1", Label: committee.CycleLabel(settings.Frequency, 0), StartDate: now}
	require.Equal(t, "Month 1", cycle.Label)

	var payments []domain.PaymentRecord
	payments = committee.TogglePayment(payments, members[0].MemberID, cycle.CycleID, now)
	payments = committee.TogglePayment(payments, members[1].MemberID, cycle.CycleID, now)

	rate := committee.CollectionRate(payments, cycle.CycleID, len(members))
	assert.InDelta(t, 66.67, rate, 0.01)

	pot := committee.PotAmount(len(members), settings)
	assert.True(t, pot.Equal(decimal.NewFromInt(3000)))
}

func TestSelectWinner_Uniform(t *testing.T) {
	members := testMembers(4)
	members[1].HasReceivedPot = true // not eligible

	rng := rand.New(rand.NewPCG(1, 2))
	counts := map[string]int{}
	for i := 0; i < 3000; i++ {
		winner, err := committee.SelectWinner(members, rng)
		require.NoError(t, err)
		assert.False(t, winner.HasReceivedPot)
		counts[winner.MemberID]++
	}

	assert.Len(t, counts, 3)
	for id, n := range counts {
		assert.Greater(t, n, 800, "member %s drawn suspiciously rarely", id)
	}
}

func TestSelectWinner_Exhausted(t *testing.T) {
	members := testMembers(2)
	members[0].HasReceivedPot = true
	members[1].HasReceivedPot = true

	rng := rand.New(rand.NewPCG(7, 7))
	_, err := committee.SelectWinner(members, rng)
	assert.ErrorIs(t, err, apperrors.ErrNoEligibleMembers)
}
