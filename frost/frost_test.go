package frost

import (
	"math/big"
	"testing"

	"github.com/Gudnessuche/FROST-BIP340/internal/testutils"
)

// TestEndToEnd_KeygenAndSign_TwoOfThree covers scenario 1: run DKG with
// t=2, n=3, have every pair sign a message, and verify under the group
// public key.
func TestEndToEnd_KeygenAndSign_TwoOfThree(t *testing.T) {
	group := runDKG(t, 2, 3)
	message := []byte("hello")

	pairs := [][]int{{1, 2}, {1, 3}, {2, 3}}
	for _, pair := range pairs {
		sig := signWith(t, group, pair, message)

		ok, err := group.ciphersuite.VerifySignature(sig, group.publicKey, message)
		if err != nil {
			t.Fatalf("VerifySignature(%v): %v", pair, err)
		}
		testutils.AssertBoolsEqual(t, "signature validity", true, ok)
	}
}

// TestEndToEnd_Repair covers scenario 2: drop participant 4's aggregate
// share out of a t=3, n=5 group, have participants {1,2,3} run the repair
// protocol, and check the recovered share matches the original.
func TestEndToEnd_Repair(t *testing.T) {
	group := runDKG(t, 3, 5)

	var lost *Participant
	for _, p := range group.participants {
		if p.Index() == 4 {
			lost = p
		}
	}
	originalShare, ok := lost.AggregateShare()
	if !ok {
		t.Fatalf("participant 4 has no aggregate share to lose")
	}
	originalShare = new(big.Int).Set(originalShare)

	lost.aggregateShare = nil
	lost.aggregateShareSet = false

	helperIndexes := []int{1, 2, 3}
	repairCohort := append([]int{}, helperIndexes...)

	wantCohort := []uint16{1, 2, 3}
	gotCohort := make([]uint16, len(repairCohort))
	for i, idx := range repairCohort {
		gotCohort[i] = uint16(idx)
	}
	testutils.AssertUint16SlicesEqual(t, "repair cohort indexes", wantCohort, gotCohort)

	byIndex := make(map[int]*Participant)
	for _, p := range group.participants {
		byIndex[p.Index()] = p
	}

	for _, idx := range helperIndexes {
		if err := byIndex[idx].GenerateRepairShares(repairCohort, 4); err != nil {
			t.Fatalf("GenerateRepairShares(%d): %v", idx, err)
		}
	}

	// Each helper's repair shares are ordered (r_1, ..., r_{t-1}, final); it
	// retains slot 0 and sends one of the remaining threshold-1 slots to
	// each of the other threshold-1 cohort members, in ascending-index
	// order. Every cohort member then aggregates its own retained slot plus
	// the slots it received from the others into its own aggregate repair
	// share, and all threshold aggregate repair shares are forwarded to the
	// recovering participant.
	aggregateShares := make(map[int]*big.Int)
	for _, recipientIdx := range helperIndexes {
		var received []*big.Int
		for _, generatorIdx := range helperIndexes {
			if generatorIdx == recipientIdx {
				continue
			}
			// position of recipient among the generator's "other" members,
			// in ascending index order.
			pos := 0
			for _, otherIdx := range helperIndexes {
				if otherIdx == generatorIdx {
					continue
				}
				if otherIdx == recipientIdx {
					break
				}
				pos++
			}
			received = append(received, byIndex[generatorIdx].RepairShares()[1+pos])
		}
		if err := byIndex[recipientIdx].AggregateRepairShares(received); err != nil {
			t.Fatalf("AggregateRepairShares(%d): %v", recipientIdx, err)
		}
		aggregateShares[recipientIdx] = byIndex[recipientIdx].AggregateRepairShare()
	}

	var forwarded []*big.Int
	for _, idx := range helperIndexes {
		forwarded = append(forwarded, aggregateShares[idx])
	}

	if err := lost.RepairShare(forwarded); err != nil {
		t.Fatalf("RepairShare: %v", err)
	}

	recovered, ok := lost.AggregateShare()
	if !ok {
		t.Fatalf("expected aggregate share to be set after repair")
	}
	testutils.AssertBigIntNonZero(t, "recovered share", recovered)
	testutils.AssertBigIntsEqual(t, "recovered share", originalShare, recovered)
}

// TestEndToEnd_RefreshTwice covers scenario 3: refresh a t=2, n=3 group
// twice, checking the group public key is unchanged and signatures still
// verify afterward.
func TestEndToEnd_RefreshTwice(t *testing.T) {
	group := runDKG(t, 2, 3)
	originalKey := group.publicKey

	for round := 0; round < 2; round++ {
		for _, p := range group.participants {
			if err := p.InitRefresh(); err != nil {
				t.Fatalf("InitRefresh: %v", err)
			}
			if err := p.GenerateShares(); err != nil {
				t.Fatalf("GenerateShares: %v", err)
			}
		}

		for i, p := range group.participants {
			var otherShares []*big.Int
			for j, other := range group.participants {
				if i == j {
					continue
				}
				share := other.Shares()[p.Index()-1]
				ok, err := p.VerifyShare(share, other.CoefficientCommitments())
				if err != nil || !ok {
					t.Fatalf("refresh share verification failed: %v %v", ok, err)
				}
				otherShares = append(otherShares, share)
			}
			if err := p.AggregateShares(otherShares); err != nil {
				t.Fatalf("AggregateShares: %v", err)
			}
		}
	}

	// Interpolate the group public key at x=0 from the refreshed public
	// verification shares of participants 1 and 2.
	curve := group.ciphersuite.Curve()
	subset := []int{1, 2}
	interpolatedKey := curve.Identity()
	for _, idx := range subset {
		coef, err := lagrangeCoefficient(curve.Order(), 0, idx, subset)
		if err != nil {
			t.Fatalf("lagrangeCoefficient(%d): %v", idx, err)
		}
		share, err := group.participants[idx-1].PublicVerificationShare()
		if err != nil {
			t.Fatalf("PublicVerificationShare(%d): %v", idx, err)
		}
		interpolatedKey = curve.EcAdd(interpolatedKey, curve.EcMul(share, coef))
	}
	testutils.AssertBoolsEqual(t, "public key unchanged after refresh", true, originalKey.Equal(interpolatedKey))

	sig := signWith(t, group, []int{1, 2}, []byte("still valid"))
	ok, err := group.ciphersuite.VerifySignature(sig, group.publicKey, []byte("still valid"))
	if err != nil {
		t.Fatalf("VerifySignature: %v", err)
	}
	testutils.AssertBoolsEqual(t, "signature validity after refresh", true, ok)
}

// TestEndToEnd_DecrementThreshold covers scenario 4: decrement a t=2, n=3
// group by revealing participant 3's share, then check a single remaining
// participant can sign alone.
func TestEndToEnd_DecrementThreshold(t *testing.T) {
	group := runDKG(t, 2, 3)

	byIndex := make(map[int]*Participant)
	for _, p := range group.participants {
		byIndex[p.Index()] = p
	}
	revealedShare, _ := byIndex[3].AggregateShare()
	revealedShare = new(big.Int).Set(revealedShare)

	for _, idx := range []int{1, 2} {
		if err := byIndex[idx].DecrementThreshold(revealedShare, 3); err != nil {
			t.Fatalf("DecrementThreshold(%d): %v", idx, err)
		}
	}

	testutils.AssertIntsEqual(t, "threshold after decrement", 1, byIndex[1].Threshold())

	message := []byte("solo signer")
	sig := signWith(t, group, []int{1}, message)
	ok, err := group.ciphersuite.VerifySignature(sig, group.publicKey, message)
	if err != nil {
		t.Fatalf("VerifySignature: %v", err)
	}
	testutils.AssertBoolsEqual(t, "signature validity after decrement", true, ok)
}

// TestEndToEnd_IncreaseThreshold covers scenario 5: increase a t=2, n=3
// group to t=3 and check that all 3 participants together still produce a
// signature that verifies under the unchanged group public key.
func TestEndToEnd_IncreaseThreshold(t *testing.T) {
	group := runDKG(t, 2, 3)
	newThreshold := 3

	byIndex := make(map[int]*Participant)
	for _, p := range group.participants {
		byIndex[p.Index()] = p
	}

	for _, p := range group.participants {
		if err := p.InitThresholdIncrease(newThreshold); err != nil {
			t.Fatalf("InitThresholdIncrease(%d): %v", p.Index(), err)
		}
		if err := p.GenerateShares(); err != nil {
			t.Fatalf("GenerateShares(%d): %v", p.Index(), err)
		}
	}

	for i, p := range group.participants {
		var otherShares []*big.Int
		for j, other := range group.participants {
			if i == j {
				continue
			}
			otherShares = append(otherShares, other.Shares()[p.Index()-1])
		}
		if err := p.IncreaseThreshold(otherShares); err != nil {
			t.Fatalf("IncreaseThreshold(%d): %v", p.Index(), err)
		}
	}

	for _, p := range group.participants {
		testutils.AssertIntsEqual(t, "threshold after increase", newThreshold, p.Threshold())
	}

	message := []byte("now needs three")
	sig := signWith(t, group, []int{1, 2, 3}, message)
	ok, err := group.ciphersuite.VerifySignature(sig, group.publicKey, message)
	if err != nil {
		t.Fatalf("VerifySignature: %v", err)
	}
	testutils.AssertBoolsEqual(t, "three-of-three signature validity", true, ok)
}

// TestAggregateCommitmentsAgreement checks the aggregate-commitments
// invariant: after DKG, aggregate_share*G equals the sum over every
// dealer's commitments evaluated at this participant's index.
func TestAggregateCommitmentsAgreement(t *testing.T) {
	group := runDKG(t, 2, 3)
	curve := group.ciphersuite.Curve()
	order := curve.Order()

	for _, p := range group.participants {
		expected := curve.Identity()
		for _, dealer := range group.participants {
			power := big.NewInt(1)
			bigIndex := big.NewInt(int64(p.Index()))
			for _, phi := range dealer.CoefficientCommitments() {
				expected = curve.EcAdd(expected, curve.EcMul(phi, power))
				power = new(big.Int).Mul(power, bigIndex)
				power.Mod(power, order)
			}
		}

		actual, ok := p.AggregateShare()
		if !ok {
			t.Fatalf("participant %d has no aggregate share", p.Index())
		}
		lhs := curve.EcBaseMul(actual)
		testutils.AssertBoolsEqual(t, "aggregate-commitments agreement", true, lhs.Equal(expected))
	}
}
