package frost

import (
	"math/big"
	"testing"
)

// dkgGroup holds the participants and derived public key of a completed
// key-generation round, for reuse across tests that need signing-ready
// participants.
type dkgGroup struct {
	ciphersuite  *Bip340Ciphersuite
	participants []*Participant
	publicKey    *Point
}

// runDKG drives a complete FROST distributed key generation among n
// participants with the given threshold, wiring every PoK verification and
// Feldman share exchange, and returns the resulting group.
func runDKG(t *testing.T, threshold, n int) *dkgGroup {
	t.Helper()

	ciphersuite := NewBip340Ciphersuite()
	participants := make([]*Participant, n)
	for i := 0; i < n; i++ {
		p, err := NewParticipant(ciphersuite, i+1, threshold, n)
		if err != nil {
			t.Fatalf("NewParticipant(%d): %v", i+1, err)
		}
		if err := p.InitKeygen(); err != nil {
			t.Fatalf("InitKeygen(%d): %v", i+1, err)
		}
		participants[i] = p
	}

	for i, p := range participants {
		for j, other := range participants {
			if i == j {
				continue
			}
			ok := other.VerifyProofOfKnowledge(
				p.ProofOfKnowledge(), p.CoefficientCommitments()[0], p.Index(),
			)
			if !ok {
				t.Fatalf("participant %d's PoK failed to verify for participant %d", p.Index(), other.Index())
			}
		}
	}

	for _, p := range participants {
		if err := p.GenerateShares(); err != nil {
			t.Fatalf("GenerateShares(%d): %v", p.Index(), err)
		}
	}

	for i, p := range participants {
		var otherShares []*big.Int
		for j, other := range participants {
			if i == j {
				continue
			}
			share := other.Shares()[p.Index()-1]
			ok, err := p.VerifyShare(share, other.CoefficientCommitments())
			if err != nil {
				t.Fatalf("VerifyShare: %v", err)
			}
			if !ok {
				t.Fatalf("share from participant %d to participant %d failed verification", other.Index(), p.Index())
			}
			otherShares = append(otherShares, share)
		}
		if err := p.AggregateShares(otherShares); err != nil {
			t.Fatalf("AggregateShares(%d): %v", p.Index(), err)
		}
	}

	var publicKey *Point
	for _, p := range participants {
		var otherCommitments []*Point
		for _, other := range participants {
			if other == p {
				continue
			}
			otherCommitments = append(otherCommitments, other.CoefficientCommitments()[0])
		}
		pk, err := p.DerivePublicKey(otherCommitments)
		if err != nil {
			t.Fatalf("DerivePublicKey(%d): %v", p.Index(), err)
		}
		if publicKey == nil {
			publicKey = pk
		} else if !publicKey.Equal(pk) {
			t.Fatalf("public key mismatch between participants")
		}
	}

	return &dkgGroup{ciphersuite: ciphersuite, participants: participants, publicKey: publicKey}
}

// signWith drives FROST signing round one and two for exactly the given
// participants (identified by 1-based index within group.participants),
// returning the aggregated signature.
func signWith(t *testing.T, group *dkgGroup, indexes []int, message []byte) *Signature {
	t.Helper()

	aggregator := NewAggregator(group.ciphersuite)

	byIndex := make(map[int]*Participant, len(group.participants))
	for _, p := range group.participants {
		byIndex[p.Index()] = p
	}

	nonces := make(map[int]*NoncePair, len(indexes))
	commitments := make([]*NonceCommitmentPair, len(indexes))
	for i, idx := range indexes {
		nonce, commitment, err := byIndex[idx].GenerateNonce()
		if err != nil {
			t.Fatalf("GenerateNonce(%d): %v", idx, err)
		}
		nonces[idx] = nonce
		commitments[i] = commitment
	}

	shares := make([]*big.Int, len(indexes))
	for i, idx := range indexes {
		z, err := byIndex[idx].Sign(aggregator, message, nonces[idx], commitments, indexes)
		if err != nil {
			t.Fatalf("Sign(%d): %v", idx, err)
		}
		shares[i] = z
	}

	sig, err := aggregator.Aggregate(message, commitments, indexes, shares)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	return sig
}
