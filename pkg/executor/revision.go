package executor

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/mgx-dev/mgx/pkg/models"
)

// ReviewHash fingerprints a review outcome so the revision loop can
// detect a reviewer that keeps repeating itself.
func ReviewHash(outcome *models.ReviewOutcome) string {
	h := sha256.New()
	h.Write([]byte(outcome.Verdict))
	h.Write([]byte{0})
	h.Write([]byte(outcome.Notes))
	return hex.EncodeToString(h.Sum(nil))
}

// ShouldRevise decides whether another revision round runs. All three
// conditions must hold: the reviewer wants changes, the round budget is
// not spent, and the review differs from the previous one. An identical
// consecutive review halts the loop even with budget remaining.
func ShouldRevise(outcome *models.ReviewOutcome, completedRounds, maxRevisionRounds int, prevHash, currHash string) bool {
	if outcome.Approved() {
		return false
	}
	if completedRounds >= maxRevisionRounds {
		return false
	}
	if prevHash != "" && prevHash == currHash {
		return false
	}
	return true
}
