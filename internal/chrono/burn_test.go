package chrono

import (
	"math/rand"
	"testing"
	"time"
)

func TestBurnRunsForDuration(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	start := time.Now()
	loops := Burn(rng, 5*time.Millisecond)
	elapsed := time.Since(start)

	if loops <= 0 {
		t.Fatalf("loops = %d, want > 0", loops)
	}
	if elapsed < 5*time.Millisecond {
		t.Fatalf("returned after %v, want at least 5ms", elapsed)
	}
}
