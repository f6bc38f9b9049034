package ledger

import (
	"errors"
	"math"
	"testing"
)

// These tests perform chain surgery that no exported API allows, simulating
// corruption beyond a simple amount overwrite.

func Test_ValidateBrokenLink(t *testing.T) {
	l, err := New(Config{Difficulty: "0"})
	if err != nil {
		t.Fatalf("unable to construct ledger: %v", err)
	}

	if err := l.Submit(NewTxInNits(NetworkSender, "attacker", 1000)); err != nil {
		t.Fatalf("unable to submit: %v", err)
	}
	if _, err := l.MinePending("attacker"); err != nil {
		t.Fatalf("unable to mine: %v", err)
	}

	// Re-point block 1 at a fake parent and re-mine it so its own hash
	// check passes. Only the link check can catch this.
	l.chain[1].PrevHash = "ff" + l.chain[1].PrevHash[2:]
	l.chain[1].Mine(l.difficulty, l.evHandler)

	if err := l.Validate(); !errors.Is(err, ErrBrokenLink) {
		t.Fatalf("expected ErrBrokenLink, got %v", err)
	}
}

func Test_BalanceOverflow(t *testing.T) {
	l, err := New(Config{Difficulty: "0"})
	if err != nil {
		t.Fatalf("unable to construct ledger: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := l.Submit(NewTxInNits(NetworkSender, "hoarder", 1)); err != nil {
			t.Fatalf("unable to submit: %v", err)
		}
		if _, err := l.MinePending("miner"); err != nil {
			t.Fatalf("unable to mine: %v", err)
		}
	}

	// Inflate the first receipt so the second one overflows the accumulator.
	if err := l.Tamper(1, 0, math.MaxUint64); err != nil {
		t.Fatalf("unable to tamper: %v", err)
	}

	if _, err := l.BalanceOf("hoarder"); !errors.Is(err, ErrBalanceOverflow) {
		t.Fatalf("expected ErrBalanceOverflow, got %v", err)
	}
}
