package feud

import (
	"errors"
	"testing"
)

func TestAddStrikeCapsAtThree(t *testing.T) {
	b := NewScoreBoard()

	for i := 0; i < 5; i++ {
		b.AddStrike()
	}

	if got := b.Strikes(); got != MaxStrikes {
		t.Errorf("Strikes() = %d, want %d", got, MaxStrikes)
	}

	if _, changed := b.AddStrike(); changed {
		t.Error("AddStrike() at the cap reported a change")
	}

	b.ResetStrikes()
	if got := b.Strikes(); got != 0 {
		t.Errorf("Strikes() after reset = %d, want 0", got)
	}
}

func TestAddPoints(t *testing.T) {
	b := NewScoreBoard()

	if _, err := b.AddPoints(1, 300); err != nil {
		t.Fatalf("AddPoints(1, 300) error = %v", err)
	}
	got, err := b.AddPoints(1, -100)
	if err != nil {
		t.Fatalf("AddPoints(1, -100) error = %v", err)
	}

	if got != 200 || b.Score(1) != 200 {
		t.Errorf("team 1 score = %d/%d, want 200", got, b.Score(1))
	}
	if b.Score(2) != 0 {
		t.Errorf("team 2 score = %d, want 0", b.Score(2))
	}

	if _, err := b.AddPoints(2, -50); err != nil {
		t.Fatalf("AddPoints(2, -50) error = %v", err)
	}
	if b.Score(2) != -50 {
		t.Errorf("team 2 score = %d, want -50", b.Score(2))
	}
}

func TestAddPointsInvalidTeam(t *testing.T) {
	b := NewScoreBoard()

	for _, team := range []int{0, 3, -1} {
		if _, err := b.AddPoints(team, 10); !errors.Is(err, ErrInvalidTeam) {
			t.Errorf("AddPoints(%d, 10) error = %v, want ErrInvalidTeam", team, err)
		}
	}

	if b.Score(1) != 0 || b.Score(2) != 0 {
		t.Errorf("scores = %d/%d after invalid teams, want 0/0", b.Score(1), b.Score(2))
	}
}
