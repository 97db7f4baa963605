package feud

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestPolicyScore(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name    string
		entries []string
		want    []int
		total   int
	}{
		{"gaps", []string{"a", "", "c", "", "e"}, []int{30, 0, 20, 0, 10}, 60},
		{"full", []string{"a", "b", "c", "d", "e"}, []int{30, 25, 20, 15, 10}, 100},
		{"whitespace is blank", []string{"  ", "\t", "c", "", ""}, []int{0, 0, 20, 0, 0}, 20},
		{"short", []string{"a"}, []int{30, 0, 0, 0, 0}, 30},
		{"empty", nil, []int{0, 0, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := p.Score(tt.entries)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Score() mismatch (-want +got):\n%s", diff)
			}
			if total != tt.total {
				t.Errorf("Score() total = %d, want %d", total, tt.total)
			}
		})
	}
}

func TestPolicyScoreFallback(t *testing.T) {
	p := DefaultPolicy()
	p.Slots = 7

	got, total, err := p.Score([]string{"a", "b", "c", "d", "e", "f", ""})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	if diff := cmp.Diff([]int{30, 25, 20, 15, 10, 5, 0}, got); diff != "" {
		t.Errorf("Score() mismatch (-want +got):\n%s", diff)
	}
	if total != 105 {
		t.Errorf("Score() total = %d, want 105", total)
	}
}

func TestPolicyScoreTooManyEntries(t *testing.T) {
	p := DefaultPolicy()

	if _, _, err := p.Score(make([]string, 6)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Score(6 entries) error = %v, want ErrInvalidInput", err)
	}
}

func TestPolicyWon(t *testing.T) {
	p := DefaultPolicy()

	if p.Won(199) {
		t.Error("Won(199) = true, want false")
	}
	if !p.Won(200) {
		t.Error("Won(200) = false, want true")
	}
}

func TestPolicyValidate(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("DefaultPolicy().Validate() error = %v", err)
	}

	broken := []func(*Policy){
		func(p *Policy) { p.Slots = 0 },
		func(p *Policy) { p.Table = []int{30, -1} },
		func(p *Policy) { p.Fallback = -5 },
		func(p *Policy) { p.Player1Time = 500 * time.Millisecond },
		func(p *Policy) { p.Player2Time = 0 },
	}

	for i, mutate := range broken {
		p := DefaultPolicy()
		mutate(&p)

		if err := p.Validate(); err == nil {
			t.Errorf("case %d: Validate() = nil, want an error", i)
		}
	}
}

func TestDefaultPolicyCopiesTable(t *testing.T) {
	p := DefaultPolicy()
	p.Table[0] = 1000

	if DefaultPointsTable[0] != 30 {
		t.Errorf("DefaultPointsTable[0] = %d, want 30", DefaultPointsTable[0])
	}
}
