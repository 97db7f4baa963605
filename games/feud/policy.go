/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package feud

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultFallbackPoints is awarded for a filled slot past the end of the table.
	DefaultFallbackPoints = 5

	// DefaultWinThreshold is the combined Fast Money total needed to win.
	DefaultWinThreshold = 200

	DefaultPlayer1Time = 20 * time.Second
	DefaultPlayer2Time = 25 * time.Second
)

// DefaultPointsTable is the placeholder Fast Money table, indexed by slot.
// It does not look at what the player typed, only whether the slot is filled.
var DefaultPointsTable = []int{30, 25, 20, 15, 10}

// Policy holds the Fast Money scoring constants.
type Policy struct {
	Slots        int
	Table        []int
	Fallback     int
	WinThreshold int
	Player1Time  time.Duration
	Player2Time  time.Duration
}

func DefaultPolicy() Policy {
	table := make([]int, len(DefaultPointsTable))
	copy(table, DefaultPointsTable)

	return Policy{
		Slots:        len(table),
		Table:        table,
		Fallback:     DefaultFallbackPoints,
		WinThreshold: DefaultWinThreshold,
		Player1Time:  DefaultPlayer1Time,
		Player2Time:  DefaultPlayer2Time,
	}
}

func (p Policy) Validate() error {
	if p.Slots < 1 {
		return fmt.Errorf("fast money needs at least one slot, got %d", p.Slots)
	}
	for i, v := range p.Table {
		if v < 0 {
			return fmt.Errorf("fast money points for slot %d must not be negative: %d", i+1, v)
		}
	}
	if p.Fallback < 0 {
		return fmt.Errorf("fast money fallback points must not be negative: %d", p.Fallback)
	}
	if p.Player1Time < time.Second || p.Player2Time < time.Second {
		return errors.New("fast money timers must be at least one second")
	}

	return nil
}

// Score awards each non-blank slot its table value, or Fallback past the end
// of the table. Blank slots score 0. Missing trailing entries count as blank.
func (p Policy) Score(entries []string) (scores []int, total int, err error) {
	if len(entries) > p.Slots {
		return nil, 0, fmt.Errorf("%w: %d entries for %d slots", ErrInvalidInput, len(entries), p.Slots)
	}

	scores = make([]int, p.Slots)
	for i, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		if i < len(p.Table) {
			scores[i] = p.Table[i]
		} else {
			scores[i] = p.Fallback
		}

		total += scores[i]
	}

	return scores, total, nil
}

func (p Policy) Won(total int) bool {
	return total >= p.WinThreshold
}

func seconds(d time.Duration) int {
	return int(d / time.Second)
}
