/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package feud

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type FastMoneyPhase int

const (
	FastMoneyIdle FastMoneyPhase = iota
	AwaitingPlayer1
	ScoringPlayer1
	AwaitingPlayer2
	ScoringPlayer2
	FastMoneyDone
)

func (p FastMoneyPhase) String() string {
	switch p {
	case FastMoneyIdle:
		return "idle"
	case AwaitingPlayer1:
		return "awaiting_player1"
	case ScoringPlayer1:
		return "scoring_player1"
	case AwaitingPlayer2:
		return "awaiting_player2"
	case ScoringPlayer2:
		return "scoring_player2"
	case FastMoneyDone:
		return "done"
	default:
		return fmt.Sprintf("fast_money_phase(%d)", int(p))
	}
}

func (p FastMoneyPhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// FastMoney runs the two-player bonus round. Each player answers under their
// own countdown; when a countdown runs out the player's entry window closes,
// but moving on is left to the operator, whose submit is still scored.
type FastMoney struct {
	policy Policy
	timer  *Timer
	render Renderer

	phase   FastMoneyPhase
	entries [2][]string
	scores  [2][]int
	open    [2]bool
	total   int
}

func NewFastMoney(policy Policy, timer *Timer, render Renderer) *FastMoney {
	return &FastMoney{
		policy: policy,
		timer:  timer,
		render: render,
	}
}

// Begin opens player 1's entry window and starts their countdown.
func (f *FastMoney) Begin() error {
	if f.phase != FastMoneyIdle {
		return fmt.Errorf("%w: fast money already %s", ErrInvalidState, f.phase)
	}

	f.phase = AwaitingPlayer1

	return f.openWindow(1, f.policy.Player1Time)
}

// SubmitPlayer1 scores player 1 and hands over to player 2.
func (f *FastMoney) SubmitPlayer1(entries []string) ([]int, error) {
	scores, err := f.submit(1, entries, AwaitingPlayer1, ScoringPlayer1)
	if err != nil {
		return nil, err
	}

	f.phase = AwaitingPlayer2

	return scores, f.openWindow(2, f.policy.Player2Time)
}

// SubmitPlayer2 scores player 2 and finishes the round.
func (f *FastMoney) SubmitPlayer2(entries []string) ([]int, error) {
	scores, err := f.submit(2, entries, AwaitingPlayer2, ScoringPlayer2)
	if err != nil {
		return nil, err
	}

	f.phase = FastMoneyDone

	log.Debug().Int("total", f.total).Bool("won", f.Won()).Msg("fast money finished")

	return scores, nil
}

func (f *FastMoney) submit(player int, entries []string, awaiting, scoring FastMoneyPhase) ([]int, error) {
	if f.phase != awaiting {
		return nil, fmt.Errorf("%w: player %d cannot submit while fast money is %s", ErrInvalidState, player, f.phase)
	}

	scores, total, err := f.policy.Score(entries)
	if err != nil {
		return nil, err
	}

	f.timer.Cancel()
	f.render.RenderTimer(0)
	f.phase = scoring

	kept := make([]string, f.policy.Slots)
	copy(kept, entries)
	f.entries[player-1] = kept
	f.scores[player-1] = scores
	f.total += total

	f.closeWindow(player)
	for slot, points := range scores {
		f.render.RenderFastMoneyScore(slot, player, points)
	}

	return scores, nil
}

func (f *FastMoney) openWindow(player int, d time.Duration) error {
	f.open[player-1] = true
	f.render.RenderEntryWindow(player, true)

	return f.timer.Start(seconds(d), func() {
		log.Debug().Int("player", player).Msg("fast money entry window expired")
		f.closeWindow(player)
	})
}

func (f *FastMoney) closeWindow(player int) {
	if !f.open[player-1] {
		return
	}

	f.open[player-1] = false
	f.render.RenderEntryWindow(player, false)
}

func (f *FastMoney) Phase() FastMoneyPhase {
	return f.phase
}

func (f *FastMoney) Total() int {
	return f.total
}

func (f *FastMoney) Done() bool {
	return f.phase == FastMoneyDone
}

// Won reports the verdict. It is only meaningful once Done.
func (f *FastMoney) Won() bool {
	return f.policy.Won(f.total)
}

// EntryOpen reports whether the player's countdown is still running.
func (f *FastMoney) EntryOpen(player int) bool {
	if player != 1 && player != 2 {
		return false
	}

	return f.open[player-1]
}

// Scores returns a copy of the player's per-slot scores, nil before they submit.
func (f *FastMoney) Scores(player int) []int {
	if player != 1 && player != 2 || f.scores[player-1] == nil {
		return nil
	}

	out := make([]int, len(f.scores[player-1]))
	copy(out, f.scores[player-1])

	return out
}

// Entries returns a copy of what the player submitted, nil before they submit.
func (f *FastMoney) Entries(player int) []string {
	if player != 1 && player != 2 || f.entries[player-1] == nil {
		return nil
	}

	out := make([]string, len(f.entries[player-1]))
	copy(out, f.entries[player-1])

	return out
}
