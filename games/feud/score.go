/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package feud

// MaxStrikes caps the strike counter.
const MaxStrikes = 3

// ScoreBoard holds both team scores and the strike count for the current round.
//
// Scores accept any signed amount with no floor or ceiling, so the operator
// can correct a mistaken award by adding a negative amount.
type ScoreBoard struct {
	scores  [2]int
	strikes int
}

func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{}
}

// AddPoints adds amount to team 1 or 2 and returns the new score.
func (b *ScoreBoard) AddPoints(team, amount int) (int, error) {
	if team != 1 && team != 2 {
		return 0, ErrInvalidTeam
	}

	b.scores[team-1] += amount

	return b.scores[team-1], nil
}

// Score returns the team's score, or 0 for an unknown team.
func (b *ScoreBoard) Score(team int) int {
	if team != 1 && team != 2 {
		return 0
	}

	return b.scores[team-1]
}

// AddStrike increments the strike count unless it is already at MaxStrikes.
// changed reports whether the count moved.
func (b *ScoreBoard) AddStrike() (strikes int, changed bool) {
	if b.strikes >= MaxStrikes {
		return b.strikes, false
	}

	b.strikes++

	return b.strikes, true
}

func (b *ScoreBoard) ResetStrikes() {
	b.strikes = 0
}

func (b *ScoreBoard) Strikes() int {
	return b.strikes
}
