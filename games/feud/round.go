/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package feud

import "fmt"

// MaxAnswers is the number of answer slots on the board.
const MaxAnswers = 6

type Answer struct {
	Text     string `json:"answer" yaml:"answer"`
	Points   int    `json:"points" yaml:"points"`
	Revealed bool   `json:"-" yaml:"-"`
}

type Round struct {
	Question string   `json:"question" yaml:"question"`
	Answers  []Answer `json:"answers" yaml:"answers"`
}

// RoundState walks through the main-game rounds and tracks which answers
// have been revealed. It owns its own copy of the rounds.
type RoundState struct {
	rounds []Round
	index  int
}

func NewRoundState(rounds []Round) *RoundState {
	owned := make([]Round, len(rounds))
	for i, r := range rounds {
		owned[i] = Round{
			Question: r.Question,
			Answers:  make([]Answer, len(r.Answers)),
		}
		for j, a := range r.Answers {
			owned[i].Answers[j] = Answer{Text: a.Text, Points: a.Points}
		}
	}

	return &RoundState{rounds: owned}
}

func (s *RoundState) Len() int {
	return len(s.rounds)
}

// Index is the zero-based index of the current round. It equals Len once
// the main game is over.
func (s *RoundState) Index() int {
	return s.index
}

func (s *RoundState) Over() bool {
	return s.index >= len(s.rounds)
}

// Current returns a copy of the current round, or ErrSessionOver.
func (s *RoundState) Current() (Round, error) {
	if s.Over() {
		return Round{}, ErrSessionOver
	}

	r := s.rounds[s.index]
	answers := make([]Answer, len(r.Answers))
	copy(answers, r.Answers)

	return Round{Question: r.Question, Answers: answers}, nil
}

// RevealAnswer marks answer i of the current round as revealed and returns it.
// A second reveal of the same answer fails with ErrAlreadyRevealed and
// changes nothing.
func (s *RoundState) RevealAnswer(i int) (Answer, error) {
	if s.Over() {
		return Answer{}, ErrSessionOver
	}

	answers := s.rounds[s.index].Answers
	if i < 0 || i >= len(answers) {
		return Answer{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(answers))
	}

	if answers[i].Revealed {
		return answers[i], ErrAlreadyRevealed
	}

	answers[i].Revealed = true

	return answers[i], nil
}

// AdvanceRound moves to the next round. over is true only on the call that
// ends the main game; advancing past the end fails with ErrSessionOver.
func (s *RoundState) AdvanceRound() (over bool, err error) {
	if s.Over() {
		return false, ErrSessionOver
	}

	s.index++

	return s.Over(), nil
}

// first returns the question of the opening round, used again for Fast Money.
func (s *RoundState) first() string {
	if len(s.rounds) == 0 {
		return ""
	}

	return s.rounds[0].Question
}
