/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package feud

// Slot is one answer position as the audience sees it. Text and points stay
// empty until the answer is revealed.
type Slot struct {
	Revealed bool   `json:"revealed"`
	Text     string `json:"text,omitempty"`
	Points   int    `json:"points,omitempty"`
}

type FastMoneyView struct {
	Phase     FastMoneyPhase `json:"phase"`
	Question  string         `json:"question"`
	Player1   []int          `json:"player1,omitempty"`
	Player2   []int          `json:"player2,omitempty"`
	EntryOpen [2]bool        `json:"entry_open"`
	Total     int            `json:"total"`
	Done      bool           `json:"done"`
	Won       bool           `json:"won"`
}

// Snapshot is everything currently visible on the board, used to bring a
// newly connected screen up to date.
type Snapshot struct {
	Phase      Phase          `json:"phase"`
	LoadStatus LoadStatus     `json:"load_status"`
	LoadError  string         `json:"load_error,omitempty"`
	Round      int            `json:"round"`
	Rounds     int            `json:"rounds"`
	Question   string         `json:"question"`
	Answers    []Slot         `json:"answers"`
	Team1      int            `json:"team1"`
	Team2      int            `json:"team2"`
	Strikes    int            `json:"strikes"`
	Timer      int            `json:"timer"`
	FastMoney  *FastMoneyView `json:"fast_money,omitempty"`
}

func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Phase:      c.phase,
		LoadStatus: c.status,
		Answers:    []Slot{},
		Team1:      c.board.Score(1),
		Team2:      c.board.Score(2),
		Strikes:    c.board.Strikes(),
	}

	if c.timer.Active() {
		s.Timer = c.timer.Remaining()
	}

	if c.loadErr != nil {
		s.LoadError = c.loadErr.Error()
	}

	if c.rounds != nil {
		s.Rounds = c.rounds.Len()
		s.Round = c.rounds.Index() + 1
	}

	switch c.phase {
	case PhaseMainGame:
		round, err := c.rounds.Current()
		if err != nil {
			break
		}

		s.Question = round.Question
		for _, a := range round.Answers {
			slot := Slot{Revealed: a.Revealed}
			if a.Revealed {
				slot.Text = a.Text
				slot.Points = a.Points
			}
			s.Answers = append(s.Answers, slot)
		}
	case PhaseFastMoneyIntro:
		s.Round = s.Rounds
		s.Question = promptMainGameOver
	case PhaseFastMoney, PhaseEnd:
		s.Round = s.Rounds
		s.FastMoney = &FastMoneyView{
			Phase:     c.fm.Phase(),
			Question:  c.rounds.first(),
			Player1:   c.fm.Scores(1),
			Player2:   c.fm.Scores(2),
			EntryOpen: [2]bool{c.fm.EntryOpen(1), c.fm.EntryOpen(2)},
			Total:     c.fm.Total(),
			Done:      c.fm.Done(),
			Won:       c.fm.Done() && c.fm.Won(),
		}
	}

	return s
}
