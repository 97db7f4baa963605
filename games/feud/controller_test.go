package feud

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jonboulle/clockwork"
)

func newTestController() (*Controller, *recorder) {
	rec := &recorder{}
	c := NewController(rec, Options{
		Clock:    clockwork.NewFakeClock(),
		Dispatch: newLoop().dispatch,
	})

	return c, rec
}

func startedController(t *testing.T) (*Controller, *recorder) {
	t.Helper()

	c, rec := newTestController()
	if err := c.SetRounds(testRounds()); err != nil {
		t.Fatalf("SetRounds() error = %v", err)
	}
	if err := c.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	rec.reset()

	return c, rec
}

func TestStartWaitsForData(t *testing.T) {
	c, rec := newTestController()

	if err := c.Start(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Start() before load error = %v, want ErrNotLoaded", err)
	}
	if c.Phase() != PhaseStart {
		t.Errorf("Phase() = %s, want %s", c.Phase(), PhaseStart)
	}

	if err := c.SetRounds(testRounds()); err != nil {
		t.Fatalf("SetRounds() error = %v", err)
	}

	if c.Phase() != PhaseMainGame {
		t.Errorf("Phase() = %s after data arrived, want %s", c.Phase(), PhaseMainGame)
	}
	if !rec.has(`question "Name something people bring to a picnic"`) || !rec.has("slots 3") {
		t.Errorf("first round not rendered: %v", rec.events)
	}
}

func TestStartAfterLoadFailure(t *testing.T) {
	c, _ := newTestController()

	c.FailLoad(fmt.Errorf("%w: unexpected end of JSON input", ErrDataLoad))

	if err := c.Start(); !errors.Is(err, ErrDataLoad) {
		t.Errorf("Start() error = %v, want ErrDataLoad", err)
	}
	if c.Phase() != PhaseStart {
		t.Errorf("Phase() = %s, want %s", c.Phase(), PhaseStart)
	}
	if c.LoadStatus() != LoadFailed {
		t.Errorf("LoadStatus() = %s, want %s", c.LoadStatus(), LoadFailed)
	}

	if err := c.SetRounds(testRounds()); err != nil {
		t.Fatalf("SetRounds() after reload error = %v", err)
	}
	if err := c.Start(); err != nil {
		t.Errorf("Start() after reload error = %v", err)
	}
}

func TestFailLoadNotFoundKeepsWaiting(t *testing.T) {
	c, _ := newTestController()

	c.FailLoad(fmt.Errorf("%w: questions.json does not exist", ErrNotLoaded))

	if c.LoadStatus() != LoadPending {
		t.Errorf("LoadStatus() = %s, want %s", c.LoadStatus(), LoadPending)
	}

	c.FailLoad(errors.New("connection refused"))
	if err := c.Start(); !errors.Is(err, ErrDataLoad) {
		t.Errorf("Start() error = %v, want ErrDataLoad for an unwrapped failure", err)
	}
}

func TestRevealRendersOnce(t *testing.T) {
	c, rec := startedController(t)

	if err := c.RevealAnswer(0); err != nil {
		t.Fatalf("RevealAnswer(0) error = %v", err)
	}
	if err := c.RevealAnswer(0); !errors.Is(err, ErrAlreadyRevealed) {
		t.Errorf("second RevealAnswer(0) error = %v, want ErrAlreadyRevealed", err)
	}
	if err := c.RevealAnswer(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("RevealAnswer(5) error = %v, want ErrOutOfRange", err)
	}

	if n := rec.count(`reveal 0 "Sandwiches" 40`); n != 1 {
		t.Errorf("answer 0 rendered %d times, want 1", n)
	}
	if len(rec.events) != 1 {
		t.Errorf("rendered %v, want only the first reveal", rec.events)
	}
}

func TestAdvanceRoundResetsStrikes(t *testing.T) {
	c, rec := startedController(t)

	for i := 0; i < 4; i++ {
		_ = c.AddStrike()
	}
	if s := c.Snapshot().Strikes; s != 3 {
		t.Fatalf("strikes = %d, want 3", s)
	}
	if n := rec.count("strikes 3"); n != 1 {
		t.Errorf("strikes 3 rendered %d times, want 1", n)
	}

	if err := c.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound() error = %v", err)
	}

	if s := c.Snapshot().Strikes; s != 0 {
		t.Errorf("strikes = %d after new round, want 0", s)
	}
	if !rec.has("strikes 0") || !rec.has(`question "Name a pet"`) {
		t.Errorf("new round not rendered: %v", rec.events)
	}
}

func TestAdvancePastLastRound(t *testing.T) {
	c, rec := startedController(t)

	_ = c.AdvanceRound()
	if err := c.AdvanceRound(); err != nil {
		t.Fatalf("AdvanceRound() onto the end error = %v", err)
	}

	if c.Phase() != PhaseFastMoneyIntro {
		t.Errorf("Phase() = %s, want %s", c.Phase(), PhaseFastMoneyIntro)
	}
	if !rec.has(`prompt "Time for Fast Money!"`) {
		t.Errorf("fast money prompt not rendered: %v", rec.events)
	}

	if err := c.AdvanceRound(); !errors.Is(err, ErrSessionOver) {
		t.Errorf("AdvanceRound() past the end error = %v, want ErrSessionOver", err)
	}
	if err := c.RevealAnswer(0); !errors.Is(err, ErrSessionOver) {
		t.Errorf("RevealAnswer(0) past the end error = %v, want ErrSessionOver", err)
	}
}

func TestAddPointsIgnoresMalformedInput(t *testing.T) {
	c, rec := startedController(t)

	for _, amount := range []string{"", "abc", "-", "+x", "points: 12", "99999999999999999999"} {
		if err := c.AddPoints(1, amount); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("AddPoints(1, %q) error = %v, want ErrInvalidInput", amount, err)
		}
	}
	if err := c.AddPoints(3, "10"); !errors.Is(err, ErrInvalidTeam) {
		t.Errorf("AddPoints(3, 10) error = %v, want ErrInvalidTeam", err)
	}

	if len(rec.events) != 0 {
		t.Errorf("rendered %v for rejected input, want nothing", rec.events)
	}

	_ = c.AddPoints(1, " 300 ")
	_ = c.AddPoints(1, "-100")

	if got := c.Snapshot().Team1; got != 200 {
		t.Errorf("team 1 = %d, want 200", got)
	}
	if !rec.has("team 1 200") {
		t.Errorf("team score not rendered: %v", rec.events)
	}
}

func TestAddPointsTakesLeadingNumber(t *testing.T) {
	tests := []struct {
		amount string
		want   int
	}{
		{amount: "12.5", want: 12},
		{amount: "15 points", want: 15},
		{amount: "  +7", want: 7},
		{amount: "-20abc", want: -20},
		{amount: "300abc", want: 300},
	}

	for _, tt := range tests {
		c, _ := startedController(t)

		if err := c.AddPoints(2, tt.amount); err != nil {
			t.Errorf("AddPoints(2, %q) error = %v", tt.amount, err)
			continue
		}
		if got := c.Snapshot().Team2; got != tt.want {
			t.Errorf("AddPoints(2, %q) team 2 = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestHandleKey(t *testing.T) {
	c, _ := startedController(t)

	_ = c.HandleKey("1", "50")
	_ = c.HandleKey("2", "75")
	_ = c.HandleKey("X", "")
	_ = c.HandleKey("q", "")

	if err := c.HandleKey("1", "lots"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf(`HandleKey("1", "lots") error = %v, want ErrInvalidInput`, err)
	}

	s := c.Snapshot()
	if s.Team1 != 50 || s.Team2 != 75 || s.Strikes != 1 {
		t.Errorf("team1/team2/strikes = %d/%d/%d, want 50/75/1", s.Team1, s.Team2, s.Strikes)
	}

	_ = c.AdvanceRound()
	_ = c.AdvanceRound()
	_ = c.StartFastMoney()

	if err := c.HandleKey("1", "100"); err != nil {
		t.Errorf("HandleKey on the fast money board error = %v, want nil", err)
	}
	if got := c.Snapshot().Team1; got != 50 {
		t.Errorf("team 1 = %d after key on fast money board, want 50", got)
	}
}

func TestStartFastMoneyOnlyAfterMainGame(t *testing.T) {
	c, _ := startedController(t)

	if err := c.StartFastMoney(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("StartFastMoney() mid-game error = %v, want ErrInvalidState", err)
	}
	if err := c.SubmitPlayer1([]string{"a"}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SubmitPlayer1() mid-game error = %v, want ErrInvalidState", err)
	}
}

func TestFullGame(t *testing.T) {
	c, rec := startedController(t)

	_ = c.RevealAnswer(0)
	_ = c.AddPoints(1, "40")
	_ = c.AdvanceRound()
	_ = c.AdvanceRound()

	if err := c.StartFastMoney(); err != nil {
		t.Fatalf("StartFastMoney() error = %v", err)
	}
	if !rec.has(`fm_question "Name something people bring to a picnic"`) || !rec.has("timer 20") {
		t.Errorf("fast money not rendered: %v", rec.events)
	}

	entries := []string{"a", "", "c", "", "e"}
	if err := c.Submit(1, entries); err != nil {
		t.Fatalf("Submit(1) error = %v", err)
	}
	if !rec.has("timer 25") {
		t.Errorf("player 2 timer not rendered: %v", rec.events)
	}
	if err := c.Submit(2, entries); err != nil {
		t.Fatalf("Submit(2) error = %v", err)
	}

	if c.Phase() != PhaseEnd {
		t.Errorf("Phase() = %s, want %s", c.Phase(), PhaseEnd)
	}
	if !rec.has("final 120 false") {
		t.Errorf("final score not rendered: %v", rec.events)
	}

	if err := c.Submit(2, entries); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Submit(2) after the end error = %v, want ErrInvalidState", err)
	}
	if err := c.Submit(3, entries); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Submit(3) error = %v, want ErrInvalidInput", err)
	}

	s := c.Snapshot()
	if s.FastMoney == nil || s.FastMoney.Total != 120 || !s.FastMoney.Done || s.FastMoney.Won {
		t.Errorf("snapshot fast money = %+v, want done, 120, lost", s.FastMoney)
	}
	if s.Team1 != 40 {
		t.Errorf("snapshot team 1 = %d, want 40", s.Team1)
	}
}

func TestSnapshotHidesUnrevealedAnswers(t *testing.T) {
	c, _ := startedController(t)

	_ = c.RevealAnswer(2)
	s := c.Snapshot()

	if s.Round != 1 || s.Rounds != 2 {
		t.Errorf("round = %d of %d, want 1 of 2", s.Round, s.Rounds)
	}
	if len(s.Answers) != 3 {
		t.Fatalf("got %d answer slots, want 3", len(s.Answers))
	}
	if s.Answers[0].Revealed || s.Answers[0].Text != "" || s.Answers[0].Points != 0 {
		t.Errorf("hidden slot leaked: %+v", s.Answers[0])
	}
	if want := (Slot{Revealed: true, Text: "Basket", Points: 15}); s.Answers[2] != want {
		t.Errorf("revealed slot = %+v, want %+v", s.Answers[2], want)
	}
}

func TestSetRoundsAfterStart(t *testing.T) {
	c, _ := startedController(t)

	if err := c.SetRounds(testRounds()); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SetRounds() mid-game error = %v, want ErrInvalidState", err)
	}
}

func TestSnapshotClearsStoppedCountdown(t *testing.T) {
	c, rec := startedController(t)

	_ = c.AdvanceRound()
	_ = c.AdvanceRound()
	if err := c.StartFastMoney(); err != nil {
		t.Fatalf("StartFastMoney() error = %v", err)
	}
	if got := c.Snapshot().Timer; got != 20 {
		t.Errorf("Snapshot().Timer = %d during player 1, want 20", got)
	}

	entries := []string{"a", "b", "c", "d", "e"}
	_ = c.SubmitPlayer1(entries)
	if got := c.Snapshot().Timer; got != 25 {
		t.Errorf("Snapshot().Timer = %d during player 2, want 25", got)
	}

	rec.reset()
	if err := c.SubmitPlayer2(entries); err != nil {
		t.Fatalf("SubmitPlayer2() error = %v", err)
	}

	if got := c.Snapshot().Timer; got != 0 {
		t.Errorf("Snapshot().Timer = %d after the last submit, want 0", got)
	}
	if !rec.has("timer 0") {
		t.Errorf("stopped countdown not cleared on the board: %v", rec.events)
	}
}
