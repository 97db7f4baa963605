/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package feud

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

type Phase int

const (
	PhaseStart Phase = iota
	PhaseMainGame
	PhaseFastMoneyIntro
	PhaseFastMoney
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMainGame:
		return "main_game"
	case PhaseFastMoneyIntro:
		return "fast_money_intro"
	case PhaseFastMoney:
		return "fast_money"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type LoadStatus int

const (
	LoadPending LoadStatus = iota
	LoadReady
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadPending:
		return "pending"
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	default:
		return fmt.Sprintf("load_status(%d)", int(s))
	}
}

func (s LoadStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const (
	promptLoading      = "Loading..."
	promptMainGameOver = "Main Game Over!"
	promptFastMoney    = "Time for Fast Money!"
)

// Options configure a Controller. The zero value uses the default policy,
// the real clock, and runs dispatched work inline.
//
// Inline dispatch runs timer ticks on the ticker's own goroutine. With a real
// clock that races with every other Controller call, so callers driving a
// real countdown must supply a Dispatch that hands work to their event loop.
type Options struct {
	Policy   *Policy
	Clock    clockwork.Clock
	Dispatch Dispatcher
}

// Controller owns one game session and routes operator input to the round,
// score and Fast Money components. It is not safe for concurrent use; every
// call, including the ones its Dispatcher delivers, must come from one goroutine.
type Controller struct {
	render Renderer
	policy Policy

	phase        Phase
	status       LoadStatus
	loadErr      error
	startPending bool

	rounds *RoundState
	board  *ScoreBoard
	timer  *Timer
	fm     *FastMoney
}

func NewController(render Renderer, opts Options) *Controller {
	if render == nil {
		render = NopRenderer{}
	}

	policy := DefaultPolicy()
	if opts.Policy != nil {
		policy = *opts.Policy
	}

	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}

	return &Controller{
		render: render,
		policy: policy,
		board:  NewScoreBoard(),
		timer:  NewTimer(opts.Clock, dispatch, render.RenderTimer),
	}
}

func (c *Controller) Phase() Phase {
	return c.phase
}

func (c *Controller) LoadStatus() LoadStatus {
	return c.status
}

// SetRounds installs freshly loaded round data. A start requested while the
// data was loading runs now.
func (c *Controller) SetRounds(rounds []Round) error {
	if c.phase != PhaseStart {
		return fmt.Errorf("%w: rounds cannot change once the game is running", ErrInvalidState)
	}

	c.rounds = NewRoundState(rounds)
	c.status = LoadReady
	c.loadErr = nil

	log.Debug().Int("rounds", len(rounds)).Msg("round data loaded")

	if c.startPending {
		c.startPending = false

		return c.Start()
	}

	c.render.RenderPrompt("")

	return nil
}

// FailLoad records a failed load. ErrNotLoaded keeps the session waiting for
// data; anything else blocks the game start until a later load succeeds.
func (c *Controller) FailLoad(err error) {
	if c.phase != PhaseStart || c.status == LoadReady {
		return
	}

	if errors.Is(err, ErrNotLoaded) {
		c.status = LoadPending
		c.render.RenderPrompt("Waiting for round data.")

		return
	}

	if !errors.Is(err, ErrDataLoad) {
		err = fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	c.status = LoadFailed
	c.loadErr = err
	c.startPending = false

	log.Debug().Err(err).Msg("round data failed to load")

	c.render.RenderPrompt("Unable to load game data.")
}

// Start leaves the start screen and shows the first round. Until round data
// has loaded the start is deferred and ErrNotLoaded is returned.
func (c *Controller) Start() error {
	if c.phase != PhaseStart {
		return fmt.Errorf("%w: game already started", ErrInvalidState)
	}

	switch c.status {
	case LoadPending:
		c.startPending = true
		c.render.RenderPrompt(promptLoading)

		return ErrNotLoaded
	case LoadFailed:
		return c.loadErr
	}

	c.setPhase(PhaseMainGame)
	c.render.RenderPrompt("")
	c.showRound()

	return nil
}

// RevealAnswer uncovers answer i of the current round.
func (c *Controller) RevealAnswer(i int) error {
	switch c.phase {
	case PhaseMainGame:
	case PhaseFastMoneyIntro:
		return ErrSessionOver
	default:
		return fmt.Errorf("%w: no round on the board", ErrInvalidState)
	}

	answer, err := c.rounds.RevealAnswer(i)
	if err != nil {
		return err
	}

	c.render.RenderAnswerRevealed(i, answer.Text, answer.Points)

	return nil
}

// AdvanceRound moves to the next round, or to the Fast Money intro after the last one.
func (c *Controller) AdvanceRound() error {
	switch c.phase {
	case PhaseMainGame:
	case PhaseFastMoneyIntro:
		return ErrSessionOver
	default:
		return fmt.Errorf("%w: no round on the board", ErrInvalidState)
	}

	if _, err := c.rounds.AdvanceRound(); err != nil {
		return err
	}

	c.showRound()

	return nil
}

func (c *Controller) showRound() {
	c.board.ResetStrikes()
	c.render.RenderStrikes(0)

	round, err := c.rounds.Current()
	if err != nil {
		c.setPhase(PhaseFastMoneyIntro)
		c.render.RenderQuestion(promptMainGameOver)
		c.render.RenderAnswerSlots(0)
		c.render.RenderPrompt(promptFastMoney)

		return
	}

	log.Debug().Int("round", c.rounds.Index()+1).Msg("showing round")

	c.render.RenderQuestion(round.Question)
	c.render.RenderAnswerSlots(len(round.Answers))
}

// AddPoints adds the operator-typed amount to a team. Only the leading whole
// number counts, so "12.5" adds 12 and "15 points" adds 15. An amount with no
// leading number is rejected with ErrInvalidInput and changes nothing.
func (c *Controller) AddPoints(team int, amount string) error {
	if !c.mainBoard() {
		return fmt.Errorf("%w: scores are only shown on the main board", ErrInvalidState)
	}

	points, err := leadingInt(amount)
	if err != nil {
		return fmt.Errorf("%w: amount %q", ErrInvalidInput, amount)
	}

	score, err := c.board.AddPoints(team, points)
	if err != nil {
		return err
	}

	c.render.RenderTeamScore(team, score)

	return nil
}

// AddStrike adds a strike, up to MaxStrikes.
func (c *Controller) AddStrike() error {
	if !c.mainBoard() {
		return fmt.Errorf("%w: strikes are only shown on the main board", ErrInvalidState)
	}

	if strikes, changed := c.board.AddStrike(); changed {
		c.render.RenderStrikes(strikes)
	}

	return nil
}

// HandleKey applies the board's keyboard shortcuts: "1" and "2" add arg
// points to that team, "x" adds a strike. Keys are ignored while the main
// board is hidden, and unknown keys are ignored.
func (c *Controller) HandleKey(key, arg string) error {
	if !c.mainBoard() {
		return nil
	}

	switch strings.ToLower(key) {
	case "1":
		return c.AddPoints(1, arg)
	case "2":
		return c.AddPoints(2, arg)
	case "x":
		return c.AddStrike()
	}

	return nil
}

// StartFastMoney swaps to the Fast Money board and starts player 1's countdown.
func (c *Controller) StartFastMoney() error {
	if c.phase != PhaseFastMoneyIntro {
		return fmt.Errorf("%w: fast money starts after the last round", ErrInvalidState)
	}

	c.setPhase(PhaseFastMoney)
	c.fm = NewFastMoney(c.policy, c.timer, c.render)
	c.render.RenderFastMoneyQuestion(c.rounds.first())

	return c.fm.Begin()
}

func (c *Controller) SubmitPlayer1(entries []string) error {
	if c.phase != PhaseFastMoney {
		return fmt.Errorf("%w: fast money is not running", ErrInvalidState)
	}

	_, err := c.fm.SubmitPlayer1(entries)

	return err
}

// SubmitPlayer2 scores player 2 and shows the final verdict.
func (c *Controller) SubmitPlayer2(entries []string) error {
	if c.phase != PhaseFastMoney {
		return fmt.Errorf("%w: fast money is not running", ErrInvalidState)
	}

	if _, err := c.fm.SubmitPlayer2(entries); err != nil {
		return err
	}

	c.setPhase(PhaseEnd)
	c.render.RenderFinalScore(c.fm.Total(), c.fm.Won())

	return nil
}

// Submit routes a Fast Money submission by player number.
func (c *Controller) Submit(player int, entries []string) error {
	switch player {
	case 1:
		return c.SubmitPlayer1(entries)
	case 2:
		return c.SubmitPlayer2(entries)
	default:
		return fmt.Errorf("%w: player %d", ErrInvalidInput, player)
	}
}

// Close stops any running countdown.
func (c *Controller) Close() {
	c.timer.Cancel()
}

// leadingInt reads an optionally signed run of digits at the start of s,
// after any leading whitespace, and ignores whatever follows.
func leadingInt(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\r\n")

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, strconv.ErrSyntax
	}

	return strconv.Atoi(s[:end])
}

func (c *Controller) mainBoard() bool {
	return c.phase == PhaseMainGame || c.phase == PhaseFastMoneyIntro
}

func (c *Controller) setPhase(p Phase) {
	log.Debug().Stringer("from", c.phase).Stringer("to", p).Msg("phase change")

	c.phase = p
	c.render.RenderPhase(p)
}
