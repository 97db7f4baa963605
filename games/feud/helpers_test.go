package feud

import (
	"fmt"
	"testing"
	"time"
)

// loop stands in for the hub's event loop: timer ticks queue up on events
// and only run when the test steps them.
type loop struct {
	events chan func()
}

func newLoop() *loop {
	return &loop{events: make(chan func(), 64)}
}

func (l *loop) dispatch(f func()) {
	l.events <- f
}

func (l *loop) step(t *testing.T) {
	t.Helper()

	select {
	case f := <-l.events:
		f()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a dispatched tick")
	}
}

// drain runs whatever is queued until the loop has been quiet for a moment.
func (l *loop) drain() {
	for {
		select {
		case f := <-l.events:
			f()
		case <-time.After(50 * time.Millisecond):
			return
		}
	}
}

// recorder keeps every render call as a short string.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() {
	r.events = nil
}

func (r *recorder) has(event string) bool {
	for _, e := range r.events {
		if e == event {
			return true
		}
	}

	return false
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}

	return n
}

func (r *recorder) RenderPhase(p Phase) { r.add("phase %s", p) }
func (r *recorder) RenderPrompt(text string) { r.add("prompt %q", text) }
func (r *recorder) RenderQuestion(text string) { r.add("question %q", text) }
func (r *recorder) RenderAnswerSlots(count int) { r.add("slots %d", count) }
func (r *recorder) RenderTeamScore(team, s int) { r.add("team %d %d", team, s) }
func (r *recorder) RenderStrikes(count int) { r.add("strikes %d", count) }
func (r *recorder) RenderTimer(remaining int) { r.add("timer %d", remaining) }
func (r *recorder) RenderFastMoneyQuestion(q string) { r.add("fm_question %q", q) }
func (r *recorder) RenderEntryWindow(player int, open bool) {
	r.add("window %d %t", player, open)
}
func (r *recorder) RenderAnswerRevealed(i int, text string, points int) {
	r.add("reveal %d %q %d", i, text, points)
}
func (r *recorder) RenderFastMoneyScore(slot, player, points int) {
	r.add("fm_score %d %d %d", slot, player, points)
}
func (r *recorder) RenderFinalScore(total int, won bool) {
	r.add("final %d %t", total, won)
}

func testRounds() []Round {
	return []Round{
		{
			Question: "Name something people bring to a picnic",
			Answers: []Answer{
				{Text: "Sandwiches", Points: 40},
				{Text: "Blanket", Points: 25},
				{Text: "Basket", Points: 15},
			},
		},
		{
			Question: "Name a pet",
			Answers: []Answer{
				{Text: "Dog", Points: 50},
				{Text: "Cat", Points: 30},
			},
		},
	}
}
