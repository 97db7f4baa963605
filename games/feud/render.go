/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package feud

// Renderer receives every visible change the controller makes.
// Player and team numbers are 1-based, answer and slot indexes 0-based.
type Renderer interface {
	RenderPhase(phase Phase)
	RenderPrompt(text string)
	RenderQuestion(text string)
	RenderAnswerSlots(count int)
	RenderAnswerRevealed(index int, text string, points int)
	RenderTeamScore(team, score int)
	RenderStrikes(count int)
	RenderTimer(secondsRemaining int)
	RenderFastMoneyQuestion(text string)
	RenderEntryWindow(player int, open bool)
	RenderFastMoneyScore(slot, player, points int)
	RenderFinalScore(total int, didWin bool)
}

// NopRenderer discards everything. Embed it to implement part of Renderer.
type NopRenderer struct{}

func (NopRenderer) RenderPhase(Phase) {}
func (NopRenderer) RenderPrompt(string) {}
func (NopRenderer) RenderQuestion(string) {}
func (NopRenderer) RenderAnswerSlots(int) {}
func (NopRenderer) RenderAnswerRevealed(int, string, int) {}
func (NopRenderer) RenderTeamScore(int, int) {}
func (NopRenderer) RenderStrikes(int) {}
func (NopRenderer) RenderTimer(int) {}
func (NopRenderer) RenderFastMoneyQuestion(string) {}
func (NopRenderer) RenderEntryWindow(int, bool) {}
func (NopRenderer) RenderFastMoneyScore(int, int, int) {}
func (NopRenderer) RenderFinalScore(int, bool) {}
