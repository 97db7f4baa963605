// Package feud runs a Family Feud style quiz board for a single operator.
//
// How to play:
// - The operator loads a set of rounds, each a question with up to six ranked answers
// - Each round, teams guess answers out loud; the operator reveals the ones they hit
// - Wrong guesses earn strikes, up to three per round
// - The operator awards the round's points to a team by typing an amount
// - After the last round, two players play Fast Money against the clock
// - Player 1 fills five slots in 20 seconds, then player 2 gets 25 seconds
// - Every filled slot scores from a fixed table; a combined 200 points wins
//
// Implementation details:
// - The Controller is not goroutine-safe; the caller owns a single event loop
// - Timer ticks come back through a Dispatcher onto that same loop
// - Renderer receives every visible change, so any front end can mirror the board
package feud
