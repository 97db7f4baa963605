// Feudbox game server
//
// One operator runs a Family Feud style board from the browser. Every other
// screen that opens the same game URL mirrors the board read-only, which is
// how the board gets onto a projector or a TV.
//
// Features:
// - WebSockets per game ID: /feud/:gameid and /feud/:gameid/ws
// - First connection to a game becomes the operator; everyone else views
// - Operator seat is freed when the operator has been gone for --operator-timeout
// - Players identified by cookie (feudbox_id)
// - Round data loaded per game from --questions, retried by the operator on "reload"
// - Game state lives in a single goroutine per game; countdown ticks are posted to it
// - Late joiners receive a full snapshot of the visible board
// - JSON snapshot of a running game at /feud/:gameid/state
// - Games auto-reaped after configurable idle timeout
// - Random 8-char game IDs via crypto/rand, with server-side collision check
// - In-browser QR button to share the current session, backed by go-qrcode

package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Seednode/feudbox/games/feud"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
)

var errGameClosed = errors.New("game has ended")

// Amount accepts either a JSON string or a bare JSON number. The text is
// kept as sent; the board reads the leading whole number from it.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Amount(s)

		return nil
	}

	*a = Amount(b)

	return nil
}

// Messages coming from clients
type ClientMessage struct {
	Type    string   `json:"type"`              // "start", "reload", "reveal", "next_round", "add_points", "strike", "key", "start_fast_money", "submit"
	Index   *int     `json:"index,omitempty"`   // reveal
	Team    int      `json:"team,omitempty"`    // add_points
	Amount  Amount   `json:"amount,omitempty"`  // add_points / key
	Key     string   `json:"key,omitempty"`     // key
	Player  int      `json:"player,omitempty"`  // submit
	Entries []string `json:"entries,omitempty"` // submit
}

// SimpleMessage is for generic notifications ("error").
type SimpleMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// SessionInfoMessage is sent immediately on connect, and again if this
// cookie is promoted to operator.
type SessionInfoMessage struct {
	Type           string `json:"type"` // "session_info"
	GameID         string `json:"game_id"`
	IsOperator     bool   `json:"is_operator"`
	FastMoneySlots int    `json:"fast_money_slots"`
}

type SnapshotMessage struct {
	Type  string        `json:"type"` // "snapshot"
	State feud.Snapshot `json:"state"`
}

type PhaseMessage struct {
	Type  string     `json:"type"` // "phase"
	Phase feud.Phase `json:"phase"`
}

// TextMessage carries "prompt", "question" and "fm_question".
type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CountMessage carries "answer_slots", "strikes" and "timer".
type CountMessage struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type AnswerMessage struct {
	Type   string `json:"type"` // "answer_revealed"
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Points int    `json:"points"`
}

type TeamScoreMessage struct {
	Type  string `json:"type"` // "team_score"
	Team  int    `json:"team"`
	Score int    `json:"score"`
}

type EntryWindowMessage struct {
	Type   string `json:"type"` // "entry_window"
	Player int    `json:"player"`
	Open   bool   `json:"open"`
}

type FastMoneyScoreMessage struct {
	Type   string `json:"type"` // "fm_score"
	Slot   int    `json:"slot"`
	Player int    `json:"player"`
	Points int    `json:"points"`
}

type FinalScoreMessage struct {
	Type  string `json:"type"` // "final_score"
	Total int    `json:"total"`
	Won   bool   `json:"won"`
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
}

type command struct {
	client *Client
	msg    ClientMessage
}

// hubRenderer broadcasts every board change. It is only called from the
// hub's run loop, with h.mu held.
type hubRenderer struct {
	h *Hub
}

func (r hubRenderer) RenderPhase(p feud.Phase) {
	r.h.broadcastLocked(PhaseMessage{Type: "phase", Phase: p})
}

func (r hubRenderer) RenderPrompt(text string) {
	r.h.broadcastLocked(TextMessage{Type: "prompt", Text: text})
}

func (r hubRenderer) RenderQuestion(text string) {
	r.h.broadcastLocked(TextMessage{Type: "question", Text: text})
}

func (r hubRenderer) RenderAnswerSlots(count int) {
	r.h.broadcastLocked(CountMessage{Type: "answer_slots", Count: count})
}

func (r hubRenderer) RenderAnswerRevealed(index int, text string, points int) {
	r.h.broadcastLocked(AnswerMessage{Type: "answer_revealed", Index: index, Text: text, Points: points})
}

func (r hubRenderer) RenderTeamScore(team, score int) {
	r.h.broadcastLocked(TeamScoreMessage{Type: "team_score", Team: team, Score: score})
}

func (r hubRenderer) RenderStrikes(count int) {
	r.h.broadcastLocked(CountMessage{Type: "strikes", Count: count})
}

func (r hubRenderer) RenderTimer(secondsRemaining int) {
	r.h.broadcastLocked(CountMessage{Type: "timer", Count: secondsRemaining})
}

func (r hubRenderer) RenderFastMoneyQuestion(text string) {
	r.h.broadcastLocked(TextMessage{Type: "fm_question", Text: text})
}

func (r hubRenderer) RenderEntryWindow(player int, open bool) {
	r.h.broadcastLocked(EntryWindowMessage{Type: "entry_window", Player: player, Open: open})
}

func (r hubRenderer) RenderFastMoneyScore(slot, player, points int) {
	r.h.broadcastLocked(FastMoneyScoreMessage{Type: "fm_score", Slot: slot, Player: player, Points: points})
}

func (r hubRenderer) RenderFinalScore(total int, didWin bool) {
	r.h.broadcastLocked(FinalScoreMessage{Type: "final_score", Total: total, Won: didWin})
}

type Hub struct {
	id    string
	cfg   *Config
	clock clockwork.Clock

	clients map[*Client]bool

	register chan *Client
	unreg    chan *Client
	commands chan command
	events   chan func()
	done     chan struct{}
	stopOnce sync.Once

	ctx    context.Context
	cancel context.CancelFunc

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time
	operatorID string // cookie/playerID of the operator

	game    *feud.Controller
	loading bool
}

func newHub(cfg *Config, gameID string, clock clockwork.Clock) *Hub {
	now := clock.Now()
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		id:         gameID,
		cfg:        cfg,
		clock:      clock,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		commands:   make(chan command),
		events:     make(chan func()),
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
		createdAt:  now,
		lastActive: now,
	}

	policy := cfg.policy()
	h.game = feud.NewController(hubRenderer{h: h}, feud.Options{
		Policy:   &policy,
		Clock:    clock,
		Dispatch: h.dispatch,
	})

	return h
}

// dispatch hands f to the run loop. It drops f once the hub has stopped.
func (h *Hub) dispatch(f func()) {
	select {
	case h.events <- f:
	case <-h.done:
	}
}

func (h *Hub) run() {
	h.mu.Lock()
	h.loadLocked()
	h.mu.Unlock()

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.lastActive = h.clock.Now()

			// First connection becomes operator
			if h.operatorID == "" {
				h.operatorID = c.playerID
				logf(h.cfg, "GAMES: %s is now operated by %s", h.id, c.playerID)
			}

			h.clients[c] = true

			h.sendLocked(c, h.sessionInfoLocked(c.playerID))
			h.sendLocked(c, SnapshotMessage{Type: "snapshot", State: h.game.Snapshot()})

			h.mu.Unlock()

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = h.clock.Now()

			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			isOperator := c.playerID == h.operatorID
			h.mu.Unlock()

			if isOperator {
				go h.scheduleRelease(c.playerID, h.cfg.operatorTimeout)
			}

		case cmd := <-h.commands:
			h.handleCommand(cmd)

		case f := <-h.events:
			h.mu.Lock()
			f()
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			h.game.Close()
			h.closeAllLocked()
			h.mu.Unlock()

			return
		}
	}
}

// stop ends the game. It is safe to call more than once.
func (h *Hub) stop() {
	h.stopOnce.Do(func() {
		h.cancel()
		close(h.done)
	})
}

// loadLocked fetches round data in the background and hands the result to
// the run loop.
func (h *Hub) loadLocked() {
	if h.loading || h.game.LoadStatus() == feud.LoadReady {
		return
	}

	h.loading = true

	go func() {
		rounds, err := feud.LoadRounds(h.ctx, h.cfg.questions)

		h.dispatch(func() {
			h.loading = false

			if err != nil {
				logf(h.cfg, "GAMES: Unable to load rounds for %s: %v", h.id, err)
				h.game.FailLoad(err)
				if !errors.Is(err, feud.ErrNotLoaded) {
					h.sendOperatorLocked(SimpleMessage{Type: "error", Message: err.Error()})
				}

				return
			}

			logf(h.cfg, "GAMES: Loaded %d rounds for %s", len(rounds), h.id)
			h.reportLocked(h.operatorLocked(), h.game.SetRounds(rounds))
		})
	}()
}

// handleCommand applies operator commands. Anything sent by a viewer is ignored.
func (h *Hub) handleCommand(cmd command) {
	c := cmd.client
	msg := cmd.msg

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = h.clock.Now()

	if h.operatorID == "" || c.playerID != h.operatorID {
		return
	}

	var err error

	switch msg.Type {
	case "start":
		err = h.game.Start()
		if errors.Is(err, feud.ErrNotLoaded) {
			h.loadLocked()
		}
	case "reload":
		h.loadLocked()
	case "reveal":
		if msg.Index == nil {
			err = feud.ErrInvalidInput

			break
		}
		err = h.game.RevealAnswer(*msg.Index)
	case "next_round":
		err = h.game.AdvanceRound()
	case "add_points":
		err = h.game.AddPoints(msg.Team, string(msg.Amount))
	case "strike":
		err = h.game.AddStrike()
	case "key":
		err = h.game.HandleKey(msg.Key, string(msg.Amount))
	case "start_fast_money":
		err = h.game.StartFastMoney()
	case "submit":
		err = h.game.Submit(msg.Player, msg.Entries)
	default:
		return
	}

	h.reportLocked(c, err)
}

// reportLocked tells c about a rejected command. Bad input, a repeat reveal
// and a start deferred until data arrives change nothing on the board, so
// they are only logged.
func (h *Hub) reportLocked(c *Client, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, feud.ErrInvalidInput),
		errors.Is(err, feud.ErrInvalidTeam),
		errors.Is(err, feud.ErrAlreadyRevealed),
		errors.Is(err, feud.ErrNotLoaded):
		log.Debug().Err(err).Str("game", h.id).Msg("GAMES: ignored command")

		return
	}

	logf(h.cfg, "GAMES: Rejected command in %s: %v", h.id, err)

	if c != nil {
		h.sendLocked(c, SimpleMessage{Type: "error", Message: err.Error()})
	}
}

func (h *Hub) operatorLocked() *Client {
	for c := range h.clients {
		if c.playerID == h.operatorID {
			return c
		}
	}

	return nil
}

func (h *Hub) sendOperatorLocked(msg any) {
	for c := range h.clients {
		if h.operatorID != "" && c.playerID == h.operatorID {
			h.sendLocked(c, msg)
		}
	}
}

func (h *Hub) sendLocked(c *Client, msg any) {
	if _, ok := h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) broadcastLocked(msg any) {
	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// scheduleRelease waits for d, and if no client with this playerID is
// connected by then, hands the operator seat to another connected screen.
func (h *Hub) scheduleRelease(playerID string, d time.Duration) {
	select {
	case <-h.clock.After(d):
	case <-h.done:
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.operatorID != playerID {
		return
	}

	for client := range h.clients {
		if client.playerID == playerID {
			return
		}
	}

	h.operatorID = ""
	logf(h.cfg, "GAMES: Operator left %s", h.id)

	for client := range h.clients {
		h.operatorID = client.playerID

		break
	}

	if h.operatorID == "" {
		return
	}

	logf(h.cfg, "GAMES: %s is now operated by %s", h.id, h.operatorID)

	h.sendOperatorLocked(h.sessionInfoLocked(h.operatorID))
}

func (h *Hub) sessionInfoLocked(playerID string) SessionInfoMessage {
	return SessionInfoMessage{
		Type:           "session_info",
		GameID:         h.id,
		IsOperator:     playerID != "" && playerID == h.operatorID,
		FastMoneySlots: h.cfg.fmSlots,
	}
}

// snapshot asks the run loop for the current board.
func (h *Hub) snapshot(ctx context.Context) (feud.Snapshot, error) {
	result := make(chan feud.Snapshot, 1)

	select {
	case h.events <- func() { result <- h.game.Snapshot() }:
	case <-h.done:
		return feud.Snapshot{}, errGameClosed
	case <-ctx.Done():
		return feud.Snapshot{}, ctx.Err()
	}

	select {
	case s := <-result:
		return s, nil
	case <-h.done:
		return feud.Snapshot{}, errGameClosed
	case <-ctx.Done():
		return feud.Snapshot{}, ctx.Err()
	}
}

// closeAllLocked disconnects all clients of this hub.
func (h *Hub) closeAllLocked() {
	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	playerCookieName = "feudbox_id"
	maxMessageSize   = 4096
)

func getOrSetPlayerID(cfg *Config, w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     cfg.prefix + "/",
		HttpOnly: true,
		Secure:   cfg.scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated session.
type GameManager struct {
	mu          sync.Mutex
	cfg         *Config
	clock       clockwork.Clock
	hubs        map[string]*Hub
	idleTimeout time.Duration
	quit        chan struct{}
	quitOnce    sync.Once
}

func newGameManager(cfg *Config, clock clockwork.Clock) *GameManager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	gm := &GameManager{
		cfg:         cfg,
		clock:       clock,
		hubs:        make(map[string]*Hub),
		idleTimeout: cfg.sessionTimeout,
		quit:        make(chan struct{}),
	}
	if gm.idleTimeout > 0 {
		go gm.reaperLoop()
	}
	return gm
}

func (gm *GameManager) getHub(gameID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub
	}

	hub := newHub(gm.cfg, gameID, gm.clock)
	gm.hubs[gameID] = hub
	go hub.run()

	logf(gm.cfg, "GAMES: Opened game %s", gameID)

	return hub
}

func (gm *GameManager) lookup(gameID string) (*Hub, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	hub, ok := gm.hubs[gameID]

	return hub, ok
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reaperLoop periodically removes hubs that have been idle longer than idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := gm.clock.NewTicker(gm.idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-gm.quit:
			return
		case <-ticker.Chan():
		}

		gm.reap(gm.clock.Now().Add(-gm.idleTimeout))
	}
}

func (gm *GameManager) reap(cutoff time.Time) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, hub := range gm.hubs {
		hub.mu.RLock()
		last := hub.lastActive
		hub.mu.RUnlock()

		if last.Before(cutoff) {
			delete(gm.hubs, id)
			hub.stop()

			logf(gm.cfg, "GAMES: Reaped idle game %s", id)
		}
	}
}

// stop ends every game and the reaper.
func (gm *GameManager) stop() {
	gm.quitOnce.Do(func() {
		close(gm.quit)
	})

	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, hub := range gm.hubs {
		delete(gm.hubs, id)
		hub.stop()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(cfg, w, r)

		hub := gm.getHub(gameID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Debug().Err(err).Str("game", gameID).Msg("GAMES: websocket upgrade failed")
			return
		}

		client := &Client{
			conn:     conn,
			send:     make(chan any, 64),
			playerID: playerID,
		}

		select {
		case hub.register <- client:
		case <-hub.done:
			_ = conn.Close()
			return
		}

		logf(cfg, "GAMES: %s connected to %s from %s", playerID, gameID, realIP(r))

		go client.writePump()
		client.readPump(hub)
	}
}

// readPump forwards commands to the hub. Frames that are not valid JSON are
// dropped without closing the connection.
func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debug().Err(err).Str("game", h.id).Msg("GAMES: dropped malformed message")
			continue
		}

		select {
		case h.commands <- command{client: c, msg: msg}:
		case <-h.done:
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		// We are at /.../:gameid/qr; strip trailing "/qr" to get the game URL.
		path := strings.TrimSuffix(r.URL.Path, "/qr")

		url := scheme + "://" + r.Host + path

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		securityHeaders(cfg, w)

		if _, err := w.Write(png); err != nil {
			errs <- err
		}
	}
}

// serveState returns the visible board of a running game as JSON.
func serveState(cfg *Config, gm *GameManager, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		startTime := time.Now()

		hub, ok := gm.lookup(ps.ByName("gameid"))
		if !ok {
			http.Error(w, "no such game", http.StatusNotFound)
			return
		}

		state, err := hub.snapshot(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusGone)
			return
		}

		data, err := json.Marshal(state)
		if err != nil {
			http.Error(w, "unable to encode game state", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		securityHeaders(cfg, w)

		written, err := w.Write(data)
		if err != nil {
			errs <- err

			return
		}

		logServed(cfg, "Game state for "+hub.id, written, realIP(r), startTime)
	}
}

func serveGamePage(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		data, err := assets.ReadFile("assets/feud/index.html")
		if err != nil {
			http.Error(w, "missing game page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(cfg, w, r)

		if _, err := w.Write(data); err != nil {
			errs <- err
		}
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s/%s", path, gameID)
		http.Redirect(w, r, cfg.prefix+path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerFeudGame sets up routes so that:
//   - $path                  → redirects to new random game (8-char ID)
//   - $path/:gameid          → HTML client
//   - $path/:gameid/ws       → WebSocket for that game
//   - $path/:gameid/qr       → PNG QR code for that game URL
//   - $path/:gameid/state    → JSON snapshot of that game
func registerFeudGame(cfg *Config, path string, mux *httprouter.Router, errs chan<- error) *GameManager {
	gm := newGameManager(cfg, clockwork.NewRealClock())

	mux.GET(cfg.prefix+path, redirectNewGame(cfg, path, gm))

	mux.GET(cfg.prefix+path+"/:gameid", serveGamePage(cfg, errs))

	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))

	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler(cfg, errs))

	mux.GET(cfg.prefix+path+"/:gameid/state", serveState(cfg, gm, errs))

	return gm
}
