package game

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/engine/pkg/uid"
)

const (
	ReasonConnectFour = "connect_four"
	ReasonDraw        = "draw"
	ReasonAbandoned   = "abandoned"

	finishedSessionTTL = 1 * time.Hour
)

// GameSession is one human-versus-engine game. It owns the live board;
// the engine only ever receives copies of it.
type GameSession struct {
	GameID     string
	ClientID   string
	BotName    string
	Difficulty bot.BotDifficulty
	Depth      int
	Game       *domain.Game
	Reason     string
	CreatedAt  time.Time
	FinishedAt time.Time
	mu         sync.Mutex
	engine     Engine
	botDelay   time.Duration
}

type ConnectionManagerInterface interface {
	SendMessage(clientID string, message domain.ServerMessage) error
}

// Engine picks the bot's move. bot.CachedEngine satisfies it.
type Engine interface {
	BestMove(ctx context.Context, board domain.Board, depth int) (bot.Move, error)
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session      map[string]*GameSession // gameID → GameSession
	ClientToGame map[string]string       // clientID → gameID (for quick lookup)
	mu           sync.RWMutex
	engine       Engine
	depths       bot.Depths
	botDelay     time.Duration
	sessionTTL   time.Duration
}

func NewSessionManager(engine Engine, depths bot.Depths, botDelay, sessionTTL time.Duration) *SessionManager {
	return &SessionManager{
		Session:      make(map[string]*GameSession),
		ClientToGame: make(map[string]string),
		engine:       engine,
		depths:       depths,
		botDelay:     botDelay,
		sessionTTL:   sessionTTL,
	}
}

// CreateSession starts a new game for clientID, replacing any game the
// client already had. When engineFirst is set the engine opens.
func (sm *SessionManager) CreateSession(clientID, difficulty string, engineFirst bool, conn ConnectionManagerInterface) *GameSession {
	sm.TerminateSessionForClient(clientID, conn)

	level := bot.ParseDifficulty(difficulty)
	first := domain.PlayerPiece
	if engineFirst {
		first = domain.EnginePiece
	}

	gs := &GameSession{
		GameID:     uid.GenerateGameID(),
		ClientID:   clientID,
		BotName:    domain.GetBotName(string(level)),
		Difficulty: level,
		Depth:      sm.depths.For(level),
		Game:       domain.NewGame(first),
		CreatedAt:  time.Now(),
		engine:     sm.engine,
		botDelay:   sm.botDelay,
	}

	sm.mu.Lock()
	sm.Session[gs.GameID] = gs
	sm.ClientToGame[clientID] = gs.GameID
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s for client %s vs %s (%s, depth %d)",
		gs.GameID, clientID, gs.BotName, level, gs.Depth)

	conn.SendMessage(clientID, domain.ServerMessage{
		Type:        "game_start",
		GameID:      gs.GameID,
		Opponent:    gs.BotName,
		YourPlayer:  int(domain.PlayerPiece),
		CurrentTurn: int(gs.Game.CurrentPlayer),
		Board:       gs.Game.Board.Grid(),
	})

	if engineFirst {
		gs.scheduleBotMove(conn)
	}

	return gs
}

func (sm *SessionManager) GetSessionByClientID(clientID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	gameID, exists := sm.ClientToGame[clientID]
	if !exists {
		return nil, false
	}

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

// ActiveCount returns the number of sessions held in memory.
func (sm *SessionManager) ActiveCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.Session)
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.removeSessionLocked(gameID)
}

// removeSessionLocked removes session from maps without acquiring lock (caller must hold it)
func (sm *SessionManager) removeSessionLocked(gameID string) error {
	session, exists := sm.Session[gameID]
	if !exists {
		return fmt.Errorf("session not found")
	}

	log.Printf("[SESSION] Removing session %s", gameID)

	if sm.ClientToGame[session.ClientID] == gameID {
		delete(sm.ClientToGame, session.ClientID)
	}
	delete(sm.Session, gameID)

	return nil
}

// TerminateSessionForClient abandons the client's running game, if any,
// and forgets it.
func (sm *SessionManager) TerminateSessionForClient(clientID string, conn ConnectionManagerInterface) {
	session, exists := sm.GetSessionByClientID(clientID)
	if !exists {
		return
	}
	session.Abandon(conn)
	sm.RemoveSession(session.GameID)
}

// CleanupOldSessions drops finished games older than an hour and
// unfinished games older than the session TTL.
func (sm *SessionManager) CleanupOldSessions(now time.Time) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	for gameID, session := range sm.Session {
		session.mu.Lock()
		finished := session.Game.IsFinished()
		stale := (finished && now.Sub(session.FinishedAt) > finishedSessionTTL) ||
			(!finished && now.Sub(session.CreatedAt) > sm.sessionTTL)
		session.mu.Unlock()

		if stale {
			sm.removeSessionLocked(gameID)
			count++
		}
	}

	if count > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale game sessions", count)
	}
	return count
}

// HandleMove plays the human's column and, if the game goes on, lets
// the engine reply.
func (gs *GameSession) HandleMove(column int, conn ConnectionManagerInterface) error {
	gs.mu.Lock()
	botTurn, err := gs.applyMoveLocked(domain.PlayerPiece, column, nil, conn)
	gs.mu.Unlock()
	if err != nil {
		return err
	}

	if botTurn {
		gs.scheduleBotMove(conn)
	}
	return nil
}

// HandleBotMove asks the engine for its move and plays it.
func (gs *GameSession) HandleBotMove(conn ConnectionManagerInterface) error {
	// Acquire lock since this is entry point from goroutine
	gs.mu.Lock()
	defer gs.mu.Unlock()

	// Verify it's actually bot's turn (race condition check)
	if gs.Game.IsFinished() || gs.Game.CurrentPlayer != domain.EnginePiece {
		return nil
	}

	move, err := gs.engine.BestMove(context.Background(), gs.Game.Board, gs.Depth)
	if err != nil {
		return fmt.Errorf("engine move for %s: %w", gs.GameID, err)
	}

	value := move.Value
	_, err = gs.applyMoveLocked(domain.EnginePiece, move.Column, &value, conn)
	return err
}

// Abandon ends a running game without a winner.
func (gs *GameSession) Abandon(conn ConnectionManagerInterface) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsFinished() || gs.Reason != "" {
		return
	}
	gs.Reason = ReasonAbandoned
	gs.FinishedAt = time.Now()
	log.Printf("[SESSION] Game %s abandoned by client %s", gs.GameID, gs.ClientID)

	conn.SendMessage(gs.ClientID, domain.ServerMessage{
		Type:   "game_over",
		GameID: gs.GameID,
		Reason: gs.Reason,
		Board:  gs.Game.Board.Grid(),
	})
}

// IsOver reports whether the game has been won, drawn or abandoned.
func (gs *GameSession) IsOver() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.IsFinished() || gs.Reason == ReasonAbandoned
}

// applyMoveLocked plays piece in column and notifies the client. It
// reports whether the engine should move next. Caller holds gs.mu.
func (gs *GameSession) applyMoveLocked(piece domain.Piece, column int, value *int, conn ConnectionManagerInterface) (bool, error) {
	if gs.Reason == ReasonAbandoned {
		return false, domain.ErrGameOver
	}

	row, err := gs.Game.MakeMove(piece, column)
	if err != nil {
		return false, err
	}

	conn.SendMessage(gs.ClientID, domain.ServerMessage{
		Type:     "move_made",
		GameID:   gs.GameID,
		Column:   column,
		Row:      row,
		Player:   int(piece),
		Board:    gs.Game.Board.Grid(),
		NextTurn: int(gs.Game.CurrentPlayer),
		Value:    value,
	})

	switch gs.Game.Status {
	case domain.StatusWon:
		gs.finishLocked(ReasonConnectFour, conn)
		return false, nil
	case domain.StatusDraw:
		gs.finishLocked(ReasonDraw, conn)
		return false, nil
	}

	return gs.Game.CurrentPlayer == domain.EnginePiece, nil
}

func (gs *GameSession) finishLocked(reason string, conn ConnectionManagerInterface) {
	gs.FinishedAt = time.Now()
	gs.Reason = reason

	winner := "draw"
	switch gs.Game.Winner {
	case domain.PlayerPiece:
		winner = "you"
	case domain.EnginePiece:
		winner = gs.BotName
	}

	log.Printf("[SESSION] Game %s over after %d moves: %s (%s)",
		gs.GameID, gs.Game.MoveCount, winner, reason)

	conn.SendMessage(gs.ClientID, domain.ServerMessage{
		Type:   "game_over",
		GameID: gs.GameID,
		Winner: winner,
		Reason: reason,
		Board:  gs.Game.Board.Grid(),
	})
}

func (gs *GameSession) scheduleBotMove(conn ConnectionManagerInterface) {
	run := func() {
		if err := gs.HandleBotMove(conn); err != nil {
			log.Printf("[BOT] Error handling bot move: %v", err)
			conn.SendMessage(gs.ClientID, domain.ServerMessage{Type: "error", Message: "engine failed to move"})
		}
	}

	if gs.botDelay <= 0 {
		run()
		return
	}

	go func() {
		// Small delay to feel natural
		time.Sleep(gs.botDelay)
		run()
	}()
}
