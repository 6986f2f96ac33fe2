package jaipur

import (
	"errors"
	"fmt"
	"log"

	"github.com/harissa-games/jaipur/protocol"
)

var (
	ErrNilGame        = errors.New("game is nil")
	ErrTooFewPlayers  = errors.New("minimum of 2 players required")
	ErrTooManyPlayers = errors.New("maximum of 2 players allowed")
	ErrNotYourTurn    = errors.New("it is not your turn")
)

// PlayerConn is a connection to a player in the real world
type PlayerConn interface {
	ID() string
	Name() string
	Send(msg OutboundMessage) error
}

// GameEngine runs a single match. All inputs are funnelled through one
// Listen goroutine, so the Game itself never sees concurrent mutation.
type GameEngine struct {
	id         string
	creatorID  string
	game       *Game
	conns      []PlayerConn
	registerCh chan PlayerConn
	inboundCh  chan InboundMessage
}

// GameEngineOpts represents options for constructing a new GameEngine
type GameEngineOpts struct {
	GameID     string
	CreatorID  string
	Game       *Game
	RegisterCh chan PlayerConn
	InboundCh  chan InboundMessage
}

// NewGameEngine constructs a new GameEngine
func NewGameEngine(opts GameEngineOpts) (*GameEngine, error) {
	if opts.Game == nil {
		return nil, ErrNilGame
	}
	if opts.RegisterCh == nil {
		opts.RegisterCh = make(chan PlayerConn)
	}
	if opts.InboundCh == nil {
		opts.InboundCh = make(chan InboundMessage)
	}

	engine := &GameEngine{
		id:         opts.GameID,
		creatorID:  opts.CreatorID,
		game:       opts.Game,
		registerCh: opts.RegisterCh,
		inboundCh:  opts.InboundCh,
	}
	return engine, nil
}

func (ge *GameEngine) ID() string {
	return ge.id
}

func (ge *GameEngine) CreatorID() string {
	return ge.creatorID
}

// Game returns the underlying game state
func (ge *GameEngine) Game() *Game {
	return ge.game
}

// AddPlayer registers a player connection with the engine
func (ge *GameEngine) AddPlayer(c PlayerConn) {
	ge.registerCh <- c
}

// Receive forwards a player message to the engine
func (ge *GameEngine) Receive(msg InboundMessage) {
	ge.inboundCh <- msg
}

// Listen processes registrations and player messages one at a time.
// Run it in its own goroutine.
func (ge *GameEngine) Listen() {
	for {
		select {
		case joiner := <-ge.registerCh:
			ge.register(joiner)

		case msg := <-ge.inboundCh:
			ge.handleMessage(msg)
		}
	}
}

func (ge *GameEngine) register(joiner PlayerConn) {
	if len(ge.conns) >= 2 {
		joiner.Send(OutboundMessage{
			PlayerID: joiner.ID(),
			Command:  protocol.NewJoiner,
			Error:    ErrTooManyPlayers.Error(),
		})
		return
	}

	ge.conns = append(ge.conns, joiner)
	if len(ge.conns) == 1 {
		ge.game.Player1.Name = joiner.Name()
	} else {
		ge.game.Player2.Name = joiner.Name()
	}

	for _, c := range ge.conns {
		c.Send(OutboundMessage{
			PlayerID: c.ID(),
			Command:  protocol.NewJoiner,
			Name:     c.Name(),
			Message:  fmt.Sprintf("%s has joined the game!", joiner.Name()),
		})
	}
}

func (ge *GameEngine) handleMessage(msg InboundMessage) {
	switch msg.Command {
	case protocol.Start:
		ge.handleStart(msg)

	case protocol.PlayerAction:
		ge.handleAction(msg)

	default:
		log.Printf("game %s: ignoring unexpected command %s", ge.id, msg.Command)
	}
}

func (ge *GameEngine) handleStart(msg InboundMessage) {
	if msg.PlayerID != ge.creatorID {
		ge.reject(msg.PlayerID, errors.New("only the game creator can start the game"))
		return
	}
	if len(ge.conns) < 2 {
		ge.reject(msg.PlayerID, ErrTooFewPlayers)
		return
	}

	if err := ge.game.StartRound(); err != nil {
		ge.reject(msg.PlayerID, err)
		return
	}
	ge.broadcast(protocol.Turn)
}

func (ge *GameEngine) handleAction(msg InboundMessage) {
	seat := ge.seatFor(msg.PlayerID)
	if seat == nil {
		log.Printf("game %s: message from unknown player %s", ge.id, msg.PlayerID)
		return
	}
	if seat != ge.game.CurrentPlayer {
		ge.reject(msg.PlayerID, ErrNotYourTurn)
		return
	}

	if err := ge.game.PlayerAction(msg.Action); err != nil {
		ge.reject(msg.PlayerID, err)
		return
	}

	switch {
	case ge.game.State().Terminal():
		ge.broadcastResult(protocol.GameOver,
			fmt.Sprintf("%s wins the match!", ge.game.Winner().Name))

	case ge.game.State() == BetweenRounds:
		ge.broadcastResult(protocol.RoundResult, "the round is over")

	default:
		ge.broadcast(protocol.Turn)
	}
}

func (ge *GameEngine) reject(playerID string, err error) {
	seat := ge.seatFor(playerID)
	if seat == nil {
		return
	}
	for _, c := range ge.conns {
		if c.ID() == playerID {
			c.Send(buildRejectionMessage(playerID, seat, err))
			return
		}
	}
}

func (ge *GameEngine) broadcast(cmd protocol.Cmd) {
	turnInfo := ge.currentTurnInfo()
	for i, c := range ge.conns {
		seat, opponent := ge.seats(i)
		c.Send(buildSnapshotMessage(cmd, c.ID(), seat, opponent, turnInfo, ge.game))
	}
}

func (ge *GameEngine) broadcastResult(cmd protocol.Cmd, message string) {
	turnInfo := ge.currentTurnInfo()
	for i, c := range ge.conns {
		seat, opponent := ge.seats(i)
		out := buildSnapshotMessage(cmd, c.ID(), seat, opponent, turnInfo, ge.game)
		out.Message = message
		c.Send(out)
	}
}

func (ge *GameEngine) seats(connIdx int) (seat, opponent *Player) {
	if connIdx == 0 {
		return ge.game.Player1, ge.game.Player2
	}
	return ge.game.Player2, ge.game.Player1
}

func (ge *GameEngine) seatFor(playerID string) *Player {
	for i, c := range ge.conns {
		if c.ID() == playerID {
			seat, _ := ge.seats(i)
			return seat
		}
	}
	return nil
}

func (ge *GameEngine) currentTurnInfo() PlayerInfo {
	for i, c := range ge.conns {
		seat, _ := ge.seats(i)
		if seat == ge.game.CurrentPlayer {
			return PlayerInfo{PlayerID: c.ID(), Name: seat.Name}
		}
	}
	return PlayerInfo{}
}
