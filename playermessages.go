package jaipur

import (
	"github.com/harissa-games/jaipur/deck"
	"github.com/harissa-games/jaipur/protocol"
)

// PlayerInfo identifies a player to front ends
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// InboundMessage is a message from a player to the GameEngine
type InboundMessage struct {
	PlayerID string       `json:"playerID"`
	Command  protocol.Cmd `json:"command"`
	Action   Action       `json:"action"`
}

// OutboundMessage is a message from the GameEngine to a player
type OutboundMessage struct {
	PlayerID      string        `json:"playerID"`
	Command       protocol.Cmd  `json:"command"`
	Name          string        `json:"name"`
	Message       string        `json:"message,omitempty"`
	State         string        `json:"state,omitempty"`
	Hand          deck.Multiset `json:"hand"`
	Market        deck.Multiset `json:"market"`
	DeckSize      int           `json:"deckSize"`
	Tokens        []Token       `json:"tokens,omitempty"`
	Seals         int           `json:"seals"`
	Opponent      Opponent      `json:"opponent"`
	CurrentTurn   PlayerInfo    `json:"currentTurn,omitempty"`
	ShouldRespond bool          `json:"shouldRespond"`
	Error         string        `json:"error,omitempty"`
}

// Opponent is what a player may see of the other player: hand contents
// stay hidden, herd size and public scoring info do not.
type Opponent struct {
	Name     string `json:"name"`
	HandSize int    `json:"handSize"`
	Herd     int    `json:"herd"`
	Tokens   int    `json:"tokens"`
	Seals    int    `json:"seals"`
}

func buildOpponent(p *Player) Opponent {
	return Opponent{
		Name:     p.Name,
		HandSize: p.HandSize(),
		Herd:     p.Hand.Count(deck.Camel),
		Tokens:   len(p.Tokens),
		Seals:    p.Seals,
	}
}

// buildSnapshotMessage builds one player's view of the game
func buildSnapshotMessage(cmd protocol.Cmd, playerID string, seat, opponent *Player, turnInfo PlayerInfo, g *Game) OutboundMessage {
	return OutboundMessage{
		PlayerID:      playerID,
		Command:       cmd,
		Name:          seat.Name,
		State:         g.State().String(),
		Hand:          seat.Hand,
		Market:        g.Market,
		DeckSize:      g.DeckSize(),
		Tokens:        seat.Tokens,
		Seals:         seat.Seals,
		Opponent:      buildOpponent(opponent),
		CurrentTurn:   turnInfo,
		ShouldRespond: g.CurrentPlayer == seat && g.State() == PlayerTurn,
	}
}

func buildRejectionMessage(playerID string, seat *Player, err error) OutboundMessage {
	return OutboundMessage{
		PlayerID:      playerID,
		Command:       protocol.ActionRejected,
		Name:          seat.Name,
		Error:         err.Error(),
		ShouldRespond: true,
	}
}
