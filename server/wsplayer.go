package server

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
	"github.com/harissa-games/jaipur"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// wsPlayer connects a remote player to a game engine over a websocket
type wsPlayer struct {
	id     string
	name   string
	conn   *websocket.Conn
	engine *jaipur.GameEngine
	sendCh chan jaipur.OutboundMessage
}

func newWSPlayer(id, name string, conn *websocket.Conn, engine *jaipur.GameEngine) *wsPlayer {
	p := &wsPlayer{
		id:     id,
		name:   name,
		conn:   conn,
		engine: engine,
		sendCh: make(chan jaipur.OutboundMessage, 8),
	}
	go p.writePump()
	go p.readPump()
	return p
}

func (p *wsPlayer) ID() string {
	return p.id
}

func (p *wsPlayer) Name() string {
	return p.name
}

// Send queues a message for delivery to the player
func (p *wsPlayer) Send(msg jaipur.OutboundMessage) error {
	p.sendCh <- msg
	return nil
}

func (p *wsPlayer) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		p.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				p.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := p.conn.WriteJSON(msg); err != nil {
				log.Printf("player %s: write failed: %s", p.id, err.Error())
				return
			}

		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (p *wsPlayer) readPump() {
	defer p.conn.Close()

	p.conn.SetReadLimit(maxMessageSize)
	p.conn.SetReadDeadline(time.Now().Add(pongWait))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg jaipur.InboundMessage
		if err := p.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway) {
				log.Printf("player %s: read failed: %s", p.id, err.Error())
			}
			return
		}
		// never trust the client's idea of who they are
		msg.PlayerID = p.id
		p.engine.Receive(msg)
	}
}
