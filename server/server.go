package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/harissa-games/jaipur"
	uuid "github.com/satori/go.uuid"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Name string `json:"name"`
}

type PendingGameRes struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Admin    bool   `json:"is_admin"`
}

type JoinGameReq struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
}

type GetGameRes struct {
	Status string `json:"status"`
	GameID string `json:"game_id"`
}

type pendingPlayer struct {
	gameID string
	name   string
}

// GameServer is a game server
type GameServer struct {
	store   jaipur.GameStore
	mu      sync.Mutex
	pending map[string]pendingPlayer
	joined  map[string]int
	http.Server
}

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// NewGameID constructs a six-letter game code
func NewGameID() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	code := make([]byte, 6)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range code {
		code[i] = letters[r.Intn(len(letters))]
	}
	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

func enableCors(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		handler.ServeHTTP(w, r)
	}
}

// NewServer creates a new GameServer
func NewServer(store jaipur.GameStore) *GameServer {
	s := &GameServer{
		store:   store,
		pending: map[string]pendingPlayer{},
		joined:  map[string]int{},
	}

	router := http.NewServeMux()
	router.Handle("/new", enableCors(s.HandleNewGame))
	router.Handle("/join", enableCors(s.HandleJoinGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleFindGame))
	router.Handle("/ws", enableCors(s.HandleWS))

	s.Handler = handlers.LoggingHandler(os.Stdout, router)
	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil || strings.TrimSpace(data.Name) == "" {
		http.Error(w, "could not parse request", http.StatusBadRequest)
		return
	}

	gameID := NewGameID()
	playerID := NewID()

	engine, err := jaipur.NewGameEngine(jaipur.GameEngineOpts{
		GameID:    gameID,
		CreatorID: playerID,
		Game:      jaipur.NewGame(jaipur.GameOpts{}),
	})
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	go engine.Listen()

	if err := g.store.AddPendingGame(engine); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	g.addPendingPlayer(playerID, gameID, data.Name)

	writeJSON(w, PendingGameRes{
		GameID:   gameID,
		PlayerID: playerID,
		Name:     data.Name,
		Admin:    true,
	})
}

// HandleJoinGame handles a request to join an existing game
func (g *GameServer) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data JoinGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil || data.GameID == "" || strings.TrimSpace(data.Name) == "" {
		http.Error(w, "could not parse request", http.StatusBadRequest)
		return
	}

	if _, ok := g.store.FindPendingGame(data.GameID); !ok {
		http.Error(w, unknownGameIDMsg(data.GameID), http.StatusNotFound)
		return
	}

	playerID := NewID()
	g.addPendingPlayer(playerID, data.GameID, data.Name)

	writeJSON(w, PendingGameRes{
		GameID:   data.GameID,
		PlayerID: playerID,
		Name:     data.Name,
	})
}

// HandleFindGame reports whether a game exists and its status
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if _, ok := g.store.FindActiveGame(gameID); ok {
		writeJSON(w, GetGameRes{Status: "active", GameID: gameID})
		return
	}
	if _, ok := g.store.FindPendingGame(gameID); ok {
		writeJSON(w, GetGameRes{Status: "pending", GameID: gameID})
		return
	}

	http.Error(w, unknownGameIDMsg(gameID), http.StatusNotFound)
}

// HandleWS upgrades a pending player to a websocket connection and
// registers them with their game engine
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("player_id")

	g.mu.Lock()
	pp, ok := g.pending[playerID]
	g.mu.Unlock()
	if !ok {
		http.Error(w, "unknown player", http.StatusNotFound)
		return
	}

	engine, found := g.store.FindPendingGame(pp.gameID)
	if !found {
		engine, found = g.store.FindActiveGame(pp.gameID)
	}
	if !found {
		http.Error(w, unknownGameIDMsg(pp.gameID), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err.Error())
		return
	}

	player := newWSPlayer(playerID, pp.name, conn, engine)
	engine.AddPlayer(player)

	g.mu.Lock()
	g.joined[pp.gameID]++
	full := g.joined[pp.gameID] == 2
	g.mu.Unlock()

	if full {
		if err := g.store.ActivateGame(pp.gameID); err != nil {
			log.Println(err.Error())
		}
	}
}

func (g *GameServer) addPendingPlayer(playerID, gameID, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending[playerID] = pendingPlayer{gameID: gameID, name: name}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(bytes)
}
