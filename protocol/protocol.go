package protocol

// Cmd represents a command exchanged between a player and the engine
type Cmd int

const (
	NewJoiner Cmd = iota
	Start
	HasStarted
	Turn
	PlayerAction
	ActionRejected
	RoundResult
	GameOver
)

var cmdNames = []string{
	"NewJoiner",
	"Start",
	"HasStarted",
	"Turn",
	"PlayerAction",
	"ActionRejected",
	"RoundResult",
	"GameOver",
}

func (c Cmd) String() string {
	if c < 0 || int(c) >= len(cmdNames) {
		return ""
	}
	return cmdNames[c]
}
