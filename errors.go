package jaipur

import "errors"

// RuleError is a recoverable rule violation: the request was well
// formed but breaks a game rule. The game state is untouched and the
// turn is not consumed.
type RuleError string

func (e RuleError) Error() string {
	return string(e)
}

var (
	ErrNoCamelsToTake      = RuleError("there are no camels to take")
	ErrHandLimitReached    = RuleError("taking a card would exceed the hand limit of 7")
	ErrGoodNotInMarket     = RuleError("the requested good is not in the market")
	ErrExchangeTooSmall    = RuleError("an exchange must involve at least two cards")
	ErrExchangeTakeCamels  = RuleError("camels cannot be taken in an exchange")
	ErrExchangeSameGood    = RuleError("the same good cannot be both taken and surrendered")
	ErrExchangeNotInMarket = RuleError("some of the requested cards are not in the market")
	ErrExchangeNotInHand   = RuleError("some of the surrendered cards are not in your hand or herd")
	ErrSellCamels          = RuleError("camels cannot be sold")
	ErrSellZero            = RuleError("cannot sell zero cards")
	ErrSellTooMany         = RuleError("cannot sell more cards than you hold")
	ErrSellSinglePrecious  = RuleError("precious goods cannot be sold one at a time")
)

// Malformed requests and lifecycle errors. These indicate caller
// mistakes rather than rule violations; they never mutate the game.
var (
	ErrUnknownAction        = errors.New("unrecognised action")
	ErrExchangeSizeMismatch = errors.New("take and give must contain the same number of cards")
	ErrWrongState           = errors.New("input not valid in the current game state")
	ErrMatchOver            = errors.New("the match is already over")
)

// IsRuleViolation reports whether err is a recoverable rule violation
// as opposed to a malformed request or lifecycle error.
func IsRuleViolation(err error) bool {
	var re RuleError
	return errors.As(err, &re)
}
