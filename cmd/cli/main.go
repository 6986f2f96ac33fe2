package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/harissa-games/jaipur"
	"github.com/harissa-games/jaipur/deck"
)

// A local hot-seat game of Jaipur: both players share the terminal.
//
// Commands:
//   camels              take all camels from the market
//   take <good>         take one good from the market
//   swap <goods> for <goods>
//                       exchange market cards for hand/herd cards,
//                       e.g. swap gold,cloth for camel,leather
//   sell <good> <n>     sell n cards of a good
func main() {
	reader := bufio.NewReader(os.Stdin)

	game := jaipur.NewGame(jaipur.GameOpts{
		Player1Name: prompt(reader, "Player 1, what's your name? "),
		Player2Name: prompt(reader, "Player 2, what's your name? "),
	})

	for {
		if err := game.StartRound(); err != nil {
			log.Fatal(err.Error())
		}
		fmt.Println("\nA new round begins!")

		for game.State() == jaipur.PlayerTurn {
			printTurn(game)

			action, err := parseAction(prompt(reader, "> "))
			if err != nil {
				fmt.Println(err.Error())
				continue
			}

			if err := game.PlayerAction(action); err != nil {
				fmt.Println(err.Error())
			}
		}

		printScores(game)

		if game.State().Terminal() {
			fmt.Printf("%s wins the match!\n", game.Winner().Name)
			return
		}
		prompt(reader, "Press enter to start the next round...")
	}
}

func prompt(reader *bufio.Reader, msg string) string {
	fmt.Print(msg)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func printTurn(game *jaipur.Game) {
	player := game.CurrentPlayer
	fmt.Printf("\nMarket: %s (deck: %d)\n", game.Market, game.DeckSize())
	fmt.Printf("%s's hand: %s\n", player.Name, player.Hand)
	fmt.Printf("%s's points so far: %d\n", player.Name, player.Points())
}

func printScores(game *jaipur.Game) {
	fmt.Println("\nThe round is over!")
	for _, p := range []*jaipur.Player{game.Player1, game.Player2} {
		fmt.Printf("%s: %d points, %d seal(s)\n", p.Name, p.Points(), p.Seals)
	}
}

func parseAction(line string) (jaipur.Action, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return jaipur.Action{}, fmt.Errorf("enter a command")
	}

	switch fields[0] {
	case "camels":
		return jaipur.Action{Type: jaipur.TakeCamels}, nil

	case "take":
		if len(fields) != 2 {
			return jaipur.Action{}, fmt.Errorf("usage: take <good>")
		}
		good, err := parseGood(fields[1])
		if err != nil {
			return jaipur.Action{}, err
		}
		return jaipur.Action{Type: jaipur.TakeSingle, Good: good}, nil

	case "swap":
		if len(fields) != 4 || fields[2] != "for" {
			return jaipur.Action{}, fmt.Errorf("usage: swap <goods> for <goods>")
		}
		take, err := parseGoods(fields[1])
		if err != nil {
			return jaipur.Action{}, err
		}
		give, err := parseGoods(fields[3])
		if err != nil {
			return jaipur.Action{}, err
		}
		return jaipur.Action{Type: jaipur.Exchange, Take: take, Give: give}, nil

	case "sell":
		if len(fields) != 3 {
			return jaipur.Action{}, fmt.Errorf("usage: sell <good> <quantity>")
		}
		good, err := parseGood(fields[1])
		if err != nil {
			return jaipur.Action{}, err
		}
		quantity, err := strconv.Atoi(fields[2])
		if err != nil {
			return jaipur.Action{}, fmt.Errorf("'%s' is not a number", fields[2])
		}
		return jaipur.Action{Type: jaipur.Sell, Good: good, Quantity: quantity}, nil
	}

	return jaipur.Action{}, fmt.Errorf("unknown command '%s'", fields[0])
}

func parseGood(name string) (deck.Good, error) {
	for good := deck.Good(0); good < deck.NumGoods; good++ {
		if strings.ToLower(good.String()) == name {
			return good, nil
		}
	}
	return 0, fmt.Errorf("unknown good '%s'", name)
}

func parseGoods(csv string) (deck.Multiset, error) {
	var m deck.Multiset
	for _, name := range strings.Split(csv, ",") {
		good, err := parseGood(name)
		if err != nil {
			return m, err
		}
		m.Add(good, 1)
	}
	return m, nil
}
