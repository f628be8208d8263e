package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"durak/internal/config"
	"durak/internal/util"
	"durak/pkg/deck"
	"durak/pkg/durak"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a fresh round and print both hands and the trump card",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := generator()

		attackerName := config.Instance().Players.Attacker
		if attackerName == "" {
			attackerName = util.GetRandomName(g)
		}

		defenderName := config.Instance().Players.Defender
		if defenderName == "" {
			defenderName = util.GetRandomName(g)
		}

		round, err := durak.NewRound(logrus.StandardLogger(), attackerName, defenderName, g)
		if err != nil {
			return err
		}

		fmt.Printf("round %s\n", round.ID)
		fmt.Printf("trump: %s\n", colorCard(round.TrumpCard))
		printHand(round.Attacker)
		printHand(round.Defender)
		return nil
	},
}

func printHand(p durak.Player) {
	cards := make([]string, len(p.Hand))
	for i, c := range p.Hand {
		cards[i] = colorCard(c)
	}

	fmt.Printf("%s:", p.Name)
	for _, c := range cards {
		fmt.Printf(" %s", c)
	}
	fmt.Println()
}

func colorCard(c *deck.Card) string {
	if c.Suit == deck.Hearts || c.Suit == deck.Diamonds {
		return color.RedString(c.String())
	}

	return color.WhiteString(c.String())
}
