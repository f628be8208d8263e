package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"durak/pkg/deck"
	"durak/pkg/durak"
)

// script is the YAML layout for a replayable round
type script struct {
	Attacker struct {
		Name string `yaml:"name"`
		Hand string `yaml:"hand"`
	} `yaml:"attacker"`
	Defender struct {
		Name string `yaml:"name"`
		Hand string `yaml:"hand"`
	} `yaml:"defender"`
	Trump string `yaml:"trump"`
	Moves []struct {
		Attack  string `yaml:"attack,omitempty"`
		Defend  string `yaml:"defend,omitempty"`
		Against string `yaml:"against,omitempty"`
	} `yaml:"moves"`
}

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a scripted attack/defend exchange",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		var s script
		if err := yaml.NewDecoder(file).Decode(&s); err != nil {
			return err
		}

		attacker := durak.NewPlayer(s.Attacker.Name, deck.CardsFromString(s.Attacker.Hand))
		defender := durak.NewPlayer(s.Defender.Name, deck.CardsFromString(s.Defender.Hand))
		round := durak.NewScriptedRound(logrus.StandardLogger(), attacker, defender, deck.CardFromString(s.Trump))

		for i, move := range s.Moves {
			switch {
			case move.Attack != "":
				if err := round.Attack(deck.CardFromString(move.Attack)); err != nil {
					fmt.Printf("move %d rejected: %v\n", i+1, err)
				}
			case move.Defend != "":
				if err := round.Defend(deck.CardFromString(move.Defend), deck.CardFromString(move.Against)); err != nil {
					fmt.Printf("move %d rejected: %v\n", i+1, err)
				}
			default:
				return fmt.Errorf("move %d: expected an attack or a defend", i+1)
			}
		}

		fmt.Printf("table:")
		for _, trick := range round.Table {
			if trick.Beaten() {
				fmt.Printf(" %s/%s", colorCard(trick.Attack), colorCard(trick.Defense))
			} else {
				fmt.Printf(" %s/-", colorCard(trick.Attack))
			}
		}
		fmt.Println()

		fmt.Printf("%s: %s\n", round.Attacker.Name, round.Attacker.Hand)
		fmt.Printf("%s: %s\n", round.Defender.Name, round.Defender.Hand)
		return nil
	},
}
