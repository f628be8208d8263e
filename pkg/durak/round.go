package durak

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"durak/internal/rng"
	"durak/pkg/deck"
)

const handSize = 6

// Round is a dealt round of play between one attacker and one defender.
// It owns the deck, the trump card, and the table, and applies the Attack
// and Defend protocol to its player snapshots. Sequencing moves across
// more than two players is the caller's concern.
type Round struct {
	ID        string
	Attacker  Player
	Defender  Player
	Table     Table
	TrumpCard *deck.Card

	deck   *deck.Deck
	logger logrus.FieldLogger
}

// NewRound shuffles a fresh deck with the supplied generator, deals six
// cards to each player, and flips the next card as trump
func NewRound(logger logrus.FieldLogger, attackerName, defenderName string, generator rng.Generator) (*Round, error) {
	d := deck.New(generator)
	d.Shuffle()

	attacker := NewPlayer(attackerName, nil)
	defender := NewPlayer(defenderName, nil)

	for i := 0; i < handSize; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}
		attacker = attacker.Draw(card)

		card, err = d.Draw()
		if err != nil {
			return nil, err
		}
		defender = defender.Draw(card)
	}

	trump, err := d.Draw()
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	return &Round{
		ID:        id,
		Attacker:  attacker,
		Defender:  defender,
		TrumpCard: trump,
		deck:      d,
		logger:    logger.WithField("round", id),
	}, nil
}

// NewScriptedRound returns a round with predetermined hands and trump card
// instead of dealing from a shuffled deck. Used for replays and tests.
func NewScriptedRound(logger logrus.FieldLogger, attacker, defender Player, trump *deck.Card) *Round {
	id := uuid.New().String()
	return &Round{
		ID:        id,
		Attacker:  attacker,
		Defender:  defender,
		TrumpCard: trump,
		logger:    logger.WithField("round", id),
	}
}

// Trump returns the round's trump suit
func (r *Round) Trump() deck.Suit {
	return r.TrumpCard.Suit
}

// Attack plays card from the attacker's hand onto the table.
// On a rejected move the round state is unchanged and the reason is logged.
func (r *Round) Attack(card *deck.Card) error {
	attacker, table, err := Attack(r.Attacker, card, r.Defender, r.Table)
	if err != nil {
		r.logger.WithError(err).Warn(DescribeAttack(err, r.Attacker, card))
		return err
	}

	r.Attacker = attacker
	r.Table = table
	r.logger.WithField("card", card.String()).Debugf("%s attacks", r.Attacker.Name)
	return nil
}

// Replenish draws both players back up to six cards, attacker first, until
// the deck runs out. Called between bouts.
func (r *Round) Replenish() {
	// scripted rounds have no deck to draw from
	if r.deck == nil {
		return
	}

	for len(r.Attacker.Hand) < handSize && r.deck.CanDraw(1) {
		card, _ := r.deck.Draw()
		r.Attacker = r.Attacker.Draw(card)
	}

	for len(r.Defender.Hand) < handSize && r.deck.CanDraw(1) {
		card, _ := r.deck.Draw()
		r.Defender = r.Defender.Draw(card)
	}
}

// Defend beats the unbeaten atkCard with defCard from the defender's hand.
// On a rejected move the round state is unchanged and the reason is logged.
func (r *Round) Defend(defCard, atkCard *deck.Card) error {
	defender, table, err := Defend(r.Defender, defCard, atkCard, r.Table, r.Trump())
	if err != nil {
		r.logger.WithError(err).Warn(DescribeDefense(err, r.Defender, defCard, atkCard))
		return err
	}

	r.Defender = defender
	r.Table = table
	r.logger.WithField("card", defCard.String()).Debugf("%s defends", r.Defender.Name)
	return nil
}
