package durak

import "durak/pkg/deck"

// Player is a named participant and their current hand.
// Players are immutable values: Draw and Discard return a new Player and
// leave the receiver untouched. The front of the hand is the most recently
// drawn card.
type Player struct {
	Name string
	Hand deck.Hand
}

// NewPlayer returns a player with the given name and hand
func NewPlayer(name string, hand deck.Hand) Player {
	return Player{
		Name: name,
		Hand: hand,
	}
}

// Draw returns a new player with the card prepended to the hand.
// No validation happens here: tracking where the card came from is the
// caller's concern.
func (p Player) Draw(card *deck.Card) Player {
	return Player{
		Name: p.Name,
		Hand: p.Hand.AddFirst(card),
	}
}

// Discard returns a new player with the first matching card removed from the
// hand. If the player does not hold the card, the hand is unchanged.
func (p Player) Discard(card *deck.Card) Player {
	return Player{
		Name: p.Name,
		Hand: p.Hand.Remove(card),
	}
}

// DiscardStrict is like Discard but returns ErrCardNotInHand when the player
// does not hold the card
func (p Player) DiscardStrict(card *deck.Card) (Player, error) {
	if p.Hand.Find(card) == nil {
		return p, ErrCardNotInHand
	}

	return p.Discard(card), nil
}

// Equal returns true if both players have the same name and hold the same
// cards in the same order
func (p Player) Equal(other Player) bool {
	return p.Name == other.Name && p.Hand.Equal(other.Hand)
}
