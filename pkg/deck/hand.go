package deck

// Hand represents an ordered collection of cards.
// The front of the hand is the most recently drawn card.
//
// Hands are treated as immutable values: methods that change the contents
// return a new Hand and leave the receiver untouched.
type Hand []*Card

// AddFirst returns a new hand with the card prepended
func (h Hand) AddFirst(card *Card) Hand {
	newHand := make(Hand, 0, len(h)+1)
	newHand = append(newHand, card)
	newHand = append(newHand, h...)

	return newHand
}

// HasCard returns true if the hand contains the exact card (suit and rank)
func (h Hand) HasCard(card *Card) bool {
	return h.Find(card) != nil
}

// HasRank returns true if any card in the hand shares the card's rank.
// The suit is ignored.
func (h Hand) HasRank(card *Card) bool {
	for _, c := range h {
		if c.SameRank(card) {
			return true
		}
	}

	return false
}

// Find returns the first card in the hand equal to the specified card, or
// nil if the hand does not contain it
func (h Hand) Find(card *Card) *Card {
	for _, c := range h {
		if c.Equal(card) {
			return c
		}
	}

	return nil
}

// Remove returns a new hand with the first card equal to the specified card
// removed. Later duplicates are preserved. If the card is not in the hand,
// the returned hand has the same contents as the receiver.
func (h Hand) Remove(card *Card) Hand {
	newHand := make(Hand, 0, len(h))
	removed := false
	for _, c := range h {
		if !removed && c.Equal(card) {
			removed = true
			continue
		}

		newHand = append(newHand, c)
	}

	return newHand
}

// Equal returns true if both hands hold the same cards in the same order
func (h Hand) Equal(other Hand) bool {
	if len(h) != len(other) {
		return false
	}

	for i, c := range h {
		if !c.Equal(other[i]) {
			return false
		}
	}

	return true
}

// FirstCard returns the first card in the hand or nil if the hand is empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// LongString returns the hand as comma-separated long card names
func (h Hand) LongString() string {
	return CardsToLongString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
