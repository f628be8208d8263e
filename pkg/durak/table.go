package durak

import "durak/pkg/deck"

// Trick is one attack card on the table and, once it has been beaten, the
// card that beat it. A nil Defense means the attack is still unbeaten.
type Trick struct {
	Attack  *deck.Card
	Defense *deck.Card
}

// Beaten returns true if the trick's attack card has been covered
func (t Trick) Beaten() bool {
	return t.Defense != nil
}

// Table is the shared play area: the tricks of the current round, newest
// first. Insertion order is significant; Equal compares tables as ordered
// sequences. Like Player, a Table is an immutable value and Attack/Defend
// return new snapshots.
type Table []Trick

// UnbeatenCards returns the attack cards that have not been beaten yet
func (t Table) UnbeatenCards() []*deck.Card {
	cards := make([]*deck.Card, 0, len(t))
	for _, trick := range t {
		if !trick.Beaten() {
			cards = append(cards, trick.Attack)
		}
	}

	return cards
}

// AllCards returns every card on the table, attacks and defenses alike
func (t Table) AllCards() []*deck.Card {
	cards := make([]*deck.Card, 0, len(t)*2)
	for _, trick := range t {
		cards = append(cards, trick.Attack)
		if trick.Beaten() {
			cards = append(cards, trick.Defense)
		}
	}

	return cards
}

// Equal returns true if both tables hold the same tricks in the same order
func (t Table) Equal(other Table) bool {
	if len(t) != len(other) {
		return false
	}

	for i, trick := range t {
		if !trick.Attack.Equal(other[i].Attack) {
			return false
		}

		if trick.Beaten() != other[i].Beaten() {
			return false
		}

		if trick.Beaten() && !trick.Defense.Equal(other[i].Defense) {
			return false
		}
	}

	return true
}

// Beats returns true if defCard beats atkCard given the trump suit: either
// the cards share a suit and defCard has the strictly higher rank, or defCard
// is trump and atkCard is not. An off-suit, non-trump card never beats.
func Beats(defCard, atkCard *deck.Card, trump deck.Suit) bool {
	if defCard.SameSuit(atkCard) {
		return defCard.Compare(atkCard) > 0
	}

	return defCard.Suit == trump
}

// Attack plays card from the attacker's hand onto the table as a new unbeaten
// trick. The attack is legal when the attacker holds the card, the defender
// has more cards than there are unbeaten attacks, and (unless the table is
// empty) the card's rank already appears among the cards on the table.
//
// On success the returned attacker no longer holds the card and the new trick
// sits at the front of the returned table. On failure the original attacker
// and table are returned along with one of ErrCardNotInHand,
// ErrNotEnoughCards or ErrNoMatchingRank.
func Attack(attacker Player, card *deck.Card, defender Player, table Table) (Player, Table, error) {
	if attacker.Hand.Find(card) == nil {
		return attacker, table, ErrCardNotInHand
	}

	if len(defender.Hand) <= len(table.UnbeatenCards()) {
		return attacker, table, ErrNotEnoughCards
	}

	if len(table) > 0 && !deck.Hand(table.AllCards()).HasRank(card) {
		return attacker, table, ErrNoMatchingRank
	}

	newTable := make(Table, 0, len(table)+1)
	newTable = append(newTable, Trick{Attack: card})
	newTable = append(newTable, table...)

	return attacker.Discard(card), newTable, nil
}

// Defend beats the unbeaten atkCard with defCard from the defender's hand.
// The defense is legal when the defender holds defCard, atkCard is unbeaten
// on the table, and defCard beats atkCard under the trump suit.
//
// On success the trick is moved to the front of the returned table with its
// defense filled in, and the returned defender no longer holds defCard. On
// failure the original defender and table are returned along with one of
// ErrCardNotInHand, ErrAttackCardNotFound or ErrCannotBeatCard.
func Defend(defender Player, defCard, atkCard *deck.Card, table Table, trump deck.Suit) (Player, Table, error) {
	if defender.Hand.Find(defCard) == nil {
		return defender, table, ErrCardNotInHand
	}

	found := false
	for _, c := range table.UnbeatenCards() {
		if c.Equal(atkCard) {
			found = true
			break
		}
	}

	if !found {
		return defender, table, ErrAttackCardNotFound
	}

	if !Beats(defCard, atkCard, trump) {
		return defender, table, ErrCannotBeatCard
	}

	newTable := make(Table, 0, len(table))
	newTable = append(newTable, Trick{Attack: atkCard, Defense: defCard})
	for _, trick := range table {
		if !trick.Beaten() && trick.Attack.Equal(atkCard) {
			continue
		}

		newTable = append(newTable, trick)
	}

	return defender.Discard(defCard), newTable, nil
}
