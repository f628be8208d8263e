package durak

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"

	"durak/pkg/deck"
)

func TestDescribeAttack(t *testing.T) {
	a := assert.New(t)
	attacker := NewPlayer("alice", deck.CardsFromString("6H"))

	a.Equal("alice does not have the Ace of Spades",
		DescribeAttack(ErrCardNotInHand, attacker, card("AS")))
	a.Equal("alice cannot attack: the defender cannot cover another card",
		DescribeAttack(ErrNotEnoughCards, attacker, card("6H")))
	a.Equal("alice cannot attack with the 6 of Hearts: its rank is not on the table",
		DescribeAttack(ErrNoMatchingRank, attacker, card("6H")))
	a.Equal("boom", DescribeAttack(errors.New("boom"), attacker, card("6H")))
}

func TestDescribeDefense(t *testing.T) {
	a := assert.New(t)
	defender := NewPlayer("bob", deck.CardsFromString("6H"))

	a.Equal("bob does not have the Ace of Spades",
		DescribeDefense(ErrCardNotInHand, defender, card("AS"), card("KC")))
	a.Equal("the King of Clubs is not an unbeaten card on the table",
		DescribeDefense(ErrAttackCardNotFound, defender, card("6H"), card("KC")))
	a.Equal("the 6 of Hearts does not beat the King of Hearts",
		DescribeDefense(ErrCannotBeatCard, defender, card("6H"), card("KH")))
}
