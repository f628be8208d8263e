package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("2C,3C,4D"))
	assert.True(t, hand.HasCard(CardFromString("3C")))
	assert.False(t, hand.HasCard(CardFromString("3S")))
}

func TestHand_HasRank(t *testing.T) {
	hand := Hand(CardsFromString("2C,3C,4D"))
	assert.True(t, hand.HasRank(CardFromString("3S")))
	assert.False(t, hand.HasRank(CardFromString("5S")))
}

func TestHand_Find(t *testing.T) {
	a := assert.New(t)
	hand := Hand(CardsFromString("2C,3C,4D"))

	card := hand.Find(CardFromString("3C"))
	a.NotNil(card)
	a.Same(hand[1], card)

	a.Nil(hand.Find(CardFromString("3S")))
}

func TestHand_Remove(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("2C,3C,3C,4D"))
	newHand := hand.Remove(CardFromString("3C"))

	// only the first occurrence goes; the original hand is untouched
	a.Equal("2C 3C 4D", newHand.String())
	a.Equal("2C 3C 3C 4D", hand.String())

	newHand = hand.Remove(CardFromString("5S"))
	a.Equal("2C 3C 3C 4D", newHand.String())
}

func TestHand_AddFirst(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("3C"))
	newHand := hand.AddFirst(CardFromString("AS"))
	a.Equal("AS 3C", newHand.String())
	a.Equal("3C", hand.String())
}

func TestHand_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(Hand(CardsFromString("2C,3C")).Equal(CardsFromString("2C,3C")))
	a.False(Hand(CardsFromString("2C,3C")).Equal(CardsFromString("3C,2C")))
	a.False(Hand(CardsFromString("2C,3C")).Equal(CardsFromString("2C")))
	a.True(Hand(nil).Equal(Hand{}))
}

func TestHand_FirstCard(t *testing.T) {
	a := assert.New(t)
	hand := Hand(CardsFromString("2C,3C"))
	a.Equal("2C", hand.FirstCard().String())
	a.Nil(Hand{}.FirstCard())
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)
	hand := Hand(CardsFromString("2C,3C"))
	clone := hand.Clone()
	a.True(hand.Equal(clone))

	clone[0] = CardFromString("AS")
	a.Equal("2C", hand[0].String())
}
