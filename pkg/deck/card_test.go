package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2H", card.String())

	card = Card{
		Rank: 10,
		Suit: Clubs,
	}

	assert.Equal(t, "10C", card.String())

	card = Card{
		Rank: 11,
		Suit: Hearts,
	}

	assert.Equal(t, "JH", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "QD", card.String())

	card = Card{
		Rank: 13,
		Suit: Spades,
	}

	assert.Equal(t, "KS", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "AS", card.String())
}

func TestCard_LongString(t *testing.T) {
	a := assert.New(t)
	a.Equal("6 of Hearts", CardFromString("6H").LongString())
	a.Equal("10 of Clubs", CardFromString("10C").LongString())
	a.Equal("Jack of Hearts", CardFromString("JH").LongString())
	a.Equal("Queen of Diamonds", CardFromString("QD").LongString())
	a.Equal("King of Spades", CardFromString("KS").LongString())
	a.Equal("Ace of Clubs", CardFromString("AC").LongString())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	card := CardFromString("6H")
	a.True(card.Equal(CardFromString("6h")))
	a.True(card.Equal(card))
	a.False(card.Equal(CardFromString("6S")))
	a.False(card.Equal(CardFromString("7H")))
}

func TestCard_SameRankSameSuit(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("6H").SameRank(CardFromString("6S")))
	a.False(CardFromString("6H").SameRank(CardFromString("7H")))
	a.True(CardFromString("6H").SameSuit(CardFromString("KH")))
	a.False(CardFromString("6H").SameSuit(CardFromString("6S")))
}

func TestCard_Compare(t *testing.T) {
	a := assert.New(t)
	a.Less(CardFromString("6H").Compare(CardFromString("KH")), 0)
	a.Greater(CardFromString("AS").Compare(CardFromString("KD")), 0)
	a.Equal(0, CardFromString("6H").Compare(CardFromString("6S")))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(&Card{Rank: 2, Suit: Clubs}, CardFromString("2C"))
	a.Equal(&Card{Rank: 10, Suit: Diamonds}, CardFromString("10D"))
	a.Equal(&Card{Rank: Ace, Suit: Spades}, CardFromString("as"))
	a.Nil(CardFromString(""))
	a.Panics(func() {
		CardFromString("1H")
	})
	a.Panics(func() {
		CardFromString("6X")
	})
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)
	cards := CardsFromString("6H,JH,AS")
	a.Equal("6H JH AS", CardsToString(cards))
	a.Equal("6 of Hearts, Jack of Hearts, Ace of Spades", CardsToLongString(cards))
	a.Equal("", CardsToString(nil))
}
