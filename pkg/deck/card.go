package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits lists the four suits in deck-building order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// String returns the two-token card code: the rank as digits for 2-10 or a
// single letter for face cards, followed by the first letter of the suit.
// Example: the 6 of hearts is "6H", the jack of hearts is "JH".
func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "C"
	case Diamonds:
		suit = "D"
	case Hearts:
		suit = "H"
	case Spades:
		suit = "S"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// LongString returns the card as "<Rank> of <Suit>", e.g. "Jack of Hearts"
func (c *Card) LongString() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "Jack"
	case Queen:
		rank = "Queen"
	case King:
		rank = "King"
	case Ace:
		rank = "Ace"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	suit := string(c.Suit)
	suit = strings.ToUpper(suit[:1]) + suit[1:]

	return fmt.Sprintf("%s of %s", rank, suit)
}

// Equal returns true if the cards match on both suit and rank
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// SameRank returns true if the cards share a rank, regardless of suit
func (c *Card) SameRank(card *Card) bool {
	return c.Rank == card.Rank
}

// SameSuit returns true if the cards share a suit
func (c *Card) SameSuit(card *Card) bool {
	return c.Suit == card.Suit
}

// Compare performs a three-way comparison on rank alone.
// Returns < 0 if c ranks below card, 0 on equal rank, and > 0 otherwise.
func (c *Card) Compare(card *Card) int {
	return c.Rank - card.Rank
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|10|[jqka])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the card-code format of String(): <rank><suit> where
// rank is 2-10 or one of J, Q, K, A and suit is one of C, D, H, S.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		var err error
		rank, err = strconv.Atoi(match[1])
		if err != nil {
			panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
		}
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will return a slice of cards from a comma-separated list of
// card codes, e.g. "6H,JH,AS"
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to space-separated card codes,
// e.g. "6H JH AS"
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

// CardsToLongString will convert a slice of cards to a comma-separated list
// of long names, e.g. "6 of Hearts, Jack of Hearts"
func CardsToLongString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.LongString()
	}

	return strings.Join(c, ", ")
}
