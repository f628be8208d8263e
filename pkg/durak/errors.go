package durak

import "errors"

// ErrCardNotInHand happens when a player tries to play a card they don't have
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrNotEnoughCards happens when the defender has fewer cards than would be
// needed to cover every unbeaten attack on the table
var ErrNotEnoughCards = errors.New("defender does not have enough cards")

// ErrNoMatchingRank happens when an attack card's rank has not been
// established on a non-empty table
var ErrNoMatchingRank = errors.New("no card of matching rank on the table")

// ErrCannotBeatCard happens when the chosen defense card does not beat the
// attack card
var ErrCannotBeatCard = errors.New("defense card cannot beat the attack card")

// ErrAttackCardNotFound happens when the referenced attack card is not among
// the unbeaten cards on the table
var ErrAttackCardNotFound = errors.New("attack card is not unbeaten on the table")
