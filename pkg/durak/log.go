package durak

import (
	"fmt"

	"durak/pkg/deck"
)

// DescribeAttack renders a human-readable message for a failed attack.
// The core only returns sentinel errors; this is the presentation side.
func DescribeAttack(err error, attacker Player, card *deck.Card) string {
	switch err {
	case ErrCardNotInHand:
		return fmt.Sprintf("%s does not have the %s", attacker.Name, card.LongString())
	case ErrNotEnoughCards:
		return fmt.Sprintf("%s cannot attack: the defender cannot cover another card", attacker.Name)
	case ErrNoMatchingRank:
		return fmt.Sprintf("%s cannot attack with the %s: its rank is not on the table", attacker.Name, card.LongString())
	}

	return err.Error()
}

// DescribeDefense renders a human-readable message for a failed defense
func DescribeDefense(err error, defender Player, defCard, atkCard *deck.Card) string {
	switch err {
	case ErrCardNotInHand:
		return fmt.Sprintf("%s does not have the %s", defender.Name, defCard.LongString())
	case ErrAttackCardNotFound:
		return fmt.Sprintf("the %s is not an unbeaten card on the table", atkCard.LongString())
	case ErrCannotBeatCard:
		return fmt.Sprintf("the %s does not beat the %s", defCard.LongString(), atkCard.LongString())
	}

	return err.Error()
}
