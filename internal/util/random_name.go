package util

import (
	"fmt"

	"durak/internal/rng"
)

var adjectives = []string{
	"Bold", "Sly", "Lucky", "Grim", "Quick", "Quiet", "Brave", "Stubborn", "Crafty", "Reckless",
	"Patient", "Daring", "Sharp", "Steady", "Wary",
}

var nouns = []string{
	"Attacker", "Defender", "Knave", "Duke", "Baron", "Jester", "Hussar", "Marshal", "Cossack",
	"Merchant", "Scholar", "Wanderer", "Gambler", "Sergeant",
}

// GetRandomName returns a random player name by combining an adjective with
// a noun, e.g. "Sly Knave"
func GetRandomName(g rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[g.Intn(len(adjectives))], nouns[g.Intn(len(nouns))])
}
