package spawners

import "ebiten-delve/dice"

// RandomTable is a weighted spawn table. Entries with zero or negative
// weight never come up.
type RandomTable struct {
	entries     []tableEntry
	totalWeight int
}

type tableEntry struct {
	tag    string
	weight int
}

// NewRandomTable creates an empty spawn table.
func NewRandomTable() *RandomTable {
	return &RandomTable{}
}

// Add appends a weighted entry and returns the table for chaining.
func (t *RandomTable) Add(tag string, weight int) *RandomTable {
	if weight > 0 {
		t.entries = append(t.entries, tableEntry{tag: tag, weight: weight})
		t.totalWeight += weight
	}
	return t
}

// Roll picks a tag at random, weighted by entry weight. An empty table
// returns "".
func (t *RandomTable) Roll(rng dice.Roller) string {
	if t.totalWeight == 0 {
		return ""
	}
	roll := rng.RollDice(1, t.totalWeight)
	for _, e := range t.entries {
		if roll <= e.weight {
			return e.tag
		}
		roll -= e.weight
	}
	return ""
}

// DepthTable builds the spawn table for a dungeon depth. Tougher entries
// gain weight as the depth grows.
func DepthTable(depth int) *RandomTable {
	return NewRandomTable().
		Add("Goblin", 10).
		Add("Orc", 1+depth).
		Add("Health Potion", 7).
		Add("Rations", 10).
		Add("Fireball Scroll", 2+depth).
		Add("Confusion Scroll", 2+depth).
		Add("Magic Missile Scroll", 4).
		Add("Dagger", 3).
		Add("Shield", 3).
		Add("Longsword", depth-1).
		Add("Tower Shield", depth-1).
		Add("Bear Trap", 2)
}
