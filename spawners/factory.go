package spawners

// EntityID is an opaque handle to an entity created by the factory.
type EntityID uint64

// PlacementKind selects where a spawned entity goes.
type PlacementKind int

// Placement kinds
const (
	PlaceAtTile PlacementKind = iota
	PlaceCarriedBy
	PlaceEquippedBy
)

// Placement describes where to put a spawned entity: on a map tile, in
// another entity's inventory, or worn by another entity.
type Placement struct {
	Kind      PlacementKind
	TileIndex int
	Owner     EntityID
}

// AtTile places an entity on the tile with the given index.
func AtTile(idx int) Placement {
	return Placement{Kind: PlaceAtTile, TileIndex: idx}
}

// CarriedBy places an entity in the owner's inventory.
func CarriedBy(owner EntityID) Placement {
	return Placement{Kind: PlaceCarriedBy, Owner: owner}
}

// EquippedBy places an entity in one of the owner's equipment slots.
func EquippedBy(owner EntityID) Placement {
	return Placement{Kind: PlaceEquippedBy, Owner: owner}
}

// EntityFactory materializes named entities. The generation pipeline only
// knows entities by tag; resolving a tag to a concrete stat block is the
// factory's problem. SpawnNamedEntity returns false for an unrecognized
// tag, which callers treat as a logged warning rather than a failure.
type EntityFactory interface {
	SpawnNamedEntity(tag string, placement Placement) (EntityID, bool)
}
