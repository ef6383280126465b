package material

import "fmt"

// Tag identifies one of the five material slots a face can carry.
// The zero value is Hull.
type Tag uint8

const (
	Hull Tag = iota
	HullLights
	HullDark
	ExhaustBurn
	GlowDisc
)

// SlotCount is the fixed number of material slots on a generated ship
const SlotCount = 5

var tagNames = [SlotCount]string{
	"hull",
	"hull_lights",
	"hull_dark",
	"exhaust_burn",
	"glow_disc",
}

// Tags returns every tag in slot order
func Tags() []Tag {
	return []Tag{Hull, HullLights, HullDark, ExhaustBurn, GlowDisc}
}

// Valid reports whether t is one of the five defined tags
func (t Tag) Valid() bool {
	return t < SlotCount
}

// String returns the slot name
func (t Tag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tag(%d)", uint8(t))
	}
	return tagNames[t]
}

// ParseTag returns the tag with the given slot name
func ParseTag(name string) (Tag, error) {
	for i, n := range tagNames {
		if n == name {
			return Tag(i), nil
		}
	}
	return 0, fmt.Errorf("unknown material tag %q", name)
}
