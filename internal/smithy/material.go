// Package smithy holds the blacksmith's data model: metals, forms, where each
// piece sits in the workshop, and the money and inventory of a run.
package smithy

import (
	"fmt"
	"strings"
)

// Material is the metal a product is made of.
type Material int

const (
	Iron Material = iota
	Steel
	Bronze
	Silver
	Gold
)

// Materials lists every material in shop order.
var Materials = []Material{Iron, Steel, Bronze, Silver, Gold}

// String returns the display name of the material.
func (m Material) String() string {
	switch m {
	case Iron:
		return "Iron"
	case Steel:
		return "Steel"
	case Bronze:
		return "Bronze"
	case Silver:
		return "Silver"
	case Gold:
		return "Gold"
	default:
		return "Unknown"
	}
}

// BaseValue is the shop price of a bar and its value before working it.
func (m Material) BaseValue() int {
	switch m {
	case Iron:
		return 100
	case Steel:
		return 400
	case Bronze:
		return 100
	case Silver:
		return 300
	case Gold:
		return 500
	default:
		return 0
	}
}

// ParseMaterial converts a case-insensitive name into a Material.
func ParseMaterial(s string) (Material, error) {
	for _, m := range Materials {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("smithy: unknown material %q", s)
}

// Form is the shape a product has been worked into.
type Form int

const (
	Bar Form = iota
	Spear
	Axe
	Hammer
	Sword
)

// WorkedForms are the forms the anvil can produce, in picker order.
var WorkedForms = []Form{Spear, Axe, Hammer, Sword}

func (f Form) String() string {
	switch f {
	case Bar:
		return "Bar"
	case Spear:
		return "Spear"
	case Axe:
		return "Axe"
	case Hammer:
		return "Hammer"
	case Sword:
		return "Sword"
	default:
		return "Unknown"
	}
}

// Location is where a product currently sits.
type Location int

const (
	Storage Location = iota
	Forge
	Anvil
)

// String returns the inventory tag for the location. Storage has no tag.
func (l Location) String() string {
	switch l {
	case Forge:
		return "<Forge>"
	case Anvil:
		return "<Anvil>"
	default:
		return ""
	}
}
