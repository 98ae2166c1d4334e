package smithy

import (
	"fmt"
	"strings"
)

// RoomTemp is the temperature of freshly bought stock.
const RoomTemp = 70

// Product is one piece of metal owned by the smith.
type Product struct {
	Material Material
	Form     Form
	Location Location
	Value    int
	Temp     int
}

// NewProduct returns a cold bar of the material in storage.
func NewProduct(m Material) Product {
	return Product{
		Material: m,
		Form:     Bar,
		Location: Storage,
		Value:    m.BaseValue(),
		Temp:     RoomTemp,
	}
}

// Name is the material and form, e.g. "Iron Sword".
func (p Product) Name() string {
	return p.Material.String() + " " + p.Form.String()
}

// String formats the product for inventory listings.
func (p Product) String() string {
	parts := []string{p.Name()}
	if tag := p.Location.String(); tag != "" {
		parts = append(parts, tag)
	}
	return fmt.Sprintf("%s: %d$", strings.Join(parts, " "), p.Value)
}
