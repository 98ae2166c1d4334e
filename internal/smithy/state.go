package smithy

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds = errors.New("smithy: not enough money")
	ErrStorageFull       = errors.New("smithy: not enough storage space")
	ErrForgeFull         = errors.New("smithy: not enough furnace space")
	ErrNoSuchItem        = errors.New("smithy: no such item")
)

// Upgrades are the workshop capacity limits.
type Upgrades struct {
	ForgeSpace   int
	StorageSpace int
}

// DefaultUpgrades returns the capacities of a new workshop.
func DefaultUpgrades() Upgrades {
	return Upgrades{ForgeSpace: 2, StorageSpace: 6}
}

// StartingMoney is the purse of a new run.
const StartingMoney = 100

// GameState is the smith's persistent state for one run. It is shared by the
// workshop modes and mutated in place by whichever mode is active.
type GameState struct {
	Inventory  []Product
	Money      int
	Reputation int // reserved
	Upgrades   Upgrades
}

// NewGameState returns an empty workshop with the given purse and limits.
func NewGameState(money int, upgrades Upgrades) *GameState {
	return &GameState{
		Inventory: []Product{},
		Money:     money,
		Upgrades:  upgrades,
	}
}

// Catalog returns the products the shop sells, one per material.
func Catalog() []Product {
	out := make([]Product, len(Materials))
	for i, m := range Materials {
		out[i] = NewProduct(m)
	}
	return out
}

// Buy purchases a bar of the material and appends it to the inventory.
func (s *GameState) Buy(m Material) (Product, error) {
	price := m.BaseValue()
	if s.Money < price {
		return Product{}, ErrInsufficientFunds
	}
	if len(s.Inventory) >= s.Upgrades.StorageSpace {
		return Product{}, ErrStorageFull
	}
	p := NewProduct(m)
	s.Inventory = append(s.Inventory, p)
	s.Money -= price
	return p, nil
}

// Sell removes the item at index i and adds its value to the purse.
func (s *GameState) Sell(i int) (Product, error) {
	p, err := s.Item(i)
	if err != nil {
		return Product{}, err
	}
	sold := *p
	s.Money += sold.Value
	s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
	return sold, nil
}

// Item returns a pointer to the item at index i.
func (s *GameState) Item(i int) (*Product, error) {
	if i < 0 || i >= len(s.Inventory) {
		return nil, fmt.Errorf("%w: index %d", ErrNoSuchItem, i)
	}
	return &s.Inventory[i], nil
}

// ForgeCount returns how many items are heating.
func (s *GameState) ForgeCount() int {
	n := 0
	for _, p := range s.Inventory {
		if p.Location == Forge {
			n++
		}
	}
	return n
}

// ForgeFull reports whether the forge has no free slot.
func (s *GameState) ForgeFull() bool {
	return s.ForgeCount() >= s.Upgrades.ForgeSpace
}

// MoveToForge puts the item at index i into the forge.
func (s *GameState) MoveToForge(i int) error {
	p, err := s.Item(i)
	if err != nil {
		return err
	}
	if p.Location == Forge {
		return nil
	}
	if s.ForgeFull() {
		return ErrForgeFull
	}
	p.Location = Forge
	return nil
}

// TakeFromForge returns the item at index i to storage.
func (s *GameState) TakeFromForge(i int) error {
	p, err := s.Item(i)
	if err != nil {
		return err
	}
	if p.Location == Forge {
		p.Location = Storage
	}
	return nil
}

// Heat advances every item in the forge by one degree. Called once per frame.
func (s *GameState) Heat() {
	for i := range s.Inventory {
		if s.Inventory[i].Location == Forge {
			s.Inventory[i].Temp++
		}
	}
}
