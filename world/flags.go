// Package world holds the state shared between the player, the enemies and the level
// loader: the set of objects that have been unlocked, used up or killed.
package world

import (
	"fmt"
	"slices"
)

// Category groups persistent object ids.
type Category int

const (
	CategoryAmmoCrates Category = iota
	CategoryKeys
	CategoryDoors
	CategoryEnemies
)

// categoryStride keeps ids of different categories apart in the flat index.
const categoryStride = 65536

func (c Category) String() string {
	switch c {
	case CategoryAmmoCrates:
		return "ammo_crates"
	case CategoryKeys:
		return "keys"
	case CategoryDoors:
		return "doors"
	case CategoryEnemies:
		return "enemies"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// FlagKey addresses one flag.
type FlagKey struct {
	Category Category
	ID       uint16
}

// Index returns the flat bit index category*65536 + id.
func (k FlagKey) Index() int {
	return int(k.Category)*categoryStride + int(k.ID)
}

// KeyFromIndex is the inverse of FlagKey.Index.
func KeyFromIndex(index int) FlagKey {
	return FlagKey{
		Category: Category(index / categoryStride),
		ID:       uint16(index % categoryStride),
	}
}

// Flags is a sparse set of unlocked objects. A flag, once set, stays set until Reset.
type Flags struct {
	set map[FlagKey]struct{}
}

func NewFlags() *Flags {
	return &Flags{set: make(map[FlagKey]struct{})}
}

// Set marks the flag and reports whether it was newly set.
func (f *Flags) Set(category Category, id uint16) bool {
	key := FlagKey{Category: category, ID: id}
	if _, ok := f.set[key]; ok {
		return false
	}
	f.set[key] = struct{}{}
	return true
}

func (f *Flags) Test(category Category, id uint16) bool {
	_, ok := f.set[FlagKey{Category: category, ID: id}]
	return ok
}

func (f *Flags) Reset() {
	clear(f.set)
}

func (f *Flags) Len() int {
	return len(f.set)
}

// Indexes returns the flat indexes of every set flag in ascending order.
func (f *Flags) Indexes() []int {
	indexes := make([]int, 0, len(f.set))
	for key := range f.set {
		indexes = append(indexes, key.Index())
	}
	slices.Sort(indexes)
	return indexes
}

// SetIndexes sets every flag named by a flat index.
func (f *Flags) SetIndexes(indexes []int) {
	for _, index := range indexes {
		key := KeyFromIndex(index)
		f.Set(key.Category, key.ID)
	}
}
