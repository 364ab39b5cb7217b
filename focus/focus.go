package focus

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	genome "github.com/gogpu/gg-genome"
	"github.com/gogpu/gg-genome/feature"
	"github.com/gogpu/gg-genome/style"
)

// Group is a set of focus groups.
type Group uint8

// Focus groups, in colour precedence order.
const (
	Focus Group = 1 << iota
	Evidence
	Masked
	Filtered

	// All is every group.
	All = Focus | Evidence | Masked | Filtered
)

const numGroups = 4

var groupNames = [numGroups]string{"focus", "evidence", "masked", "filtered"}

func (g Group) String() string {
	if g == 0 {
		return "none"
	}
	s := ""
	for i := range numGroups {
		if g&(1<<i) != 0 {
			if s != "" {
				s += "|"
			}
			s += groupNames[i]
		}
	}
	if g&^All != 0 {
		s += fmt.Sprintf("|Group(%#x)", uint8(g&^All))
	}
	return s
}

// ParseGroup returns the group called name, as written by String, ignoring
// case.
func ParseGroup(name string) (Group, bool) {
	for i, n := range groupNames {
		if strings.EqualFold(name, n) {
			return 1 << i, true
		}
	}
	return 0, false
}

// Selected reports whether g includes a selection group rather than only
// display state such as masking.
func (g Group) Selected() bool {
	return g&(Focus|Evidence) != 0
}

// Column is the display column an item lives in.
type Column interface {
	ID() string

	// SetHighlight turns the hot column background highlight on or off.
	SetHighlight(on bool)
}

// Item is one focused feature or sub-part.
type Item struct {
	Column  Column
	Feature *feature.Feature
	SubPart feature.SubPart
	Groups  Group
}

type key struct {
	column  Column
	feature *feature.Feature
	subPart feature.SubPart
}

func (it *Item) key() key {
	return key{it.Column, it.Feature, it.SubPart}
}

// Set is the focus set of one view. It is not safe for concurrent use.
type Set struct {
	items   []*Item
	index   map[key]*Item
	hot     *Item
	column  Column
	colours [numGroups]style.Colours
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{index: make(map[key]*Item)}
}

// SetColours sets the colours drawn for members of group g, which must be a
// single group. Nil colours leave the feature's own colours in place.
func (s *Set) SetColours(g Group, c style.Colours) {
	if bits.OnesCount8(uint8(g)) != 1 || g&^All != 0 {
		return
	}
	s.colours[bits.TrailingZeros8(uint8(g))] = c
}

// Add adds the item (column, f, sub) to group g. An existing item gains the
// group; a new item goes to the front of the set. The hot item is never
// changed; use SetHot.
func (s *Set) Add(column Column, f *feature.Feature, sub feature.SubPart, g Group) *Item {
	g &= All
	if g == 0 {
		return nil
	}
	k := key{column, f, sub}
	it, ok := s.index[k]
	if !ok {
		it = &Item{Column: column, Feature: f, SubPart: sub}
		s.items = slices.Insert(s.items, 0, it)
		s.index[k] = it
	}
	it.Groups |= g
	return it
}

// Remove takes the item out of group g. An item left in no group is
// dropped. If the hot item leaves Focus the first remaining Focus member
// becomes hot, or none.
func (s *Set) Remove(column Column, f *feature.Feature, sub feature.SubPart, g Group) {
	it, ok := s.index[key{column, f, sub}]
	if !ok {
		return
	}
	it.Groups &^= g
	if it.Groups == 0 {
		s.drop(it)
	}
	if it == s.hot && it.Groups&Focus == 0 {
		s.hot = s.firstIn(Focus)
	}
}

func (s *Set) drop(it *Item) {
	delete(s.index, it.key())
	if i := slices.Index(s.items, it); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
}

func (s *Set) firstIn(g Group) *Item {
	for _, it := range s.items {
		if it.Groups&g != 0 {
			return it
		}
	}
	return nil
}

// Remap moves the items of column onto the features repl returns for
// them, as after the column rebuilds its composites. Items mapped to nil
// are dropped. Items mapped onto an existing item merge their groups into
// it. A dropped hot item is replaced as by Remove.
func (s *Set) Remap(column Column, repl func(*feature.Feature) *feature.Feature) {
	hotLost := false
	s.items = slices.DeleteFunc(s.items, func(it *Item) bool {
		if it.Column != column {
			return false
		}
		f := repl(it.Feature)
		if f == it.Feature {
			return false
		}
		delete(s.index, it.key())
		it.Feature = f
		if f != nil {
			dup, ok := s.index[it.key()]
			if !ok {
				s.index[it.key()] = it
				return false
			}
			dup.Groups |= it.Groups
			if it == s.hot {
				s.hot = dup
			}
			return true
		}
		if it == s.hot {
			hotLost = true
		}
		return true
	})
	if hotLost {
		s.hot = s.firstIn(Focus)
	}
}

// Clear removes group g from every item, dropping items left in no group.
func (s *Set) Clear(g Group) {
	s.items = slices.DeleteFunc(s.items, func(it *Item) bool {
		it.Groups &^= g
		if it.Groups != 0 {
			return false
		}
		delete(s.index, it.key())
		if it == s.hot {
			s.hot = nil
		}
		return true
	})
	if s.hot != nil && s.hot.Groups&Focus == 0 {
		s.hot = s.firstIn(Focus)
	}
}

// Reset clears the primary selection, the hot item and the hot column.
func (s *Set) Reset() {
	s.Clear(Focus)
	s.hot = nil
	s.setColumn(nil)
}

// Items returns the members of any of the groups in g, most recently added
// first.
func (s *Set) Items(g Group) []*Item {
	var out []*Item
	for _, it := range s.items {
		if it.Groups&g != 0 {
			out = append(out, it)
		}
	}
	return out
}

// Has reports whether any item is in g.
func (s *Set) Has(g Group) bool {
	return s.firstIn(g) != nil
}

// Len returns the number of items.
func (s *Set) Len() int { return len(s.items) }

// Hot returns the hot item, or nil.
func (s *Set) Hot() *Item { return s.hot }

// SetHot makes it the hot item and its column the hot column. it should
// already be in the set.
func (s *Set) SetHot(it *Item) {
	s.hot = it
	if it == nil {
		return
	}
	s.setColumn(it.Column)
	genome.Logger().Debug("focus: hot item",
		"column", columnID(it.Column),
		"feature", it.Feature)
}

// HotColumn returns the hot column, or nil.
func (s *Set) HotColumn() Column { return s.column }

// SetHotColumn moves the hot column without selecting an item. The
// previous selection is cleared.
func (s *Set) SetHotColumn(c Column) {
	s.Clear(Focus)
	s.hot = nil
	s.setColumn(c)
}

func (s *Set) setColumn(c Column) {
	if s.column == c {
		return
	}
	if s.column != nil {
		s.column.SetHighlight(false)
	}
	s.column = c
	if c != nil {
		c.SetHighlight(true)
	}
}

// InHotColumn reports whether c is the hot column.
func (s *Set) InHotColumn(c Column) bool {
	return c != nil && c == s.column
}

// Groups returns the union of groups of every item holding f.
func (s *Set) Groups(f *feature.Feature) Group {
	var g Group
	for _, it := range s.items {
		if it.Feature == f {
			g |= it.Groups
		}
	}
	return g
}

// Features returns the distinct features in g, most recently added first.
func (s *Set) Features(g Group) []*feature.Feature {
	var out []*feature.Feature
	for _, it := range s.items {
		if it.Groups&g != 0 && it.Feature != nil && !slices.Contains(out, it.Feature) {
			out = append(out, it.Feature)
		}
	}
	return out
}

// Colours returns the colours for a feature in groups g. The lowest group
// with colours configured wins; ok is false when g has none, and the
// feature keeps its own colours.
func (s *Set) Colours(g Group) (c style.Colours, ok bool) {
	for i := range numGroups {
		if g&(1<<i) == 0 {
			continue
		}
		if c := s.colours[i]; c.Fill != nil || c.Border != nil {
			return c, true
		}
	}
	return style.Colours{}, false
}

func columnID(c Column) string {
	if c == nil {
		return ""
	}
	return c.ID()
}
