package dimension

import (
	"fmt"
	"slices"
	"sync"
)

// Base identifies a registered base dimension.
//
// Bases are ordered by ordinal; that order is the canonical order of
// vector terms. The zero Base is only meaningful if ordinal 0 has been
// registered.
type Base struct {
	ordinal int
}

type baseInfo struct {
	name   string
	symbol string
}

type registry struct {
	mu        sync.RWMutex
	byOrdinal map[int]baseInfo
	byName    map[string]int
}

var bases = &registry{
	byOrdinal: make(map[int]baseInfo),
	byName:    make(map[string]int),
}

// Register adds a base dimension to the process-wide registry.
//
// Name and symbol share one namespace and must be identifiers
// ([A-Za-z_][A-Za-z0-9_]*) so expressions can refer to them. Registering
// an identical (name, symbol, ordinal) triple again returns the existing
// Base.
func Register(name, symbol string, ordinal int) (Base, error) {
	if !isIdent(name) || !isIdent(symbol) {
		return Base{}, fmt.Errorf("%w: name %q symbol %q", ErrInvalidBase, name, symbol)
	}
	if reserved(name) || reserved(symbol) {
		return Base{}, fmt.Errorf("%w: %q is reserved", ErrInvalidBase, name)
	}

	bases.mu.Lock()
	defer bases.mu.Unlock()

	if info, ok := bases.byOrdinal[ordinal]; ok {
		if info.name == name && info.symbol == symbol {
			return Base{ordinal: ordinal}, nil
		}
		return Base{}, fmt.Errorf("%w: ordinal %d already used by %s", ErrDuplicateBase, ordinal, info.name)
	}
	for _, key := range []string{name, symbol} {
		if ord, ok := bases.byName[key]; ok {
			return Base{}, fmt.Errorf("%w: %q already used by %s", ErrDuplicateBase, key, bases.byOrdinal[ord].name)
		}
	}

	bases.byOrdinal[ordinal] = baseInfo{name: name, symbol: symbol}
	bases.byName[name] = ordinal
	bases.byName[symbol] = ordinal
	return Base{ordinal: ordinal}, nil
}

// MustRegister is like Register but panics on error.
func MustRegister(name, symbol string, ordinal int) Base {
	b, err := Register(name, symbol, ordinal)
	if err != nil {
		panic(err)
	}
	return b
}

// Lookup finds a base dimension by name or symbol.
func Lookup(nameOrSymbol string) (Base, bool) {
	bases.mu.RLock()
	defer bases.mu.RUnlock()
	ord, ok := bases.byName[nameOrSymbol]
	return Base{ordinal: ord}, ok
}

// Bases returns all registered base dimensions in canonical order.
func Bases() []Base {
	bases.mu.RLock()
	out := make([]Base, 0, len(bases.byOrdinal))
	for ord := range bases.byOrdinal {
		out = append(out, Base{ordinal: ord})
	}
	bases.mu.RUnlock()

	slices.SortFunc(out, compareBase)
	return out
}

func (b Base) info() (baseInfo, bool) {
	bases.mu.RLock()
	defer bases.mu.RUnlock()
	info, ok := bases.byOrdinal[b.ordinal]
	return info, ok
}

// Registered reports whether b refers to a registered base dimension.
func (b Base) Registered() bool {
	_, ok := b.info()
	return ok
}

// Ordinal returns the position of b in the canonical order.
func (b Base) Ordinal() int { return b.ordinal }

// Name returns the long name, e.g. "plane_angle".
func (b Base) Name() string {
	info, _ := b.info()
	return info.name
}

// Symbol returns the short symbol, e.g. "QP".
func (b Base) Symbol() string {
	info, _ := b.info()
	return info.symbol
}

func (b Base) String() string {
	if info, ok := b.info(); ok {
		return info.symbol
	}
	return fmt.Sprintf("base(%d)", b.ordinal)
}

// Exp pairs b with an exponent for use in a declaration.
func (b Base) Exp(n int) Term {
	return Term{Base: b, Exp: n}
}

// Vector returns the dimension consisting of b alone.
func (b Base) Vector() Vector {
	return fromCanonical([]Term{{Base: b, Exp: 1}})
}

func compareBase(a, b Base) int {
	switch {
	case a.ordinal < b.ordinal:
		return -1
	case a.ordinal > b.ordinal:
		return 1
	default:
		return 0
	}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && '0' <= c && c <= '9':
		default:
			return false
		}
	}
	return true
}

func reserved(s string) bool {
	return s == dimensionlessName
}
