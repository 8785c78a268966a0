package dimension

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var (
	// ErrDuplicateEntry is returned when a catalog name is declared twice
	// with different dimensions.
	ErrDuplicateEntry = errors.New("duplicate catalog entry")

	// ErrInvalidEntry is returned for entries without a name, or with both
	// or neither of terms and expr.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

// Catalog is an immutable set of named derived dimensions.
type Catalog struct {
	names    []string
	entries  map[string]Vector
	byVector map[Vector][]string
}

type catalogFile struct {
	Dimensions []entrySpec `yaml:"dimensions"`
}

type entrySpec struct {
	Name    string     `yaml:"name"`
	Aliases []string   `yaml:"aliases"`
	Terms   []termSpec `yaml:"terms"`
	Expr    string     `yaml:"expr"`
}

// termSpec decodes a [base, exponent] pair.
type termSpec struct {
	base string
	exp  int
}

func (t *termSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: term must be a [base, exponent] pair", node.Line)
	}
	if err := node.Content[0].Decode(&t.base); err != nil {
		return fmt.Errorf("line %d: term base: %w", node.Line, err)
	}
	if err := node.Content[1].Decode(&t.exp); err != nil {
		return fmt.Errorf("line %d: term exponent: %w", node.Line, err)
	}
	return nil
}

type catalogOptions struct {
	logger *slog.Logger
	parent *Catalog
}

// CatalogOption configures LoadCatalog.
type CatalogOption func(*catalogOptions)

// WithCatalogLogger sets the logger used while loading.
func WithCatalogLogger(l *slog.Logger) CatalogOption {
	return func(o *catalogOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParent makes the loaded catalog extend parent: parent entries are
// visible to expressions and are included in the result.
func WithParent(parent *Catalog) CatalogOption {
	return func(o *catalogOptions) {
		o.parent = parent
	}
}

// LoadCatalog reads a YAML catalog:
//
//	dimensions:
//	  - name: torque
//	    terms: [[length, 1], [mass, 1], [time, -2], [plane_angle, -1]]
//	  - name: energy
//	    aliases: [work]
//	    expr: force length
//
// Entries are reduced in file order and may refer to earlier entries.
func LoadCatalog(r io.Reader, optFns ...CatalogOption) (*Catalog, error) {
	opts := catalogOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		entries:  make(map[string]Vector),
		byVector: make(map[Vector][]string),
	}
	if opts.parent != nil {
		for _, name := range opts.parent.names {
			c.add(name, opts.parent.entries[name])
		}
	}

	for i, e := range file.Dimensions {
		v, err := c.reduce(e)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d (%q): %w", i, e.Name, err)
		}
		for _, name := range append([]string{e.Name}, e.Aliases...) {
			if !isIdent(name) || name == dimensionlessName {
				return nil, fmt.Errorf("catalog entry %d: %w: bad name %q", i, ErrInvalidEntry, name)
			}
			if b, ok := Lookup(name); ok {
				return nil, fmt.Errorf("catalog entry %d: %w: %q names base dimension %s", i, ErrDuplicateEntry, name, b)
			}
			if prev, ok := c.entries[name]; ok {
				if prev != v {
					return nil, fmt.Errorf("catalog entry %d: %w: %q is %s, redeclared as %s",
						i, ErrDuplicateEntry, name, prev, v)
				}
				continue
			}
			if others := c.byVector[v]; len(others) > 0 && !slices.Contains(e.Aliases, name) {
				opts.logger.Warn("catalog entry shares dimension", "name", name, "dimension", v.String(), "with", others[0])
			}
			c.add(name, v)
			opts.logger.Debug("catalog entry loaded", "name", name, "dimension", v.String())
		}
	}
	return c, nil
}

func (c *Catalog) add(name string, v Vector) {
	c.names = append(c.names, name)
	c.entries[name] = v
	c.byVector[v] = append(c.byVector[v], name)
}

func (c *Catalog) reduce(e entrySpec) (Vector, error) {
	if e.Name == "" {
		return Vector{}, fmt.Errorf("%w: missing name", ErrInvalidEntry)
	}
	hasTerms, hasExpr := len(e.Terms) > 0, e.Expr != ""
	switch {
	case hasTerms && hasExpr:
		return Vector{}, fmt.Errorf("%w: both terms and expr given", ErrInvalidEntry)
	case hasExpr:
		return Parse(e.Expr, c.Resolver())
	case hasTerms:
		terms := make([]Term, len(e.Terms))
		for i, t := range e.Terms {
			b, ok := Lookup(t.base)
			if !ok {
				return Vector{}, fmt.Errorf("%w: %q", ErrUnknownBase, t.base)
			}
			terms[i] = b.Exp(t.exp)
		}
		return Reduce(terms...)
	default:
		return Vector{}, fmt.Errorf("%w: neither terms nor expr given", ErrInvalidEntry)
	}
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(defaultCatalogYAML))
	if err != nil {
		panic(err)
	}
	return c
})

// DefaultCatalog returns the built-in catalog of physical dimensions.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

// Lookup returns the dimension registered under name or alias.
func (c *Catalog) Lookup(name string) (Vector, bool) {
	v, ok := c.entries[name]
	return v, ok
}

// Names returns entry names and aliases in declaration order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of names in c.
func (c *Catalog) Len() int { return len(c.names) }

// Match returns every name whose dimension equals v, in declaration order.
func (c *Catalog) Match(v Vector) []string {
	return slices.Clone(c.byVector[v])
}

// Resolver adapts c for Parse.
func (c *Catalog) Resolver() Resolver {
	return c.Lookup
}
