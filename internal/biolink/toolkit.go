package biolink

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed model.yaml
var modelData []byte

// ErrUnknownElement indicates a name that resolves to no class or
// predicate in the bundled model.
var ErrUnknownElement = errors.New("unknown biolink element")

// ElementKind distinguishes classes from predicate slots.
type ElementKind string

const (
	ElementClass     ElementKind = "class"
	ElementPredicate ElementKind = "predicate"
)

// Element is a single node of the model: a class or a predicate slot.
type Element struct {
	Name        string      `json:"name"`
	Formatted   string      `json:"formatted"`
	Description string      `json:"description,omitempty"`
	IsA         string      `json:"is_a,omitempty"`
	Mixins      []string    `json:"mixins,omitempty"`
	Mixin       bool        `json:"mixin,omitempty"`
	Kind        ElementKind `json:"kind"`
}

// TraversalOptions control Ancestors and Descendants walks.
type TraversalOptions struct {
	// Reflexive includes the element itself in the result.
	Reflexive bool

	// Formatted returns biolink: CURIEs instead of plain names.
	Formatted bool

	// Mixin follows mixin edges in addition to is_a edges.
	Mixin bool
}

type classDef struct {
	Name        string   `yaml:"name"`
	IsA         string   `yaml:"is_a"`
	Mixin       bool     `yaml:"mixin"`
	Mixins      []string `yaml:"mixins"`
	Description string   `yaml:"description"`
}

type slotDef struct {
	Name        string `yaml:"name"`
	IsA         string `yaml:"is_a"`
	Description string `yaml:"description"`
}

type modelFile struct {
	Version string     `yaml:"version"`
	Classes []classDef `yaml:"classes"`
	Slots   []slotDef  `yaml:"slots"`
}

// Toolkit answers hierarchy queries against a loaded model. It is
// immutable after construction and safe for concurrent use.
type Toolkit struct {
	version string

	classes    map[string]*classDef
	classOrder []string

	slots     map[string]*slotDef
	slotOrder []string

	// reverse edges, keyed by parent name
	classChildren map[string][]string
	mixinUsers    map[string][]string
	slotChildren  map[string][]string
}

// New loads the bundled model.
func New() (*Toolkit, error) {
	return Parse(modelData)
}

// Parse builds a Toolkit from raw model YAML. Exposed so tests can load
// small fixed hierarchies.
func Parse(data []byte) (*Toolkit, error) {
	var m modelFile
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse biolink model: %w", err)
	}

	t := &Toolkit{
		version:       m.Version,
		classes:       make(map[string]*classDef, len(m.Classes)),
		slots:         make(map[string]*slotDef, len(m.Slots)),
		classChildren: make(map[string][]string),
		mixinUsers:    make(map[string][]string),
		slotChildren:  make(map[string][]string),
	}

	for i := range m.Classes {
		c := &m.Classes[i]
		if _, dup := t.classes[c.Name]; dup {
			return nil, fmt.Errorf("biolink model: duplicate class %q", c.Name)
		}
		t.classes[c.Name] = c
		t.classOrder = append(t.classOrder, c.Name)
	}
	for i := range m.Slots {
		s := &m.Slots[i]
		if _, dup := t.slots[s.Name]; dup {
			return nil, fmt.Errorf("biolink model: duplicate slot %q", s.Name)
		}
		t.slots[s.Name] = s
		t.slotOrder = append(t.slotOrder, s.Name)
	}

	// Validate references and build reverse edges.
	for _, name := range t.classOrder {
		c := t.classes[name]
		if c.IsA != "" {
			if _, ok := t.classes[c.IsA]; !ok {
				return nil, fmt.Errorf("biolink model: class %q has unknown parent %q", c.Name, c.IsA)
			}
			t.classChildren[c.IsA] = append(t.classChildren[c.IsA], c.Name)
		}
		for _, mx := range c.Mixins {
			if _, ok := t.classes[mx]; !ok {
				return nil, fmt.Errorf("biolink model: class %q has unknown mixin %q", c.Name, mx)
			}
			t.mixinUsers[mx] = append(t.mixinUsers[mx], c.Name)
		}
	}
	for _, name := range t.slotOrder {
		s := t.slots[name]
		if s.IsA != "" {
			if _, ok := t.slots[s.IsA]; !ok {
				return nil, fmt.Errorf("biolink model: slot %q has unknown parent %q", s.Name, s.IsA)
			}
			t.slotChildren[s.IsA] = append(t.slotChildren[s.IsA], s.Name)
		}
	}

	return t, nil
}

// Version reports the bundled model version.
func (t *Toolkit) Version() string {
	return t.version
}

// Element returns the class or predicate matching name, in any accepted
// name form. Classes shadow predicates on the (nonexistent in practice)
// chance of a name collision.
func (t *Toolkit) Element(name string) (*Element, error) {
	canonical := canonicalName(name)

	if c, ok := t.classes[canonical]; ok {
		return &Element{
			Name:        c.Name,
			Formatted:   formatClass(c.Name),
			Description: c.Description,
			IsA:         c.IsA,
			Mixins:      append([]string(nil), c.Mixins...),
			Mixin:       c.Mixin,
			Kind:        ElementClass,
		}, nil
	}
	if s, ok := t.slots[canonical]; ok {
		return &Element{
			Name:        s.Name,
			Formatted:   formatSlot(s.Name),
			Description: s.Description,
			IsA:         s.IsA,
			Kind:        ElementPredicate,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
}

// IsPredicate reports whether name resolves to a predicate slot.
func (t *Toolkit) IsPredicate(name string) bool {
	_, ok := t.slots[canonicalName(name)]
	return ok
}

// AllClasses lists every class in model order.
func (t *Toolkit) AllClasses(formatted bool) []string {
	out := make([]string, len(t.classOrder))
	for i, name := range t.classOrder {
		if formatted {
			out[i] = formatClass(name)
		} else {
			out[i] = name
		}
	}

	return out
}

// AllSlots lists every predicate slot in model order.
func (t *Toolkit) AllSlots(formatted bool) []string {
	out := make([]string, len(t.slotOrder))
	for i, name := range t.slotOrder {
		if formatted {
			out[i] = formatSlot(name)
		} else {
			out[i] = name
		}
	}

	return out
}

// AllEntities lists the entity classes: named thing and everything below
// it, including classes reached through mixin edges. Empty when the
// loaded model has no named thing root.
func (t *Toolkit) AllEntities(formatted bool) []string {
	names, err := t.Descendants("named thing", TraversalOptions{
		Reflexive: true,
		Formatted: formatted,
		Mixin:     true,
	})
	if err != nil {
		return nil
	}

	return names
}

// Ancestors walks upward from name: the is_a chain, plus mixin parents
// when opts.Mixin is set. Order is discovery order, element first.
func (t *Toolkit) Ancestors(name string, opts TraversalOptions) ([]string, error) {
	canonical := canonicalName(name)

	if _, ok := t.classes[canonical]; ok {
		names := t.walkClasses(canonical, opts.Mixin, t.classParents)
		return renderNames(names, canonical, opts, formatClass), nil
	}
	if _, ok := t.slots[canonical]; ok {
		names := t.walkSlots(canonical, t.slotParents)
		return renderNames(names, canonical, opts, formatSlot), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
}

// Descendants walks downward from name: is_a children, plus classes that
// mix the element in when opts.Mixin is set.
func (t *Toolkit) Descendants(name string, opts TraversalOptions) ([]string, error) {
	canonical := canonicalName(name)

	if _, ok := t.classes[canonical]; ok {
		names := t.walkClasses(canonical, opts.Mixin, t.classChildrenOf)
		return renderNames(names, canonical, opts, formatClass), nil
	}
	if _, ok := t.slots[canonical]; ok {
		names := t.walkSlots(canonical, t.slotChildrenOf)
		return renderNames(names, canonical, opts, formatSlot), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
}

// ReflexiveAncestors returns the formatted, mixin-inclusive, reflexive
// ancestor set of label, or nil when the label is unknown. This is the
// lookup the most-specific-type filter runs on, and it implements
// AncestorSource.
func (t *Toolkit) ReflexiveAncestors(label string) []string {
	out, err := t.Ancestors(label, TraversalOptions{Reflexive: true, Formatted: true, Mixin: true})
	if err != nil {
		return nil
	}

	return out
}

// classParents yields the upward edges of a class: its is_a parent and,
// when mixin traversal is on, its mixins.
func (t *Toolkit) classParents(name string, mixin bool) []string {
	c := t.classes[name]

	var next []string
	if c.IsA != "" {
		next = append(next, c.IsA)
	}
	if mixin {
		next = append(next, c.Mixins...)
	}

	return next
}

func (t *Toolkit) classChildrenOf(name string, mixin bool) []string {
	next := append([]string(nil), t.classChildren[name]...)
	if mixin {
		next = append(next, t.mixinUsers[name]...)
	}

	return next
}

func (t *Toolkit) slotParents(name string) []string {
	if parent := t.slots[name].IsA; parent != "" {
		return []string{parent}
	}

	return nil
}

func (t *Toolkit) slotChildrenOf(name string) []string {
	return t.slotChildren[name]
}

// walkClasses does a preorder walk from start following edges, with
// deduplication so diamond-shaped mixin paths are visited once.
func (t *Toolkit) walkClasses(start string, mixin bool, edges func(string, bool) []string) []string {
	var order []string
	seen := make(map[string]bool)

	var visit func(name string)
	visit = func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		order = append(order, name)
		for _, next := range edges(name, mixin) {
			visit(next)
		}
	}
	visit(start)

	return order
}

func (t *Toolkit) walkSlots(start string, edges func(string) []string) []string {
	var order []string
	seen := make(map[string]bool)

	var visit func(name string)
	visit = func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		order = append(order, name)
		for _, next := range edges(name) {
			visit(next)
		}
	}
	visit(start)

	return order
}

func renderNames(names []string, self string, opts TraversalOptions, format func(string) string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == self && !opts.Reflexive {
			continue
		}
		if opts.Formatted {
			out = append(out, format(n))
		} else {
			out = append(out, n)
		}
	}

	return out
}

// canonicalName maps any accepted spelling to the model's internal
// space-separated form: "biolink:DiseaseOrPhenotypicFeature",
// "DiseaseOrPhenotypicFeature", "disease_or_phenotypic_feature", and
// "disease or phenotypic feature" all canonicalize identically.
func canonicalName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "biolink:")
	s = strings.ReplaceAll(s, "_", " ")

	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// formatClass renders "named thing" as "biolink:NamedThing".
func formatClass(name string) string {
	words := strings.Fields(name)
	var b strings.Builder
	b.WriteString("biolink:")
	for _, w := range words {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}

	return b.String()
}

// formatSlot renders "related to" as "biolink:related_to".
func formatSlot(name string) string {
	return "biolink:" + strings.Join(strings.Fields(name), "_")
}
