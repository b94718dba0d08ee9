package welle

import (
	"fmt"
	"sort"
	"sync"
)

// CapabilityName returns the name under which the generator for shape
// and t is known, e.g. "sineWave_double".
func CapabilityName(shape Shape, t SampleType) string {
	return string(shape) + "Wave_" + string(t)
}

// Capability is a generator that has been installed in a Registry.
type Capability struct {
	Shape Shape
	Type  SampleType
	Generator
}

// Name returns the capability name, see CapabilityName.
func (c Capability) Name() string {
	return CapabilityName(c.Shape, c.Type)
}

type capabilityKey struct {
	shape Shape
	typ   SampleType
}

// Registry maps (Shape, SampleType) pairs to generators. The zero
// value is not usable, use NewRegistry.
type Registry struct {
	mu         sync.RWMutex
	generators map[capabilityKey]Generator
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{generators: make(map[capabilityKey]Generator)}
}

// Install registers g for the given shape and sample type, replacing
// any generator previously installed for that pair.
func (r *Registry) Install(shape Shape, t SampleType, g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generators[capabilityKey{shape, t}] = g
}

// Lookup returns the generator installed for shape and t. If there is
// none, the returned error wraps ErrUnresolved and names the missing
// capability.
func (r *Registry) Lookup(shape Shape, t SampleType) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.generators[capabilityKey{shape, t}]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnresolved, CapabilityName(shape, t))
	}
	return g, nil
}

// Capabilities returns every installed capability sorted by name.
func (r *Registry) Capabilities() []Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caps := make([]Capability, 0, len(r.generators))
	for k, g := range r.generators {
		caps = append(caps, Capability{Shape: k.shape, Type: k.typ, Generator: g})
	}
	sort.Slice(caps, func(i, j int) bool {
		return caps[i].Name() < caps[j].Name()
	})
	return caps
}

// Default is the registry used by the command line front-end. Every
// Shape is installed for every SampleType at init.
var Default = NewRegistry()

func init() {
	for _, shape := range Shapes {
		Default.Install(shape, Double, Wave[float64]{Shape: shape})
		Default.Install(shape, Integer16, Wave[uint16]{Shape: shape})
	}
}
