package encrypt

import (
	"sort"
	"sync"
)

// AlgorithmFactory resolves an algorithm instance from a configured type name
// and its construction properties. The rule layer never discovers or builds
// algorithms on its own; everything it dispatches to comes through this
// contract.
type AlgorithmFactory interface {
	Resolve(typeName string, props Properties) (Algorithm, error)
}

// AlgorithmFactoryFunc adapts a function to the AlgorithmFactory interface.
type AlgorithmFactoryFunc func(typeName string, props Properties) (Algorithm, error)

// Resolve implements AlgorithmFactory.
func (f AlgorithmFactoryFunc) Resolve(typeName string, props Properties) (Algorithm, error) {
	return f(typeName, props)
}

var (
	buildersMu sync.RWMutex
	builders   = make(map[string]func(Properties) (Algorithm, error))
)

// RegisterAlgorithm makes an algorithm constructor available to the default
// factory under the given type name. It is intended to be called from the
// init function of an algorithm implementation package. RegisterAlgorithm
// panics if the type name is empty, the builder is nil, or the name is
// already registered.
func RegisterAlgorithm(typeName string, builder func(Properties) (Algorithm, error)) {
	buildersMu.Lock()
	defer buildersMu.Unlock()
	if typeName == "" {
		panic("encrypt: RegisterAlgorithm with empty type name")
	}
	if builder == nil {
		panic("encrypt: RegisterAlgorithm with nil builder for " + typeName)
	}
	if _, dup := builders[typeName]; dup {
		panic("encrypt: RegisterAlgorithm called twice for " + typeName)
	}
	builders[typeName] = builder
}

// RegisteredAlgorithmTypes returns the type names known to the default
// factory, sorted alphabetically.
func RegisteredAlgorithmTypes() []string {
	buildersMu.RLock()
	defer buildersMu.RUnlock()
	types := make([]string, 0, len(builders))
	for name := range builders {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// DefaultAlgorithmFactory returns the factory backed by RegisterAlgorithm
// registrations. Type names are matched exactly; an unregistered name fails
// with ErrUnknownAlgorithmType.
func DefaultAlgorithmFactory() AlgorithmFactory {
	return AlgorithmFactoryFunc(func(typeName string, props Properties) (Algorithm, error) {
		buildersMu.RLock()
		builder, ok := builders[typeName]
		buildersMu.RUnlock()
		if !ok {
			return nil, newUnknownAlgorithmTypeError(typeName)
		}
		return builder(props)
	})
}
