package collections

import (
	"fmt"
	"slices"
	"sync"
)

// MacroFunc is the function signature for a registered macro.
//
// The collection is passed as an any so that one macro can serve several
// Collection[T] instantiations; use [RegisterTypedMacro] to have the type
// assertion done for you.
type MacroFunc func(collection any, args ...any) (any, error)

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry.
// If a macro with that name already exists it is replaced.
// Safe to call from multiple goroutines.
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// RegisterTypedMacro registers a macro that only accepts *Collection[T].
// Calling it on another collection type returns [ErrTypeMismatch].
//
//	collections.RegisterTypedMacro("evens", func(c *collections.Collection[int], _ ...any) (any, error) {
//	    return c.Filter(func(n int, _ arr.Key) bool { return n%2 == 0 }), nil
//	})
//
//	res, _ := collections.New(1, 2, 3, 4).Macro("evens") // {1: 2, 3: 4}
func RegisterTypedMacro[T any](name string, fn func(c *Collection[T], args ...any) (any, error)) {
	RegisterMacro(name, func(collection any, args ...any) (any, error) {
		c, ok := collection.(*Collection[T])
		if !ok {
			return nil, fmt.Errorf("%w: macro %q expects %T, got %T", ErrTypeMismatch, name, c, collection)
		}
		return fn(c, args...)
	})
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// MacroNames returns the registered macro names in sorted order.
func MacroNames() []string {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	names := make([]string, 0, len(macroRegistry.macros))
	for name := range macroRegistry.macros {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro calls the named macro with the supplied collection and args.
// Returns [ErrMacroNotFound] if no macro is registered under name.
func CallMacro(name string, collection any, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(collection, args...)
}

// Macro calls the named registered macro on c, forwarding args.
// This is a convenience wrapper around the package-level [CallMacro].
func (c *Collection[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}
