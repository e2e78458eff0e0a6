package numeric

import (
	"math/big"
	"sort"
	"sync"

	apperrors "github.com/agbru/samplecalc/internal/errors"
)

// Function is a named integer function the driver can sweep over.
type Function interface {
	// Name returns the registry key, e.g. "factorial".
	Name() string
	// Eval computes the function at n.
	Eval(n int64) *big.Int
}

// FuncOf adapts a plain function to the Function interface.
func FuncOf(name string, f func(int64) *big.Int) Function {
	return namedFunc{name: name, f: f}
}

type namedFunc struct {
	name string
	f    func(int64) *big.Int
}

func (nf namedFunc) Name() string           { return nf.name }
func (nf namedFunc) Eval(n int64) *big.Int { return nf.f(n) }

// Factory resolves functions by name.
type Factory interface {
	// Get returns the function registered under name.
	Get(name string) (Function, error)
	// List returns all registered names in sorted order.
	List() []string
	// Register adds a function. Registering a taken name is an error.
	Register(fn Function) error
}

// DefaultFactory is the thread-safe Factory implementation.
type DefaultFactory struct {
	mu        sync.RWMutex
	functions map[string]Function
}

var _ Factory = (*DefaultFactory)(nil)

// extraFunctions holds functions contributed by optional build variants.
var extraFunctions []Function

// NewDefaultFactory returns a factory with "factorial" and "fibonacci"
// registered, plus any functions enabled by build tags.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{functions: make(map[string]Function)}
	builtins := []Function{
		FuncOf("factorial", Factorial),
		FuncOf("fibonacci", func(n int64) *big.Int { return big.NewInt(Fibonacci(n)) }),
	}
	for _, fn := range append(builtins, extraFunctions...) {
		f.functions[fn.Name()] = fn
	}
	return f
}

// Get returns the function registered under name, or a ConfigError.
func (f *DefaultFactory) Get(name string) (Function, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fn, ok := f.functions[name]
	if !ok {
		return nil, apperrors.NewConfigError("unknown function %q (available: %v)", name, f.listLocked())
	}
	return fn, nil
}

// List returns the registered names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.listLocked()
}

func (f *DefaultFactory) listLocked() []string {
	names := make([]string, 0, len(f.functions))
	for name := range f.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds fn to the factory.
func (f *DefaultFactory) Register(fn Function) error {
	if fn == nil || fn.Name() == "" {
		return apperrors.ValidationError{Field: "function", Message: "name must not be empty"}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.functions[fn.Name()]; exists {
		return apperrors.ValidationError{Field: "function", Message: "already registered: " + fn.Name()}
	}
	f.functions[fn.Name()] = fn
	return nil
}
