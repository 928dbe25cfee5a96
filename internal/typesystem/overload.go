package typesystem

import (
	"strings"
	"sync"

	"github.com/objc2swift/transpiler/internal/ast"
	"github.com/objc2swift/transpiler/internal/swifttype"
)

// Argument describes one call-site argument as presented to the resolver
// (spec §4.4): its resolved type (nil/errorType meaning unresolved), and —
// for literals — the literal kind, since literal arguments get special
// implicit-conversion treatment in the nullability-ignoring pass.
type Argument struct {
	Type        swifttype.Type
	IsLiteral   bool
	LiteralKind ast.LiteralKind
}

// IsMissingType reports whether the argument's type is unknown (nil or the
// errorType sentinel), per spec §4.4's `isMissingType` predicate.
func (a Argument) IsMissingType() bool {
	return a.Type == nil || swifttype.IsErrorType(a.Type)
}

// candidate is one SelectorSignature a FunctionSignature can produce,
// tagged with the index of the FunctionSignature it came from — the
// teacher's ResolveOverload candidate-struct shape, generalized from a
// distance-ranked match to the spec's exact/nullability-ignoring passes.
type candidate struct {
	sigIndex int
	selector swifttype.SelectorSignature
	params   []swifttype.Parameter
}

func (c candidate) argumentCount() int { return len(c.params) }

// System queried by the resolver for assignability/match checks.
type matchSystem interface {
	TypesMatch(a, b swifttype.Type, ignoreNullability bool) bool
	IsAssignable(from, to swifttype.Type) bool
}

// OverloadResolver selects one signature index from a list given argument
// descriptors, implementing the exact 7-step algorithm of spec §4.4.
type OverloadResolver struct {
	sys   matchSystem
	cache *ResolutionCache
}

// NewOverloadResolver builds a resolver backed by sys. The cache starts
// disabled; call Cache().Enable() to turn it on (spec §4.4.1).
func NewOverloadResolver(sys matchSystem) *OverloadResolver {
	return &OverloadResolver{sys: sys, cache: NewResolutionCache()}
}

// Cache exposes the resolver's memoization layer (spec §4.4.1/§5).
func (r *OverloadResolver) Cache() *ResolutionCache { return r.cache }

// Resolve selects a signature index from signatures given the call-site
// arguments, or (-1, false) if none match. Step numbers below mirror
// spec §4.4's algorithm exactly.
func (r *OverloadResolver) Resolve(signatures []swifttype.FunctionSignature, arguments []Argument) (int, bool) {
	// 1. Empty signature list -> None.
	if len(signatures) == 0 {
		return -1, false
	}

	// 2. Cache lookup (negative results are cached too).
	key := cacheKey(signatures, arguments)
	if idx, found, ok := r.cache.Lookup(key); found {
		return idx, ok
	}

	// 3. Candidate generation: every SelectorSignature each signature can
	// produce, tagged with its originating index.
	var candidates []candidate
	for i, sig := range signatures {
		for _, sel := range sig.Selectors() {
			n := selectorParamCount(sel)
			candidates = append(candidates, candidate{sigIndex: i, selector: sel, params: sig.Parameters[:n]})
		}
	}

	// 4. No candidate has matching arity, or every argument is missing a
	// type -> None. A literal argument counts as typed here: its literal
	// kind drives the promotion check in step 6.
	hasArityMatch := false
	allMissing := true
	for _, c := range candidates {
		if c.argumentCount() == len(arguments) {
			hasArityMatch = true
		}
	}
	for _, a := range arguments {
		if !a.IsMissingType() || a.IsLiteral {
			allMissing = false
			break
		}
	}
	if !hasArityMatch || allMissing {
		r.cache.Insert(key, -1, false)
		return -1, false
	}

	// 5. Exact-match pass, only when every argument has a concrete type.
	if allConcrete(arguments) {
		for _, c := range candidates {
			if c.argumentCount() != len(arguments) {
				continue
			}
			match := true
			for i, arg := range arguments {
				if !r.sys.TypesMatch(arg.Type, c.params[i].Type, false) {
					match = false
					break
				}
			}
			if match {
				r.cache.Insert(key, c.sigIndex, true)
				return c.sigIndex, true
			}
		}
	}

	// 6. Nullability-ignoring elimination pass.
	remaining := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.argumentCount() == len(arguments) {
			remaining = append(remaining, c)
		}
	}
	for argIdx, arg := range arguments {
		if len(remaining) <= 1 {
			break
		}
		if arg.IsMissingType() && !arg.IsLiteral {
			continue
		}
		next := remaining[:0:0]
		for _, c := range remaining {
			paramT := c.params[argIdx].Type
			if r.candidateAdmits(arg, paramT) {
				next = append(next, c)
			}
		}
		if len(next) > 0 {
			remaining = next
		}
		// "no further eliminations occur" — if next is empty, every
		// candidate was rejected by this argument; keep the prior set
		// rather than emptying it, so a later argument still has
		// candidates to eliminate from.
	}

	// 7. First remaining candidate wins; declaration order is the
	// tie-break since candidates were generated in signature order.
	if len(remaining) == 0 {
		r.cache.Insert(key, -1, false)
		return -1, false
	}
	winner := remaining[0].sigIndex
	r.cache.Insert(key, winner, true)
	return winner, true
}

// candidateAdmits implements the nullability-ignoring elimination
// predicate for one argument/parameter pair: deep-unwrapped assignability,
// or a literal-kind promotion (integer literal -> any numeric; float
// literal -> any float, never integer).
func (r *OverloadResolver) candidateAdmits(arg Argument, paramT swifttype.Type) bool {
	argT := swifttype.DeepUnwrapped(arg.Type)
	paramUnwrapped := swifttype.DeepUnwrapped(paramT)
	if r.sys.IsAssignable(argT, paramUnwrapped) {
		return true
	}
	if !arg.IsLiteral {
		return false
	}
	switch arg.LiteralKind {
	case ast.LiteralInteger:
		return isNumericType(paramUnwrapped)
	case ast.LiteralFloat:
		return isFloatType(paramUnwrapped)
	default:
		return false
	}
}

func isNumericType(t swifttype.Type) bool {
	n, ok := t.(swifttype.Nominal)
	return ok && (integerTypeNames[n.Name] || floatTypeNames[n.Name])
}

func isFloatType(t swifttype.Type) bool {
	n, ok := t.(swifttype.Nominal)
	return ok && floatTypeNames[n.Name]
}

func allConcrete(arguments []Argument) bool {
	for _, a := range arguments {
		if a.IsMissingType() {
			return false
		}
	}
	return true
}

func selectorParamCount(sel swifttype.SelectorSignature) int {
	return sel.ArgumentCount()
}

// cacheKey canonicalizes (signatures, arguments) into a single string, per
// spec §4.4 "key is (signatures, arguments)".
func cacheKey(signatures []swifttype.FunctionSignature, arguments []Argument) string {
	var sb strings.Builder
	for i, s := range signatures {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(s.Name)
		for _, p := range s.Parameters {
			sb.WriteByte(',')
			sb.WriteString(p.Label)
			sb.WriteByte(':')
			if p.Type != nil {
				sb.WriteString(p.Type.Key())
			}
			if p.HasDefault {
				sb.WriteString("=")
			}
		}
	}
	sb.WriteString("|")
	for i, a := range arguments {
		if i > 0 {
			sb.WriteByte(',')
		}
		if a.Type != nil {
			sb.WriteString(a.Type.Key())
		} else {
			sb.WriteString("?")
		}
		if a.IsLiteral {
			sb.WriteString("#L")
		}
	}
	return sb.String()
}

// ResolutionCache is the overload resolver's concurrency-safe memoization
// layer (spec §4.4.1/§5): readers take shared access, writers exclusive;
// enable/teardown are exclusive and idempotent. When disabled, Lookup
// always misses and Insert is a no-op.
type ResolutionCache struct {
	mu      sync.RWMutex
	enabled bool
	entries map[string]cacheEntry
}

type cacheEntry struct {
	index int
	ok    bool
}

// NewResolutionCache builds a disabled cache; call Enable to activate it.
func NewResolutionCache() *ResolutionCache {
	return &ResolutionCache{}
}

// Enable turns on caching. Idempotent.
func (c *ResolutionCache) Enable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.enabled {
		return
	}
	c.enabled = true
	c.entries = make(map[string]cacheEntry)
}

// Teardown disables caching and discards all entries. Idempotent.
func (c *ResolutionCache) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = false
	c.entries = nil
}

// Enabled reports whether the cache is currently active.
func (c *ResolutionCache) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// Lookup returns (index, found, ok) where found reports whether key was
// cached at all (including negative results) and ok reports whether that
// cached result was itself a successful resolution.
func (c *ResolutionCache) Lookup(key string) (index int, found bool, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.enabled {
		return -1, false, false
	}
	e, present := c.entries[key]
	if !present {
		return -1, false, false
	}
	return e.index, true, e.ok
}

// Insert stores a resolution (possibly negative, ok=false) under key.
// No-op when the cache is disabled.
func (c *ResolutionCache) Insert(key string, index int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	c.entries[key] = cacheEntry{index: index, ok: ok}
}
