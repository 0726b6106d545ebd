// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

import "sort"

// Args carries positional and named values from one step into the next.
// A step that returns Args has its values handed to the following step;
// any other return value is not forwarded. Args is immutable: constructors
// copy their inputs and With returns a new bundle.
type Args struct {
	pos   []any
	named map[string]any
}

// Bundle returns Args holding the given positional values.
func Bundle(pos ...any) Args {
	return NewArgs(pos, nil)
}

// NewArgs returns Args holding copies of pos and named.
func NewArgs(pos []any, named map[string]any) Args {
	var a Args
	if len(pos) > 0 {
		a.pos = append([]any(nil), pos...)
	}
	if len(named) > 0 {
		a.named = make(map[string]any, len(named))
		for k, v := range named {
			a.named[k] = v
		}
	}
	return a
}

// With returns a copy of a with the named value key set to v.
func (a Args) With(key string, v any) Args {
	named := make(map[string]any, len(a.named)+1)
	for k, old := range a.named {
		named[k] = old
	}
	named[key] = v
	return Args{pos: a.pos, named: named}
}

// Apply calls fn with a and returns fn's result.
func (a Args) Apply(fn Func) (any, error) {
	return fn(a)
}

// Len returns the number of positional values.
func (a Args) Len() int { return len(a.pos) }

// At returns the i-th positional value, or nil when i is out of range.
func (a Args) At(i int) any {
	if i < 0 || i >= len(a.pos) {
		return nil
	}
	return a.pos[i]
}

// Lookup returns the named value for key.
func (a Args) Lookup(key string) (any, bool) {
	v, ok := a.named[key]
	return v, ok
}

// Names returns the named keys in sorted order.
func (a Args) Names() []string {
	keys := make([]string, 0, len(a.named))
	for k := range a.named {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsEmpty reports whether a holds no positional and no named values.
func (a Args) IsEmpty() bool {
	return len(a.pos) == 0 && len(a.named) == 0
}

// Arg returns the i-th positional value of a as T.
// ok is false when i is out of range or the value is not a T.
func Arg[T any](a Args, i int) (v T, ok bool) {
	v, ok = a.At(i).(T)
	return
}

// Named returns the named value key of a as T.
func Named[T any](a Args, key string) (v T, ok bool) {
	raw, found := a.named[key]
	if !found {
		return v, false
	}
	v, ok = raw.(T)
	return
}

// AccumKind tags the value threaded between consecutive steps.
type AccumKind uint8

const (
	// AccumEmpty: the previous step returned nil, or no step has run.
	AccumEmpty AccumKind = iota
	// AccumBundle: the previous step returned Args.
	AccumBundle
	// AccumOpaque: the previous step returned any other value.
	// It is dropped when feeding the next step, but is the plan result
	// when produced by the last step.
	AccumOpaque
)

// Accum is the accumulator value threaded through a plan.
type Accum struct {
	kind  AccumKind
	value any
}

func accumOf(v any) Accum {
	switch v.(type) {
	case nil:
		return Accum{kind: AccumEmpty}
	case Args:
		return Accum{kind: AccumBundle, value: v}
	default:
		return Accum{kind: AccumOpaque, value: v}
	}
}

// Kind returns the accumulator tag.
func (a Accum) Kind() AccumKind { return a.kind }

// Value returns the raw value the producing step returned.
func (a Accum) Value() any { return a.value }

// input returns the arguments the next step receives.
func (a Accum) input() Args {
	switch a.kind {
	case AccumBundle:
		return a.value.(Args)
	case AccumEmpty, AccumOpaque:
		return Args{}
	}
	panic("ambi: unknown accumulator kind")
}
