// Package props provides the render-time prop merging helpers consumed by
// code that Weft generates. Generated components collect attribute sets from
// several sources (variant defaults, overrides passed by the host app, slot
// args) and fold them into the final set applied to an element.
package props

import (
	"reflect"
	"strings"
)

// Props is an attribute set: a mapping from attribute name to a value of
// heterogeneous type (string, style map, handler func, nested value).
type Props map[string]any

// suppressValue and noValue are unexported types so no caller-supplied value
// can collide with the sentinels. Identity is by type, like context keys.
type suppressValue struct{}
type noValue struct{}

// Suppress forces an attribute to resolve to an explicit "no value" in the
// merged result, regardless of what any other attribute set supplies for the
// same key. Once seen on either side of a merge, it always wins.
var Suppress any = suppressValue{}

// NoValue is the marker a suppressed attribute resolves to. The rendering
// layer treats it as absent (renders nothing for the attribute). It is
// distinct from a missing key and from nil.
var NoValue any = noValue{}

// IsNoValue reports whether v is the explicit no-value marker.
func IsNoValue(v any) bool {
	_, ok := v.(noValue)
	return ok
}

func isSuppressed(v any) bool {
	switch v.(type) {
	case suppressValue, noValue:
		return true
	}
	return false
}

// MergeValue combines the values two attribute sets supply for the same key.
// The policy, checked in order:
//
//   - Suppress (or an already-suppressed value) on either side wins: NoValue.
//   - A nil side yields the other side.
//   - Differing dynamic types yield the right side, no coercion attempted.
//   - "className" concatenates tokens, left first. Duplicates are kept.
//   - "style" is a shallow union of both maps; right wins per-key collisions.
//   - Event handler keys (onClick, onChange, ...) with matching func types
//     chain both handlers; see chainHandlers.
//   - Anything else: the right side wins.
func MergeValue(key string, left, right any) any {
	if isSuppressed(left) || isSuppressed(right) {
		return NoValue
	}
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	if reflect.TypeOf(left) != reflect.TypeOf(right) {
		return right
	}
	switch {
	case key == "className":
		if l, ok := left.(string); ok {
			return JoinClassNames(l, right.(string))
		}
	case key == "style":
		if l, ok := left.(map[string]any); ok {
			return mergeStyles(l, right.(map[string]any))
		}
	case isEventHandlerKey(key) && reflect.TypeOf(left).Kind() == reflect.Func:
		return chainHandlers(left, right)
	}
	return right
}

// Merge folds overrides onto base left to right, key by key, using
// MergeValue. Keys present only in an override are added; keys present only
// in base are kept unless suppressed. Merge never mutates its inputs.
func Merge(base Props, overrides ...Props) Props {
	merged := make(Props, len(base))
	for k, v := range base {
		if isSuppressed(v) {
			merged[k] = NoValue
			continue
		}
		merged[k] = v
	}
	for _, override := range overrides {
		for k, v := range override {
			merged[k] = MergeValue(k, merged[k], v)
		}
	}
	return merged
}

// JoinClassNames joins class tokens with single spaces, skipping empty
// parts. Tokens are concatenated, not deduplicated; CSS class semantics make
// repeats harmless and order can matter to downstream tooling.
func JoinClassNames(parts ...string) string {
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, strings.Fields(p)...)
	}
	return strings.Join(tokens, " ")
}

func mergeStyles(left, right map[string]any) map[string]any {
	merged := make(map[string]any, len(left)+len(right))
	for k, v := range left {
		merged[k] = v
	}
	for k, v := range right {
		merged[k] = v
	}
	return merged
}

// isEventHandlerKey reports whether the attribute uses the on-event naming
// convention: "on" followed by an upper-case letter.
func isEventHandlerKey(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n' && key[2] >= 'A' && key[2] <= 'Z'
}

// chainHandlers wraps two handlers of the same func type into one that
// invokes left then right with identical arguments. Both always run; the
// return value is the right side's unless it is all zero values, in which
// case the left side's result stands.
func chainHandlers(left, right any) any {
	lv := reflect.ValueOf(left)
	rv := reflect.ValueOf(right)
	t := lv.Type()

	wrapped := reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		lout := call(lv, args)
		rout := call(rv, args)
		if len(rout) == 0 {
			return rout
		}
		for _, out := range rout {
			if !out.IsZero() {
				return rout
			}
		}
		return lout
	})
	return wrapped.Interface()
}

func call(fn reflect.Value, args []reflect.Value) []reflect.Value {
	if fn.Type().IsVariadic() {
		return fn.CallSlice(args)
	}
	return fn.Call(args)
}
