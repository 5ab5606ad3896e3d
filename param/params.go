// Package param: free functions over List.
//
// All lookup functions use first-match semantics; all mutating functions
// return the (possibly regrown) list, so the idiomatic call site is
// reassignment: params = param.Insert(params, name, value).
package param

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Find returns the index of the first entry whose name equals name,
// or -1 if no entry matches.
func Find(params List, name string) int {
	for i := range params {
		if params[i].Name == name {
			return i
		}
	}

	return -1
}

// Contains reports whether params holds an entry named name.
func Contains(params List, name string) bool {
	return Find(params, name) >= 0
}

// Get returns the value of the first entry named name, or the empty
// string if absent. An absent name and a stored empty value are not
// distinguished by this accessor; use Contains when the difference matters.
func Get(params List, name string) string {
	if i := Find(params, name); i >= 0 {
		return params[i].Value
	}

	return ""
}

// Insert sets name to value: if name is present its value is overwritten
// in place, preserving its position; otherwise a new entry is appended.
func Insert(params List, name, value string) List {
	if i := Find(params, name); i >= 0 {
		params[i].Value = value

		return params
	}

	return append(params, Param{Name: name, Value: value})
}

// InsertValue formats value to a string and then behaves exactly like
// Insert. A string value passes through unchanged, so Insert and
// InsertValue are indistinguishable from the caller's perspective.
func InsertValue[T any](params List, name string, value T) List {
	return Insert(params, name, formatValue(value))
}

// Merge copies every entry of other into params with Insert's
// update-or-append rule.
//
// With a non-empty prefix each merged name becomes
// "<prefix> <name-with-lowercased-first-letter>", so a composite object
// can expose a nested sub-object's parameters under a qualified name
// without the sub-object knowing it is nested: merging "Radius" under
// prefix "Inner" yields the key "Inner radius". With an empty prefix names
// are merged verbatim.
func Merge(params List, other List, prefix string) List {
	if prefix == "" {
		for _, p := range other {
			params = Insert(params, p.Name, p.Value)
		}

		return params
	}
	for _, p := range other {
		params = Insert(params, prefix+" "+lowerFirst(p.Name), p.Value)
	}

	return params
}

// Remove deletes the first entry named name, preserving the order of the
// remaining entries. Removing an absent name leaves params unchanged.
func Remove(params List, name string) List {
	if i := Find(params, name); i >= 0 {
		return append(params[:i], params[i+1:]...)
	}

	return params
}

// lowerFirst lowercases the first rune of s.
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// formatValue renders an arbitrary value as a parameter string.
// Numeric and boolean values use their shortest exact representation;
// anything else falls back to its fmt rendering.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
