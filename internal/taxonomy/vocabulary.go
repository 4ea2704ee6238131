package taxonomy

import (
	"fmt"
	"strings"
)

// Option is one allowed value of a dimension: its stable key and the text
// shown to people.
type Option struct {
	Key   string
	Label string
}

// vocabulary maps the integer values of one enum type to their keys and
// display labels. Value i+1 corresponds to keys[i]; zero is "unset".
type vocabulary[T ~int] struct {
	name   string
	keys   []string
	labels []string
}

func (v vocabulary[T]) valid(x T) bool {
	return x >= 1 && int(x) <= len(v.keys)
}

func (v vocabulary[T]) key(x T) string {
	if !v.valid(x) {
		return ""
	}
	return v.keys[int(x)-1]
}

func (v vocabulary[T]) label(x T) string {
	if !v.valid(x) {
		return ""
	}
	return v.labels[int(x)-1]
}

// parse accepts either the key or the label, ignoring case and surrounding
// whitespace. Labels are accepted so that files written by older exports,
// which stored display text, still decode.
func (v vocabulary[T]) parse(s string) (T, error) {
	s = strings.TrimSpace(s)
	for i := range v.keys {
		if strings.EqualFold(s, v.keys[i]) || strings.EqualFold(s, v.labels[i]) {
			return T(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown %s value %q", v.name, s)
}

func (v vocabulary[T]) marshal(x T) ([]byte, error) {
	if !v.valid(x) {
		return nil, fmt.Errorf("invalid %s value %d", v.name, int(x))
	}
	return []byte(v.keys[int(x)-1]), nil
}

func (v vocabulary[T]) unmarshal(dst *T, b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*dst = 0
		return nil
	}
	x, err := v.parse(string(b))
	if err != nil {
		return err
	}
	*dst = x
	return nil
}

func (v vocabulary[T]) options() []Option {
	out := make([]Option, len(v.keys))
	for i := range v.keys {
		out[i] = Option{Key: v.keys[i], Label: v.labels[i]}
	}
	return out
}

// parseSet parses every value and drops duplicates, keeping first-seen order.
// No value yields nil.
func (v vocabulary[T]) parseSet(values []string) ([]T, error) {
	out := make([]T, 0, len(values))
	for _, s := range values {
		if strings.TrimSpace(s) == "" {
			continue
		}
		x, err := v.parse(s)
		if err != nil {
			return nil, err
		}
		out = appendUnique(out, x)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// parseOne parses a single-select value. No value (or an empty one) unsets it.
func (v vocabulary[T]) parseOne(values []string) (T, error) {
	switch len(values) {
	case 0:
		return 0, nil
	case 1:
		if strings.TrimSpace(values[0]) == "" {
			return 0, nil
		}
		return v.parse(values[0])
	default:
		return 0, fmt.Errorf("%s accepts a single value, got %d", v.name, len(values))
	}
}

func (v vocabulary[T]) checkOne(x T) error {
	if x != 0 && !v.valid(x) {
		return fmt.Errorf("%s: invalid value %d", v.name, int(x))
	}
	return nil
}

func (v vocabulary[T]) checkSet(xs []T) error {
	seen := make(map[T]bool, len(xs))
	for _, x := range xs {
		if !v.valid(x) {
			return fmt.Errorf("%s: invalid value %d", v.name, int(x))
		}
		if seen[x] {
			return fmt.Errorf("%s: duplicate value %s", v.name, v.key(x))
		}
		seen[x] = true
	}
	return nil
}

func appendUnique[T comparable](s []T, x T) []T {
	for _, y := range s {
		if y == x {
			return s
		}
	}
	return append(s, x)
}

// dedup drops repeated values. An empty selection is nil.
func dedup[T comparable](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, 0, len(s))
	for _, x := range s {
		out = appendUnique(out, x)
	}
	return out
}

// toggle returns a new slice with x removed if present, appended otherwise.
// An emptied selection is nil.
func toggle[T comparable](s []T, x T) []T {
	out := make([]T, 0, len(s)+1)
	found := false
	for _, y := range s {
		if y == x {
			found = true
			continue
		}
		out = append(out, y)
	}
	if !found {
		out = append(out, x)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func keysOf[T ~int](v vocabulary[T], xs []T) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, v.key(x))
	}
	return out
}
