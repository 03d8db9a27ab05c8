// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// CollectionKind identifies the container shape of a parsed Collection.
type CollectionKind int

const (
	// ListKind is an ordered sequence of strings. It is the fallback
	// kind when no other shape can be determined.
	ListKind CollectionKind = iota

	// TupleKind is an ordered sequence of strings parsed from a
	// parenthesis delimited raw value.
	TupleKind

	// SetKind is a deduplicated sequence of strings.
	SetKind

	// MapKind is a mapping from string keys to string values.
	MapKind
)

// String implements the fmt.Stringer interface.
func (k CollectionKind) String() string {
	switch k {
	case ListKind:
		return "list"
	case TupleKind:
		return "tuple"
	case SetKind:
		return "set"
	case MapKind:
		return "map"
	default:
		return fmt.Sprintf("CollectionKind(%d)", int(k))
	}
}

// Collection is the result of parsing a raw collection string. Items is
// populated for list, tuple and set kinds, Pairs for the map kind. Set
// items are deduplicated preserving first occurrence order.
type Collection struct {
	Kind  CollectionKind
	Items []string
	Pairs map[string]string
}

type collectionOptions struct {
	kind    CollectionKind
	hasKind bool
}

// CollectionOption configures how a raw collection string is parsed.
type CollectionOption func(*collectionOptions)

// TargetKind requests an explicit container kind instead of inferring
// one from the raw value. Requesting MapKind makes malformed key/value
// pairing a ConversionError instead of falling back to a sequence.
func TargetKind(k CollectionKind) CollectionOption {
	return func(co *collectionOptions) {
		co.kind = k
		co.hasKind = true
	}
}

// CollectionFromString parses the raw string read from r into a
// Collection. The raw value is tokenized on whitespace after stripping
// surrounding brackets, reassembled into a bounded string tuple literal
// and then shaped into a list, tuple, set or map.
func CollectionFromString(r Reader[string], opts ...CollectionOption) Reader[Collection] {
	var co collectionOptions
	for _, opt := range opts {
		opt(&co)
	}

	return Map(r, func(_ context.Context, s string) (Collection, error) {
		return parseCollection(s, co)
	})
}

func parseCollection(raw string, co collectionOptions) (Collection, error) {
	items, err := parseItems(raw)
	if err != nil {
		return Collection{}, err
	}

	if co.hasKind {
		return collectionOfKind(raw, co.kind, items)
	}
	return inferCollection(raw, items), nil
}

func collectionOfKind(raw string, kind CollectionKind, items []string) (Collection, error) {
	pairs, perr := pairItems(items)
	if kind == MapKind {
		if perr != nil {
			return Collection{}, ConversionError{Raw: raw, Cause: perr}
		}
		return Collection{Kind: MapKind, Pairs: pairs}, nil
	}

	// Key/value structure takes precedence even when another kind
	// was requested.
	if perr == nil {
		return Collection{Kind: MapKind, Pairs: pairs}, nil
	}
	return newCollection(kind, items), nil
}

func inferCollection(raw string, items []string) Collection {
	if pairs, err := pairItems(items); err == nil {
		return Collection{Kind: MapKind, Pairs: pairs}
	}

	kind := bracketKind(strings.TrimSpace(raw))
	if kind == MapKind {
		// Key/value construction already failed, so brace delimited
		// input must be a set of strings.
		kind = SetKind
	}
	return newCollection(kind, items)
}

func newCollection(kind CollectionKind, items []string) Collection {
	if kind == SetKind {
		items = dedupeItems(items)
	}
	return Collection{Kind: kind, Items: items}
}

var errOddPairCount = errors.New("key/value pairs require an even number of items")

// pairItems attempts to shape a flat item sequence into key/value pairs.
// Keys must end with a colon, values must not. Keys are stored with the
// trailing colon and any wrapping quotes removed.
func pairItems(items []string) (map[string]string, error) {
	if len(items)%2 != 0 {
		return nil, errOddPairCount
	}

	pairs := make(map[string]string, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		k, v := items[i], items[i+1]
		if !strings.HasSuffix(k, ":") || strings.HasSuffix(v, ":") {
			return nil, fmt.Errorf("pair %d is not a key followed by a value", i/2)
		}

		key := strings.TrimSuffix(k, ":")
		key = strings.Trim(key, `"`)
		key = strings.Trim(key, "'")
		pairs[key] = v
	}
	return pairs, nil
}

// bracketKind inspects the first and last characters of the trimmed raw
// string to identify a bracket family. Anything which is not a
// recognized bracket pair defaults to a list.
func bracketKind(trimmed string) CollectionKind {
	if len(trimmed) == 0 {
		return ListKind
	}

	switch string(trimmed[0]) + string(trimmed[len(trimmed)-1]) {
	case "[]":
		return ListKind
	case "()":
		return TupleKind
	case "{}":
		return MapKind
	default:
		return ListKind
	}
}

func dedupeItems(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	deduped := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		deduped = append(deduped, item)
	}
	return deduped
}
