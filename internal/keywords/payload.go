package keywords

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// MarshalJSON encodes the set as {category: [sorted keywords...]}.
func (s Set) MarshalJSON() ([]byte, error) {
	out := make(map[Category][]string, len(Categories))
	for _, c := range Categories {
		out[c] = s.Keywords(c)
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts stored keyword payloads where a category holds a JSON
// list, a JSON-encoded list inside a string, or a comma-separated string.
// Unknown keys (such as a derived "all_keywords") are ignored. A keyword listed
// under several categories lands in the earliest one of Categories.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode keyword set: %w", err)
	}

	// keys sorted so aliases of one category are read in a fixed order
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lists := make(map[Category][]string, len(Categories))
	for _, key := range keys {
		c, err := ParseCategory(key)
		if err != nil {
			continue
		}
		list, err := DecodeList(raw[key])
		if err != nil {
			return fmt.Errorf("decode %s: %w", c, err)
		}
		lists[c] = append(lists[c], list...)
	}

	b := NewBuilder()
	for _, c := range Categories {
		for _, kw := range lists[c] {
			b.Add(c, kw)
		}
	}

	*s = b.Build()
	return nil
}

// DecodeList converts a loosely typed keyword payload into a string list.
// Accepted shapes: nil, string, []string, []any of strings.
func DecodeList(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return cleanList(v), nil
	case []any:
		items := make([]string, 0, len(v))
		for i, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("item %d: expected string, got %T", i, item)
			}
			items = append(items, str)
		}
		return cleanList(items), nil
	case string:
		return decodeString(v), nil
	default:
		return nil, fmt.Errorf("unsupported keyword payload type %T", value)
	}
}

func decodeString(v string) []string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			return cleanList(items)
		}
	}

	return cleanList(strings.Split(trimmed, ","))
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.Trim(strings.TrimSpace(item), `"'`)
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
