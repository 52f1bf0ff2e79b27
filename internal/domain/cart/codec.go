package cart

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Marshal serializes entries into the session blob layout: an ordered JSON array
// of {name, price, quantity, image} records.
func Marshal(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}

// Decode parses a session blob. Only a blob that is not a JSON array is an error;
// individual records are read permissively:
//   - price may be a string or a number, anything else becomes "0"
//   - quantity may be a number or a numeric string, anything else becomes 0
//   - records without a name or with quantity below 1 are dropped
//   - repeated names are merged into the first occurrence, capped at MaxQuantity
func Decode(blob []byte) ([]Entry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode session cart: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	index := make(map[string]int, len(raw))

	for _, item := range raw {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			continue
		}

		entry := Entry{
			Name:     decodeString(fields["name"]),
			Price:    decodePrice(fields["price"]),
			Quantity: decodeQuantity(fields["quantity"]),
			Image:    decodeString(fields["image"]),
		}

		if entry.Name == "" || entry.Quantity < 1 {
			continue
		}

		if i, ok := index[entry.Name]; ok {
			entries[i].Quantity = clampQuantity(entries[i].Quantity + entry.Quantity)
			continue
		}

		index[entry.Name] = len(entries)
		entries = append(entries, entry)
	}

	return entries, nil
}

func decodeString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func decodePrice(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "0"
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		var number json.Number
		if err := json.Unmarshal(raw, &number); err != nil {
			return "0"
		}
		text = number.String()
	}

	if _, err := ParsePrice(text); err != nil {
		return "0"
	}
	return strings.TrimSpace(text)
}

func decodeQuantity(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		var number json.Number
		if err := json.Unmarshal(raw, &number); err != nil {
			return 0
		}
		text = number.String()
	}

	return parseQuantity(text)
}

// parseQuantity reads a whole number of items. Fractional input is truncated,
// values above MaxQuantity are capped and anything non-numeric is 0.
func parseQuantity(text string) int {
	text = strings.TrimSpace(text)
	if n, err := strconv.Atoi(text); err == nil {
		return clampQuantity(n)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
		return 0
	}
	if f > MaxQuantity {
		return MaxQuantity
	}
	return int(f)
}

// clampQuantity caps q at MaxQuantity. Values below 1 are returned unchanged
// so callers can treat them as removals.
func clampQuantity(q int) int {
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
