package idlist

import "strings"

// ParseCommaSeparated splits raw on commas, trims every piece and drops the
// empty ones. Order and duplicates are preserved. Blank input yields an empty,
// non-nil list.
func ParseCommaSeparated(raw string) List {
	if strings.TrimSpace(raw) == "" {
		return List{}
	}

	pieces := strings.Split(raw, ",")
	ids := make(List, 0, len(pieces))
	for _, piece := range pieces {
		id := strings.TrimSpace(piece)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Add returns a copy of l with every id in ids that is not yet present
// appended in order.
func (l List) Add(ids ...string) List {
	out := make(List, len(l), len(l)+len(ids))
	copy(out, l)

	seen := make(map[string]struct{}, len(out)+len(ids))
	for _, id := range out {
		seen[id] = struct{}{}
	}
	for _, id := range ids {
		if _, exists := seen[id]; exists {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Remove returns a copy of l without the first occurrence of each id in ids.
func (l List) Remove(ids ...string) List {
	out := make(List, len(l))
	copy(out, l)

	for _, id := range ids {
		for i, existing := range out {
			if existing == id {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}
