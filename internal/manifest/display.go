package manifest

import (
	"sort"

	"golang.org/x/text/language"
)

// fallbackLocale is tried first when nothing matches the requested locale.
const fallbackLocale = "en"

// DisplayName returns the human-readable name that best matches tag. Nodes
// without display names, or with only unparseable locale keys, are shown by
// their ID.
func (n *Node) DisplayName(tag language.Tag) string {
	keys := make([]string, 0, len(n.DisplayNames))
	for key := range n.DisplayNames {
		if key == fallbackLocale {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	// The matcher falls back to its first tag when nothing matches.
	if _, ok := n.DisplayNames[fallbackLocale]; ok {
		keys = append([]string{fallbackLocale}, keys...)
	}

	tags := make([]language.Tag, 0, len(keys))
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		parsed, err := language.Parse(key)
		if err != nil {
			continue
		}
		tags = append(tags, parsed)
		names = append(names, n.DisplayNames[key])
	}
	if len(tags) == 0 {
		return n.ID
	}

	_, idx, _ := language.NewMatcher(tags).Match(tag)
	return names[idx]
}
