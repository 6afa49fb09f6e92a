package pipeline

import (
	"sort"
	"strings"

	"ExtratoAnalytics/api/constants"
)

// KeywordMap maps keywords to category labels, remembering insertion order so
// that equally long keywords match deterministically.
type KeywordMap struct {
	order      []string
	categories map[string]string
}

func NewKeywordMap() *KeywordMap {
	return &KeywordMap{categories: make(map[string]string)}
}

// Set registers or overwrites a keyword. Overwrites keep the keyword's
// original position (last write wins for the category).
func (m *KeywordMap) Set(keyword, category string) {
	if _, ok := m.categories[keyword]; !ok {
		m.order = append(m.order, keyword)
	}
	m.categories[keyword] = category
}

func (m *KeywordMap) Category(keyword string) (string, bool) {
	c, ok := m.categories[keyword]
	return c, ok
}

func (m *KeywordMap) Len() int {
	return len(m.order)
}

// Keywords returns the keywords in insertion order.
func (m *KeywordMap) Keywords() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// HasCategory reports whether any keyword maps to the given label.
func (m *KeywordMap) HasCategory(label string) bool {
	for _, c := range m.categories {
		if c == label {
			return true
		}
	}
	return false
}

// FromCategories builds a map where each label acts as its own keyword, the
// shape used by the procedure pipeline's flat category list.
func FromCategories(labels []string) *KeywordMap {
	m := NewKeywordMap()
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label != "" {
			m.Set(label, label)
		}
	}
	return m
}

// LoadKeywordMap reads a category sheet: column 0 carries group labels that
// forward-fill across blank rows, column 1 the keyword. Extra columns are
// ignored. Keyword rows seen before any group label are dropped.
func LoadKeywordMap(rows [][]string) (*KeywordMap, error) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width < 2 {
		return nil, Errorf(KindInputShape, "category sheet needs at least two columns, got %d", width)
	}
	m := NewKeywordMap()
	group := ""
	for _, row := range rows {
		if len(row) > 0 {
			if g := strings.TrimSpace(row[0]); g != "" {
				group = g
			}
		}
		if len(row) < 2 {
			continue
		}
		keyword := strings.TrimSpace(row[1])
		if keyword == "" || group == "" {
			continue
		}
		m.Set(keyword, group)
	}
	return m, nil
}

// MatchOptions tune keyword matching.
type MatchOptions struct {
	// WholeWordMaxLen forces word-boundary matching for keywords of at most
	// this length. Zero keeps plain substring matching everywhere.
	WholeWordMaxLen int
	// Aliases lists extra substrings that also count as a match for a keyword,
	// e.g. VITAMINA matching descriptions that only mention B12. Keys are
	// uppercase keywords.
	Aliases map[string][]string
}

// Categorize resolves a description to a category by longest-keyword
// substring match, case-insensitive. No match yields the reserved fallback.
func (m *KeywordMap) Categorize(description string, opts MatchOptions) string {
	desc := strings.ToUpper(strings.TrimSpace(description))
	if desc == "" {
		return constants.CategoryFallback
	}
	keys := m.Keywords()
	sort.SliceStable(keys, func(i, j int) bool {
		return len(keys[i]) > len(keys[j])
	})
	for _, kw := range keys {
		if m.keywordMatches(kw, desc, opts) {
			return m.categories[kw]
		}
	}
	return constants.CategoryFallback
}

func (m *KeywordMap) keywordMatches(kw, upperDesc string, opts MatchOptions) bool {
	upperKw := strings.ToUpper(kw)
	if opts.WholeWordMaxLen > 0 && len(upperKw) <= opts.WholeWordMaxLen {
		if containsWord(upperDesc, upperKw) {
			return true
		}
	} else if strings.Contains(upperDesc, upperKw) {
		return true
	}
	for _, alias := range opts.Aliases[upperKw] {
		if strings.Contains(upperDesc, strings.ToUpper(alias)) {
			return true
		}
	}
	return false
}

// containsWord reports a substring match whose neighbours are not letters or
// digits.
func containsWord(s, word string) bool {
	for start := 0; ; {
		idx := strings.Index(s[start:], word)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(word)
		leftOK := idx == 0 || !isWordByte(s[idx-1])
		rightOK := end >= len(s) || !isWordByte(s[end])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
