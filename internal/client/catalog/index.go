package catalog

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/dmitrijs2005/herbalist/internal/client/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// OtherLetter is the bucket for names that do not start with A-Z.
const OtherLetter = "#"

// Index is the alphabetical grouping of a herb list. Sections[i].Title
// equals Letters[i].
type Index struct {
	Sections []models.Section
	Letters  []string
}

// NormalizeLetter maps a name to its index letter: the upper-cased first
// character when it is A-Z, OtherLetter otherwise (including "").
func NormalizeLetter(s string) string {
	s = strings.TrimSpace(s)
	for _, r := range s {
		r = unicode.ToUpper(r)
		if r >= 'A' && r <= 'Z' {
			return string(r)
		}
		break
	}
	return OtherLetter
}

// Build groups herbs by the index letter of their display name. Letters are
// ordered A-Z with OtherLetter last; herbs inside a section are ordered by
// display name using English collation. Every input herb lands in exactly
// one section.
func Build(list []models.Herb) Index {
	buckets := make(map[string][]models.Herb)
	var letters []string
	for _, h := range list {
		l := NormalizeLetter(h.DisplayName())
		if _, ok := buckets[l]; !ok {
			letters = append(letters, l)
		}
		buckets[l] = append(buckets[l], h)
	}

	sort.Slice(letters, func(i, j int) bool {
		a, b := letters[i], letters[j]
		if a == OtherLetter || b == OtherLetter {
			return b == OtherLetter && a != OtherLetter
		}
		return a < b
	})

	col := collate.New(language.English)
	idx := Index{
		Sections: make([]models.Section, 0, len(letters)),
		Letters:  letters,
	}
	for _, l := range letters {
		data := buckets[l]
		sort.SliceStable(data, func(i, j int) bool {
			return col.CompareString(data[i].DisplayName(), data[j].DisplayName()) < 0
		})
		idx.Sections = append(idx.Sections, models.Section{Title: l, Data: data})
	}
	if idx.Letters == nil {
		idx.Letters = []string{}
	}
	return idx
}

var defaultIndex = sync.OnceValue(func() Index { return Build(Herbs()) })

// Default returns the index of the static dataset. It is computed once;
// every call hands out its own copy.
func Default() Index {
	return defaultIndex().clone()
}

// Sections of the static dataset.
func Sections() []models.Section {
	return Default().Sections
}

// Letters of the static dataset.
func Letters() []string {
	return Default().Letters
}

func (x Index) clone() Index {
	return Index{Sections: cloneSections(x.Sections), Letters: append([]string{}, x.Letters...)}
}

func cloneSections(in []models.Section) []models.Section {
	out := make([]models.Section, len(in))
	for i, s := range in {
		out[i] = models.Section{Title: s.Title, Data: append([]models.Herb(nil), s.Data...)}
	}
	return out
}

// SectionFor returns the position of letter in the index. The letter is
// normalized first, so "q" finds "Q". ok is false when no section exists.
func (x Index) SectionFor(letter string) (int, bool) {
	l := NormalizeLetter(letter)
	for i, t := range x.Letters {
		if t == l {
			return i, true
		}
	}
	return 0, false
}

// Search keeps the herbs whose pinyin name, Chinese name, slug or family
// contains query, case-insensitively. Section order is preserved and empty
// sections are dropped. A blank query returns a copy of every section.
func (x Index) Search(query string) []models.Section {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return cloneSections(x.Sections)
	}

	var out []models.Section
	for _, s := range x.Sections {
		var hits []models.Herb
		for _, h := range s.Data {
			if matches(h, q) {
				hits = append(hits, h)
			}
		}
		if len(hits) > 0 {
			out = append(out, models.Section{Title: s.Title, Data: hits})
		}
	}
	return out
}

func matches(h models.Herb, q string) bool {
	for _, f := range []string{h.NamePinyin, h.NameZh, h.Slug, h.Family} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
