package models

// Herb is an immutable catalog record.
type Herb struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	NameZh      string   `json:"nameZh"`
	NamePinyin  string   `json:"namePinyin"`
	Family      string   `json:"family,omitempty"`
	Property    string   `json:"property,omitempty"`
	Flavor      []string `json:"flavor,omitempty"`
	Meridians   []string `json:"meridians,omitempty"`
	Indications []string `json:"indications,omitempty"`
	SourceURL   string   `json:"sourceUrl,omitempty"`
}

// DisplayName is the name used for bucketing and ordering: the pinyin
// name when present, the Chinese name otherwise.
func (h Herb) DisplayName() string {
	if h.NamePinyin != "" {
		return h.NamePinyin
	}
	return h.NameZh
}

// Section groups herbs under one index letter ("A".."Z" or "#").
type Section struct {
	Title string `json:"title"`
	Data  []Herb `json:"data"`
}

// Category of a home feed item.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryHerbs       Category = "herbs"
	CategoryRecipes     Category = "recipes"
	CategoryFormulas    Category = "formulas"
	CategoryAcupuncture Category = "acupuncture"
)

// Item is a card of the home feed.
type Item struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Category Category `json:"category"`
	Color    string   `json:"color"`
}
