package catalog

import (
	"testing"

	"github.com/dmitrijs2005/herbalist/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLetter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Huangqi", "H"},
		{"huangqi", "H"},
		{"  zhizi", "Z"},
		{"3hao cao", "#"},
		{"黄芪", "#"},
		{"", "#"},
		{"   ", "#"},
		{"#", "#"},
		{"éclair", "#"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLetter(tt.in))
		})
	}
}

func TestDefault_StaticDataset(t *testing.T) {
	idx := Default()

	want := []string{"B", "C", "D", "E", "F", "G", "H", "J", "K", "L", "M", "N",
		"O", "P", "Q", "R", "S", "T", "W", "X", "Y", "Z", "#"}
	assert.Equal(t, want, idx.Letters)
	require.Len(t, idx.Sections, len(idx.Letters))

	for i, s := range idx.Sections {
		assert.Equal(t, idx.Letters[i], s.Title)
	}

	h, ok := idx.SectionFor("H")
	require.True(t, ok)
	names := []string{}
	for _, herb := range idx.Sections[h].Data {
		names = append(names, herb.NamePinyin)
	}
	assert.Equal(t, []string{"Huangqi", "Huoxiang"}, names)

	last := idx.Sections[len(idx.Sections)-1]
	assert.Equal(t, OtherLetter, last.Title)
	require.Len(t, last.Data, 1)
	assert.Equal(t, "3h-unique", last.Data[0].Slug)
}

func TestDefault_EveryHerbInExactlyOneSection(t *testing.T) {
	seen := map[string]string{}
	for _, s := range Sections() {
		for _, h := range s.Data {
			_, dup := seen[h.ID]
			assert.False(t, dup, "herb %s appears twice", h.ID)
			seen[h.ID] = s.Title
			assert.Equal(t, NormalizeLetter(h.DisplayName()), s.Title)
		}
	}
	assert.Len(t, seen, len(Herbs()))
}

func TestDefault_CallersGetIndependentCopies(t *testing.T) {
	want := Default()
	require.NotEmpty(t, want.Sections)

	secs := Sections()
	secs[0].Title = "?"
	secs[0].Data[0].Slug = "changed"
	secs[0].Data = secs[0].Data[:0]
	letters := Letters()
	letters[0] = "?"
	all := Default().Search("")
	all[0].Data[0].NamePinyin = "changed"

	assert.Equal(t, want, Default())
	assert.Equal(t, want.Letters, Letters())
	assert.Equal(t, want.Sections, Sections())
}

func TestSearch_BlankQueryDoesNotAliasIndex(t *testing.T) {
	idx := Build([]models.Herb{{ID: "1", NamePinyin: "alpha"}, {ID: "2", NamePinyin: "beta"}})

	res := idx.Search("   ")
	require.Len(t, res, 2)
	res[0].Data[0].ID = "x"
	res[1] = models.Section{}

	assert.Equal(t, "1", idx.Sections[0].Data[0].ID)
	assert.Equal(t, "B", idx.Sections[1].Title)
}

func TestBuild_SortsLettersWithOtherLast(t *testing.T) {
	in := []models.Herb{
		{ID: "1", NamePinyin: "zeta"},
		{ID: "2", NameZh: "草"},
		{ID: "3", NamePinyin: "alpha"},
		{ID: "4", NamePinyin: "Mid"},
		{ID: "5", NamePinyin: "9 lives"},
	}
	idx := Build(in)
	assert.Equal(t, []string{"A", "M", "Z", "#"}, idx.Letters)

	other := idx.Sections[3].Data
	require.Len(t, other, 2)
}

func TestBuild_SortsWithinSectionByCollation(t *testing.T) {
	in := []models.Herb{
		{ID: "1", NamePinyin: "bb"},
		{ID: "2", NamePinyin: "Ba"},
		{ID: "3", NamePinyin: "ba"},
		{ID: "4", NamePinyin: "Bz"},
		{ID: "5", NamePinyin: "bA"},
	}
	idx := Build(in)
	require.Equal(t, []string{"B"}, idx.Letters)

	got := []string{}
	for _, h := range idx.Sections[0].Data {
		got = append(got, h.NamePinyin)
	}
	// collation is case-insensitive at the primary level, unlike byte order
	assert.Equal(t, "Bz", got[len(got)-1])
	assert.Equal(t, "bb", got[len(got)-2])
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	in := []models.Herb{{ID: "1", NamePinyin: "b"}, {ID: "2", NamePinyin: "a"}}
	_ = Build(in)
	assert.Equal(t, "1", in[0].ID)
}

func TestBuild_Empty(t *testing.T) {
	idx := Build(nil)
	assert.Empty(t, idx.Sections)
	assert.Empty(t, idx.Letters)
	_, ok := idx.SectionFor("A")
	assert.False(t, ok)
}

func TestSectionFor(t *testing.T) {
	idx := Default()

	i, ok := idx.SectionFor("q")
	require.True(t, ok)
	assert.Equal(t, "Q", idx.Letters[i])

	i, ok = idx.SectionFor("#")
	require.True(t, ok)
	assert.Equal(t, len(idx.Letters)-1, i)

	_, ok = idx.SectionFor("A")
	assert.False(t, ok, "no herb starts with A")
	_, ok = idx.SectionFor("I")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	idx := Default()

	res := idx.Search("  GINSENG ")
	require.Len(t, res, 1)
	assert.Equal(t, "R", res[0].Title)
	assert.Equal(t, "ren-shen", res[0].Data[0].Slug)

	res = idx.Search("zhu")
	require.Len(t, res, 2)
	assert.Equal(t, "B", res[0].Title)
	assert.Equal(t, "C", res[1].Title)

	res = idx.Search("参")
	titles := []string{}
	for _, s := range res {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"K", "R", "T"}, titles)

	assert.Empty(t, idx.Search("no such herb"))
	assert.Len(t, idx.Search(""), len(idx.Sections))
}
