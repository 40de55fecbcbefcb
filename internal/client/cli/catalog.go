package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/herbalist/internal/client/catalog"
	"github.com/dmitrijs2005/herbalist/internal/client/models"
)

func printSection(s models.Section) {
	printlnFn(fmt.Sprintf("[%s]", s.Title))
	for _, h := range s.Data {
		line := fmt.Sprintf("  %-12s %s", h.DisplayName(), h.NameZh)
		if h.Family != "" {
			line += "  (" + h.Family + ")"
		}
		if h.Property != "" {
			line += "  " + h.Property
		}
		if len(h.Flavor) > 0 {
			line += " / " + strings.Join(h.Flavor, ", ")
		}
		printlnFn(line)
	}
}

// Herbs prints the whole alphabetical index.
func (a *App) Herbs(ctx context.Context) error {
	for _, s := range a.index.Sections {
		printSection(s)
	}
	return nil
}

// Letters prints the jump index.
func (a *App) Letters(ctx context.Context) error {
	printlnFn(strings.Join(a.index.Letters, " "))
	return nil
}

// Jump prints the section of letter. An absent letter is reported and
// nothing else happens.
func (a *App) Jump(ctx context.Context, letter string) error {
	i, ok := a.index.SectionFor(letter)
	if !ok {
		printlnFn("No herbs under", strings.ToUpper(letter))
		return nil
	}
	printSection(a.index.Sections[i])
	return nil
}

// Search prints the herbs matching query.
func (a *App) Search(ctx context.Context, query string) error {
	res := a.index.Search(query)
	if len(res) == 0 {
		printlnFn("No herbs match", fmt.Sprintf("%q", query))
		return nil
	}
	for _, s := range res {
		printSection(s)
	}
	return nil
}

// Home prints the category counts and the feed filtered by an optional
// category (first argument) and query (the rest).
func (a *App) Home(ctx context.Context, args []string) error {
	category := models.CategoryAll
	if len(args) > 0 {
		if c, ok := catalog.ParseCategory(args[0]); ok {
			category = c
			args = args[1:]
		}
	}
	query := strings.Join(args, " ")

	items := catalog.Items()
	counts := catalog.CountByCategory(items)
	parts := make([]string, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		parts = append(parts, fmt.Sprintf("%s %d", c, counts[c]))
	}
	printlnFn(strings.Join(parts, " | "))

	filtered := catalog.FilterItems(items, query, category)
	if len(filtered) == 0 {
		printlnFn("Nothing found")
		return nil
	}
	for _, it := range filtered {
		printlnFn(fmt.Sprintf("  %-14s %-18s %s", it.Title, it.Subtitle, it.Category))
	}
	return nil
}
