// Package directory implements the non-interactive commands: list,
// categories, featured and show. Each prints a table or, with --json,
// machine-readable output.
package directory

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/lamchakchan/ai-tools/internal/catalog"
	"github.com/lamchakchan/ai-tools/internal/platform"
)

// Runner executes directory commands against a catalog.
type Runner struct {
	Catalog     *catalog.Catalog
	Out         io.Writer
	DefaultSort catalog.SortKey
}

// New returns a Runner writing to w. An empty defaultSort means popularity.
func New(c *catalog.Catalog, w io.Writer, defaultSort catalog.SortKey) *Runner {
	if defaultSort == "" {
		defaultSort = catalog.DefaultSort
	}
	return &Runner{Catalog: c, Out: w, DefaultSort: defaultSort}
}

// newFlagSet returns a quiet flag set; parse errors are returned, not printed.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parse parses args and reports whether the command should continue.
// --help prints usage and stops without error.
func (r *Runner) parse(fs *pflag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(r.Out, "Usage of %s:\n%s", fs.Name(), fs.FlagUsages())
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", fs.Name(), err)
	}
	return true, nil
}

// List prints the filtered and sorted tool listing.
func (r *Runner) List(args []string) error {
	fs := newFlagSet("list")
	search := fs.StringP("search", "s", "", "match tool name or category (case-insensitive)")
	category := fs.StringP("category", "c", "", "only tools in this exact category")
	sortBy := fs.String("sort", string(r.DefaultSort), "sort order: name or popularity")
	asJSON := fs.Bool("json", false, "JSON output")
	if ok, err := r.parse(fs, args); !ok {
		return err
	}

	q := catalog.Query{
		Search:   *search,
		Category: *category,
		Sort:     catalog.ParseSortKey(*sortBy),
	}
	tools := r.Catalog.FilteredSorted(q)
	if *asJSON {
		return platform.WriteJSON(r.Out, tools)
	}

	platform.PrintBanner(r.Out, listTitle(q))
	if len(tools) == 0 {
		fmt.Fprintln(r.Out)
		platform.PrintWarningLine(r.Out, "No tools match.")
		return nil
	}
	writeToolTable(r.Out, tools)
	fmt.Fprintf(r.Out, "\n  %d of %d tool(s) shown. Use 'show <id>' for details.\n\n", len(tools), r.Catalog.Len())
	return nil
}

func listTitle(q catalog.Query) string {
	title := "AI Tools"
	if q.Category != "" {
		title += " in " + q.Category
	}
	if q.Search != "" {
		title += fmt.Sprintf(" matching %q", q.Search)
	}
	if q.Sort.Known() {
		title += " by " + string(q.Sort)
	}
	return title
}

// Categories prints every category with its tool count, largest first.
func (r *Runner) Categories(args []string) error {
	fs := newFlagSet("categories")
	asJSON := fs.Bool("json", false, "JSON output")
	if ok, err := r.parse(fs, args); !ok {
		return err
	}

	counts := r.Catalog.CategoryCounts()
	if *asJSON {
		return platform.WriteJSON(r.Out, counts)
	}

	platform.PrintBanner(r.Out, "Categories")
	width := len("All")
	for _, cc := range counts {
		width = max(width, len(cc.Category))
	}
	fmt.Fprintf(r.Out, "\n  %-*s  %s\n", width, "All", platform.Bold(strconv.Itoa(r.Catalog.Len())))
	for _, cc := range counts {
		fmt.Fprintf(r.Out, "  %-*s  %d\n", width, cc.Category, cc.Count)
	}
	fmt.Fprintln(r.Out)
	return nil
}

// Featured prints the featured tools.
func (r *Runner) Featured(args []string) error {
	fs := newFlagSet("featured")
	asJSON := fs.Bool("json", false, "JSON output")
	if ok, err := r.parse(fs, args); !ok {
		return err
	}

	tools := r.Catalog.Featured()
	if *asJSON {
		return platform.WriteJSON(r.Out, tools)
	}

	platform.PrintBanner(r.Out, "Featured Tools")
	if len(tools) == 0 {
		fmt.Fprintln(r.Out)
		platform.PrintWarningLine(r.Out, "No featured tools.")
		return nil
	}
	writeToolTable(r.Out, tools)
	fmt.Fprintln(r.Out)
	return nil
}

// Show prints the quick-look detail for one tool.
func (r *Runner) Show(args []string) error {
	fs := newFlagSet("show")
	asJSON := fs.Bool("json", false, "JSON output")
	if ok, err := r.parse(fs, args); !ok {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: ai-tools show <id>")
	}

	raw := fs.Arg(0)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return catalog.NewValidationError("id", raw, "must be an integer")
	}
	tool, ok := r.Catalog.Lookup(id)
	if !ok {
		return &catalog.NotFoundError{ID: id}
	}
	if *asJSON {
		return platform.WriteJSON(r.Out, tool)
	}

	name := tool.Name
	if tool.Featured {
		name += " " + Star
	}
	platform.PrintBanner(r.Out, name)
	fmt.Fprintln(r.Out)
	platform.PrintField(r.Out, "Category", tool.Category)
	platform.PrintField(r.Out, "Popularity", fmt.Sprintf("%d%% popularity", tool.Popularity))
	platform.PrintField(r.Out, "Link", platform.Cyan(tool.Link))
	platform.PrintField(r.Out, "Image", platform.Dim(tool.ImageRef))
	platform.PrintSection(r.Out, "Description")
	fmt.Fprintf(r.Out, "  %s\n\n", tool.Description)
	return nil
}

// Star marks featured tools in text output.
const Star = "★"

func writeToolTable(w io.Writer, tools []catalog.Tool) {
	nameW, catW := len("NAME"), len("CATEGORY")
	for _, t := range tools {
		nameW = max(nameW, len(t.Name)+2) // room for the featured marker
		catW = max(catW, len(t.Category))
	}

	fmt.Fprintf(w, "\n  %-4s  %-*s  %-*s  %s\n", "ID", nameW, "NAME", catW, "CATEGORY", "POPULARITY")
	fmt.Fprintf(w, "  %-4s  %-*s  %-*s  %s\n", "----", nameW, strings.Repeat("-", nameW), catW, strings.Repeat("-", catW), "----------")

	for _, t := range tools {
		// Pad before styling so escape codes don't break alignment.
		name := fmt.Sprintf("%-*s", nameW, t.Name)
		if t.Featured {
			name = fmt.Sprintf("%-*s", nameW, t.Name+" "+Star)
			name = platform.Yellow(name)
		}
		pop := fmt.Sprintf("%3d%%", t.Popularity)
		if t.Popularity >= 90 {
			pop = platform.Green(pop)
		}
		fmt.Fprintf(w, "  %-4d  %s  %-*s  %s\n", t.ID, name, catW, t.Category, pop)
	}
}
