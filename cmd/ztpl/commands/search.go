package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/zaneops/templates/internal/catalog"
	"github.com/zaneops/templates/internal/errors"
)

var (
	searchTags        []string
	searchLimit       int
	searchJSON        bool
	searchInteractive bool
)

func init() {
	searchCmd.Flags().StringSliceVarP(&searchTags, "tags", "t", nil,
		"only templates carrying all of these tags")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", catalog.PerPage,
		"maximum number of results (-1 for all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false,
		"output in JSON format")
	searchCmd.Flags().BoolVarP(&searchInteractive, "interactive", "i", false,
		"pick a template with a fuzzy finder")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the template catalog",
	Long: `Search templates by name, description and tags.

Matching is case-insensitive. Results are sorted by match quality: exact
name matches first, then name prefixes, name substrings, exact tags, and
finally description or tag substrings. Ties are ordered by name.

If no query is provided, all templates are listed (subject to --tags).`,
	Example: `  # Search for databases
  ztpl search postgres

  # Filter by tags
  ztpl search --tags database,sql

  # Browse interactively
  ztpl search -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	entries, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	var query string
	if len(args) > 0 {
		query = args[0]
	}
	limit := searchLimit
	if searchInteractive && !cmd.Flags().Changed("limit") {
		limit = -1
	}
	results := catalog.Search(entries, catalog.Query{
		Text:  query,
		Tags:  searchTags,
		Limit: limit,
	})

	w := cmd.OutOrStdout()
	switch {
	case searchInteractive:
		return runInteractiveSearch(w, results)
	case searchJSON:
		return writeJSON(w, catalog.SearchDocs(results))
	default:
		return outputTabular(w, results)
	}
}

// outputTabular outputs entries in a human-readable table format.
func outputTabular(w io.Writer, entries []*catalog.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No templates found.")
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", bold("SLUG"), bold("NAME"), bold("TAGS"), bold("DESCRIPTION"))
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			e.Slug,
			green(e.Name),
			strings.Join(e.Tags, ","),
			gray(truncate(e.Description, 50)))
	}
	return tw.Flush()
}

func runInteractiveSearch(w io.Writer, entries []*catalog.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No templates found.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", entries[i].Name, entries[i].Slug)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(entries[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive search failed")
	}

	e := entries[idx]
	fmt.Fprintf(w, "Selected: %s (%s)\n", e.Name, e.Slug)
	fmt.Fprintf(w, "URL: %s\n", e.URL())
	fmt.Fprintf(w, "Compose: %s\n", e.ComposePath)
	return nil
}

func preview(e *catalog.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\nSlug: %s\n", e.Name, e.Slug)
	if len(e.Tags) > 0 {
		fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(e.Tags, ", "))
	}
	for _, link := range []struct{ label, url string }{
		{"Website", e.WebsiteURL},
		{"Docs", e.DocsURL},
		{"GitHub", e.GithubURL},
	} {
		if link.url != "" {
			fmt.Fprintf(&sb, "%s: %s\n", link.label, link.url)
		}
	}
	fmt.Fprintf(&sb, "\nDescription:\n%s", e.Description)
	return sb.String()
}
