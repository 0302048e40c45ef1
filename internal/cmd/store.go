package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/harfsearch/internal/app"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/kind"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/request"
)

var (
	searchType string
	searchJSON bool
)

var seedCmd = &cobra.Command{
	Use:   "seed <fixtures.yaml>",
	Short: "Load tools and articles from a YAML file into the store",
	Long: `Load tools and articles from a YAML file into the store.

Rows are upserted by id, so seeding twice is safe.

Examples:
  harfctl seed config/fixtures.yaml
  ENV=prod harfctl seed data.yaml`,
	GroupID: groupStore,
	Args:    cobra.ExactArgs(1),
	RunE:    runSeed,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tools and articles",
	Long: `Search tools and articles with spelling-tolerant matching.

Examples:
  harfctl search احجار
  harfctl search --type tools مدرسه
  harfctl search --json "آلة حاسبة"`,
	GroupID: groupStore,
	Args:    cobra.ExactArgs(1),
	RunE:    runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchType, "type", "t", string(kind.ScopeAll), "tools, articles or all")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(searchCmd)
}

func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, &cfg, newLogger(&cfg))
}

func runSeed(cmd *cobra.Command, args []string) error {
	fixtures, err := app.LoadFixtures(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Seed(ctx, &fixtures)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d tools, %d articles\n", res.Tools, res.Articles)
	return err
}

type searchItem struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type searchOutput struct {
	Query   string       `json:"query"`
	Results []searchItem `json:"results"`
	Total   int          `json:"total"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	req, err := request.New(args[0], kind.Scope(searchType), 0)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.Search.Search(ctx, &req)
	if err != nil {
		return err
	}

	output := searchOutput{Query: args[0], Results: make([]searchItem, 0, list.Total())}
	for _, r := range list.Results() {
		output.Results = append(output.Results, searchItem{
			ID:    r.ID(),
			Type:  string(r.Kind()),
			Title: r.Title(),
			Slug:  r.Slug(),
		})
	}
	output.Total = len(output.Results)

	if searchJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		return enc.Encode(output)
	}

	if output.Total == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No results found.")
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, it := range output.Results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", it.Type, it.ID, it.Title, it.Slug)
	}
	return tw.Flush()
}
