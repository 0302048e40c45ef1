package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/harfsearch/internal/arabic"
	"github.com/kailas-cloud/harfsearch/internal/domain/search/pattern"
)

var (
	variantsMaxOccurrences int
	variantsMaxVariants    int
)

var normalizeCmd = &cobra.Command{
	Use:     "normalize <text>",
	Short:   "Print the canonical form of a text",
	GroupID: groupText,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), arabic.Normalize(args[0]))
		return err
	},
}

var variantsCmd = &cobra.Command{
	Use:   "variants <text>",
	Short: "Print the spelling variants of a text, one per line",
	Long: `Print the spelling variants of a text, one per line.

The first line is always the input itself.

Examples:
  harfctl variants احجار
  harfctl variants --max-variants 16 "الاداة الالكترونية"`,
	GroupID: groupText,
	Args:    cobra.ExactArgs(1),
	RunE:    runVariants,
}

var patternsCmd = &cobra.Command{
	Use:     "patterns <query>",
	Short:   "Print the search patterns a query expands into",
	GroupID: groupText,
	Args:    cobra.ExactArgs(1),
	RunE:    runPatterns,
}

func init() {
	for _, c := range []*cobra.Command{variantsCmd, patternsCmd} {
		c.Flags().IntVar(&variantsMaxOccurrences, "max-occurrences",
			arabic.DefaultLimits.MaxOccurrences, "alef positions rewritten one at a time")
		c.Flags().IntVar(&variantsMaxVariants, "max-variants",
			arabic.DefaultLimits.MaxVariants, "upper bound on generated variants")
	}

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(patternsCmd)
}

func generator() arabic.Generator {
	return arabic.NewGenerator(arabic.Limits{
		MaxOccurrences: variantsMaxOccurrences,
		MaxVariants:    variantsMaxVariants,
	})
}

func runVariants(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, v := range generator().Variations(args[0]).Items() {
		if _, err := fmt.Fprintln(out, v); err != nil {
			return err
		}
	}
	return nil
}

func runPatterns(cmd *cobra.Command, args []string) error {
	set := pattern.NewBuilder(generator()).Build(args[0])
	if len(set) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "query shorter than %d characters, no patterns\n", pattern.MinRunes)
		return nil
	}
	out := cmd.OutOrStdout()
	for _, p := range set {
		if _, err := fmt.Fprintln(out, p); err != nil {
			return err
		}
	}
	return nil
}
