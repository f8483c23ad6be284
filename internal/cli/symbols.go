package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/syntree/internal/logging"
	"github.com/yaklabco/syntree/internal/ui/pretty"
	"github.com/yaklabco/syntree/pkg/langreg"
)

type symbolsFlags struct {
	namedOnly bool
}

func newSymbolsCommand() *cobra.Command {
	flags := &symbolsFlags{}

	cmd := &cobra.Command{
		Use:   "symbols LANGUAGE",
		Short: "List the symbols a grammar defines",
		Long: `List every symbol of a grammar as a table of numeric IDs, names, and
whether the symbol is a named rule or an anonymous token.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSymbols(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.namedOnly, "named-only", false,
		"only list named rules")

	return cmd
}

func runSymbols(cmd *cobra.Command, name string, flags *symbolsFlags) error {
	logger := logging.FromContext(cmd.Context())

	lang, ok := langreg.ByName(name)
	if !ok {
		return fmt.Errorf("%w: unknown language %q (known: %s)",
			ErrUsage, name, strings.Join(langreg.Names(), ", "))
	}

	logger.Debug("grammar loaded",
		logging.FieldLanguage, name,
		logging.FieldAbiVersion, lang.AbiVersion(),
	)

	rows := pretty.CollectRows(lang)
	namedCount := 0
	for _, row := range rows {
		if row.Named {
			namedCount++
		}
	}
	logger.Debug("collected symbols",
		logging.FieldSymbols, len(rows),
		logging.FieldNamed, namedCount,
	)

	if flags.namedOnly {
		named := rows[:0]
		for _, row := range rows {
			if row.Named {
				named = append(named, row)
			}
		}
		rows = named
	}

	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("get color flag: %w", err)
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorFlag, out))
	formatter := pretty.NewTableFormatter(styles, pretty.TermWidth(out))

	fmt.Fprint(out, formatter.FormatTable(rows))
	return nil
}
