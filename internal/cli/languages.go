package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/syntree/internal/logging"
	"github.com/yaklabco/syntree/pkg/langreg"
)

func newLanguagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List bundled grammars",
		Long: `List the grammars bundled with syntree, with their symbol counts and
the engine ABI version each was generated against.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := logging.NewInteractive()

			logger.Info("bundled grammars")

			for _, name := range langreg.Names() {
				lang, ok := langreg.ByName(name)
				if !ok {
					continue
				}

				logger.Info(name,
					logging.FieldSymbols, lang.SymbolCount(),
					logging.FieldAbiVersion, lang.AbiVersion(),
				)
			}

			return nil
		},
	}

	return cmd
}
