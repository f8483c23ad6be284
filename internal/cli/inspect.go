package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/syntree/internal/configloader"
	"github.com/yaklabco/syntree/internal/logging"
	"github.com/yaklabco/syntree/internal/ui/pretty"
	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/langreg"
	"github.com/yaklabco/syntree/pkg/syntree"
)

// ErrSyntaxErrorsFound is returned when the parsed tree contains error
// or missing nodes. It signals the exit code without being logged.
var ErrSyntaxErrorsFound = errors.New("syntax errors found")

type inspectFlags struct {
	language  string
	sexp      bool
	namedOnly bool
	noExtents bool
	showText  bool
}

func newInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Parse a file and print its syntax tree",
		Long:  inspectLongDescription,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.language, "language", "l", "",
		"grammar to parse with, overriding detection")
	cmd.Flags().BoolVar(&flags.sexp, "sexp", false,
		"print the tree as a single s-expression")
	cmd.Flags().BoolVar(&flags.namedOnly, "named-only", false,
		"hide anonymous nodes such as punctuation")
	cmd.Flags().BoolVar(&flags.noExtents, "no-extents", false,
		"omit byte extents from the outline")
	cmd.Flags().BoolVar(&flags.showText, "text", false,
		"show source text snippets next to leaf nodes")

	return cmd
}

const inspectLongDescription = `Parse a source file and print its concrete syntax tree.

The grammar is chosen from the --language flag, the file extension, or
content-based detection, in that order. Use "-" as FILE to read from
standard input, in which case --language is required.

Examples:
  syntree inspect main.go                # Detect grammar, print outline
  syntree inspect --sexp data.json       # Print as s-expression
  syntree inspect --named-only app.py    # Hide punctuation tokens
  cat x.js | syntree inspect -l javascript -`

func runInspect(cmd *cobra.Command, path string, flags *inspectFlags) error {
	logger := logging.FromContext(cmd.Context())

	cfg, colorMode, err := loadEffectiveConfig(cmd)
	if err != nil {
		return err
	}

	source, err := readInput(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	lang, langName, err := resolveLanguage(path, source, flags.language, cfg)
	if err != nil {
		return err
	}

	logger.Debug("parsing",
		logging.FieldPath, path,
		logging.FieldLanguage, langName,
		logging.FieldBytes, len(source),
	)

	parser, err := syntree.NewParser(lang)
	if err != nil {
		return err
	}
	defer parser.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tree, err := parser.Parse(ctx, source)
	if err != nil {
		return err
	}
	defer tree.Close()

	root := tree.RootNode()
	nodes, syntaxErrs := countNodes(root)
	logger.Debug("parsed",
		logging.FieldNodes, nodes,
		logging.FieldErrors, syntaxErrs,
	)

	out := cmd.OutOrStdout()
	if err := writeTree(out, root, source, colorMode, flags); err != nil {
		return err
	}
	if !flags.sexp {
		writeSummary(out, path, nodes, syntaxErrs, colorMode)
	}

	if tree.HasError() {
		return ErrSyntaxErrorsFound
	}
	return nil
}

// loadEffectiveConfig merges file, environment, and flag settings and
// returns the result along with the resolved color mode.
func loadEffectiveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return nil, "", fmt.Errorf("get color flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("color") {
		cliCfg.Color = config.ColorMode(colorFlag)
	}

	loadResult, err := configloader.Load(configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrConfig, err)
	}

	logger := logging.FromContext(cmd.Context())
	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	// The --debug flag outranks any configured level.
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return nil, "", fmt.Errorf("get debug flag: %w", err)
	}
	if !debug && loadResult.Config.LogLevel != "" {
		logging.SetLevel(loadResult.Config.LogLevel)
		logger.Debug("log level set from configuration",
			logging.FieldLogLevel, loadResult.Config.LogLevel)
	}

	return loadResult.Config, string(loadResult.Config.Color), nil
}

// readInput reads the file at path, or standard input for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path) //nolint:gosec // Path comes from the command line
}

// resolveLanguage picks the grammar for a file: explicit flag, then
// configured extension overrides, then detection, then the configured
// default.
func resolveLanguage(path string, source []byte, flagName string, cfg *config.Config) (*syntree.Language, string, error) {
	if flagName != "" {
		lang, ok := langreg.ByName(flagName)
		if !ok {
			return nil, "", fmt.Errorf("%w: unknown language %q (known: %s)",
				ErrUsage, flagName, strings.Join(langreg.Names(), ", "))
		}
		return lang, flagName, nil
	}

	if ext := filepath.Ext(path); ext != "" {
		if name, ok := cfg.Languages[ext]; ok {
			lang, found := langreg.ByName(name)
			if !found {
				return nil, "", fmt.Errorf("%w: config maps %s to unknown language %q",
					ErrConfig, ext, name)
			}
			return lang, name, nil
		}
	}

	if path != "-" {
		if lang, name, ok := langreg.Detect(path, source); ok {
			return lang, name, nil
		}
	}

	if cfg.DefaultLanguage != "" {
		lang, ok := langreg.ByName(cfg.DefaultLanguage)
		if !ok {
			return nil, "", fmt.Errorf("%w: default language %q is not registered",
				ErrConfig, cfg.DefaultLanguage)
		}
		return lang, cfg.DefaultLanguage, nil
	}

	return nil, "", fmt.Errorf("%w: cannot determine language for %s; use --language",
		ErrUsage, path)
}

// countNodes walks the tree once to count nodes and syntax errors.
func countNodes(root syntree.Node) (nodes, syntaxErrs int) {
	_ = syntree.Walk(root, func(n syntree.Node) error {
		nodes++
		if n.IsError() || n.IsMissing() {
			syntaxErrs++
		}
		return nil
	})
	return nodes, syntaxErrs
}

// writeSummary prints a one-line verdict under the outline.
func writeSummary(w io.Writer, path string, nodes, syntaxErrs int, colorMode string) {
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, w))

	count := styles.Bold.Render(fmt.Sprintf("%d nodes", nodes))
	verdict := styles.Success.Render("no syntax errors")
	if syntaxErrs > 0 {
		noun := "syntax errors"
		if syntaxErrs == 1 {
			noun = "syntax error"
		}
		verdict = styles.Failure.Render(fmt.Sprintf("%d %s", syntaxErrs, noun))
	}

	fmt.Fprintf(w, "\n%s: %s, %s\n", styles.FilePath.Render(path), count, verdict)
}

func writeTree(w io.Writer, root syntree.Node, source []byte, colorMode string, flags *inspectFlags) error {
	if flags.sexp {
		_, err := fmt.Fprintln(w, root.SExpr())
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, w))
	opts := pretty.TreeOptions{
		NamedOnly:   flags.namedOnly,
		ShowExtents: !flags.noExtents,
	}
	if flags.showText {
		opts.Source = source
	}

	return pretty.NewTreeRenderer(styles, opts).Render(w, root)
}
