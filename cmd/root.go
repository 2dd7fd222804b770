package cmd

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AbdallahZerfaoui/classgen/internal/config"
	"github.com/AbdallahZerfaoui/classgen/internal/emit"
	"github.com/AbdallahZerfaoui/classgen/internal/render"
	"github.com/AbdallahZerfaoui/classgen/internal/spec"
)

var (
	cfgFile     string
	interactive bool
)

var rootCmd = &cobra.Command{
	Use:   "classgen <ClassName> [variables] [methods]",
	Short: "Generate boilerplate header/source pairs for C++ classes",
	Long: `classgen writes a header and source file pair for one class in
canonical form: default constructor, copy constructor, copy assignment
operator and destructor, plus the member variables and method stubs
given on the command line.

Variables are a comma-separated list of "type name" entries, methods a
comma-separated list of "ReturnType name(params)" entries. Malformed
entries are skipped with a warning; the rest of the list still goes
through.`,
	Example: `  classgen Animal "std::string _name, int _age" "void speak(), int getAge() const"
  classgen Empty
  classgen -i`,
	Args:          cobra.MaximumNArgs(3),
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default "+config.DefaultFile+")")
	flags.BoolVarP(&interactive, "interactive", "i", false, "prompt for missing arguments")
	flags.String("include-dir", "", "directory for the generated header file")
	flags.String("src-dir", "", "directory for the generated source file")
	flags.String("header-ext", "", "extension of the generated header file")
	flags.String("source-ext", "", "extension of the generated source file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Normalize(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	className := argOrEmpty(args, 0)
	varsList := argOrEmpty(args, 1)
	methodsList := argOrEmpty(args, 2)

	if interactive {
		className, varsList, methodsList, err = promptMissing(len(args), className, varsList, methodsList)
		if err != nil {
			return err
		}
	}

	class, err := spec.ParseClass(className, varsList, methodsList, logger)
	if err != nil {
		return err
	}

	r := render.New(cfg.HeaderExt)
	header, err := r.Header(class)
	if err != nil {
		return err
	}
	source, err := r.Source(class)
	if err != nil {
		return err
	}

	headerPath := cfg.HeaderPath(class.Name)
	sourcePath := cfg.SourcePath(class.Name)
	if err := emit.WritePair(headerPath, sourcePath, header, source); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Created header file:", headerPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Created source file:", sourcePath)
	return nil
}

// promptMissing fills in whatever the positional args left out, so
// `classgen -i Animal` only asks for variables and methods.
func promptMissing(given int, className, varsList, methodsList string) (string, string, string, error) {
	var err error
	if given < 1 {
		if className, err = inputPrompt("Class name"); err != nil {
			return "", "", "", err
		}
	}
	if given < 2 {
		if varsList, err = inputPrompt("Variables (type name, ...)"); err != nil {
			return "", "", "", err
		}
	}
	if given < 3 {
		if methodsList, err = inputPrompt("Methods (ReturnType name(params), ...)"); err != nil {
			return "", "", "", err
		}
	}
	return className, varsList, methodsList, nil
}

func inputPrompt(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	return prompt.Run()
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"include-dir": &cfg.IncludeDir,
		"src-dir":     &cfg.SourceDir,
		"header-ext":  &cfg.HeaderExt,
		"source-ext":  &cfg.SourceExt,
		"log-level":   &cfg.LogLevel,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to determine logging level %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

func argOrEmpty(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
