package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/dartgen/json2dart/internal/analyzer"
	"github.com/dartgen/json2dart/internal/config"
	"github.com/dartgen/json2dart/internal/errors"
	"github.com/dartgen/json2dart/internal/formatter"
	"github.com/dartgen/json2dart/internal/generator"
	"github.com/dartgen/json2dart/internal/models"
	"github.com/dartgen/json2dart/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output Dart file. If a directory is given, the file name derives from the root class name." short:"o" type:"path"`
	RootName    string `help:"Name for the root class." short:"r" default:"Model"`
	Smart       bool   `help:"Only mark fields nullable when the source value was null." short:"s"`
	NoHooks     bool   `help:"Skip the fromJson/toJson serialization bindings."`
	Format      bool   `help:"Normalize the generated source." short:"f" default:"true"`
	Config      string `help:"Path to a config file. Discovered automatically when omitted." short:"c" type:"path"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	cliParser := kong.Must(&CLI,
		kong.Name("json2dart"),
		kong.Description("A tool to convert JSON documents into Dart data classes"),
		kong.UsageOnError(),
	)

	// With no arguments at all, default to interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := cliParser.Parse(os.Args[1:]); err != nil {
		// Usage was already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("json2dart version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: json2dart --help\n")
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.NewInputError("failed to load configuration", err)
	}

	// 1. Parse JSON input
	ir, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// 2. Infer the class registry
	analyzerInst := analyzer.NewAnalyzerWithConfig(cfg)
	result, err := analyzerInst.Analyze(ir, cfg.RootName)
	if err != nil {
		return errors.NewAnalysisError("failed to analyze JSON structure", err)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	// 3. Generate Dart classes
	generatorInst := generator.NewGenerator()
	code, err := generatorInst.Generate(result, cfg)
	if err != nil {
		return errors.NewGenerateError("failed to generate Dart classes", err)
	}

	// 4. Normalize the output if requested
	if cfg.Format {
		formatterInst := formatter.NewFormatter()
		code, err = formatterInst.Format(code)
		if err != nil {
			return errors.NewFormatError("failed to normalize Dart source", err)
		}
	}

	// 5. Output the result
	return writeOutput(code, generatorInst.FileName(result))
}

// loadConfig resolves the effective configuration from the config file (if
// any) and CLI flags.
func loadConfig() (*config.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	return config.LoadConfigWithCLI(configPath, CLI.RootName, !CLI.Smart, !CLI.NoHooks, CLI.Format)
}

// parseInput reads JSON from file or stdin
func parseInput() (models.IntermediateRepresentation, error) {
	if CLI.Input != "" {
		return parser.ParseFile(CLI.Input)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return models.IntermediateRepresentation{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes the generated source to a file, directory or stdout.
// Directory output uses the derived file name, which mirrors how the
// generated source would be saved from the original editor.
func writeOutput(code, derivedName string) error {
	if CLI.Output != "" {
		target := CLI.Output
		if info, err := os.Stat(target); err == nil && info.IsDir() {
			target = filepath.Join(target, derivedName)
		}
		if err := os.WriteFile(target, []byte(code), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", target), err)
		}
		fmt.Fprintf(os.Stderr, "Generated Dart classes written to %s\n", target)
		return nil
	}

	if _, err := fmt.Println(strings.TrimSpace(code)); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (models.IntermediateRepresentation, error) {
	fmt.Fprintln(os.Stderr, "json2dart Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return models.IntermediateRepresentation{}, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
