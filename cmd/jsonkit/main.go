package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/mcncl/jsonkit"
	"github.com/mcncl/jsonkit/internal/codec"
	"github.com/mcncl/jsonkit/internal/config"
	"github.com/mcncl/jsonkit/internal/errors"
)

// Version information
const Version = "0.1.0"

// CLI defines the command-line interface
var CLI struct {
	Config  string           `help:"Path to config file. Defaults to the nearest .jsonkit.yml." short:"c" type:"path"`
	Debug   bool             `help:"Enable debug logging." short:"d"`
	Version kong.VersionFlag `help:"Show version information." short:"v"`

	Fmt      FmtCmd      `cmd:"" help:"Re-encode JSON, pretty-printed or compact."`
	Validate ValidateCmd `cmd:"" help:"Check that the input is well-formed JSON."`
	Get      GetCmd      `cmd:"" help:"Extract the value at a dotted key path."`
	Find     FindCmd     `cmd:"" help:"Find the first value under a key, anywhere in the tree."`
	Flatten  FlattenCmd  `cmd:"" help:"Flatten nested objects into single-level dotted keys."`
	Merge    MergeCmd    `cmd:"" help:"Merge a second JSON object over the input."`
	Dedupe   DedupeCmd   `cmd:"" help:"Deduplicate lists of objects by a key."`
}

// Context holds the runtime context shared by all commands
type Context struct {
	Config *config.Config
	Log    *logrus.Logger
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("jsonkit"),
		kong.Description("A safe JSON manipulation toolkit"),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("jsonkit version %s", Version)},
	)

	runCtx, err := newContext()
	if err == nil {
		err = ctx.Run(runCtx)
	}
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// newContext loads configuration and wires logging and diagnostics
func newContext() (*Context, error) {
	cfg := config.NewConfig()
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("failed to load config from '%s'", path), err)
		}
		cfg = loaded
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if CLI.Debug || cfg.Dev.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	// Route recovered toolkit errors through the logger so malformed
	// input is visible without changing any return contract.
	jsonkit.SetDiagnosticHandler(func(op string, err error) {
		log.WithField("op", op).Debug(err)
	})

	return &Context{Config: cfg, Log: log}, nil
}

// FmtCmd re-encodes its input
type FmtCmd struct {
	Input   string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output  string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Compact bool   `help:"Emit compact output instead of pretty-printing."`
}

func (c *FmtCmd) Run(ctx *Context) error {
	value, err := readValue(ctx, c.Input)
	if err != nil {
		return err
	}
	opts := []jsonkit.SerializeOption{}
	if !c.Compact {
		opts = append(opts, jsonkit.WithIndent(ctx.Config.Indent))
	}
	text, err := jsonkit.Serialize(value, opts...)
	if err != nil {
		return err
	}
	return writeOutput(ctx, text, c.Output)
}

// ValidateCmd checks well-formedness
type ValidateCmd struct {
	Input string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
}

func (c *ValidateCmd) Run(ctx *Context) error {
	text, err := readInput(c.Input)
	if err != nil {
		return err
	}
	if _, err := codec.Parse(text); err != nil {
		return err
	}
	fmt.Println("valid")
	return nil
}

// GetCmd extracts the value at a key path
type GetCmd struct {
	Path   string `arg:"" help:"Dotted key path, e.g. a.b.c."`
	Input  string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
}

func (c *GetCmd) Run(ctx *Context) error {
	value, err := readValue(ctx, c.Input)
	if err != nil {
		return err
	}
	result, found := jsonkit.GetByPath(value, strings.Split(c.Path, "."))
	if !found {
		return errors.NewInputError(fmt.Sprintf("no value at path '%s'", c.Path), nil)
	}
	return writeValue(ctx, result, c.Output)
}

// FindCmd searches the whole tree for a key
type FindCmd struct {
	Key    string `arg:"" help:"Member key to search for."`
	Input  string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
}

func (c *FindCmd) Run(ctx *Context) error {
	value, err := readValue(ctx, c.Input)
	if err != nil {
		return err
	}
	result, found := jsonkit.FindFirstByKeySafe(value, c.Key)
	if !found {
		return errors.NewInputError(fmt.Sprintf("key '%s' not found", c.Key), nil)
	}
	return writeValue(ctx, result, c.Output)
}

// FlattenCmd flattens nested objects
type FlattenCmd struct {
	Input  string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
}

func (c *FlattenCmd) Run(ctx *Context) error {
	value, err := readValue(ctx, c.Input)
	if err != nil {
		return err
	}
	flat := jsonkit.Flatten(value)

	// Apply the configured key presentation: case conversion per
	// segment, then the configured separator.
	out := jsonkit.Object{}
	for key, val := range flat {
		segments := strings.Split(key, ".")
		for i, segment := range segments {
			segments[i] = ctx.Config.GetFlatKey(segment)
		}
		out[strings.Join(segments, ctx.Config.Flatten.Separator)] = val
	}
	return writeValue(ctx, out, c.Output)
}

// MergeCmd merges a second document over the input
type MergeCmd struct {
	With    string `help:"Path to the JSON file merged over the input." required:"" type:"path"`
	Shallow bool   `help:"Top-level combine only: colliding keys are replaced whole."`
	Input   string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output  string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
}

func (c *MergeCmd) Run(ctx *Context) error {
	target, err := readValue(ctx, c.Input)
	if err != nil {
		return err
	}
	sourceText, err := readInput(c.With)
	if err != nil {
		return err
	}
	source, err := codec.Parse(sourceText)
	if err != nil {
		return err
	}

	var merged jsonkit.Object
	if c.Shallow {
		merged = jsonkit.ShallowCombine(target, source)
	} else {
		merged = jsonkit.RecursiveCombine(target, source)
	}
	return writeValue(ctx, merged, c.Output)
}

// DedupeCmd deduplicates lists of objects by a key
type DedupeCmd struct {
	Key    string `arg:"" help:"Member key whose value identifies a record."`
	Input  string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
}

func (c *DedupeCmd) Run(ctx *Context) error {
	value, err := readValue(ctx, c.Input)
	if err != nil {
		return err
	}

	// Accept either a list of lists or, for convenience, a flat list
	// of records.
	lists := value
	if arr, ok := value.(jsonkit.Array); ok && len(arr) > 0 {
		if jsonkit.KindOf(arr[0]) == jsonkit.KindObject {
			lists = jsonkit.Array{arr}
		}
	}

	result := jsonkit.MergeUniqueByKey(lists, c.Key)
	return writeValue(ctx, result, c.Output)
}

// readValue reads and parses the command's input, dumping the parsed
// tree when debug logging is on
func readValue(ctx *Context, input string) (jsonkit.Value, error) {
	text, err := readInput(input)
	if err != nil {
		return nil, err
	}
	value, err := codec.Parse(text)
	if err != nil {
		return nil, err
	}
	if ctx.Log.IsLevelEnabled(logrus.DebugLevel) {
		ctx.Log.Debugf("parsed input:\n%s", spew.Sdump(value))
	}
	return value, nil
}

// readInput reads JSON text from a file or stdin
func readInput(input string) (string, error) {
	if input != "" {
		data, err := os.ReadFile(input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewInputError(
					fmt.Sprintf("file '%s' not found", input),
					errors.ErrFileNotFound,
				)
			}
			return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", input), err)
		}
		if len(data) == 0 {
			return "", errors.NewInputError(
				fmt.Sprintf("input file '%s' is empty", input),
				errors.ErrFileEmpty,
			)
		}
		return string(data), nil
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive, nothing was piped in
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return string(data), nil
}

// writeValue serializes a result and writes it out
func writeValue(ctx *Context, value jsonkit.Value, output string) error {
	text, err := jsonkit.Serialize(value, jsonkit.WithIndent(ctx.Config.Indent))
	if err != nil {
		return err
	}
	return writeOutput(ctx, text, output)
}

// writeOutput writes text to a file or stdout
func writeOutput(ctx *Context, text string, output string) error {
	if ctx.Config.Output.TrailingNewline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if output != "" {
		if err := os.WriteFile(output, []byte(text), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", output), err)
		}
		return nil
	}
	_, err := fmt.Print(text)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
