package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/provide-io/createicns/pkg/icns/runner"
	"github.com/provide-io/createicns/pkg/logging"
	"github.com/provide-io/createicns/pkg/utils/outputhandle"
)

const version = "0.4.0"

// Exit codes
const (
	exitFailure = 1
	exitPanic   = 101
)

var (
	outputType  = runner.Infer
	iconsetFlag bool
	listFormats bool
	packagerArg string
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion() {
	fmt.Printf("createicns %s\n", version)
	fmt.Printf("Built: %s\n", getBuildTimestamp())
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "createicns [flags] <input> [<output>]",
		Short: "Create an icns file or iconset from an image",
		Long: `Create an icns file, an iconset or a Windows icon from an image.

The input must be square. PDF and SVG documents are rendered at a resolution
large enough for the 1024px variant. When <output> is omitted it is derived
from <input>; when it names an existing directory the result is placed inside.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          run,
	}

	rootCmd.Flags().VarP(&outputType, "type", "t", "Output type (icns, iconset, ico, infer)")
	rootCmd.Flags().BoolVarP(&iconsetFlag, "iconset", "s", false, "Write an iconset instead of an icns file")
	rootCmd.Flags().BoolVarP(&listFormats, "formats", "l", false, "List the valid input formats")
	rootCmd.Flags().StringVar(&packagerArg, "packager", "", "ICNS converter (auto, iconutil, native); defaults to CREATEICNS_PACKAGER or auto")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	if err := rootCmd.Flags().MarkDeprecated("iconset", "use --type iconset instead"); err != nil {
		panic(err)
	}
}

func main() {
	// Set up panic recovery to return specific exit code
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			debug.PrintStack()
			os.Exit(exitPanic)
		}
	}()

	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion()
		os.Exit(0)
	}

	configureColor(outputhandle.StandardError.IsTerminal())

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if versionFlag {
		printVersion()
		return nil
	}
	if len(args) == 0 && !listFormats {
		return cmd.Help()
	}

	level, source := logging.GetLogLevel(logLevel)
	logger, closeLog := logging.OpenLogger("createicns", level)
	defer closeLog()
	logger.Debug("🎛️ Log level selected", "level", level, "source", source)

	if iconsetFlag {
		outputType = runner.Iconset
	}

	if len(args) > 0 {
		var output string
		if len(args) > 1 {
			output = args[1]
		}
		create := runner.NewCreate(args[0], output, outputType,
			runner.WithLogger(logger),
			runner.WithPackager(packagerArg),
		)
		if err := create.Run(); err != nil {
			logger.Error("❌ Conversion failed", "input", create.Input(), "output", create.Output(), "error", err)
			return err
		}
	}

	if listFormats {
		fmt.Fprintln(cmd.OutOrStdout(), formatsTable(runner.ListFormats(), outputhandle.StandardOutput.IsTerminal()))
	}
	return nil
}
