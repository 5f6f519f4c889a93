package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: biopage <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Build biography page models from messages files")
	fmt.Fprintln(w, "  series     List image series found in an image directory")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'biopage help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: biopage render [messages...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the biography page model of one or more locales.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  messages   Messages files (JSON or YAML) named after their locale,")
	fmt.Fprintln(w, "             e.g. messages/ua.json (optional if config has content.messages)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -l, --locale <s>          Locale, comma list, or \"all\" (default all)")
	fmt.Fprintln(w, "  -k, --key <s>             Dotted key of the biography (default aboutPage.biography)")
	fmt.Fprintln(w, "      --catalog <dir>       Custom catalog directory")
	fmt.Fprintln(w, "      --catalog-name <s>    Catalog name (default biography)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Images:")
	fmt.Fprintln(w, "  -i, --images <dir>        Image directory")
	fmt.Fprintln(w, "      --prefix <path>       Web path images are served under (default /images)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default stdout)")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: json, yaml")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel renders (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug events and timing")
}

// printSeriesUsage prints usage for the series command.
func printSeriesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: biopage series [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the image series of a directory. Files are paired by name:")
	fmt.Fprintln(w, "<name>-1.<ext> and <name>-2.<ext> (jpg, jpeg, png, webp, avif).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --images <dir>        Image directory")
	fmt.Fprintln(w, "      --prefix <path>       Web path images are served under (default /images)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             List skipped files")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "series":
		printSeriesUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: biopage version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: biopage help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
