// Command turbojson is a thin CLI shim over the root package, useful for
// smoke-testing a document from a shell pipeline. It is explicitly out of
// scope for the engine itself (see SPEC_FULL.md §1) and carries none of
// the engine's own option surface beyond a couple of obvious flags.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	turbojson "github.com/openbindings/turbojson"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("turbojson", flag.ContinueOnError)
	sortKeys := fs.Bool("sort-keys", false, "emit object keys in sorted order")
	precise := fs.Bool("precise-float", false, "use exact decimal-to-double conversion when decoding")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	val, err := turbojson.Decode(data, turbojson.DefaultBuilder{}, turbojson.WithPreciseFloat(*precise))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	out, err := turbojson.Encode(turbojson.Wrap(val), turbojson.WithSortKeys(*sortKeys))
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	_, err = stdout.Write(append(out, '\n'))
	return err
}
