// Command specgen renders the primitive specifier implementations from a
// TOML table.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/calebcase/bitspec/internal/specgen"
)

func main() {
	table := flag.String("table", "specifiers.toml", "path to the specifier table")
	out := flag.String("out", "specifiers_gen.go", "path of the generated file")
	pkg := flag.String("package", "specifier", "package clause of the generated file")
	verbose := flag.Bool("v", false, "log each generated specifier")
	flag.Parse()

	if err := run(*table, *out, *pkg, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "specgen: %+v\n", err)
		os.Exit(1)
	}
}

func run(table, out, pkg string, verbose bool) (err error) {
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() {
			_ = l.Sync()
			specgen.SetLogger(nil)
		}()

		specgen.SetLogger(l)
	}

	t, err := specgen.Load(table)
	if err != nil {
		return err
	}

	src, err := specgen.Generate(t, specgen.Options{
		Package: pkg,
		Source:  filepath.Base(table),
	})
	if err != nil {
		return err
	}

	err = os.WriteFile(out, src, 0o644)
	if err != nil {
		return err
	}

	specgen.Logger().Info("wrote specifiers",
		zap.String("out", out),
		zap.Int("count", len(t.Specifiers)),
	)

	return nil
}
