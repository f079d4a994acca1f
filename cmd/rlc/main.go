/*
Rlc is the Rust-lite front-end toolchain CLI: it lexes and parses programs
written in the small Rust-flavored subset language and reports the results
as text and (for parse) a rendered syntax tree.

Usage:

	rlc lex <path>
		Scans the file at path and prints one token per line to stdout.

	rlc parse <path> [--out-dir DIR] [--config FILE]
		Scans and parses the file at path. Writes <out-dir>/tokens.txt and
		<out-dir>/ast.dot, and -- best effort, if a `dot` binary is present
		on $PATH -- renders <out-dir>/ast.png from it.

	rlc table
		Builds the grammar's canonical LR(1) table and prints a dump of its
		states to stdout, for debugging the grammar itself.

Every invocation is tagged with a random correlation ID, printed in any
ERROR: line so that multiple runs writing into the same output directory
can be told apart.

The flags are:

	--out-dir DIR
		Where parse's output files are written. Defaults to "output".

	--config FILE
		A TOML file overriding the default output directory and lexer
		options; see internal/rlconfig.

	-v, --version
		Print the current version and exit.
*/
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/dekarrin/rustlite"
	"github.com/dekarrin/rustlite/internal/rlconfig"
	"github.com/dekarrin/rustlite/internal/version"
	"github.com/dekarrin/rustlite/lex"
)

const (
	ExitSuccess = iota
	ExitUsageError
	ExitBuildError
	ExitSourceError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	outDir      = pflag.String("out-dir", "", "Directory to write parse output files into; overrides --config")
	configFile  = pflag.String("config", "", "TOML config file overriding default output settings")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	runID := uuid.NewString()

	args := pflag.Args()
	if len(args) < 1 {
		fail(runID, ExitUsageError, "expected a subcommand: lex, parse, or table")
		return
	}

	cfg := rlconfig.Default()
	if *configFile != "" {
		loaded, err := rlconfig.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR[%s]: reading config: %s\n", runID, err)
			returnCode = ExitUsageError
			return
		}
		cfg = loaded
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	switch args[0] {
	case "lex":
		runLex(runID, args[1:], cfg)
	case "parse":
		runParse(runID, args[1:], cfg)
	case "table":
		runTable(runID)
	default:
		fmt.Fprintf(os.Stderr, "ERROR[%s]: unknown subcommand %q\n", runID, args[0])
		returnCode = ExitUsageError
	}
}

func fail(runID string, code int, format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "ERROR[%s]: "+format+"\n", append([]interface{}{runID}, a...)...)
	returnCode = code
}

func runLex(runID string, args []string, cfg rlconfig.Config) {
	if len(args) != 1 {
		fail(runID, ExitUsageError, "lex: expected exactly one file path")
		return
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fail(runID, ExitUsageError, "%s", err)
		return
	}
	toks, err := lex.Tokenize(string(src), lex.Options{NormalizeWidth: cfg.NormalizeWidth})
	if err != nil {
		fail(runID, ExitSourceError, "%s", err)
	}
	for _, tok := range toks {
		fmt.Println(tok.String())
	}
}

func runParse(runID string, args []string, cfg rlconfig.Config) {
	if len(args) != 1 {
		fail(runID, ExitUsageError, "parse: expected exactly one file path")
		return
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fail(runID, ExitUsageError, "%s", err)
		return
	}

	fe, err := rustlite.NewFrontend(lex.Options{NormalizeWidth: cfg.NormalizeWidth})
	if err != nil {
		fail(runID, ExitBuildError, "%s", err)
		return
	}

	tree, toks, err := fe.Parse(string(src))
	if err != nil {
		fail(runID, ExitSourceError, "%s", err)
		return
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fail(runID, ExitBuildError, "%s", err)
		return
	}

	tokensPath := filepath.Join(cfg.OutputDir, "tokens.txt")
	tokensOut := fmt.Sprintf("# run %s\n", runID)
	for _, tok := range toks {
		tokensOut += tok.String() + "\n"
	}
	if err := os.WriteFile(tokensPath, []byte(tokensOut), 0o644); err != nil {
		fail(runID, ExitBuildError, "%s", err)
		return
	}

	dotPath := filepath.Join(cfg.OutputDir, "ast.dot")
	if err := os.WriteFile(dotPath, []byte(tree.DOT(fe.Grammar)), 0o644); err != nil {
		fail(runID, ExitBuildError, "%s", err)
		return
	}

	pngPath := filepath.Join(cfg.OutputDir, "ast.png")
	if dotBin, err := exec.LookPath("dot"); err == nil {
		cmd := exec.Command(dotBin, "-Tpng", dotPath, "-o", pngPath)
		if out, err := cmd.CombinedOutput(); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING[%s]: rendering ast.png: %s: %s\n", runID, err, out)
		}
	} else {
		fmt.Fprintf(os.Stderr, "WARNING[%s]: no `dot` binary on $PATH, skipping ast.png\n", runID)
	}
}

func runTable(runID string) {
	fe, err := rustlite.NewFrontend(lex.Options{})
	if err != nil {
		fail(runID, ExitBuildError, "%s", err)
		return
	}
	fmt.Print(fe.Table.String())
}
