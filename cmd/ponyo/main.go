package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pgavlin/ponyo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	runExpression bool
	runPrint      bool
	noPrelude     bool
	maxDepth      int
)

var rootCmd = &cobra.Command{
	Use:   "ponyo [flags] [file ...]",
	Short: "A small Scheme interpreter",
	Long: `Run Scheme code from files, from the command line or from standard input.

With no arguments ponyo starts an interactive session if standard input is a
terminal, and otherwise evaluates standard input, printing each result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as Scheme source instead of file names")
	rootCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print the value of each top-level form")
	rootCmd.Flags().BoolVar(&noPrelude, "no-prelude", false,
		"Do not define the procedures written in Scheme")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 10000,
		"Maximum depth of nested procedure calls (0 for no limit). A recursive\n"+
			"procedure that walks a list uses one level per element")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ponyo: ")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	stdin, stdout := cmd.InOrStdin(), cmd.OutOrStdout()

	in, err := ponyo.New(ponyo.Config{
		Stdout:    stdout,
		Stdin:     stdin,
		MaxDepth:  maxDepth,
		NoPrelude: noPrelude,
	})
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case runExpression:
		for _, src := range args {
			if err := in.Run(strings.NewReader(src), runPrint); err != nil {
				return err
			}
		}
		return nil
	case len(args) > 0:
		for _, path := range args {
			if err := runFile(in, path); err != nil {
				return err
			}
		}
		return nil
	case isTerminal(stdin):
		return repl(in)
	default:
		return in.Run(stdin, true)
	}
}

func runFile(in *ponyo.Interpreter, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return in.Run(f, runPrint)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
