package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/thurn/vow/lisp"
	"github.com/thurn/vow/parser"
	"github.com/thurn/vow/repl"
)

// rootCmd represents the bare command, which starts an interactive session
// on a terminal and otherwise evaluates standard input as a script.
var rootCmd = &cobra.Command{
	Use:   "vow",
	Short: "A minimal lisp interpreter",
	Long: `Vow is a minimal lisp interpreter.  Without arguments it starts an
interactive session when standard input is a terminal and otherwise
evaluates standard input as a script.`,
	Run: func(cmd *cobra.Command, args []string) {
		env := newEnv()
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			repl.RunRepl(env, "> ")
			return
		}
		lerr := env.Load("stdin", os.Stdin)
		if err := lisp.GoError(lerr); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newEnv returns an arena with the builtin library registered in its root
// frame.  The arena persists for the lifetime of the process.
func newEnv() *lisp.Arena {
	env, err := lisp.NewArena(lisp.WithReader(parser.NewReader()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	env.AddBuiltins()
	env.AddConstants()
	return env
}
