package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thurn/vow/lisp"
	"github.com/thurn/vow/parser"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := newEnv()
		for i := range sources {
			exprs, err := parser.ParseLVal(sources[i].name, sources[i].text)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, expr := range exprs {
				v := env.Eval(expr, lisp.RootEnv)
				if err := lisp.GoError(v); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				if runPrint {
					fmt.Println(v)
				}
			}
		}
	},
}

type runSource struct {
	name string
	text []byte
}

func runReadSources(args []string) ([]runSource, error) {
	sources := make([]runSource, len(args))
	if runExpression {
		for i := range args {
			sources[i] = runSource{"argument", []byte(args[i])}
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = runSource{path, b}
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
