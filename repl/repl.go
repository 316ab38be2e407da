package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/thurn/vow/lisp"
	"github.com/thurn/vow/parser/lexer"
	"github.com/thurn/vow/parser/rdparser"
	"github.com/thurn/vow/parser/token"
)

// RunRepl runs a read-eval-print loop against env until the input stream
// ends.  Each submitted line may contain several top-level forms, which are
// evaluated in order; a form left open at the end of a line is continued on
// the next.  Errors are reported and the loop continues with the next
// submission -- env is the only state carried across submissions.
func RunRepl(env *lisp.Arena, prompt string) {
	rl, err := readline.New(prompt)
	if err != nil {
		errln(err)
		return
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var p *rdparser.Interactive
	p = rdparser.NewInteractive(func() []*token.Token {
		for {
			if p.IsParsing() {
				rl.SetPrompt(contPrompt)
			} else {
				rl.SetPrompt(prompt)
			}
			line, err := rl.ReadSlice()
			if err == readline.ErrInterrupt {
				if !p.IsParsing() {
					continue
				}
				// Abandon the open form.  The injected error token unwinds
				// the parser, which discards anything else buffered.
				return []*token.Token{{Type: token.ERROR, Text: "interrupted", Source: &token.Location{}}}
			}
			if err != nil {
				return nil
			}
			toks := lexLine(line)
			if len(toks) > 0 {
				return toks
			}
		}
	})

	for {
		expr, err := p.ParseExpression()
		if err == io.EOF {
			break
		}
		if err != nil {
			errln(err)
			continue
		}
		v := env.Eval(expr, lisp.RootEnv)
		if lerr := lisp.GoError(v); lerr != nil {
			errln(lerr)
			continue
		}
		fmt.Println(v)
	}
}

// lexLine scans one submitted line into tokens, excluding the terminating
// EOF marker.  An empty result means the line held nothing but whitespace.
func lexLine(line []byte) []*token.Token {
	var toks []*token.Token
	s := token.NewScanner("repl", strings.NewReader(string(line)))
	lex := lexer.New(s)
	for {
		tok := lex.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
		if tok.Type == token.ERROR || tok.Type == token.INVALID {
			// The parser reports the error; nothing after it on the line is
			// trustworthy.
			return toks
		}
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
