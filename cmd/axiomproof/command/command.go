package command

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/colorstring"
	wordwrap "github.com/mitchellh/go-wordwrap"
	"github.com/pkg/errors"
	"github.com/posener/complete"

	"github.com/gitrdm/boolproof/internal/logging"
	"github.com/gitrdm/boolproof/pkg/boolexpr"
	"github.com/gitrdm/boolproof/pkg/search"
)

// Exit codes for the axiomproof CLI.
const (
	ExitSuccess    = 0
	ExitParseError = 1
	ExitInvariant  = 2
)

// Config is axiomproof's entire configuration surface: two search
// bounds and two output toggles, populated directly from flags in
// Run -- small enough that a file-based config layer would be
// undergrounded complexity.
type Config struct {
	MaxDepth int
	MaxSize  int
	Debug    bool
	JSON     bool
}

// ProofCommand is the axiomproof CLI's only command: read a statements
// file and two expressions, search for a shortest rewrite proof
// between them, and print the result.
type ProofCommand struct {
	Meta
}

func (c *ProofCommand) Synopsis() string {
	return "Find a shortest rewrite proof between two Boolean expressions"
}

func (c *ProofCommand) Help() string {
	helpText := `
Usage: axiomproof [options] <statements-file> <start-expr> <target-expr>

  Parses the EXPR statements in <statements-file> (one per non-blank,
  non-'#'-comment line, validated but otherwise unused -- this mirrors
  the original batch-parse entry point) and searches for a shortest
  sequence of axiom rewrites from <start-expr> to <target-expr>.

Options:

  -max-depth=<n>   Maximum proof length in rewrite steps (default 6).
  -max-size=<n>    Maximum node count for any intermediate expression
                   considered during search (default 64).
  -debug           Print the parsed start/target expression trees,
                   indented one level per depth, before searching.
  -json            Emit the proof as JSON instead of a line listing.
`
	return strings.TrimSpace(wordwrap.WrapString(helpText, 78))
}

func (c *ProofCommand) Run(args []string) (exitCode int) {
	logger := logging.New("axiomproof")

	defer func() {
		if r := recover(); r != nil {
			logger.Error("internal invariant violation", "panic", r)
			c.Ui.Error(fmt.Sprintf("internal error: %v", r))
			exitCode = ExitInvariant
		}
	}()

	var cfg Config
	flags := c.NewFlagSet("axiomproof")
	flags.IntVar(&cfg.MaxDepth, "max-depth", 6, "maximum proof length in rewrite steps")
	flags.IntVar(&cfg.MaxSize, "max-size", 64, "maximum node count for an intermediate expression")
	flags.BoolVar(&cfg.Debug, "debug", false, "print parsed expression trees before searching")
	flags.BoolVar(&cfg.JSON, "json", false, "emit the proof as JSON")

	if err := flags.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return ExitParseError
	}

	positional := flags.Args()
	if len(positional) != 3 {
		c.Ui.Error("expected exactly 3 arguments: <statements-file> <start-expr> <target-expr>")
		c.Ui.Error(c.Help())
		return ExitParseError
	}
	fname, startText, targetText := positional[0], positional[1], positional[2]

	if err := c.validateStatementsFile(fname, logger); err != nil {
		c.Ui.Error(err.Error())
		return ExitParseError
	}

	start, err := boolexpr.Parse(startText)
	if err != nil {
		return c.reportParseError("start expression", err, logger)
	}
	target, err := boolexpr.Parse(targetText)
	if err != nil {
		return c.reportParseError("target expression", err, logger)
	}

	if cfg.Debug {
		c.Ui.Output("start:")
		c.Ui.Output(dumpTree(start, 0))
		c.Ui.Output("target:")
		c.Ui.Output(dumpTree(target, 0))
	}

	proof, found := search.FindShortestPath(context.Background(), start, target, cfg.MaxDepth, cfg.MaxSize)
	logger.Info("search complete", "found", found, "steps", len(proof))

	if cfg.JSON {
		c.printJSON(proof, found)
	} else {
		c.printListing(proof, found)
	}
	return ExitSuccess
}

// validateStatementsFile reads fname line by line, parsing every
// non-blank, non-'#'-comment line as an EXPR and accumulating every
// failure via go-multierror, so the caller sees every bad line from a
// single run instead of only the first.
func (c *ProofCommand) validateStatementsFile(fname string, logger hclog.Logger) error {
	f, err := os.Open(fname)
	if err != nil {
		return errors.Wrapf(err, "opening statements file %q", fname)
	}
	defer f.Close()

	var result *multierror.Error
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := boolexpr.Parse(line); err != nil {
			logger.Warn("statements file parse error", "line", lineNo, "error", err)
			result = multierror.Append(result, errors.Wrapf(err, "line %d", lineNo))
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading statements file %q", fname)
	}
	return result.ErrorOrNil()
}

func (c *ProofCommand) reportParseError(what string, err error, logger hclog.Logger) int {
	wrapped := errors.Wrapf(err, "parsing %s", what)
	logger.Warn("parse error", "what", what, "error", errors.Cause(wrapped))
	c.Ui.Error(wrapped.Error())
	return ExitParseError
}

func (c *ProofCommand) printListing(proof search.Proof, found bool) {
	colorize := isTerminal(os.Stdout)
	if !found {
		if colorize {
			c.Ui.Output(colorstring.Color("[red]not found[reset]"))
		} else {
			c.Ui.Output("not found")
		}
		return
	}
	for i, step := range proof {
		line := fmt.Sprintf("#%d %s w/ %s", i+1, boolexpr.Print(step.Expr), step.Axiom)
		if colorize {
			line = fmt.Sprintf("#%d %s w/ [cyan]%s[reset]", i+1, boolexpr.Print(step.Expr), step.Axiom)
			if i == len(proof)-1 {
				line = fmt.Sprintf("#%d [green]%s[reset] w/ [cyan]%s[reset]", i+1, boolexpr.Print(step.Expr), step.Axiom)
			}
			line = colorstring.Color(line)
		}
		c.Ui.Output(line)
	}
}

type jsonStep struct {
	Step  int    `json:"step"`
	Expr  string `json:"expr"`
	Axiom string `json:"axiom"`
}

type jsonResult struct {
	Found bool       `json:"found"`
	Proof []jsonStep `json:"proof"`
}

func (c *ProofCommand) printJSON(proof search.Proof, found bool) {
	result := jsonResult{Found: found, Proof: make([]jsonStep, len(proof))}
	for i, step := range proof {
		result.Proof[i] = jsonStep{Step: i + 1, Expr: boolexpr.Print(step.Expr), Axiom: step.Axiom}
	}
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("axiomproof: proof result failed to marshal: %v", err))
	}
	c.Ui.Output(string(encoded))
}

// dumpTree renders e indented two spaces per depth, one line per node.
func dumpTree(e boolexpr.Expr, depth int) string {
	var b strings.Builder
	dumpTreeInto(&b, e, depth)
	return strings.TrimRight(b.String(), "\n")
}

func dumpTreeInto(b *strings.Builder, e boolexpr.Expr, depth int) {
	fmt.Fprintf(b, "%s%s\n", strings.Repeat("  ", depth), nodeLabel(e))
	for _, c := range e.Children {
		dumpTreeInto(b, c, depth+1)
	}
}

func nodeLabel(e boolexpr.Expr) string {
	switch e.Kind {
	case boolexpr.LitKind:
		return fmt.Sprintf("%d", e.Bit)
	case boolexpr.VarKind:
		return e.Name
	default:
		return e.Op.String()
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd())
}

// AutocompleteArgs offers file completion for every positional
// argument, the two expression arguments included.
func (c *ProofCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictFiles("*")
}

// AutocompleteFlags offers name completion for all four of axiomproof's
// flags; none has predicted values (-max-depth/-max-size take free-form
// integers, -debug/-json take no value).
func (c *ProofCommand) AutocompleteFlags() complete.Flags {
	return complete.Flags{
		"-max-depth": complete.PredictNothing,
		"-max-size":  complete.PredictNothing,
		"-debug":     complete.PredictNothing,
		"-json":      complete.PredictNothing,
	}
}
