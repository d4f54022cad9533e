// Command compute is a command-line arithmetic calculator.
//
// Usage:
//
//	compute eval "2 + 3 * 4"
//	compute batch "2+3" "5/0" "3*4" --format pretty
//	echo "2+2" | compute batch --stdin
//	compute repl
//	compute ast "(2 + 3) * 4"
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
	"github.com/urfave/cli/v2"

	"github.com/sandrolain/gocompute"
	"github.com/sandrolain/gocompute/pkg/types"
)

// Output formats.
const (
	formatPlain  = "plain"
	formatJSON   = "json"
	formatPretty = "pretty"
)

// evalRecord is the JSON shape of a single evaluation outcome.
type evalRecord struct {
	Expression string   `json:"expression"`
	Result     *float64 `json:"result,omitempty"`
	Error      string   `json:"error,omitempty"`
	Success    bool     `json:"success"`
}

// batchDocument is the JSON shape of a batch run.
type batchDocument struct {
	Results []evalRecord `json:"results"`
	Summary batchSummary `json:"summary"`
}

type batchSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   formatPlain,
		Usage:   "Output format: plain, json or pretty.",
	}
}

func main() {
	app := &cli.App{
		Name:  "compute",
		Usage: "A command-line arithmetic calculator.",
		Flags: []cli.Flag{formatFlag()},
		Commands: []*cli.Command{
			{
				Name:      "eval",
				Usage:     "Evaluate a single arithmetic expression.",
				ArgsUsage: "EXPRESSION",
				Flags:     []cli.Flag{formatFlag()},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("eval requires exactly one expression argument", 2)
					}
					return evalAction(c.Args().First(), c.String("format"))
				},
			},
			{
				Name:      "batch",
				Usage:     "Evaluate multiple expressions in batch.",
				ArgsUsage: "[EXPRESSION...]",
				Flags: []cli.Flag{
					formatFlag(),
					&cli.BoolFlag{
						Name:  "stdin",
						Usage: "Read expressions from stdin, one per line.",
					},
				},
				Action: func(c *cli.Context) error {
					inputs := c.Args().Slice()
					if c.Bool("stdin") {
						var err error
						inputs, err = readStdinExpressions()
						if err != nil {
							return cli.Exit(err.Error(), 1)
						}
					}
					return batchAction(inputs, c.String("format"))
				},
			},
			{
				Name:  "repl",
				Usage: "Interactive REPL mode.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "show-history",
						Aliases: []string{"H"},
						Usage:   "Show calculation history on exit.",
					},
				},
				Action: func(c *cli.Context) error {
					return runRepl(c.Bool("show-history"))
				},
			},
			{
				Name:      "ast",
				Usage:     "Parse an expression and dump its syntax tree.",
				ArgsUsage: "EXPRESSION",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("ast requires exactly one expression argument", 2)
					}
					return astAction(c.Args().First())
				},
			},
		},
		// A bare expression argument evaluates directly, without a subcommand.
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("no expression provided, use --help for usage information", 2)
			}
			return evalAction(strings.Join(c.Args().Slice(), " "), c.String("format"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %s\n", err.Error())
		os.Exit(2)
	}
}

// evalAction evaluates one expression and prints it in the given format.
func evalAction(input, format string) error {
	value, err := gocompute.Evaluate(input)

	switch format {
	case formatJSON:
		rec := evalRecord{Expression: input, Success: err == nil}
		if err != nil {
			rec.Error = err.Error()
		} else {
			rec.Result = &value
		}
		out, merr := json.Marshal(rec)
		if merr != nil {
			return cli.Exit(merr.Error(), 1)
		}
		fmt.Println(string(out))
		if err != nil {
			return cli.Exit("", 1)
		}

	case formatPretty:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error evaluating '%s': %s\n", input, err)
			return cli.Exit("", 1)
		}
		fmt.Printf("%s = %s\n", input, formatValue(value))

	default:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return cli.Exit("", 1)
		}
		fmt.Println(formatValue(value))
	}

	return nil
}

// batchAction evaluates the inputs as a batch and prints the results.
// Blank entries are skipped up front (the optional-returning Expression
// constructor policy); a failing entry never affects the others.
func batchAction(inputs []string, format string) error {
	exprs := make([]types.Expression, 0, len(inputs))
	for _, input := range inputs {
		if expr, ok := types.NewExpression(input); ok {
			exprs = append(exprs, expr)
		}
	}

	results := gocompute.EvaluateBatch(exprs)

	successful := 0
	for _, r := range results {
		if r.Ok() {
			successful++
		}
	}

	switch format {
	case formatJSON:
		doc := batchDocument{
			Results: make([]evalRecord, len(results)),
			Summary: batchSummary{
				Total:      len(results),
				Successful: successful,
				Failed:     len(results) - successful,
			},
		}
		for i, r := range results {
			rec := evalRecord{Expression: r.Expression.Source(), Success: r.Ok()}
			if r.Ok() {
				v := r.Value
				rec.Result = &v
			} else {
				rec.Error = r.Err.Error()
			}
			doc.Results[i] = rec
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		fmt.Println(string(out))

	case formatPretty:
		fmt.Println("Batch Evaluation Results:")
		fmt.Println("========================")
		for _, r := range results {
			if r.Ok() {
				fmt.Printf("✓ %s = %s\n", r.Expression, formatValue(r.Value))
			} else {
				fmt.Printf("✗ %s: %s\n", r.Expression, r.Err)
			}
		}
		fmt.Println("------------------------")
		fmt.Printf("Summary: %d successful, %d failed out of %d total\n",
			successful, len(results)-successful, len(results))

	default:
		for _, r := range results {
			if r.Ok() {
				fmt.Printf("%s = %s\n", r.Expression, formatValue(r.Value))
			} else {
				fmt.Fprintf(os.Stderr, "%s: Error: %s\n", r.Expression, r.Err)
			}
		}
	}

	return nil
}

// astAction parses the input and dumps the resulting tree along with its
// canonical textual form.
func astAction(input string) error {
	node, err := gocompute.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return cli.Exit("", 1)
	}

	litter.Dump(node)
	fmt.Printf("canonical: %s\n", node.String())
	return nil
}

// readStdinExpressions reads one expression per line, skipping blanks.
func readStdinExpressions() ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading expressions from stdin")
	}
	return inputs, nil
}

// historyEntry is one line of REPL history.
type historyEntry struct {
	expression string
	value      float64
	err        error
}

// runRepl runs the interactive read-eval-print loop.
func runRepl(showHistory bool) error {
	var history []historyEntry

	fmt.Printf("Compute REPL %s\n", gocompute.Version())
	fmt.Println("Type expressions to evaluate, 'help' for commands, or 'quit' to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

loop:
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "quit", "exit":
			break loop
		case "help":
			fmt.Println("Commands:")
			fmt.Println("  help     - Show this help message")
			fmt.Println("  history  - Show calculation history")
			fmt.Println("  clear    - Clear history")
			fmt.Println("  quit     - Exit REPL")
			fmt.Println()
			fmt.Println("Examples:")
			fmt.Println("  2 + 2")
			fmt.Println("  (5 * 3) - 7")
			fmt.Println("  3.14159 * 2")
		case "history":
			if len(history) == 0 {
				fmt.Println("No calculations yet.")
			} else {
				fmt.Println("History:")
				for i, h := range history {
					if h.err != nil {
						fmt.Printf("  %d: %s (Error: %s)\n", i+1, h.expression, h.err)
					} else {
						fmt.Printf("  %d: %s = %s\n", i+1, h.expression, formatValue(h.value))
					}
				}
			}
		case "clear":
			history = history[:0]
			fmt.Println("History cleared.")
		case "":
			continue
		default:
			value, err := gocompute.Evaluate(line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			} else {
				fmt.Println(formatValue(value))
			}
			history = append(history, historyEntry{expression: line, value: value, err: err})
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading REPL input")
	}

	if showHistory && len(history) > 0 {
		fmt.Println("\nCalculation History:")
		for _, h := range history {
			if h.err != nil {
				fmt.Printf("  %s (Error: %s)\n", h.expression, h.err)
			} else {
				fmt.Printf("  %s = %s\n", h.expression, formatValue(h.value))
			}
		}
	}

	return nil
}

// formatValue prints a float64 without exponent notation, matching the
// canonical form used by the AST printer.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
