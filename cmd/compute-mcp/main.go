// Command compute-mcp exposes batch arithmetic evaluation as an MCP
// (Model Context Protocol) tool call.
//
// By default the server speaks the line-delimited JSON-RPC protocol over
// stdio, which is how MCP clients spawn it. With --http it instead serves
// the tool endpoints over HTTP:
//
//	compute-mcp                 # stdio transport
//	compute-mcp --http :8080    # GET /tools/list, POST /tools/call
//
// Logging goes to stderr in both modes so it never corrupts the stdio
// protocol stream.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v2"

	"github.com/sandrolain/gocompute"
)

const serverName = "compute-mcp"

const toolName = "evaluate_batch"

// grammarInstructions describes the accepted expression language to MCP
// clients during initialization.
const grammarInstructions = `This server evaluates basic arithmetic expressions.

Supported grammar:
  expression     := additive
  additive       := multiplicative ( ('+'|'-') multiplicative )*
  multiplicative := unary ( ('*'|'/') unary )*
  unary          := '-' unary | primary
  primary        := number | '(' additive ')'
  number         := digit+ ('.' digit+)?

Features: correct operator precedence, parentheses for grouping, decimal
numbers, unary minus, division by zero detection. No variables, functions
or scientific notation.`

// batchRecord is the per-expression outcome in a tool response.
type batchRecord struct {
	Expression string   `json:"expression"`
	Result     *float64 `json:"result,omitempty"`
	Error      string   `json:"error,omitempty"`
	Success    bool     `json:"success"`
}

// batchResponse wraps the outcome records of one tool call.
type batchResponse struct {
	Success bool          `json:"success"`
	Results []batchRecord `json:"results"`
}

func main() {
	app := &cli.App{
		Name:  serverName,
		Usage: "MCP server for arithmetic expression evaluation.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "http",
				Usage: "Serve the tool endpoints over HTTP on `ADDR` instead of stdio.",
			},
		},
		Action: func(c *cli.Context) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			slog.SetDefault(logger)

			if addr := c.String("http"); addr != "" {
				return serveHTTP(addr, logger)
			}
			return serveStdio(logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %s\n", err.Error())
		os.Exit(2)
	}
}

// serveStdio runs the MCP server over the stdio transport.
func serveStdio(logger *slog.Logger) error {
	logger.Info("compute-mcp server starting", "transport", "stdio", "version", gocompute.Version())
	err := server.ServeStdio(newMCPServer())
	logger.Info("server exiting")
	return err
}

// newMCPServer builds the MCP server with the evaluate_batch tool registered.
func newMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		gocompute.Version(),
		server.WithToolCapabilities(false),
		server.WithInstructions(grammarInstructions),
	)
	s.AddTool(evaluateBatchTool(), evaluateBatchHandler)
	return s
}

// evaluateBatchTool declares the evaluate_batch tool schema.
func evaluateBatchTool() mcp.Tool {
	return mcp.NewTool(toolName,
		mcp.WithDescription("Evaluate multiple arithmetic expressions"),
		mcp.WithArray("expressions",
			mcp.Required(),
			mcp.Description("Array of arithmetic expressions to evaluate"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// evaluateBatchHandler evaluates the expressions argument and returns one
// record per input, in input order. A malformed expression never aborts
// evaluation of the remaining ones.
func evaluateBatchHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := request.GetArguments()["expressions"].([]any)
	if !ok {
		return mcp.NewToolResultError("expressions must be an array of strings"), nil
	}

	inputs := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return mcp.NewToolResultError("expressions must be an array of strings"), nil
		}
		inputs = append(inputs, s)
	}

	out, err := evaluateBatchJSON(inputs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(out)), nil
}

// evaluateBatchJSON runs the batch pipeline and serializes the response.
// Inputs are wrapped verbatim: an empty entry yields an EmptyExpression
// error record in its slot rather than being skipped.
func evaluateBatchJSON(inputs []string) ([]byte, error) {
	results := gocompute.EvaluateStrings(inputs)

	resp := batchResponse{
		Success: true,
		Results: make([]batchRecord, len(results)),
	}
	for i, r := range results {
		rec := batchRecord{Expression: r.Expression.Source(), Success: r.Ok()}
		if r.Ok() {
			v := r.Value
			rec.Result = &v
		} else {
			rec.Error = r.Err.Error()
		}
		resp.Results[i] = rec
	}

	return json.Marshal(resp)
}

// callRequest is the body of POST /tools/call in HTTP mode.
type callRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// callArguments is the evaluate_batch argument payload.
type callArguments struct {
	Expressions []string `json:"expressions"`
}

// serveHTTP serves the tool endpoints over HTTP.
func serveHTTP(addr string, logger *slog.Logger) error {
	logger.Info("compute-mcp server starting", "transport", "http", "addr", addr)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: newRouter(logger),
	}
	return httpServer.ListenAndServe()
}

// newRouter builds the HTTP router with the MCP tool endpoints.
func newRouter(logger *slog.Logger) chi.Router {
	router := chi.NewRouter()

	router.Get("/tools/list", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode([]mcp.Tool{evaluateBatchTool()}); err != nil {
			logger.Error("writing tool list", "err", err)
		}
	})

	router.Post("/tools/call", func(w http.ResponseWriter, r *http.Request) {
		var req callRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "failed to decode JSON", http.StatusBadRequest)
			return
		}
		if req.Name != toolName {
			http.Error(w, fmt.Sprintf("unknown tool: %s", req.Name), http.StatusBadRequest)
			return
		}

		var args callArguments
		if err := json.Unmarshal(req.Arguments, &args); err != nil {
			http.Error(w, "expressions must be an array of strings", http.StatusBadRequest)
			return
		}

		out, err := evaluateBatchJSON(args.Expressions)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(out); err != nil {
			logger.Error("writing tool response", "err", err)
		}
	})

	return router
}
