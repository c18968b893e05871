// Package mcp exposes machine execution as an MCP server, so agent hosts can
// define and run machines as tools.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/spindle"
	"github.com/aretw0/spindle/internal/runtime"
	"github.com/aretw0/spindle/pkg/codec"
	"github.com/aretw0/spindle/pkg/machine"
	"github.com/aretw0/spindle/pkg/registry"
)

// RunResponse is the structured result of the run tools.
type RunResponse struct {
	Outcome machine.Outcome `json:"outcome" jsonschema_description:"The result of the run"`
	Input   string          `json:"input" jsonschema_description:"The input string that was run"`
}

// ListResponse is the structured result of list_examples.
type ListResponse struct {
	Examples []ExampleInfo `json:"examples" jsonschema_description:"The machines available by name"`
}

// ExampleInfo describes one registered machine.
type ExampleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Server wraps the execution engine and exposes it as an MCP Server.
type Server struct {
	registry  *registry.Registry
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance resolving names against reg.
func NewServer(reg *registry.Registry) *Server {
	s := &Server{
		registry:  reg,
		mcpServer: server.NewMCPServer("spindle-mcp", spindle.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: run_machine
	runTool := mcp.NewTool("run_machine",
		mcp.WithDescription("Run a machine definition on an input string and report whether it accepts, rejects or exhausts the step budget."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("JSON machine document: states, alphabet, tape_alphabet, initial_state, accept_states, reject_states, transitions")),
		mcp.WithString("input", mcp.Description("Input string written on the tape (may be empty)")),
		mcp.WithNumber("max_steps", mcp.Description("Step budget before the run is reported as undetermined (default 10000)")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRunMachine))

	// TOOL: run_example
	exampleTool := mcp.NewTool("run_example",
		mcp.WithDescription("Run one of the built-in example machines by name."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Example machine name, see list_examples")),
		mcp.WithString("input", mcp.Description("Input string written on the tape (may be empty)")),
		mcp.WithNumber("max_steps", mcp.Description("Step budget before the run is reported as undetermined (default 10000)")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(exampleTool, mcp.NewStructuredToolHandler(s.handleRunExample))

	// TOOL: list_examples
	listTool := mcp.NewTool("list_examples",
		mcp.WithDescription("List the machines available to run_example."),
		mcp.WithOutputSchema[ListResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleListExamples))

	// TOOL: describe_machine
	s.mcpServer.AddTool(mcp.NewTool("describe_machine",
		mcp.WithDescription("Get the full definition of a built-in example machine as a JSON document."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Example machine name")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.GetString("name", "")
		entry, err := s.registry.Lookup(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		jsonBytes, err := codec.FromDefinition(entry.Definition).EncodeJSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) registerResources() {
	// EXPOSE: spindle://format
	s.mcpServer.AddResource(mcp.NewResource("spindle://format", "Machine Document Format",
		mcp.WithMIMEType("text/markdown"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "spindle://format",
				MIMEType: "text/markdown",
				Text:     codec.FormatHelp,
			},
		}, nil
	})
}

// Handler methods for structured tools

func (s *Server) handleRunMachine(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	raw, _ := args["machine"].(string)
	if raw == "" {
		return RunResponse{}, fmt.Errorf("machine document is required")
	}

	doc, err := codec.DecodeJSON([]byte(raw))
	if err != nil {
		return RunResponse{}, err
	}
	def, err := doc.Definition()
	if err != nil {
		return RunResponse{}, err
	}

	return s.run(def, args)
}

func (s *Server) handleRunExample(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	name, _ := args["name"].(string)
	entry, err := s.registry.Lookup(name)
	if err != nil {
		return RunResponse{}, err
	}

	return s.run(entry.Definition, args)
}

func (s *Server) handleListExamples(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ListResponse, error) {
	entries := s.registry.List()
	infos := make([]ExampleInfo, len(entries))
	for i, e := range entries {
		infos[i] = ExampleInfo{Name: e.Name, Description: e.Description}
	}
	return ListResponse{Examples: infos}, nil
}

func (s *Server) run(def *machine.Definition, args map[string]interface{}) (RunResponse, error) {
	input, _ := args["input"].(string)

	engine := runtime.NewEngine()
	maxSteps := engine.MaxSteps()
	// JSON numbers arrive as float64.
	if v, ok := args["max_steps"].(float64); ok && v > 0 {
		maxSteps = int(v)
	}

	out, err := engine.RunWithLimit(def, input, maxSteps)
	if err != nil {
		return RunResponse{}, fmt.Errorf("run failed: %w", err)
	}

	return RunResponse{Outcome: out, Input: input}, nil
}
