package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/rivercross"
	"github.com/aretw0/rivercross/internal/presentation/console"
	"github.com/aretw0/rivercross/internal/presentation/graph"
	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/ports"
)

const graphURI = "rivercross://graph"

// Server wraps the solver and exposes the search tree as an MCP Server.
type Server struct {
	solver    ports.Solver
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(solver ports.Solver) *Server {
	s := &Server{
		solver:    solver,
		mcpServer: server.NewMCPServer("rivercross-mcp", strings.TrimSpace(rivercross.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on addr using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	baseURL := "http://localhost" + addr
	if !strings.HasPrefix(addr, ":") {
		baseURL = "http://" + addr
	}
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

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
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("solve",
		mcp.WithDescription("Solve the farmer, wolf, sheep and cabbage river crossing puzzle and list every solution as a chain of states."),
	), s.handleSolve)

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the full breadth-first search tree (nodes, stats, solutions) as JSON."),
	), s.handleGetGraph)

	s.mcpServer.AddTool(mcp.NewTool("get_solutions",
		mcp.WithDescription("Get every solution path with its individual crossings as JSON."),
	), s.handleGetSolutions)

	s.mcpServer.AddTool(mcp.NewTool("get_mermaid",
		mcp.WithDescription("Get the search tree as a Mermaid flowchart."),
		mcp.WithBoolean("highlight_solutions", mcp.Description("Style the nodes on solution paths")),
	), s.handleGetMermaid)

	s.mcpServer.AddTool(mcp.NewTool("try_move",
		mcp.WithDescription("Apply one crossing (F, FW, FS or FC) to the state of a tree node and report whether it is possible, safe and solving."),
		mcp.WithString("move", mcp.Required(), mcp.Description("Crossing token: F, FW, FS or FC (case-insensitive)")),
		mcp.WithNumber("node_id", mcp.Description("Tree node to start from (default 0, the initial state)")),
	), s.handleTryMove)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(graphURI, "River crossing search tree",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		res, err := s.solver.Solve(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to solve: %w", err)
		}
		jsonBytes, err := json.Marshal(res.View())
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      graphURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := s.solver.Solve(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
	}
	var buf bytes.Buffer
	console.PrintSolutions(&buf, res)
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleGetGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := s.solver.Solve(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
	}
	jsonBytes, err := json.Marshal(res.View())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleGetSolutions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := s.solver.Solve(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
	}
	solutions := make([]domain.SolutionView, 0, len(res.Solutions))
	for _, n := range res.Solutions {
		solutions = append(solutions, domain.SolutionOf(n))
	}
	jsonBytes, err := json.Marshal(solutions)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleGetMermaid(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := s.solver.Solve(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
	}
	var overlay *graph.GraphOverlay
	if highlight, _ := request.GetArguments()["highlight_solutions"].(bool); highlight {
		overlay = graph.SolutionOverlay(res)
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(res, overlay)), nil
}

// moveOutcome is the answer of the try_move tool.
type moveOutcome struct {
	From     domain.StateView  `json:"from"`
	Move     domain.Move       `json:"move"`
	Describe string            `json:"describe"`
	Possible bool              `json:"possible"`
	State    *domain.StateView `json:"state,omitempty"`
	Allowed  bool              `json:"allowed"`
	Solved   bool              `json:"solved"`
}

func (s *Server) handleTryMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	token, _ := args["move"].(string)
	m, err := domain.ParseMove(token)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id := 0
	if v, ok := args["node_id"].(float64); ok {
		id = int(v)
	}

	res, err := s.solver.Solve(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
	}
	n, err := res.Find(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := moveOutcome{
		From:     domain.ViewOf(n.State),
		Move:     m,
		Describe: m.Describe(),
	}
	if next, ok := n.State.Transition(m); ok {
		view := domain.ViewOf(next)
		out.Possible = true
		out.State = &view
		out.Allowed = next.IsAllowed()
		out.Solved = next.IsSolved()
	}

	jsonBytes, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
