// Package mcp implements a Model Context Protocol server exposing the
// commit analysis workflow as MCP tools, resources, and prompts over stdio
// transport.
package mcp

import (
	"context"
	"fmt"
	"sort"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/commitlens/commitlens/internal/domain/commands"
	"github.com/commitlens/commitlens/internal/domain/entities"
	"github.com/commitlens/commitlens/internal/domain/repositories"
)

const (
	// serverName is the MCP server implementation name.
	serverName = "commitlens"
	// serverVersion is the MCP server implementation version.
	serverVersion = "1.0.0"
)

// Server wraps the MCP SDK server with the commit analysis registrations.
type Server struct {
	inner    *mcpsdk.Server
	settings *entities.Settings
	analyze  commands.Analyze
	store    repositories.SummaryRepository
	tools    []string
}

// NewServer creates an MCP server with the analysis tool, the summary
// resources, and the analysis prompt registered.
func NewServer(
	settings *entities.Settings,
	analyze commands.Analyze,
	store repositories.SummaryRepository,
) *Server {
	inner := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    serverName,
			Version: serverVersion,
		},
		&mcpsdk.ServerOptions{},
	)

	srv := &Server{
		inner:    inner,
		settings: settings,
		analyze:  analyze,
		store:    store,
	}

	srv.registerTools()
	srv.registerResources()
	srv.registerPrompts()

	return srv
}

// ListToolNames returns the sorted names of all registered tools.
func (s *Server) ListToolNames() []string {
	names := make([]string, len(s.tools))
	copy(names, s.tools)
	sort.Strings(names)

	return names
}

// Run starts the MCP server on stdio transport. It blocks until the context
// is canceled or the connection closes.
func (s *Server) Run(ctx context.Context) error {
	err := s.inner.Run(ctx, &mcpsdk.StdioTransport{})
	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

// RunWithTransport starts the MCP server on the given transport. It blocks
// until the context is canceled or the connection closes.
func (s *Server) RunWithTransport(ctx context.Context, transport mcpsdk.Transport) error {
	err := s.inner.Run(ctx, transport)
	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolNameAnalyzeCommit,
		Description: analyzeCommitDescription,
	}, s.handleAnalyzeCommit)

	s.tools = append(s.tools, ToolNameAnalyzeCommit)
}

func (s *Server) registerResources() {
	s.inner.AddResource(&mcpsdk.Resource{
		Name:        "commits",
		URI:         commitsResourceURI,
		Description: "List of all analyzed commits",
		MIMEType:    "text/plain",
	}, s.handleCommitsResource)

	s.inner.AddResourceTemplate(&mcpsdk.ResourceTemplate{
		Name:        "commit",
		URITemplate: commitResourceURITemplate,
		Description: "Analysis summary for one commit, by short hash",
		MIMEType:    "text/plain",
	}, s.handleCommitResource)
}

func (s *Server) registerPrompts() {
	s.inner.AddPrompt(&mcpsdk.Prompt{
		Name:        PromptNameAnalyzeCommit,
		Description: "Four-section commit analysis prompt",
		Arguments: []*mcpsdk.PromptArgument{
			{Name: "commit_hash", Description: "Short commit hash", Required: true},
			{Name: "author", Description: "Commit author name", Required: true},
			{Name: "date", Description: "Commit timestamp", Required: true},
			{Name: "message", Description: "Commit message", Required: true},
			{Name: "formatted_diff", Description: "Formatted code changes", Required: true},
		},
	}, s.handleAnalyzePrompt)
}
