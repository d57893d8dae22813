package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/commitlens/commitlens/internal/domain/entities"
)

// Tool, resource, and prompt identifiers.
const (
	ToolNameAnalyzeCommit   = "analyze_commit"
	PromptNameAnalyzeCommit = "analyze_commit_prompt"

	commitsResourceURI        = "commitlens://commits"
	commitResourceURITemplate = "commitlens://commits/{hash}"
)

const analyzeCommitDescription = "Analyze a commit change set and generate " +
	"an independent review summary. Results are cached per commit hash."

// ErrUnknownCommit indicates a resource read for a hash that was never
// analyzed.
var ErrUnknownCommit = errors.New("no summary found for commit")

// AnalyzeCommitInput is the input schema for the analyze_commit tool.
type AnalyzeCommitInput struct {
	ChangeSet entities.CommitChangeSet `json:"change_set" jsonschema:"the commit change set to analyze"`
}

// AnalyzeCommitOutput is the structured output of the analyze_commit tool.
type AnalyzeCommitOutput struct {
	Hash    string `json:"hash"`
	Summary string `json:"summary"`
}

// handleAnalyzeCommit processes analyze_commit tool calls.
func (s *Server) handleAnalyzeCommit(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input AnalyzeCommitInput,
) (*mcpsdk.CallToolResult, AnalyzeCommitOutput, error) {
	summary, err := s.analyze.Execute(ctx, s.settings, input.ChangeSet)
	if err != nil {
		return errorResult(fmt.Errorf("analyze commit: %w", err))
	}

	output := AnalyzeCommitOutput{
		Hash:    input.ChangeSet.Hash,
		Summary: summary,
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: summary},
		},
	}, output, nil
}

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, AnalyzeCommitOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, AnalyzeCommitOutput{}, nil
}

// handleCommitsResource serves the list of analyzed commits, one bullet per
// commit.
func (s *Server) handleCommitsResource(
	_ context.Context,
	req *mcpsdk.ReadResourceRequest,
) (*mcpsdk.ReadResourceResult, error) {
	analyzed := s.store.All()

	lines := make([]string, 0, len(analyzed))
	for _, a := range analyzed {
		lines = append(lines, fmt.Sprintf(
			"- %s: %s by %s",
			a.ChangeSet.Hash, a.ChangeSet.Message, a.ChangeSet.AuthorName,
		))
	}

	text := strings.Join(lines, "\n")
	if text == "" {
		text = "No commits have been analyzed yet."
	}

	return textResource(req.Params.URI, text), nil
}

// handleCommitResource serves one commit's summary by short hash.
func (s *Server) handleCommitResource(
	_ context.Context,
	req *mcpsdk.ReadResourceRequest,
) (*mcpsdk.ReadResourceResult, error) {
	hash := strings.TrimPrefix(req.Params.URI, commitsResourceURI+"/")

	analyzed, ok := s.store.Get(hash)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCommit, hash)
	}

	return textResource(req.Params.URI, analyzed.Summary), nil
}

func textResource(uri, text string) *mcpsdk.ReadResourceResult {
	return &mcpsdk.ReadResourceResult{
		Contents: []*mcpsdk.ResourceContents{
			{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     text,
			},
		},
	}
}

// handleAnalyzePrompt renders the analysis prompt from caller-supplied
// arguments.
func (s *Server) handleAnalyzePrompt(
	_ context.Context,
	req *mcpsdk.GetPromptRequest,
) (*mcpsdk.GetPromptResult, error) {
	args := req.Params.Arguments

	prompt := entities.BuildAnalysisPrompt(
		args["commit_hash"],
		args["author"],
		args["date"],
		args["message"],
		args["formatted_diff"],
	)

	return &mcpsdk.GetPromptResult{
		Description: "Independent commit analysis",
		Messages: []*mcpsdk.PromptMessage{
			{
				Role:    "assistant",
				Content: &mcpsdk.TextContent{Text: entities.AnalysisSystemPrompt},
			},
			{
				Role:    "user",
				Content: &mcpsdk.TextContent{Text: prompt},
			},
		},
	}, nil
}
