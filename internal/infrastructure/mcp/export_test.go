package mcp

// CommitsResourceURI exports commitsResourceURI for testing.
const CommitsResourceURI = commitsResourceURI

// HandleAnalyzeCommit exports (*Server).handleAnalyzeCommit for testing.
var HandleAnalyzeCommit = (*Server).handleAnalyzeCommit //nolint:gochecknoglobals // test export

// HandleCommitsResource exports (*Server).handleCommitsResource for testing.
var HandleCommitsResource = (*Server).handleCommitsResource //nolint:gochecknoglobals // test export

// HandleCommitResource exports (*Server).handleCommitResource for testing.
var HandleCommitResource = (*Server).handleCommitResource //nolint:gochecknoglobals // test export

// HandleAnalyzePrompt exports (*Server).handleAnalyzePrompt for testing.
var HandleAnalyzePrompt = (*Server).handleAnalyzePrompt //nolint:gochecknoglobals // test export
