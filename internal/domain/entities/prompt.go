package entities

import (
	"fmt"
	"strings"
)

// AnalysisSystemPrompt frames the analysis model as a code reviewer.
const AnalysisSystemPrompt = "You are an expert code reviewer analyzing " +
	"code commits. Provide concise, focused summaries."

// FormatChangeSet renders a change set as the plain-text block embedded in
// the analysis prompt: one section per file, one "Line N" entry per change.
func FormatChangeSet(changeSet CommitChangeSet) string {
	var b strings.Builder

	for _, file := range changeSet.Changes {
		fmt.Fprintf(&b, "File: %s (status %s, +%d -%d)\n",
			file.FilePath, file.Status, file.Additions, file.Deletions)
		b.WriteString("Changes:\n")

		for _, change := range file.Changes {
			fmt.Fprintf(&b, "  Line %d (%s): %s\n",
				change.LineNumber, change.Kind, change.Content)
		}

		b.WriteString("\n")
	}

	return b.String()
}

// AnalysisPrompt builds the user prompt asking for an independent
// four-section commit analysis.
func AnalysisPrompt(changeSet CommitChangeSet) string {
	return BuildAnalysisPrompt(
		changeSet.Hash,
		changeSet.AuthorName,
		changeSet.Date,
		changeSet.Message,
		FormatChangeSet(changeSet),
	)
}

// BuildAnalysisPrompt assembles the analysis prompt from its raw parts.
// The MCP prompt surface exposes the same text with caller-supplied values.
func BuildAnalysisPrompt(hash, author, date, message, formattedDiff string) string {
	return fmt.Sprintf(`Analyze this commit and provide a concise, independent summary focusing only on the code itself.

Commit: %s
Author: %s
Date: %s

Commit Message:
%s

Code Changes:
%s

Please provide an analysis with the following sections:
1. Summary: A 1-2 sentence overview of what the commit does
2. Technical Changes: What specific code changes were made
3. Purpose: What problem this code is trying to solve
4. Code Quality: Any potential issues, improvements, or notes on code quality

Focus on providing an independent analysis of just this commit without referring to broader project context or progress tracking.`,
		hash, author, date, message, formattedDiff,
	)
}

// FallbackSummary produces a deterministic analysis used when the provider
// call fails, built from the commit message and the touched-file count.
func FallbackSummary(changeSet CommitChangeSet) string {
	topic := strings.TrimRight(strings.ToLower(changeSet.Message), ".")

	return fmt.Sprintf(`## Commit Analysis

### Summary
This commit implements %s through changes to %d files.

### Technical Changes
The changes primarily involve the modifications listed in the diff related to %s.

### Purpose
This code appears to be addressing the need for %s.

### Code Quality
Automated analysis was unavailable for this commit; review the diff directly for quality concerns.`,
		topic, len(changeSet.Changes), topic, topic)
}
