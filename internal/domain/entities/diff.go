package entities

import (
	"regexp"
	"strconv"
	"strings"
)

// hunkHeaderPattern matches a unified-diff hunk header and captures the
// post-image start line (newStart). Lengths are optional: one-line hunks
// are emitted by git as "-n +m".
var hunkHeaderPattern = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// ParsedDiff is the outcome of parsing one file's unified diff.
// Additions and Deletions equal the number of Changes entries of the
// corresponding kind; Changes preserves diff-text order.
type ParsedDiff struct {
	Additions int
	Deletions int
	Changes   []LineChange
}

// ParseUnifiedDiff turns zero-context unified-diff text into line-level
// change records in a single pass.
//
// A line cursor tracks the post-image position: each valid hunk header
// re-seeds it to the hunk's newStart, context lines and additions advance
// it, deletions do not. A deletion is therefore recorded at the position
// the next post-image line would take, which after the first deletion in a
// hunk mixing additions and deletions no longer corresponds to a real file
// position. Downstream consumers tolerate the approximation and rely on
// it staying stable, so it is kept as is.
//
// Malformed hunk headers are skipped: the parser drops out of the hunk and
// ignores body lines until the next valid header. Empty input yields a
// zero-value result.
func ParseUnifiedDiff(diffText string) ParsedDiff {
	var parsed ParsedDiff

	inHunk := false
	cursor := 0

	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			m := hunkHeaderPattern.FindStringSubmatch(line)
			if m == nil {
				inHunk = false
				continue
			}
			cursor, _ = strconv.Atoi(m[2])
			inHunk = true

		case !inHunk:
			// Preamble, or body of a skipped hunk.

		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			// File headers carry no content and do not move the cursor.

		case strings.HasPrefix(line, "+"):
			parsed.Changes = append(parsed.Changes, LineChange{
				Kind:       Addition,
				LineNumber: cursor,
				Content:    line[1:],
			})
			parsed.Additions++
			cursor++

		case strings.HasPrefix(line, "-"):
			parsed.Changes = append(parsed.Changes, LineChange{
				Kind:       Deletion,
				LineNumber: cursor,
				Content:    line[1:],
			})
			parsed.Deletions++

		default:
			cursor++ // context line
		}
	}

	return parsed
}

// ParseNameStatus parses the output of a name-status diff into changed-file
// entries. Each line is split on tabs into status and path; blank lines and
// lines missing either field are discarded. Rename and copy records carry a
// similarity score ("R100") and both paths; the score is stripped and the
// pre-image path is kept. Emission order is preserved.
func ParseNameStatus(output string) []ChangedFile {
	var files []ChangedFile

	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			continue
		}

		files = append(files, ChangedFile{
			Status: parts[0][:1],
			Path:   parts[1],
		})
	}

	return files
}
