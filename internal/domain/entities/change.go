package entities

// ChangeKind classifies a single changed line. Context lines are never
// retained because diffs are produced with zero context.
type ChangeKind string

const (
	Addition ChangeKind = "addition"
	Deletion ChangeKind = "deletion"
)

// File status letters as reported by a name-status diff.
const (
	StatusAdded    = "A"
	StatusModified = "M"
	StatusDeleted  = "D"
	StatusRenamed  = "R"
)

// ShortHashLen is the length of the abbreviated commit hash carried in a
// CommitChangeSet.
const ShortHashLen = 7

// LineChange is one textual line affected by a commit. LineNumber is the
// post-image position for additions; for deletions it is the current
// post-image cursor position, which after the first deletion in a mixed
// hunk no longer maps to a real file position (see ParseUnifiedDiff).
type LineChange struct {
	Kind       ChangeKind `json:"kind"`
	LineNumber int        `json:"line_number"`
	Content    string     `json:"content"`
}

// FileChange is the change set for one file within one commit.
// Additions and Deletions always equal the number of Changes entries of
// the corresponding kind; Changes preserves diff order.
type FileChange struct {
	FilePath  string       `json:"file_path"`
	Status    string       `json:"status"`
	Additions int          `json:"additions"`
	Deletions int          `json:"deletions"`
	Changes   []LineChange `json:"changes"`
}

// ChangedFile is one entry of a name-status diff: a path plus its
// single-letter change status.
type ChangedFile struct {
	Path   string
	Status string
}

// Commit holds the metadata of a single commit as read from the repository.
type Commit struct {
	Hash        string // full hash
	AuthorName  string
	AuthorEmail string
	Message     string
	Date        string // RFC 3339
}

// ShortHash returns the abbreviated form of the commit hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= ShortHashLen {
		return c.Hash
	}
	return c.Hash[:ShortHashLen]
}

// CommitChangeSet is the per-commit aggregate handed to the publisher and
// to the analysis server. Changes holds at most one FileChange per path;
// a commit touching no files carries an empty slice, never nil.
type CommitChangeSet struct {
	RepoName    string       `json:"repo_name"`
	AuthorName  string       `json:"author_name"`
	AuthorEmail string       `json:"author_email"`
	Hash        string       `json:"hash"` // short form
	Message     string       `json:"message"`
	Date        string       `json:"date"`
	Changes     []FileChange `json:"changes"`
}
