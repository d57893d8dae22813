package git

// RepoNameFromURL exports repoNameFromURL for testing.
var RepoNameFromURL = repoNameFromURL //nolint:gochecknoglobals // test export
