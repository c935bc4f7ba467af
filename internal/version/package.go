package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Change this for new packages
	RepoUser = "redjax"
	RepoName = "sysfacts"
	RepoUrl  = "https://github.com/redjax/sysfacts"
	Package  = "sysfacts"
)
