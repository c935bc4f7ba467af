package version

import "fmt"

type PackageInfo struct {
	PackageName        string
	RepoUrl            string
	RepoUser           string
	RepoName           string
	PackageVersion     string
	PackageCommit      string
	PackageReleaseDate string
}

// GetPackageInfo returns a struct with information about the current package
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		RepoUser:           RepoUser,
		RepoName:           RepoName,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
	}
}

// Short is the one line form printed by the version command.
func (p PackageInfo) Short() string {
	return fmt.Sprintf("package: %s version:%s commit:%s date:%s",
		p.PackageName, p.PackageVersion, p.PackageCommit, p.PackageReleaseDate)
}
