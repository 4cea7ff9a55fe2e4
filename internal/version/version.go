package version

import "fmt"

// Set at build time with -ldflags "-X github.com/redjax/whoami/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Change this for new packages
	RepoUser = "redjax"
	RepoName = "whoami"
	RepoUrl  = "https://github.com/redjax/whoami"
	Package  = "whoami"
)

type PackageInfo struct {
	PackageName        string `json:"package" yaml:"package"`
	RepoUrl            string `json:"repo_url" yaml:"repo_url"`
	RepoUser           string `json:"repo_user" yaml:"repo_user"`
	RepoName           string `json:"repo_name" yaml:"repo_name"`
	PackageVersion     string `json:"version" yaml:"version"`
	PackageCommit      string `json:"commit" yaml:"commit"`
	PackageReleaseDate string `json:"date" yaml:"date"`
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

// String is the one-line version summary printed by 'whoami version'.
func (p PackageInfo) String() string {
	return fmt.Sprintf("package:%s version:%s commit:%s date:%s",
		p.PackageName,
		p.PackageVersion,
		p.PackageCommit,
		p.PackageReleaseDate,
	)
}
