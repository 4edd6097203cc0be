package wasmoci

import (
	"github.com/aweris/wasmoci/internal/credentials"
	"github.com/aweris/wasmoci/internal/remote"
)

// CredentialStore is the in-memory view of a credential file.
// Re-exported from internal/credentials for convenience.
type CredentialStore = credentials.Store

// CredentialRecord is one registry login in a CredentialStore.
type CredentialRecord = credentials.Record

// LoadCredentials reads the credential file at path. Mutations on the returned
// store are kept in memory until Save is called.
func LoadCredentials(path string) (*CredentialStore, error) {
	return credentials.Load(path)
}

// NewCredentialRecord encodes a login for host.
func NewCredentialRecord(host, username, password string) CredentialRecord {
	return credentials.NewRecord(host, username, password)
}

// ResolveCredentials returns the credentials embedded in rawURL, or those saved
// for its host in the credential file at path.
func ResolveCredentials(rawURL, path string) (username, password string, err error) {
	u, err := remote.ParseURL(rawURL)
	if err != nil {
		return "", "", err
	}
	return credentials.ResolveURL(u, path)
}

// EmbeddedCredentials returns only the credentials embedded in rawURL.
func EmbeddedCredentials(rawURL string) (username, password string, err error) {
	u, err := remote.ParseURL(rawURL)
	if err != nil {
		return "", "", err
	}
	return credentials.FromURL(u)
}

// GitHubCLICredentials reads the github.com login saved by the gh CLI at path.
// An empty path uses the gh default location.
func GitHubCLICredentials(path string) (username, token string, err error) {
	if path == "" {
		path = credentials.DefaultGitHubCLIPath()
	}
	return credentials.FromGitHubCLI(path)
}
