package repositories

import (
	"context"
	"errors"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
)

// ErrNotFound reports that a looked-up resource does not exist on the remote
// host, as opposed to a transport or authorization failure.
var ErrNotFound = errors.New("not found")

// SourceHostRepository abstracts the source code host a hosting request
// points at (GitHub in production).
type SourceHostRepository interface {
	// GetUser checks that name refers to an individual user account.
	GetUser(ctx context.Context, name string) error

	// GetOrganization checks that name refers to an organization account.
	GetOrganization(ctx context.Context, name string) error

	// GetRepository fetches a repository, including its fork parent when the
	// host exposes one.
	GetRepository(ctx context.Context, owner, name string) (*entities.Repository, error)

	// GetFileContent returns the decoded content of a file in the repository.
	// A missing file yields an error wrapping ErrNotFound.
	GetFileContent(ctx context.Context, owner, name, path string) (string, error)

	// HasReadme reports whether the repository exposes a README. A missing
	// README is (false, nil); the error is reserved for transport failures.
	HasReadme(ctx context.Context, owner, name string) (bool, error)
}
