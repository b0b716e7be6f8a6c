package verifiers

import (
	"context"

	"github.com/jenkins-infra/hosting-checker/internal/domain/entities"
	"github.com/jenkins-infra/hosting-checker/internal/domain/repositories"
)

// Verifier runs one independent set of checks against a hosting request and
// returns its findings. Verifiers never see each other's output; the check
// command merges the returned findings into the shared set.
type Verifier interface {
	Name() string
	Verify(ctx context.Context, issue *entities.Issue) ([]entities.Finding, error)
}

// Registry holds the verifiers in the order they run.
type Registry struct {
	verifiers []Verifier
}

// NewRegistry creates an empty verifier registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a verifier; registration order is execution order.
func (it *Registry) Register(verifier Verifier) {
	it.verifiers = append(it.verifiers, verifier)
}

// All returns the verifiers in registration order.
func (it *Registry) All() []Verifier {
	result := make([]Verifier, len(it.verifiers))
	copy(result, it.verifiers)
	return result
}

// Names returns the registered verifier names in execution order.
func (it *Registry) Names() []string {
	names := make([]string, 0, len(it.verifiers))
	for _, verifier := range it.verifiers {
		names = append(names, verifier.Name())
	}
	return names
}

// NewDefaultRegistry wires the standard verifier sequence against the host.
func NewDefaultRegistry(host repositories.SourceHostRepository) *Registry {
	registry := NewRegistry()
	registry.Register(NewFieldVerifier())
	registry.Register(NewRepositoryVerifier(host))
	registry.Register(NewPomVerifier(host))
	registry.Register(NewGradleVerifier())
	return registry
}
