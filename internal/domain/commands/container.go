package commands

import (
	"go.uber.org/dig"

	"github.com/jenkins-infra/hosting-checker/internal/domain/verifiers"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(func() RegistryFactory {
		return verifiers.NewDefaultRegistry
	}); err != nil {
		return err
	}
	if err := container.Provide(NewCheckCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *CheckCommand) Check {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
