package entities

import "github.com/spf13/cobra"

// ControllerBind is the Cobra metadata a controller exposes for registration.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by every CLI-facing controller.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}
