package entities

import "github.com/spf13/cobra"

// ControllerBind carries the Cobra metadata a controller exposes to the
// command tree.
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
