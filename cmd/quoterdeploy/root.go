package quoterdeploy

import (
	"github.com/spf13/cobra"
)

func BuildRootCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "quoterdeploy",
		Short: "Deploy and record the PathQuoter contract",
		Long:  ``,
	}

	cmd.AddCommand(buildDeployCmd())
	cmd.AddCommand(buildRegisterCmd())

	return &cmd
}
