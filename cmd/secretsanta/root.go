package main

import (
	"github.com/spf13/cobra"

	"github.com/dundeezhang/secret-santa/pkg/config"
)

func newRootCmd(configOpts ...config.Option) *cobra.Command {
	root := &cobra.Command{
		Use:           "secretsanta",
		Short:         "Draw, deliver and verify Secret Santa assignments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMatchCmd(configOpts),
		newVerifyCmd(configOpts),
		newPreviewCmd(configOpts),
	)
	return root
}
