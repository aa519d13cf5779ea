package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tablecopy/dynamodbcopy"
	"github.com/tablecopy/dynamodbcopy/pkg/cmd/copytable"
)

// New creates the root dynamodb-copy-table command. Errors are left to the caller to report.
func New(config *viper.Viper, logger dynamodbcopy.Logger) *cobra.Command {
	cmd := copytable.New(config, logger)
	cmd.SilenceErrors = true
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stdout)

	return cmd
}
