package main

import (
	"os"

	"github.com/spf13/viper"
	"github.com/tablecopy/dynamodbcopy"
	"github.com/tablecopy/dynamodbcopy/pkg/cmd"
)

func main() {
	logger := dynamodbcopy.NewConsoleLogger(os.Stdout)

	if err := cmd.New(viper.New(), logger).Execute(); err != nil {
		logger.Printf("%s", err)
		os.Exit(1)
	}
}
