package copytable

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bowery/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tablecopy/dynamodbcopy"
)

const (
	cmdName          = "dynamodb-copy-table"
	shortDescription = "Copies a dynamoDB table schema and records from a source to a target table"
	configFileKey    = "config"
)

// environment variables switching a setting on by their mere presence
var envSwitches = map[string]string{
	"DISABLE_CREATION": dynamodbcopy.DisableCreationKey,
	"DISABLE_DATACOPY": dynamodbcopy.DisableDataCopyKey,
}

// Deps groups everything RunCopyTable needs
type Deps struct {
	Config      dynamodbcopy.Config
	Reader      dynamodbcopy.SchemaReader
	Provisioner dynamodbcopy.Provisioner
	Copier      dynamodbcopy.Copier
	Logger      dynamodbcopy.Logger
	Progress    Progress
	Confirm     func(question string) (bool, error)
}

// Result describes how far a run went
type Result struct {
	Outcome dynamodbcopy.ProvisionOutcome
	Copied  bool
	Summary dynamodbcopy.CopySummary
}

func New(config *viper.Viper, logger dynamodbcopy.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <source_table_name> <destination_table_name>", cmdName),
		Short: shortDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			config.Set(dynamodbcopy.SourceTableKey, args[0])
			config.Set(dynamodbcopy.TargetTableKey, args[1])
			BindEnvSwitches(config, os.LookupEnv)

			if configFile := config.GetString(configFileKey); configFile != "" {
				config.SetConfigFile(configFile)
				if err := config.ReadInConfig(); err != nil {
					return fmt.Errorf("unable to read config file %s: %w", configFile, err)
				}
			}

			copyConfig, err := dynamodbcopy.NewConfig(config)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err = RunCopyTable(ctx, wireDependencies(copyConfig, logger))

			return err
		},
	}

	if err := SetAndBindFlags(cmd.Flags(), config); err != nil {
		panic(err)
	}

	return cmd
}

func wireDependencies(config dynamodbcopy.Config, logger dynamodbcopy.Logger) Deps {
	debug := dynamodbcopy.NewDebugLogger(logger, config.Debug)

	logger.Printf("source profile %s", config.SourceProfile)
	logger.Printf("destination profile %s", config.TargetProfile)

	srcAPI, trgAPI := dynamodbcopy.ResolveAPIs(config, dynamodbcopy.NewDynamoDBAPI)

	srcTableService := dynamodbcopy.NewDynamoDBService(
		config.SourceTable,
		srcAPI,
		dynamodbcopy.ContextSleeper,
		config.ReadyPolicy(),
	)
	trgTableService := dynamodbcopy.NewDynamoDBService(
		config.TargetTable,
		trgAPI,
		dynamodbcopy.ContextSleeper,
		config.ReadyPolicy(),
	)

	return Deps{
		Config:      config,
		Reader:      dynamodbcopy.NewSchemaReader(srcTableService, logger, debug),
		Provisioner: dynamodbcopy.NewProvisioner(trgTableService, config, logger, debug),
		Copier: dynamodbcopy.NewCopier(
			srcTableService,
			trgTableService,
			dynamodbcopy.NewWriteLimiter(config.WriteUnits),
			logger,
			debug,
		),
		Logger:   logger,
		Progress: NewProgress(config.Progress, os.Stderr),
		Confirm:  prompt.Ask,
	}
}

func SetAndBindFlags(flagSet *pflag.FlagSet, config *viper.Viper) error {
	flagSet.StringP(dynamodbcopy.RegionKey, "r", dynamodbcopy.DefaultRegion, "Set the region of both tables")
	flagSet.StringP(dynamodbcopy.SourceProfileKey, "s", dynamodbcopy.DefaultProfile, "Set the profile to use for the source table")
	flagSet.StringP(dynamodbcopy.TargetProfileKey, "t", "", "Set the profile to use for the target table, defaults to the source profile")
	flagSet.String(dynamodbcopy.SourceRoleArnKey, "", "Set a role to assume for the source table")
	flagSet.String(dynamodbcopy.TargetRoleArnKey, "", "Set a role to assume for the target table")
	flagSet.String(dynamodbcopy.EndpointKey, "", "Set a custom dynamoDB endpoint, e.g. a local dynamoDB")
	flagSet.Bool(dynamodbcopy.DisableCreationKey, false, "Copy into an existing target table instead of stopping")
	flagSet.Bool(dynamodbcopy.DisableDataCopyKey, false, "Stop after the target table is created")
	flagSet.Bool(dynamodbcopy.PreserveKeyTypesKey, false, "Declare the target key attributes with the source types instead of string")
	flagSet.Int64P(dynamodbcopy.WriteUnitsKey, "w", 0, "Limit the item writes per second, 0 means unlimited")
	flagSet.Duration(dynamodbcopy.ReadyInitialDelayKey, dynamodbcopy.DefaultReadyInitialDelay, "Set the pause before polling a created table")
	flagSet.Duration(dynamodbcopy.ReadyPollIntervalKey, dynamodbcopy.DefaultReadyPollInterval, "Set the pause between table status polls")
	flagSet.Int(dynamodbcopy.ReadyMaxAttemptsKey, 0, "Set the maximum number of table status polls, 0 means unlimited")
	flagSet.Duration(dynamodbcopy.ReadyTimeoutKey, dynamodbcopy.DefaultReadyTimeout, "Set the maximum time to wait for a created table")
	flagSet.BoolP(dynamodbcopy.DebugKey, "d", true, "Log table descriptions and copied items")
	flagSet.Bool(dynamodbcopy.ProgressKey, false, "Show a progress bar on stderr while copying")
	flagSet.Bool(dynamodbcopy.ConfirmKey, false, "Ask before copying into an existing target table")
	flagSet.StringP(configFileKey, "c", "", "Read settings from a config file")

	if err := config.BindEnv(dynamodbcopy.RegionKey, "AWS_DEFAULT_REGION"); err != nil {
		return err
	}

	if err := config.BindEnv(dynamodbcopy.SourceProfileKey, "AWS_SOURCE_PROFILE"); err != nil {
		return err
	}

	if err := config.BindEnv(dynamodbcopy.TargetProfileKey, "AWS_DESTINATION_PROFILE"); err != nil {
		return err
	}

	return config.BindPFlags(flagSet)
}

// BindEnvSwitches turns on the settings whose environment variable is present, whatever its value
func BindEnvSwitches(config *viper.Viper, lookupEnv func(key string) (string, bool)) {
	for env, key := range envSwitches {
		if _, ok := lookupEnv(env); ok {
			config.Set(key, true)
		}
	}
}

func RunCopyTable(ctx context.Context, deps Deps) (Result, error) {
	config := deps.Config

	source, err := deps.Reader.Read(ctx)
	if err != nil {
		if errors.Is(err, dynamodbcopy.ErrTableNotFound) {
			return Result{}, fmt.Errorf("table %s does not exist: %w", config.SourceTable, err)
		}

		return Result{}, err
	}

	outcome, err := deps.Provisioner.Ensure(ctx, source)
	if err != nil {
		return Result{}, err
	}

	result := Result{Outcome: outcome}
	if outcome == dynamodbcopy.TableExists {
		return result, nil
	}

	if config.DisableDataCopy {
		deps.Logger.Printf("copying of data from table %s is disabled, exiting", config.SourceTable)

		return result, nil
	}

	if outcome == dynamodbcopy.CreationSkipped && config.Confirm {
		ok, err := deps.Confirm(fmt.Sprintf("Copy items from %s into existing table %s", config.SourceTable, config.TargetTable))
		if err != nil {
			return result, err
		}

		if !ok {
			deps.Logger.Printf("copy into table %s cancelled", config.TargetTable)

			return result, nil
		}
	}

	progress := deps.Progress
	if progress == nil {
		progress = noProgress{}
	}

	progress.Start(itemCount(source))
	summary, err := deps.Copier.Copy(ctx, source.Key, progress.Observe)
	progress.Finish()

	result.Copied = err == nil
	result.Summary = summary
	if err != nil {
		return result, err
	}

	deps.Logger.Printf(
		"we are done, %d items copied and %d skipped out of %d scanned",
		summary.Copied,
		summary.Skipped,
		summary.Scanned,
	)

	return result, nil
}

func itemCount(source dynamodbcopy.TableSchema) int64 {
	if source.Description == nil || source.Description.ItemCount == nil {
		return 0
	}

	return *source.Description.ItemCount
}
