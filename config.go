package dynamodbcopy

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	SourceTableKey       = "source-table"
	TargetTableKey       = "target-table"
	RegionKey            = "region"
	SourceProfileKey     = "source-profile"
	TargetProfileKey     = "target-profile"
	SourceRoleArnKey     = "source-role-arn"
	TargetRoleArnKey     = "target-role-arn"
	EndpointKey          = "endpoint"
	DisableCreationKey   = "disable-creation"
	DisableDataCopyKey   = "disable-datacopy"
	PreserveKeyTypesKey  = "preserve-key-types"
	WriteUnitsKey        = "write-units"
	ReadyInitialDelayKey = "ready-initial-delay"
	ReadyPollIntervalKey = "ready-poll-interval"
	ReadyMaxAttemptsKey  = "ready-max-attempts"
	ReadyTimeoutKey      = "ready-timeout"
	DebugKey             = "debug"
	ProgressKey          = "progress"
	ConfirmKey           = "confirm"
)

const (
	DefaultRegion            = "us-west-2"
	DefaultProfile           = "default"
	DefaultReadyInitialDelay = 5 * time.Second
	DefaultReadyPollInterval = 3 * time.Second
	DefaultReadyTimeout      = 10 * time.Minute
)

// Config holds every setting of a copy run. It is built once and never mutated afterwards.
type Config struct {
	SourceTable   string
	TargetTable   string
	Region        string
	SourceProfile string
	TargetProfile string
	SourceRoleArn string
	TargetRoleArn string
	Endpoint      string

	DisableCreation  bool
	DisableDataCopy  bool
	PreserveKeyTypes bool
	WriteUnits       int64

	ReadyInitialDelay time.Duration
	ReadyPollInterval time.Duration
	ReadyMaxAttempts  int
	ReadyTimeout      time.Duration

	Debug    bool
	Progress bool
	Confirm  bool
}

// NewConfig materialises a Config from the resolved viper settings, applying defaults
func NewConfig(config *viper.Viper) (Config, error) {
	copyConfig := Config{
		SourceTable:       config.GetString(SourceTableKey),
		TargetTable:       config.GetString(TargetTableKey),
		Region:            config.GetString(RegionKey),
		SourceProfile:     config.GetString(SourceProfileKey),
		TargetProfile:     config.GetString(TargetProfileKey),
		SourceRoleArn:     config.GetString(SourceRoleArnKey),
		TargetRoleArn:     config.GetString(TargetRoleArnKey),
		Endpoint:          config.GetString(EndpointKey),
		DisableCreation:   config.GetBool(DisableCreationKey),
		DisableDataCopy:   config.GetBool(DisableDataCopyKey),
		PreserveKeyTypes:  config.GetBool(PreserveKeyTypesKey),
		WriteUnits:        config.GetInt64(WriteUnitsKey),
		ReadyInitialDelay: config.GetDuration(ReadyInitialDelayKey),
		ReadyPollInterval: config.GetDuration(ReadyPollIntervalKey),
		ReadyMaxAttempts:  config.GetInt(ReadyMaxAttemptsKey),
		ReadyTimeout:      config.GetDuration(ReadyTimeoutKey),
		Debug:             config.GetBool(DebugKey),
		Progress:          config.GetBool(ProgressKey),
		Confirm:           config.GetBool(ConfirmKey),
	}

	if copyConfig.Region == "" {
		copyConfig.Region = DefaultRegion
	}

	if copyConfig.SourceProfile == "" {
		copyConfig.SourceProfile = DefaultProfile
	}

	if copyConfig.TargetProfile == "" {
		copyConfig.TargetProfile = copyConfig.SourceProfile
	}

	if !config.IsSet(ReadyInitialDelayKey) {
		copyConfig.ReadyInitialDelay = DefaultReadyInitialDelay
	}

	if !config.IsSet(ReadyPollIntervalKey) {
		copyConfig.ReadyPollInterval = DefaultReadyPollInterval
	}

	if !config.IsSet(ReadyTimeoutKey) {
		copyConfig.ReadyTimeout = DefaultReadyTimeout
	}

	return copyConfig, copyConfig.validate()
}

func (c Config) validate() error {
	if c.SourceTable == "" || c.TargetTable == "" {
		return errors.New("source and target table names are required")
	}

	if c.WriteUnits < 0 {
		return fmt.Errorf("invalid write units %d: must not be negative", c.WriteUnits)
	}

	if c.ReadyInitialDelay < 0 || c.ReadyPollInterval < 0 || c.ReadyTimeout < 0 {
		return errors.New("ready durations must not be negative")
	}

	if c.ReadyPollInterval == 0 {
		return errors.New("ready poll interval must be positive")
	}

	if c.ReadyMaxAttempts < 0 {
		return fmt.Errorf("invalid ready max attempts %d: must not be negative", c.ReadyMaxAttempts)
	}

	return nil
}

func (c Config) SourceConnection() Connection {
	return Connection{
		Profile:  c.SourceProfile,
		RoleArn:  c.SourceRoleArn,
		Region:   c.Region,
		Endpoint: c.Endpoint,
	}
}

func (c Config) TargetConnection() Connection {
	return Connection{
		Profile:  c.TargetProfile,
		RoleArn:  c.TargetRoleArn,
		Region:   c.Region,
		Endpoint: c.Endpoint,
	}
}

func (c Config) ReadyPolicy() ReadyPolicy {
	return ReadyPolicy{
		InitialDelay: c.ReadyInitialDelay,
		PollInterval: c.ReadyPollInterval,
		MaxAttempts:  c.ReadyMaxAttempts,
		Timeout:      c.ReadyTimeout,
	}
}
