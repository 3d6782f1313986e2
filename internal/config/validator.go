package config

import (
	"errors"
	"fmt"
)

// Validate rejects settings the farm cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidPortFmt, EnvPort, c.Port))
	}
	if c.GridSize <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFmt, EnvGridSize, c.GridSize))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFmt, EnvTickInterval, c.TickInterval))
	}
	if c.SessionCacheSize <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFmt, EnvSessionCacheSize, c.SessionCacheSize))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFmt, EnvSessionTTL, c.SessionTTL))
	}
	if c.StartingBalance < 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBeNonNegFmt, EnvStartingBalance, c.StartingBalance))
	}
	if c.EventRetentionDays <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFmt, EnvEventRetentionDays, c.EventRetentionDays))
	}
	if c.EventMaxRetries < 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBeNonNegFmt, EnvEventMaxRetries, c.EventMaxRetries))
	}
	if c.EventRetryDelay <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFmt, EnvEventRetryDelay, c.EventRetryDelay))
	}
	if c.WorkerCount <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFmt, EnvWorkerCount, c.WorkerCount))
	}
	if c.WorkerQueueSize <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFmt, EnvWorkerQueueSize, c.WorkerQueueSize))
	}

	return errors.Join(errs...)
}

// Warnings lists settings that work but are probably not what an operator wants
func (c *Config) Warnings() []string {
	var warnings []string
	if c.APIKey == "" && c.Environment == "prod" {
		warnings = append(warnings, WarnNoAPIKeyInProduction)
	}
	if c.DatabaseURL == "" {
		warnings = append(warnings, WarnInMemoryEventLog)
	}
	return warnings
}
