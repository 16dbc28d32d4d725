// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by command-line flags, Viper and the environment
// (RUN_CLANG_TIDY_<KEY> with dashes replaced by underscores).
const (
	EnvPrefix = "RUN_CLANG_TIDY"

	KeyTidy             = "tidy"
	KeyBuildRoot        = "build-root"
	KeyCommand          = "command"
	KeyJobs             = "jobs"
	KeySuppressWarnings = "suppress-warnings"
	KeyQuiet            = "quiet"
	KeyFix              = "fix"
	KeyTimeout          = "timeout"

	// JobsAuto selects one job per logical processor.
	JobsAuto = "auto"
	// MaxJobs is the largest accepted job count.
	MaxJobs = 255
)

// Overrides holds invocation-time settings. Empty strings and a nil Jobs
// mean "not given".
type Overrides struct {
	TidyFile       string
	BuildRoot      string
	Command        string
	Jobs           *int
	IgnoreWarnings bool
	Quiet          bool
	Fix            bool
	Timeout        time.Duration
}

// NewViper creates a Viper instance bound to flags and to RUN_CLANG_TIDY_*
// environment variables. Explicitly set flags win over the environment.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}
	return v, nil
}

// OverridesFromViper reads the override settings from v.
func OverridesFromViper(v *viper.Viper) (Overrides, error) {
	jobs, err := ParseJobs(v.GetString(KeyJobs))
	if err != nil {
		return Overrides{}, err
	}

	timeout := v.GetDuration(KeyTimeout)
	if timeout < 0 {
		return Overrides{}, configError("parse option", "--"+KeyTimeout,
			fmt.Errorf("negative timeout %s", timeout),
			"Use a positive duration such as '90s', or 0 to disable the timeout")
	}

	return Overrides{
		TidyFile:       v.GetString(KeyTidy),
		BuildRoot:      v.GetString(KeyBuildRoot),
		Command:        v.GetString(KeyCommand),
		Jobs:           jobs,
		IgnoreWarnings: v.GetBool(KeySuppressWarnings),
		Quiet:          v.GetBool(KeyQuiet),
		Fix:            v.GetBool(KeyFix),
		Timeout:        timeout,
	}, nil
}

// ParseJobs parses a --jobs value. An empty value or "auto" yields nil,
// which selects one job per logical processor.
func ParseJobs(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, JobsAuto) {
		return nil, nil
	}

	n, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return nil, configError("parse option", "--"+KeyJobs,
			fmt.Errorf("invalid job count '%s': %w", raw, err),
			fmt.Sprintf("Please provide a number in the range [0 .. %d]", MaxJobs))
	}
	jobs := int(n)
	return &jobs, nil
}
