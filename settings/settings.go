package settings

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/flightdeck-io/flightdeck/common"
)

// Built-in defaults; a settings.yaml under FLIGHTDECK_HOME or any
// FLIGHTDECK_* environment variable overrides these.
const (
	defaultApplicationsDir = "apps"
	defaultScriptsDir      = "scripts"
	defaultEntryFile       = "main.py"
	defaultScriptGlob      = "*.py"
	defaultPollInterval    = 100 * time.Millisecond
	defaultStopTimeout     = 5 * time.Second
	defaultJournalLimit    = 1000
)

type Settings struct {
	source *viper.Viper
}

var (
	Global      *Settings
	summonMutex sync.Mutex
)

func summon() (*Settings, error) {
	source := viper.New()
	source.SetConfigName("settings")
	source.SetConfigType("yaml")
	source.AddConfigPath(common.Home())

	source.SetEnvPrefix("flightdeck")
	source.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	source.AutomaticEnv()

	source.SetDefault("discovery.applications", defaultApplicationsDir)
	source.SetDefault("discovery.scripts", defaultScriptsDir)
	source.SetDefault("discovery.entry", defaultEntryFile)
	source.SetDefault("discovery.glob", defaultScriptGlob)
	source.SetDefault("shell.poll", defaultPollInterval)
	source.SetDefault("shell.watch", true)
	source.SetDefault("supervisor.timeout", defaultStopTimeout)
	source.SetDefault("journal.limit", defaultJournalLimit)

	err := source.ReadInConfig()
	if err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing {
			return nil, err
		}
	}
	return &Settings{source: source}, nil
}

// SummonSettings loads (once) and caches the global settings view.
func SummonSettings() (*Settings, error) {
	summonMutex.Lock()
	defer summonMutex.Unlock()
	if Global != nil {
		return Global, nil
	}
	settings, err := summon()
	if err != nil {
		return nil, err
	}
	Global = settings
	return Global, nil
}

// Reload re-reads settings from the environment and disk, replacing
// the cached global view.
func Reload() (*Settings, error) {
	summonMutex.Lock()
	defer summonMutex.Unlock()
	settings, err := summon()
	if err != nil {
		return nil, err
	}
	Global = settings
	return Global, nil
}

func (it *Settings) ApplicationsDirectory() string {
	return it.source.GetString("discovery.applications")
}

func (it *Settings) ScriptsDirectory() string {
	return it.source.GetString("discovery.scripts")
}

func (it *Settings) EntryFile() string {
	return it.source.GetString("discovery.entry")
}

func (it *Settings) ScriptGlob() string {
	return it.source.GetString("discovery.glob")
}

func (it *Settings) PollInterval() time.Duration {
	interval := it.source.GetDuration("shell.poll")
	if interval < 10*time.Millisecond {
		return defaultPollInterval
	}
	return interval
}

func (it *Settings) StopTimeout() time.Duration {
	timeout := it.source.GetDuration("supervisor.timeout")
	if timeout <= 0 {
		return defaultStopTimeout
	}
	return timeout
}

func (it *Settings) WatchEnabled() bool {
	return it.source.GetBool("shell.watch")
}

func (it *Settings) JournalLimit() int {
	limit := it.source.GetInt("journal.limit")
	if limit <= 0 {
		return defaultJournalLimit
	}
	return limit
}
