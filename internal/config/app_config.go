// Package config loads the application configuration controlling sorting,
// colorization, and traversal glyphs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/spenserblack/fancy-tree/internal/colorize"
	"github.com/spenserblack/fancy-tree/internal/sorting"
	"github.com/spenserblack/fancy-tree/internal/tree"
	"github.com/spenserblack/fancy-tree/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	// WorkingDirectory anchors local configuration discovery. Defaults to the
	// process working directory.
	WorkingDirectory string
	// ExplicitFilePath bypasses discovery and loads exactly one file.
	ExplicitFilePath string
}

// ApplicationConfiguration holds the user-tunable rendering defaults.
type ApplicationConfiguration struct {
	Color   string               `mapstructure:"color"`
	Sorting SortingConfiguration `mapstructure:"sorting"`
	Charset CharsetConfiguration `mapstructure:"charset"`
}

// SortingConfiguration mirrors sorting.Policy in configuration-file form.
type SortingConfiguration struct {
	Method      string `mapstructure:"method"`
	Direction   string `mapstructure:"direction"`
	Directories string `mapstructure:"directories"`
	IgnoreCase  *bool  `mapstructure:"ignore_case"`
	IgnoreDot   *bool  `mapstructure:"ignore_dot"`
}

// CharsetConfiguration configures the traversal glyphs.
type CharsetConfiguration struct {
	Branch    *string `mapstructure:"branch"`
	Connector *string `mapstructure:"connector"`
}

// LoadApplicationConfiguration loads and merges the global configuration
// (under the XDG configuration directory) with a local file in the working
// directory. Missing files are not errors; malformed files are.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	if options.ExplicitFilePath != "" {
		return loadConfigurationFromPath(options.ExplicitFilePath)
	}

	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	globalConfiguration, globalError := loadConfigurationFromPath(GlobalConfigurationPath())
	if globalError != nil {
		return ApplicationConfiguration{}, globalError
	}
	merged = merged.Merge(globalConfiguration)

	localConfiguration, localError := loadConfigurationFromPath(filepath.Join(workingDirectory, utils.ConfigFileName))
	if localError != nil {
		return ApplicationConfiguration{}, localError
	}
	merged = merged.Merge(localConfiguration)

	return merged, nil
}

// GlobalConfigurationPath returns the global configuration file location.
func GlobalConfigurationPath() string {
	return filepath.Join(xdg.ConfigHome, utils.ApplicationName, utils.ConfigFileName)
}

// loadConfigurationFromPath reads one configuration file with viper. A
// missing file yields the zero configuration.
func loadConfigurationFromPath(configurationPath string) (ApplicationConfiguration, error) {
	fileInformation, statError := os.Stat(configurationPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", configurationPath, statError)
	}
	if fileInformation.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", configurationPath)
	}

	reader := viper.New()
	reader.SetConfigFile(configurationPath)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", configurationPath, readError)
	}
	var loadedConfiguration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&loadedConfiguration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", configurationPath, decodeError)
	}
	return loadedConfiguration, nil
}

// Merge overlays override onto the receiver, returning the combination.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.Color != "" {
		result.Color = override.Color
	}
	result.Sorting = result.Sorting.merge(override.Sorting)
	result.Charset = result.Charset.merge(override.Charset)
	return result
}

func (configuration SortingConfiguration) merge(override SortingConfiguration) SortingConfiguration {
	result := configuration
	if override.Method != "" {
		result.Method = override.Method
	}
	if override.Direction != "" {
		result.Direction = override.Direction
	}
	if override.Directories != "" {
		result.Directories = override.Directories
	}
	if override.IgnoreCase != nil {
		result.IgnoreCase = override.IgnoreCase
	}
	if override.IgnoreDot != nil {
		result.IgnoreDot = override.IgnoreDot
	}
	return result
}

func (configuration CharsetConfiguration) merge(override CharsetConfiguration) CharsetConfiguration {
	result := configuration
	if override.Branch != nil {
		result.Branch = override.Branch
	}
	if override.Connector != nil {
		result.Connector = override.Connector
	}
	return result
}

// ColorChoice converts the configured color value, defaulting to auto.
func (configuration ApplicationConfiguration) ColorChoice() (colorize.ColorChoice, error) {
	if configuration.Color == "" {
		return colorize.ColorChoiceAuto, nil
	}
	return colorize.ParseColorChoice(configuration.Color)
}

// SortPolicy converts the configured sorting values into a sorting.Policy,
// starting from the engine defaults.
func (configuration ApplicationConfiguration) SortPolicy() (sorting.Policy, error) {
	sortPolicy := sorting.DefaultPolicy()
	if configuration.Sorting.Method != "" {
		parsedMethod, parseError := sorting.ParseMethod(configuration.Sorting.Method)
		if parseError != nil {
			return sorting.Policy{}, parseError
		}
		sortPolicy.Method = parsedMethod
	}
	if configuration.Sorting.Direction != "" {
		parsedDirection, parseError := sorting.ParseDirection(configuration.Sorting.Direction)
		if parseError != nil {
			return sorting.Policy{}, parseError
		}
		sortPolicy.Direction = parsedDirection
	}
	if configuration.Sorting.Directories != "" {
		parsedPlacement, parseError := sorting.ParseDirectoryPlacement(configuration.Sorting.Directories)
		if parseError != nil {
			return sorting.Policy{}, parseError
		}
		sortPolicy.Directories = parsedPlacement
	}
	if configuration.Sorting.IgnoreCase != nil {
		sortPolicy.IgnoreCase = *configuration.Sorting.IgnoreCase
	}
	if configuration.Sorting.IgnoreDot != nil {
		sortPolicy.IgnoreDot = *configuration.Sorting.IgnoreDot
	}
	return sortPolicy, nil
}

// CharsetValue converts the configured glyphs into a tree.Charset.
func (configuration ApplicationConfiguration) CharsetValue() tree.Charset {
	charset := tree.DefaultCharset()
	if configuration.Charset.Branch != nil {
		charset.Branch = *configuration.Charset.Branch
	}
	if configuration.Charset.Connector != nil {
		charset.Connector = *configuration.Charset.Connector
	}
	return charset
}
