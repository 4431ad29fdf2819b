// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spenserblack/fancy-tree/internal/colorize"
	"github.com/spenserblack/fancy-tree/internal/config"
	"github.com/spenserblack/fancy-tree/internal/gitstatus"
	"github.com/spenserblack/fancy-tree/internal/language"
	"github.com/spenserblack/fancy-tree/internal/services/clipboard"
	"github.com/spenserblack/fancy-tree/internal/sorting"
	"github.com/spenserblack/fancy-tree/internal/tree"
	"github.com/spenserblack/fancy-tree/internal/utils"
)

const (
	levelFlagName      = "level"
	levelFlagShorthand = "L"
	colorFlagName      = "color"
	copyFlagName       = "copy"
	configFlagName     = "config"
	initConfigFlagName = "init-config"
	forceFlagName      = "force"
	sortFlagName       = "sort"
	directionFlagName  = "direction"
	dirsFlagName       = "dirs"
	ignoreCaseFlagName = "ignore-case"
	ignoreDotFlagName  = "ignore-dot"
	versionFlagName    = "version"
	versionTemplate    = "fancy-tree version: %s\n"
	defaultPath        = "."
	rootUse            = "fancy-tree [path]"
	rootShort          = "display an annotated directory tree"
	rootLong           = `fancy-tree renders a directory hierarchy with icons, colors, and
version-control status markers. Hidden and git-ignored entries are skipped by
default. Use --level to limit depth, --color to control ANSI output, and
--init-config to write a starter configuration file.`
	rootUsageExample = `  # Render the current directory two levels deep
  fancy-tree -L 2

  # Render a project without colors and copy it to the clipboard
  fancy-tree --color never --copy ./project

  # Write the default configuration next to the current directory
  fancy-tree --init-config local`

	levelFlagDescription      = "limit traversal depth"
	colorFlagDescription      = "colorize output: always, never, or auto"
	copyFlagDescription       = "copy the rendered tree to the system clipboard"
	configFlagDescription     = "load configuration from an explicit file"
	initConfigFlagDescription = "write the default configuration (local or global) and exit"
	forceFlagDescription      = "overwrite an existing configuration file on --init-config"
	sortFlagDescription       = "sibling ordering method: naive or natural"
	directionFlagDescription  = "sort direction: asc or desc"
	dirsFlagDescription       = "directory placement: mixed, first, or last"
	ignoreCaseFlagDescription = "compare sibling names case-insensitively"
	ignoreDotFlagDescription  = "strip one leading dot before comparing sibling names"
	versionFlagDescription    = "display application version"

	initializedConfigurationFormat = "Initialized configuration at %s\n"
)

// rootOptions stores the flag values of the root command.
type rootOptions struct {
	level            int
	colorValue       string
	copyToClipboard  bool
	configFilePath   string
	initConfigTarget string
	force            bool
	sortMethod       string
	sortDirection    string
	directories      string
	ignoreCase       bool
	ignoreDot        bool
}

// Execute runs the fancy-tree application.
func Execute(loggerInstance *zap.Logger) error {
	rootCommand := createRootCommand(loggerInstance)
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(loggerInstance *zap.Logger) *cobra.Command {
	var showVersion bool
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShort,
		Long:         rootLong,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.initConfigTarget != "" {
				destinationPath, initError := config.InitializeConfiguration(config.InitOptions{
					Target: config.InitTarget(options.initConfigTarget),
					Force:  options.force,
				})
				if initError != nil {
					return initError
				}
				fmt.Printf(initializedConfigurationFormat, destinationPath)
				return nil
			}

			rootPath := defaultPath
			if len(arguments) == 1 {
				rootPath = arguments[0]
			}
			return runTree(command, rootPath, options, loggerInstance)
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().IntVarP(&options.level, levelFlagName, levelFlagShorthand, 0, levelFlagDescription)
	rootCommand.Flags().StringVar(&options.colorValue, colorFlagName, "", colorFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().StringVar(&options.configFilePath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().StringVar(&options.initConfigTarget, initConfigFlagName, "", initConfigFlagDescription)
	rootCommand.Flags().Lookup(initConfigFlagName).NoOptDefVal = string(config.InitTargetLocal)
	rootCommand.Flags().BoolVar(&options.force, forceFlagName, false, forceFlagDescription)
	rootCommand.Flags().StringVar(&options.sortMethod, sortFlagName, "", sortFlagDescription)
	rootCommand.Flags().StringVar(&options.sortDirection, directionFlagName, "", directionFlagDescription)
	rootCommand.Flags().StringVar(&options.directories, dirsFlagName, "", dirsFlagDescription)
	rootCommand.Flags().BoolVar(&options.ignoreCase, ignoreCaseFlagName, false, ignoreCaseFlagDescription)
	rootCommand.Flags().BoolVar(&options.ignoreDot, ignoreDotFlagName, false, ignoreDotFlagDescription)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runTree assembles the rendering pipeline from configuration and flags and
// renders the tree rooted at rootPath.
func runTree(command *cobra.Command, rootPath string, options rootOptions, loggerInstance *zap.Logger) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		ExplicitFilePath: options.configFilePath,
	})
	if configurationError != nil {
		return configurationError
	}

	colorChoice, colorChoiceError := resolveColorChoice(applicationConfiguration, options)
	if colorChoiceError != nil {
		return colorChoiceError
	}
	sortPolicy, sortPolicyError := resolveSortPolicy(command, applicationConfiguration, options)
	if sortPolicyError != nil {
		return sortPolicyError
	}

	treeBuilder := tree.NewBuilder(rootPath, colorChoice).
		WithSortPolicy(sortPolicy).
		WithCharset(applicationConfiguration.CharsetValue()).
		WithDetector(language.NewChromaDetector()).
		WithLogger(loggerInstance)

	if command.Flags().Changed(levelFlagName) {
		treeBuilder = treeBuilder.WithMaxLevel(options.level)
	}

	// Version-control decoration is best effort: outside a repository, or
	// without git installed, the tree renders without markers.
	repositoryProvider, discoveryError := gitstatus.DiscoverRepository(rootPath)
	if discoveryError != nil {
		loggerInstance.Debug("repository discovery failed", zap.String("path", rootPath), zap.Error(discoveryError))
	} else if repositoryProvider != nil {
		statusOverlay, overlayError := gitstatus.NewOverlay(repositoryProvider, loggerInstance)
		if overlayError != nil {
			loggerInstance.Debug("repository status scan failed", zap.String("path", rootPath), zap.Error(overlayError))
		} else {
			treeBuilder = treeBuilder.WithGit(statusOverlay)
		}
	}

	renderedTree := treeBuilder.Build()

	var renderBuffer bytes.Buffer
	if renderError := renderedTree.Render(&renderBuffer); renderError != nil {
		return renderError
	}
	if _, writeError := os.Stdout.Write(renderBuffer.Bytes()); writeError != nil {
		return writeError
	}
	if options.copyToClipboard {
		if copyError := clipboard.NewService().Copy(renderBuffer.String()); copyError != nil {
			return fmt.Errorf("copy tree to clipboard: %w", copyError)
		}
	}
	return nil
}

// resolveColorChoice applies the --color flag over the configured value.
func resolveColorChoice(applicationConfiguration config.ApplicationConfiguration, options rootOptions) (colorize.ColorChoice, error) {
	if options.colorValue != "" {
		return colorize.ParseColorChoice(options.colorValue)
	}
	return applicationConfiguration.ColorChoice()
}

// resolveSortPolicy applies sorting flags over the configured policy. Boolean
// flags only take effect when explicitly set, so configuration values survive
// their absence.
func resolveSortPolicy(command *cobra.Command, applicationConfiguration config.ApplicationConfiguration, options rootOptions) (sorting.Policy, error) {
	sortPolicy, sortPolicyError := applicationConfiguration.SortPolicy()
	if sortPolicyError != nil {
		return sorting.Policy{}, sortPolicyError
	}
	if options.sortMethod != "" {
		parsedMethod, parseError := sorting.ParseMethod(options.sortMethod)
		if parseError != nil {
			return sorting.Policy{}, parseError
		}
		sortPolicy.Method = parsedMethod
	}
	if options.sortDirection != "" {
		parsedDirection, parseError := sorting.ParseDirection(options.sortDirection)
		if parseError != nil {
			return sorting.Policy{}, parseError
		}
		sortPolicy.Direction = parsedDirection
	}
	if options.directories != "" {
		parsedPlacement, parseError := sorting.ParseDirectoryPlacement(options.directories)
		if parseError != nil {
			return sorting.Policy{}, parseError
		}
		sortPolicy.Directories = parsedPlacement
	}
	if command.Flags().Changed(ignoreCaseFlagName) {
		sortPolicy.IgnoreCase = options.ignoreCase
	}
	if command.Flags().Changed(ignoreDotFlagName) {
		sortPolicy.IgnoreDot = options.ignoreDot
	}
	return sortPolicy, nil
}
