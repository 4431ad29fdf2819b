// Package utils contains general helper functions shared across fancy-tree.
package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// GitDirectoryName is the name of the Git repository directory.
const GitDirectoryName = ".git"

// ApplicationName is the program name used for configuration discovery.
const ApplicationName = "fancy-tree"

// ConfigFileName is the name of the application configuration file.
const ConfigFileName = "fancy-tree.yaml"

// LoggerInitializationFailedMessageFormat reports logger construction failure.
const LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"

// ApplicationExecutionFailedMessage prefixes fatal execution errors.
const ApplicationExecutionFailedMessage = "application execution failed"
