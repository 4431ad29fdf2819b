package cli

import (
	"testing"

	"go.uber.org/zap"

	"github.com/spenserblack/fancy-tree/internal/colorize"
	"github.com/spenserblack/fancy-tree/internal/config"
	"github.com/spenserblack/fancy-tree/internal/sorting"
)

func TestResolveColorChoicePrecedence(t *testing.T) {
	configuration := config.ApplicationConfiguration{Color: "never"}

	fromConfiguration, resolveError := resolveColorChoice(configuration, rootOptions{})
	if resolveError != nil {
		t.Fatalf("resolveColorChoice: %v", resolveError)
	}
	if fromConfiguration != colorize.ColorChoiceNever {
		t.Fatalf("configured choice = %q, want never", fromConfiguration)
	}

	fromFlag, resolveError := resolveColorChoice(configuration, rootOptions{colorValue: "always"})
	if resolveError != nil {
		t.Fatalf("resolveColorChoice: %v", resolveError)
	}
	if fromFlag != colorize.ColorChoiceAlways {
		t.Fatalf("flag choice = %q, want always", fromFlag)
	}

	if _, resolveError = resolveColorChoice(configuration, rootOptions{colorValue: "sometimes"}); resolveError == nil {
		t.Fatal("invalid flag value should fail")
	}
}

func TestResolveSortPolicyFlagOverrides(t *testing.T) {
	rootCommand := createRootCommand(zap.NewNop())
	configuration := config.ApplicationConfiguration{
		Sorting: config.SortingConfiguration{Method: "naive", Direction: "asc"},
	}

	sortPolicy, resolveError := resolveSortPolicy(rootCommand, configuration, rootOptions{
		sortMethod:    "natural",
		sortDirection: "desc",
		directories:   "last",
	})
	if resolveError != nil {
		t.Fatalf("resolveSortPolicy: %v", resolveError)
	}
	if sortPolicy.Method != sorting.MethodNatural {
		t.Fatalf("Method = %q, want natural", sortPolicy.Method)
	}
	if sortPolicy.Direction != sorting.DirectionDescending {
		t.Fatalf("Direction = %q, want desc", sortPolicy.Direction)
	}
	if sortPolicy.Directories != sorting.PlacementLast {
		t.Fatalf("Directories = %q, want last", sortPolicy.Directories)
	}
}

func TestResolveSortPolicyBooleanFlagsRequireExplicitUse(t *testing.T) {
	rootCommand := createRootCommand(zap.NewNop())
	ignoreCase := true
	configuration := config.ApplicationConfiguration{
		Sorting: config.SortingConfiguration{IgnoreCase: &ignoreCase},
	}

	untouchedPolicy, resolveError := resolveSortPolicy(rootCommand, configuration, rootOptions{})
	if resolveError != nil {
		t.Fatalf("resolveSortPolicy: %v", resolveError)
	}
	if !untouchedPolicy.IgnoreCase {
		t.Fatal("configured ignore_case should survive an unset flag")
	}

	if setError := rootCommand.Flags().Set(ignoreCaseFlagName, "false"); setError != nil {
		t.Fatalf("set flag: %v", setError)
	}
	overriddenPolicy, resolveError := resolveSortPolicy(rootCommand, configuration, rootOptions{ignoreCase: false})
	if resolveError != nil {
		t.Fatalf("resolveSortPolicy: %v", resolveError)
	}
	if overriddenPolicy.IgnoreCase {
		t.Fatal("explicit flag should override the configured value")
	}
}
