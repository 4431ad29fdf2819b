package gitstatus

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const gitExecutableName = "git"

// CommandProvider implements Provider by shelling out to the git executable.
type CommandProvider struct {
	rootDirectory string
}

// DiscoverRepository locates the repository containing startPath. It returns
// (nil, nil) when startPath is not inside a repository or git is not
// installed, since version-control decoration is optional.
func DiscoverRepository(startPath string) (*CommandProvider, error) {
	revParseCommand := exec.Command(gitExecutableName, "-C", startPath, "rev-parse", "--show-toplevel")
	revParseOutput, revParseError := revParseCommand.Output()
	if revParseError != nil {
		var exitError *exec.ExitError
		if errors.As(revParseError, &exitError) || errors.Is(revParseError, exec.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("discovering repository for %s: %w", startPath, revParseError)
	}

	rootDirectory := strings.TrimSpace(string(revParseOutput))
	if rootDirectory == "" {
		return nil, nil
	}
	return &CommandProvider{rootDirectory: rootDirectory}, nil
}

// RootDirectory returns the repository root.
func (provider *CommandProvider) RootDirectory() string {
	return provider.rootDirectory
}

// BulkStatus runs one full-repository porcelain status scan, then marks every
// remaining tracked file as clean via ls-files so unmodified paths are cache
// hits rather than per-path fallback queries.
func (provider *CommandProvider) BulkStatus() (map[string]RawStatus, error) {
	statusOutput, statusError := provider.runGit("status", "--porcelain", "-z", "--untracked-files=all", "--find-renames")
	if statusError != nil {
		return nil, statusError
	}
	statuses := parsePorcelainStatus(statusOutput)

	listOutput, listError := provider.runGit("ls-files", "-z")
	if listError != nil {
		return nil, listError
	}
	for _, trackedPath := range bytes.Split(listOutput, []byte{0}) {
		if len(trackedPath) == 0 {
			continue
		}
		key := string(trackedPath)
		if _, present := statuses[key]; !present {
			statuses[key] = 0
		}
	}

	return statuses, nil
}

// StatusAt queries the porcelain status of one path, including ignored state.
func (provider *CommandProvider) StatusAt(relativePath string) (RawStatus, error) {
	statusOutput, statusError := provider.runGit("status", "--porcelain", "-z", "--ignored=matching", "--", relativePath)
	if statusError != nil {
		return 0, statusError
	}
	statuses := parsePorcelainStatus(statusOutput)
	return statuses[relativePath], nil
}

// IsIgnored runs check-ignore for the path. Exit status one means "not
// ignored"; any other failure is an error.
func (provider *CommandProvider) IsIgnored(relativePath string) (bool, error) {
	checkIgnoreCommand := exec.Command(gitExecutableName, "-C", provider.rootDirectory, "check-ignore", "--quiet", "--", relativePath)
	checkIgnoreError := checkIgnoreCommand.Run()
	if checkIgnoreError == nil {
		return true, nil
	}
	var exitError *exec.ExitError
	if errors.As(checkIgnoreError, &exitError) && exitError.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("checking ignore rules for %s: %w", relativePath, checkIgnoreError)
}

// runGit executes a git subcommand against the repository root.
func (provider *CommandProvider) runGit(arguments ...string) ([]byte, error) {
	gitArguments := append([]string{"-C", provider.rootDirectory}, arguments...)
	// #nosec G204
	gitCommand := exec.Command(gitExecutableName, gitArguments...)
	gitOutput, gitError := gitCommand.Output()
	if gitError != nil {
		return nil, fmt.Errorf("running git %s: %w", strings.Join(arguments, " "), gitError)
	}
	return gitOutput, nil
}

// parsePorcelainStatus decodes NUL-terminated `git status --porcelain -z`
// output into per-path raw statuses. Rename records carry the original path
// in a second NUL-terminated field, which is consumed and dropped: statuses
// key on the path that exists in the working tree.
func parsePorcelainStatus(porcelainOutput []byte) map[string]RawStatus {
	statuses := make(map[string]RawStatus)
	records := bytes.Split(porcelainOutput, []byte{0})
	for recordIndex := 0; recordIndex < len(records); recordIndex++ {
		record := records[recordIndex]
		if len(record) < 4 {
			continue
		}
		indexCode := record[0]
		worktreeCode := record[1]
		entryPath := string(record[3:])

		rawStatus := statusBitsForCodes(indexCode, worktreeCode)
		if indexCode == 'R' || indexCode == 'C' || worktreeCode == 'R' || worktreeCode == 'C' {
			// Skip the rename/copy source path record.
			recordIndex++
		}
		statuses[entryPath] = rawStatus
	}
	return statuses
}

// statusBitsForCodes converts one porcelain XY code pair into status bits.
func statusBitsForCodes(indexCode byte, worktreeCode byte) RawStatus {
	if indexCode == '?' && worktreeCode == '?' {
		return RawWorktreeNew
	}
	if indexCode == '!' && worktreeCode == '!' {
		return RawIgnored
	}

	var rawStatus RawStatus
	switch indexCode {
	case 'A':
		rawStatus |= RawIndexNew
	case 'M', 'T':
		rawStatus |= RawIndexModified
	case 'D':
		rawStatus |= RawIndexRemoved
	case 'R', 'C':
		rawStatus |= RawIndexRenamed
	}
	switch worktreeCode {
	case 'A':
		rawStatus |= RawWorktreeNew
	case 'M', 'T':
		rawStatus |= RawWorktreeModified
	case 'D':
		rawStatus |= RawWorktreeRemoved
	case 'R', 'C':
		rawStatus |= RawWorktreeRenamed
	}
	return rawStatus
}
