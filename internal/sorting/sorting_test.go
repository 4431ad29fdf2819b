package sorting

import (
	"sort"
	"testing"
)

type compareTestCase struct {
	name          string
	policy        Policy
	left          Sortable
	right         Sortable
	expectedOrder int
}

func file(name string) Sortable {
	return Sortable{Name: name}
}

func directory(name string) Sortable {
	return Sortable{Name: name, IsDirectory: true}
}

func normalizeSign(value int) int {
	switch {
	case value < 0:
		return -1
	case value > 0:
		return 1
	default:
		return 0
	}
}

func TestCompare(t *testing.T) {
	testCases := []compareTestCase{
		{
			name:          "naive_digits_compare_bytewise",
			policy:        Policy{Method: MethodNaive, Direction: DirectionAscending, Directories: PlacementMixed},
			left:          file("notes-10.txt"),
			right:         file("notes-2.txt"),
			expectedOrder: -1,
		},
		{
			name:          "natural_digits_compare_numerically",
			policy:        Policy{Method: MethodNatural, Direction: DirectionAscending, Directories: PlacementMixed},
			left:          file("notes-10.txt"),
			right:         file("notes-2.txt"),
			expectedOrder: 1,
		},
		{
			name:          "natural_leading_zeros_compare_equal",
			policy:        Policy{Method: MethodNatural, Direction: DirectionAscending, Directories: PlacementMixed},
			left:          file("img007"),
			right:         file("img7"),
			expectedOrder: 0,
		},
		{
			name:          "natural_shorter_prefix_sorts_first",
			policy:        Policy{Method: MethodNatural, Direction: DirectionAscending, Directories: PlacementMixed},
			left:          file("img"),
			right:         file("img2"),
			expectedOrder: -1,
		},
		{
			name:          "descending_reverses_name_order",
			policy:        Policy{Method: MethodNaive, Direction: DirectionDescending, Directories: PlacementMixed},
			left:          file("alpha"),
			right:         file("beta"),
			expectedOrder: 1,
		},
		{
			name:          "directories_first_beats_names",
			policy:        Policy{Method: MethodNaive, Direction: DirectionAscending, Directories: PlacementFirst},
			left:          directory("zzz"),
			right:         file("aaa"),
			expectedOrder: -1,
		},
		{
			name:          "directories_last_beats_names",
			policy:        Policy{Method: MethodNaive, Direction: DirectionAscending, Directories: PlacementLast},
			left:          directory("aaa"),
			right:         file("zzz"),
			expectedOrder: 1,
		},
		{
			name:          "mixed_placement_ignores_kind",
			policy:        Policy{Method: MethodNaive, Direction: DirectionAscending, Directories: PlacementMixed},
			left:          directory("aaa"),
			right:         file("aaa"),
			expectedOrder: 0,
		},
		{
			name:          "ignore_case_folds_names",
			policy:        Policy{Method: MethodNaive, Direction: DirectionAscending, Directories: PlacementMixed, IgnoreCase: true},
			left:          file("Dockerfile"),
			right:         file("dockerfile"),
			expectedOrder: 0,
		},
		{
			name:          "ignore_dot_strips_leading_dot",
			policy:        Policy{Method: MethodNaive, Direction: DirectionAscending, Directories: PlacementMixed, IgnoreDot: true},
			left:          file(".env"),
			right:         file("env"),
			expectedOrder: 0,
		},
		{
			name:          "ignore_dot_strips_one_dot_only",
			policy:        Policy{Method: MethodNaive, Direction: DirectionAscending, Directories: PlacementMixed, IgnoreDot: true},
			left:          file("..config"),
			right:         file("config"),
			expectedOrder: -1,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actualOrder := normalizeSign(testCase.policy.Compare(testCase.left, testCase.right))
			if actualOrder != testCase.expectedOrder {
				t.Fatalf("Compare(%q, %q) = %d, want %d", testCase.left.Name, testCase.right.Name, actualOrder, testCase.expectedOrder)
			}
			reversedOrder := normalizeSign(testCase.policy.Compare(testCase.right, testCase.left))
			if reversedOrder != -actualOrder {
				t.Fatalf("Compare is not antisymmetric: got %d and %d", actualOrder, reversedOrder)
			}
		})
	}
}

func TestCompareOrdersSiblingList(t *testing.T) {
	policy := Policy{Method: MethodNatural, Direction: DirectionAscending, Directories: PlacementFirst}
	siblings := []Sortable{
		file("notes-10.txt"),
		directory("src"),
		file("notes-2.txt"),
		directory("cmd"),
		file("README.md"),
	}
	sort.SliceStable(siblings, func(leftIndex int, rightIndex int) bool {
		return policy.Compare(siblings[leftIndex], siblings[rightIndex]) < 0
	})

	expectedNames := []string{"cmd", "src", "README.md", "notes-2.txt", "notes-10.txt"}
	for position, expectedName := range expectedNames {
		if siblings[position].Name != expectedName {
			t.Fatalf("position %d: got %q, want %q", position, siblings[position].Name, expectedName)
		}
	}
}

func TestParseMethod(t *testing.T) {
	if _, parseError := ParseMethod("natural"); parseError != nil {
		t.Fatalf("ParseMethod(natural): %v", parseError)
	}
	if _, parseError := ParseMethod("alphabetical"); parseError == nil {
		t.Fatal("ParseMethod(alphabetical) should fail")
	}
}

func TestParseDirection(t *testing.T) {
	testCases := []struct {
		raw      string
		expected Direction
		wantErr  bool
	}{
		{raw: "asc", expected: DirectionAscending},
		{raw: "ascending", expected: DirectionAscending},
		{raw: "desc", expected: DirectionDescending},
		{raw: "descending", expected: DirectionDescending},
		{raw: "sideways", wantErr: true},
	}
	for _, testCase := range testCases {
		parsedDirection, parseError := ParseDirection(testCase.raw)
		if testCase.wantErr {
			if parseError == nil {
				t.Fatalf("ParseDirection(%q) should fail", testCase.raw)
			}
			continue
		}
		if parseError != nil {
			t.Fatalf("ParseDirection(%q): %v", testCase.raw, parseError)
		}
		if parsedDirection != testCase.expected {
			t.Fatalf("ParseDirection(%q) = %q, want %q", testCase.raw, parsedDirection, testCase.expected)
		}
	}
}

func TestParseDirectoryPlacement(t *testing.T) {
	testCases := []struct {
		raw      string
		expected DirectoryPlacement
		wantErr  bool
	}{
		{raw: "mixed", expected: PlacementMixed},
		{raw: "first", expected: PlacementFirst},
		{raw: "last", expected: PlacementLast},
		{raw: "middle", wantErr: true},
	}
	for _, testCase := range testCases {
		parsedPlacement, parseError := ParseDirectoryPlacement(testCase.raw)
		if testCase.wantErr {
			if parseError == nil {
				t.Fatalf("ParseDirectoryPlacement(%q) should fail", testCase.raw)
			}
			continue
		}
		if parseError != nil {
			t.Fatalf("ParseDirectoryPlacement(%q): %v", testCase.raw, parseError)
		}
		if parsedPlacement != testCase.expected {
			t.Fatalf("ParseDirectoryPlacement(%q) = %q, want %q", testCase.raw, parsedPlacement, testCase.expected)
		}
	}
}
