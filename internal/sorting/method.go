package sorting

import (
	"fmt"
	"strings"
)

// Method selects how names are compared.
type Method string

const (
	// MethodNaive compares names byte-wise.
	MethodNaive Method = "naive"
	// MethodNatural compares embedded digit runs as whole numbers, so
	// "img2" sorts before "img10".
	MethodNatural Method = "natural"
)

// ParseMethod converts a string into a Method.
func ParseMethod(rawMethod string) (Method, error) {
	switch Method(rawMethod) {
	case MethodNaive, MethodNatural:
		return Method(rawMethod), nil
	default:
		return "", fmt.Errorf("invalid sorting method %q; accepted values: %s, %s", rawMethod, MethodNaive, MethodNatural)
	}
}

// compare orders two normalized names under the method.
func (method Method) compare(left string, right string) int {
	if method == MethodNatural {
		return compareNatural(left, right)
	}
	return strings.Compare(left, right)
}

// compareNatural scans both names left to right, comparing maximal contiguous
// digit runs numerically and everything else byte-wise. Exhausting one name
// before the other makes the shorter one less.
func compareNatural(left string, right string) int {
	leftIndex, rightIndex := 0, 0
	for leftIndex < len(left) && rightIndex < len(right) {
		leftByte := left[leftIndex]
		rightByte := right[rightIndex]

		if isASCIIDigit(leftByte) && isASCIIDigit(rightByte) {
			leftRun, leftNext := consumeDigitRun(left, leftIndex)
			rightRun, rightNext := consumeDigitRun(right, rightIndex)
			if ordering := compareDigitRuns(leftRun, rightRun); ordering != 0 {
				return ordering
			}
			leftIndex, rightIndex = leftNext, rightNext
			continue
		}

		if leftByte != rightByte {
			if leftByte < rightByte {
				return -1
			}
			return 1
		}
		leftIndex++
		rightIndex++
	}

	leftRemaining := len(left) - leftIndex
	rightRemaining := len(right) - rightIndex
	switch {
	case leftRemaining < rightRemaining:
		return -1
	case leftRemaining > rightRemaining:
		return 1
	default:
		return 0
	}
}

// consumeDigitRun returns the maximal contiguous digit run starting at start
// and the index of the first byte after it.
func consumeDigitRun(name string, start int) (string, int) {
	end := start
	for end < len(name) && isASCIIDigit(name[end]) {
		end++
	}
	return name[start:end], end
}

// compareDigitRuns compares two digit runs as unbounded-width non-negative
// integers. Leading zeros are stripped first, so equal values with different
// padding compare equal regardless of run length.
func compareDigitRuns(left string, right string) int {
	left = strings.TrimLeft(left, "0")
	right = strings.TrimLeft(right, "0")
	if len(left) != len(right) {
		if len(left) < len(right) {
			return -1
		}
		return 1
	}
	return strings.Compare(left, right)
}

// isASCIIDigit reports whether the byte is an ASCII digit.
func isASCIIDigit(candidate byte) bool {
	return candidate >= '0' && candidate <= '9'
}
