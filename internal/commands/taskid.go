package commands

import (
	"strconv"
	"strings"
	"unicode"
)

// InvalidID is the id given to arguments that are not a number.
// Task ids start at 1, so it never matches a stored task.
const InvalidID = 0

// TaskID is a parsed <id> argument.
type TaskID struct {
	Raw string // argument as typed, for messages
	Num int    // parsed id, InvalidID if Raw is not a number
}

// ParseTaskID parses an <id> argument.
//
// Parsing rules:
//  1. Surrounding whitespace is ignored.
//  2. An optional leading '+' or '-' followed by ASCII digits is a number.
//  3. Anything else (including overflow) is InvalidID. It is not an error:
//     the lookup simply finds no task and reports "not found".
func ParseTaskID(arg string) TaskID {
	id := TaskID{Raw: arg, Num: InvalidID}

	s := strings.TrimSpace(arg)
	digits := strings.TrimLeft(s, "+-")
	if len(s)-len(digits) > 1 || !isAllDigits(digits) {
		return id
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return id
	}
	id.Num = n
	return id
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
