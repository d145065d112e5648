package descriptor

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseError reports that a marker for a known form was present but the
// expected quoted/delimited shape around it was not.
type ParseError struct {
	Form    Form
	Pattern string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected pattern: %s", e.Pattern)
}

// UnrecognizedError reports that no known form marker was found. Raw is
// the original user-supplied text, before trimming or lower-casing.
type UnrecognizedError struct {
	Raw string
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("Could not parse provided path: %s", e.Raw)
}

// The extraction patterns are intentionally loose: classification is by
// marker presence, not full-grammar parsing, so the long tail of
// descriptor strings produced by older tooling still matches. Greedy
// capture is part of the contract: with more quoted runs than
// documented, the first capture swallows everything up to the last two,
// and with repeated ';' the last one wins.
var (
	quotedRe = regexp.MustCompile(`"(.+)"`)
	serverRe = regexp.MustCompile(`"(.+)".+"(.+)"`)
	simpleRe = regexp.MustCompile(`(.+);(.+)`)
)

// Classify determines which descriptor form raw matches and extracts
// its fields. The forms are tried in a fixed order because their
// markers are not mutually exclusive as substrings; reordering them
// changes which form wins. Only the ws= marker is matched
// case-sensitively, before the input is lower-cased; every later check
// runs on the lower-cased copy, so extracted fields come out
// lower-cased too.
func Classify(raw string) (Descriptor, error) {
	s := strings.TrimSpace(raw)

	if strings.Contains(s, "ws=") {
		m := quotedRe.FindStringSubmatch(s)
		if m == nil {
			return nil, &ParseError{Form: FormWeb, Pattern: `ws="<url>";`}
		}
		return Web{URL: m[1]}, nil
	}

	s = strings.ToLower(s)

	switch {
	case strings.Contains(s, "file="):
		m := quotedRe.FindStringSubmatch(s)
		if m == nil {
			return nil, &ParseError{Form: FormFile, Pattern: `File="<path>";`}
		}
		return File{Path: m[1]}, nil

	case strings.Contains(s, "srvr=") && strings.Contains(s, "ref="):
		m := serverRe.FindStringSubmatch(s)
		if m == nil {
			return nil, &ParseError{Form: FormServer, Pattern: `Srvr="host";Ref="ref";`}
		}
		return Server{Host: m[1], RefName: m[2]}, nil

	case strings.Contains(s, ";"):
		m := simpleRe.FindStringSubmatch(s)
		if m == nil {
			return nil, &ParseError{Form: FormSimple, Pattern: `host;ref`}
		}
		return Server{Host: m[1], RefName: m[2]}, nil

	default:
		return nil, &UnrecognizedError{Raw: raw}
	}
}
