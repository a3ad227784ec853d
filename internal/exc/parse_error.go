// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"fmt"
	"strings"
)

type ParseErrorKind uint8

const (
	KindUnexpectedToken ParseErrorKind = iota + 1
	KindAllAlternativesFailed
	KindRecursionLimitExceeded
	KindUnexpectedEndOfInput
	KindInvalidLiteral
)

func (k ParseErrorKind) String() string {
	switch k {
	case KindUnexpectedToken:
		return "UnexpectedToken"
	case KindAllAlternativesFailed:
		return "AllAlternativesFailed"
	case KindRecursionLimitExceeded:
		return "RecursionLimitExceeded"
	case KindUnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case KindInvalidLiteral:
		return "InvalidLiteral"
	default:
		return fmt.Sprintf("unknown-%d", k)
	}
}

func (k ParseErrorKind) code() string {
	switch k {
	case KindUnexpectedToken:
		return CodeUnexpectedToken
	case KindAllAlternativesFailed:
		return CodeAllAlternativesFailed
	case KindRecursionLimitExceeded:
		return CodeRecursionLimitExceeded
	case KindUnexpectedEndOfInput:
		return CodeUnexpectedEOF
	case KindInvalidLiteral:
		return CodeInvalidLiteral
	default:
		return CodeUnknownFatal
	}
}

var _ Exception = (*ParseError)(nil)

// ParseError describes why a token stream is not a valid query. Rule names the
// grammar rule that failed, Index is the offset of the offending token in the
// stream, and Found is the text of that token.
type ParseError struct {
	Kind     ParseErrorKind
	Rule     string
	Expected []string
	Found    string
	Index    int
	Depth    int
	Pos      Location
}

func (e *ParseError) Error() string {
	return format(e.Pos, e.Code(), e.Message())
}

func (e *ParseError) Code() string {
	return e.Kind.code()
}

func (e *ParseError) Location() Location {
	return e.Pos
}

func (e *ParseError) Message() string {
	switch e.Kind {
	case KindUnexpectedToken:
		return fmt.Sprintf("unexpected %s in %s (expecting %s)", e.Found, e.Rule, e.expected())
	case KindUnexpectedEndOfInput:
		if len(e.Expected) < 1 {
			return fmt.Sprintf("unexpected end of input in %s", e.Rule)
		}
		return fmt.Sprintf("unexpected end of input in %s (expecting %s)", e.Rule, e.expected())
	case KindAllAlternativesFailed:
		return fmt.Sprintf("no alternative of %s matches %s", e.Rule, e.Found)
	case KindRecursionLimitExceeded:
		return fmt.Sprintf("%s nests deeper than %d", e.Rule, e.Depth)
	case KindInvalidLiteral:
		return fmt.Sprintf("invalid %s %s", e.Rule, e.Found)
	default:
		return fmt.Sprintf("parse failed in %s at %s", e.Rule, e.Found)
	}
}

func (e *ParseError) expected() string {
	if len(e.Expected) < 1 {
		return "nothing"
	}
	quoted := make([]string, 0, len(e.Expected))
	for _, exp := range e.Expected {
		quoted = append(quoted, fmt.Sprintf("%q", exp))
	}
	return strings.Join(quoted, " or ")
}
