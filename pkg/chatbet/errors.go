package chatbet

import (
	"errors"
	"fmt"
)

// ErrorKind names one failure family. Every parse failure carries exactly
// one kind so calling systems can branch on it.
type ErrorKind string

const (
	KindPrefix         ErrorKind = "prefix"          // unrecognized chat-type prefix
	KindFormat         ErrorKind = "format"          // message too short / malformed overall
	KindStructure      ErrorKind = "structure"       // bad leg separators, empty leg, too few legs
	KindPrice          ErrorKind = "price"           // unparseable or missing price
	KindSize           ErrorKind = "size"            // unparseable or missing size/risk
	KindLineValue      ErrorKind = "line_value"      // line not a multiple of 0.5
	KindRotation       ErrorKind = "rotation_number" // rotation number out of range
	KindPeriod         ErrorKind = "period"          // unrecognized period notation
	KindTeamName       ErrorKind = "team_name"       // empty or duplicate team name
	KindContractType   ErrorKind = "contract_type"   // classification failure, prop-shape mismatch
	KindWritein        ErrorKind = "writein"         // bad write-in date or description
	KindKeywordSyntax  ErrorKind = "keyword_syntax"  // spaces around the ':' separator
	KindKeywordValue   ErrorKind = "keyword_value"   // bad value for a known key
	KindKeywordUnknown ErrorKind = "keyword_unknown" // unrecognized key: token
	KindNCrFormat      ErrorKind = "ncr_format"      // round-robin size token malformed
	KindNCrRange       ErrorKind = "ncr_range"       // round-robin counts out of range
	KindLegCount       ErrorKind = "leg_count"       // realized legs != declared total
	KindRiskType       ErrorKind = "risk_type"       // round robin missing per/total
	KindDate           ErrorKind = "date"            // unparseable or impossible date
)

// Error is a typed parse failure. It carries the raw input and, where
// feasible, the specific offending token.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Input   string    `json:"input"`
	Token   string    `json:"token,omitempty"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %s (token %q)", e.Kind, e.Message, e.Token)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, input, token, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Input:   input,
		Token:   token,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf extracts the ErrorKind from err, unwrapping as needed. Returns ""
// when err is not a parse error.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// IsKind reports whether err is a parse error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
