// Package normalize provides input normalization helpers used by stores and
// handlers so every write path applies the same canonical forms. Email is the
// join key across collections, so it must be normalized everywhere, not at
// scattered call sites.
package normalize

import "strings"

// Email lower-cases and trims an email address. Emails compare equal iff
// their normalized forms are equal.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role canonicalizes a role string to one of the four fixed forms
// (EB, EC, Core, Member) regardless of input case. Unrecognized values are
// returned trimmed so validation can reject them with the original text.
func Role(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eb":
		return "EB"
	case "ec":
		return "EC"
	case "core":
		return "Core"
	case "member":
		return "Member"
	}
	return strings.TrimSpace(s)
}

// Status canonicalizes an attendance status (Present/Absent) regardless of
// input case. Unrecognized values are returned trimmed.
func Status(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present":
		return "Present"
	case "absent":
		return "Absent"
	}
	return strings.TrimSpace(s)
}

// QueryParam trims a free-form query parameter, preserving case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
