// Package profile identifies which adapter implementations should be active
// for a given environment (hexagonal-architecture profile selection).
package profile

import "strings"

// Profile is an extensible environment identifier. Built-in profiles cover
// the common environments; custom profiles are plain values:
//
//	integration := profile.Parse("integration")
//
// Profiles are lowercase; compare with ==, or with Matches when the
// universal profile should count.
type Profile string

// Built-in profiles.
const (
	Production  Profile = "production"
	Test        Profile = "test"
	Development Profile = "development"
	Staging     Profile = "staging"
	CI          Profile = "ci"

	// All is the universal profile — it matches every environment.
	All Profile = "*"
)

// Parse normalizes a raw string into a Profile. Matching is
// case-insensitive, so Parse("PRODUCTION") == Production.
func Parse(s string) Profile {
	return Profile(strings.ToLower(strings.TrimSpace(s)))
}

// Matches reports whether p applies when active is the running profile.
// All matches everything, in both positions.
func (p Profile) Matches(active Profile) bool {
	return p == All || active == All || p == active
}

func (p Profile) String() string { return string(p) }
