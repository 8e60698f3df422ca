package domain

import "strings"

// MemberStatus is the membership condition of a record
type MemberStatus string

const (
	StatusRetiree  MemberStatus = "Retiree"
	StatusSurvivor MemberStatus = "Survivor"
)

// legacy spellings used by the association's previous system
var statusAliases = map[string]MemberStatus{
	"retiree":       StatusRetiree,
	"jubilado":      StatusRetiree,
	"survivor":      StatusSurvivor,
	"sobreviviente": StatusSurvivor,
}

// ParseMemberStatus accepts the canonical values case-insensitively plus the legacy aliases.
func ParseMemberStatus(s string) (MemberStatus, error) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// IsValid reports whether s is one of the canonical statuses
func (s MemberStatus) IsValid() bool {
	return s == StatusRetiree || s == StatusSurvivor
}

// OrderBy selects the ordering of a full listing
type OrderBy string

const (
	// OrderByNationalID orders by the digits of the national id read as an integer
	OrderByNationalID OrderBy = "national_id"
	OrderByID         OrderBy = "id"
	OrderByName       OrderBy = "name"
)
