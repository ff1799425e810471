package domain

import "strings"

// QueryStatus is the lifecycle state of a support query. Any member may be
// set at any time; no transition order is enforced.
type QueryStatus string

const (
	QueryStatusOpen       QueryStatus = "OPEN"
	QueryStatusInProgress QueryStatus = "IN_PROGRESS"
	QueryStatusClosed     QueryStatus = "CLOSED"
)

func (s QueryStatus) String() string { return string(s) }

func (s QueryStatus) IsValid() bool {
	switch s {
	case QueryStatusOpen, QueryStatusInProgress, QueryStatusClosed:
		return true
	}
	return false
}

// ParseQueryStatus accepts the canonical values as well as the display
// spellings used by older clients ("Open", "In Progress", "InProgress").
// Unknown input is returned upper-cased and fails IsValid.
func ParseQueryStatus(raw string) QueryStatus {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	if s == "INPROGRESS" {
		return QueryStatusInProgress
	}
	return QueryStatus(s)
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeQuery EntityType = "QUERY"
	EntityTypeNote  EntityType = "NOTE"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeQuery, EntityTypeNote:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// ClientNaming selects which client name a listing shows.
type ClientNaming string

const (
	// ClientNamingHistorical shows the name captured when the query was created.
	ClientNamingHistorical ClientNaming = "HISTORICAL"
	// ClientNamingCurrent shows the client's present name when it still resolves.
	ClientNamingCurrent ClientNaming = "CURRENT"
)

func (n ClientNaming) String() string { return string(n) }

func (n ClientNaming) IsValid() bool {
	switch n {
	case ClientNamingHistorical, ClientNamingCurrent:
		return true
	}
	return false
}

// ParseClientNaming maps "historical" / "current" in any case to a ClientNaming.
func ParseClientNaming(raw string) ClientNaming {
	return ClientNaming(strings.ToUpper(strings.TrimSpace(raw)))
}
