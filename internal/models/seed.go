package models

// SeedRecord is one line of a seed file. A snapshot line names its family.
type SeedRecord struct {
	Server    *CapabilitySet `json:"server,omitempty"`
	Statement *StatementText `json:"statement,omitempty"`
	Family    Family         `json:"family,omitempty"`
	Snapshot  *Snapshot      `json:"snapshot,omitempty"`
}
