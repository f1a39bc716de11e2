package models

// Finding kinds reported by the pre-upgrade checks.
const (
	FindingReplicationSlot = "replication_slot"
	FindingExtension       = "extension"
)

// ReplicationSlot is a row of pg_replication_slots.
type ReplicationSlot struct {
	Name   string `json:"slot_name"`
	Active bool   `json:"active"`
}

// PreflightFinding is a single condition that must be resolved before a
// blue/green upgrade can be created safely.
type PreflightFinding struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Advice string `json:"advice"`
}

// PreflightReport captures what the live database looked like when inspected.
type PreflightReport struct {
	Identifier string `json:"identifier"`
	Host       string `json:"host"`
	Database   string `json:"database"`

	ActiveSlots []ReplicationSlot  `json:"active_replication_slots"`
	Extensions  []string           `json:"installed_extensions"`
	Findings    []PreflightFinding `json:"findings,omitempty"`
}

// Safe reports whether the database can enter a blue/green upgrade as-is.
func (r *PreflightReport) Safe() bool {
	return len(r.Findings) == 0
}
