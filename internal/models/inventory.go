package models

// InventoryEntry pairs a live database with the engine version its Terraform
// configuration declares, when one was supplied for comparison.
type InventoryEntry struct {
	Database        DatabaseTarget `json:"database"`
	DeclaredVersion string         `json:"declared_version,omitempty"`

	// Drift is set when the running engine version is behind the declared one.
	Drift bool `json:"drift,omitempty"`
}

// InventoryReport lists the databases running an engine version below the
// requested ceiling, split the way the fleet is managed.
type InventoryReport struct {
	MaxVersion string           `json:"max_version,omitempty"`
	Instances  []InventoryEntry `json:"instances"`
	Clusters   []InventoryEntry `json:"clusters"`
}

// Total returns the number of databases in the report.
func (r *InventoryReport) Total() int {
	return len(r.Instances) + len(r.Clusters)
}
