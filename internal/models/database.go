package models

// DatabaseKind discriminates between a standalone RDS instance and an Aurora cluster.
type DatabaseKind string

const (
	// KindInstance is a standalone RDS for PostgreSQL instance.
	KindInstance DatabaseKind = "instance"

	// KindCluster is an Aurora PostgreSQL cluster.
	KindCluster DatabaseKind = "cluster"
)

// DatabaseTarget holds the resolved identity and current state of an RDS
// instance or Aurora cluster, collapsed into a single shape so the rest of
// the tool doesn't have to branch on the two SDK response types.
type DatabaseTarget struct {
	Identifier            string       `json:"identifier"`
	Kind                  DatabaseKind `json:"kind"`
	ARN                   string       `json:"arn,omitempty"`
	Engine                string       `json:"engine,omitempty"`
	EngineVersion         string       `json:"engine_version,omitempty"`
	Status                string       `json:"status,omitempty"`
	Endpoint              string       `json:"endpoint,omitempty"`
	Port                  int32        `json:"port,omitempty"`
	BackupRetentionPeriod int32        `json:"backup_retention_period,omitempty"`
	DeletionProtection    bool         `json:"deletion_protection,omitempty"`

	// ParameterGroups are the DB parameter groups attached to an instance.
	ParameterGroups []string `json:"parameter_groups,omitempty"`

	// ClusterParameterGroup is the cluster parameter group, clusters only.
	ClusterParameterGroup string `json:"cluster_parameter_group,omitempty"`

	// MemberInstances are the instance identifiers belonging to a cluster.
	MemberInstances []string `json:"member_instances,omitempty"`
}

// IsCluster reports whether the target is an Aurora cluster.
func (t *DatabaseTarget) IsCluster() bool {
	return t.Kind == KindCluster
}

// DeclaredDatabase is a database resource declared in Terraform configuration,
// used to compare the fleet's declared engine versions against what is running.
type DeclaredDatabase struct {
	Identifier    string       `json:"identifier"`
	Kind          DatabaseKind `json:"kind"`
	Engine        string       `json:"engine,omitempty"`
	EngineVersion string       `json:"engine_version,omitempty"`
}
