package terraform

import "github.com/hashicorp/hcl/v2"

// HCLDBInstance represents the attributes of an aws_db_instance resource we
// care about. Remain swallows the rest of the block so real-world configs
// with the full attribute set still decode.
type HCLDBInstance struct {
	Identifier    string   `hcl:"identifier,optional"`
	Engine        string   `hcl:"engine,optional"`
	EngineVersion string   `hcl:"engine_version,optional"`
	Remain        hcl.Body `hcl:",remain"`
}

// HCLDBCluster represents the attributes of an aws_rds_cluster resource.
type HCLDBCluster struct {
	ClusterIdentifier string   `hcl:"cluster_identifier,optional"`
	Engine            string   `hcl:"engine,optional"`
	EngineVersion     string   `hcl:"engine_version,optional"`
	Remain            hcl.Body `hcl:",remain"`
}

// ResourceBlock represents a single resource block in HCL.
type ResourceBlock struct {
	Type string   `hcl:"type,label"`
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// ConfigFile represents the top-level structure containing resource blocks.
type ConfigFile struct {
	Resources []*ResourceBlock `hcl:"resource,block"`
	Remain    hcl.Body         `hcl:",remain"` // Catch-all for other blocks if necessary
}
