package terraform

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
	"github.com/nsomarouthu/rds.upgrade.tool/pkg/logging"
)

const (
	awsDBInstanceType = "aws_db_instance"
	awsDBClusterType  = "aws_rds_cluster"
)

type DefaultParser struct {
	logger logging.Logger
}

// NewDefaultParser creates a new instance of DefaultParser
func NewDefaultParser() *DefaultParser {
	return NewParserWithLogger(
		logging.NewDefaultLogger(),
	)
}

// NewParserWithLogger creates a new instance of DefaultParser with a specific logger
func NewParserWithLogger(logger logging.Logger) *DefaultParser {
	return &DefaultParser{
		logger: logger,
	}
}

// ParseHCLConfig parses an HCL configuration file and extracts every
// aws_db_instance and aws_rds_cluster resource declared in it. Blocks that
// fail to decode, for example because engine_version is a variable reference
// rather than a literal, are skipped with a warning.
func (p DefaultParser) ParseHCLConfig(configPath string) ([]models.DeclaredDatabase, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(configPath)

	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", configPath, diags.Error())
	}

	if file == nil || file.Body == nil {
		return nil, fmt.Errorf("parsed HCL file is empty or invalid: %s", configPath)
	}

	// First, decode the top-level resource blocks
	var cfg ConfigFile
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL body %s: %s", configPath, diags.Error())
	}

	p.logger.Debug("Searching for %s and %s resources in configuration", awsDBInstanceType, awsDBClusterType)

	var declared []models.DeclaredDatabase
	for _, res := range cfg.Resources {
		switch res.Type {
		case awsDBInstanceType:
			var instance HCLDBInstance
			diags = gohcl.DecodeBody(res.Body, nil, &instance)
			if diags.HasErrors() {
				p.logger.Warn("Failed to decode %s '%s': %s", awsDBInstanceType, res.Name, diags.Error())
				continue
			}

			// The identifier attribute is optional in Terraform; fall back to
			// the resource label the way plans refer to unnamed instances.
			identifier := instance.Identifier
			if identifier == "" {
				identifier = res.Name
			}

			p.logger.Info("Found %s resource: %s", awsDBInstanceType, identifier)
			declared = append(declared, models.DeclaredDatabase{
				Identifier:    identifier,
				Kind:          models.KindInstance,
				Engine:        instance.Engine,
				EngineVersion: instance.EngineVersion,
			})

		case awsDBClusterType:
			var cluster HCLDBCluster
			diags = gohcl.DecodeBody(res.Body, nil, &cluster)
			if diags.HasErrors() {
				p.logger.Warn("Failed to decode %s '%s': %s", awsDBClusterType, res.Name, diags.Error())
				continue
			}

			identifier := cluster.ClusterIdentifier
			if identifier == "" {
				identifier = res.Name
			}

			p.logger.Info("Found %s resource: %s", awsDBClusterType, identifier)
			declared = append(declared, models.DeclaredDatabase{
				Identifier:    identifier,
				Kind:          models.KindCluster,
				Engine:        cluster.Engine,
				EngineVersion: cluster.EngineVersion,
			})
		}
	}

	if len(declared) == 0 {
		return nil, fmt.Errorf("no '%s' or '%s' resources found in %s", awsDBInstanceType, awsDBClusterType, configPath)
	}

	return declared, nil
}

// DeclaredVersions flattens parsed resources into an identifier to
// engine_version lookup for annotating live inventory.
func DeclaredVersions(declared []models.DeclaredDatabase) map[string]string {
	versions := make(map[string]string, len(declared))
	for _, d := range declared {
		if d.EngineVersion != "" {
			versions[d.Identifier] = d.EngineVersion
		}
	}
	return versions
}
