// Package inventory collects the engine versions of every RDS instance and
// Aurora cluster in the account and reports the ones behind a version ceiling.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/engineversion"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
	aws "github.com/nsomarouthu/rds.upgrade.tool/internal/providers/aws"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/terraform"
	"github.com/nsomarouthu/rds.upgrade.tool/pkg/logging"
)

// collectionConcurrency bounds the instance and cluster listings running in
// parallel.
const collectionConcurrency = 2

// Config contains the parameters for an inventory run.
type Config struct {
	MaxVersion    string // Only report databases strictly below this engine version
	TerraformPath string // Optional HCL file with declared engine versions
}

// Service collects the fleet inventory.
type Service struct {
	config          Config
	databases       aws.DatabaseServiceAPI
	terraformParser terraform.IProvider
	logger          logging.Logger
}

// NewService creates a new inventory service with the given configuration.
func NewService(
	config Config,
	databases aws.DatabaseServiceAPI,
	terraformParser terraform.IProvider,
	logger logging.Logger,
) *Service {
	return &Service{
		config:          config,
		databases:       databases,
		terraformParser: terraformParser,
		logger:          logger,
	}
}

// Run lists instances and clusters concurrently, filters them against the
// configured version ceiling and annotates them with declared versions when a
// Terraform configuration was supplied.
func (s *Service) Run(ctx context.Context) (models.InventoryReport, error) {
	declared := map[string]string{}
	if s.config.TerraformPath != "" {
		parsed, err := s.terraformParser.ParseHCLConfig(s.config.TerraformPath)
		if err != nil {
			return models.InventoryReport{}, fmt.Errorf("error parsing Terraform configuration: %w", err)
		}
		declared = terraform.DeclaredVersions(parsed)
		s.logger.Debug("Loaded %d declared engine versions from %s", len(declared), s.config.TerraformPath)
	}

	var instances, clusters []models.DatabaseTarget

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(collectionConcurrency)

	g.Go(func() error {
		var err error
		instances, err = s.databases.ListInstances(gctx)
		if err != nil {
			return fmt.Errorf("error listing DB instances: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		clusters, err = s.databases.ListClusters(gctx)
		if err != nil {
			return fmt.Errorf("error listing DB clusters: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.InventoryReport{}, err
	}

	inventory := models.InventoryReport{
		MaxVersion: s.config.MaxVersion,
		Instances:  s.collect(instances, declared, true),
		Clusters:   s.collect(clusters, declared, false),
	}

	s.logger.Info("Inventory collected: %d instances, %d clusters",
		len(inventory.Instances), len(inventory.Clusters))

	return inventory, nil
}

// collect filters, annotates and sorts one side of the fleet. Aurora member
// instances are dropped from the instance side because their cluster already
// represents them.
func (s *Service) collect(targets []models.DatabaseTarget, declared map[string]string, skipAurora bool) []models.InventoryEntry {
	entries := make([]models.InventoryEntry, 0, len(targets))
	for _, target := range targets {
		if skipAurora && strings.Contains(target.Engine, "aurora") {
			continue
		}
		if s.config.MaxVersion != "" &&
			engineversion.Compare(target.EngineVersion, s.config.MaxVersion) >= 0 {
			continue
		}

		entry := models.InventoryEntry{Database: target}
		if version, ok := declared[target.Identifier]; ok {
			entry.DeclaredVersion = version
			entry.Drift = engineversion.Compare(target.EngineVersion, version) < 0
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return engineversion.Compare(
			entries[i].Database.EngineVersion,
			entries[j].Database.EngineVersion,
		) < 0
	})

	return entries
}
