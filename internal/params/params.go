// Package params inspects and edits the parameter groups of RDS instances
// and Aurora clusters, and migrates user-set parameters to a new group
// family ahead of a major engine upgrade.
package params

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/engineversion"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
	aws "github.com/nsomarouthu/rds.upgrade.tool/internal/providers/aws"
	"github.com/nsomarouthu/rds.upgrade.tool/pkg/logging"
)

// parameterDocLinks maps the replication-related parameters operators review
// before an upgrade to their tuning documentation.
var parameterDocLinks = map[string]string{
	"max_replication_slots":           "https://docs.aws.amazon.com/AmazonRDS/latest/UserGuide/Appendix.PostgreSQL.CommonDBATasks.html#Appendix.PostgreSQL.CommonDBATasks.ReplicationSlots",
	"max_wal_senders":                 "https://www.postgresql.org/docs/current/runtime-config-replication.html",
	"max_logical_replication_workers": "https://www.postgresql.org/docs/current/runtime-config-replication.html",
	"max_worker_processes":            "https://www.postgresql.org/docs/current/runtime-config-resource.html",
	"rds.logical_replication":         "https://docs.aws.amazon.com/AmazonRDS/latest/UserGuide/USER_PostgreSQL.Replication.html",
	"autovacuum_max_workers":          "https://www.postgresql.org/docs/current/runtime-config-autovacuum.html",
	"max_parallel_workers":            "https://www.postgresql.org/docs/current/runtime-config-resource.html",
	"synchronous_commit":              "https://www.postgresql.org/docs/current/runtime-config-wal.html#GUC-SYNCHRONOUS-COMMIT",
}

// MigrationResult records what a parameter-group migration did.
type MigrationResult struct {
	Major         bool
	Family        string
	CreatedGroups []string

	// CopiedParameters holds the user-set parameters written into each
	// created group, keyed by group name.
	CopiedParameters map[string][]models.ParameterSetting
}

// Service implements the parameter group operations.
type Service struct {
	databases  aws.DatabaseServiceAPI
	parameters aws.ParameterServiceAPI
	logger     logging.Logger
	input      io.Reader
}

// NewService creates a new parameter service. A nil input falls back to
// stdin for the interactive prompts.
func NewService(
	databases aws.DatabaseServiceAPI,
	parameters aws.ParameterServiceAPI,
	logger logging.Logger,
	input io.Reader,
) *Service {
	if input == nil {
		input = os.Stdin
	}
	return &Service{
		databases:  databases,
		parameters: parameters,
		logger:     logger,
		input:      input,
	}
}

// resolveGroup picks the parameter group an identifier's settings live in:
// the cluster group for Aurora, the first instance group otherwise.
func (s *Service) resolveGroup(ctx context.Context, identifier string) (*models.DatabaseTarget, string, error) {
	target, err := s.databases.Resolve(ctx, identifier)
	if err != nil {
		return nil, "", fmt.Errorf("error resolving database %s: %w", identifier, err)
	}

	if target.IsCluster() {
		return target, target.ClusterParameterGroup, nil
	}
	if len(target.ParameterGroups) == 0 {
		return nil, "", fmt.Errorf("no parameter group found for %s", identifier)
	}
	return target, target.ParameterGroups[0], nil
}

// Overview fetches the group's parameters and splits them into the
// replication checklist and the user-set parameters.
func (s *Service) Overview(ctx context.Context, identifier string) (models.ParameterOverview, error) {
	target, groupName, err := s.resolveGroup(ctx, identifier)
	if err != nil {
		return models.ParameterOverview{}, err
	}

	overview := models.ParameterOverview{
		Identifier: identifier,
		GroupName:  groupName,
		Kind:       target.Kind,
	}

	settings, err := s.parameters.ListParameters(ctx, groupName, target.Kind)
	if err != nil {
		return overview, fmt.Errorf("error listing parameters of %s: %w", groupName, err)
	}

	for _, setting := range settings {
		if link, ok := parameterDocLinks[setting.Name]; ok {
			setting.DocLink = link
			overview.Replication = append(overview.Replication, setting)
		}
		if setting.Source == aws.ParameterSourceUser {
			overview.UserSet = append(overview.UserSet, setting)
		}
	}

	s.logger.Info("Parameter group %s: %d replication parameters, %d user-set",
		groupName, len(overview.Replication), len(overview.UserSet))

	return overview, nil
}

// Edit walks the replication checklist interactively. Empty input keeps a
// parameter as-is; anything else is collected and applied in one call with
// ApplyMethod pending-reboot.
func (s *Service) Edit(ctx context.Context, identifier string) ([]models.ParameterSetting, error) {
	overview, err := s.Overview(ctx, identifier)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(s.input)
	var changes []models.ParameterSetting
	for _, setting := range overview.Replication {
		value := setting.Value
		if value == "" {
			value = "Not Set"
		}
		fmt.Printf("\nDo you want to change '%s'? Current value: %s\n", setting.Name, value)
		fmt.Printf("Refer to Documentation: %s\n", setting.DocLink)
		fmt.Print("Enter new value or press Enter to skip: ")

		if !scanner.Scan() {
			// Input closed; keep whatever was collected so far.
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			continue
		}
		changes = append(changes, models.ParameterSetting{
			Name:        setting.Name,
			Value:       answer,
			ApplyMethod: aws.ApplyMethodPendingReboot,
		})
	}

	if len(changes) == 0 {
		s.logger.Info("No changes made")
		return nil, nil
	}

	if err := s.parameters.ModifyParameters(ctx, overview.GroupName, overview.Kind, changes); err != nil {
		return nil, fmt.Errorf("error modifying parameter group %s: %w", overview.GroupName, err)
	}
	s.logger.Info("Changes have been applied. Please reboot the instance to take effect.")

	return changes, nil
}

// Migrate prepares parameter groups for a major engine upgrade: new groups
// in the target version's family with every user-set parameter copied over.
// Aurora gets a cluster group and, when members exist, an instance group.
// Minor upgrades need nothing.
func (s *Service) Migrate(ctx context.Context, identifier, targetVersion string) (MigrationResult, error) {
	target, groupName, err := s.resolveGroup(ctx, identifier)
	if err != nil {
		return MigrationResult{}, err
	}

	major, err := engineversion.IsMajorUpgrade(target.EngineVersion, targetVersion)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("error comparing versions: %w", err)
	}
	if !major {
		s.logger.Info("Minor upgrade detected: %s -> %s. Parameter groups carry over.",
			target.EngineVersion, targetVersion)
		return MigrationResult{}, nil
	}

	majorVersion, err := engineversion.Major(targetVersion)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("error parsing target version: %w", err)
	}

	s.logger.Info("Major upgrade detected: %s -> %s", target.EngineVersion, targetVersion)

	result := MigrationResult{
		Major:            true,
		CopiedParameters: map[string][]models.ParameterSetting{},
	}

	if target.IsCluster() {
		result.Family = fmt.Sprintf("aurora-postgresql%d", majorVersion)

		clusterGroup := fmt.Sprintf("%s-cluster-pg%s", identifier, result.Family)
		copied, err := s.copyUserParameters(ctx, groupName, clusterGroup, result.Family, identifier, models.KindCluster)
		if err != nil {
			return result, err
		}
		result.CreatedGroups = append(result.CreatedGroups, clusterGroup)
		result.CopiedParameters[clusterGroup] = copied

		// All members are assumed to share one instance-level group.
		if len(target.MemberInstances) > 0 {
			memberGroups, err := s.databases.InstanceParameterGroups(ctx, target.MemberInstances[0])
			if err != nil {
				return result, fmt.Errorf("error fetching parameter groups of %s: %w", target.MemberInstances[0], err)
			}
			if len(memberGroups) > 0 {
				instanceGroup := fmt.Sprintf("%s-instance-pg%s", identifier, result.Family)
				copied, err := s.copyUserParameters(ctx, memberGroups[0], instanceGroup, result.Family, identifier, models.KindInstance)
				if err != nil {
					return result, err
				}
				result.CreatedGroups = append(result.CreatedGroups, instanceGroup)
				result.CopiedParameters[instanceGroup] = copied
			}
		}
		return result, nil
	}

	result.Family = fmt.Sprintf("postgres%d", majorVersion)
	instanceGroup := fmt.Sprintf("%s-instance-pg%s", identifier, result.Family)
	copied, err := s.copyUserParameters(ctx, groupName, instanceGroup, result.Family, identifier, models.KindInstance)
	if err != nil {
		return result, err
	}
	result.CreatedGroups = append(result.CreatedGroups, instanceGroup)
	result.CopiedParameters[instanceGroup] = copied

	return result, nil
}

// copyUserParameters creates the new group, copies the source group's
// user-set parameters into it with ApplyMethod pending-reboot and returns
// the settings it wrote.
func (s *Service) copyUserParameters(ctx context.Context, sourceGroup, newGroup, family, identifier string, kind models.DatabaseKind) ([]models.ParameterSetting, error) {
	description := fmt.Sprintf("%s Parameter group for %s", family, identifier)
	if err := s.parameters.CreateParameterGroup(ctx, newGroup, family, description, kind); err != nil {
		return nil, fmt.Errorf("error creating parameter group %s: %w", newGroup, err)
	}
	s.logger.Info("Parameter group '%s' created successfully", newGroup)

	userParams, err := s.parameters.UserParameters(ctx, sourceGroup, kind)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user parameters from %s: %w", sourceGroup, err)
	}
	if len(userParams) == 0 {
		s.logger.Info("No user-defined parameters to apply to '%s'", newGroup)
		return nil, nil
	}

	changes := make([]models.ParameterSetting, 0, len(userParams))
	for _, param := range userParams {
		changes = append(changes, models.ParameterSetting{
			Name:        param.Name,
			Value:       param.Value,
			ApplyMethod: aws.ApplyMethodPendingReboot,
		})
	}
	if err := s.parameters.ModifyParameters(ctx, newGroup, kind, changes); err != nil {
		return nil, fmt.Errorf("error applying parameters to %s: %w", newGroup, err)
	}
	s.logger.Info("Applied %d parameters to '%s'", len(changes), newGroup)

	return changes, nil
}
