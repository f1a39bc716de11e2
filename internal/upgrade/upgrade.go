// Package upgrade drives the Blue/Green upgrade workflow. Each run observes
// the database and its deployment and advances the workflow one step, so the
// command can be re-run until the upgrade is complete: create the deployment,
// switch over once it is available, then clean up the old environment.
package upgrade

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/engineversion"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
	"github.com/nsomarouthu/rds.upgrade.tool/internal/preflight"
	aws "github.com/nsomarouthu/rds.upgrade.tool/internal/providers/aws"
	"github.com/nsomarouthu/rds.upgrade.tool/pkg/logging"
)

const (
	deploymentNamePrefix = "bg-deployment-"

	// RDS caps Blue/Green deployment names at 60 characters.
	maxDeploymentNameLength = 60

	defaultPollInterval      = 30 * time.Second
	defaultPollTimeout       = 5 * time.Minute
	defaultSwitchoverTimeout = 5 * time.Minute
	defaultPromptTimeout     = 30 * time.Second
)

// Outcome identifies the step a run performed.
type Outcome string

const (
	// OutcomeUpToDate means the database already runs the target version.
	OutcomeUpToDate Outcome = "up-to-date"
	// OutcomeDeploymentCreated means a new Blue/Green deployment was started.
	OutcomeDeploymentCreated Outcome = "deployment-created"
	// OutcomeSwitchoverComplete means the switchover finished during this run.
	OutcomeSwitchoverComplete Outcome = "switchover-complete"
	// OutcomeCleanedUp means the deployment and the old environment are gone.
	OutcomeCleanedUp Outcome = "cleaned-up"
	// OutcomeInProgress means the deployment is still working; run again later.
	OutcomeInProgress Outcome = "in-progress"
)

// PreflightRunner runs the pre-upgrade safety checks.
//
//go:generate mockery --name=PreflightRunner --output=./mocks
type PreflightRunner interface {
	Run(ctx context.Context, identifier string) (models.PreflightReport, error)
}

// Config holds the workflow timings and options.
type Config struct {
	// PollInterval is the delay between switchover status checks.
	PollInterval time.Duration
	// PollTimeout bounds how long one run waits for a switchover to finish.
	PollTimeout time.Duration
	// SwitchoverTimeout is passed to RDS as the switchover deadline.
	SwitchoverTimeout time.Duration
	// PromptTimeout bounds the snapshot confirmation prompt.
	PromptTimeout time.Duration
	// AutoApprove answers yes to the snapshot prompt without asking.
	AutoApprove bool
}

// Service implements the upgrade workflow.
type Service struct {
	config     Config
	databases  aws.DatabaseServiceAPI
	bluegreens aws.BlueGreenServiceAPI
	checks     PreflightRunner
	logger     logging.Logger
	input      io.Reader
}

// NewService creates a new upgrade service. Zero config durations fall back
// to the defaults; a nil input falls back to stdin.
func NewService(
	config Config,
	databases aws.DatabaseServiceAPI,
	bluegreens aws.BlueGreenServiceAPI,
	checks PreflightRunner,
	logger logging.Logger,
	input io.Reader,
) *Service {
	if config.PollInterval <= 0 {
		config.PollInterval = defaultPollInterval
	}
	if config.PollTimeout <= 0 {
		config.PollTimeout = defaultPollTimeout
	}
	if config.SwitchoverTimeout <= 0 {
		config.SwitchoverTimeout = defaultSwitchoverTimeout
	}
	if config.PromptTimeout <= 0 {
		config.PromptTimeout = defaultPromptTimeout
	}
	if input == nil {
		input = os.Stdin
	}
	return &Service{
		config:     config,
		databases:  databases,
		bluegreens: bluegreens,
		checks:     checks,
		logger:     logger,
		input:      input,
	}
}

// Run advances the upgrade of identifier towards targetVersion by one step.
func (s *Service) Run(ctx context.Context, identifier, targetVersion string) (Outcome, error) {
	target, err := s.databases.Resolve(ctx, identifier)
	if err != nil {
		return "", fmt.Errorf("error resolving database %s: %w", identifier, err)
	}
	s.logger.Info("Database %s (%s) runs %s %s", target.Identifier, target.Kind, target.Engine, target.EngineVersion)

	comparison := engineversion.Compare(target.EngineVersion, targetVersion)
	if comparison == 0 {
		s.logger.Info("Database %s already runs %s, no upgrade required", identifier, targetVersion)
		return OutcomeUpToDate, nil
	}
	if comparison > 0 {
		return "", fmt.Errorf("downgrade refused: %s runs %s, newer than requested %s",
			identifier, target.EngineVersion, targetVersion)
	}

	deployment, err := s.bluegreens.FindForDatabase(ctx, identifier)
	if err != nil {
		return "", fmt.Errorf("error looking up Blue/Green deployment for %s: %w", identifier, err)
	}
	if deployment == nil {
		return s.startUpgrade(ctx, target, targetVersion)
	}
	return s.advance(ctx, target, deployment)
}

// startUpgrade runs the safety checks, offers a manual snapshot, makes sure
// automated backups are on and creates the Blue/Green deployment.
func (s *Service) startUpgrade(ctx context.Context, target *models.DatabaseTarget, targetVersion string) (Outcome, error) {
	check, err := s.checks.Run(ctx, target.Identifier)
	if err != nil {
		return "", fmt.Errorf("error running pre-upgrade checks: %w", err)
	}
	if !check.Safe() {
		for _, finding := range check.Findings {
			s.logger.Warn("%s %s: %s", finding.Kind, finding.Name, finding.Advice)
		}
		return "", preflight.ErrUnsafe
	}

	if s.confirmSnapshot() {
		snapshotName := fmt.Sprintf("%s-snapshot-%s", target.Identifier, time.Now().Format("20060102150405"))
		s.logger.Info("Creating snapshot %s", snapshotName)
		if err := s.databases.CreateSnapshot(ctx, target, snapshotName); err != nil {
			return "", fmt.Errorf("error creating snapshot %s: %w", snapshotName, err)
		}
	} else {
		s.logger.Info("Skipping manual snapshot")
	}

	if err := s.databases.EnsureBackupRetention(ctx, target); err != nil {
		return "", fmt.Errorf("error enabling automated backups on %s: %w", target.Identifier, err)
	}

	name := deploymentName(target.Identifier)
	deployment, err := s.bluegreens.Create(ctx, name, target.ARN, targetVersion)
	if err != nil {
		return "", fmt.Errorf("error creating Blue/Green deployment %s: %w", name, err)
	}
	s.logger.Info("Created Blue/Green deployment %s. Re-run once it is available to switch over.",
		deployment.Identifier)

	return OutcomeDeploymentCreated, nil
}

// advance moves an existing deployment along based on its status.
func (s *Service) advance(ctx context.Context, target *models.DatabaseTarget, deployment *models.BlueGreenDeployment) (Outcome, error) {
	s.logger.Info("Found Blue/Green deployment %s in status %s", deployment.Identifier, deployment.Status)

	switch deployment.Status {
	case aws.BlueGreenStatusAvailable:
		if err := s.bluegreens.Switchover(ctx, deployment.Identifier, s.config.SwitchoverTimeout); err != nil {
			return "", fmt.Errorf("error starting switchover of %s: %w", deployment.Identifier, err)
		}
		s.logger.Info("Switchover of %s started", deployment.Identifier)
		return s.waitForSwitchover(ctx, deployment.Identifier)

	case aws.BlueGreenStatusSwitchoverInProgress:
		return s.waitForSwitchover(ctx, deployment.Identifier)

	case aws.BlueGreenStatusSwitchoverCompleted:
		return s.cleanup(ctx, target, deployment)

	case aws.BlueGreenStatusSwitchoverFailed:
		return "", fmt.Errorf("switchover of deployment %s failed", deployment.Identifier)

	default:
		s.logger.Info("Deployment %s is %s; re-run once it is available", deployment.Identifier, deployment.Status)
		return OutcomeInProgress, nil
	}
}

// waitForSwitchover polls the deployment until the switchover completes or
// the poll budget runs out. Running out is not an error; the next run picks
// up where this one left off.
func (s *Service) waitForSwitchover(ctx context.Context, deploymentID string) (Outcome, error) {
	deadline := time.Now().Add(s.config.PollTimeout)
	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		status, err := s.bluegreens.Status(ctx, deploymentID)
		if err != nil {
			return "", fmt.Errorf("error polling deployment %s: %w", deploymentID, err)
		}

		switch status {
		case aws.BlueGreenStatusSwitchoverCompleted:
			s.logger.Info("Switchover of %s completed. Re-run to clean up the old environment.", deploymentID)
			return OutcomeSwitchoverComplete, nil
		case aws.BlueGreenStatusSwitchoverFailed:
			return "", fmt.Errorf("switchover of deployment %s failed", deploymentID)
		}

		if time.Now().After(deadline) {
			s.logger.Info("Switchover of %s still in progress after %s; re-run later to continue",
				deploymentID, s.config.PollTimeout)
			return OutcomeInProgress, nil
		}

		s.logger.Info("Waiting for switchover of %s (status %s)", deploymentID, status)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

// cleanup deletes the completed deployment, then the old environment it
// leaves behind. The old environment's name comes from the deployment's
// source ARN, which points at the pre-switchover database.
func (s *Service) cleanup(ctx context.Context, target *models.DatabaseTarget, deployment *models.BlueGreenDeployment) (Outcome, error) {
	deleted, err := s.bluegreens.Delete(ctx, deployment.Identifier)
	if err != nil {
		return "", fmt.Errorf("error deleting Blue/Green deployment %s: %w", deployment.Identifier, err)
	}

	oldName := aws.DatabaseNameFromARN(deleted.SourceARN)
	if oldName == "" {
		return "", fmt.Errorf("could not determine the old environment of deployment %s", deployment.Identifier)
	}

	s.logger.Info("Deleting old environment %s", oldName)
	if err := s.databases.DeleteDatabase(ctx, target.Kind, oldName); err != nil {
		return "", fmt.Errorf("error deleting old environment %s: %w", oldName, err)
	}

	s.logger.Info("Upgrade of %s is complete", target.Identifier)
	return OutcomeCleanedUp, nil
}

// confirmSnapshot asks whether to take a manual snapshot before the upgrade.
func (s *Service) confirmSnapshot() bool {
	if s.config.AutoApprove {
		return true
	}
	return confirm(s.input, "Do you want to take a manual snapshot before the upgrade?", s.config.PromptTimeout)
}

// deploymentName builds bg-deployment-<identifier>, truncating the
// identifier so the whole name fits the RDS limit.
func deploymentName(identifier string) string {
	limit := maxDeploymentNameLength - len(deploymentNamePrefix)
	if len(identifier) > limit {
		identifier = identifier[:limit]
	}
	return deploymentNamePrefix + identifier
}
