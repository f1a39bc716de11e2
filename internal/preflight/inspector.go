package preflight

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
)

// Queries mirror what operators run by hand when validating an upgrade.
const (
	activeSlotsQuery = "SELECT slot_name, active FROM pg_replication_slots WHERE active = true;"
	extensionsQuery  = "SELECT extname FROM pg_extension;"
)

// Inspector is the interface for live database inspection
//
//go:generate mockery --name=Inspector --output=./mocks
type Inspector interface {
	ActiveReplicationSlots(ctx context.Context) ([]models.ReplicationSlot, error)
	InstalledExtensions(ctx context.Context) ([]string, error)
	Close(ctx context.Context) error
}

// ConnectFunc opens an Inspector session against the database the secret
// points at. Injected so tests can supply a fake session.
type ConnectFunc func(ctx context.Context, secret *models.DatabaseSecret, connectTimeout time.Duration) (Inspector, error)

// Connect opens a PostgreSQL session using pgx.
func Connect(ctx context.Context, secret *models.DatabaseSecret, connectTimeout time.Duration) (Inspector, error) {
	// Build the config from discrete fields so credentials never need DSN
	// escaping.
	cfg, err := pgx.ParseConfig("")
	if err != nil {
		return nil, fmt.Errorf("failed to build connection config: %w", err)
	}
	cfg.Host = secret.Host
	cfg.Port = uint16(secret.Port)
	cfg.Database = secret.Database
	cfg.User = secret.Username
	cfg.Password = secret.Password
	cfg.ConnectTimeout = connectTimeout

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s:%d/%s: %w", secret.Host, secret.Port, secret.Database, err)
	}

	return &pgInspector{conn: conn}, nil
}

// pgInspector runs the inspection queries over a live pgx connection.
type pgInspector struct {
	conn *pgx.Conn
}

// ActiveReplicationSlots returns the replication slots currently in use.
func (i *pgInspector) ActiveReplicationSlots(ctx context.Context) ([]models.ReplicationSlot, error) {
	rows, err := i.conn.Query(ctx, activeSlotsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query replication slots: %w", err)
	}
	defer rows.Close()

	var slots []models.ReplicationSlot
	for rows.Next() {
		var slot models.ReplicationSlot
		if err := rows.Scan(&slot.Name, &slot.Active); err != nil {
			return nil, fmt.Errorf("failed to scan replication slot row: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// InstalledExtensions returns the names of every installed extension.
func (i *pgInspector) InstalledExtensions(ctx context.Context) ([]string, error) {
	rows, err := i.conn.Query(ctx, extensionsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query extensions: %w", err)
	}
	defer rows.Close()

	var extensions []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan extension row: %w", err)
		}
		extensions = append(extensions, name)
	}
	return extensions, rows.Err()
}

// Close terminates the session.
func (i *pgInspector) Close(ctx context.Context) error {
	return i.conn.Close(ctx)
}
