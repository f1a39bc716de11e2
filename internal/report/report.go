package report

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nsomarouthu/rds.upgrade.tool/internal/models"
)

// OutputFormatType defines the format types for printed reports.
type OutputFormatType string

const (
	// OutputFormatTypeJSON represents JSON output format
	OutputFormatTypeJSON OutputFormatType = "JSON"
	// OutputFormatTypeTABLE represents table output format
	OutputFormatTypeTABLE OutputFormatType = "TABLE"
)

// ParseOutputFormat maps a user-supplied format flag to an OutputFormatType.
func ParseOutputFormat(format string) (OutputFormatType, error) {
	switch format {
	case "json", "JSON":
		return OutputFormatTypeJSON, nil
	case "table", "TABLE", "":
		return OutputFormatTypeTABLE, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// newTable builds an empty styled table with the given headers.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		Headers(headers...)
}

// PrintInventory prints the engine version inventory in the requested format.
func PrintInventory(inventory models.InventoryReport, outputFormat OutputFormatType) error {
	switch outputFormat {
	case OutputFormatTypeJSON:
		return printJSON(inventory)
	case OutputFormatTypeTABLE:
		return printInventoryTable(inventory)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// PrintParameters prints a flat parameter list for one group in the
// requested format.
func PrintParameters(groupName string, parameters []models.ParameterSetting, outputFormat OutputFormatType) error {
	switch outputFormat {
	case OutputFormatTypeJSON:
		return printJSON(struct {
			GroupName  string                   `json:"group_name"`
			Parameters []models.ParameterSetting `json:"parameters"`
		}{GroupName: groupName, Parameters: parameters})
	case OutputFormatTypeTABLE:
		return printParametersTable(groupName, parameters)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// PrintParameterOverview prints a database's replication checklist and
// user-set parameters in the requested format.
func PrintParameterOverview(overview models.ParameterOverview, outputFormat OutputFormatType) error {
	switch outputFormat {
	case OutputFormatTypeJSON:
		return printJSON(overview)
	case OutputFormatTypeTABLE:
		return printParameterOverviewTable(overview)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// PrintPreflight prints the pre-upgrade check results in the requested format.
func PrintPreflight(preflight models.PreflightReport, outputFormat OutputFormatType) error {
	switch outputFormat {
	case OutputFormatTypeJSON:
		return printJSON(preflight)
	case OutputFormatTypeTABLE:
		return printPreflightTable(preflight)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// printJSON prints any report shape as indented JSON
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling report to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printInventoryTable prints the inventory in a human-friendly table format
func printInventoryTable(inventory models.InventoryReport) error {
	if inventory.MaxVersion != "" {
		fmt.Printf("\nDatabases below engine version %s\n", inventory.MaxVersion)
	}

	t := newTable("KIND", "IDENTIFIER", "ENGINE", "RUNNING", "DECLARED")
	for _, entry := range inventory.Instances {
		t.Row(rowForEntry(entry)...)
	}
	for _, entry := range inventory.Clusters {
		t.Row(rowForEntry(entry)...)
	}

	fmt.Println(t)
	fmt.Printf("Total instances: %d\n", len(inventory.Instances))
	fmt.Printf("Total clusters: %d\n", len(inventory.Clusters))
	return nil
}

func rowForEntry(entry models.InventoryEntry) []string {
	declared := entry.DeclaredVersion
	if declared == "" {
		declared = "-"
	}
	return []string{
		string(entry.Database.Kind),
		entry.Database.Identifier,
		entry.Database.Engine,
		entry.Database.EngineVersion,
		declared,
	}
}

// printParametersTable prints a parameter list in a human-friendly table format
func printParametersTable(groupName string, parameters []models.ParameterSetting) error {
	fmt.Printf("\nParameters in group %s\n", groupName)

	t := newTable("NAME", "VALUE", "APPLY TYPE", "MODIFIABLE")
	for _, p := range parameters {
		t.Row(p.Name, formatValueForTable(p.Value), p.ApplyType, strconv.FormatBool(p.IsModifiable))
	}
	fmt.Println(t)

	fmt.Printf("Total parameters: %d\n", len(parameters))
	return nil
}

// printParameterOverviewTable prints the overview in a human-friendly table format
func printParameterOverviewTable(overview models.ParameterOverview) error {
	fmt.Printf("\nParameter group for %s (%s): %s\n", overview.Identifier, overview.Kind, overview.GroupName)

	replication := newTable("PARAMETER", "VALUE", "DOCUMENTATION")
	for _, p := range overview.Replication {
		replication.Row(p.Name, formatValueForTable(p.Value), p.DocLink)
	}
	fmt.Println(replication)

	if len(overview.UserSet) > 0 {
		fmt.Println("User-set parameters:")
		userSet := newTable("NAME", "VALUE", "APPLY TYPE", "MODIFIABLE")
		for _, p := range overview.UserSet {
			userSet.Row(p.Name, formatValueForTable(p.Value), p.ApplyType, strconv.FormatBool(p.IsModifiable))
		}
		fmt.Println(userSet)
	}

	fmt.Printf("Replication parameters: %d, user-set parameters: %d\n",
		len(overview.Replication), len(overview.UserSet))
	return nil
}

// printPreflightTable prints the check results in a human-friendly table format
func printPreflightTable(preflight models.PreflightReport) error {
	fmt.Printf("\nPre-upgrade checks for %s (%s/%s)\n", preflight.Identifier, preflight.Host, preflight.Database)

	slots := newTable("REPLICATION SLOT", "ACTIVE")
	for _, slot := range preflight.ActiveSlots {
		slots.Row(slot.Name, strconv.FormatBool(slot.Active))
	}
	fmt.Println(slots)

	fmt.Printf("Installed extensions: %d\n", len(preflight.Extensions))

	if len(preflight.Findings) > 0 {
		findings := newTable("KIND", "NAME", "ADVICE")
		for _, finding := range preflight.Findings {
			findings.Row(finding.Kind, finding.Name, finding.Advice)
		}
		fmt.Println(findings)
	}

	if preflight.Safe() {
		fmt.Println("Database is safe for a blue/green upgrade.")
	} else {
		fmt.Printf("Database is NOT safe for a blue/green upgrade: %d findings.\n", len(preflight.Findings))
	}
	return nil
}

// formatValueForTable formats values for better display in the table
func formatValueForTable(v string) string {
	if v == "" {
		return "<empty>"
	}
	return v
}
