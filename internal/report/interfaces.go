package report

import "github.com/nsomarouthu/rds.upgrade.tool/internal/models"

// IPrinter is the interface for generating reports
//
//go:generate mockery --name=IPrinter --output=./mocks
type IPrinter interface {
	PrintInventory(inventory models.InventoryReport, format OutputFormatType) error
	PrintParameters(groupName string, parameters []models.ParameterSetting, format OutputFormatType) error
	PrintParameterOverview(overview models.ParameterOverview, format OutputFormatType) error
	PrintPreflight(preflight models.PreflightReport, format OutputFormatType) error
}

// DefaultPrinter is the default implementation of the report printer
type DefaultPrinter struct{}

// PrintInventory implements the printer interface
func (p DefaultPrinter) PrintInventory(inventory models.InventoryReport, format OutputFormatType) error {
	return PrintInventory(inventory, format)
}

// PrintParameters implements the printer interface
func (p DefaultPrinter) PrintParameters(groupName string, parameters []models.ParameterSetting, format OutputFormatType) error {
	return PrintParameters(groupName, parameters, format)
}

// PrintParameterOverview implements the printer interface
func (p DefaultPrinter) PrintParameterOverview(overview models.ParameterOverview, format OutputFormatType) error {
	return PrintParameterOverview(overview, format)
}

// PrintPreflight implements the printer interface
func (p DefaultPrinter) PrintPreflight(preflight models.PreflightReport, format OutputFormatType) error {
	return PrintPreflight(preflight, format)
}
