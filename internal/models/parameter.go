package models

// ParameterSetting describes a single entry of a DB (or cluster) parameter
// group as returned by the RDS API.
type ParameterSetting struct {
	Name          string `json:"name"`
	Value         string `json:"value,omitempty"`
	AllowedValues string `json:"allowed_values,omitempty"`
	ApplyType     string `json:"apply_type,omitempty"`
	ApplyMethod   string `json:"apply_method,omitempty"`
	Source        string `json:"source,omitempty"`
	Description   string `json:"description,omitempty"`
	IsModifiable  bool   `json:"is_modifiable"`

	// DocLink points at the tuning documentation for parameters on the
	// replication checklist.
	DocLink string `json:"doc_link,omitempty"`
}

// ParameterOverview is the inspection view of a database's parameter group:
// the replication-related parameters an upgrade depends on, plus everything
// the operators have set themselves.
type ParameterOverview struct {
	Identifier  string             `json:"identifier"`
	GroupName   string             `json:"group_name"`
	Kind        DatabaseKind       `json:"kind"`
	Replication []ParameterSetting `json:"replication_parameters"`
	UserSet     []ParameterSetting `json:"user_parameters"`
}
