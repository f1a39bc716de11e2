package models

// BlueGreenDeployment is the subset of an RDS Blue/Green deployment the
// upgrade workflow cares about.
type BlueGreenDeployment struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	SourceARN  string `json:"source_arn"`
	TargetARN  string `json:"target_arn"`
}
