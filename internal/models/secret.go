package models

// DatabaseSecret mirrors the JSON document stored in Secrets Manager for a
// database. Field names follow the document keys, not Go conventions.
type DatabaseSecret struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"databaseName"`
	Username string `json:"username"`
	Password string `json:"password"`
}
