package domain

import "time"

// ClientDocument is the metadata of a file a client uploaded. The bytes live
// in object storage under FilePath.
type ClientDocument struct {
	DocumentID  string    `json:"documentID"`
	UserID      string    `json:"userID"`
	FileName    string    `json:"fileName"`
	FilePath    string    `json:"filePath"`
	FileSize    int64     `json:"fileSize"`
	FileType    string    `json:"fileType,omitempty"`
	Description string    `json:"description,omitempty"`
	UploadDate  time.Time `json:"uploadDate"`
	AuditFields
}

// LoginRecord is one sign-in to the portal.
type LoginRecord struct {
	LoginID   string    `json:"loginID"`
	UserID    string    `json:"userID"`
	LoginTime time.Time `json:"loginTime"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
}

// ClientFootprint gathers what an admin sees about a client's activity:
// their documents and recent sign-ins, newest first.
type ClientFootprint struct {
	UserID    string
	Documents []ClientDocument
	Logins    []LoginRecord
	LastLogin *time.Time
}
