package models

import "time"

// ClientDocument is a row of the client_documents table.
type ClientDocument struct {
	DocumentID  string    `db:"document_id"`
	UserID      string    `db:"user_id"`
	FileName    string    `db:"file_name"`
	FilePath    string    `db:"file_path"`
	FileSize    int64     `db:"file_size"`
	FileType    string    `db:"file_type"`
	Description string    `db:"description"`
	UploadDate  time.Time `db:"upload_date"`
	AuditFields
}

// LoginRecord is a row of the append-only login_history table.
type LoginRecord struct {
	LoginID   string    `db:"login_id"`
	UserID    string    `db:"user_id"`
	LoginTime time.Time `db:"login_time"`
	IPAddress string    `db:"ip_address"`
	UserAgent string    `db:"user_agent"`
}
