package dto

import (
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
)

// RegisterDocumentRequest describes a file already uploaded to storage.
// FilePath defaults to "<userID>/<fileName>".
type RegisterDocumentRequest struct {
	FileName    string     `json:"fileName" binding:"required,max=255"`
	FilePath    string     `json:"filePath" binding:"max=1024"`
	FileSize    int64      `json:"fileSize" binding:"min=0"`
	FileType    string     `json:"fileType" binding:"max=100"`
	Description string     `json:"description" binding:"max=500"`
	UploadDate  *time.Time `json:"uploadDate"`
}

// DocumentResponse defines the data returned for a client document.
type DocumentResponse struct {
	DocumentID  string    `json:"documentID"`
	UserID      string    `json:"userID"`
	FileName    string    `json:"fileName"`
	FilePath    string    `json:"filePath"`
	FileSize    int64     `json:"fileSize"`
	FileType    string    `json:"fileType,omitempty"`
	Description string    `json:"description,omitempty"`
	UploadDate  time.Time `json:"uploadDate"`
	CreatedBy   string    `json:"createdBy"`
}

// ToDocumentResponse converts a domain.ClientDocument to its DTO.
func ToDocumentResponse(d *domain.ClientDocument) DocumentResponse {
	return DocumentResponse{
		DocumentID:  d.DocumentID,
		UserID:      d.UserID,
		FileName:    d.FileName,
		FilePath:    d.FilePath,
		FileSize:    d.FileSize,
		FileType:    d.FileType,
		Description: d.Description,
		UploadDate:  d.UploadDate,
		CreatedBy:   d.CreatedBy,
	}
}

// ToListDocumentResponse converts documents to their DTOs.
func ToListDocumentResponse(docs []domain.ClientDocument) []DocumentResponse {
	res := make([]DocumentResponse, len(docs))
	for i := range docs {
		res[i] = ToDocumentResponse(&docs[i])
	}
	return res
}

// LoginResponse defines the data returned for a sign-in record.
type LoginResponse struct {
	LoginID   string    `json:"loginID"`
	LoginTime time.Time `json:"loginTime"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
}

func ToLoginResponse(l *domain.LoginRecord) LoginResponse {
	return LoginResponse{
		LoginID:   l.LoginID,
		LoginTime: l.LoginTime,
		IPAddress: l.IPAddress,
		UserAgent: l.UserAgent,
	}
}

// ToListLoginResponse converts login records to their DTOs.
func ToListLoginResponse(logins []domain.LoginRecord) []LoginResponse {
	res := make([]LoginResponse, len(logins))
	for i := range logins {
		res[i] = ToLoginResponse(&logins[i])
	}
	return res
}

// ClientFootprintResponse is the admin view of a client's activity.
type ClientFootprintResponse struct {
	UserID    string             `json:"userID"`
	Documents []DocumentResponse `json:"documents"`
	Logins    []LoginResponse    `json:"logins"`
	LastLogin *time.Time         `json:"lastLogin,omitempty"`
}

// ToClientFootprintResponse converts a domain.ClientFootprint to its DTO.
func ToClientFootprintResponse(f *domain.ClientFootprint) ClientFootprintResponse {
	return ClientFootprintResponse{
		UserID:    f.UserID,
		Documents: ToListDocumentResponse(f.Documents),
		Logins:    ToListLoginResponse(f.Logins),
		LastLogin: f.LastLogin,
	}
}
