package mapping

import (
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/SscSPs/visa_portal_backend/internal/models"
)

// ToModelClientDocument converts a domain ClientDocument to a model ClientDocument
func ToModelClientDocument(d domain.ClientDocument) models.ClientDocument {
	return models.ClientDocument{
		DocumentID:  d.DocumentID,
		UserID:      d.UserID,
		FileName:    d.FileName,
		FilePath:    d.FilePath,
		FileSize:    d.FileSize,
		FileType:    d.FileType,
		Description: d.Description,
		UploadDate:  d.UploadDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClientDocument converts a model ClientDocument to a domain ClientDocument
func ToDomainClientDocument(m models.ClientDocument) domain.ClientDocument {
	return domain.ClientDocument{
		DocumentID:  m.DocumentID,
		UserID:      m.UserID,
		FileName:    m.FileName,
		FilePath:    m.FilePath,
		FileSize:    m.FileSize,
		FileType:    m.FileType,
		Description: m.Description,
		UploadDate:  m.UploadDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientDocumentSlice converts a slice of model documents to domain documents
func ToDomainClientDocumentSlice(ms []models.ClientDocument) []domain.ClientDocument {
	ds := make([]domain.ClientDocument, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClientDocument(m)
	}
	return ds
}

// ToModelLoginRecord converts a domain LoginRecord to a model LoginRecord
func ToModelLoginRecord(d domain.LoginRecord) models.LoginRecord {
	return models.LoginRecord(d)
}

// ToDomainLoginRecord converts a model LoginRecord to a domain LoginRecord
func ToDomainLoginRecord(m models.LoginRecord) domain.LoginRecord {
	return domain.LoginRecord(m)
}

// ToDomainLoginRecordSlice converts a slice of model login records to domain records
func ToDomainLoginRecordSlice(ms []models.LoginRecord) []domain.LoginRecord {
	ds := make([]domain.LoginRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoginRecord(m)
	}
	return ds
}
