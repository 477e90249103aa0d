package domain

// DocumentType identifies one of the supported insurance document layouts.
type DocumentType string

const (
	DocTypeDebitNote        DocumentType = "debit_note"
	DocTypeAccountStatement DocumentType = "account_statement"
	DocTypeRenewalNotice    DocumentType = "renewal_notice"
)

// DocumentTypes lists every supported document type.
var DocumentTypes = []DocumentType{
	DocTypeDebitNote,
	DocTypeAccountStatement,
	DocTypeRenewalNotice,
}

// Valid reports whether t is one of the supported document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocTypeDebitNote, DocTypeAccountStatement, DocTypeRenewalNotice:
		return true
	}
	return false
}

// CopyType tags a duplicate printed section of a debit note by recipient role.
type CopyType string

const (
	CopyManager CopyType = "manager"
	CopyAgent   CopyType = "agent"
	CopyAccount CopyType = "account"
	CopyFile    CopyType = "file"
)

// FileType represents the allowed attachment file types.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeXLSX FileType = "xlsx"
	FileTypeTXT  FileType = "txt"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FileTypeXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FileTypeTXT:  "text/plain",
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"docx": FileTypeDOCX,
	"xlsx": FileTypeXLSX,
	"txt":  FileTypeTXT,
}

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)
