package validator

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxPromptContentLength = 10000
	MaxFolderNameLength    = 100
	MaxFileNameLength      = 255
	MaxPDFSize             = 50 << 20
	MaxUseCasePDFs         = 20
	MaxDescriptionLength   = 5000
	MaxNameLength          = 100
	MaxBioLength           = 500
)

var (
	promptTitle       = Text("Title", MaxTitleLength, TextOptions{})
	promptContent     = Text("Prompt", MaxPromptContentLength, TextOptions{AllowNewlines: true})
	promptCategory    = Text("Category", MaxCategoryLength, TextOptions{Optional: true})
	folderName        = Text("Folder name", MaxFolderNameLength, TextOptions{})
	pdfTitle          = Text("Title", MaxTitleLength, TextOptions{})
	pdfFileName       = Text("File name", MaxFileNameLength, TextOptions{})
	useCaseTitle      = Text("Title", MaxTitleLength, TextOptions{})
	useCaseDesc       = Text("Description", MaxDescriptionLength, TextOptions{AllowNewlines: true})
	useCaseIndustry   = Text("Industry", MaxNameLength, TextOptions{Optional: true})
	profileName       = Text("Name", MaxNameLength, TextOptions{})
	profileBio        = Text("Bio", MaxBioLength, TextOptions{AllowNewlines: true, Optional: true})
	profileCompany    = Text("Company", MaxNameLength, TextOptions{Optional: true})
	optionalReference = validation.Match(cuidRegex).ErrorObject(errInvalidCUID)
)

// PromptRequest is the body of prompt create and update calls.
type PromptRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	FolderID *string `json:"folderId"`
}

// ValidatePrompt normalizes and validates a prompt request.
func (v *Validator) ValidatePrompt(r *PromptRequest) error {
	promptTitle.Normalize(&r.Title)
	promptContent.Normalize(&r.Content)
	promptCategory.Normalize(&r.Category)
	trimOptional(&r.FolderID)
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, promptTitle.Rules()...),
		validation.Field(&r.Content, promptContent.Rules()...),
		validation.Field(&r.Category, promptCategory.Rules()...),
		validation.Field(&r.FolderID, optionalReference),
	)
}

// FolderRequest is the body of folder create and rename calls.
type FolderRequest struct {
	Name     *string `json:"name"`
	ParentID *string `json:"parentId"`
	Color    *string `json:"color"`
}

// ValidateFolder normalizes and validates a folder request.
func (v *Validator) ValidateFolder(r *FolderRequest) error {
	folderName.Normalize(&r.Name)
	trimOptional(&r.ParentID)
	trimOptional(&r.Color)
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, folderName.Rules()...),
		validation.Field(&r.ParentID, optionalReference),
		validation.Field(&r.Color, HexColor),
	)
}

// PDFUploadRequest describes an uploaded PDF document.
type PDFUploadRequest struct {
	Title    *string `json:"title"`
	FileName *string `json:"fileName"`
	FileSize *int    `json:"fileSize"`
	URL      *string `json:"url"`
	FolderID *string `json:"folderId"`
}

// ValidatePDFUpload normalizes and validates a PDF upload request.
func (v *Validator) ValidatePDFUpload(r *PDFUploadRequest) error {
	pdfTitle.Normalize(&r.Title)
	pdfFileName.Normalize(&r.FileName)
	trimOptional(&r.URL)
	trimOptional(&r.FolderID)
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, pdfTitle.Rules()...),
		validation.Field(&r.FileName, append(pdfFileName.Rules(), validation.By(pdfExtension))...),
		validation.Field(&r.FileSize,
			validation.Required.Error("File size is required"),
			IntBetween(1, MaxPDFSize, fmt.Sprintf("File size must be between 1 and %d bytes", MaxPDFSize)),
		),
		validation.Field(&r.URL, validation.Required.Error("URL is required"), HTTPSURL("URL")),
		validation.Field(&r.FolderID, optionalReference),
	)
}

func pdfExtension(value interface{}) error {
	s, ok := stringOf(value)
	if !ok || s == "" {
		return nil
	}
	if !strings.HasSuffix(strings.ToLower(s), ".pdf") {
		return validation.NewError("validation_pdf_extension", "File must be a PDF")
	}
	return nil
}

// UseCaseRequest is the body of use-case create and update calls.
type UseCaseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Industry    *string  `json:"industry"`
	PDFIDs      []string `json:"pdfIds"`
}

// ValidateUseCase normalizes and validates a use-case request.
func (v *Validator) ValidateUseCase(r *UseCaseRequest) error {
	useCaseTitle.Normalize(&r.Title)
	useCaseDesc.Normalize(&r.Description)
	useCaseIndustry.Normalize(&r.Industry)
	for i := range r.PDFIDs {
		r.PDFIDs[i] = strings.TrimSpace(r.PDFIDs[i])
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, useCaseTitle.Rules()...),
		validation.Field(&r.Description, useCaseDesc.Rules()...),
		validation.Field(&r.Industry, useCaseIndustry.Rules()...),
		validation.Field(&r.PDFIDs,
			validation.Length(0, MaxUseCasePDFs).Error(fmt.Sprintf("At most %d PDFs can be attached", MaxUseCasePDFs)),
			validation.Each(validation.Required.ErrorObject(errInvalidCUID), CUID),
		),
	)
}

// UpdateProfileRequest is the body of a profile update.
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Bio     *string `json:"bio"`
	Company *string `json:"company"`
}

// ValidateProfile normalizes and validates a profile update.
func (v *Validator) ValidateProfile(r *UpdateProfileRequest) error {
	profileName.Normalize(&r.Name)
	trimOptional(&r.Phone)
	profileBio.Normalize(&r.Bio)
	profileCompany.Normalize(&r.Company)
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, profileName.Rules()...),
		validation.Field(&r.Phone, PhoneRules()...),
		validation.Field(&r.Bio, profileBio.Rules()...),
		validation.Field(&r.Company, profileCompany.Rules()...),
	)
}
