package validator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateArticle(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		req      ArticleRequest
		errField string
		errMsg   string
	}{
		{
			name: "valid full article",
			req: ArticleRequest{
				Title:        strPtr("  Fixing SQL injection in Go  "),
				Excerpt:      strPtr("How we patched\nthe login handler."),
				Content:      strPtr("<p>Use <code>pgx</code> placeholders.</p>"),
				ContentJSON:  json.RawMessage(`{"type":"doc","content":[]}`),
				Category:     strPtr("Web"),
				IconName:     strPtr("shield-check"),
				IconPosition: strPtr("left"),
				IconColor:    strPtr("#1A2B3C"),
				Cover:        strPtr("gradient-ocean"),
				ReadTime:     intPtr(7),
			},
		},
		{
			name: "empty request is valid",
			req:  ArticleRequest{},
		},
		{
			name:     "title with angle bracket",
			req:      ArticleRequest{Title: strPtr("<script>alert(1)</script>")},
			errField: "title",
			errMsg:   "Title must not contain '<' or '>'",
		},
		{
			name:     "title too long",
			req:      ArticleRequest{Title: strPtr(strings.Repeat("a", MaxTitleLength+1))},
			errField: "title",
			errMsg:   "Title must be less than 200 characters",
		},
		{
			name:     "excerpt too long",
			req:      ArticleRequest{Excerpt: strPtr(strings.Repeat("a", MaxExcerptLength+1))},
			errField: "excerpt",
			errMsg:   "Excerpt must be less than 500 characters",
		},
		{
			name:     "content too long",
			req:      ArticleRequest{Content: strPtr(strings.Repeat("a", MaxContentLength+1))},
			errField: "content",
		},
		{
			name:     "invalid content json",
			req:      ArticleRequest{ContentJSON: json.RawMessage(`{"type":`)},
			errField: "contentJson",
		},
		{
			name:     "read time zero",
			req:      ArticleRequest{ReadTime: intPtr(0)},
			errField: "readTime",
		},
		{
			name:     "read time above max",
			req:      ArticleRequest{ReadTime: intPtr(121)},
			errField: "readTime",
		},
		{
			name:     "http cover",
			req:      ArticleRequest{Cover: strPtr("http://example.com/a.png")},
			errField: "cover",
		},
		{
			name:     "bad icon position",
			req:      ArticleRequest{IconPosition: strPtr("bottom")},
			errField: "iconPosition",
		},
		{
			name:     "bad icon color",
			req:      ArticleRequest{IconColor: strPtr("red")},
			errField: "iconColor",
		},
		{
			name:     "bad icon name",
			req:      ArticleRequest{IconName: strPtr("shield check")},
			errField: "iconName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			err := v.ValidateArticle(&req)
			if tt.errField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fields := FieldErrors(err)
			require.Contains(t, fields, tt.errField)
			if tt.errMsg != "" {
				assert.Equal(t, tt.errMsg, fields[tt.errField])
			}
		})
	}
}

func TestValidateArticle_Normalizes(t *testing.T) {
	v := NewValidator()
	req := ArticleRequest{
		Title:       strPtr(" Multi\nline\ttitle\x00 "),
		Excerpt:     strPtr(" keep\nnewlines "),
		Category:    strPtr("   "),
		ContentJSON: json.RawMessage(`null`),
	}

	require.NoError(t, v.ValidateArticle(&req))
	assert.Equal(t, "Multi line title", *req.Title)
	assert.Equal(t, "keep\nnewlines", *req.Excerpt)
	assert.Nil(t, req.Category)
	assert.Nil(t, req.ContentJSON)
}

func TestValidateArticle_BlankClearsOptionalFields(t *testing.T) {
	v := NewValidator()
	req := ArticleRequest{
		Excerpt:  strPtr("  "),
		Category: strPtr(""),
		Cover:    strPtr(" \t"),
		IconName: strPtr("shield"),
	}

	require.NoError(t, v.ValidateArticle(&req))
	assert.Nil(t, req.Excerpt)
	assert.Nil(t, req.Cover)
	assert.True(t, req.Cleared(FieldExcerpt))
	assert.True(t, req.Cleared(FieldCategory))
	assert.True(t, req.Cleared(FieldCover))
	assert.False(t, req.Cleared(FieldIconName))

	absent := ArticleRequest{}
	require.NoError(t, v.ValidateArticle(&absent))
	assert.False(t, absent.Cleared(FieldExcerpt))
}

func TestValidateReject(t *testing.T) {
	v := NewValidator()

	missing := RejectArticleRequest{}
	err := v.ValidateReject(&missing)
	require.Error(t, err)
	assert.Equal(t, "Feedback is required", FieldErrors(err)["feedback"])

	tooLong := RejectArticleRequest{Feedback: strPtr(strings.Repeat("x", MaxAdminFeedbackLength+1))}
	require.Error(t, v.ValidateReject(&tooLong))

	ok := RejectArticleRequest{Feedback: strPtr(" Please add\nreproduction steps. ")}
	require.NoError(t, v.ValidateReject(&ok))
	assert.Equal(t, "Please add\nreproduction steps.", *ok.Feedback)
}

func TestParseListArticles(t *testing.T) {
	v := NewValidator()

	page, statuses, err := v.ParseListArticles(ListArticlesQuery{Page: "2", Limit: "10", Status: "pending_review"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	require.Len(t, statuses, 1)
	assert.Equal(t, "PENDING_REVIEW", string(statuses[0]))

	_, _, err = v.ParseListArticles(ListArticlesQuery{Status: "archived"})
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "status")

	_, _, err = v.ParseListArticles(ListArticlesQuery{Limit: "500"})
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "limit")
}

func TestValidatePrompt(t *testing.T) {
	v := NewValidator()

	valid := PromptRequest{
		Title:    strPtr("Triage prompt"),
		Content:  strPtr("Summarize the finding.\nList affected files."),
		FolderID: strPtr("cjld2cjxh0000qzrmn831i7rn"),
	}
	assert.NoError(t, v.ValidatePrompt(&valid))

	missing := PromptRequest{Title: strPtr("T")}
	err := v.ValidatePrompt(&missing)
	require.Error(t, err)
	assert.Equal(t, "Prompt is required", FieldErrors(err)["content"])

	badFolder := PromptRequest{Title: strPtr("T"), Content: strPtr("c"), FolderID: strPtr("folder-1")}
	err = v.ValidatePrompt(&badFolder)
	require.Error(t, err)
	assert.Equal(t, "Invalid ID format", FieldErrors(err)["folderId"])
}

func TestValidateFolder(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateFolder(&FolderRequest{Name: strPtr("Playbooks"), Color: strPtr("#00ff00")}))

	err := v.ValidateFolder(&FolderRequest{Name: strPtr("a>b")})
	require.Error(t, err)
	assert.Equal(t, "Folder name must not contain '<' or '>'", FieldErrors(err)["name"])

	err = v.ValidateFolder(&FolderRequest{Name: strPtr("ok"), ParentID: strPtr("c123")})
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "parentId")
}

func TestValidatePDFUpload(t *testing.T) {
	v := NewValidator()

	valid := PDFUploadRequest{
		Title:    strPtr("OWASP cheat sheet"),
		FileName: strPtr("cheatsheet.PDF"),
		FileSize: intPtr(2048),
		URL:      strPtr("https://files.example.com/cheatsheet.pdf"),
	}
	assert.NoError(t, v.ValidatePDFUpload(&valid))

	notPDF := valid
	notPDF.FileName = strPtr("cheatsheet.docx")
	err := v.ValidatePDFUpload(&notPDF)
	require.Error(t, err)
	assert.Equal(t, "File must be a PDF", FieldErrors(err)["fileName"])

	tooBig := valid
	tooBig.FileSize = intPtr(MaxPDFSize + 1)
	err = v.ValidatePDFUpload(&tooBig)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "fileSize")

	insecure := valid
	insecure.URL = strPtr("http://files.example.com/cheatsheet.pdf")
	err = v.ValidatePDFUpload(&insecure)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "url")
}

func TestValidateUseCase(t *testing.T) {
	v := NewValidator()

	valid := UseCaseRequest{
		Title:       strPtr("Secrets in CI"),
		Description: strPtr("Detect leaked tokens.\nRotate them."),
		PDFIDs:      []string{"cjld2cjxh0000qzrmn831i7rn"},
	}
	assert.NoError(t, v.ValidateUseCase(&valid))

	badID := valid
	badID.PDFIDs = []string{"cjld2cjxh0000qzrmn831i7rn", "nope"}
	err := v.ValidateUseCase(&badID)
	require.Error(t, err)
	fields := FieldErrors(err)
	assert.Equal(t, "Invalid ID format", fields["pdfIds.1"])

	tooMany := valid
	tooMany.PDFIDs = make([]string, MaxUseCasePDFs+1)
	for i := range tooMany.PDFIDs {
		tooMany.PDFIDs[i] = "cjld2cjxh0000qzrmn831i7rn"
	}
	err = v.ValidateUseCase(&tooMany)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "pdfIds")
}

func TestValidateProfile(t *testing.T) {
	v := NewValidator()

	req := UpdateProfileRequest{
		Name:    strPtr("  Ada Lovelace "),
		Phone:   strPtr(" +44 20 7946 0958 "),
		Bio:     strPtr(""),
		Company: strPtr("Analytical Engines"),
	}
	require.NoError(t, v.ValidateProfile(&req))
	assert.Equal(t, "Ada Lovelace", *req.Name)
	assert.Equal(t, "+44 20 7946 0958", *req.Phone)
	assert.Nil(t, req.Bio)

	bad := UpdateProfileRequest{Name: strPtr("Ada"), Phone: strPtr("call me")}
	err := v.ValidateProfile(&bad)
	require.Error(t, err)
	assert.Equal(t, "Invalid phone number format", FieldErrors(err)["phone"])
}

func TestFieldErrors(t *testing.T) {
	assert.Empty(t, FieldErrors(nil))
	assert.Equal(t, "Validation failed", FirstMessage(nil))
	assert.Equal(t, "a failed", FirstMessage(map[string]string{"b": "b failed", "a": "a failed"}))
}

func intPtr(n int) *int {
	return &n
}
