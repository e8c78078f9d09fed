package validator

import (
	"encoding/json"
	"fmt"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"remediation-portal/internal/domain"
)

const (
	MaxTitleLength         = 200
	MaxExcerptLength       = 500
	MaxContentLength       = 500000
	MaxContentJSONBytes    = 1000000
	MaxCategoryLength      = 50
	MaxIconNameLength      = 50
	MaxAdminFeedbackLength = 2000
	MinReadTime            = 1
	MaxReadTime            = 120
)

var (
	articleTitle    = Text("Title", MaxTitleLength, TextOptions{Optional: true})
	articleExcerpt  = Text("Excerpt", MaxExcerptLength, TextOptions{AllowNewlines: true, Optional: true})
	articleCategory = Text("Category", MaxCategoryLength, TextOptions{Optional: true})
	articleIconName = Text("Icon name", MaxIconNameLength, TextOptions{Optional: true})
	adminFeedback   = Text("Feedback", MaxAdminFeedbackLength, TextOptions{AllowNewlines: true})

	validIconPositions = []interface{}{
		string(domain.IconPositionLeft),
		string(domain.IconPositionRight),
		string(domain.IconPositionTop),
	}
)

// Optional article fields that a blank string clears on update.
const (
	FieldExcerpt  = "excerpt"
	FieldCategory = "category"
	FieldIconName = "iconName"
	FieldCover    = "cover"
)

// ArticleRequest is the body of article create and update calls.
// nil fields are left unchanged on update and defaulted on create.
type ArticleRequest struct {
	Title        *string         `json:"title"`
	Excerpt      *string         `json:"excerpt"`
	Content      *string         `json:"content"`
	ContentJSON  json.RawMessage `json:"contentJson"`
	Category     *string         `json:"category"`
	IconName     *string         `json:"iconName"`
	IconPosition *string         `json:"iconPosition"`
	IconColor    *string         `json:"iconColor"`
	Cover        *string         `json:"cover"`
	ReadTime     *int            `json:"readTime"`

	cleared []string
}

// Normalize normalizes every text field in place. A clearable field sent
// as a blank string becomes nil and is reported by Cleared.
func (r *ArticleRequest) Normalize() {
	r.cleared = nil
	articleTitle.Normalize(&r.Title)
	r.normalizeClearable(FieldExcerpt, &r.Excerpt, articleExcerpt.Normalize)
	r.normalizeClearable(FieldCategory, &r.Category, articleCategory.Normalize)
	r.normalizeClearable(FieldIconName, &r.IconName, articleIconName.Normalize)
	trimOptional(&r.IconPosition)
	trimOptional(&r.IconColor)
	r.normalizeClearable(FieldCover, &r.Cover, trimOptional)
	if domain.IsEmptyJSON(r.ContentJSON) {
		r.ContentJSON = nil
	}
}

// Cleared reports whether field was sent as a blank string.
func (r *ArticleRequest) Cleared(field string) bool {
	return slices.Contains(r.cleared, field)
}

func (r *ArticleRequest) normalizeClearable(field string, value **string, normalize func(**string)) {
	present := *value != nil
	normalize(value)
	if present && *value == nil {
		r.cleared = append(r.cleared, field)
	}
}

// ValidateArticle normalizes and validates an article request.
func (v *Validator) ValidateArticle(r *ArticleRequest) error {
	r.Normalize()
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, articleTitle.Rules()...),
		validation.Field(&r.Excerpt, articleExcerpt.Rules()...),
		validation.Field(&r.Content,
			validation.RuneLength(0, MaxContentLength).Error(fmt.Sprintf("Content must be less than %d characters", MaxContentLength)),
		),
		validation.Field(&r.ContentJSON, JSONDocument("Content JSON", MaxContentJSONBytes)),
		validation.Field(&r.Category, articleCategory.Rules()...),
		validation.Field(&r.IconName, append(articleIconName.Rules(),
			validation.Match(iconNameRegex).Error("Icon name may only contain letters, digits and dashes"),
		)...),
		validation.Field(&r.IconPosition,
			validation.In(validIconPositions...).Error("Icon position must be one of: left, right, top"),
		),
		validation.Field(&r.IconColor, HexColor),
		validation.Field(&r.Cover,
			validation.RuneLength(0, maxURLLength).Error(fmt.Sprintf("Cover must be less than %d characters", maxURLLength)),
			Cover,
		),
		validation.Field(&r.ReadTime,
			IntBetween(MinReadTime, MaxReadTime, fmt.Sprintf("Read time must be between %d and %d minutes", MinReadTime, MaxReadTime)),
		),
	)
}

// RejectArticleRequest is the body of a reviewer rejection.
type RejectArticleRequest struct {
	Feedback *string `json:"feedback"`
}

// ValidateReject normalizes and validates a rejection request.
func (v *Validator) ValidateReject(r *RejectArticleRequest) error {
	adminFeedback.Normalize(&r.Feedback)
	return validation.ValidateStruct(r,
		validation.Field(&r.Feedback, adminFeedback.Rules()...),
	)
}

// ListArticlesQuery carries the raw query parameters of an article listing.
type ListArticlesQuery struct {
	Page   interface{}
	Limit  interface{}
	Status string
}

// ParseListArticles validates a listing query.
func (v *Validator) ParseListArticles(q ListArticlesQuery) (domain.Page, []domain.ArticleStatus, error) {
	page, err := ParsePagination(q.Page, q.Limit)
	if err != nil {
		return domain.Page{}, nil, err
	}
	if q.Status == "" {
		return page, nil, nil
	}
	status, ok := domain.ParseArticleStatus(q.Status)
	if !ok {
		return domain.Page{}, nil, validation.Errors{
			"status": validation.NewError("validation_invalid_status", "Invalid article status"),
		}
	}
	return page, []domain.ArticleStatus{status}, nil
}

func trimOptional(value **string) {
	if *value == nil {
		return
	}
	n := NormalizeText(**value, false)
	if n == "" {
		*value = nil
		return
	}
	*value = &n
}
