package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"remediation-portal/internal/domain"
)

const (
	// DefaultPage is used when no page is requested.
	DefaultPage = 1
	// DefaultLimit is used when no limit is requested.
	DefaultLimit = 20
	// MaxLimit is the largest accepted page size.
	MaxLimit = 100

	maxEmailLength = 254
	maxPhoneLength = 30
	maxURLLength   = 2048
)

var (
	cuidRegex      = regexp.MustCompile(`^c[a-z0-9]{24}$`)
	phoneRegex     = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
	gradientRegex  = regexp.MustCompile(`^gradient-[a-z0-9]+(-[a-z0-9]+)*$`)
	hexColorRegex  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	iconNameRegex  = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	errInvalidCUID = validation.NewError("validation_invalid_id", "Invalid ID format")
)

// CUID matches collision-resistant ids: "c" followed by 24 lowercase alphanumerics.
var CUID = validation.Match(cuidRegex).ErrorObject(errInvalidCUID)

// IsCUID reports whether s is a well-formed CUID.
func IsCUID(s string) bool {
	return cuidRegex.MatchString(s)
}

// ValidateID validates a required CUID such as a path parameter.
func ValidateID(id string) error {
	return validation.Validate(id,
		validation.Required.ErrorObject(errInvalidCUID),
		CUID,
	)
}

// ParsePagination coerces raw page and limit values into a domain.Page.
// nil means absent and takes the default. Strings and numbers are accepted;
// anything non-integral or out of range is rejected rather than clamped.
func ParsePagination(rawPage, rawLimit interface{}) (domain.Page, error) {
	page, pageErr := coerceInt("page", rawPage, DefaultPage)
	if pageErr == nil && page < 1 {
		pageErr = validation.NewError("validation_page_range", "page must be a positive integer")
	}

	limit, limitErr := coerceInt("limit", rawLimit, DefaultLimit)
	if limitErr == nil && (limit < 1 || limit > MaxLimit) {
		limitErr = validation.NewError("validation_limit_range", fmt.Sprintf("limit must be between 1 and %d", MaxLimit))
	}

	if err := (validation.Errors{"page": pageErr, "limit": limitErr}).Filter(); err != nil {
		return domain.Page{}, err
	}
	return domain.Page{Page: page, Limit: limit}, nil
}

func coerceInt(name string, raw interface{}, def int) (int, error) {
	var f float64
	switch v := raw.(type) {
	case nil:
		return def, nil
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, notANumber(name)
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, notANumber(name)
		}
		f = parsed
	default:
		return 0, notANumber(name)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, notANumber(name)
	}
	if f != math.Trunc(f) {
		return 0, validation.NewError("validation_not_integer", fmt.Sprintf("%s must be an integer", name))
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, validation.NewError("validation_out_of_range", fmt.Sprintf("%s is out of range", name))
	}
	return int(f), nil
}

func notANumber(name string) error {
	return validation.NewError("validation_not_number", fmt.Sprintf("%s must be a number", name))
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EmailRules validates a normalized, required email address.
func EmailRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("Email is required"),
		validation.RuneLength(0, maxEmailLength).Error(fmt.Sprintf("Email must be less than %d characters", maxEmailLength)),
		is.EmailFormat.Error("Invalid email address"),
	}
}

// PhoneRules validates an optional, normalized phone number.
func PhoneRules() []validation.Rule {
	return []validation.Rule{
		validation.RuneLength(0, maxPhoneLength).Error(fmt.Sprintf("Phone must be less than %d characters", maxPhoneLength)),
		validation.Match(phoneRegex).Error("Invalid phone number format"),
	}
}

// HTTPSURL requires an absolute https URL with a host.
func HTTPSURL(label string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := stringOf(value)
		if !ok || s == "" {
			return nil
		}
		if !isHTTPSURL(s) {
			return validation.NewError("validation_https_url", fmt.Sprintf("%s must be a valid HTTPS URL", label))
		}
		return nil
	})
}

func isHTTPSURL(s string) bool {
	if len(s) > maxURLLength {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme == "https" && u.Host != "" && !strings.ContainsAny(s, " <>\"")
}

// Cover accepts a gradient token (gradient-<name>) or an https image URL.
var Cover = validation.By(func(value interface{}) error {
	s, ok := stringOf(value)
	if !ok || s == "" {
		return nil
	}
	if gradientRegex.MatchString(s) || isHTTPSURL(s) {
		return nil
	}
	return validation.NewError("validation_cover", "Cover must be a gradient or an HTTPS image URL")
})

// HexColor validates #RRGGBB colors.
var HexColor = validation.Match(hexColorRegex).Error("Color must be a hex color like #1A2B3C")

// IntBetween validates an optional *int within [min, max]. Unlike validation.Min,
// a zero value is checked rather than treated as empty.
func IntBetween(min, max int, message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		v, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		n, ok := v.(int)
		if !ok {
			return validation.NewError("validation_not_integer", message)
		}
		if n < min || n > max {
			return validation.NewError("validation_out_of_range", message)
		}
		return nil
	})
}

// JSONDocument validates an optional raw JSON document of at most maxBytes.
func JSONDocument(label string, maxBytes int) validation.Rule {
	return validation.By(func(value interface{}) error {
		raw, ok := value.(json.RawMessage)
		if !ok || domain.IsEmptyJSON(raw) {
			return nil
		}
		if len(raw) > maxBytes {
			return validation.NewError("validation_json_too_large", fmt.Sprintf("%s must be less than %d bytes", label, maxBytes))
		}
		if !json.Valid(raw) {
			return validation.NewError("validation_json_invalid", fmt.Sprintf("%s must be valid JSON", label))
		}
		return nil
	})
}
