package validator

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type benchProfile struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

func BenchmarkEmailRules(b *testing.B) {
	name := "Test User"
	p := &benchProfile{Email: "User@Example.com", Name: &name}
	for i := 0; i < b.N; i++ {
		p.Email = NormalizeEmail(p.Email)
		_ = validation.ValidateStruct(p,
			validation.Field(&p.Email, EmailRules()...),
			validation.Field(&p.Name, profileName.Rules()...),
		)
	}
}

func BenchmarkTextSchemaParse(b *testing.B) {
	schema := Text("Excerpt", MaxExcerptLength, TextOptions{AllowNewlines: true})
	in := strings.Repeat("Remediate the injection flaw.\n", 15)
	for i := 0; i < b.N; i++ {
		_, _ = schema.Parse(&in)
	}
}

func BenchmarkIsCUID(b *testing.B) {
	id := "cjld2cjxh0000qzrmn831i7rn"
	for i := 0; i < b.N; i++ {
		_ = IsCUID(id)
	}
}
