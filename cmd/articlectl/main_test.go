package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remediation-portal/internal/auth"
	"remediation-portal/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenIssue(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JWT_ISSUER", "portal-test")

	out, err := run(t, "token", "issue", "--user", "cjld2cjxh0000qzrmn831i7rn", "--role", "reviewer", "--ttl", "1h")
	require.NoError(t, err)

	p, err := auth.NewTokenManager(testSecret, "portal-test", 0).Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, domain.Principal{UserID: "cjld2cjxh0000qzrmn831i7rn", Role: domain.RoleReviewer}, p)
}

func TestTokenIssue_Rejected(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	_, err := run(t, "token", "issue", "--user", "user-1")
	assert.ErrorContains(t, err, "Invalid ID format")

	_, err = run(t, "token", "issue", "--user", "cjld2cjxh0000qzrmn831i7rn", "--role", "root")
	assert.ErrorContains(t, err, `unknown role "root"`)

	_, err = run(t, "token", "issue")
	assert.ErrorContains(t, err, `required flag(s) "user" not set`)
}

func TestTokenIssue_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := run(t, "token", "issue", "--user", "cjld2cjxh0000qzrmn831i7rn")
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestUserOptions_Validate(t *testing.T) {
	opts := userOptions{email: "  Ada@Example.COM ", name: " Ada\tLovelace ", role: "Reviewer"}
	require.NoError(t, opts.validate())
	assert.Equal(t, "ada@example.com", opts.email)
	assert.Equal(t, "Ada Lovelace", opts.name)
	assert.Equal(t, "reviewer", opts.role)

	bad := userOptions{email: "not an email", name: "", role: "owner"}
	err := bad.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "role")
}

func TestMigrate_RejectsArguments(t *testing.T) {
	_, err := run(t, "migrate", "up", "extra")
	assert.Error(t, err)
}
