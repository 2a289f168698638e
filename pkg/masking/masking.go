// Package masking scrubs credentials from sandbox output and log chunks
// before they are persisted or streamed. Generated code runs with
// workspace-provided environment, so anything it prints may embed a
// secret; output crossing the persistence or streaming boundary passes
// through here first.
package masking

import (
	"log/slog"
	"regexp"
)

// Pattern is one named redaction rule.
type Pattern struct {
	Name        string
	Pattern     string
	Replacement string
}

// Builtin patterns cover the credential shapes generated code most often
// leaks: provider API keys, bearer tokens, URL userinfo, private key
// blocks, and KEY=VALUE env dumps.
func Builtin() []Pattern {
	return []Pattern{
		{
			Name:        "aws_access_key",
			Pattern:     `(?:AKIA|ASIA)[0-9A-Z]{16}`,
			Replacement: "[MASKED_AWS_KEY]",
		},
		{
			Name:        "github_token",
			Pattern:     `gh[pousr]_[A-Za-z0-9]{36,255}`,
			Replacement: "[MASKED_GITHUB_TOKEN]",
		},
		{
			Name:        "bearer_token",
			Pattern:     `(?i)(bearer\s+)[A-Za-z0-9\-._~+/]{20,}=*`,
			Replacement: "${1}[MASKED_TOKEN]",
		},
		{
			Name:        "url_credentials",
			Pattern:     `(?i)([a-z][a-z0-9+.-]*://[^:/\s]+:)[^@/\s]+@`,
			Replacement: "${1}[MASKED]@",
		},
		{
			Name:        "private_key_block",
			Pattern:     `-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`,
			Replacement: "[MASKED_PRIVATE_KEY]",
		},
		{
			Name:        "env_secret",
			Pattern:     `(?im)^([A-Z0-9_]*(?:SECRET|TOKEN|PASSWORD|API_KEY|ACCESS_KEY)[A-Z0-9_]*\s*=\s*)\S+`,
			Replacement: "${1}[MASKED]",
		},
		{
			Name:        "json_secret_field",
			Pattern:     `(?i)("(?:[a-z0-9_]*(?:secret|token|password|api_key))"\s*:\s*")[^"]+(")`,
			Replacement: "${1}[MASKED]${2}",
		},
	}
}

type compiledPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Masker applies a compiled pattern set. Stateless after construction and
// safe for concurrent use.
type Masker struct {
	patterns []compiledPattern
}

// NewMasker compiles the built-in patterns plus any extras. Patterns that
// fail to compile are logged and skipped; masking must never take the
// pipeline down.
func NewMasker(extra ...Pattern) *Masker {
	m := &Masker{}
	for _, p := range append(Builtin(), extra...) {
		regex, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Skipping invalid masking pattern", "pattern", p.Name, "error", err)
			continue
		}
		m.patterns = append(m.patterns, compiledPattern{
			name:        p.Name,
			regex:       regex,
			replacement: p.Replacement,
		})
	}
	return m
}

// Mask scrubs every pattern from the text.
func (m *Masker) Mask(text string) string {
	if text == "" {
		return text
	}
	for _, p := range m.patterns {
		text = p.regex.ReplaceAllString(text, p.replacement)
	}
	return text
}

// MaskBytes scrubs a raw log chunk.
func (m *Masker) MaskBytes(chunk []byte) []byte {
	if len(chunk) == 0 {
		return chunk
	}
	return []byte(m.Mask(string(chunk)))
}
