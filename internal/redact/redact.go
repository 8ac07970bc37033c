// Package redact scrubs object-store credentials out of strings before they
// reach the event log or the terminal.
package redact

import (
	"regexp"
	"strings"
)

var sensitivePatterns = []*regexp.Regexp{
	// AWS style keys, as used by S3 compatible stores
	regexp.MustCompile(`(?i)(aws_access_key_id|aws_secret_access_key|aws_session_token)\s*[=:]\s*['"]?[A-Za-z0-9/+=]{8,}['"]?`),
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),

	// TMF_S3_ACCESS_KEY=..., TMF_S3_SECRET_KEY=...
	regexp.MustCompile(`(?i)tmf_s3_(access|secret)_key\s*[=:]\s*['"]?[^\s'"]+['"]?`),

	// Signed request parameters, e.g. in presigned URLs echoed by error messages
	regexp.MustCompile(`(?i)(X-Amz-Credential|X-Amz-Signature|X-Amz-Security-Token)=[^&\s"]+`),
	regexp.MustCompile(`(?i)Credential=[A-Za-z0-9]{16,}/[^,\s]+`),
	regexp.MustCompile(`(?i)Signature=[0-9a-f]{64}`),

	// Generic API keys
	regexp.MustCompile(`(?i)(api_key|apikey|api-key|secret_key|secretkey|secret-key|access_key|accesskey|access_token|auth_token)\s*[=:]\s*['"]?[A-Za-z0-9/+_-]{16,}['"]?`),

	// Private keys
	regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY-----`),

	// Bearer tokens
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_-]{20,}`),

	// Basic auth in endpoint URLs
	regexp.MustCompile(`https?://[^:/\s]+:[^@\s]+@`),

	regexp.MustCompile(`(?i)(password|passwd|pwd|secret)\s*[=:]\s*['"]?[^\s'"]{8,}['"]?`),
}

const redactedPlaceholder = "[REDACTED]"

func Redact(input string) string {
	result := input
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, redactedPlaceholder)
	}
	return result
}

var sensitiveEnvNames = []string{
	"TMF_S3_ACCESS_KEY",
	"TMF_S3_SECRET_KEY",
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"AWS_SESSION_TOKEN",
	"MINIO_ROOT_USER",
	"MINIO_ROOT_PASSWORD",
	"SECRET_KEY",
	"ACCESS_KEY",
	"PASSWORD",
}

// IsSensitiveEnv reports whether an environment variable holds a credential.
func IsSensitiveEnv(name string) bool {
	name = strings.ToUpper(name)
	for _, sensitive := range sensitiveEnvNames {
		if strings.Contains(name, sensitive) {
			return true
		}
	}
	return false
}

// RedactEnvVars masks the values of credential variables in NAME=value pairs.
func RedactEnvVars(envVars []string) []string {
	result := make([]string, 0, len(envVars))
	for _, env := range envVars {
		name, _, ok := strings.Cut(env, "=")
		if ok && IsSensitiveEnv(name) {
			result = append(result, name+"="+redactedPlaceholder)
			continue
		}
		result = append(result, env)
	}
	return result
}

func RedactArgs(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		result[i] = Redact(arg)
	}
	return result
}
