package apiErrors

import "regexp"

// SanitizedMessage substitui mensagens que poderiam vazar segredos
const SanitizedMessage = "An internal error occurred"

// Padrões de conteúdo sensível que nunca podem chegar ao cliente
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)password\s*[=:]`),
	regexp.MustCompile(`(?i)secret\s*[=:]`),
	regexp.MustCompile(`(?i)token\s*[=:]`),
	regexp.MustCompile(`(?i)api_key\s*[=:]`),
	regexp.MustCompile(`(?i)credential\s*[=:]`),
	regexp.MustCompile(`(?i)connection.*string\s*[=:]`),
	regexp.MustCompile(`(?i)postgresql://[^\s]+`),
	regexp.MustCompile(`(?i)mysql://[^\s]+`),
	regexp.MustCompile(`(?i)redis://[^\s]+`),
}

// Sanitize devolve a mensagem intacta quando ela é segura para exposição
// externa. Qualquer indício de segredo descarta a mensagem inteira.
func Sanitize(message string) string {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(message) {
			return SanitizedMessage
		}
	}

	return message
}
