package apiErrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name      string
		message   string
		sanitized bool
	}{
		{
			name:    "Mensagem de validação passa intacta",
			message: "Campaign name is required",
		},
		{
			name:    "Mensagem da API do Google Ads passa intacta",
			message: "API rate limit exceeded. Please try again later",
		},
		{
			name:    "Palavra sensível sem atribuição não é segredo",
			message: "Password reset email sent",
		},
		{
			name:      "Senha em par chave-valor",
			message:   "connection failed: password=hunter2",
			sanitized: true,
		},
		{
			name:      "Senha em caixa alta com dois pontos",
			message:   "PASSWORD: hunter2",
			sanitized: true,
		},
		{
			name:      "Secret em par chave-valor",
			message:   "invalid client secret=abc123",
			sanitized: true,
		},
		{
			name:      "Token em par chave-valor",
			message:   "auth failed, token: eyJhbGciOiJIUzI1NiJ9",
			sanitized: true,
		},
		{
			name:      "API key em par chave-valor",
			message:   "missing api_key=xyz in request",
			sanitized: true,
		},
		{
			name:      "Credential com espaço antes do igual",
			message:   "credential = admin",
			sanitized: true,
		},
		{
			name:      "Connection string nomeada",
			message:   "Connection String = Server=db;User=sa",
			sanitized: true,
		},
		{
			name:      "DSN do PostgreSQL",
			message:   "dial error: postgresql://admin:hunter2@db:5432/ads?sslmode=disable",
			sanitized: true,
		},
		{
			name:      "DSN do MySQL",
			message:   "mysql://root:root@db:3306/campaigns unreachable",
			sanitized: true,
		},
		{
			name:      "URL do Redis",
			message:   "cannot connect to redis://:s3cret@cache:6379/0",
			sanitized: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Sanitize(tc.message)

			if tc.sanitized {
				assert.Equal(t, SanitizedMessage, result)
				return
			}

			assert.Equal(t, tc.message, result)
		})
	}
}
