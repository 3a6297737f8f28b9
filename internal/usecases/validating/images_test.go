package validating

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
)

// timeoutError simula uma falha de rede com estouro de tempo
type timeoutError struct{}

func (timeoutError) Error() string   { return "request timed out" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestValidateCampaignImages(t *testing.T) {
	tests := []struct {
		name     string
		images   domain.CampaignImages
		fetch    func(url string) ([]byte, string, error)
		expected []string
	}{
		{
			name:     "Sem URLs não há o que validar",
			images:   domain.CampaignImages{},
			fetch:    rejectAllFetches(t),
			expected: []string{},
		},
		{
			name:     "URL vazia é ignorada",
			images:   domain.CampaignImages{SquareURL: stringPtr("")},
			fetch:    rejectAllFetches(t),
			expected: []string{},
		},
		{
			name: "Imagens dentro das exigências passam",
			images: domain.CampaignImages{
				LandscapeURL: stringPtr("https://cdn.acme.com/landscape.png"),
				SquareURL:    stringPtr("https://cdn.acme.com/square.png"),
				LogoURL:      stringPtr("https://cdn.acme.com/logo.png"),
			},
			fetch: fetchByURL(t, map[string]fetchResponse{
				"https://cdn.acme.com/landscape.png": {data: pngImage(t, 600, 314), contentType: "image/png"},
				"https://cdn.acme.com/square.png":    {data: pngImage(t, 300, 300), contentType: "image/png"},
				"https://cdn.acme.com/logo.png":      {data: pngImage(t, 128, 128), contentType: "image/png"},
			}),
			expected: []string{},
		},
		{
			name: "Largura abaixo do mínimo",
			images: domain.CampaignImages{
				LandscapeURL: stringPtr("https://cdn.acme.com/small.png"),
			},
			fetch: fetchByURL(t, map[string]fetchResponse{
				"https://cdn.acme.com/small.png": {data: pngImage(t, 500, 262), contentType: "image/png"},
			}),
			expected: []string{
				"Landscape: Image width 500px is below minimum required 600px for Landscape marketing image (1.91:1)",
			},
		},
		{
			name: "Altura abaixo do mínimo",
			images: domain.CampaignImages{
				LandscapeURL: stringPtr("https://cdn.acme.com/short.png"),
			},
			fetch: fetchByURL(t, map[string]fetchResponse{
				"https://cdn.acme.com/short.png": {data: pngImage(t, 600, 313), contentType: "image/png"},
			}),
			expected: []string{
				"Landscape: Image height 313px is below minimum required 314px for Landscape marketing image (1.91:1)",
			},
		},
		{
			name: "Proporção fora da tolerância",
			images: domain.CampaignImages{
				SquareURL: stringPtr("https://cdn.acme.com/wide.png"),
			},
			fetch: fetchByURL(t, map[string]fetchResponse{
				"https://cdn.acme.com/wide.png": {data: pngImage(t, 600, 314), contentType: "image/png"},
			}),
			expected: []string{
				"Square: Image aspect ratio 1.91 does not match required ratio 1.00 (tolerance: 2%)",
			},
		},
		{
			name: "Formato não suportado",
			images: domain.CampaignImages{
				SquareURL: stringPtr("https://cdn.acme.com/page.html"),
			},
			fetch: fetchByURL(t, map[string]fetchResponse{
				"https://cdn.acme.com/page.html": {data: []byte("<html></html>"), contentType: "text/html"},
			}),
			expected: []string{
				"Square: Unsupported image format. Supported: JPEG, PNG, GIF, WEBP",
			},
		},
		{
			name: "Arquivo acima do limite de 5MB",
			images: domain.CampaignImages{
				LogoURL: stringPtr("https://cdn.acme.com/huge.png"),
			},
			fetch: fetchByURL(t, map[string]fetchResponse{
				"https://cdn.acme.com/huge.png": {data: make([]byte, 6*1024*1024), contentType: "image/png"},
			}),
			expected: []string{
				"Logo: Image file size (6.0MB) exceeds maximum (5.0MB)",
			},
		},
		{
			name: "Falha de download é reportada",
			images: domain.CampaignImages{
				LandscapeURL: stringPtr("https://cdn.acme.com/missing.png"),
			},
			fetch: func(url string) ([]byte, string, error) {
				return nil, "", errors.New("connection refused")
			},
			expected: []string{
				"Landscape: Failed to download image: connection refused",
			},
		},
		{
			name: "Estouro de tempo tem mensagem própria",
			images: domain.CampaignImages{
				LandscapeURL: stringPtr("https://cdn.acme.com/slow.png"),
			},
			fetch: func(url string) ([]byte, string, error) {
				return nil, "", timeoutError{}
			},
			expected: []string{
				"Landscape: Image download timed out",
			},
		},
		{
			name: "Bytes ilegíveis não revelam dimensões",
			images: domain.CampaignImages{
				SquareURL: stringPtr("https://cdn.acme.com/corrupt.png"),
			},
			fetch: fetchByURL(t, map[string]fetchResponse{
				"https://cdn.acme.com/corrupt.png": {data: []byte("not an image"), contentType: "image/png"},
			}),
			expected: []string{
				"Square: Unable to determine image dimensions",
			},
		},
		{
			name: "WEBP é aceito como formato mas não expõe dimensões",
			images: domain.CampaignImages{
				SquareURL: stringPtr("https://cdn.acme.com/photo.webp"),
			},
			fetch: fetchByURL(t, map[string]fetchResponse{
				"https://cdn.acme.com/photo.webp": {data: webpHeader(), contentType: "image/webp"},
			}),
			expected: []string{
				"Square: Unable to determine image dimensions",
			},
		},
		{
			name: "Erros de cada encaixe são prefixados na ordem dos encaixes",
			images: domain.CampaignImages{
				LandscapeURL: stringPtr("https://cdn.acme.com/landscape.png"),
				SquareURL:    stringPtr("https://cdn.acme.com/wide.png"),
				LogoURL:      stringPtr("https://cdn.acme.com/tiny.png"),
			},
			fetch: fetchByURL(t, map[string]fetchResponse{
				"https://cdn.acme.com/landscape.png": {data: pngImage(t, 600, 314), contentType: "image/png"},
				"https://cdn.acme.com/wide.png":      {data: pngImage(t, 600, 314), contentType: "image/png"},
				"https://cdn.acme.com/tiny.png":      {data: pngImage(t, 100, 100), contentType: "image/png"},
			}),
			expected: []string{
				"Square: Image aspect ratio 1.91 does not match required ratio 1.00 (tolerance: 2%)",
				"Logo: Image width 100px is below minimum required 128px for Square logo (1:1)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := &service{catalog: DefaultCatalog(), fetch: tt.fetch}

			assert.Equal(t, tt.expected, validator.ValidateCampaignImages(tt.images))
		})
	}
}

type fetchResponse struct {
	data        []byte
	contentType string
}

func fetchByURL(t *testing.T, responses map[string]fetchResponse) func(url string) ([]byte, string, error) {
	return func(url string) ([]byte, string, error) {
		response, ok := responses[url]
		if !ok {
			t.Fatalf("download inesperado: %s", url)
		}

		return response.data, response.contentType, nil
	}
}

func rejectAllFetches(t *testing.T) func(url string) ([]byte, string, error) {
	return func(url string) ([]byte, string, error) {
		t.Fatalf("nenhum download deveria acontecer, recebido: %s", url)
		return nil, "", nil
	}
}

// pngImage gera um PNG real em memória com as dimensões pedidas
func pngImage(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("erro ao gerar PNG de teste: %v", err)
	}

	return buf.Bytes()
}

// webpHeader devolve apenas o cabeçalho RIFF/WEBP, suficiente para a detecção de contêiner
func webpHeader() []byte {
	header := make([]byte, 0, 24)
	header = append(header, []byte("RIFF")...)
	header = append(header, []byte{0x10, 0x00, 0x00, 0x00}...)
	header = append(header, []byte("WEBP")...)
	header = append(header, []byte("VP8 ")...)

	return header
}
