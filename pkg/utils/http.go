package utils

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Downloads de assets (imagens) não podem segurar a publicação indefinidamente
var httpClient = &http.Client{Timeout: 30 * time.Second}

// MakeRequestWithContentType baixa o corpo e devolve o Content-Type da
// resposta, necessário para inspecionar imagens baixadas por URL
func MakeRequestWithContentType(url string) ([]byte, string, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return data, resp.Header.Get("Content-Type"), nil
}
