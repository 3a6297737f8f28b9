package utils

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrUnknownImageFormat indica bytes que não correspondem a nenhum formato suportado
var ErrUnknownImageFormat = errors.New("unknown image format")

// ImageInfo descreve uma imagem a partir do cabeçalho do arquivo, sem decodificar os pixels
type ImageInfo struct {
	Format    string
	Width     int
	Height    int
	SizeBytes int
}

// InspectImage lê formato e dimensões do cabeçalho da imagem. Para WEBP as
// dimensões ficam zeradas porque só o contêiner é reconhecido.
func InspectImage(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err == nil {
		return &ImageInfo{
			Format:    format,
			Width:     cfg.Width,
			Height:    cfg.Height,
			SizeBytes: len(data),
		}, nil
	}

	if isWebp(data) {
		return &ImageInfo{
			Format:    "webp",
			SizeBytes: len(data),
		}, nil
	}

	return nil, ErrUnknownImageFormat
}

func isWebp(data []byte) bool {
	return len(data) >= 12 &&
		bytes.Equal(data[0:4], []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WEBP"))
}
