package validating

import (
	"fmt"
	"math"
	"net"
	"strings"

	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"github.com/vfg2006/campaign-manager-api/pkg/utils"
)

const maxImageFileSize = 5 * 1024 * 1024

// ImageRequirement delimita um encaixe de imagem aceito pelo Google Ads
type ImageRequirement struct {
	Ratio          float64
	RatioTolerance float64
	MinWidth       int
	MinHeight      int
	MaxFileSize    int64
	Description    string
}

var imageRequirements = map[string]ImageRequirement{
	"landscape": {
		Ratio:          1.91,
		RatioTolerance: 0.02,
		MinWidth:       600,
		MinHeight:      314,
		MaxFileSize:    maxImageFileSize,
		Description:    "Landscape marketing image (1.91:1)",
	},
	"square": {
		Ratio:          1.0,
		RatioTolerance: 0.02,
		MinWidth:       300,
		MinHeight:      300,
		MaxFileSize:    maxImageFileSize,
		Description:    "Square marketing image (1:1)",
	},
	"logo": {
		Ratio:          1.0,
		RatioTolerance: 0.02,
		MinWidth:       128,
		MinHeight:      128,
		MaxFileSize:    maxImageFileSize,
		Description:    "Square logo (1:1)",
	},
	"logo_landscape": {
		Ratio: 4.0,
		// Proporção 4:1 recebe tolerância maior
		RatioTolerance: 0.1,
		MinWidth:       512,
		MinHeight:      128,
		MaxFileSize:    maxImageFileSize,
		Description:    "Landscape logo (4:1)",
	},
}

var supportedImageMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

func (s *service) ValidateCampaignImages(images domain.CampaignImages) []string {
	errs := make([]string, 0)

	slots := []struct {
		label     string
		imageType string
		url       *string
	}{
		{"Landscape", "landscape", images.LandscapeURL},
		{"Square", "square", images.SquareURL},
		{"Logo", "logo", images.LogoURL},
	}

	for _, slot := range slots {
		if !hasText(slot.url) {
			continue
		}

		for _, err := range s.validateImageFromURL(*slot.url, slot.imageType) {
			errs = append(errs, fmt.Sprintf("%s: %s", slot.label, err))
		}
	}

	return errs
}

func (s *service) validateImageFromURL(url string, imageType string) []string {
	if url == "" {
		return []string{"Image URL is required"}
	}

	requirements, ok := imageRequirements[imageType]
	if !ok {
		return []string{fmt.Sprintf("Unknown image type: %s", imageType)}
	}

	data, contentType, err := s.fetch(url)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return []string{"Image download timed out"}
		}

		return []string{fmt.Sprintf("Failed to download image: %v", err)}
	}

	if !supportedImageMime(contentType) {
		return []string{"Unsupported image format. Supported: JPEG, PNG, GIF, WEBP"}
	}

	if int64(len(data)) > requirements.MaxFileSize {
		return []string{fmt.Sprintf(
			"Image file size (%.1fMB) exceeds maximum (%.1fMB)",
			float64(len(data))/1024/1024,
			float64(requirements.MaxFileSize)/1024/1024,
		)}
	}

	info, err := utils.InspectImage(data)
	if err != nil || info.Width == 0 || info.Height == 0 {
		return []string{"Unable to determine image dimensions"}
	}

	errs := make([]string, 0)

	if dimErr := dimensionError(info.Width, info.Height, requirements); dimErr != "" {
		errs = append(errs, dimErr)
	}

	if ratioErr := aspectRatioError(info.Width, info.Height, requirements); ratioErr != "" {
		errs = append(errs, ratioErr)
	}

	return errs
}

// dimensionError devolve no máximo um erro; a largura é checada antes da altura
func dimensionError(width, height int, requirements ImageRequirement) string {
	if width < requirements.MinWidth {
		return fmt.Sprintf(
			"Image width %dpx is below minimum required %dpx for %s",
			width, requirements.MinWidth, requirements.Description,
		)
	}

	if height < requirements.MinHeight {
		return fmt.Sprintf(
			"Image height %dpx is below minimum required %dpx for %s",
			height, requirements.MinHeight, requirements.Description,
		)
	}

	return ""
}

func aspectRatioError(width, height int, requirements ImageRequirement) string {
	if width <= 0 || height <= 0 {
		return "Invalid image dimensions"
	}

	actualRatio := float64(width) / float64(height)
	ratioDiff := math.Abs(actualRatio-requirements.Ratio) / requirements.Ratio

	if ratioDiff > requirements.RatioTolerance {
		return fmt.Sprintf(
			"Image aspect ratio %.2f does not match required ratio %.2f (tolerance: %.0f%%)",
			actualRatio, requirements.Ratio, requirements.RatioTolerance*100,
		)
	}

	return ""
}

func supportedImageMime(contentType string) bool {
	contentType = strings.ToLower(contentType)

	for _, mime := range supportedImageMimeTypes {
		if strings.Contains(contentType, mime) {
			return true
		}
	}

	return false
}
