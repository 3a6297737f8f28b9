package gadsdomain

const (
	AssetTypeImage        = "IMAGE"
	AssetTypeYoutubeVideo = "YOUTUBE_VIDEO"

	AssetGroupStatusEnabled = "ENABLED"

	MimeTypeJpeg = "IMAGE_JPEG"
	MimeTypePng  = "IMAGE_PNG"
	MimeTypeGif  = "IMAGE_GIF"

	AssetFieldTypeHeadline             = "HEADLINE"
	AssetFieldTypeLongHeadline         = "LONG_HEADLINE"
	AssetFieldTypeDescription          = "DESCRIPTION"
	AssetFieldTypeBusinessName         = "BUSINESS_NAME"
	AssetFieldTypeMarketingImage       = "MARKETING_IMAGE"
	AssetFieldTypeSquareMarketingImage = "SQUARE_MARKETING_IMAGE"
	AssetFieldTypeLogo                 = "LOGO"
)

// Asset é um ativo reutilizável (texto, imagem ou vídeo do YouTube)
type Asset struct {
	ResourceName      string             `json:"resourceName,omitempty"`
	Name              string             `json:"name,omitempty"`
	Type              string             `json:"type,omitempty"`
	TextAsset         *TextAsset         `json:"textAsset,omitempty"`
	ImageAsset        *ImageAsset        `json:"imageAsset,omitempty"`
	YoutubeVideoAsset *YoutubeVideoAsset `json:"youtubeVideoAsset,omitempty"`
}

type TextAsset struct {
	Text string `json:"text"`
}

// ImageAsset carrega os bytes da imagem; o campo data vai em base64
type ImageAsset struct {
	Data     []byte `json:"data"`
	FileSize int64  `json:"fileSize,string,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

type YoutubeVideoAsset struct {
	YoutubeVideoID string `json:"youtubeVideoId"`
}

// AssetGroup substitui o grupo de anúncios em campanhas Performance Max
type AssetGroup struct {
	ResourceName string   `json:"resourceName,omitempty"`
	Name         string   `json:"name,omitempty"`
	Campaign     string   `json:"campaign,omitempty"`
	Status       string   `json:"status,omitempty"`
	FinalURLs    []string `json:"finalUrls,omitempty"`
}

// AssetGroupAsset vincula um ativo a um asset group com seu papel no criativo
type AssetGroupAsset struct {
	AssetGroup string `json:"assetGroup,omitempty"`
	Asset      string `json:"asset,omitempty"`
	FieldType  string `json:"fieldType,omitempty"`
}
