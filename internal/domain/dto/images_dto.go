package dto

type UploadImageResponse struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type SocialImageDTO struct {
	Format string `json:"format"`
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`
}

type SocialImageResponse struct {
	PublicID string           `json:"public_id"`
	Formats  []SocialImageDTO `json:"formats"`
}
