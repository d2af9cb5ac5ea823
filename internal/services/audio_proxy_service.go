package services

import "github.com/rafreid/palefo-mock-api/internal/models"

type AudioProxyService struct{}

func NewAudioProxyService() *AudioProxyService {
	return &AudioProxyService{}
}

// Describe echoes the requested URL. Nothing is fetched.
func (s *AudioProxyService) Describe(url string) (models.AudioProxyResponse, error) {
	if url == "" {
		return models.AudioProxyResponse{}, validationErrorf("url is required")
	}

	return models.AudioProxyResponse{
		Message:     "Audio proxy endpoint",
		OriginalURL: url,
		Note:        "In production, this would stream the audio file",
	}, nil
}
