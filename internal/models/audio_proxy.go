package models

// AudioProxyResponse is returned by the audio proxy stub
type AudioProxyResponse struct {
	Message     string `json:"message"`
	OriginalURL string `json:"originalUrl"`
	Note        string `json:"note"`
}
