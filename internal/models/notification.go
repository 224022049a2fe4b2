package models

type EmailMessage struct {
	To          string `json:"to" validate:"required,email"`
	ToName      string `json:"to_name,omitempty"`
	Subject     string `json:"subject" validate:"required"`
	Content     string `json:"content" validate:"required"`
	HTMLContent string `json:"html_content,omitempty"`
}
