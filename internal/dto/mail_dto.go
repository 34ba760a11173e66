package dto

import "vibe-notes-be/internal/entity"

type EmailRecipient struct {
	Email string
	Role  entity.RecipientRole
}

type NoteEmailRequest struct {
	Recipients  []EmailRecipient
	Title       string
	Body        string
	SenderEmail string
	SenderName  string
}

type NoteEmailResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	DeliveryId string `json:"delivery_id,omitempty"`
}

type TestEmailRequest struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type TestEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	EmailId string `json:"emailId,omitempty"`
}
