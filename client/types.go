package client

import "encoding/json"

// SendMessageResponse mirrors the successful response from the messages edge.
type SendMessageResponse struct {
	MessagingProduct string        `json:"messaging_product"`
	Contacts         []SentContact `json:"contacts"`
	Messages         []SentMessage `json:"messages"`
}

// SentContact identifies the resolved recipient.
type SentContact struct {
	Input string `json:"input"`
	WaID  string `json:"wa_id"`
}

// SentMessage carries the provider-assigned message ID.
type SentMessage struct {
	ID            string `json:"id"`
	MessageStatus string `json:"message_status,omitempty"`
}

// SuccessResponse is the generic {"success": true} acknowledgement.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Paging holds cursor-based pagination info on list responses.
type Paging struct {
	Cursors  PagingCursors `json:"cursors"`
	Next     string        `json:"next,omitempty"`
	Previous string        `json:"previous,omitempty"`
}

// PagingCursors are the opaque before/after cursors.
type PagingCursors struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// MediaUploadResponse carries the ID of freshly uploaded media.
type MediaUploadResponse struct {
	ID string `json:"id"`
}

// MediaMetadata describes stored media, including its short-lived CDN URL.
type MediaMetadata struct {
	MessagingProduct string `json:"messaging_product"`
	URL              string `json:"url"`
	MimeType         string `json:"mime_type"`
	Sha256           string `json:"sha256"`
	FileSize         string `json:"file_size"`
	ID               string `json:"id"`
}

// MessageTemplate describes one approved or pending template.
type MessageTemplate struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Category             string            `json:"category,omitempty"`
	Language             string            `json:"language,omitempty"`
	Status               string            `json:"status,omitempty"`
	Components           []json.RawMessage `json:"components,omitempty"`
	QualityScoreCategory string            `json:"quality_score_category,omitempty"`
	LastUpdatedTime      string            `json:"last_updated_time,omitempty"`
}

// TemplateListResponse is the paged template listing.
type TemplateListResponse struct {
	Data   []MessageTemplate `json:"data"`
	Paging Paging            `json:"paging"`
}

// TemplateCreateResponse acknowledges template creation.
type TemplateCreateResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status,omitempty"`
	Category string `json:"category,omitempty"`
}

// BusinessProfile is the public profile attached to a phone number.
type BusinessProfile struct {
	About             string   `json:"about,omitempty"`
	Address           string   `json:"address,omitempty"`
	Description       string   `json:"description,omitempty"`
	Email             string   `json:"email,omitempty"`
	ProfilePictureURL string   `json:"profile_picture_url,omitempty"`
	Websites          []string `json:"websites,omitempty"`
	Vertical          string   `json:"vertical,omitempty"`
	MessagingProduct  string   `json:"messaging_product,omitempty"`
}

// BusinessProfileResponse wraps the profile listing.
type BusinessProfileResponse struct {
	Data []BusinessProfile `json:"data"`
}

// FlowCreateResponse acknowledges flow creation.
type FlowCreateResponse struct {
	ID string `json:"id"`
}

// FlowSummary is one flow in a listing.
type FlowSummary struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Status     string   `json:"status,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// FlowListResponse is the paged flow listing.
type FlowListResponse struct {
	Data   []FlowSummary `json:"data"`
	Paging Paging        `json:"paging"`
}

// FlowPreviewResponse carries the preview URL for a flow.
type FlowPreviewResponse struct {
	ID      string       `json:"id"`
	Preview *FlowPreview `json:"preview,omitempty"`
}

// FlowPreview is the preview link plus its expiry.
type FlowPreview struct {
	PreviewURL string `json:"preview_url"`
	ExpiresAt  string `json:"expires_at"`
}
