// Package events turns normalized webhook deliveries into typed domain events
// and hands them to a pluggable emitter.
package events

import (
	"encoding/json"

	"github.com/bmamadou/wacloud/webhook"
)

// Event is implemented by every typed webhook event. The marker method keeps
// the set closed to this package.
type Event interface {
	event()
}

// MessageEvent carries the fields shared by all inbound message events.
type MessageEvent struct {
	PhoneNumberID string
	MessageID     string
	Timestamp     string
	FromNumber    string
	Context       *webhook.MessageContext
}

func (MessageEvent) event() {}

// StatusEvent carries the fields shared by all message status events.
type StatusEvent struct {
	PhoneNumberID string
	MessageID     string
	Timestamp     string
	RecipientID   string
	Conversation  json.RawMessage
	Pricing       json.RawMessage
}

func (StatusEvent) event() {}

// TextReceived fires for inbound text messages.
type TextReceived struct {
	MessageEvent
	Body string
}

// ImageReceived fires for inbound images.
type ImageReceived struct {
	MessageEvent
	ImageID  string
	MimeType string
	Sha256   string
	Caption  string
}

// VideoReceived fires for inbound videos.
type VideoReceived struct {
	MessageEvent
	VideoID  string
	MimeType string
	Sha256   string
	Caption  string
}

// AudioReceived fires for inbound audio, including voice notes.
type AudioReceived struct {
	MessageEvent
	AudioID  string
	MimeType string
	Sha256   string
	Voice    bool
}

// DocumentReceived fires for inbound documents.
type DocumentReceived struct {
	MessageEvent
	DocumentID string
	MimeType   string
	Sha256     string
	Filename   string
	Caption    string
}

// StickerReceived fires for inbound stickers.
type StickerReceived struct {
	MessageEvent
	StickerID string
	MimeType  string
	Animated  bool
}

// LocationReceived fires for shared locations.
type LocationReceived struct {
	MessageEvent
	Latitude  float64
	Longitude float64
	Name      string
	Address   string
}

// ContactsReceived fires for shared contact cards. The cards are kept as raw
// JSON since their shape is provider-defined.
type ContactsReceived struct {
	MessageEvent
	Contacts []json.RawMessage
}

// ReactionReceived fires for emoji reactions.
type ReactionReceived struct {
	MessageEvent
	Emoji            string
	ReactedMessageID string
}

// ButtonReply fires when a user taps an interactive button.
type ButtonReply struct {
	MessageEvent
	ButtonID    string
	ButtonTitle string
}

// ListReply fires when a user selects an interactive list row.
type ListReply struct {
	MessageEvent
	ListID          string
	ListTitle       string
	ListDescription string
}

// FlowResponse fires when a user completes a WhatsApp Flow.
type FlowResponse struct {
	MessageEvent
	Response  json.RawMessage
	FlowToken string
}

// OrderReceived fires for catalog orders.
type OrderReceived struct {
	MessageEvent
	CatalogID    string
	ProductItems []webhook.ProductItem
	OrderText    string
}

// UnknownMessageReceived fires for any message kind not explicitly mapped,
// preserving the provider's type string and the raw node.
type UnknownMessageReceived struct {
	MessageEvent
	RawType string
	RawData json.RawMessage
}

// MessageSent fires when a sent message is accepted by the provider.
type MessageSent struct {
	StatusEvent
}

// MessageDelivered fires when a message reaches the recipient's device.
type MessageDelivered struct {
	StatusEvent
}

// MessageRead fires when the recipient reads a message.
type MessageRead struct {
	StatusEvent
}

// MessageFailed fires when delivery fails, carrying the provider's error
// descriptors.
type MessageFailed struct {
	StatusEvent
	Errors []webhook.ErrorDetail
}
