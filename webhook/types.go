package webhook

import "encoding/json"

// Payload mirrors the structure sent by Meta's WhatsApp Cloud API webhook callbacks.
type Payload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry represents one entry payload within the webhook body.
type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

// Change captures the actual notification contents.
type Change struct {
	Value Value  `json:"value"`
	Field string `json:"field"`
}

// Value contains message metadata, contacts and message events sent by users.
// Messages are kept as raw JSON so the extractor can preserve unrecognized
// shapes byte-for-byte.
type Value struct {
	MessagingProduct string            `json:"messaging_product"`
	Metadata         Metadata          `json:"metadata"`
	Contacts         []json.RawMessage `json:"contacts"`
	Messages         []json.RawMessage `json:"messages"`
	Statuses         []StatusUpdate    `json:"statuses"`
	Errors           []ErrorDetail     `json:"errors"`

	// raw keeps the undecoded value object so non-message change fields can be
	// carried through normalization verbatim.
	raw json.RawMessage
}

// UnmarshalJSON decodes the value object and retains the original bytes.
func (v *Value) UnmarshalJSON(data []byte) error {
	type alias Value
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*v = Value(a)
	v.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Metadata contains WhatsApp phone identifiers for the business account.
type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

// StatusUpdate represents a delivery/read receipt coming from WhatsApp.
type StatusUpdate struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Timestamp    string          `json:"timestamp"`
	RecipientID  string          `json:"recipient_id"`
	Conversation json.RawMessage `json:"conversation,omitempty"`
	Pricing      json.RawMessage `json:"pricing,omitempty"`
	Errors       []ErrorDetail   `json:"errors,omitempty"`
}

// ErrorDetail exposes error descriptors attached to failed statuses and
// webhook-level error notifications.
type ErrorDetail struct {
	Code      int        `json:"code"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	ErrorData *ErrorData `json:"error_data,omitempty"`
}

// ErrorData carries the free-form detail string Meta nests under error_data.
type ErrorData struct {
	Details string `json:"details"`
}

// MessageKind discriminates the supported inbound message shapes.
type MessageKind string

const (
	KindText        MessageKind = "text"
	KindImage       MessageKind = "image"
	KindVideo       MessageKind = "video"
	KindAudio       MessageKind = "audio"
	KindDocument    MessageKind = "document"
	KindSticker     MessageKind = "sticker"
	KindLocation    MessageKind = "location"
	KindContacts    MessageKind = "contacts"
	KindReaction    MessageKind = "reaction"
	KindInteractive MessageKind = "interactive"
	KindOrder       MessageKind = "order"
	KindUnknown     MessageKind = "unknown"
)

// Message is the normalized view of one inbound message. Exactly one kind tag
// is set; the field matching Kind is populated and the raw node is always kept
// so nothing the provider sent is lost.
type Message struct {
	Kind      MessageKind
	ID        string
	From      string
	Timestamp string
	Context   *MessageContext

	Text        *TextBody
	Image       *MediaAttachment
	Video       *MediaAttachment
	Audio       *AudioAttachment
	Document    *DocumentAttachment
	Sticker     *StickerAttachment
	Location    *LocationPayload
	Contacts    []json.RawMessage
	Reaction    *ReactionPayload
	Interactive *InteractivePayload
	Order       *OrderPayload

	// RawType holds the provider's original type string. For known kinds it
	// equals string(Kind); for unknown kinds it preserves whatever arrived.
	RawType string
	// Raw is the original message node verbatim.
	Raw json.RawMessage
}

// MessageContext is the reply-to reference attached to context messages.
type MessageContext struct {
	From            string          `json:"from,omitempty"`
	ID              string          `json:"id,omitempty"`
	ReferredProduct json.RawMessage `json:"referred_product,omitempty"`
}

// TextBody contains a text message body.
type TextBody struct {
	Body string `json:"body"`
}

// MediaAttachment covers image and video payloads.
type MediaAttachment struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Sha256   string `json:"sha256"`
	Caption  string `json:"caption,omitempty"`
}

// AudioAttachment covers audio payloads, including voice notes.
type AudioAttachment struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Sha256   string `json:"sha256"`
	Voice    bool   `json:"voice"`
}

// DocumentAttachment covers document payloads.
type DocumentAttachment struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Sha256   string `json:"sha256"`
	Filename string `json:"filename,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

// StickerAttachment covers sticker payloads.
type StickerAttachment struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Animated bool   `json:"animated"`
}

// LocationPayload carries a shared location.
type LocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// ReactionPayload carries an emoji reaction to an earlier message.
type ReactionPayload struct {
	Emoji     string `json:"emoji"`
	MessageID string `json:"message_id"`
}

// InteractivePayload holds interactive replies; Type selects which of the
// nested reply shapes is populated.
type InteractivePayload struct {
	Type        string        `json:"type"`
	ButtonReply *ReplyRef     `json:"button_reply,omitempty"`
	ListReply   *ListReplyRef `json:"list_reply,omitempty"`
	NFMReply    *NFMReply     `json:"nfm_reply,omitempty"`
}

// ReplyRef models a pressed button payload.
type ReplyRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ListReplyRef models a selected list item payload.
type ListReplyRef struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// NFMReply is the flow completion payload. ResponseJSON arrives as a JSON
// string that the events layer decodes.
type NFMReply struct {
	Name         string `json:"name,omitempty"`
	Body         string `json:"body,omitempty"`
	ResponseJSON string `json:"response_json"`
	FlowToken    string `json:"flow_token,omitempty"`
}

// OrderPayload carries a catalog order placed by the user.
type OrderPayload struct {
	CatalogID    string        `json:"catalog_id"`
	Text         string        `json:"text,omitempty"`
	ProductItems []ProductItem `json:"product_items"`
}

// ProductItem is one line of a catalog order.
type ProductItem struct {
	ProductRetailerID string  `json:"product_retailer_id"`
	Quantity          int     `json:"quantity"`
	ItemPrice         float64 `json:"item_price"`
	Currency          string  `json:"currency"`
}

// Normalized is the flattened view of one webhook delivery: every message,
// status and contact across all entry/change blocks, in arrival order.
type Normalized struct {
	Object             string
	PhoneNumberID      string
	DisplayPhoneNumber string
	Messages           []Message
	Statuses           []StatusUpdate
	Contacts           []json.RawMessage
	// Raw collects change values whose field is not "messages", keyed by the
	// change field name.
	Raw map[string][]json.RawMessage
}
