package client

import (
	"context"
	"encoding/json"
	"fmt"
)

const messagingProduct = "whatsapp"

// TextMessage is a plain text send request.
type TextMessage struct {
	PhoneNumberID string
	To            string
	Body          string
	PreviewURL    bool
	ReplyTo       string
}

// MediaMessage sends previously uploaded or linked media. Exactly one of
// MediaID and Link should be set.
type MediaMessage struct {
	PhoneNumberID string
	To            string
	MediaID       string
	Link          string
	Caption       string
	Filename      string
	ReplyTo       string
}

// LocationMessage shares a pin.
type LocationMessage struct {
	PhoneNumberID string
	To            string
	Latitude      float64
	Longitude     float64
	Name          string
	Address       string
	ReplyTo       string
}

// ContactsMessage shares contact cards, passed through verbatim.
type ContactsMessage struct {
	PhoneNumberID string
	To            string
	Contacts      []json.RawMessage
	ReplyTo       string
}

// ReactionMessage reacts to an earlier message. An empty emoji removes the
// reaction.
type ReactionMessage struct {
	PhoneNumberID string
	To            string
	MessageID     string
	Emoji         string
}

// TemplateMessage sends a pre-approved template.
type TemplateMessage struct {
	PhoneNumberID string
	To            string
	Name          string
	Language      string
	Components    []json.RawMessage
	ReplyTo       string
}

// Button is one interactive reply button.
type Button struct {
	ID    string
	Title string
}

// ButtonsMessage sends an interactive message with up to three reply buttons.
type ButtonsMessage struct {
	PhoneNumberID string
	To            string
	BodyText      string
	FooterText    string
	Header        json.RawMessage
	Buttons       []Button
	ReplyTo       string
}

// ListRow is a selectable row in an interactive list section.
type ListRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ListSection groups rows under an optional title.
type ListSection struct {
	Title string    `json:"title,omitempty"`
	Rows  []ListRow `json:"rows"`
}

// ListMessage sends an interactive list picker.
type ListMessage struct {
	PhoneNumberID string
	To            string
	ButtonText    string
	BodyText      string
	FooterText    string
	Header        json.RawMessage
	Sections      []ListSection
	ReplyTo       string
}

// FlowMessage launches a WhatsApp Flow.
type FlowMessage struct {
	PhoneNumberID     string
	To                string
	BodyText          string
	FooterText        string
	Header            json.RawMessage
	FlowID            string
	FlowToken         string
	FlowCTA           string
	FlowAction        string
	FlowActionPayload json.RawMessage
	ReplyTo           string
}

// sendMessage posts a prepared message body to the messages edge.
func (c *Client) sendMessage(ctx context.Context, phoneNumberID string, body map[string]any) (*SendMessageResponse, error) {
	body["messaging_product"] = messagingProduct
	if _, ok := body["recipient_type"]; !ok {
		body["recipient_type"] = "individual"
	}

	result := new(SendMessageResponse)
	if err := c.postJSON(ctx, fmt.Sprintf("%s/messages", phoneNumberID), body, result); err != nil {
		return nil, err
	}
	return result, nil
}

func withReplyContext(body map[string]any, replyTo string) map[string]any {
	if replyTo != "" {
		body["context"] = map[string]any{"message_id": replyTo}
	}
	return body
}

// SendText sends a text message.
func (c *Client) SendText(ctx context.Context, in TextMessage) (*SendMessageResponse, error) {
	body := withReplyContext(map[string]any{
		"to":   in.To,
		"type": "text",
		"text": map[string]any{
			"body":        in.Body,
			"preview_url": in.PreviewURL,
		},
	}, in.ReplyTo)
	return c.sendMessage(ctx, in.PhoneNumberID, body)
}

// SendImage sends an image message.
func (c *Client) SendImage(ctx context.Context, in MediaMessage) (*SendMessageResponse, error) {
	return c.sendMedia(ctx, "image", in)
}

// SendVideo sends a video message.
func (c *Client) SendVideo(ctx context.Context, in MediaMessage) (*SendMessageResponse, error) {
	return c.sendMedia(ctx, "video", in)
}

// SendAudio sends an audio message.
func (c *Client) SendAudio(ctx context.Context, in MediaMessage) (*SendMessageResponse, error) {
	return c.sendMedia(ctx, "audio", in)
}

// SendDocument sends a document message.
func (c *Client) SendDocument(ctx context.Context, in MediaMessage) (*SendMessageResponse, error) {
	return c.sendMedia(ctx, "document", in)
}

// SendSticker sends a sticker message.
func (c *Client) SendSticker(ctx context.Context, in MediaMessage) (*SendMessageResponse, error) {
	return c.sendMedia(ctx, "sticker", in)
}

func (c *Client) sendMedia(ctx context.Context, mediaType string, in MediaMessage) (*SendMessageResponse, error) {
	media := map[string]any{}
	if in.MediaID != "" {
		media["id"] = in.MediaID
	}
	if in.Link != "" {
		media["link"] = in.Link
	}
	if in.Caption != "" {
		media["caption"] = in.Caption
	}
	if in.Filename != "" && mediaType == "document" {
		media["filename"] = in.Filename
	}

	body := withReplyContext(map[string]any{
		"to":      in.To,
		"type":    mediaType,
		mediaType: media,
	}, in.ReplyTo)
	return c.sendMessage(ctx, in.PhoneNumberID, body)
}

// SendLocation sends a location message.
func (c *Client) SendLocation(ctx context.Context, in LocationMessage) (*SendMessageResponse, error) {
	location := map[string]any{
		"latitude":  in.Latitude,
		"longitude": in.Longitude,
	}
	if in.Name != "" {
		location["name"] = in.Name
	}
	if in.Address != "" {
		location["address"] = in.Address
	}

	body := withReplyContext(map[string]any{
		"to":       in.To,
		"type":     "location",
		"location": location,
	}, in.ReplyTo)
	return c.sendMessage(ctx, in.PhoneNumberID, body)
}

// SendContacts sends contact cards.
func (c *Client) SendContacts(ctx context.Context, in ContactsMessage) (*SendMessageResponse, error) {
	body := withReplyContext(map[string]any{
		"to":       in.To,
		"type":     "contacts",
		"contacts": in.Contacts,
	}, in.ReplyTo)
	return c.sendMessage(ctx, in.PhoneNumberID, body)
}

// SendReaction reacts to a message.
func (c *Client) SendReaction(ctx context.Context, in ReactionMessage) (*SendMessageResponse, error) {
	body := map[string]any{
		"to":   in.To,
		"type": "reaction",
		"reaction": map[string]any{
			"message_id": in.MessageID,
			"emoji":      in.Emoji,
		},
	}
	return c.sendMessage(ctx, in.PhoneNumberID, body)
}

// SendTemplate sends a pre-approved template message.
func (c *Client) SendTemplate(ctx context.Context, in TemplateMessage) (*SendMessageResponse, error) {
	template := map[string]any{
		"name":     in.Name,
		"language": map[string]any{"code": in.Language},
	}
	if len(in.Components) > 0 {
		template["components"] = in.Components
	}

	body := withReplyContext(map[string]any{
		"to":       in.To,
		"type":     "template",
		"template": template,
	}, in.ReplyTo)
	return c.sendMessage(ctx, in.PhoneNumberID, body)
}

// SendButtons sends an interactive reply-button message.
func (c *Client) SendButtons(ctx context.Context, in ButtonsMessage) (*SendMessageResponse, error) {
	buttons := make([]map[string]any, 0, len(in.Buttons))
	for _, b := range in.Buttons {
		buttons = append(buttons, map[string]any{
			"type":  "reply",
			"reply": map[string]any{"id": b.ID, "title": b.Title},
		})
	}

	interactive := map[string]any{
		"type":   "button",
		"action": map[string]any{"buttons": buttons},
	}
	return c.sendInteractive(ctx, in.PhoneNumberID, in.To, interactive, in.BodyText, in.FooterText, in.Header, in.ReplyTo)
}

// SendList sends an interactive list picker.
func (c *Client) SendList(ctx context.Context, in ListMessage) (*SendMessageResponse, error) {
	interactive := map[string]any{
		"type": "list",
		"action": map[string]any{
			"button":   in.ButtonText,
			"sections": in.Sections,
		},
	}
	return c.sendInteractive(ctx, in.PhoneNumberID, in.To, interactive, in.BodyText, in.FooterText, in.Header, in.ReplyTo)
}

// SendFlow launches a WhatsApp Flow for the recipient.
func (c *Client) SendFlow(ctx context.Context, in FlowMessage) (*SendMessageResponse, error) {
	parameters := map[string]any{
		"flow_message_version": "3",
		"flow_id":              in.FlowID,
		"flow_cta":             in.FlowCTA,
	}
	if in.FlowToken != "" {
		parameters["flow_token"] = in.FlowToken
	}
	if in.FlowAction != "" {
		parameters["flow_action"] = in.FlowAction
	}
	if len(in.FlowActionPayload) > 0 {
		parameters["flow_action_payload"] = in.FlowActionPayload
	}

	interactive := map[string]any{
		"type": "flow",
		"action": map[string]any{
			"name":       "flow",
			"parameters": parameters,
		},
	}
	return c.sendInteractive(ctx, in.PhoneNumberID, in.To, interactive, in.BodyText, in.FooterText, in.Header, in.ReplyTo)
}

// SendInteractiveRaw sends a caller-assembled interactive object untouched.
func (c *Client) SendInteractiveRaw(ctx context.Context, phoneNumberID, to string, interactive json.RawMessage, replyTo string) (*SendMessageResponse, error) {
	body := withReplyContext(map[string]any{
		"to":          to,
		"type":        "interactive",
		"interactive": interactive,
	}, replyTo)
	return c.sendMessage(ctx, phoneNumberID, body)
}

func (c *Client) sendInteractive(ctx context.Context, phoneNumberID, to string, interactive map[string]any, bodyText, footerText string, header json.RawMessage, replyTo string) (*SendMessageResponse, error) {
	if bodyText != "" {
		interactive["body"] = map[string]any{"text": bodyText}
	}
	if footerText != "" {
		interactive["footer"] = map[string]any{"text": footerText}
	}
	if len(header) > 0 {
		interactive["header"] = header
	}

	body := withReplyContext(map[string]any{
		"to":          to,
		"type":        "interactive",
		"interactive": interactive,
	}, replyTo)
	return c.sendMessage(ctx, phoneNumberID, body)
}

// MarkRead marks an inbound message as read.
func (c *Client) MarkRead(ctx context.Context, phoneNumberID, messageID string) (*SuccessResponse, error) {
	body := map[string]any{
		"messaging_product": messagingProduct,
		"status":            "read",
		"message_id":        messageID,
	}

	result := new(SuccessResponse)
	if err := c.postJSON(ctx, fmt.Sprintf("%s/messages", phoneNumberID), body, result); err != nil {
		return nil, err
	}
	return result, nil
}
