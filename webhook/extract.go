package webhook

import (
	"encoding/json"
	"fmt"
)

// wireMessage is the on-the-wire shape of one message node. Every known
// type-specific payload is optional; the discriminator decides which one is
// meaningful.
type wireMessage struct {
	ID          string              `json:"id"`
	From        string              `json:"from"`
	Timestamp   string              `json:"timestamp"`
	Type        string              `json:"type"`
	Context     *MessageContext     `json:"context"`
	Text        *TextBody           `json:"text"`
	Image       *MediaAttachment    `json:"image"`
	Video       *MediaAttachment    `json:"video"`
	Audio       *AudioAttachment    `json:"audio"`
	Document    *DocumentAttachment `json:"document"`
	Sticker     *StickerAttachment  `json:"sticker"`
	Location    *LocationPayload    `json:"location"`
	Contacts    []json.RawMessage   `json:"contacts"`
	Reaction    *ReactionPayload    `json:"reaction"`
	Interactive *InteractivePayload `json:"interactive"`
	Order       *OrderPayload       `json:"order"`
}

// ExtractMessage projects one raw message node onto a Message. The provider's
// type string selects the kind; anything outside the known set becomes
// KindUnknown with the raw type and the entire node preserved, so data is
// categorized but never dropped.
func ExtractMessage(raw json.RawMessage) (Message, error) {
	var wire wireMessage
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Message{}, fmt.Errorf("%w: message node: %v", ErrMalformedPayload, err)
	}

	msg := Message{
		ID:        wire.ID,
		From:      wire.From,
		Timestamp: wire.Timestamp,
		Context:   wire.Context,
		RawType:   wire.Type,
		Raw:       append(json.RawMessage(nil), raw...),
	}

	switch wire.Type {
	case "text":
		msg.Kind = KindText
		msg.Text = wire.Text
	case "image":
		msg.Kind = KindImage
		msg.Image = wire.Image
	case "video":
		msg.Kind = KindVideo
		msg.Video = wire.Video
	case "audio":
		msg.Kind = KindAudio
		msg.Audio = wire.Audio
	case "document":
		msg.Kind = KindDocument
		msg.Document = wire.Document
	case "sticker":
		msg.Kind = KindSticker
		msg.Sticker = wire.Sticker
	case "location":
		msg.Kind = KindLocation
		msg.Location = wire.Location
	case "contacts":
		msg.Kind = KindContacts
		msg.Contacts = wire.Contacts
	case "reaction":
		msg.Kind = KindReaction
		msg.Reaction = wire.Reaction
	case "interactive":
		msg.Kind = KindInteractive
		msg.Interactive = wire.Interactive
	case "order":
		msg.Kind = KindOrder
		msg.Order = wire.Order
	default:
		msg.Kind = KindUnknown
	}

	return msg, nil
}
