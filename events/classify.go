package events

import (
	"encoding/json"

	"github.com/bmamadou/wacloud/webhook"
)

// Classify maps a normalized webhook onto its typed events. The mapping is
// total: every message kind produces exactly one event, with KindUnknown
// falling through to UnknownMessageReceived, and every status produces exactly
// one status event. Output order is all messages first, then all statuses,
// each preserving arrival order.
func Classify(wh *webhook.Normalized) []Event {
	if wh == nil {
		return nil
	}

	out := make([]Event, 0, len(wh.Messages)+len(wh.Statuses))
	for i := range wh.Messages {
		out = append(out, classifyMessage(&wh.Messages[i], wh.PhoneNumberID))
	}
	for i := range wh.Statuses {
		out = append(out, classifyStatus(&wh.Statuses[i], wh.PhoneNumberID))
	}
	return out
}

func messageBase(msg *webhook.Message, phoneNumberID string) MessageEvent {
	return MessageEvent{
		PhoneNumberID: phoneNumberID,
		MessageID:     msg.ID,
		Timestamp:     msg.Timestamp,
		FromNumber:    msg.From,
		Context:       msg.Context,
	}
}

func classifyMessage(msg *webhook.Message, phoneNumberID string) Event {
	base := messageBase(msg, phoneNumberID)

	switch msg.Kind {
	case webhook.KindText:
		evt := TextReceived{MessageEvent: base}
		if msg.Text != nil {
			evt.Body = msg.Text.Body
		}
		return evt

	case webhook.KindImage:
		evt := ImageReceived{MessageEvent: base}
		if msg.Image != nil {
			evt.ImageID = msg.Image.ID
			evt.MimeType = msg.Image.MimeType
			evt.Sha256 = msg.Image.Sha256
			evt.Caption = msg.Image.Caption
		}
		return evt

	case webhook.KindVideo:
		evt := VideoReceived{MessageEvent: base}
		if msg.Video != nil {
			evt.VideoID = msg.Video.ID
			evt.MimeType = msg.Video.MimeType
			evt.Sha256 = msg.Video.Sha256
			evt.Caption = msg.Video.Caption
		}
		return evt

	case webhook.KindAudio:
		evt := AudioReceived{MessageEvent: base}
		if msg.Audio != nil {
			evt.AudioID = msg.Audio.ID
			evt.MimeType = msg.Audio.MimeType
			evt.Sha256 = msg.Audio.Sha256
			evt.Voice = msg.Audio.Voice
		}
		return evt

	case webhook.KindDocument:
		evt := DocumentReceived{MessageEvent: base}
		if msg.Document != nil {
			evt.DocumentID = msg.Document.ID
			evt.MimeType = msg.Document.MimeType
			evt.Sha256 = msg.Document.Sha256
			evt.Filename = msg.Document.Filename
			evt.Caption = msg.Document.Caption
		}
		return evt

	case webhook.KindSticker:
		evt := StickerReceived{MessageEvent: base}
		if msg.Sticker != nil {
			evt.StickerID = msg.Sticker.ID
			evt.MimeType = msg.Sticker.MimeType
			evt.Animated = msg.Sticker.Animated
		}
		return evt

	case webhook.KindLocation:
		evt := LocationReceived{MessageEvent: base}
		if msg.Location != nil {
			evt.Latitude = msg.Location.Latitude
			evt.Longitude = msg.Location.Longitude
			evt.Name = msg.Location.Name
			evt.Address = msg.Location.Address
		}
		return evt

	case webhook.KindContacts:
		return ContactsReceived{MessageEvent: base, Contacts: msg.Contacts}

	case webhook.KindReaction:
		evt := ReactionReceived{MessageEvent: base}
		if msg.Reaction != nil {
			evt.Emoji = msg.Reaction.Emoji
			evt.ReactedMessageID = msg.Reaction.MessageID
		}
		return evt

	case webhook.KindInteractive:
		return classifyInteractive(msg, base)

	case webhook.KindOrder:
		evt := OrderReceived{MessageEvent: base}
		if msg.Order != nil {
			evt.CatalogID = msg.Order.CatalogID
			evt.ProductItems = msg.Order.ProductItems
			evt.OrderText = msg.Order.Text
		}
		return evt

	default:
		return UnknownMessageReceived{
			MessageEvent: base,
			RawType:      msg.RawType,
			RawData:      msg.Raw,
		}
	}
}

func classifyInteractive(msg *webhook.Message, base MessageEvent) Event {
	interactive := msg.Interactive
	if interactive == nil {
		interactive = &webhook.InteractivePayload{}
	}

	switch interactive.Type {
	case "button_reply":
		evt := ButtonReply{MessageEvent: base}
		if interactive.ButtonReply != nil {
			evt.ButtonID = interactive.ButtonReply.ID
			evt.ButtonTitle = interactive.ButtonReply.Title
		}
		return evt

	case "list_reply":
		evt := ListReply{MessageEvent: base}
		if interactive.ListReply != nil {
			evt.ListID = interactive.ListReply.ID
			evt.ListTitle = interactive.ListReply.Title
			evt.ListDescription = interactive.ListReply.Description
		}
		return evt

	case "nfm_reply":
		evt := FlowResponse{MessageEvent: base, Response: json.RawMessage(`{}`)}
		if interactive.NFMReply != nil {
			evt.FlowToken = interactive.NFMReply.FlowToken
			if json.Valid([]byte(interactive.NFMReply.ResponseJSON)) {
				evt.Response = json.RawMessage(interactive.NFMReply.ResponseJSON)
			}
		}
		return evt

	default:
		return UnknownMessageReceived{
			MessageEvent: base,
			RawType:      "interactive:" + interactive.Type,
			RawData:      msg.Raw,
		}
	}
}

func classifyStatus(status *webhook.StatusUpdate, phoneNumberID string) Event {
	base := StatusEvent{
		PhoneNumberID: phoneNumberID,
		MessageID:     status.ID,
		Timestamp:     status.Timestamp,
		RecipientID:   status.RecipientID,
		Conversation:  status.Conversation,
		Pricing:       status.Pricing,
	}

	switch status.Status {
	case "delivered":
		return MessageDelivered{StatusEvent: base}
	case "read":
		return MessageRead{StatusEvent: base}
	case "failed":
		return MessageFailed{StatusEvent: base, Errors: status.Errors}
	default:
		// "sent" and anything the provider adds later.
		return MessageSent{StatusEvent: base}
	}
}
