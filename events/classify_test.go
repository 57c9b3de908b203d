package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmamadou/wacloud/webhook"
)

func normalize(t *testing.T, payload string) *webhook.Normalized {
	t.Helper()
	wh, err := webhook.Normalize([]byte(payload))
	require.NoError(t, err)
	return wh
}

func delivery(value string) string {
	return `{"object":"whatsapp_business_account","entry":[{"changes":[{"field":"messages","value":` + value + `}]}]}`
}

func TestClassify_TextEndToEnd(t *testing.T) {
	wh := normalize(t, delivery(`{
		"metadata": {"phone_number_id": "PNID"},
		"messages": [{"id": "wamid.1", "from": "5511999999999", "timestamp": "1700000000", "type": "text", "text": {"body": "Hi"}}]
	}`))

	evts := Classify(wh)
	require.Len(t, evts, 1)

	text, ok := evts[0].(TextReceived)
	require.True(t, ok)
	assert.Equal(t, "Hi", text.Body)
	assert.Equal(t, "5511999999999", text.FromNumber)
	assert.Equal(t, "PNID", text.PhoneNumberID)
	assert.Equal(t, "wamid.1", text.MessageID)
}

func TestClassify_EveryMessageKindMapsToOneEvent(t *testing.T) {
	tests := []struct {
		name string
		node string
		want any
	}{
		{"text", `{"id":"m","type":"text","text":{"body":"x"}}`, TextReceived{}},
		{"image", `{"id":"m","type":"image","image":{"id":"I"}}`, ImageReceived{}},
		{"video", `{"id":"m","type":"video","video":{"id":"V"}}`, VideoReceived{}},
		{"audio", `{"id":"m","type":"audio","audio":{"id":"A"}}`, AudioReceived{}},
		{"document", `{"id":"m","type":"document","document":{"id":"D"}}`, DocumentReceived{}},
		{"sticker", `{"id":"m","type":"sticker","sticker":{"id":"S"}}`, StickerReceived{}},
		{"location", `{"id":"m","type":"location","location":{"latitude":1}}`, LocationReceived{}},
		{"contacts", `{"id":"m","type":"contacts","contacts":[{}]}`, ContactsReceived{}},
		{"reaction", `{"id":"m","type":"reaction","reaction":{"emoji":"x"}}`, ReactionReceived{}},
		{"button reply", `{"id":"m","type":"interactive","interactive":{"type":"button_reply","button_reply":{"id":"b"}}}`, ButtonReply{}},
		{"list reply", `{"id":"m","type":"interactive","interactive":{"type":"list_reply","list_reply":{"id":"l"}}}`, ListReply{}},
		{"flow reply", `{"id":"m","type":"interactive","interactive":{"type":"nfm_reply","nfm_reply":{"response_json":"{}"}}}`, FlowResponse{}},
		{"order", `{"id":"m","type":"order","order":{"catalog_id":"c"}}`, OrderReceived{}},
		{"unknown", `{"id":"m","type":"whatever_comes_next"}`, UnknownMessageReceived{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wh := normalize(t, delivery(`{"metadata":{"phone_number_id":"P"},"messages":[`+tt.node+`]}`))
			evts := Classify(wh)
			require.Len(t, evts, 1)
			assert.IsType(t, tt.want, evts[0])
		})
	}
}

func TestClassify_ButtonReplyFields(t *testing.T) {
	wh := normalize(t, delivery(`{
		"metadata": {"phone_number_id": "P"},
		"messages": [{"id": "m", "from": "551", "type": "interactive",
			"interactive": {"type": "button_reply", "button_reply": {"id": "confirm", "title": "Confirm"}}}]
	}`))

	evts := Classify(wh)
	require.Len(t, evts, 1)

	reply, ok := evts[0].(ButtonReply)
	require.True(t, ok)
	assert.Equal(t, "confirm", reply.ButtonID)
	assert.Equal(t, "Confirm", reply.ButtonTitle)
}

func TestClassify_ListReplyFields(t *testing.T) {
	wh := normalize(t, delivery(`{
		"metadata": {"phone_number_id": "P"},
		"messages": [{"id": "m", "type": "interactive",
			"interactive": {"type": "list_reply", "list_reply": {"id": "row-2", "title": "Option", "description": "More"}}}]
	}`))

	evts := Classify(wh)
	reply, ok := evts[0].(ListReply)
	require.True(t, ok)
	assert.Equal(t, "row-2", reply.ListID)
	assert.Equal(t, "Option", reply.ListTitle)
	assert.Equal(t, "More", reply.ListDescription)
}

func TestClassify_FlowResponseDecodesEmbeddedJSON(t *testing.T) {
	wh := normalize(t, delivery(`{
		"metadata": {"phone_number_id": "P"},
		"messages": [{"id": "m", "type": "interactive",
			"interactive": {"type": "nfm_reply", "nfm_reply": {
				"response_json": "{\"screen\":\"DONE\",\"answer\":\"42\"}",
				"flow_token": "tok-1"}}}]
	}`))

	evts := Classify(wh)
	flow, ok := evts[0].(FlowResponse)
	require.True(t, ok)
	assert.Equal(t, "tok-1", flow.FlowToken)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(flow.Response, &decoded))
	assert.Equal(t, "DONE", decoded["screen"])
}

func TestClassify_FlowResponseBadEmbeddedJSONFallsBack(t *testing.T) {
	wh := normalize(t, delivery(`{
		"metadata": {"phone_number_id": "P"},
		"messages": [{"id": "m", "type": "interactive",
			"interactive": {"type": "nfm_reply", "nfm_reply": {"response_json": "{broken"}}}]
	}`))

	evts := Classify(wh)
	flow, ok := evts[0].(FlowResponse)
	require.True(t, ok)
	assert.JSONEq(t, `{}`, string(flow.Response))
}

func TestClassify_UnknownInteractiveSubtype(t *testing.T) {
	wh := normalize(t, delivery(`{
		"metadata": {"phone_number_id": "P"},
		"messages": [{"id": "m", "type": "interactive", "interactive": {"type": "hologram_reply"}}]
	}`))

	evts := Classify(wh)
	unknown, ok := evts[0].(UnknownMessageReceived)
	require.True(t, ok)
	assert.Equal(t, "interactive:hologram_reply", unknown.RawType)
}

func TestClassify_UnknownKindCarriesRawNode(t *testing.T) {
	node := `{"id":"m1","from":"551","timestamp":"1","type":"future_unsupported_type","payload":{"x":1}}`
	wh := normalize(t, delivery(`{"metadata":{"phone_number_id":"P"},"messages":[`+node+`]}`))

	evts := Classify(wh)
	require.Len(t, evts, 1)

	unknown, ok := evts[0].(UnknownMessageReceived)
	require.True(t, ok)
	assert.Equal(t, "future_unsupported_type", unknown.RawType)
	assert.JSONEq(t, node, string(unknown.RawData))
	assert.Equal(t, "P", unknown.PhoneNumberID)
}

func TestClassify_StatusMapping(t *testing.T) {
	tests := []struct {
		status string
		want   any
	}{
		{"sent", MessageSent{}},
		{"delivered", MessageDelivered{}},
		{"read", MessageRead{}},
		{"failed", MessageFailed{}},
		{"some_new_status", MessageSent{}},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			wh := normalize(t, delivery(`{
				"metadata": {"phone_number_id": "P"},
				"statuses": [{"id": "s", "status": "`+tt.status+`", "timestamp": "1", "recipient_id": "551"}]
			}`))
			evts := Classify(wh)
			require.Len(t, evts, 1)
			assert.IsType(t, tt.want, evts[0])
		})
	}
}

func TestClassify_FailedStatusCarriesErrors(t *testing.T) {
	wh := normalize(t, delivery(`{
		"metadata": {"phone_number_id": "P"},
		"statuses": [{
			"id": "wamid.f", "status": "failed", "timestamp": "1", "recipient_id": "551",
			"errors": [{"code": 131047, "title": "Re-engagement message", "message": "outside window"}]
		}]
	}`))

	evts := Classify(wh)
	require.Len(t, evts, 1)

	failed, ok := evts[0].(MessageFailed)
	require.True(t, ok)
	assert.Equal(t, "wamid.f", failed.MessageID)
	require.Len(t, failed.Errors, 1)
	assert.Equal(t, 131047, failed.Errors[0].Code)
}

func TestClassify_OrderingMessagesThenStatuses(t *testing.T) {
	wh := normalize(t, delivery(`{
		"metadata": {"phone_number_id": "P"},
		"messages": [
			{"id": "m1", "type": "text", "text": {"body": "a"}},
			{"id": "m2", "type": "image", "image": {"id": "I"}}
		],
		"statuses": [
			{"id": "s1", "status": "delivered", "timestamp": "1"},
			{"id": "s2", "status": "read", "timestamp": "2"},
			{"id": "s3", "status": "sent", "timestamp": "3"}
		]
	}`))

	evts := Classify(wh)
	require.Len(t, evts, 5)

	assert.IsType(t, TextReceived{}, evts[0])
	assert.IsType(t, ImageReceived{}, evts[1])
	assert.IsType(t, MessageDelivered{}, evts[2])
	assert.IsType(t, MessageRead{}, evts[3])
	assert.IsType(t, MessageSent{}, evts[4])

	for _, evt := range evts {
		switch e := evt.(type) {
		case TextReceived:
			assert.Equal(t, "P", e.PhoneNumberID)
		case ImageReceived:
			assert.Equal(t, "P", e.PhoneNumberID)
		case MessageDelivered:
			assert.Equal(t, "P", e.PhoneNumberID)
		case MessageRead:
			assert.Equal(t, "P", e.PhoneNumberID)
		case MessageSent:
			assert.Equal(t, "P", e.PhoneNumberID)
		}
	}
}

func TestClassify_NilAndEmpty(t *testing.T) {
	assert.Nil(t, Classify(nil))
	assert.Empty(t, Classify(&webhook.Normalized{}))
}
