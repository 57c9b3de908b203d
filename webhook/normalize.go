package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedPayload marks webhook bodies that are not structurally valid,
// e.g. entry present but not an array. Missing optional fields never trigger
// it.
var ErrMalformedPayload = errors.New("malformed webhook payload")

// Normalize decodes a raw webhook body and flattens it. It is the entry point
// for HTTP handlers that hold the verified request bytes.
func Normalize(raw []byte) (*Normalized, error) {
	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return NormalizeParsed(&payload)
}

// NormalizeParsed flattens an already-decoded payload into a Normalized view.
//
// All entry/change blocks are walked in order and their messages, statuses and
// contacts concatenated without reordering or deduplication. The first
// non-empty phone_number_id wins when multiple changes disagree. Changes whose
// field is not "messages" are kept verbatim under Raw. The only error path is
// a message node that is not a JSON object.
func NormalizeParsed(payload *Payload) (*Normalized, error) {
	out := &Normalized{Object: payload.Object}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			if change.Field != "" && change.Field != "messages" {
				if out.Raw == nil {
					out.Raw = make(map[string][]json.RawMessage)
				}
				value := change.Value.raw
				if value == nil {
					// Programmatically built payloads have no original bytes.
					encoded, err := json.Marshal(change.Value)
					if err != nil {
						return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
					}
					value = encoded
				}
				out.Raw[change.Field] = append(out.Raw[change.Field], value)
				continue
			}

			if out.PhoneNumberID == "" {
				out.PhoneNumberID = change.Value.Metadata.PhoneNumberID
				out.DisplayPhoneNumber = change.Value.Metadata.DisplayPhoneNumber
			}

			out.Contacts = append(out.Contacts, change.Value.Contacts...)

			for _, raw := range change.Value.Messages {
				msg, err := ExtractMessage(raw)
				if err != nil {
					return nil, err
				}
				out.Messages = append(out.Messages, msg)
			}

			out.Statuses = append(out.Statuses, change.Value.Statuses...)
		}
	}

	return out, nil
}
