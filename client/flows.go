package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// FlowCreateInput describes a new WhatsApp Flow.
type FlowCreateInput struct {
	WabaID      string
	Name        string
	Categories  []string
	FlowJSON    json.RawMessage
	EndpointURI string
	Publish     bool
}

// CreateFlow creates a flow under the business account, optionally publishing
// it immediately.
func (c *Client) CreateFlow(ctx context.Context, in FlowCreateInput) (*FlowCreateResponse, error) {
	body := map[string]any{
		"name": in.Name,
	}
	if len(in.Categories) > 0 {
		body["categories"] = in.Categories
	}
	if len(in.FlowJSON) > 0 {
		body["flow_json"] = string(in.FlowJSON)
	}
	if in.EndpointURI != "" {
		body["endpoint_uri"] = in.EndpointURI
	}
	if in.Publish {
		body["publish"] = true
	}

	result := new(FlowCreateResponse)
	if err := c.postJSON(ctx, fmt.Sprintf("%s/flows", in.WabaID), body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListFlows returns the flows under a business account.
func (c *Client) ListFlows(ctx context.Context, wabaID string) (*FlowListResponse, error) {
	result := new(FlowListResponse)
	if err := c.getJSON(ctx, fmt.Sprintf("%s/flows", wabaID), nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// PublishFlow publishes a draft flow.
func (c *Client) PublishFlow(ctx context.Context, flowID string) (*SuccessResponse, error) {
	result := new(SuccessResponse)
	if err := c.postJSON(ctx, fmt.Sprintf("%s/publish", flowID), map[string]any{}, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeprecateFlow marks a published flow as deprecated.
func (c *Client) DeprecateFlow(ctx context.Context, flowID string) (*SuccessResponse, error) {
	result := new(SuccessResponse)
	if err := c.postJSON(ctx, fmt.Sprintf("%s/deprecate", flowID), map[string]any{}, result); err != nil {
		return nil, err
	}
	return result, nil
}

// PreviewFlow returns a shareable preview link for a flow.
func (c *Client) PreviewFlow(ctx context.Context, flowID string, invalidate bool) (*FlowPreviewResponse, error) {
	fields := "preview"
	if invalidate {
		fields = "preview.invalidate(true)"
	}

	result := new(FlowPreviewResponse)
	if err := c.getJSON(ctx, flowID, map[string]string{"fields": fields}, result); err != nil {
		return nil, err
	}
	return result, nil
}
