package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// TemplateListInput filters the template listing.
type TemplateListInput struct {
	BusinessAccountID string
	Limit             int
	Before            string
	After             string
	Status            string
	Name              string
	Category          string
	Language          string
}

// TemplateCreateInput describes a template to submit for review.
type TemplateCreateInput struct {
	BusinessAccountID   string
	Name                string
	Language            string
	Category            string
	Components          []json.RawMessage
	ParameterFormat     string
	AllowCategoryChange *bool
}

// ListTemplates returns message templates for a business account.
func (c *Client) ListTemplates(ctx context.Context, in TemplateListInput) (*TemplateListResponse, error) {
	params := map[string]string{}
	if in.Limit > 0 {
		params["limit"] = strconv.Itoa(in.Limit)
	}
	if in.Before != "" {
		params["before"] = in.Before
	}
	if in.After != "" {
		params["after"] = in.After
	}
	if in.Status != "" {
		params["status"] = in.Status
	}
	if in.Name != "" {
		params["name"] = in.Name
	}
	if in.Category != "" {
		params["category"] = in.Category
	}
	if in.Language != "" {
		params["language"] = in.Language
	}

	result := new(TemplateListResponse)
	if err := c.getJSON(ctx, fmt.Sprintf("%s/message_templates", in.BusinessAccountID), params, result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateTemplate submits a new template for review.
func (c *Client) CreateTemplate(ctx context.Context, in TemplateCreateInput) (*TemplateCreateResponse, error) {
	body := map[string]any{
		"name":       in.Name,
		"language":   in.Language,
		"category":   in.Category,
		"components": in.Components,
	}
	if in.ParameterFormat != "" {
		body["parameter_format"] = in.ParameterFormat
	}
	if in.AllowCategoryChange != nil {
		body["allow_category_change"] = *in.AllowCategoryChange
	}

	result := new(TemplateCreateResponse)
	if err := c.postJSON(ctx, fmt.Sprintf("%s/message_templates", in.BusinessAccountID), body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTemplate removes a template by name.
func (c *Client) DeleteTemplate(ctx context.Context, businessAccountID, name string) (*SuccessResponse, error) {
	result := new(SuccessResponse)
	params := map[string]string{"name": name}
	if err := c.deleteJSON(ctx, fmt.Sprintf("%s/message_templates", businessAccountID), params, result); err != nil {
		return nil, err
	}
	return result, nil
}
