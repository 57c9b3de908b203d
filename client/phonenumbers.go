package client

import (
	"context"
	"fmt"
)

// RequestCodeInput asks Meta to deliver a verification code.
type RequestCodeInput struct {
	PhoneNumberID string
	CodeMethod    string // "SMS" or "VOICE"
	Language      string
}

// RegisterInput registers a phone number for Cloud API messaging.
type RegisterInput struct {
	PhoneNumberID          string
	Pin                    string
	DataLocalizationRegion string
}

// BusinessProfileUpdate carries the editable business profile fields; empty
// fields are left untouched.
type BusinessProfileUpdate struct {
	PhoneNumberID     string
	About             string
	Address           string
	Description       string
	Email             string
	ProfilePictureURL string
	Websites          []string
	Vertical          string
}

// RequestCode triggers delivery of a phone verification code.
func (c *Client) RequestCode(ctx context.Context, in RequestCodeInput) (*SuccessResponse, error) {
	body := map[string]any{
		"code_method": in.CodeMethod,
		"language":    in.Language,
	}

	result := new(SuccessResponse)
	if err := c.postJSON(ctx, fmt.Sprintf("%s/request_code", in.PhoneNumberID), body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// VerifyCode confirms a previously requested verification code.
func (c *Client) VerifyCode(ctx context.Context, phoneNumberID, code string) (*SuccessResponse, error) {
	result := new(SuccessResponse)
	body := map[string]any{"code": code}
	if err := c.postJSON(ctx, fmt.Sprintf("%s/verify_code", phoneNumberID), body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Register enables Cloud API messaging for the phone number.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*SuccessResponse, error) {
	body := map[string]any{
		"messaging_product": messagingProduct,
		"pin":               in.Pin,
	}
	if in.DataLocalizationRegion != "" {
		body["data_localization_region"] = in.DataLocalizationRegion
	}

	result := new(SuccessResponse)
	if err := c.postJSON(ctx, fmt.Sprintf("%s/register", in.PhoneNumberID), body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Deregister disables Cloud API messaging for the phone number.
func (c *Client) Deregister(ctx context.Context, phoneNumberID string) (*SuccessResponse, error) {
	result := new(SuccessResponse)
	if err := c.postJSON(ctx, fmt.Sprintf("%s/deregister", phoneNumberID), map[string]any{}, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetBusinessProfile fetches the business profile for a phone number.
func (c *Client) GetBusinessProfile(ctx context.Context, phoneNumberID string) (*BusinessProfileResponse, error) {
	params := map[string]string{
		"fields": "about,address,description,email,profile_picture_url,websites,vertical",
	}

	result := new(BusinessProfileResponse)
	if err := c.getJSON(ctx, fmt.Sprintf("%s/whatsapp_business_profile", phoneNumberID), params, result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateBusinessProfile updates the provided business profile fields.
func (c *Client) UpdateBusinessProfile(ctx context.Context, in BusinessProfileUpdate) (*SuccessResponse, error) {
	body := map[string]any{"messaging_product": messagingProduct}
	if in.About != "" {
		body["about"] = in.About
	}
	if in.Address != "" {
		body["address"] = in.Address
	}
	if in.Description != "" {
		body["description"] = in.Description
	}
	if in.Email != "" {
		body["email"] = in.Email
	}
	if in.ProfilePictureURL != "" {
		body["profile_picture_url"] = in.ProfilePictureURL
	}
	if len(in.Websites) > 0 {
		body["websites"] = in.Websites
	}
	if in.Vertical != "" {
		body["vertical"] = in.Vertical
	}

	result := new(SuccessResponse)
	if err := c.postJSON(ctx, fmt.Sprintf("%s/whatsapp_business_profile", in.PhoneNumberID), body, result); err != nil {
		return nil, err
	}
	return result, nil
}
