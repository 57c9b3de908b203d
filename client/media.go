package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

// MediaUploadInput describes a file to push to the media edge.
type MediaUploadInput struct {
	PhoneNumberID string
	File          []byte
	Filename      string
	MimeType      string
}

// UploadMedia uploads a file and returns its media ID.
func (c *Client) UploadMedia(ctx context.Context, in MediaUploadInput) (*MediaUploadResponse, error) {
	filename := in.Filename
	if filename == "" {
		filename = "file"
	}
	mimeType := in.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	result := new(MediaUploadResponse)

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"messaging_product": messagingProduct,
			"type":              mimeType,
		}).
		SetFileReader("file", filename, bytes.NewReader(in.File)).
		Post(fmt.Sprintf("%s/media", in.PhoneNumberID))
	if err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}

	if err := c.decode(resp, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetMedia fetches metadata for stored media, including its CDN URL.
func (c *Client) GetMedia(ctx context.Context, mediaID string) (*MediaMetadata, error) {
	result := new(MediaMetadata)
	if err := c.getJSON(ctx, mediaID, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteMedia removes stored media.
func (c *Client) DeleteMedia(ctx context.Context, mediaID string) (*SuccessResponse, error) {
	result := new(SuccessResponse)
	if err := c.deleteJSON(ctx, mediaID, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DownloadMedia resolves the media URL and fetches the bytes. The CDN usually
// rejects auth headers, so the first attempt goes unauthenticated and 401/403
// responses trigger a single authenticated retry.
func (c *Client) DownloadMedia(ctx context.Context, mediaID string) ([]byte, error) {
	meta, err := c.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	resp, err := c.cdn.R().SetContext(ctx).Get(meta.URL)
	if err != nil {
		return nil, fmt.Errorf("download media %s: %w", mediaID, err)
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		resp, err = c.cdn.R().
			SetContext(ctx).
			SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.token)).
			Get(meta.URL)
		if err != nil {
			return nil, fmt.Errorf("download media %s: %w", mediaID, err)
		}
	}

	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("download media %s: cdn responded with status %d", mediaID, resp.StatusCode())
	}

	return resp.Body(), nil
}
