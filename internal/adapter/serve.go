// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-bwenv/internal/logger"
	"github.com/MKhiriev/go-bwenv/internal/utils"
	"github.com/MKhiriev/go-bwenv/models"
)

// RequestIDHeader carries the run id so `bw serve` requests can be matched
// with bwenv log lines.
const RequestIDHeader = "X-Request-Id"

// envelope is the response wrapper used by every `bw serve` endpoint.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// list is the `data` payload of `bw serve` list endpoints.
type list[T any] struct {
	Object string `json:"object"`
	Data   []T    `json:"data"`
}

type serveVaultAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewServeVaultAdapter constructs a [VaultAdapter] that talks to the Vault
// Management API exposed by `bw serve` at rawURL. The server is expected to
// be unlocked already, so no session is sent.
//
// Returns an error if rawURL is empty or cannot be parsed as a valid URL.
func NewServeVaultAdapter(rawURL string, timeout time.Duration, logger *logger.Logger) (VaultAdapter, error) {
	baseURL, err := normalizeBaseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid serve url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, timeout)

	return &serveVaultAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (s *serveVaultAdapter) Sync(ctx context.Context) error {
	var out envelope[json.RawMessage]
	return s.do(ctx, s.client.R().SetResult(&out), resty.MethodPost, "/sync", &out.Success, &out.Message)
}

func (s *serveVaultAdapter) ListFolders(ctx context.Context, search string) ([]models.Folder, error) {
	var out envelope[list[models.Folder]]
	req := s.client.R().
		SetQueryParam("search", search).
		SetResult(&out)

	if err := s.do(ctx, req, resty.MethodGet, "/list/object/folders", &out.Success, &out.Message); err != nil {
		return nil, err
	}
	return out.Data.Data, nil
}

func (s *serveVaultAdapter) ListItems(ctx context.Context, folderID, search string) ([]models.Item, error) {
	var out envelope[list[models.Item]]
	req := s.client.R().
		SetQueryParam("folderid", folderID).
		SetQueryParam("search", search).
		SetResult(&out)

	if err := s.do(ctx, req, resty.MethodGet, "/list/object/items", &out.Success, &out.Message); err != nil {
		return nil, err
	}
	return out.Data.Data, nil
}

func (s *serveVaultAdapter) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	var out envelope[models.Item]
	req := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		SetResult(&out)

	if err := s.do(ctx, req, resty.MethodPost, "/object/item", &out.Success, &out.Message); err != nil {
		return models.Item{}, err
	}
	return out.Data, nil
}

func (s *serveVaultAdapter) EditItem(ctx context.Context, item models.Item) (models.Item, error) {
	var out envelope[models.Item]
	req := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", item.ID).
		SetBody(item).
		SetResult(&out)

	if err := s.do(ctx, req, resty.MethodPut, "/object/item/{id}", &out.Success, &out.Message); err != nil {
		return models.Item{}, err
	}
	return out.Data, nil
}

// do sends req and checks both the status code and the envelope's success
// flag, which success and message point into.
func (s *serveVaultAdapter) do(ctx context.Context, req *resty.Request, method, path string, success *bool, message *string) error {
	if runID, ok := utils.GetRunIDFromContext(ctx); ok {
		req.SetHeader(RequestIDHeader, runID)
	}

	start := time.Now()
	resp, err := req.
		SetContext(ctx).
		ForceContentType("application/json").
		Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrServerFailure, method, path, err)
	}

	s.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("bw serve call finished")

	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if !*success {
		msg := *message
		if msg == "" {
			msg = "request was not successful"
		}
		return fmt.Errorf("%w: %s %s: %s", ErrBadRequest, method, path, msg)
	}
	return nil
}
