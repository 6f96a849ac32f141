// Package api is the HTTP client for the AuthKeeper server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// LoginResult mirrors the server's login response.
type LoginResult struct {
	Authenticated bool   `json:"authenticated"`
	JWT           string `json:"jwt"`
}

type registerPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginPayload struct {
	Password string `json:"password"`
}

type msgPayload struct {
	Msg string `json:"msg"`
}

type authPayload struct {
	Username string `json:"username"`
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.client.Do(req)
}

// serverMsg extracts the "msg" field of an error response, falling back to
// the HTTP status.
func serverMsg(resp *http.Response) error {
	var m msgPayload
	b, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(b, &m); err == nil && m.Msg != "" {
		return fmt.Errorf("server: %s", m.Msg)
	}
	return fmt.Errorf("server: %s", resp.Status)
}

// Register creates an account on the server.
func (c *Client) Register(ctx context.Context, username string, password string) error {
	resp, err := c.postJSON(ctx, "/users", registerPayload{Username: username, Password: password})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return serverMsg(resp)
	}
	return nil
}

// Login authenticates and returns the server's verdict together with the
// token when credentials matched.
func (c *Client) Login(ctx context.Context, username string, password string) (*LoginResult, error) {
	resp, err := c.postJSON(ctx, "/users/"+username, loginPayload{Password: password})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serverMsg(resp)
	}

	result := &LoginResult{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, err
	}
	return result, nil
}

// WhoAmI presents the token and returns the username the server resolves
// it to.
func (c *Client) WhoAmI(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set(common.AccessTokenHeaderName, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", serverMsg(resp)
	}

	var a authPayload
	if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
		return "", err
	}
	return a.Username, nil
}
