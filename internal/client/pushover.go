package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const pushoverMessagesURL = "https://api.pushover.net/1/messages.json"

type PushoverAPI struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewPushoverAPI(token string) *PushoverAPI {
	return &PushoverAPI{
		token:   token,
		baseURL: pushoverMessagesURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Push delivers message to the device group behind the user's pushover key.
func (p *PushoverAPI) Push(ctx context.Context, userKey, message string) error {
	form := url.Values{
		"token":   {p.token},
		"user":    {userKey},
		"message": {message},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build pushover request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call pushover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pushover returned status %d", resp.StatusCode)
	}
	return nil
}
