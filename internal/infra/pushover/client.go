// Package pushover forwards pipeline notices as push notifications.
package pushover

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"llm-translator/internal/domain"
)

const defaultBaseURL = "https://api.pushover.net/1/messages.json"

var levelRank = map[domain.NoticeLevel]int{
	domain.NoticeInfo:    0,
	domain.NoticeSuccess: 1,
	domain.NoticeWarning: 2,
	domain.NoticeError:   3,
}

type Client struct {
	token      string
	userKey    string
	minLevel   domain.NoticeLevel
	baseURL    string
	httpClient *http.Client
}

// NewClient sends notices at or above minLevel. An empty minLevel means warnings.
func NewClient(token, userKey string, minLevel domain.NoticeLevel) *Client {
	return NewClientWithURL(token, userKey, minLevel, defaultBaseURL)
}

func NewClientWithURL(token, userKey string, minLevel domain.NoticeLevel, baseURL string) *Client {
	if _, ok := levelRank[minLevel]; !ok {
		minLevel = domain.NoticeWarning
	}
	return &Client{
		token:      token,
		userKey:    userKey,
		minLevel:   minLevel,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Notify(ctx context.Context, notice domain.Notice) error {
	if c.token == "" || c.userKey == "" {
		return nil
	}
	if levelRank[notice.Level] < levelRank[c.minLevel] {
		return nil
	}

	data := url.Values{}
	data.Set("token", c.token)
	data.Set("user", c.userKey)
	data.Set("message", notice.Text)
	data.Set("title", "LLM Translator")
	if notice.Level == domain.NoticeError {
		data.Set("priority", "1")
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL,
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pushover error: %s", resp.Status)
	}

	return nil
}
