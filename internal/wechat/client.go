package wechat

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.weixin.qq.com"

// Client exchanges WeChat mini-program login codes for the user's openid.
type Client struct {
	baseURL    string
	appID      string
	appSecret  string
	httpClient *http.Client
}

func NewClient(appID, appSecret string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    defaultBaseURL,
		appID:      appID,
		appSecret:  appSecret,
		httpClient: httpClient,
	}
}

// SetBaseURL overrides the endpoint, used by tests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Session is the identity returned for a login code.
type Session struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid"`
	ErrCode    int    `json:"errcode"`
	ErrMsg     string `json:"errmsg"`
}

// CodeToSession exchanges an authorization code via jscode2session.
// WeChat reports failures with a 200 status and a non-zero errcode.
func (c *Client) CodeToSession(ctx context.Context, code string) (*Session, error) {
	q := url.Values{}
	q.Set("appid", c.appID)
	q.Set("secret", c.appSecret)
	q.Set("js_code", code)
	q.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/sns/jscode2session?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build jscode2session request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jscode2session: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read jscode2session response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jscode2session: status %d", resp.StatusCode)
	}

	var sess Session
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, fmt.Errorf("decode jscode2session response: %w", err)
	}
	if sess.ErrCode != 0 {
		return nil, fmt.Errorf("jscode2session: %d - %s", sess.ErrCode, sess.ErrMsg)
	}
	if sess.OpenID == "" {
		return nil, fmt.Errorf("jscode2session: empty openid")
	}
	return &sess, nil
}
