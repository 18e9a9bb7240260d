package wechat

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"pet-health/internal/platform/apperr"
	"pet-health/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("wechat client not configured")
	ErrUpstream      = errors.New("wechat upstream error")
)

const (
	code2SessionPath = "/sns/jscode2session"

	// placeholder que trae el .env de ejemplo del mini-programa
	placeholderAppID = "your_appid"

	devPrefix = "dev_"
)

type Config struct {
	AppID   string
	Secret  string
	BaseURL string
	Timeout time.Duration

	// DevMode fuerza el fallback "dev_<code>" (solo fuera de producción).
	DevMode bool
	// Production desactiva cualquier fallback, aunque falte configuración.
	Production bool
}

// Client implementa auth.IdentityExchanger contra jscode2session.
type Client struct {
	http       *httpclient.Client
	appID      string
	secret     string
	devMode    bool
	production bool
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.New(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:       hc,
		appID:      strings.TrimSpace(cfg.AppID),
		secret:     strings.TrimSpace(cfg.Secret),
		devMode:    cfg.DevMode,
		production: cfg.Production,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.appID != "" && c.appID != placeholderAppID && c.secret != "" && c.http.BaseURL != ""
}

// usesDevFallback: nunca en producción.
func (c *Client) usesDevFallback() bool {
	if c.production {
		return false
	}
	return c.devMode || !c.IsConfigured()
}

type code2SessionResponse struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid"`
	ErrCode    int    `json:"errcode"`
	ErrMsg     string `json:"errmsg"`
}

// Exchange canjea el código de wx.login() por el openId del usuario.
func (c *Client) Exchange(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", apperr.Validation("code is required")
	}

	if c.usesDevFallback() {
		return devPrefix + code, nil
	}
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	var out code2SessionResponse
	err := c.http.GetJSON(ctx, code2SessionPath, url.Values{
		"appid":      {c.appID},
		"secret":     {c.secret},
		"js_code":    {code},
		"grant_type": {"authorization_code"},
	}, &out)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if out.ErrCode != 0 {
		return "", apperr.Unauthenticated(fmt.Sprintf("wechat login failed: %s", out.ErrMsg))
	}

	openID := strings.TrimSpace(out.OpenID)
	if openID == "" {
		return "", fmt.Errorf("%w: response missing openid", ErrUpstream)
	}
	return openID, nil
}
