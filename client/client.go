package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// TokenStore 持有登录态, 登录写入 / 登出清空
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *TokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// APIError 服务端错误归一化后的结果, Message 是单条可展示文案
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  *TokenStore

	mu             sync.Mutex
	userID         string
	onForcedLogout func()
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Tokens:  &TokenStore{},
	}
}

// OnForcedLogout 注册 401 回调, 回调前会先清空令牌
func (c *Client) OnForcedLogout(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onForcedLogout = fn
}

type LoginResult struct {
	Token string `json:"token"`
	User  struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
		Role   string `json:"role"`
	} `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &result)
	if err != nil {
		return nil, err
	}
	c.Tokens.Set(result.Token)
	c.SetUserID(result.User.UserID)
	return &result, nil
}

func (c *Client) Logout() {
	c.Tokens.Clear()
	c.SetUserID("")
}

func (c *Client) SetUserID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = id
}

func (c *Client) UserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID
}

func (c *Client) LoggedIn() bool {
	return c.Tokens.Get() != ""
}

// do 发起请求并把响应 data 解到 out
// 非 2xx 时把 {message, errors{field:[]}} 归一化成一条 APIError
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.Tokens.Clear()
		c.mu.Lock()
		c.userID = ""
		fn := c.onForcedLogout
		c.mu.Unlock()
		if fn != nil {
			fn()
		}
		return &APIError{Status: resp.StatusCode, Message: normalizeError(raw)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: normalizeError(raw)}
	}

	if out == nil {
		return nil
	}
	data := gjson.GetBytes(raw, "data")
	if !data.Exists() {
		return nil
	}
	return json.Unmarshal([]byte(data.Raw), out)
}

// normalizeError 把 {message, errors: {field: [msg...]}} 压成一条消息
// 字段按字典序拼接, 保证同一响应总是得到同一条文案
func normalizeError(raw []byte) string {
	msg := gjson.GetBytes(raw, "message").String()
	errs := gjson.GetBytes(raw, "errors")
	if !errs.Exists() || !errs.IsObject() {
		if msg == "" {
			return "请求失败"
		}
		return msg
	}

	fields := make([]string, 0)
	parts := make(map[string]string)
	errs.ForEach(func(key, value gjson.Result) bool {
		items := make([]string, 0)
		value.ForEach(func(_, item gjson.Result) bool {
			items = append(items, item.String())
			return true
		})
		fields = append(fields, key.String())
		parts[key.String()] = strings.Join(items, "; ")
		return true
	})
	sort.Strings(fields)

	joined := make([]string, 0, len(fields))
	for _, f := range fields {
		joined = append(joined, f+": "+parts[f])
	}
	if msg == "" {
		return strings.Join(joined, ", ")
	}
	return msg + ": " + strings.Join(joined, ", ")
}
