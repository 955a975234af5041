package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeErrorFlattensFields(t *testing.T) {
	raw := []byte(`{
		"code": 422,
		"message": "参数校验失败",
		"errors": {
			"title": ["标题不能为空"],
			"categoryId": ["分类不存在", "分类已停用"]
		}
	}`)

	got := normalizeError(raw)
	want := "参数校验失败: categoryId: 分类不存在; 分类已停用, title: 标题不能为空"
	if got != want {
		t.Fatalf("normalizeError = %q, want %q", got, want)
	}
}

func TestNormalizeErrorMessageOnly(t *testing.T) {
	if got := normalizeError([]byte(`{"code":500,"message":"系统异常"}`)); got != "系统异常" {
		t.Fatalf("got %q", got)
	}
	if got := normalizeError([]byte(`not json`)); got != "请求失败" {
		t.Fatalf("fallback got %q", got)
	}
}

func TestClientAttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"code":0,"message":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Tokens.Set("abc123")
	if err := c.do(context.Background(), http.MethodGet, "/api/get/ideas", nil, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "Bearer abc123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestClientForcedLogoutOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":401,"message":"登录已过期"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.Tokens.Set("expired")

	var loggedOut bool
	c.OnForcedLogout(func() { loggedOut = true })

	err := c.do(context.Background(), http.MethodGet, "/api/get/ideas", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !loggedOut {
		t.Fatal("forced logout hook not fired")
	}
	if c.Tokens.Get() != "" {
		t.Fatal("token should be cleared after 401")
	}
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"code":0,"message":"ok","data":{"token":"tok-1","user":{"user_id":"9","name":"张三","role":"student"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.Login(context.Background(), "a@b.edu", "password1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token != "tok-1" || result.User.Name != "张三" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if !c.LoggedIn() {
		t.Fatal("client should be logged in")
	}
	if c.UserID() != "9" {
		t.Fatalf("user id = %q, want 9", c.UserID())
	}
}
