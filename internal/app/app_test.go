package app

import (
	"context"
	"github.com/alicebob/miniredis/v2"
	"github.com/iamvkosarev/expert-chat/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newFakeOpenAI(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				if r.URL.Path != "/v1/chat/completions" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				auth := r.Header.Get("Authorization")
				if auth != "Bearer sk-file" && auth != "Bearer sk-redis" && auth != "Bearer sk-env" {
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(
					[]byte(`{"id":"1","object":"chat.completion","created":1,"model":"gpt-4o-mini",` +
						`"choices":[{"index":0,"message":{"role":"assistant","content":"目安として..."},"finish_reason":"stop"}]}`),
				)
			},
		),
	)
	t.Cleanup(srv.Close)
	return srv
}

func submit(t *testing.T, cfg *config.Config, persona, query string) string {
	t.Helper()
	app, cleanup, err := newServer(cfg, nil)
	require.NoError(t, err)
	defer cleanup()

	form := url.Values{"persona": {persona}, "query": {query}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestServer_AnswerWithKeyFromSecretsFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	var calls atomic.Int32
	openAI := newFakeOpenAI(t, &calls)

	secretsFile := filepath.Join(t.TempDir(), "secrets.toml")
	require.NoError(t, os.WriteFile(secretsFile, []byte(`OPENAI_API_KEY = "sk-file"`), 0o600))

	cfg := &config.Config{
		OpenAI:  config.OpenAI{OpenAIBaseURL: openAI.URL},
		Secrets: config.Secrets{File: secretsFile},
	}
	body := submit(t, cfg, "ライフプランナー（お金・将来設計の相談）", "夫婦でいくら貯金すべきですか？")
	assert.Contains(t, body, "目安として...")
	assert.NotContains(t, body, "エラーが発生しました")
	assert.EqualValues(t, 1, calls.Load())
}

func TestServer_KeyFromRedis(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	var calls atomic.Int32
	openAI := newFakeOpenAI(t, &calls)
	mr := miniredis.RunT(t)
	mr.HSet("secrets", "OPENAI_API_KEY", "sk-redis")

	cfg := &config.Config{
		OpenAI: config.OpenAI{OpenAIBaseURL: openAI.URL},
		Secrets: config.Secrets{
			File:      filepath.Join(t.TempDir(), "absent.toml"),
			RedisAddr: mr.Addr(),
			RedisKey:  "secrets",
		},
	}
	body := submit(t, cfg, "キャリアコーチ（仕事・転職の相談）", "Q")
	assert.Contains(t, body, "目安として...")
	assert.EqualValues(t, 1, calls.Load())
}

func TestServer_MissingKeyNeverCallsModel(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	var calls atomic.Int32
	openAI := newFakeOpenAI(t, &calls)

	cfg := &config.Config{
		OpenAI:  config.OpenAI{OpenAIBaseURL: openAI.URL},
		Secrets: config.Secrets{File: filepath.Join(t.TempDir(), "absent.toml")},
	}
	body := submit(t, cfg, "キャリアコーチ（仕事・転職の相談）", "Q")
	assert.Contains(t, body, "エラーが発生しました")
	assert.Contains(t, body, "OPENAI_API_KEY")
	assert.EqualValues(t, 0, calls.Load())
}

func TestServer_MalformedSecretsFile(t *testing.T) {
	secretsFile := filepath.Join(t.TempDir(), "secrets.toml")
	require.NoError(t, os.WriteFile(secretsFile, []byte("OPENAI_API_KEY ="), 0o600))

	_, _, err := newServer(&config.Config{Secrets: config.Secrets{File: secretsFile}}, nil)
	assert.Error(t, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := &config.Config{
		HTTP:    config.HTTP{Address: "127.0.0.1:0"},
		Secrets: config.Secrets{File: filepath.Join(t.TempDir(), "absent.toml")},
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, cfg) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_BadAddress(t *testing.T) {
	cfg := &config.Config{
		HTTP:    config.HTTP{Address: "not-an-address"},
		Secrets: config.Secrets{File: filepath.Join(t.TempDir(), "absent.toml")},
	}
	assert.Error(t, Run(context.Background(), cfg))
}

func TestServer_KeyFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	var calls atomic.Int32
	openAI := newFakeOpenAI(t, &calls)

	cfg := &config.Config{
		OpenAI:  config.OpenAI{OpenAIBaseURL: openAI.URL},
		Secrets: config.Secrets{File: filepath.Join(t.TempDir(), "absent.toml")},
	}
	body := submit(t, cfg, "キャリアコーチ（仕事・転職の相談）", "Q")
	assert.Contains(t, body, "目安として...")
	assert.NotContains(t, body, "エラーが発生しました")
	assert.EqualValues(t, 1, calls.Load())
}

func TestServer_BaseURLWithVersionSuffix(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	var calls atomic.Int32
	openAI := newFakeOpenAI(t, &calls)

	for _, baseURL := range []string{openAI.URL + "/v1", openAI.URL + "/v1/", openAI.URL + "/"} {
		cfg := &config.Config{
			OpenAI:  config.OpenAI{OpenAIBaseURL: baseURL},
			Secrets: config.Secrets{File: filepath.Join(t.TempDir(), "absent.toml")},
		}
		body := submit(t, cfg, "キャリアコーチ（仕事・転職の相談）", "Q")
		assert.Contains(t, body, "目安として...", "base url %s", baseURL)
	}
	assert.EqualValues(t, 3, calls.Load())
}
