package integration_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func executeSQLFile(t testing.TB, db *pgxpool.Pool, path string) {
	sql, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), string(sql))
	require.NoError(t, err)
}

// authenticatedUserCookies registers the test user if needed, logs in, and
// returns the session cookies for subsequent requests.
func (app *TestApp) authenticatedUserCookies(t testing.TB) []*http.Cookie {
	signupBody := fmt.Sprintf(
		`{"name": %q, "email": %q, "password": %q}`,
		TestUserName, TestUserEmail, TestUserPassword,
	)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(signupBody))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated && rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected signup status: %d", rec.Code)
	}

	loginBody := fmt.Sprintf(`{"email": %q, "password": %q}`, TestUserEmail, TestUserPassword)

	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(loginBody))
	req.Header.Set("Content-Type", "application/json")

	rec = httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "login failed")

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "expected a session cookie after login")

	return cookies
}

// signWebhookPayload produces a Stripe-Signature header for the payload
// using the same scheme Stripe documents: t=<unix>,v1=<hmac-sha256>.
func signWebhookPayload(payload []byte, secret string) string {
	timestamp := time.Now().Unix()

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", timestamp, payload)

	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}
