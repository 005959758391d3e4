package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccountSid = "ACaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

var testHandle = entity.ClientHandle{
	AccountSid: testAccountSid,
	Username:   "SKkey",
	Password:   "secret",
}

func TestClient_BaseURL(t *testing.T) {
	assert.Equal(t, "https://api.twilio.com", NewClient(testHandle).BaseURL())

	regional := testHandle
	regional.Region = "stage"
	assert.Equal(t, "https://api.stage.twilio.com", NewClient(regional).BaseURL())

	assert.Equal(t, "http://localhost:1", NewClient(regional, WithBaseURL("http://localhost:1/")).BaseURL())
}

func TestResource_UpdatePhoneNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2010-04-01/Accounts/"+testAccountSid+"/IncomingPhoneNumbers/PN123.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "SKkey", user)
		assert.Equal(t, "secret", pass)
		assert.True(t, strings.HasPrefix(r.UserAgent(), "twilio-cli-go/"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Casper", r.PostForm.Get("FriendlyName"))
		assert.Equal(t, "https://localhost:5000/sms", r.PostForm.Get("SmsUrl"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"sid": "PN123"}`))
	}))
	defer server.Close()

	client := NewClient(testHandle, WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	err := client.IncomingPhoneNumbers()("PN123").Update(context.Background(), entity.Properties{
		{Field: "friendlyName", Value: "Casper"},
		{Field: "smsUrl", Value: "https://localhost:5000/sms"},
	})
	require.NoError(t, err)
}

func TestResource_UpdateAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/ACbbbb.json", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "suspended", r.PostForm.Get("Status"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(testHandle, WithBaseURL(server.URL))
	err := client.Accounts()("ACbbbb").Update(context.Background(), entity.Properties{{Field: "status", Value: "suspended"}})
	require.NoError(t, err)
}

func TestResource_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code": 20404, "message": "The requested resource was not found", "more_info": "https://www.twilio.com/docs/errors/20404", "status": 404}`))
	}))
	defer server.Close()

	client := NewClient(testHandle, WithBaseURL(server.URL))
	err := client.IncomingPhoneNumbers()("PNmissing").Update(context.Background(), entity.Properties{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, 20404, apiErr.Code)
	assert.Equal(t, "The requested resource was not found", err.Error())
}

func TestResource_APIErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := NewClient(testHandle, WithBaseURL(server.URL)).Accounts()("AC1").Update(context.Background(), nil)
	assert.EqualError(t, err, "request failed with status 500")
}
