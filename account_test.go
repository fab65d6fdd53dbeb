package openload

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/account/info", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		requireCredentials(t, r)

		writeEnvelope(w, 200, "OK", `{
			"extid": "extuserid",
			"email": "jeff@example.com",
			"signup_at": "2015-01-09 23:59:54",
			"storage_left": -1,
			"storage_used": "1024",
			"balance": "10.00",
			"traffic": {"left": -1, "used_24h": 0},
			"reward_points": 42
		}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	info, err := client.AccountInfo()
	require.NoError(t, err)

	assert.Equal(t, "extuserid", info.ExtID)
	assert.Equal(t, "jeff@example.com", info.Email)
	assert.Equal(t, "2015-01-09 23:59:54", info.SignupAt)
	assert.Equal(t, FlexInt(-1), info.StorageLeft)
	assert.Equal(t, FlexInt(1024), info.StorageUsed)
	assert.Equal(t, FlexString("10.00"), info.Balance)
	assert.Equal(t, FlexInt(-1), info.Traffic.Left)
	assert.Equal(t, FlexInt(0), info.Traffic.Used24h)

	// Unknown remote fields stay reachable.
	require.Contains(t, info.Extra, "reward_points")
	assert.Equal(t, float64(42), info.Extra["reward_points"])
}

func TestAccountInfoNumericBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, "OK", `{"balance": 0, "storage_used": 32922117680}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	info, err := client.AccountInfo()
	require.NoError(t, err)

	assert.Equal(t, FlexString("0"), info.Balance)
	assert.Equal(t, FlexInt(32922117680), info.StorageUsed)
	assert.Empty(t, info.Extra)
}

func TestAccountInfoAuthenticationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 403, "Wrong Login/Key", `null`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	info, err := client.AccountInfo()
	assert.Nil(t, info)
	require.True(t, IsAuthentication(err), "expected authentication error, got %v", err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Wrong Login/Key", apiErr.Message)
	assert.Equal(t, 403, apiErr.StatusCode)
}
