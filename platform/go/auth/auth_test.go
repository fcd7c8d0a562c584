package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTenantID(t *testing.T) {
	tenant := "6f1c2b0e-3f55-4c38-9a4e-0d0c4a4f6b11"
	firebaseTenant := "tenant-firebase"

	testCases := []struct {
		name   string
		claims map[string]interface{}
		want   *string
	}{
		{
			name: "top level tenantId wins",
			claims: map[string]interface{}{
				"tenantId": tenant,
				"firebase": map[string]interface{}{"tenant": firebaseTenant},
			},
			want: &tenant,
		},
		{
			name: "firebase tenant claim",
			claims: map[string]interface{}{
				"firebase": map[string]interface{}{"tenant": firebaseTenant},
			},
			want: &firebaseTenant,
		},
		{
			name:   "empty tenantId ignored",
			claims: map[string]interface{}{"tenantId": ""},
			want:   nil,
		},
		{
			name:   "missing tenant",
			claims: map[string]interface{}{},
			want:   nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractTenantID(tc.claims)
			if tc.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, *tc.want, *got)
		})
	}
}

func TestDefaultCredentialExtractor(t *testing.T) {
	creds, err := DefaultCredentialExtractor(map[string]interface{}{
		"user_id":        "planner-7",
		"email":          "planner@school.test",
		"name":           "Timetable Planner",
		"tenantId":       "tenant-dev",
		"email_verified": true,
	})
	require.NoError(t, err)
	require.Equal(t, "planner-7", creds.Id)
	require.Equal(t, "planner@school.test", creds.Email)
	require.True(t, creds.EmailVerified)
	require.NotNil(t, creds.Name)
	require.Equal(t, "Timetable Planner", *creds.Name)
	require.NotNil(t, creds.TenantID)
	require.Equal(t, "tenant-dev", *creds.TenantID)

	anon, err := DefaultCredentialExtractor(map[string]interface{}{})
	require.NoError(t, err)
	require.Equal(t, "unknown-user", anon.Id)
	require.Nil(t, anon.Name)

	_, err = DefaultCredentialExtractor(nil)
	require.Error(t, err)
}

func TestUnsignedTokenVerifier(t *testing.T) {
	payload, err := json.Marshal(map[string]interface{}{"uid": "u-1", "tenantId": "t-1"})
	require.NoError(t, err)
	token := "e30." + base64.RawURLEncoding.EncodeToString(payload)

	claims, err := UnsignedTokenVerifier()(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims["uid"])
	require.Equal(t, "t-1", claims["tenantId"])

	_, err = UnsignedTokenVerifier()(context.Background(), "garbage")
	require.Error(t, err)
}
