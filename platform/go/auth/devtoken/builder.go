// Package devtoken mints unsigned Firebase-shaped ID tokens for local runs,
// CI and tests where AUTH_PROVIDER=dev.
package devtoken

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Params captures the claims of a development token. No environment variables
// are read so the builder stays deterministic for tooling.
type Params struct {
	ProjectID string        // Firebase project id; used for aud and iss
	TenantID  uuid.UUID     // tenantId claim (required)
	UserID    string        // user_id/sub (required)
	Email     string        // email claim (required)
	Name      string        // display name
	ExpiresIn time.Duration // relative expiry; default 1h if zero
	Audience  string        // optional override; defaults to ProjectID
	Issuer    string        // optional override; defaults to https://securetoken.google.com/<projectId>
}

// Build returns a JWT string with alg "none" and no signature. The tenant is
// carried both as a top-level tenantId claim and as firebase.tenant.
func Build(p Params, now time.Time) (string, error) {
	if strings.TrimSpace(p.ProjectID) == "" {
		return "", errors.New("projectID is required")
	}
	if p.TenantID == uuid.Nil {
		return "", errors.New("tenantID is required")
	}
	if strings.TrimSpace(p.UserID) == "" {
		return "", errors.New("userID is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		return "", errors.New("email is required")
	}

	if now.IsZero() {
		now = time.Now().UTC()
	}

	expiresIn := p.ExpiresIn
	if expiresIn == 0 {
		expiresIn = time.Hour
	}

	issuer := p.Issuer
	if strings.TrimSpace(issuer) == "" {
		issuer = fmt.Sprintf("https://securetoken.google.com/%s", p.ProjectID)
	}

	audience := p.Audience
	if strings.TrimSpace(audience) == "" {
		audience = p.ProjectID
	}

	tenantID := p.TenantID.String()
	payload := map[string]interface{}{
		"iss":            issuer,
		"aud":            audience,
		"auth_time":      now.Unix(),
		"user_id":        p.UserID,
		"sub":            p.UserID,
		"iat":            now.Unix(),
		"exp":            now.Add(expiresIn).Unix(),
		"email":          p.Email,
		"email_verified": true,
		"name":           p.Name,
		"tenantId":       tenantID,
		"firebase": map[string]interface{}{
			"identities":       map[string]interface{}{"email": []string{p.Email}},
			"sign_in_provider": "password",
			"tenant":           tenantID,
		},
	}

	headerSegment, err := encodeSegment(map[string]interface{}{"alg": "none", "typ": "JWT"})
	if err != nil {
		return "", err
	}

	payloadSegment, err := encodeSegment(payload)
	if err != nil {
		return "", err
	}

	return headerSegment + "." + payloadSegment, nil
}

func encodeSegment(v interface{}) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
