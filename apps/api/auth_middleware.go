package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	platformauth "github.com/zenGate-Global/palmyra-timetable/platform/go/auth"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/gcp"
)

// buildTokenVerifier selects the ID token verifier for the configured auth provider.
func buildTokenVerifier(ctx context.Context, cfg config, logger *zap.Logger) (platformauth.VerifyFunc, error) {
	switch cfg.AuthProvider {
	case "firebase":
		fbAuth, err := gcp.InitFirebaseAuth(ctx, cfg.FirebaseCredentialsFile)
		if err != nil {
			return nil, err
		}
		return platformauth.FirebaseTokenVerifier(fbAuth), nil
	case "dev":
		logger.Warn("using dev auth middleware; do not use in production")
		return platformauth.UnsignedTokenVerifier(), nil
	default:
		return nil, fmt.Errorf("unsupported AUTH_PROVIDER %q (use firebase or dev)", cfg.AuthProvider)
	}
}

// tenantCredentialExtractor rejects tokens whose tenant claim is not a tenant UUID.
// The claim is normalised to canonical form before it reaches the tenant middleware.
func tenantCredentialExtractor(claims map[string]interface{}) (*platformauth.UserCredentials, error) {
	creds, err := platformauth.DefaultCredentialExtractor(claims)
	if err != nil {
		return nil, err
	}
	if creds.TenantID == nil || strings.TrimSpace(*creds.TenantID) == "" {
		return nil, errors.New("tenant claim required")
	}

	tid, err := uuid.Parse(strings.TrimSpace(*creds.TenantID))
	if err != nil || tid == uuid.Nil {
		return nil, errors.New("tenant claim must be a UUID")
	}
	canonical := tid.String()
	creds.TenantID = &canonical
	return creds, nil
}
