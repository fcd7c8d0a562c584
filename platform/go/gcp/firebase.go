package gcp

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// GetApp creates a Firebase App instance. An empty credentials path falls back to
// Application Default Credentials.
func GetApp(ctx context.Context, credentialsFile string) (*firebase.App, error) {
	var opts []option.ClientOption
	if path := strings.TrimSpace(credentialsFile); path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// InitFirebaseAuth initializes the Firebase App and returns an Auth client used to verify ID tokens.
func InitFirebaseAuth(ctx context.Context, credentialsFile string) (*firebaseauth.Client, error) {
	firebaseApp, err := GetApp(ctx, credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app [%w]", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase auth [%w]", err)
	}

	return fbAuth, nil
}
