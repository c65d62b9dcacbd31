package firebaseauth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// Verifier validates Firebase ID tokens via the Admin SDK and implements the
// ITokenVerifier contract.
type Verifier struct {
	authClient *auth.Client
}

// NewVerifier initializes the Firebase app and its auth client. When
// credentialsFile is empty the SDK falls back to Application Default
// Credentials.
func NewVerifier(ctx context.Context, credentialsFile string) (*Verifier, error) {
	var app *firebase.App
	var err error

	if credentialsFile != "" {
		app, err = firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	} else {
		app, err = firebase.NewApp(ctx, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &Verifier{authClient: authClient}, nil
}

// VerifyIDToken validates the token and extracts the caller identity from its
// claims.
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*usecasecontract.AuthClaims, error) {
	token, err := v.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	claims := &usecasecontract.AuthClaims{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		claims.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		claims.PhotoURL = picture
	}
	return claims, nil
}

var _ usecasecontract.ITokenVerifier = (*Verifier)(nil)
