package database

import (
	"RestoFinder/config/environment"
	"context"
	"encoding/base64"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Firebase bundles the clients created from one Firebase app
type Firebase struct {
	App             *firebase.App
	FirestoreClient *firestore.Client
	AuthClient      *auth.Client
}

// InitFirebase initializes the Firebase app with Firestore and Auth clients.
// Credentials come base64 encoded in FIREBASE_CREDENTIALS_BASE64.
func InitFirebase(ctx context.Context, logger *zap.SugaredLogger) (*Firebase, error) {
	encodedCredentials := environment.GetFirebaseKey()
	if encodedCredentials == "" {
		return nil, errors.New("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	}

	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode Firebase credentials")
	}

	projectID := environment.GetFirebaseProjectID()
	if projectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID environment variable is missing")
	}

	config := &firebase.Config{
		ProjectID: projectID,
	}
	app, err := firebase.NewApp(ctx, config, option.WithCredentialsJSON(decodedCredentials))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	fb := &Firebase{App: app}

	logger.Infow("Firebase app initialized", "projectId", projectID)
	return fb, nil
}

// Firestore returns the Firestore client, creating it on first use.
func (f *Firebase) Firestore(ctx context.Context) (*firestore.Client, error) {
	if f.FirestoreClient != nil {
		return f.FirestoreClient, nil
	}
	client, err := f.App.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}
	f.FirestoreClient = client
	return client, nil
}

// Auth returns the Firebase Auth client, creating it on first use.
func (f *Firebase) Auth(ctx context.Context) (*auth.Client, error) {
	if f.AuthClient != nil {
		return f.AuthClient, nil
	}
	client, err := f.App.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase Auth client")
	}
	f.AuthClient = client
	return client, nil
}

func (f *Firebase) Close() error {
	if f.FirestoreClient != nil {
		return f.FirestoreClient.Close()
	}
	return nil
}
