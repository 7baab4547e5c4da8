package main

import (
	"RestoFinder/config/database"
	"RestoFinder/config/environment"
	"RestoFinder/config/logger"
	v1 "RestoFinder/routes/v1"
	"RestoFinder/services"
	"RestoFinder/store"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	sugar, err := logger.New(environment.IsProduction())
	if err != nil {
		log.Fatal(err)
	}
	defer sugar.Sync()

	if err := run(sugar); err != nil {
		sugar.Fatalw("Server stopped", "error", err)
	}
}

func run(sugar *zap.SugaredLogger) error {
	ctx := context.Background()

	if environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var fb *database.Firebase
	if environment.GetStoreDriver() == "firestore" || environment.GetAuthProvider() == "firebase" {
		var err error
		fb, err = database.InitFirebase(ctx, sugar)
		if err != nil {
			return err
		}
		defer fb.Close()
	}

	kv, err := database.OpenStore(ctx, fb, sugar)
	if err != nil {
		return err
	}
	defer kv.Close()

	provider, err := newIdentityProvider(ctx, fb, kv)
	if err != nil {
		return err
	}

	seed, err := services.LoadSeedRestaurants(environment.GetSeedFile())
	if err != nil {
		return err
	}

	serviceKeys := environment.GetServiceKeys()
	if len(serviceKeys) == 0 {
		sugar.Warn("No SERVICE_ROLE_KEY or ANON_KEY set, service endpoints will reject every request")
	}

	// Setup Gin router
	r := v1.NewRouter(v1.Dependencies{
		Store:        kv,
		Provider:     provider,
		ServiceKeys:  serviceKeys,
		Seed:         seed,
		AllowOrigins: environment.GetCORSAllowOrigins(),
		Logger:       sugar,
	})

	srv := &http.Server{
		Addr:              ":" + environment.GetPort(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("Server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		sugar.Infow("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newIdentityProvider(ctx context.Context, fb *database.Firebase, kv store.KeyValueStore) (services.IdentityProvider, error) {
	switch provider := environment.GetAuthProvider(); provider {
	case "firebase":
		client, err := fb.Auth(ctx)
		if err != nil {
			return nil, err
		}
		return services.NewFirebaseIdentityProvider(client), nil
	case "local":
		local, err := services.NewLocalIdentityProvider(kv, environment.GetJWTSecret(), environment.GetTokenTTL())
		if err != nil {
			return nil, err
		}
		return local, nil
	default:
		return nil, errors.Errorf("unknown AUTH_PROVIDER %q", provider)
	}
}
