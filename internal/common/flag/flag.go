package flag

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/habitado/go-condo-billing/internal/config"

	"github.com/Unleash/unleash-client-go/v3"
	"github.com/Unleash/unleash-client-go/v3/api"
	"github.com/Unleash/unleash-client-go/v3/context"
)

var ErrVariantNotFound = fmt.Errorf("variant not found")

type Job struct {
	JobName    string
	Version    string
	Date       string
	BucketName string
	FileName   string
}

// Client is the subset of the unleash client the service depends on.
type Client interface {
	IsEnabled(feature string, options ...unleash.FeatureOption) bool
	GetVariant(feature string, options ...unleash.VariantOption) *api.Variant
	Close() error
}

type Variant[T any] struct {
	Enabled bool
	Value   T
}

func New(cfg *config.Config) (Client, error) {
	c, err := unleash.NewClient(
		unleash.WithAppName(cfg.App.Name),
		unleash.WithEnvironment(cfg.FeatureFlagSDKConfig.Env),
		unleash.WithUrl(cfg.FeatureFlagSDKConfig.URL),
		unleash.WithCustomHeaders(http.Header{"Authorization": {cfg.FeatureFlagSDKConfig.Token}}),
		unleash.WithRefreshInterval(cfg.FeatureFlagSDKConfig.RefreshInterval),
		unleash.WithListener(&unleash.DebugListener{}),
	)
	if err != nil {
		return nil, err
	}
	c.WaitForReady()

	return c, nil
}

// GetVariant returns the typed variant for the given key.
// We use a package function because golang doesn't support generic type parameters in method interfaces
// [link_issue](https://github.com/golang/go/issues/49085)
func GetVariant[T any](c Client, key string) (*Variant[T], error) {
	variant := c.GetVariant(key, unleash.WithVariantContext(context.Context{}))
	if variant == nil {
		return nil, fmt.Errorf("%w: variant for key %s not found", ErrVariantNotFound, key)
	}

	var res T
	if !variant.Enabled {
		return &Variant[T]{
			Enabled: variant.Enabled,
			Value:   res,
		}, nil
	}

	err := json.Unmarshal([]byte(variant.Payload.Value), &res)
	if err != nil {
		return nil, fmt.Errorf("unmarshal variant for key %s failed: %w", key, err)
	}

	return &Variant[T]{
		Enabled: variant.Enabled,
		Value:   res,
	}, nil
}
