package api

import (
	"context"
	"fmt"
)

// FeatureToggle is one platform feature flag and its rollout state.
type FeatureToggle struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	EnabledTenants int    `json:"enabledTenants"`
	IsEnabled      bool   `json:"isEnabled"`
}

func (c *Client) Features(ctx context.Context) ([]FeatureToggle, error) {
	var features []FeatureToggle
	if err := c.Get(ctx, "/api/features", &features); err != nil {
		return nil, err
	}
	return features, nil
}

func (c *Client) UpdateFeature(ctx context.Context, id string, enabled bool) (*FeatureToggle, error) {
	var feature FeatureToggle
	body := map[string]bool{"isEnabled": enabled}
	if err := c.Patch(ctx, fmt.Sprintf("/api/features/%s", id), body, &feature); err != nil {
		return nil, err
	}
	return &feature, nil
}
