package backend

import (
	"context"

	"github.com/marianadoces/console/internal/domain/models"
)

// GetRawSettings fetches the backend configuration as the stringly
// key -> {value, description} map it is stored as.
func (c *Client) GetRawSettings(ctx context.Context) (map[string]models.SettingEntry, error) {
	raw, err := doGet[map[string]models.SettingEntry](ctx, c, "/config", nil)
	if err != nil {
		return nil, err
	}
	return *raw, nil
}

// GetSettings fetches the backend configuration and decodes it into typed
// settings with defaults applied entry by entry.
func (c *Client) GetSettings(ctx context.Context) (models.Settings, error) {
	raw, err := c.GetRawSettings(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	return models.SettingsFromMap(raw), nil
}

// UpdateSetting writes one configuration entry back to the backend.
func (c *Client) UpdateSetting(ctx context.Context, key, value, description string) error {
	body := map[string]string{"key": key, "value": value}
	if description != "" {
		body["description"] = description
	}
	_, err := doPut[struct{}](ctx, c, "/config", body)
	return err
}
