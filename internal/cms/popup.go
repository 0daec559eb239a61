package cms

import "context"

// PopupSettings controls the first-visit inquiry popup. ShowDelayMS is how
// long after page load the popup appears; the backend may omit it.
type PopupSettings struct {
	IsActive    bool   `json:"is_active"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	ShowDelayMS int    `json:"show_delay_ms"`
	ImageURL    string `json:"image_url"`
}

// DefaultPopupDelayMS applies when the backend leaves show_delay_ms unset.
const DefaultPopupDelayMS = 2000

// GetPopupSettings fetches the popup configuration. A zero ShowDelayMS is
// normalized to the default delay.
func (c *Client) GetPopupSettings(ctx context.Context) (PopupSettings, error) {
	var s PopupSettings
	if err := c.getJSON(ctx, "/api/marketing/popup-settings/", nil, &s); err != nil {
		return PopupSettings{}, err
	}
	if s.ShowDelayMS <= 0 {
		s.ShowDelayMS = DefaultPopupDelayMS
	}
	s.ImageURL = c.BuildMediaURL(s.ImageURL)
	return s, nil
}
