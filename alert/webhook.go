package alert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type payload struct {
	Content string `json:"content"`
}

// Send posts msg to a webhook URL as a JSON payload. An empty URL is a
// silent no-op so callers don't have to special-case "no webhook set".
func Send(webhookURL, msg string) error {
	if webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(payload{Content: msg})
	if err != nil {
		return err
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}
