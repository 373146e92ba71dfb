package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mhartleigh/paydeck/internal/common"
)

// parseIntent decodes the classifier's JSON payload into an IntentResponse.
// Schema validation happens later in ToResult; this only rejects non-JSON
// text and payloads without a type tag.
func parseIntent(content string) (*IntentResponse, error) {
	content = cleanMarkdownWrapper(content)

	var resp IntentResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	if resp.Type == "" {
		return nil, fmt.Errorf("%w: missing type tag", common.ErrMalformedResponse)
	}

	return &resp, nil
}

// cleanMarkdownWrapper strips a markdown code fence some models wrap JSON
// responses in, despite instructions not to.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx != -1 {
			content = content[idx+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	return strings.TrimSpace(content)
}
