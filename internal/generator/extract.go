package generator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls the JSON object out of a model response, tolerating
// markdown fences and prose around it: everything from the first "{" to
// the last "}" is taken.
func ExtractJSON(text string) (json.RawMessage, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}
	return json.RawMessage(text[start : end+1]), nil
}
