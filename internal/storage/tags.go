package storage

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EncodeTags renders tags as a JSON array. A nil slice encodes as "[]".
func EncodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

// DecodeTags reverses EncodeTags. Empty and NULL columns decode to an empty
// slice. Values that are not a well-formed JSON array are rows from the older
// comma-joined format and are split on commas.
func DecodeTags(stored string) []string {
	trimmed := strings.TrimSpace(stored)
	if trimmed == "" || trimmed == "null" {
		return []string{}
	}

	if strings.HasPrefix(trimmed, "[") {
		var tags []string
		if err := json.Unmarshal([]byte(trimmed), &tags); err == nil {
			if tags == nil {
				tags = []string{}
			}
			return tags
		}
	}
	return strings.Split(stored, ",")
}
