//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// BodyEdit changes one key of a JSON request body.
type BodyEdit func(m map[string]any)

func Set(key string, value any) BodyEdit {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) BodyEdit {
	return func(m map[string]any) { delete(m, key) }
}

// JSONBody round-trips a request DTO through JSON so tests can send payloads
// the typed struct cannot express, such as missing or malformed fields.
func JSONBody(t *testing.T, dto any, edits ...BodyEdit) map[string]any {
	t.Helper()
	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, edit := range edits {
		edit(body)
	}
	return body
}
