package stats_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertJSON(t *testing.T, expected string, v any) {
	t.Helper()
	actual, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, expected, string(actual))
}
