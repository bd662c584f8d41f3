package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"leadName\": \"Ada\"\n}", PrettyJSON(map[string]any{"leadName": "Ada"}))
	assert.Equal(t, "{}", PrettyJSON(map[string]any{}))
	assert.Contains(t, PrettyJSON(make(chan int)), "<unserializable")
}
