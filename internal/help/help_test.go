package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageName(t *testing.T) {
	tests := []struct {
		goName   string
		expected string
	}{
		{"Name", "name_"},
		{"NickName", "nickName_"},
		{"Type", "type_"},
		{"URL", "url_"},
	}
	for _, tt := range tests {
		t.Run(tt.goName, func(t *testing.T) {
			assert.Equal(t, tt.expected, StorageName(tt.goName))
		})
	}
}

func TestStringOrDefault(t *testing.T) {
	assert.Equal(t, "a", StringOrDefault("a", "b"))
	assert.Equal(t, "b", StringOrDefault("", "b"))
}
