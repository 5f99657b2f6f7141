package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{"localhost with port", "localhost:5000", false, "localhost:5000"},
		{"ip with port", "127.0.0.1:8080", false, "127.0.0.1:8080"},
		{"missing port", "localhost", true, ""},
		{"non-numeric port", "localhost:abc", true, ""},
		{"zero port", "localhost:0", true, ""},
		{"bad host", "not-an-ip:8080", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_String_Unset(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
