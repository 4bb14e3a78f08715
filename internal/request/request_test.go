package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinations_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Destinations
		wantErr bool
	}{
		{"Single", `{"dest_addr":"0712345678"}`, Destinations{"0712345678"}, false},
		{"List", `{"dest_addr":["0712345678","0612345678"]}`, Destinations{"0712345678", "0612345678"}, false},
		{"EmptyList", `{"dest_addr":[]}`, Destinations{}, false},
		{"Missing", `{}`, nil, false},
		{"Null", `{"dest_addr":null}`, nil, false},
		{"Number", `{"dest_addr":712345678}`, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req SendRequest
			err := json.Unmarshal([]byte(tc.body), &req)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, req.DestAddr)
		})
	}
}

func TestBulkRequest_SingleDestination(t *testing.T) {
	var req BulkRequest
	require.NoError(t, json.Unmarshal([]byte(`{"dest_addr":"0712345678","batch_size":5}`), &req))

	assert.Equal(t, Destinations{"0712345678"}, req.DestAddr)
	assert.Equal(t, 5, req.BatchSize)
}
