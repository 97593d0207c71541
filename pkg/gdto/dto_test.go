package gdto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Duration FlexInt  `json:"duration"`
		ID       *FlexInt `json:"id"`
	}

	tests := []struct {
		name     string
		body     string
		duration int
		id       *int64
		wantErr  bool
	}{
		{name: "number", body: `{"duration": 2}`, duration: 2},
		{name: "string", body: `{"duration": "3"}`, duration: 3},
		{name: "empty string", body: `{"duration": ""}`, duration: 0},
		{name: "pointer id", body: `{"duration": 1, "id": "1748736000000"}`, duration: 1, id: ptr(1748736000000)},
		{name: "null id", body: `{"duration": 1, "id": null}`, duration: 1},
		{name: "fraction", body: `{"duration": 1.5}`, wantErr: true},
		{name: "words", body: `{"duration": "two"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload

			err := json.Unmarshal([]byte(tt.body), &p)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.duration, p.Duration.Int())

			if tt.id == nil {
				assert.Nil(t, p.ID)
			} else {
				require.NotNil(t, p.ID)
				assert.Equal(t, *tt.id, p.ID.Int64())
			}
		})
	}
}

func ptr(v int64) *int64 {
	return &v
}
