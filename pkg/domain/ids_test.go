package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "pawmates/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant: IDs must be
// valid, non-empty, non-nil UUIDs.
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseUserID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseUserID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseUserID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseUserID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, UserID(validUUID), id)
	})
}

// TestParseID_TrustBoundary validates parsing rejects hostile input at API
// entry points.
func TestParseID_TrustBoundary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE users;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Empty string", "", true},
		{"Nil UUID", uuid.Nil.String(), true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},
		{"Valid UUID lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePetID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestAllIDTypes_ConsistentBehavior ensures every ID type parses identically.
func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	validUUID := uuid.New().String()
	invalidInputs := []string{"", "invalid", uuid.Nil.String()}

	t.Run("all accept valid UUID", func(t *testing.T) {
		_, errUser := ParseUserID(validUUID)
		_, errPet := ParsePetID(validUUID)
		_, errMatch := ParseMatchID(validUUID)
		_, errCommunity := ParseCommunityID(validUUID)
		_, errPost := ParsePostID(validUUID)
		_, errEvent := ParseEventID(validUUID)

		require.NoError(t, errUser)
		require.NoError(t, errPet)
		require.NoError(t, errMatch)
		require.NoError(t, errCommunity)
		require.NoError(t, errPost)
		require.NoError(t, errEvent)
	})

	for _, input := range invalidInputs {
		t.Run("all reject: "+input, func(t *testing.T) {
			_, errUser := ParseUserID(input)
			_, errPet := ParsePetID(input)
			_, errMatch := ParseMatchID(input)
			_, errCommunity := ParseCommunityID(input)
			_, errPost := ParsePostID(input)
			_, errEvent := ParseEventID(input)

			require.Error(t, errUser)
			require.Error(t, errPet)
			require.Error(t, errMatch)
			require.Error(t, errCommunity)
			require.Error(t, errPost)
			require.Error(t, errEvent)
		})
	}
}

// TestID_JSONRoundTrip ensures IDs serialize as UUID strings, including when
// used as map keys.
func TestID_JSONRoundTrip(t *testing.T) {
	id := NewMatchID()

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"`+id.String()+`"`, string(data))

	var decoded MatchID
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, id, decoded)

	t.Run("map keys", func(t *testing.T) {
		m := map[MatchID][]string{id: {"hello"}}
		data, err := json.Marshal(m)
		require.NoError(t, err)

		var back map[MatchID][]string
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, m, back)
	})

	t.Run("invalid input rejected", func(t *testing.T) {
		var decoded UserID
		assert.Error(t, json.Unmarshal([]byte(`"not-a-uuid"`), &decoded))
	})
}
