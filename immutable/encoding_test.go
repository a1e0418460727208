package immutable_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/immutable_ive_go/immutable"
)

type team struct {
	Lead immutable.Immutable[person] `yaml:"lead" json:"lead"`
}

func ada(t *testing.T) immutable.Immutable[person] {
	t.Helper()
	w, err := immutable.Create(person{Name: "ada", Age: 36, Friends: []string{"bob"}}, freshRegistry())
	require.NoError(t, err)
	return w
}

func TestYAML_MarshalsSerializedMembersInOrder(t *testing.T) {
	out, err := yaml.Marshal(ada(t))
	require.NoError(t, err)
	assert.Equal(t, "name: ada\nage: 36\nfriends:\n    - bob\n", string(out))
}

func TestYAML_RoundTripInsideStruct(t *testing.T) {
	out, err := yaml.Marshal(team{Lead: ada(t)})
	require.NoError(t, err)

	var got team
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, "ada", immutable.Get(got.Lead, name))
	assert.Equal(t, 36, immutable.Get(got.Lead, age))
	assert.Equal(t, []string{"bob"}, immutable.Get(got.Lead, friends))
}

func TestYAML_MissingMembersKeepDefaults(t *testing.T) {
	var got immutable.Immutable[person]
	require.NoError(t, yaml.Unmarshal([]byte("age: 7\n"), &got))
	assert.Equal(t, 7, immutable.Get(got, age))
	assert.Equal(t, "", immutable.Get(got, name))
}

func TestYAML_RejectsNonMapping(t *testing.T) {
	var got immutable.Immutable[person]
	assert.Error(t, yaml.Unmarshal([]byte("- a\n- b\n"), &got))
}

func TestJSON_RoundTrip(t *testing.T) {
	out, err := json.Marshal(ada(t))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ada","age":36,"friends":["bob"]}`, string(out))

	var got immutable.Immutable[person]
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "ada", immutable.Get(got, name))
	assert.Equal(t, 36, immutable.Get(got, age))
	assert.Equal(t, []string{"bob"}, immutable.Get(got, friends))
}

func TestJSON_RoundTripInsideStruct(t *testing.T) {
	out, err := json.Marshal(team{Lead: ada(t)})
	require.NoError(t, err)

	var got team
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "ada", immutable.Get(got.Lead, name))
}

func TestJSON_BadMemberFailsDecode(t *testing.T) {
	var got immutable.Immutable[person]
	assert.Error(t, json.Unmarshal([]byte(`{"age":"old"}`), &got))
}

func TestJSON_UnmarshalKeepsExistingOptions(t *testing.T) {
	w := ada(t)
	require.NoError(t, json.Unmarshal([]byte(`{"name":"grace"}`), &w))

	assert.Equal(t, "grace", immutable.Get(w, name))
	// fresh instance from creation, not a merge into the old one
	assert.Equal(t, 0, immutable.Get(w, age))
}

func TestJSON_NullLeavesWrapperUnchanged(t *testing.T) {
	w := ada(t)
	require.NoError(t, json.Unmarshal([]byte("null"), &w))
	assert.Equal(t, "ada", immutable.Get(w, name))

	var got team
	require.NoError(t, json.Unmarshal([]byte(`{"lead":null}`), &got))
	assert.Equal(t, "", immutable.Get(got.Lead, name))
}
