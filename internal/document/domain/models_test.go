package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.March, 10)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-10"`, string(out))

	var back Date
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, d, back)
}

func TestDateJSONZeroAndNull(t *testing.T) {
	out, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(out))

	var fromEmpty Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &fromEmpty))
	assert.True(t, fromEmpty.IsZero())

	var fromNull Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &fromNull))
	assert.True(t, fromNull.IsZero())

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"10/03/2026"`), &bad))
}

func TestValidateDraft(t *testing.T) {
	err := ValidateDraft(
		Party{Name: "Burn Productions"},
		Party{Name: "Acme Ltd"},
		[]LineItem{{Description: "Shoot", Quantity: 1, Price: 100}},
	)
	assert.NoError(t, err)

	err = ValidateDraft(Party{}, Party{Name: "   "}, nil)
	vErr := AsValidation(err)
	require.NotNil(t, vErr)
	assert.Equal(t, []string{"businessInfo.name", "clientInfo.name", "items"}, vErr.Missing)
}
