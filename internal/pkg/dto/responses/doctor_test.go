package responses

import (
	"testing"

	"internistika-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginResult_Serialization(t *testing.T) {
	t.Run("failure omits token and renders doctor null", func(t *testing.T) {
		body, err := json.Marshal(&LoginResult{
			Status:  404,
			Message: "No doctor exists with the email specified.",
		})
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &decoded))

		assert.NotContains(t, decoded, "token")
		assert.NotContains(t, decoded, "Status")
		assert.Contains(t, decoded, "doctor")
		assert.Nil(t, decoded["doctor"])
	})

	t.Run("success carries token and doctor", func(t *testing.T) {
		body, err := json.Marshal(&LoginResult{
			Status:  200,
			Message: "Log in successful!",
			Token:   "signed-token",
			Doctor:  &models.Doctor{Email: "ada@clinic.test"},
		})
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &decoded))

		assert.Equal(t, "signed-token", decoded["token"])
		assert.NotNil(t, decoded["doctor"])
	})
}
