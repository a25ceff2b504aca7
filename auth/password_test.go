package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("should verify the original password", func(t *testing.T) {
		req := require.New(t)

		hash, err := HashPassword("CorrectHorseBatteryStaple")
		req.NoError(err)
		req.True(strings.HasPrefix(hash, "$argon2id$"))

		match, err := ComparePassword("CorrectHorseBatteryStaple", hash)
		req.NoError(err)
		req.True(match)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		req := require.New(t)

		hash, err := HashPassword("CorrectHorseBatteryStaple")
		req.NoError(err)

		match, err := ComparePassword("wrong-password", hash)
		req.NoError(err)
		req.False(match)
	})

	t.Run("should salt hashes so equal passwords differ", func(t *testing.T) {
		req := require.New(t)

		first, err := HashPassword("same-password-12")
		req.NoError(err)
		second, err := HashPassword("same-password-12")
		req.NoError(err)

		req.NotEqual(first, second)
	})

	t.Run("should fail on a malformed stored hash", func(t *testing.T) {
		req := require.New(t)

		_, err := ComparePassword("anything", "not-an-encoded-hash")
		req.Error(err)
	})
}
