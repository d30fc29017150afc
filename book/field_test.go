package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	valid := []string{"1234567890", "0000000000", "9876543210"}
	for _, raw := range valid {
		phone, err := NewPhone(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, phone.Value())
	}

	invalid := []string{"", "123456789", "12345678901", "12345678a0", "123-456-78", "+123456789"}
	for _, raw := range invalid {
		_, err := NewPhone(raw)
		assert.Error(t, err, raw)
		assert.True(t, IsValidationError(err), raw)
	}
}

func TestPhoneSetRevalidates(t *testing.T) {
	phone, err := NewPhone("1234567890")
	require.NoError(t, err)

	assert.Error(t, phone.Set("not-a-phone"))
	// a failed Set must not clobber the held value
	assert.Equal(t, "1234567890", phone.Value())

	require.NoError(t, phone.Set("0987654321"))
	assert.Equal(t, "0987654321", phone.Value())
}

func TestNewEmail(t *testing.T) {
	valid := []string{"john@example.com", "j.doe@mail.example.org", "a_b@x.io"}
	for _, raw := range valid {
		email, err := NewEmail(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, email.Value())
	}

	invalid := []string{"", "john", "john@", "@example.com", "john@@example.com", "john@example"}
	for _, raw := range invalid {
		_, err := NewEmail(raw)
		assert.Error(t, err, raw)
	}
}

func TestNewBirthday(t *testing.T) {
	birthday, err := NewBirthday("15-01-1990")
	require.NoError(t, err)
	assert.True(t, birthday.IsSet())
	assert.Equal(t, "15-01-1990", birthday.String())

	unset, err := NewBirthday("")
	require.NoError(t, err)
	assert.False(t, unset.IsSet())
	assert.Equal(t, "", unset.String())

	invalid := []string{"1990-01-15", "32-01-1990", "30-02-1990", "15/01/1990", "garbage"}
	for _, raw := range invalid {
		_, err := NewBirthday(raw)
		assert.Error(t, err, raw)
		assert.True(t, IsValidationError(err), raw)
	}
}

func TestNewName(t *testing.T) {
	name, err := NewName("John")
	require.NoError(t, err)
	assert.Equal(t, "John", name.Value())

	for _, raw := range []string{"", "   "} {
		_, err := NewName(raw)
		assert.Error(t, err, "%q", raw)
	}
}

func TestNewAddressPadsMissingComponents(t *testing.T) {
	address := NewAddress([]string{"Ukraine", "Kyiv"})

	require.NotNil(t, address.Country)
	assert.Equal(t, "Ukraine", *address.Country)
	require.NotNil(t, address.City)
	assert.Equal(t, "Kyiv", *address.City)
	assert.Nil(t, address.Street)
	assert.Nil(t, address.House)
	assert.Nil(t, address.Apartment)
}

func TestAddressEqual(t *testing.T) {
	left := NewAddress([]string{"Ukraine", "Kyiv", "Khreshchatyk"})
	right := NewAddress([]string{"Ukraine", "Kyiv", "Khreshchatyk"})
	assert.True(t, left.Equal(right))

	other := NewAddress([]string{"Ukraine", "Lviv"})
	assert.False(t, left.Equal(other))

	assert.True(t, Address{}.IsZero())
	assert.False(t, left.IsZero())
	assert.True(t, Address{}.Equal(NewAddress(nil)))
}
