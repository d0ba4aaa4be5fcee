package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.com",
		"user+tag@example.com",
	}
	for _, s := range valid {
		assert.True(t, Email(s), "expected valid email: %s", s)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user name@example.com",
	}
	for _, s := range invalid {
		assert.False(t, Email(s), "expected invalid email: %s", s)
	}
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("abcdef"))
	assert.True(t, Password("a much longer password"))
	assert.False(t, Password("abcde"))
	assert.False(t, Password(""))
}

func TestRequired(t *testing.T) {
	assert.True(t, Required("value"))
	assert.False(t, Required(""))
	assert.False(t, Required("   "))
	assert.False(t, Required("\t\n"))
}

func TestPrice(t *testing.T) {
	assert.True(t, Price(0))
	assert.True(t, Price(99.99))
	assert.False(t, Price(-0.01))
}

func TestDiscount(t *testing.T) {
	assert.True(t, Discount(0))
	assert.True(t, Discount(50))
	assert.True(t, Discount(100))
	assert.False(t, Discount(-1))
	assert.False(t, Discount(150))
}

func TestImageFile(t *testing.T) {
	assert.True(t, ImageFile("image/png", 1024))
	assert.True(t, ImageFile("image/jpeg", MaxImageSize))
	assert.True(t, ImageFile("IMAGE/PNG", 1024))

	assert.False(t, ImageFile("image/png", 0))
	assert.False(t, ImageFile("image/png", MaxImageSize+1))
	assert.False(t, ImageFile("application/pdf", 1024))
	assert.False(t, ImageFile("text/html", 1024))
}
