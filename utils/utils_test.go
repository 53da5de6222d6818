package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	assert.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestGenerateCertificateNumber(t *testing.T) {
	number := GenerateCertificateNumber()
	assert.True(t, strings.HasPrefix(number, "CERT-"))
	assert.Equal(t, number, strings.ToUpper(number))
	assert.NotEqual(t, number, GenerateCertificateNumber())
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"data", "sql", "analytics"}, SplitTags("Data, SQL ,analytics"))
	assert.Empty(t, SplitTags(""))
	assert.Empty(t, SplitTags(" , ,"))
}
