package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "john.doe@gmail.com", expected: "j***@gmail.com"},
		{input: "홍길동@email.com", expected: "홍***@email.com"},
		{input: "@email.com", expected: "***@email.com"},
		{input: "invalid", expected: "***@***"},
		{input: "a@b@c", expected: "***@***"},
		{input: "", expected: ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, MaskEmail(tc.input), tc.input)
	}
}

func TestMaskProviderID(t *testing.T) {
	assert.Equal(t, "******6789", MaskProviderID("0123456789"))
	assert.Equal(t, "***", MaskProviderID("abc"))
	assert.Equal(t, "", MaskProviderID(""))
}
