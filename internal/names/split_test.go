package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Parts
	}{
		{
			name:     "single word",
			input:    "Олександр",
			expected: Parts{Single: true, Word: "олександр"},
		},
		{
			name:  "two words produce both orders",
			input: "Taras Shevchenko",
			expected: Parts{
				Standard: NameParts{Surname: "taras", Firstname: "shevchenko"},
				Reversed: NameParts{Surname: "shevchenko", Firstname: "taras"},
			},
		},
		{
			name:  "three words",
			input: "Шевченко Тарас Григорович",
			expected: Parts{
				Standard: NameParts{Surname: "шевченко", Firstname: "тарас григорович"},
				Reversed: NameParts{Surname: "григорович", Firstname: "шевченко тарас"},
			},
		},
		{
			name:     "empty",
			input:    "   ",
			expected: Parts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.input))
		})
	}
}

func TestParts_Empty(t *testing.T) {
	assert.True(t, Split("").Empty())
	assert.False(t, Split("Іван").Empty())
	assert.False(t, Split("Іван Іванов").Empty())
}
