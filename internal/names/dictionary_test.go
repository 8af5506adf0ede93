package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDictionary(t *testing.T) {
	d := DefaultDictionary()
	require.Greater(t, d.Len(), 30)

	assert.True(t, d.Related("Олександр", "Саша"))
	assert.True(t, d.Related("Саша", "Олександр"), "relation holds in either direction")
	assert.True(t, d.Related("Сашко", "Олесь"), "variants of one canonical name are related")
	assert.True(t, d.Related("ТАРАС", "тарасик"))
	assert.False(t, d.Related("Тарас", "Тарас"), "identical names are exact, not variants")
	assert.False(t, d.Related("Тарас", "Петро"))
	assert.False(t, d.Related("", "Петро"))

	assert.Equal(t, []string{"олександр", "олександра"}, d.Canonical("Саша"))
}

func TestDictionary_Forms(t *testing.T) {
	d := DefaultDictionary()

	forms := d.Forms("Бодя")
	assert.Equal(t, []string{"богдан", "бодько"}, forms)
	assert.NotContains(t, forms, "бодя")

	assert.Contains(t, d.Forms("Саша"), "леся", "forms of every canonical name are included")
	assert.Empty(t, d.Forms("Петро Петрович"))
}

func TestParseDictionary(t *testing.T) {
	d, err := ParseDictionary([]byte(`
Остап: [Ося, Остапчик]
`))
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
	assert.Equal(t, []string{"остапчик", "ося"}, d.Variants("Остап"), "sorted bytewise")

	_, err = ParseDictionary([]byte("- not a map"))
	assert.Error(t, err)
}

func TestDictionary_CloneAndMerge(t *testing.T) {
	base := DefaultDictionary()
	before := base.Len()

	extra := NewDictionary()
	extra.Add("Остап", "Ося")

	merged := base.Clone()
	merged.Merge(extra)

	assert.Equal(t, before, base.Len(), "clone must not touch the shared default")
	assert.Equal(t, before+1, merged.Len())
	assert.True(t, merged.Related("Остап", "Ося"))
}
