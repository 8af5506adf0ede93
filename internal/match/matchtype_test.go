package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchType_StringRoundTrip(t *testing.T) {
	for i := 0; i < matchTypeCount; i++ {
		mt := MatchType(i)

		parsed, err := ParseMatchType(mt.String())
		require.NoError(t, err, mt.String())
		assert.Equal(t, mt, parsed)
	}
}

func TestMatchType_Tags(t *testing.T) {
	assert.Equal(t, "exact-match", Exact.String())
	assert.Equal(t, "reversed-order-translit", ReversedOrderTranslit.String())
	assert.Equal(t, "split-name", SplitName.String())
	assert.Equal(t, "MatchType(99)", MatchType(99).String())

	_, err := ParseMatchType("no-such-type")
	assert.Error(t, err)
}

func TestMatchType_Predicates(t *testing.T) {
	assert.True(t, ReversedOrderExact.Reversed())
	assert.False(t, StandardOrderExact.Reversed())
	assert.False(t, MatchType(-1).Valid())
}

func TestMatchType_Text(t *testing.T) {
	text, err := Nickname.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "nickname", string(text))

	var mt MatchType
	require.NoError(t, mt.UnmarshalText([]byte("alias-tag")))
	assert.Equal(t, AliasTag, mt)

	_, err = MatchType(500).MarshalText()
	assert.Error(t, err)
}

func TestWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 100.0, w.Of(Exact))
	assert.Greater(t, w.Of(StandardOrderExact), w.Of(StandardOrderTranslit))
	assert.Greater(t, w.Of(StandardOrderTranslit), w.Of(StandardOrderFuzzy))

	custom := Weights{StandardOrderFuzzy: 50}
	assert.Equal(t, 50.0, custom.Of(StandardOrderFuzzy))
	assert.Equal(t, 95.0, custom.Of(StandardOrderExact))
}
