package settings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/authkeeper/internal/errs"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	in := Settings{
		"settings.client.require-proof-key":          false,
		"settings.client.require-authorization-consent": true,
		"settings.token.access-token-time-to-live":   300.0,
		"name":                                       "Ünïcødé клиент",
		"nested": map[string]any{
			"list":  []any{"a", 1.5, true, nil},
			"inner": map[string]any{"k": "v"},
		},
		"nothing": nil,
	}

	text, err := Encode(in)
	require.NoError(t, err)

	out, err := Decode(text)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEncode_NilAndEmpty(t *testing.T) {
	t.Parallel()

	for _, s := range []Settings{nil, {}} {
		text, err := Encode(s)
		require.NoError(t, err)
		require.Equal(t, "{}", text)

		out, err := Decode(text)
		require.NoError(t, err)
		require.NotNil(t, out)
		require.Empty(t, out)
	}
}

func TestEncodeDecode_NumberKindsSurvive(t *testing.T) {
	t.Parallel()

	in := Settings{
		"ttl":      int64(300),
		"big":      int64(1<<53 + 1),
		"negative": int64(-42),
		"huge":     uint64(math.MaxUint64),
		"whole":    300.0,
		"ratio":    0.25,
		"tiny":     1e-300,
		"nested": map[string]any{
			"list":  []any{int64(1<<62 + 3), 2.0, "x"},
			"inner": map[string]any{"max": int64(math.MaxInt64)},
		},
	}

	text, err := Encode(in)
	require.NoError(t, err)
	require.Contains(t, text, `"big":9007199254740993`)
	require.Contains(t, text, `"whole":300.0`)

	out, err := Decode(text)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEncode_IntegerKindsDecodeAsInt64(t *testing.T) {
	t.Parallel()

	text, err := Encode(Settings{"int": 3600, "int32": int32(7), "uint8": uint8(9), "f32": float32(1.5)})
	require.NoError(t, err)

	out, err := Decode(text)
	require.NoError(t, err)
	require.Equal(t, Settings{"int": int64(3600), "int32": int64(7), "uint8": int64(9), "f32": 1.5}, out)
}

func TestEncode_NonFiniteFloat(t *testing.T) {
	t.Parallel()

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Encode(Settings{"f": f})
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	}
}

func TestDecode_PlainIntegersFromForeignWriters(t *testing.T) {
	t.Parallel()

	out, err := Decode(`{"ttl": 300, "ratio": 1.5e2}`)
	require.NoError(t, err)
	require.Equal(t, Settings{"ttl": int64(300), "ratio": 150.0}, out)
}

func TestEncode_TypedCollectionsAreWidened(t *testing.T) {
	t.Parallel()

	text, err := Encode(Settings{
		"scopes": []string{"openid", "profile"},
		"labels": map[string]string{"env": "prod"},
	})
	require.NoError(t, err)

	out, err := Decode(text)
	require.NoError(t, err)
	require.Equal(t, []any{"openid", "profile"}, out["scopes"])
	require.Equal(t, map[string]any{"env": "prod"}, out["labels"])
}

func TestEncode_UnsupportedValue(t *testing.T) {
	t.Parallel()

	_, err := Encode(Settings{"ch": make(chan int)})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDecode_BlankAndNull(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "null"} {
		out, err := Decode(text)
		require.NoError(t, err, "text %q", text)
		require.Empty(t, out)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"{", "[1,2]", "\"str\"", "{\"a\":}", "not json", "{} {}", "{\"n\":1e999999}", "{\"n\":123456789012345678901234567890}"} {
		_, err := Decode(text)
		require.ErrorIs(t, err, errs.ErrCorruptSettings, "text %q", text)
	}
}

func TestSettings_Get(t *testing.T) {
	t.Parallel()

	s := Settings{"a": "b"}
	v, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, "b", v)

	_, ok = s.Get("missing")
	require.False(t, ok)
}
