package bench

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := ConfigFrom(testconfig.Conf{})
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	cfg, err = ConfigFrom(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromConfiguration(t *testing.T) {
	conf := testconfig.Conf{
		KeySizes:  "10, 200,3000",
		KeySeed:   42,
		KeyRounds: "5",
		KeyVerify: "false",
	}
	cfg, err := ConfigFrom(conf)
	require.NoError(t, err)
	require.Equal(t, []int{10, 200, 3000}, cfg.Sizes)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, 5, cfg.Rounds)
	require.False(t, cfg.Verify)
}

func TestConfigRejectsInvalidValues(t *testing.T) {
	for _, conf := range []testconfig.Conf{
		{KeySizes: "10,abc"},
		{KeySizes: "-5"},
		{KeySizes: " , "},
		{KeyRounds: 0},
	} {
		_, err := ConfigFrom(conf)
		require.ErrorIs(t, err, ErrInvalidConfig, "conf=%v", conf)
	}
}
