package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrices(t *testing.T) {
	cat := Default()

	cases := []struct {
		platform Platform
		service  Service
		amount   string
		price    int
	}{
		{PlatformTelegram, ServiceReaction, "1000", 100},
		{PlatformTelegram, ServicePostView, "100000", 1800},
		{PlatformTelegram, ServiceSubscribers, "5000", 1450},
		{PlatformTikTok, ServiceFollowers, "1000", 700},
		{PlatformTikTok, ServiceVideoView, "10000", 500},
		{PlatformInstagram, ServiceLike, "20000", 2800},
	}

	for _, tc := range cases {
		price, ok := cat.Price(tc.platform, tc.service, tc.amount)
		require.True(t, ok, "%s/%s/%s must be configured", tc.platform, tc.service, tc.amount)
		assert.Equal(t, tc.price, price)
	}
}

func TestEveryMenuPathHasAPrice(t *testing.T) {
	cat := Default()

	for _, p := range cat.Platforms() {
		services := cat.Services(p)
		require.NotEmpty(t, services, "platform %s is listed but has no services", p)

		for _, s := range services {
			packages := cat.Packages(p, s)
			require.NotEmpty(t, packages, "%s/%s is listed but has no packages", p, s)

			for _, pkg := range packages {
				price, ok := cat.Price(p, s, pkg.Amount)
				require.True(t, ok)
				assert.Equal(t, pkg.Price, price)
			}
		}
	}
}

func TestPlatformsOmitEmptyPlatforms(t *testing.T) {
	cat := Default()

	assert.NotContains(t, cat.Platforms(), PlatformYouTube)
	assert.Empty(t, cat.Services(PlatformYouTube))
}

func TestPriceRejectsStaleAmount(t *testing.T) {
	cat := Default()

	_, ok := cat.Price(PlatformTikTok, ServiceFollowers, "2000")
	assert.False(t, ok, "amount absent from the live catalog must not resolve")

	_, ok = cat.Price(PlatformYouTube, ServiceLike, "500")
	assert.False(t, ok)
}

func TestLabelRoundTrip(t *testing.T) {
	cat := Default()

	for _, p := range cat.Platforms() {
		got, ok := PlatformFromLabel(p.Label())
		require.True(t, ok)
		assert.Equal(t, p, got)

		for _, s := range cat.Services(p) {
			got, ok := ServiceFromLabel(s.Label())
			require.True(t, ok)
			assert.Equal(t, s, got)
		}
	}
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "TikTok", PlatformTikTok.Title())
	assert.Equal(t, "Post View", ServicePostView.Title())
	assert.Equal(t, "Followers", ServiceFollowers.Title())
}
