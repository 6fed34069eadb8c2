package catalog

import "strings"

// Platform is an internal tag for a supported social network. Handlers
// never branch on display labels, only on these tags.
type Platform string

// Service is an internal tag for a boosting service kind.
type Service string

const (
	PlatformTelegram  Platform = "telegram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
)

const (
	ServiceReaction    Service = "reaction"
	ServicePostView    Service = "post_view"
	ServiceSubscribers Service = "subscribers"
	ServiceFollowers   Service = "followers"
	ServiceLike        Service = "like"
	ServiceVideoView   Service = "video_view"
)

// Package is one purchasable tier: an amount of the service and its
// price in birr.
type Package struct {
	Amount string
	Price  int
}

type serviceEntry struct {
	service  Service
	packages []Package
}

type platformEntry struct {
	platform Platform
	services []serviceEntry
}

// Catalog is the static platform → service → package price sheet.
// Loaded once at startup and never mutated. Entries are ordered slices
// so menus render deterministically.
type Catalog struct {
	entries []platformEntry
}

// Default returns the production price sheet.
func Default() *Catalog {
	return &Catalog{entries: []platformEntry{
		{
			platform: PlatformTelegram,
			services: []serviceEntry{
				{service: ServiceReaction, packages: []Package{
					{"500", 50}, {"1000", 100}, {"3000", 300}, {"5000", 500}, {"10000", 1000},
				}},
				{service: ServicePostView, packages: []Package{
					{"500", 15}, {"1000", 30}, {"5000", 150}, {"10000", 250},
					{"20000", 480}, {"50000", 990}, {"100000", 1800},
				}},
				{service: ServiceSubscribers, packages: []Package{
					{"500", 150}, {"1000", 290}, {"3000", 870}, {"5000", 1450},
				}},
			},
		},
		{
			platform: PlatformTikTok,
			services: []serviceEntry{
				{service: ServiceFollowers, packages: []Package{
					{"500", 350}, {"1000", 700}, {"3000", 2100}, {"5000", 3500}, {"10000", 7000},
				}},
				{service: ServiceLike, packages: []Package{
					{"500", 110}, {"1000", 220}, {"3000", 500}, {"5000", 700},
					{"10000", 1400}, {"20000", 2800},
				}},
				{service: ServiceVideoView, packages: []Package{
					{"1000", 50}, {"5000", 250}, {"10000", 500},
				}},
			},
		},
		{
			platform: PlatformInstagram,
			services: []serviceEntry{
				{service: ServiceFollowers, packages: []Package{
					{"500", 350}, {"1000", 700}, {"3000", 2100}, {"5000", 3500}, {"10000", 7000},
				}},
				{service: ServiceLike, packages: []Package{
					{"500", 110}, {"1000", 220}, {"3000", 500}, {"5000", 700},
					{"10000", 1400}, {"20000", 2800},
				}},
			},
		},
		// YouTube has no configured services yet; it must stay out of
		// the platform menu until packages are added.
		{platform: PlatformYouTube},
	}}
}

// Platforms lists platforms that have at least one purchasable service.
func (c *Catalog) Platforms() []Platform {
	var out []Platform
	for _, pe := range c.entries {
		if len(c.Services(pe.platform)) > 0 {
			out = append(out, pe.platform)
		}
	}
	return out
}

// Services lists the services of a platform that have at least one
// package configured.
func (c *Catalog) Services(p Platform) []Service {
	var out []Service
	for _, pe := range c.entries {
		if pe.platform != p {
			continue
		}
		for _, se := range pe.services {
			if len(se.packages) > 0 {
				out = append(out, se.service)
			}
		}
	}
	return out
}

// Packages returns the price tiers for a (platform, service) pair, in
// menu order. Nil when the pair is not configured.
func (c *Catalog) Packages(p Platform, s Service) []Package {
	for _, pe := range c.entries {
		if pe.platform != p {
			continue
		}
		for _, se := range pe.services {
			if se.service == s {
				return se.packages
			}
		}
	}
	return nil
}

// Price resolves one tier against the live catalog. The boolean is
// false for any amount that is not currently configured, including
// stale amounts replayed from old keyboards.
func (c *Catalog) Price(p Platform, s Service, amount string) (int, bool) {
	for _, pkg := range c.Packages(p, s) {
		if pkg.Amount == amount {
			return pkg.Price, true
		}
	}
	return 0, false
}

var platformLabels = map[Platform]string{
	PlatformTelegram:  "🔵 Telegram",
	PlatformTikTok:    "⚫️ TikTok",
	PlatformYouTube:   "🔴 YouTube",
	PlatformInstagram: "🟣 Instagram",
}

var serviceLabels = map[Service]string{
	ServiceReaction:    "👍 Reaction",
	ServicePostView:    "👁 Post View",
	ServiceSubscribers: "👥 Subscribers",
	ServiceFollowers:   "👥 Followers",
	ServiceLike:        "❤️ Like",
	ServiceVideoView:   "👁 Video View",
}

var platformsByLabel = invert(platformLabels)
var servicesByLabel = invert(serviceLabels)

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Label returns the emoji-decorated button text for the platform.
func (p Platform) Label() string { return platformLabels[p] }

// Title returns the plain display name, e.g. "TikTok".
func (p Platform) Title() string { return stripEmoji(platformLabels[p]) }

// Label returns the emoji-decorated button text for the service.
func (s Service) Label() string { return serviceLabels[s] }

// Title returns the plain display name, e.g. "Post View".
func (s Service) Title() string { return stripEmoji(serviceLabels[s]) }

// IsEngagement reports whether the service targets a piece of content
// rather than an account, which widens target validation to content
// URLs.
func (s Service) IsEngagement() bool {
	return s == ServiceLike || s == ServiceVideoView
}

// PlatformFromLabel translates button text back to a platform tag at
// the transport boundary.
func PlatformFromLabel(label string) (Platform, bool) {
	p, ok := platformsByLabel[label]
	return p, ok
}

// ServiceFromLabel translates button text back to a service tag at the
// transport boundary.
func ServiceFromLabel(label string) (Service, bool) {
	s, ok := servicesByLabel[label]
	return s, ok
}

func stripEmoji(label string) string {
	if _, rest, found := strings.Cut(label, " "); found {
		return rest
	}
	return label
}
