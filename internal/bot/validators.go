package bot

import (
	"errors"
	"fmt"
	"strings"

	"boostup-bot/internal/catalog"
)

var telegramLinkPrefixes = []string{
	"https://t.me/",
	"http://t.me/",
	"t.me/",
}

var contentLinkPrefixes = map[catalog.Platform][]string{
	catalog.PlatformTikTok: {
		"https://www.tiktok.com/",
		"https://tiktok.com/",
		"https://vm.tiktok.com/",
	},
	catalog.PlatformInstagram: {
		"https://www.instagram.com/",
		"https://instagram.com/",
	},
	catalog.PlatformYouTube: {
		"https://www.youtube.com/",
		"https://youtu.be/",
	},
}

// ValidateTarget checks the free-text order target against the rules
// of the chosen platform and service. The returned error text is shown
// to the user as the re-prompt.
func ValidateTarget(p catalog.Platform, s catalog.Service, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return errors.New("please send a link or username")
	}

	if p == catalog.PlatformTelegram {
		if hasAnyPrefix(target, telegramLinkPrefixes) {
			return nil
		}
		return errors.New("the link must start with https://t.me/ (for example https://t.me/channel_name/123)")
	}

	if strings.HasPrefix(target, "@") && len(target) > 1 {
		return nil
	}
	if s.IsEngagement() && hasAnyPrefix(target, contentLinkPrefixes[p]) {
		return nil
	}
	if s.IsEngagement() {
		return fmt.Errorf("send a username starting with @ or a %s content link", p.Title())
	}
	return errors.New("the username must start with @ (for example @username)")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
