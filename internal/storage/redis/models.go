package redis

import "boostup-bot/internal/catalog"

// Session is the per-chat draft order plus the wizard step it is
// parked at. It lives only in redis under the session TTL; nothing is
// kept once the order is handed to the operator.
type Session struct {
	Step     string           `json:"step"`
	Platform catalog.Platform `json:"platform,omitempty"`
	Service  catalog.Service  `json:"service,omitempty"`
	Amount   string           `json:"amount,omitempty"`
	Price    int              `json:"price,omitempty"`
	Target   string           `json:"target,omitempty"`
}
