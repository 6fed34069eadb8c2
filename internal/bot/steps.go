package bot

// Wizard steps, in forward order. A session parks at one of these
// between inbound events.
const (
	StepPlatformSelect = "platform_select"
	StepServiceSelect  = "service_select"
	StepPackageSelect  = "package_select"
	StepLinkInput      = "link_input"
	StepConfirm        = "confirm"
	StepAwaitingProof  = "awaiting_proof"
)
