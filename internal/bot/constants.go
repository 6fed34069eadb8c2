package bot

const backButton = "◀️ Back"

// Static bank payment details shown after confirmation. Payments are
// verified manually by the operator, so these are plain display data.
const (
	bankName        = "CBE"
	bankAccount     = "1000123456789"
	bankAccountName = "Zerihun"
	bankPhone       = "0973961645"
)

// Callback payload tags.
const (
	callbackCheckSubscription = "check_subscription"
	callbackConfirm           = "confirm"
	callbackCancel            = "cancel"
	callbackPackagePrefix     = "pkg:"
	callbackBackToServices    = "back:services"
	callbackBackToPackages    = "back:packages"
	callbackDecisionPrefix    = "decision:"
)
