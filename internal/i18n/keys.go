package i18n

// Message keys. Each key is registered for every supported locale.
const (
	// StatusManagedKey formats the success status. Args: count (int, selects
	// the plural form), count as digits (string), state. The digits are printed
	// instead of the int so the count is never grouped.
	StatusManagedKey = "idlist.status.managed"
	StateEnabledKey  = "idlist.state.enabled"
	StateDisabledKey = "idlist.state.disabled"

	// ErrorDecodeKey formats a JSON syntax failure. Args: parser message.
	ErrorDecodeKey = "idlist.error.decode"
	ErrorShapeKey  = "idlist.error.shape"
	// ErrorUnexpectedKey formats any other failure. Args: description.
	ErrorUnexpectedKey = "idlist.error.unexpected"
	// ErrorFormatKey formats a formatter failure. Args: description.
	ErrorFormatKey = "idlist.error.format"
)
