package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	err := message.Set(lang, StatusManagedKey, plural.Selectf(1, "%d",
		"=1", "Managing %[2]s node, ignore: %[3]s",
		"other", "Managing %[2]s nodes, ignore: %[3]s",
	))
	if err != nil {
		panic(err)
	}
	message.SetString(lang, StateEnabledKey, "enabled")
	message.SetString(lang, StateDisabledKey, "disabled")

	message.SetString(lang, ErrorDecodeKey, "Error: node list is not valid JSON format: %s")
	message.SetString(lang, ErrorShapeKey, "Error: node list must be an array")
	message.SetString(lang, ErrorUnexpectedKey, "Error: %s")
	message.SetString(lang, ErrorFormatKey, "Formatting error: %s")
}
