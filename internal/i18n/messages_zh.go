package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.SimplifiedChinese

	message.SetString(lang, StatusManagedKey, "管理 %[2]s 个节点，忽略状态: %[3]s")
	message.SetString(lang, StateEnabledKey, "启用")
	message.SetString(lang, StateDisabledKey, "禁用")

	message.SetString(lang, ErrorDecodeKey, "错误：节点列表不是有效的JSON格式: %s")
	message.SetString(lang, ErrorShapeKey, "错误：节点列表必须是数组格式")
	message.SetString(lang, ErrorUnexpectedKey, "错误: %s")
	message.SetString(lang, ErrorFormatKey, "格式化错误: %s")
}
