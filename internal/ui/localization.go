package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyLauncherTitle       = "launcher_title"
	KeyServerAddress       = "server_address"
	KeyConnect             = "connect"
	KeyLauncherTip         = "launcher_tip"
	KeyHintTitle           = "hint_title"
	KeyEmptyHostMessage    = "empty_host_message"
	KeySettings            = "settings"
	KeyServer              = "server"
	KeyNotConnected        = "not_connected"
	KeyCloseToTray         = "close_to_tray"
	KeyCloseToTrayHint     = "close_to_tray_hint"
	KeyLanguage            = "language"
	KeyResetURL            = "reset_url"
	KeyResetConfirmMessage = "reset_confirm_message"
	KeyReset               = "reset"
	KeyCancel              = "cancel"
	KeyOpenMemos           = "open_memos"
	KeyQuit                = "quit"
)

// LanguageOption pairs a language code with its display label
type LanguageOption struct {
	Code  string
	Label string
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetLanguageOptions returns the selectable languages in display order
func (l *Localization) GetLanguageOptions() []LanguageOption {
	return []LanguageOption{
		{Code: "system", Label: "System Default"},
		{Code: "en", Label: "English"},
		{Code: "zh", Label: "中文"},
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Memos Desktop",
		KeyLauncherTitle:       "Connect to Memos",
		KeyServerAddress:       "Memos address:",
		KeyConnect:             "Connect",
		KeyLauncherTip:         "The server address can be reset later from Settings.",
		KeyHintTitle:           "Hint",
		KeyEmptyHostMessage:    "Please enter an address (e.g. 192.168.1.100:5230)",
		KeySettings:            "Settings",
		KeyServer:              "Server",
		KeyNotConnected:        "Not connected",
		KeyCloseToTray:         "Close to tray",
		KeyCloseToTrayHint:     "Hide the window instead of quitting when it is closed",
		KeyLanguage:            "Language",
		KeyResetURL:            "Reset server address",
		KeyResetConfirmMessage: "The saved address and window layout will be removed. You will be asked to connect again.",
		KeyReset:               "Reset",
		KeyCancel:              "Cancel",
		KeyOpenMemos:           "Open Memos",
		KeyQuit:                "Quit",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:            "Memos Desktop",
		KeyLauncherTitle:       "连接到 Memos",
		KeyServerAddress:       "Memos 地址：",
		KeyConnect:             "连接",
		KeyLauncherTip:         "如需重设地址，可稍后在设置中操作。",
		KeyHintTitle:           "提示",
		KeyEmptyHostMessage:    "请输入地址（如：192.168.1.100:5230）",
		KeySettings:            "设置",
		KeyServer:              "服务器",
		KeyNotConnected:        "未连接",
		KeyCloseToTray:         "关闭到系统托盘",
		KeyCloseToTrayHint:     "关闭窗口时隐藏到托盘而不是退出",
		KeyLanguage:            "语言",
		KeyResetURL:            "重置服务器地址",
		KeyResetConfirmMessage: "将删除已保存的地址和窗口布局，需要重新连接。",
		KeyReset:               "重置",
		KeyCancel:              "取消",
		KeyOpenMemos:           "打开 Memos",
		KeyQuit:                "退出",
	}
}
