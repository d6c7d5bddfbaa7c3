// Package i18n localizes issue codes for command-line output.
package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "path" or "detail").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			msg = "型が不正です"
		case "required":
			msg = "必須項目が不足しています"
		case "parse_error":
			msg = "解析エラー"
		case "unsupported_kind":
			msg = "未対応のタグ種別です"
		case "not_supported":
			msg = "この構文には対応していません"
		case "handler":
			msg = "ハンドラが失敗しました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			msg = "invalid type"
		case "required":
			msg = "required value missing"
		case "parse_error":
			msg = "parse error"
		case "unsupported_kind":
			msg = "unsupported tag kind"
		case "not_supported":
			msg = "syntax not supported"
		case "handler":
			msg = "handler failed"
		}
	}
	if msg == "" {
		msg = code
	}
	return decorate(msg, data)
}

// decorate appends the path and detail entries of data, when present.
func decorate(msg string, data map[string]string) string {
	var b strings.Builder
	b.WriteString(msg)
	if p := data["path"]; p != "" {
		b.WriteString(" (")
		b.WriteString(p)
		b.WriteString(")")
	}
	if d := data["detail"]; d != "" {
		b.WriteString(": ")
		b.WriteString(d)
	}
	return b.String()
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
