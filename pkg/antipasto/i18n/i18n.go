// Package i18n localizes the menu widget's built-in strings (the page
// indicator, default option labels). Embedding applications can load
// their own message files and switch languages; without any setup every
// lookup falls back to the message's default text.
package i18n

import (
	"encoding/json"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	mu        sync.Mutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

func ensure() {
	if bundle == nil {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		localizer = i18n.NewLocalizer(bundle, language.English.String())
	}
}

// LoadMessageFiles loads translation files (json or toml) into the
// bundle. Message IDs used by the widget: "page_indicator".
func LoadMessageFiles(paths []string) error {
	mu.Lock()
	defer mu.Unlock()
	ensure()

	for _, path := range paths {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return err
		}
	}
	return nil
}

// SetLanguage switches the active locale.
func SetLanguage(lang language.Tag) {
	mu.Lock()
	defer mu.Unlock()
	ensure()
	localizer = i18n.NewLocalizer(bundle, lang.String())
}

// SetWithCode switches the active locale from a BCP 47 code like "es" or
// "pt-BR".
func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Message is an alias for i18n.Message so callers don't need to import
// go-i18n directly.
type Message = i18n.Message

// Localize resolves a message for the active locale, falling back to the
// message's Other text when no translation is loaded.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}

	mu.Lock()
	loc := localizer
	if loc == nil {
		ensure()
		loc = localizer
	}
	mu.Unlock()

	config := &i18n.LocalizeConfig{DefaultMessage: message}
	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := loc.Localize(config)
	if err != nil {
		return message.Other
	}
	return msg
}
