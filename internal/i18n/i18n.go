// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides internationalization support for Keyspect. It uses
// the go-i18n library to load translation files embedded in the binary, so
// user-facing CLI output can be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded translation messages from the locale files.
var bundle *i18n.Bundle

// localizer is used to translate messages into a specific language.
var localizer *i18n.Localizer

// active is the currently selected language tag.
var active string

// Init initializes the i18n bundle and sets up the localizer for a specific
// language. It parses all embedded YAML files from the 'locales' directory.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.ParseMessageFileBytes(data, f.Name())
	}

	active = lang
	localizer = i18n.NewLocalizer(bundle, lang)
}

// T translates a message by its ID. Extra arguments are applied with
// fmt-style formatting against the translated template. If the i18n system
// has not been initialized, it defaults to English; if a translation for the
// given ID is not found, the ID itself is returned as a fallback.
func T(messageID string, args ...interface{}) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the currently active language.
func GetLang() string {
	if active == "" {
		return "en"
	}
	return active
}
