package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type Translations map[string]string

const DefaultLocale = "pt"

var (
	mu      sync.RWMutex
	locales = map[string]Translations{
		// Built-in catalog so lookups work before any files are loaded.
		// The prototype's user-facing strings are Portuguese.
		"pt": {
			"auth.invalid_credentials": "Telefone ou senha incorretos.",
			"auth.phone_taken":         "Já existe uma conta com esse telefone.",
			"auth.account_created":     "Conta criada com sucesso! Faça login agora mesmo!",
			"notification.none":        "Nenhuma notificação.",
			"dispatch.open_chat":       "Abrindo chat com o administrador.",
			"dispatch.reorder_prompt":  "Deseja refazer o pedido agora?",
			"dispatch.open_deliveries": "Abrindo entregas.",
		},
		"en": {
			"auth.invalid_credentials": "Incorrect phone or password.",
			"auth.phone_taken":         "An account with this phone already exists.",
			"auth.account_created":     "Account created! You can log in right away.",
			"notification.none":        "No notifications.",
			"dispatch.open_chat":       "Opening chat with the administrator.",
			"dispatch.reorder_prompt":  "Do you want to place the order again?",
			"dispatch.open_deliveries": "Opening deliveries.",
		},
	}
)

// LoadTranslations merges messages.yaml files from per-locale directories
// under localePath over the built-in catalog.
func LoadTranslations(localePath string) error {
	mu.Lock()
	defer mu.Unlock()

	entries, err := os.ReadDir(localePath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locale := entry.Name()
		filePath := filepath.Join(localePath, locale, "messages.yaml")

		data, err := os.ReadFile(filePath)
		if err != nil {
			continue
		}

		var config struct {
			Messages Translations `yaml:"MESSAGES"`
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filePath, err)
		}

		if locales[locale] == nil {
			locales[locale] = Translations{}
		}
		for k, v := range config.Messages {
			locales[locale][k] = v
		}
	}

	return nil
}

// Translate resolves key in the given locale, falling back to the default
// locale and finally to the key itself.
func Translate(locale, key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if trans, ok := locales[locale]; ok {
		if val, ok := trans[key]; ok {
			return val
		}
	}
	if trans, ok := locales[DefaultLocale]; ok {
		if val, ok := trans[key]; ok {
			return val
		}
	}
	return key
}
