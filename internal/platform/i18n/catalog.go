package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	apperrors "writingbuddy/internal/platform/errors"
)

//go:embed locales/*.yaml
var locales embed.FS

// supported[0] is the fallback when nothing matches.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.German,
}

var matcher = language.NewMatcher(supported)

// Catalog holds the UI strings of one language.
type Catalog struct {
	tag      language.Tag
	messages map[string]string
}

// New negotiates the best supported language for the requested locales, in
// order of preference. Entries that do not parse are skipped.
func New(requested ...string) (*Catalog, error) {
	tags := make([]language.Tag, 0, len(requested))
	for _, raw := range requested {
		tag, ok := parseLocale(raw)
		if ok {
			tags = append(tags, tag)
		}
	}
	idx := 0
	if len(tags) > 0 {
		_, matched, confidence := matcher.Match(tags...)
		if confidence != language.No {
			idx = matched
		}
	}
	return load(supported[idx])
}

// EnvLocales lists locale candidates from the usual environment variables.
func EnvLocales() []string {
	out := make([]string, 0, 3)
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (c *Catalog) Language() string { return c.tag.String() }

// Message returns the text for key, or the key itself when it is unknown.
func (c *Catalog) Message(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	return key
}

func (c *Catalog) Messagef(key string, args ...any) string {
	return fmt.Sprintf(c.Message(key), args...)
}

func load(tag language.Tag) (*Catalog, error) {
	raw, err := locales.ReadFile("locales/" + tag.String() + ".yaml")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("catalog %s: %w", tag, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", tag, err)
	}
	messages := map[string]string{}
	if err := yaml.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", tag, err)
	}
	return &Catalog{tag: tag, messages: messages}, nil
}

// parseLocale accepts POSIX forms such as "de_CH.UTF-8" as well as BCP 47.
func parseLocale(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return language.Tag{}, false
	}
	return tag, true
}
