package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bundle holds flat key/value message catalogs per language, loaded from YAML.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported map[string]struct{}
}

// Load reads <dir>/<lang>.yaml for each supported language. Missing files are
// tolerated for non-fallback locales.
func Load(dir string, fallback string, supported []string) (*Bundle, error) {
	b := &Bundle{
		dict:      map[string]map[string]string{},
		fallback:  fallback,
		supported: map[string]struct{}{},
	}
	if len(supported) == 0 {
		supported = []string{"es", "en"}
	}
	for _, l := range supported {
		b.supported[l] = struct{}{}
		path := filepath.Join(dir, l+".yaml")
		raw, err := os.ReadFile(path)
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b, nil
}

func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.supported))
	for k := range b.supported {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

func (b *Bundle) isSupported(lang string) bool {
	_, ok := b.supported[lang]
	return ok
}

// T returns the translation for key in lang, falling back to the default
// locale and finally the key itself.
func (b *Bundle) T(lang, key string) string {
	if lang != "" {
		if m, ok := b.dict[lang]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Resolve chooses the best supported language from an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	type langPref struct {
		base string
		q    float64
		pos  int
	}
	var prefs []langPref
	for i, raw := range strings.Split(acceptLang, ",") {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		q := 1.0
		if sc := strings.IndexByte(p, ';'); sc != -1 {
			params := strings.TrimSpace(p[sc+1:])
			p = strings.TrimSpace(p[:sc])
			if strings.HasPrefix(params, "q=") {
				if v, err := parseQValue(strings.TrimPrefix(params, "q=")); err == nil {
					q = v
				}
			}
		}
		base := p
		if dash := strings.IndexByte(p, '-'); dash != -1 {
			base = p[:dash]
		}
		prefs = append(prefs, langPref{base: strings.ToLower(base), q: q, pos: i})
	}
	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].q == prefs[j].q {
			return prefs[i].pos < prefs[j].pos
		}
		return prefs[i].q > prefs[j].q
	})
	for _, lp := range prefs {
		if b.isSupported(lp.base) {
			return lp.base
		}
	}
	return b.fallback
}

// parseQValue parses a qvalue per RFC 7231, clamped to [0, 1].
func parseQValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return v, nil
}
