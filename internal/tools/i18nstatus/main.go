// Package main reports how much of the Odia catalog is translated.
//
// Every key lives in the English catalog first; a key missing from another
// locale renders in English at runtime, so this report is the list of copy
// the translators still owe.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kalakshetraodisha/website/internal/platform/config"
	i18ncatalog "github.com/kalakshetraodisha/website/internal/platform/i18n/catalog"
)

// errIncomplete is returned by run in -check mode when any locale lacks keys.
var errIncomplete = errors.New("translations incomplete")

type report struct {
	BaseLocale string
	Locales    []localeStatus
}

type localeStatus struct {
	Locale      string
	BaseKeys    int
	Translated  int
	Completion  float64
	Namespaces  []namespaceStatus
	MissingKeys []string
}

type namespaceStatus struct {
	Namespace  string
	BaseKeys   int
	Translated int
	Completion float64
}

type options struct {
	out   string
	check bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, i18ncatalog.LoadEmbedded); err != nil {
		config.Exitf("i18nstatus: %v", err)
	}
}

func run(args []string, stdout io.Writer, load func() (*i18ncatalog.Bundle, error)) error {
	fs := flag.NewFlagSet("i18nstatus", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var opts options
	fs.StringVar(&opts.out, "out", "", "markdown output path (stdout when empty)")
	fs.BoolVar(&opts.check, "check", false, "exit non-zero when a locale is missing keys")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bundle, err := load()
	if err != nil {
		return fmt.Errorf("load i18n catalogs: %w", err)
	}
	rep := buildReport(bundle)
	doc := renderMarkdown(rep)

	if opts.out == "" {
		if _, err := io.WriteString(stdout, doc); err != nil {
			return err
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(opts.out), 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", filepath.Dir(opts.out), err)
		}
		if err := os.WriteFile(opts.out, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.out, err)
		}
		fmt.Fprintf(stdout, "wrote %s\n", opts.out)
	}

	if opts.check {
		for _, locale := range rep.Locales {
			if len(locale.MissingKeys) > 0 {
				return fmt.Errorf("%w: %s is missing %d keys", errIncomplete, locale.Locale, len(locale.MissingKeys))
			}
		}
	}
	return nil
}

func buildReport(bundle *i18ncatalog.Bundle) report {
	base := i18ncatalog.BaseLocale
	baseMessages := bundle.LocaleMessages(base)
	rep := report{BaseLocale: base}

	for _, locale := range bundle.Locales() {
		if locale == base {
			continue
		}
		messages := bundle.LocaleMessages(locale)
		missing := missingKeys(baseMessages, messages)
		status := localeStatus{
			Locale:      locale,
			BaseKeys:    len(baseMessages),
			Translated:  len(baseMessages) - len(missing),
			MissingKeys: missing,
		}
		status.Completion = percent(status.Translated, status.BaseKeys)

		for _, namespace := range bundle.Namespaces(base) {
			baseNS := bundle.NamespaceMessages(base, namespace)
			translated := len(baseNS) - len(missingKeys(baseNS, bundle.NamespaceMessages(locale, namespace)))
			status.Namespaces = append(status.Namespaces, namespaceStatus{
				Namespace:  namespace,
				BaseKeys:   len(baseNS),
				Translated: translated,
				Completion: percent(translated, len(baseNS)),
			})
		}
		rep.Locales = append(rep.Locales, status)
	}
	return rep
}

func renderMarkdown(rep report) string {
	var b strings.Builder
	b.WriteString("# Translation status\n\n")
	fmt.Fprintf(&b, "Source locale: `%s`.\n\n", rep.BaseLocale)
	b.WriteString("| Locale | Keys | Translated | Completion |\n")
	b.WriteString("| --- | ---: | ---: | ---: |\n")
	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %.1f%% |\n", locale.Locale, locale.BaseKeys, locale.Translated, locale.Completion)
	}

	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "\n## `%s`\n\n", locale.Locale)
		b.WriteString("| Section | Keys | Translated | Completion |\n")
		b.WriteString("| --- | ---: | ---: | ---: |\n")
		for _, ns := range locale.Namespaces {
			fmt.Fprintf(&b, "| `%s` | %d | %d | %.1f%% |\n", ns.Namespace, ns.BaseKeys, ns.Translated, ns.Completion)
		}
		if len(locale.MissingKeys) > 0 {
			b.WriteString("\n### Missing\n\n")
			for _, key := range locale.MissingKeys {
				fmt.Fprintf(&b, "- `%s`\n", key)
			}
		}
	}
	return b.String()
}

func missingKeys(base, target map[string]string) []string {
	var out []string
	for key := range base {
		if _, ok := target[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func percent(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
