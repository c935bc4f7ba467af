// Package reportservice renders a gathered PlatformInfo for the terminal or
// for other programs.
package reportservice

import (
	"errors"
	"fmt"
	"io"
	"strings"

	platformservice "github.com/redjax/sysfacts/internal/services/platformService"
	"github.com/redjax/sysfacts/internal/utils/strutils"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Placeholders used by the human readable formats.
const (
	Unavailable = "unavailable"
	Nil         = "nil"
)

var (
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrUnknownSection = errors.New("unknown report section")
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatTable, FormatJSON, FormatYAML}
}

// IsStructured reports whether format is meant for other programs, so
// nothing else may be written next to it.
func IsStructured(format string) bool {
	switch strutils.Fold(format) {
	case FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Options controls rendering.
type Options struct {
	Format string
	// Text output truncates values wider than this many cells. 0 disables.
	MaxWidth int
}

// Render writes info to w in the requested format.
func Render(w io.Writer, info *platformservice.PlatformInfo, opts Options) error {
	switch strutils.Fold(opts.Format) {
	case "", FormatText:
		return renderText(w, info, opts.MaxWidth)
	case FormatTable:
		return renderTable(w, info)
	case FormatJSON:
		return renderJSON(w, info)
	case FormatYAML:
		return renderYAML(w, info)
	default:
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownFormat, opts.Format, strings.Join(Formats(), ", "))
	}
}

// FilterSections keeps only the named sections, matched case-insensitively
// against section keys or titles. An empty list keeps everything.
func FilterSections(info *platformservice.PlatformInfo, names []string) (*platformservice.PlatformInfo, error) {
	want := strutils.FoldSet(names)
	if len(want) == 0 {
		return info, nil
	}

	out := &platformservice.PlatformInfo{Profile: info.Profile}
	matched := make(map[string]bool)
	for _, sec := range info.Sections {
		for _, name := range []string{sec.Key, sec.Title} {
			if f := strutils.Fold(name); want[f] {
				out.Sections = append(out.Sections, sec)
				matched[f] = true
				break
			}
		}
	}

	for name := range want {
		if !matched[name] && !knownSection(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
		}
	}
	return out, nil
}

// knownSection accepts section keys that exist but were omitted from this
// report, such as ram on a profile without memory facts.
func knownSection(folded string) bool {
	for _, key := range []string{
		platformservice.SectionNetworking,
		platformservice.SectionSystem,
		platformservice.SectionCPU,
		platformservice.SectionRAM,
	} {
		if folded == key {
			return true
		}
	}
	return false
}

// FormatValue renders a single field the way the text and table formats
// print it.
func FormatValue(f platformservice.Field) string {
	if f.Err != nil {
		return Unavailable
	}

	var s string
	switch v := f.Value.(type) {
	case nil:
		return Nil
	case *string:
		if v == nil {
			return Nil
		}
		s = *v
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}

	if f.Unit != "" {
		s += " " + f.Unit
	}
	return s
}
