package inspect

import (
	"fmt"
	"strings"
	"time"

	"github.com/tr069-model/tr069-go/pkg/model"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes type and access information
	ShowMetadata bool

	// ShowUnset lists parameters that are absent, with their default
	ShowUnset bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		ShowUnset:    false,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatValue formats a parameter value for display, including unit
// conversions and sentinel meanings.
func (f *Formatter) FormatValue(p *model.ParameterDef, value any) string {
	if value == nil {
		return "<unset>"
	}

	switch v := value.(type) {
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = f.FormatValue(p, item)
		}
		return "[" + strings.Join(items, ", ") + "]"

	case string:
		return fmt.Sprintf("%q", v)

	case time.Time:
		return v.Format(time.RFC3339Nano)

	case []byte:
		return model.FormatValue(p.Type, v)

	case int32:
		return f.formatInt64WithUnit(p, int64(v))

	case int64:
		return f.formatInt64WithUnit(p, v)

	case uint32:
		return f.formatUint64WithUnit(p, uint64(v))

	case uint64:
		return f.formatUint64WithUnit(p, v)

	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatInt64WithUnit formats an int64 with optional unit and human-readable conversion.
func (f *Formatter) formatInt64WithUnit(p *model.ParameterDef, v int64) string {
	if meaning, ok := p.SentinelMeaning(v); ok {
		return fmt.Sprintf("%d (%s)", v, meaning)
	}
	if p.Unit == "" {
		return fmt.Sprintf("%d", v)
	}

	base := fmt.Sprintf("%d %s", v, p.Unit)

	switch p.Unit {
	case "seconds":
		return fmt.Sprintf("%s (%s)", base, time.Duration(v)*time.Second)
	case "nanoseconds":
		return fmt.Sprintf("%s (%s)", base, time.Duration(v))
	default:
		return base
	}
}

// formatUint64WithUnit formats a uint64 with optional unit.
func (f *Formatter) formatUint64WithUnit(p *model.ParameterDef, v uint64) string {
	if meaning, ok := p.SentinelMeaning(v); ok {
		return fmt.Sprintf("%d (%s)", v, meaning)
	}
	switch p.Unit {
	case "":
		return fmt.Sprintf("%d", v)
	case "seconds":
		if v < 1<<33 {
			return fmt.Sprintf("%d seconds (%s)", v, time.Duration(v)*time.Second)
		}
	case "bytes":
		return fmt.Sprintf("%d bytes (%s)", v, FormatBytesHumanReadable(v))
	case "percent":
		return fmt.Sprintf("%d%%", v)
	}
	return fmt.Sprintf("%d %s", v, p.Unit)
}

// FormatBytesHumanReadable formats a byte count with binary prefixes.
func FormatBytesHumanReadable(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatAccess formats an access level for display.
func FormatAccess(access model.Access) string {
	switch access {
	case model.AccessReadOnly:
		return "read-only"
	case model.AccessReadWrite:
		return "read-write"
	case model.AccessWrite:
		return "write"
	default:
		return fmt.Sprintf("access(%d)", access)
	}
}

// FormatDataType formats the type of a parameter for display, e.g.
// "string(MACAddress)" or "unsignedInt[]" for a list.
func FormatDataType(p *model.ParameterDef) string {
	s := p.Type.String()
	if p.Named != "" {
		s += "(" + p.Named + ")"
	}
	if p.List {
		s += "[]"
	}
	return s
}

func (f *Formatter) formatParameter(p ParameterInfo) string {
	s := fmt.Sprintf("%s = %s", p.Def.Name, f.FormatValue(p.Def, p.Value))
	if !p.Set && p.Value != nil {
		s += " (default)"
	}
	if f.ShowMetadata {
		s += fmt.Sprintf(" (%s, %s)", FormatDataType(p.Def), FormatAccess(p.Def.Access))
	}
	return s
}

// ParameterRow represents a formatted parameter for display.
type ParameterRow struct {
	Name  string
	Value string
	Type  string
}

// ParameterRows converts CWMP parameter values to display rows.
func ParameterRows(values []model.ParameterValue) []ParameterRow {
	rows := make([]ParameterRow, len(values))
	for i, pv := range values {
		rows[i] = ParameterRow{Name: pv.Name, Value: pv.Value, Type: pv.Type}
	}
	return rows
}

// FormatParameterTable formats a list of parameters as a table.
func (f *Formatter) FormatParameterTable(rows []ParameterRow) string {
	if len(rows) == 0 {
		return "  (no parameters)"
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %s: %s", row.Name, row.Value))
		if f.ShowMetadata && row.Type != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", row.Type))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
