package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	json "github.com/json-iterator/go"
	"github.com/sense-social/sense/cli/pkg/config"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
	FormatText  OutputFormat = "text"
	FormatYAML  OutputFormat = "yaml"
)

// Field is one labelled value of a record. Records keep field order.
type Field struct {
	Key   string
	Value interface{}
}

var out io.Writer = color.Output

// SetWriter redirects all output, returning the previous writer
func SetWriter(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Writer returns the current output writer
func Writer() io.Writer {
	return out
}

// GetOutputFormat returns the configured output format
func GetOutputFormat() OutputFormat {
	switch config.GetString("output.format") {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// ValidateOutputFormat checks if format is valid
func ValidateOutputFormat(format string) bool {
	switch OutputFormat(format) {
	case FormatJSON, FormatTable, FormatText, FormatYAML:
		return true
	}
	return false
}

// IsStructured reports whether the configured format is machine readable
func IsStructured() bool {
	f := GetOutputFormat()
	return f == FormatJSON || f == FormatYAML
}

// Print writes data in a structured format. Text and table fall back to
// indented JSON, since data has no natural columns.
func Print(data interface{}) error {
	switch GetOutputFormat() {
	case FormatYAML:
		return printYAML(data)
	default:
		return printJSON(data)
	}
}

// PrintList writes a collection. Table and text formats use headers and
// rows; structured formats encode data itself.
func PrintList(data interface{}, headers []string, rows [][]string) error {
	switch GetOutputFormat() {
	case FormatJSON:
		return printJSON(data)
	case FormatYAML:
		return printYAML(data)
	default:
		printTable(headers, rows)
		return nil
	}
}

// PrintRecord writes a single record as aligned key/value lines, or encodes
// data for structured formats.
func PrintRecord(title string, data interface{}, fields []Field) error {
	switch GetOutputFormat() {
	case FormatJSON:
		return printJSON(data)
	case FormatYAML:
		return printYAML(data)
	case FormatTable:
		rows := make([][]string, 0, len(fields))
		for _, f := range fields {
			rows = append(rows, []string{f.Key, fmt.Sprintf("%v", f.Value)})
		}
		printTable([]string{"Field", "Value"}, rows)
		return nil
	default:
		return printRecordText(title, fields)
	}
}

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(out, msg+"\n", args...)
}

// PrintError prints an error message
func PrintError(msg string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(out, "Error: "+msg+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	color.New(color.FgCyan).Fprintf(out, msg+"\n", args...)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(out, "Warning: "+msg+"\n", args...)
}

// Println writes plain text
func Println(a ...interface{}) {
	fmt.Fprintln(out, a...)
}

func printJSON(data interface{}) error {
	s, err := FormatAsPrettyJSON(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s)
	return nil
}

func printYAML(data interface{}) error {
	s, err := FormatAsYAML(data)
	if err != nil {
		return err
	}
	fmt.Fprint(out, s)
	return nil
}

func printRecordText(title string, fields []Field) error {
	if title != "" {
		color.New(color.Bold, color.Underline).Fprintln(out, title)
	}

	width := 0
	for _, f := range fields {
		if len(f.Key) > width {
			width = len(f.Key)
		}
	}

	bold := color.New(color.Bold)
	for _, f := range fields {
		bold.Fprintf(out, "%-*s ", width+1, f.Key+":")
		fmt.Fprintf(out, "%v\n", f.Value)
	}
	return nil
}

func printTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	bold := color.New(color.Bold)

	if len(headers) > 0 {
		bold.Fprint(w, strings.Join(headers, "\t"))
		fmt.Fprintln(w)
	}
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	w.Flush()
}

// FormatAsJSON converts data to a compact JSON string
func FormatAsJSON(data interface{}) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FormatAsPrettyJSON converts data to an indented JSON string
func FormatAsPrettyJSON(data interface{}) (string, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FormatAsYAML converts data to YAML, using the JSON field names and order
func FormatAsYAML(data interface{}) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return "", err
	}
	blockStyle(&node)

	y, err := yaml.Marshal(&node)
	if err != nil {
		return "", err
	}
	return string(y), nil
}

// blockStyle clears the flow and quoting styles JSON input parses with
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
