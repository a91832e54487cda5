package compare

import "strings"

// Formatter renders comparison and evaluation results
type Formatter interface {
	Format(compSet *ComparisonSet) (string, error)
	FormatEvaluation(ev *Evaluation) (string, error)
}

// GetFormatterByName returns the formatter for name, or nil if unsupported
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "table", "console", "":
		return &TableFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "json-compact":
		return &JSONFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "html":
		return &HTMLFormatter{}
	}
	return nil
}
