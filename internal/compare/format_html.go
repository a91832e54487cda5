package compare

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter renders a standalone HTML report
type HTMLFormatter struct{}

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal, code domain.CurrencyCode) string { return FormatMoney(d, string(code)) },
	"rate":  FormatRate,
	"inc":   func(i int) int { return i + 1 },
}).Parse(htmlTemplateSource))

// Format generates an HTML page ranking every jurisdiction
func (h *HTMLFormatter) Format(compSet *ComparisonSet) (string, error) {
	return render("comparison", compSet)
}

// FormatEvaluation generates an HTML page for a single jurisdiction
func (h *HTMLFormatter) FormatEvaluation(ev *Evaluation) (string, error) {
	return render("evaluation", ev)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
