package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/esolll/reviewlens/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	severityHighScore   = 20
	severityMediumScore = 15

	reportFileMode = 0o644
	reportDirMode  = 0o755
)

// Template function helpers. Severity bands follow the criticality score of
// the ranked review, not the per-problem severity.
var templateFuncs = template.FuncMap{
	"severityClass": func(score int) string {
		switch {
		case score >= severityHighScore:
			return "severity-high"
		case score >= severityMediumScore:
			return "severity-medium"
		default:
			return "severity-low"
		}
	},
	"severityLabel": func(score int) string {
		switch {
		case score >= severityHighScore:
			return "КРИТИЧНО"
		case score >= severityMediumScore:
			return "ВАЖНО"
		default:
			return "ВНИМАНИЕ"
		}
	},
	"decisionClass": func(d domain.Decision) string {
		switch d {
		case domain.DecisionBuy:
			return "decision-positive"
		case domain.DecisionNo:
			return "decision-negative"
		default:
			return "decision-neutral"
		}
	},
	"moodClass": func(mood string) string {
		switch strings.ToLower(mood) {
		case "позитивный":
			return "mood-positive"
		case "негативный":
			return "mood-negative"
		default:
			return "mood-neutral"
		}
	},
	"sevClass": func(severity string) string {
		switch strings.ToLower(severity) {
		case "критическая", "высокая":
			return "sev-high"
		case "средняя":
			return "sev-medium"
		default:
			return "sev-low"
		}
	},
	"problemNames": problemNames,
	"inc": func(i int) int {
		return i + 1
	},
}

// problemNames joins at most two matched problem names for a review card.
func problemNames(problems []domain.MatchedProblem) string {
	names := make([]string, 0, 2)

	for _, p := range problems {
		if len(names) == 2 {
			break
		}

		names = append(names, p.Name)
	}

	if len(names) == 0 {
		return "Общие недостатки"
	}

	return strings.Join(names, ", ")
}

// Data carries everything one report needs.
type Data struct {
	ArticleID   string
	Product     *domain.Product
	Analysis    *domain.Analysis
	Decision    domain.RiskDecision
	Ranked      []domain.ScoredReview
	GeneratedAt time.Time
}

// Renderer renders the HTML report and writes it to the report directory.
type Renderer struct {
	reportTmpl *template.Template
	errorTmpl  *template.Template
	reportDir  string
	logger     zerolog.Logger
}

func NewRenderer(reportDir string, logger zerolog.Logger) (*Renderer, error) {
	reportTmpl, err := template.New("report.html").
		Funcs(templateFuncs).
		ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}

	errorTmpl, err := template.New("error.html").ParseFS(templateFS, "templates/error.html")
	if err != nil {
		return nil, fmt.Errorf("parse error template: %w", err)
	}

	return &Renderer{
		reportTmpl: reportTmpl,
		errorTmpl:  errorTmpl,
		reportDir:  reportDir,
		logger:     logger.With().Str("component", "report").Logger(),
	}, nil
}

// RenderHTML renders the full report document.
func (r *Renderer) RenderHTML(w io.Writer, data Data) error {
	if err := r.reportTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	return nil
}

// RenderError renders the minimal substitute page.
func (r *Renderer) RenderError(w io.Writer, articleID string) error {
	if err := r.errorTmpl.Execute(w, struct{ ArticleID string }{ArticleID: articleID}); err != nil {
		return fmt.Errorf("render error page: %w", err)
	}

	return nil
}

// WriteReport renders the report to <reportDir>/<articleID>/report_<articleID>.html
// and returns the path. A rendering failure substitutes the error page so
// the caller can still deliver a file.
func (r *Renderer) WriteReport(data Data) (string, error) {
	dir := filepath.Join(r.reportDir, data.ArticleID)
	if err := os.MkdirAll(dir, reportDirMode); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	var buf bytes.Buffer

	if err := r.RenderHTML(&buf, data); err != nil {
		r.logger.Error().Err(err).Str("article", data.ArticleID).Msg("report render failed, substituting error page")

		buf.Reset()

		if err := r.RenderError(&buf, data.ArticleID); err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("report_%s.html", data.ArticleID))
	if err := os.WriteFile(path, buf.Bytes(), reportFileMode); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return path, nil
}
