package content

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/prometheus/client_golang/prometheus"

	"forum/internal/domain/models/forum"
	forumSvc "forum/internal/domain/services/forum"
	"forum/internal/service/content/sanitizer"
)

// Service runs the save and display pipelines for post content.
type Service struct {
	sanitizer *sanitizer.HTMLSanitizer
	expander  *Expander
	converter *md.Converter
	metrics   *pipelineMetrics
	logger    *slog.Logger
}

// NewService creates the content service. Pipeline counters are registered
// on reg when it is non-nil.
func NewService(logger *slog.Logger, reg prometheus.Registerer) forumSvc.ContentService {
	return &Service{
		sanitizer: sanitizer.NewHTMLSanitizer(),
		expander:  NewExpander(),
		converter: md.NewConverter("", true, nil),
		metrics:   newPipelineMetrics(reg),
		logger:    logger,
	}
}

// Prepare turns raw editor HTML into the string that gets stored:
// canonicalized, stripped of editor state and passed through the HTML policy.
func (s *Service) Prepare(raw string) string {
	saved := ForSaving(Canonicalize(raw))
	clean := s.sanitizer.Sanitize(saved)
	if clean != saved {
		s.metrics.policyRewrites.Inc()
		s.logger.Debug("html policy rewrote content", "before_bytes", len(saved), "after_bytes", len(clean))
	}
	// The policy writes its own markup style; serialize once more so stored
	// content is always in canonical form.
	out := ForSaving(clean)
	s.metrics.prepared.Inc()
	return out
}

// Render turns stored content into display HTML and its media registry.
func (s *Service) Render(stored string) *forum.Fragment {
	frag := s.expander.Expand(stored)
	for _, m := range frag.Media {
		s.metrics.expanded.WithLabelValues(string(m.Placeholder)).Inc()
	}
	return frag
}

var (
	markdownNoise = regexp.MustCompile("[*_`~#>]+")
	markdownLink  = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
)

// Excerpt returns a plain-text preview of stored content of at most maxRunes
// runes. Media placeholders are left out.
func (s *Service) Excerpt(stored string, maxRunes int) string {
	display := replacePlaceholders(ForDisplay(stored), func(Placeholder) string { return " " })

	text, err := s.converter.ConvertString(display)
	if err != nil {
		s.logger.Warn("excerpt conversion failed", "error", err)
		text = display
	}
	text = markdownLink.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, `\`, "")
	text = markdownNoise.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(text), " ")

	return truncateRunes(text, maxRunes)
}

func truncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return strings.TrimRightFunc(string(runes[:maxRunes-1]), isJSSpace) + "…"
}

type pipelineMetrics struct {
	prepared       prometheus.Counter
	policyRewrites prometheus.Counter
	expanded       *prometheus.CounterVec
}

func newPipelineMetrics(reg prometheus.Registerer) *pipelineMetrics {
	m := &pipelineMetrics{
		prepared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "forum_content_prepared_total",
			Help: "Number of posts passed through the save pipeline",
		}),
		policyRewrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "forum_content_policy_rewrites_total",
			Help: "Number of saves where the HTML policy removed markup",
		}),
		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forum_content_placeholders_expanded_total",
			Help: "Number of media placeholders expanded for display",
		}, []string{"format"}),
	}
	if reg != nil {
		reg.MustRegister(m.prepared, m.policyRewrites, m.expanded)
	}
	return m
}
