package action

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/provider"
)

type Style string

const (
	StyleStandard Style = "standard"
	StyleFluent   Style = "fluent"
	StyleFormal   Style = "formal"
	StyleSimple   Style = "simple"
	StyleCreative Style = "creative"
	StyleShorten  Style = "shorten"
	StyleExpand   Style = "expand"
)

var styleInstructions = map[Style]string{
	StyleStandard: "Paraphrase the text using different wording while keeping its meaning.",
	StyleFluent:   "Rewrite the text so it reads naturally and fluently. Fix awkward phrasing and grammar.",
	StyleFormal:   "Rewrite the text in a formal and professional tone.",
	StyleSimple:   "Rewrite the text with plain words and short sentences that are easy to understand.",
	StyleCreative: "Rewrite the text with fresh and expressive wording while keeping its meaning.",
	StyleShorten:  "Rewrite the text as concisely as possible without losing key information.",
	StyleExpand:   "Rewrite the text with more detail and explanation while keeping its meaning.",
}

// Styles lists the supported paraphrase styles in a stable order.
func Styles() []Style {
	return []Style{
		StyleStandard,
		StyleFluent,
		StyleFormal,
		StyleSimple,
		StyleCreative,
		StyleShorten,
		StyleExpand,
	}
}

type ParaphraseRequest struct {
	Text  string
	Style Style
}

// Paraphrase rewrites text in the requested style.
func (s *Service) Paraphrase(ctx context.Context, req ParaphraseRequest) Result[string] {
	ctx, op := s.begin(ctx, "paraphrase")

	text := strings.TrimSpace(req.Text)

	if text == "" {
		return fail[string](op, errdefs.Validation("please enter some text to paraphrase"))
	}

	if s.maxParaphraseLength > 0 && utf8.RuneCountInString(text) > s.maxParaphraseLength {
		return fail[string](op, errdefs.Validation(fmt.Sprintf("the text must not be longer than %d characters", s.maxParaphraseLength)))
	}

	style := req.Style

	if style == "" {
		style = StyleStandard
	}

	if !slices.Contains(Styles(), style) {
		return fail[string](op, errdefs.Validation("unsupported style: "+string(style)))
	}

	op.process()

	if s.completer == nil {
		return fail[string](op, fmt.Errorf("%w: no completer configured", errdefs.ErrConfig))
	}

	temperature := float32(0.7)

	if style == StyleCreative {
		temperature = 1.0
	}

	completion, err := s.completer.Complete(ctx, []provider.Message{
		provider.SystemMessage(paraphrasePrompt(style)),
		provider.UserMessage(text),
	}, &provider.CompleteOptions{
		Temperature: &temperature,
	})

	if err != nil {
		return fail[string](op, classify(err, errdefs.ErrGeneration))
	}

	result := strings.TrimSpace(completion.Text())

	if result == "" {
		return fail[string](op, fmt.Errorf("%w: empty completion", errdefs.ErrGeneration))
	}

	return succeed(op, result)
}

func paraphrasePrompt(style Style) string {
	return styleInstructions[style] + "\n" +
		"Answer in the language of the text. Return only the rewritten text without quotes, titles or explanations."
}
