// Package phrase picks the short mood line shown next to the temperature and
// localizes it for the viewer's country.
package phrase

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"

	"golang.org/x/text/language"

	"github.com/i474232898/weather-emissions-dashboard/internal/translate"
	"github.com/i474232898/weather-emissions-dashboard/internal/weather"
)

// Category buckets a temperature in °C.
type Category string

const (
	Hot  Category = "hot"
	Warm Category = "warm"
	Mild Category = "mild"
	Cool Category = "cool"
	Cold Category = "cold"
)

// DefaultLanguage is the language phrases are written in.
const DefaultLanguage = translate.SourceLanguage

var basePhrases = map[Category][]string{
	Hot:  {"🌞 Um dia perfeito para praia!", "🔥 Hora do sorvete!", "☀️ Ideal para piscina!"},
	Warm: {"😊 Perfeito para passeios!", "🌳 Ótimo para picnic!", "🚶‍♂️ Clima ideal!"},
	Mild: {"🧥 Leve um casaco!", "🍂 Bom para caminhadas!", "🌤️ Agradável!"},
	Cool: {"🧣 Ótimo para café!", "📚 Leitura aconchegante!", "🍁 Fresco e gostoso!"},
	Cold: {"❄️ Chocolate quente!", "🔥 Fique aconchegado!", "🧤 Casaco pesado!"},
}

// CategoryFor buckets temp: >=30 hot, >=25 warm, >=18 mild, >=10 cool, else cold.
func CategoryFor(temp int) Category {
	switch {
	case temp >= 30:
		return Hot
	case temp >= 25:
		return Warm
	case temp >= 18:
		return Mild
	case temp >= 10:
		return Cool
	default:
		return Cold
	}
}

// Phrases returns the untranslated phrases for a category.
func Phrases(c Category) []string {
	return append([]string(nil), basePhrases[c]...)
}

// LanguageFor returns the most likely language spoken in an ISO 3166 country.
// Empty or unrecognized codes yield DefaultLanguage.
func LanguageFor(countryCode string) string {
	cc := strings.TrimSpace(countryCode)
	if cc == "" {
		return DefaultLanguage
	}
	region, err := language.ParseRegion(cc)
	if err != nil {
		return DefaultLanguage
	}
	tag, err := language.Compose(region)
	if err != nil {
		return DefaultLanguage
	}
	base, conf := tag.Base()
	if conf == language.No {
		return DefaultLanguage
	}
	return base.String()
}

// Generator implements weather.PhraseGenerator.
type Generator struct {
	translator translate.Translator
	pick       func(n int) int
	logger     *slog.Logger
}

// NewGenerator creates a Generator. translator may be nil, in which case
// phrases are always returned in DefaultLanguage.
func NewGenerator(translator translate.Translator, logger *slog.Logger) *Generator {
	return &Generator{
		translator: translator,
		pick:       rand.Intn,
		logger:     logger.With("component", "phrase"),
	}
}

// Generate picks a phrase for temp and translates it into the language of
// countryCode. Translation failures fall back to the untranslated phrase.
func (g *Generator) Generate(ctx context.Context, temp int, countryCode string) string {
	text, _ := g.GenerateWithLanguage(ctx, temp, countryCode)
	return text
}

// GenerateWithLanguage is Generate that also reports the language of the result.
func (g *Generator) GenerateWithLanguage(ctx context.Context, temp int, countryCode string) (string, string) {
	options := basePhrases[CategoryFor(temp)]
	text := options[g.pick(len(options))]

	lang := LanguageFor(countryCode)
	if lang == DefaultLanguage || g.translator == nil {
		return text, DefaultLanguage
	}

	translated, err := g.translator.Translate(ctx, text, lang)
	if err != nil {
		g.logger.Warn("phrase translation failed", "lang", lang, "error", err)
		return text, DefaultLanguage
	}
	return translated, lang
}

var _ weather.PhraseGenerator = (*Generator)(nil)
