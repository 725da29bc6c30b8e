package translate

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"RentRate/internal/core/translations"
)

// Languages the detector considers. Matches the set the review UI offers a
// translate affordance for; adding a language here loads one more statistical
// model at startup.
var detectorLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Polish,
	lingua.Ukrainian,
	lingua.Russian,
	lingua.Dutch,
}

// Detector wraps a lingua language detector behind the core Detector
// interface. The statistical models are loaded once at construction.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector with preloaded models for the supported
// language set.
func NewDetector() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(detectorLanguages...).
		WithPreloadedLanguageModels().
		Build()

	return &Detector{detector: detector}
}

// Detect returns the most probable language of text with a confidence score
// and the full ranked candidate list. Returns ErrDetectionUnavailable when
// lingua cannot match the text against any known language.
func (d *Detector) Detect(text string) (*translations.Detection, error) {
	text = strings.TrimSpace(text)

	best, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return nil, translations.ErrDetectionUnavailable
	}

	values := d.detector.ComputeLanguageConfidenceValues(text)
	candidates := make([]translations.Candidate, 0, len(values))
	confidence := 0.0
	for _, v := range values {
		code := isoCode(v.Language())
		candidates = append(candidates, translations.Candidate{
			Lang: code,
			Prob: v.Value(),
		})
		if v.Language() == best {
			confidence = v.Value()
		}
	}

	return &translations.Detection{
		Language:   isoCode(best),
		Confidence: confidence,
		Candidates: candidates,
	}, nil
}

func isoCode(lang lingua.Language) string {
	return strings.ToLower(lang.IsoCode639_1().String())
}
