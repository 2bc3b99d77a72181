package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
)

const (
	LabelPositive = "Positive"
	LabelNeutral  = "Neutral"
	LabelNegative = "Negative"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// RemoveLinks strips URLs from tweet text so link noise never influences the
// polarity score. Markdown-style links keep their visible text.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// Classify scores free text with VADER and maps the signed compound polarity
// onto a three-way label. Empty or no-match text scores 0 and reads as
// Neutral; Classify never fails.
func Classify(text string) (float64, string) {
	plainText := strings.Join(strings.Fields(RemoveLinks(text)), " ")

	score := analyzer.PolarityScores(plainText).Compound

	var label string
	if score > 0 {
		label = LabelPositive
	} else if score < 0 {
		label = LabelNegative
	} else {
		label = LabelNeutral
	}

	return score, label
}
