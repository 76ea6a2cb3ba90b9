package domain

import "strings"

// FAQRule maps a set of keywords to a bilingual canned answer.
type FAQRule struct {
	ID       string
	Keywords []string
	AnswerEN string
	AnswerAR string
}

// FAQAnswer is the matcher result for one question.
type FAQAnswer struct {
	RuleID   string `json:"rule_id,omitempty"`
	AnswerEN string `json:"answer_en"`
	AnswerAR string `json:"answer_ar"`
	Matched  bool   `json:"matched"`
}

// fallbackAnswer is returned when no rule scores above the match threshold.
var fallbackAnswer = FAQAnswer{
	AnswerEN: "Sorry, I don't have an answer for that. Please open a support ticket and our team will get back to you.",
	AnswerAR: "عذراً، لا أملك إجابة على ذلك. يرجى فتح تذكرة دعم وسيتواصل معك فريقنا.",
}

// MatchFAQ scores each rule by the number of its keywords present in the
// question (case-insensitive substring match, which also works for Arabic
// text) and returns the best-scoring answer. Ties go to the earlier rule.
// A question matching no keyword at all yields the fallback answer.
func MatchFAQ(rules []FAQRule, question string) FAQAnswer {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return fallbackAnswer
	}

	bestScore := 0
	var best *FAQRule
	for i := range rules {
		score := 0
		for _, kw := range rules[i].Keywords {
			if kw != "" && strings.Contains(q, strings.ToLower(kw)) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = &rules[i]
		}
	}

	if best == nil {
		return fallbackAnswer
	}
	return FAQAnswer{
		RuleID:   best.ID,
		AnswerEN: best.AnswerEN,
		AnswerAR: best.AnswerAR,
		Matched:  true,
	}
}
