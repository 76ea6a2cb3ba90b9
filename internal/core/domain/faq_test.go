package domain

import "testing"

func testRules() []FAQRule {
	return []FAQRule{
		{ID: "pricing", Keywords: []string{"price", "cost", "سعر"}, AnswerEN: "pricing answer", AnswerAR: "إجابة الأسعار"},
		{ID: "support", Keywords: []string{"help", "support", "ticket"}, AnswerEN: "support answer", AnswerAR: "إجابة الدعم"},
	}
}

func TestMatchFAQ_BestScoringRuleWins(t *testing.T) {
	got := MatchFAQ(testRules(), "I need help with a support ticket")
	if !got.Matched || got.RuleID != "support" {
		t.Fatalf("expected support rule, got %+v", got)
	}
	if got.AnswerEN != "support answer" {
		t.Fatalf("unexpected answer: %s", got.AnswerEN)
	}
}

func TestMatchFAQ_CaseInsensitive(t *testing.T) {
	got := MatchFAQ(testRules(), "What is the PRICE?")
	if !got.Matched || got.RuleID != "pricing" {
		t.Fatalf("expected pricing rule, got %+v", got)
	}
}

func TestMatchFAQ_ArabicKeywords(t *testing.T) {
	got := MatchFAQ(testRules(), "كم سعر الخدمة؟")
	if !got.Matched || got.RuleID != "pricing" {
		t.Fatalf("expected pricing rule for Arabic question, got %+v", got)
	}
	if got.AnswerAR == "" {
		t.Fatalf("expected Arabic answer")
	}
}

func TestMatchFAQ_NoMatchYieldsFallback(t *testing.T) {
	got := MatchFAQ(testRules(), "completely unrelated question")
	if got.Matched || got.RuleID != "" {
		t.Fatalf("expected fallback, got %+v", got)
	}
	if got.AnswerEN == "" || got.AnswerAR == "" {
		t.Fatalf("fallback must carry both languages")
	}
}

func TestMatchFAQ_EmptyQuestion(t *testing.T) {
	if got := MatchFAQ(testRules(), "   "); got.Matched {
		t.Fatalf("blank question should not match, got %+v", got)
	}
}
