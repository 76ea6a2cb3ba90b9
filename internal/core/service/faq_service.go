package service

import (
	"github.com/arabshield/platform-api/internal/core/domain"
)

// FAQService answers free-text questions from the fixed rule table.
type FAQService struct {
	rules []domain.FAQRule
}

// NewFAQService returns an FAQService. Pass nil to use the built-in rules.
func NewFAQService(rules []domain.FAQRule) *FAQService {
	if rules == nil {
		rules = DefaultFAQRules()
	}
	return &FAQService{rules: rules}
}

// Answer matches the question against the rule table.
func (s *FAQService) Answer(question string) domain.FAQAnswer {
	return domain.MatchFAQ(s.rules, question)
}

// DefaultFAQRules is the built-in bilingual rule table backing the chat widget.
func DefaultFAQRules() []domain.FAQRule {
	return []domain.FAQRule{
		{
			ID:       "pricing",
			Keywords: []string{"price", "pricing", "cost", "how much", "سعر", "أسعار", "تكلفة"},
			AnswerEN: "Our pricing depends on the service package. Visit the pricing page or contact sales for a custom quote.",
			AnswerAR: "تعتمد أسعارنا على باقة الخدمة. تفضل بزيارة صفحة الأسعار أو تواصل مع فريق المبيعات للحصول على عرض مخصص.",
		},
		{
			ID:       "services",
			Keywords: []string{"service", "services", "offer", "develop", "خدمات", "خدمة", "تطوير"},
			AnswerEN: "We build web and mobile applications, custom dashboards, and provide ongoing maintenance and support.",
			AnswerAR: "نقوم ببناء تطبيقات الويب والجوال ولوحات التحكم المخصصة، ونوفر الصيانة والدعم المستمر.",
		},
		{
			ID:       "support",
			Keywords: []string{"support", "help", "ticket", "problem", "issue", "دعم", "مساعدة", "مشكلة", "تذكرة"},
			AnswerEN: "You can open a support ticket from your dashboard. Our team replies within one business day.",
			AnswerAR: "يمكنك فتح تذكرة دعم من لوحة التحكم الخاصة بك. يرد فريقنا خلال يوم عمل واحد.",
		},
		{
			ID:       "invoices",
			Keywords: []string{"invoice", "payment", "pay", "billing", "فاتورة", "فواتير", "دفع"},
			AnswerEN: "Invoices are available in the billing section of your dashboard, with payment instructions attached.",
			AnswerAR: "الفواتير متاحة في قسم الفواتير بلوحة التحكم الخاصة بك، مع تعليمات الدفع مرفقة.",
		},
		{
			ID:       "account",
			Keywords: []string{"account", "register", "sign up", "login", "حساب", "تسجيل", "دخول"},
			AnswerEN: "You can create an account from the sign-up page. If registrations are temporarily closed, please try again later.",
			AnswerAR: "يمكنك إنشاء حساب من صفحة التسجيل. إذا كان التسجيل مغلقاً مؤقتاً، يرجى المحاولة لاحقاً.",
		},
	}
}
