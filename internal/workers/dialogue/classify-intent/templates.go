// internal/workers/dialogue/classify-intent/templates.go
package classifyintent

import "fmt"

// Responses come from a finite bilingual template table. The only
// substitution is the literal number captured from the utterance,
// never free-text generation.
type template struct {
	hi string
	en string
}

func (t template) render(lang string) string {
	if lang == "en" {
		return t.en
	}
	return t.hi
}

func (t template) renderf(lang string, args ...interface{}) string {
	return fmt.Sprintf(t.render(lang), args...)
}

var schemeResponses = map[string]template{
	"farmer": {
		hi: "किसानों के लिए मुख्य योजनाएं हैं: PM किसान सम्मान निधि - ₹6000 सालाना, फसल बीमा योजना, और KCC कार्ड। आपकी कितनी जमीन है?",
		en: "Main schemes for farmers are: PM Kisan Samman Nidhi - ₹6000 annually, Crop Insurance, and KCC Card. How much land do you own?",
	},
	"women": {
		hi: "महिलाओं के लिए योजनाएं: बेटी बचाओ बेटी पढ़ाओ, प्रधानमंत्री मातृ वंदना योजना, और महिला उद्यमिता योजना। आपकी उम्र क्या है?",
		en: "Women schemes: Beti Bachao Beti Padhao, PM Matru Vandana Yojana, and Women Entrepreneurship Scheme. What is your age?",
	},
	"housing": {
		hi: "आवास योजनाएं: PM आवास योजना (शहरी/ग्रामीण), अपना घर योजना। क्या आपके पास पहले से घर है?",
		en: "Housing schemes: PM Awas Yojana (Urban/Rural), Apna Ghar Yojana. Do you already own a house?",
	},
	"generic": {
		hi: "सरकारी योजनाओं की जानकारी के लिए मैं आपकी मदद कर सकता हूं। आप किस क्षेत्र में काम करते हैं - किसान, मजदूर, व्यापारी या छात्र?",
		en: "I can help you with government scheme information. What field do you work in - farmer, laborer, business, or student?",
	},
}

var applicationHelpResponse = template{
	hi: "आवेदन के लिए आपको ये दस्तावेज चाहिए: आधार कार्ड, बैंक पासबुक, आय प्रमाण पत्र। क्या आपके पास ये सब हैं?",
	en: "For application you need: Aadhaar Card, Bank Passbook, Income Certificate. Do you have all these documents?",
}

var askIncomeResponse = template{
	hi: "आपकी मासिक आय के आधार पर अलग योजनाएं हैं। ₹50,000 से कम आय वालों के लिए विशेष योजनाएं हैं। आपकी मासिक आय कितनी है?",
	en: "Different schemes are available based on your monthly income. Special schemes for those earning less than ₹50,000. What is your monthly income?",
}

var askAgeResponse = template{
	hi: "अलग उम्र के लिए अलग योजनाएं हैं। युवाओं के लिए रोजगार योजनाएं, बुजुर्गों के लिए पेंशन योजनाएं हैं। आप कितने साल के हैं?",
	en: "Different age groups have different schemes. Employment schemes for youth, pension schemes for elderly. How old are you?",
}

var incomeContinuationResponse = template{
	hi: "₹%s मासिक आय के लिए आप PM आवास योजना, मुद्रा लोन, और स्वास्थ्य बीमा के लिए eligible हैं। कौन सी योजना में interest है?",
	en: "For ₹%s monthly income, you're eligible for PM Awas Yojana, Mudra Loan, and Health Insurance. Which scheme interests you?",
}

var ageUnderThresholdResponse = template{
	hi: "%s साल की उम्र के लिए स्किल डेवलपमेंट, स्टार्टअप लोन, और रोजगार की योजनाएं हैं। कौन सा क्षेत्र पसंद है?",
	en: "For age %s, there are skill development, startup loans, and employment schemes. Which field do you prefer?",
}

var ageOverThresholdResponse = template{
	hi: "%s साल की उम्र के लिए बिजनेस लोन, आवास योजना, और स्वास्थ्य बीमा की योजनाएं हैं। क्या जानना चाहते हैं?",
	en: "For age %s, there are business loans, housing schemes, and health insurance. What would you like to know?",
}

var greetingResponse = template{
	hi: "नमस्ते! मैं SwarSaathi हूं। मैं आपको सरकारी योजनाओं की जानकारी दे सकता हूं। आप क्या जानना चाहते हैं?",
	en: "Hello! I am SwarSaathi. I can help you with government scheme information. What would you like to know?",
}

var thanksResponse = template{
	hi: "आपका स्वागत है! क्या और कोई योजना के बारे में जानना चाहते हैं?",
	en: "You're welcome! Would you like to know about any other schemes?",
}

var generalResponse = template{
	hi: "मैं समझ गया। क्या आप और कुछ जानना चाहते हैं? आप योजनाओं, पात्रता, या आवेदन प्रक्रिया के बारे में पूछ सकते हैं।",
	en: "I understand. Would you like to know more? You can ask about schemes, eligibility, or application process.",
}
