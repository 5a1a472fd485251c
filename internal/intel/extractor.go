// Package intel pulls identifying details out of a caller's transcribed speech.
package intel

import (
	"regexp"
	"strings"
)

const (
	FieldUPIID         = "upi_id"
	FieldPhoneNumber   = "phone_number"
	FieldAccountNumber = "account_number"
	FieldAadhaarNumber = "aadhaar_number"
	FieldBank          = "bank_mentioned"
	FieldScamType      = "scam_type"
	FieldScammerName   = "scammer_name"
	FieldOrganization  = "organization_claimed"
)

// Item is one extracted fact.
type Item struct {
	FieldName  string  `json:"field_name"`
	FieldValue string  `json:"field_value"`
	Confidence float64 `json:"confidence"`
}

var (
	upiPattern     = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z]{2,}`)
	phonePattern   = regexp.MustCompile(`(?:\+91[\s-]?)?[6-9]\d{4}[\s-]?\d{5}`)
	accountPattern = regexp.MustCompile(`\b\d{10,18}\b`)
	aadhaarPattern = regexp.MustCompile(`\b\d{4}\s?\d{4}\s?\d{4}\b`)
	separators     = regexp.MustCompile(`[\s-]`)

	namePattern = regexp.MustCompile(`(?i)(?:my name is|mera naam|i am|main|mai)\s+([a-zA-Z]+(?:\s+[a-zA-Z]+)?)`)
	orgPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:i am|main|mai|hum)\s+(?:from|se)\s+(.+?)(?:\s+(?:bol|call|speak|baat)|\.|,|$)`),
		regexp.MustCompile(`(?i)(?:calling from|from)\s+(.+?)(?:\s+(?:regarding|about|ke|ka)|\.|,|$)`),
		regexp.MustCompile(`(?i)(?:this is|ye)\s+(.+?)(?:\s+(?:helpline|customer|service|support))`),
	}
)

// Personal mail domains look like UPI handles but are not.
var mailDomains = []string{"@gmail", "@yahoo", "@hotmail", "@outlook"}

var banks = []string{
	"sbi", "state bank", "hdfc", "icici", "axis", "kotak", "pnb",
	"punjab national", "canara", "bob", "bank of baroda", "union bank",
	"indian bank", "central bank", "uco", "idbi", "yes bank", "bandhan",
	"rbl", "federal bank", "indusind", "paytm", "phonepe", "gpay",
	"google pay", "amazon pay", "bhim",
}

// Checked in order; the first category with a keyword hit wins.
var scamTypes = []struct {
	name     string
	keywords []string
}{
	{"KYC Fraud", []string{"kyc", "verify", "verification", "update kyc", "kyc update", "link aadhaar"}},
	{"Lottery/Prize", []string{"lottery", "prize", "winner", "jackpot", "lucky draw", "congrat"}},
	{"Bank Impersonation", []string{"bank manager", "bank officer", "account block", "account freeze", "suspend"}},
	{"Tech Support", []string{"computer", "virus", "microsoft", "windows", "antivirus", "remote access"}},
	{"Insurance Fraud", []string{"insurance", "policy", "premium", "maturity", "lic", "claim"}},
	{"Refund Scam", []string{"refund", "cashback", "return amount", "overpaid"}},
	{"OTP Fraud", []string{"otp", "one time password", "verification code", "pin number"}},
	{"UPI Fraud", []string{"upi", "google pay", "phonepe", "paytm", "send money", "request money"}},
}

var nameStopWords = map[string]bool{
	"calling": true, "from": true, "here": true, "sir": true, "madam": true,
	"hai": true, "hoon": true, "hu": true,
}

var orgStopWords = map[string]bool{"the": true, "your": true, "aap": true, "tum": true}

// Extract returns every fact found in text, in a stable order.
func Extract(text string) []Item {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var items []Item
	lower := strings.ToLower(text)

	for _, upi := range upiPattern.FindAllString(text, -1) {
		if isMailAddress(upi) {
			continue
		}
		items = append(items, Item{FieldUPIID, upi, 0.8})
	}

	for _, phone := range phonePattern.FindAllString(text, -1) {
		if clean := separators.ReplaceAllString(phone, ""); len(clean) >= 10 {
			items = append(items, Item{FieldPhoneNumber, clean, 0.7})
		}
	}

	for _, account := range accountPattern.FindAllString(text, -1) {
		items = append(items, Item{FieldAccountNumber, account, 0.6})
	}

	for _, aadhaar := range aadhaarPattern.FindAllString(text, -1) {
		if clean := strings.Join(strings.Fields(aadhaar), ""); len(clean) == 12 {
			items = append(items, Item{FieldAadhaarNumber, clean, 0.7})
		}
	}

	for _, bank := range banks {
		if strings.Contains(lower, bank) {
			items = append(items, Item{FieldBank, strings.ToUpper(bank), 0.7})
			break
		}
	}

	for _, scam := range scamTypes {
		if containsAny(lower, scam.keywords) {
			items = append(items, Item{FieldScamType, scam.name, 0.7})
			break
		}
	}

	if m := namePattern.FindStringSubmatch(text); m != nil {
		if name := strings.TrimSpace(m[1]); !nameStopWords[strings.ToLower(name)] {
			items = append(items, Item{FieldScammerName, name, 0.6})
		}
	}

	for _, p := range orgPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if org := strings.TrimSpace(m[1]); len(org) > 2 && !orgStopWords[strings.ToLower(org)] {
			items = append(items, Item{FieldOrganization, org, 0.6})
			break
		}
	}

	return items
}

func isMailAddress(candidate string) bool {
	for _, d := range mailDomains {
		if strings.HasSuffix(candidate, d) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
