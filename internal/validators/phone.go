package validators

import "strings"

// IsPhoneValid accepts E.164-ish numbers: optional leading +, then 7 to 15
// digits. Guest bookings and OTP delivery both key off the phone, so a
// garbage value is rejected before it reaches the store.
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}

	digits := phone
	if strings.HasPrefix(digits, "+") {
		digits = digits[1:]
	}

	if len(digits) < 7 || len(digits) > 15 {
		return false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
