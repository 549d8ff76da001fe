package format

// PluralizeLessons повертає правильну форму слова "заняття"
func PluralizeLessons(count int) string {
	if count%10 >= 5 || count%10 == 0 || (count%100 >= 11 && count%100 <= 14) {
		return "занять"
	}
	return "заняття"
}

// PluralizeGroups повертає правильну форму слова "група"
func PluralizeGroups(count int) string {
	if count%10 == 1 && count%100 != 11 {
		return "група"
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return "групи"
	}
	return "груп"
}

// PluralizeWeeks повертає правильну форму слова "тиждень"
func PluralizeWeeks(count int) string {
	if count%10 == 1 && count%100 != 11 {
		return "тиждень"
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return "тижні"
	}
	return "тижнів"
}
