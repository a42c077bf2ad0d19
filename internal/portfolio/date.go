package portfolio

var monthAbbrev = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FormatDate renders a YYYY-MM value as "Jan 2020". Empty input yields an
// empty string, and anything that is not a valid year-month (including the
// literal "Present") is returned unchanged.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	if len(value) != 7 || value[4] != '-' {
		return value
	}
	for i, c := range value {
		if i == 4 {
			continue
		}
		if c < '0' || c > '9' {
			return value
		}
	}
	month := int(value[5]-'0')*10 + int(value[6]-'0')
	if month < 1 || month > 12 {
		return value
	}
	return monthAbbrev[month-1] + " " + value[:4]
}
