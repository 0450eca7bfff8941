package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nikogura/portfolio/pkg/i18n"
	"github.com/pkg/errors"
)

// ErrMalformedDate is the cause of every error returned for input outside the YYYY, YYYY-MM and YYYY-MM-DD formats.
var ErrMalformedDate = errors.New("malformed date")

// Precision is how much of a calendar date a string carries.
type Precision int

const (
	// Year is a YYYY value.
	Year Precision = iota + 1
	// Month is a YYYY-MM value.
	Month
	// Day is a YYYY-MM-DD value.
	Day
)

// String returns the layout the precision corresponds to.
func (p Precision) String() (result string) {
	switch p {
	case Year:
		result = "YYYY"
	case Month:
		result = "YYYY-MM"
	case Day:
		result = "YYYY-MM-DD"
	default:
		result = "unknown"
	}
	return result
}

// monthNames holds the short month names per locale.  The zh-tw names already carry the 月 suffix.
//
//nolint:gochecknoglobals // Fixed locale tables
var monthNames = map[i18n.Lang][12]string{
	i18n.English:            {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	i18n.TraditionalChinese: {"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
}

//nolint:gochecknoglobals // Fixed locale tables
var presentText = map[i18n.Lang]string{
	i18n.English:            "Present",
	i18n.TraditionalChinese: "至今",
}

// table returns the locale's tables, matching the tag case-insensitively and falling back to English.
func table(lang i18n.Lang) (months [12]string, chinese bool) {
	lang = i18n.Normalize(string(lang))
	months, ok := monthNames[lang]
	if !ok {
		months = monthNames[i18n.English]
		return months, chinese
	}
	chinese = lang == i18n.TraditionalChinese
	return months, chinese
}

// Present returns the localized token for an ongoing range.
func Present(lang i18n.Lang) (text string) {
	text, ok := presentText[i18n.Normalize(string(lang))]
	if !ok {
		text = presentText[i18n.English]
	}
	return text
}

// Classify reports the precision of dateStr, or an ErrMalformedDate error.
func Classify(dateStr string) (precision Precision, err error) {
	_, _, _, precision, err = parse(dateStr)
	return precision, err
}

// FormatDate renders a YYYY or YYYY-MM value ("Aug 2023", "2023年8月").  Year-only values are returned unchanged and a day part is ignored.
func FormatDate(dateStr string, lang i18n.Lang) (formatted string, err error) {
	if dateStr == "" {
		return formatted, err
	}

	var year, month int
	var precision Precision
	year, month, _, precision, err = parse(dateStr)
	if err != nil {
		return formatted, err
	}

	if precision == Year {
		formatted = dateStr
		return formatted, err
	}

	months, chinese := table(lang)
	if chinese {
		formatted = fmt.Sprintf("%04d年%s", year, months[month-1])
		return formatted, err
	}

	formatted = fmt.Sprintf("%s %04d", months[month-1], year)
	return formatted, err
}

// FormatDateRange renders "start - end", using the localized present token when end is empty.
func FormatDateRange(start, end string, lang i18n.Lang) (formatted string, err error) {
	var from string
	from, err = FormatDate(start, lang)
	if err != nil {
		err = errors.Wrap(err, "invalid range start")
		return formatted, err
	}

	to := Present(lang)
	if end != "" {
		to, err = FormatDate(end, lang)
		if err != nil {
			err = errors.Wrap(err, "invalid range end")
			return formatted, err
		}
	}

	formatted = from + " - " + to
	return formatted, err
}

// FormatFullDate renders a YYYY-MM-DD value in the locale's long form ("August 18, 2023", "2023年8月18日").
func FormatFullDate(dateStr string, lang i18n.Lang) (formatted string, err error) {
	var t time.Time
	t, err = time.Parse(time.DateOnly, dateStr)
	if err != nil {
		err = errors.Wrapf(ErrMalformedDate, "%q is not a YYYY-MM-DD date", dateStr)
		return formatted, err
	}

	if _, chinese := table(lang); chinese {
		formatted = fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
		return formatted, err
	}

	formatted = t.Format("January 2, 2006")
	return formatted, err
}

// parse splits dateStr into its numeric parts and checks the calendar ranges.
func parse(dateStr string) (year, month, day int, precision Precision, err error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) > 3 || len(parts[0]) != 4 {
		err = errors.Wrapf(ErrMalformedDate, "%q is not YYYY, YYYY-MM or YYYY-MM-DD", dateStr)
		return year, month, day, precision, err
	}

	year, err = number(parts[0], 0, 9999)
	if err != nil {
		err = errors.Wrapf(err, "bad year in %q", dateStr)
		return year, month, day, precision, err
	}
	precision = Year

	if len(parts) > 1 {
		if len(parts[1]) != 2 {
			err = errors.Wrapf(ErrMalformedDate, "month in %q must have two digits", dateStr)
			return year, month, day, precision, err
		}
		month, err = number(parts[1], 1, 12)
		if err != nil {
			err = errors.Wrapf(err, "bad month in %q", dateStr)
			return year, month, day, precision, err
		}
		precision = Month
	}

	if len(parts) > 2 {
		if len(parts[2]) != 2 {
			err = errors.Wrapf(ErrMalformedDate, "day in %q must have two digits", dateStr)
			return year, month, day, precision, err
		}
		_, err = time.Parse(time.DateOnly, dateStr)
		if err != nil {
			err = errors.Wrapf(ErrMalformedDate, "%q is not a calendar date", dateStr)
			return year, month, day, precision, err
		}
		day, _ = strconv.Atoi(parts[2])
		precision = Day
	}

	return year, month, day, precision, err
}

func number(s string, lo, hi int) (n int, err error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			err = errors.Wrapf(ErrMalformedDate, "%q is not numeric", s)
			return n, err
		}
	}

	n, err = strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		err = errors.Wrapf(ErrMalformedDate, "%q is outside %d-%d", s, lo, hi)
		return n, err
	}
	return n, err
}
