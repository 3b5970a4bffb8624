package calendar

import "strings"

// Locale holds the display names used for grid titles and headers.
type Locale struct {
	Name     string
	Months   [12]string
	Weekdays [7]string // Sunday first, matching time.Weekday
	Title    func(month string, year int) string
}

var english = Locale{
	Name: "en",
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	Weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Title:    func(month string, year int) string { return month + " " + itoa(year) },
}

var portuguese = Locale{
	Name: "pt-BR",
	Months: [12]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	},
	Weekdays: [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"},
	Title:    func(month string, year int) string { return month + " de " + itoa(year) },
}

// Locales lists the supported locales.
var Locales = []Locale{english, portuguese}

// LocaleByName returns the locale matching name (case-insensitive),
// defaulting to English.
func LocaleByName(name string) Locale {
	for _, l := range Locales {
		if strings.EqualFold(l.Name, name) {
			return l
		}
	}
	return english
}
