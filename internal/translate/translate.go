// Package translate formats user facing messages for the detected locale.
package translate

import (
	"os"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/message"
)

var printer = newPrinter()

func newPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		_, _ = os.Stderr.WriteString("nesgoasm: locale: " + err.Error() + "\n")
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() format string for the current locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
