package output

import "github.com/muesli/termenv"

var profile = termenv.EnvColorProfile()

func colorWarn(s string) string {
	return termenv.String(s).Foreground(profile.Color("11")).String()
}

func colorTip(s string) string {
	return termenv.String(s).Foreground(profile.Color("14")).String()
}
