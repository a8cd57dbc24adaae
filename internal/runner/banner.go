package runner

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/lansweep/pkg/version"
)

const banner = `
 _
| | __ _ _ __  ___ __      __ ___  ___  _ __
| |/ _' | '_ \/ __|\ \ /\ / // _ \/ _ \| '_ \
| | (_| | | | \__ \ \ V  V /|  __/  __/| |_) |
|_|\__,_|_| |_|___/  \_/\_/  \___|\___|| .__/
                                       |_|`

// showBanner is used to show the banner to the user
func showBanner() {
	if au == nil {
		return
	}
	gologger.Print().Msgf("%s %s\n\n", au.Bold(au.Cyan(banner)).String(), version.GetVersion())
}
