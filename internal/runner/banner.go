package runner

import (
	"github.com/projectdiscovery/gologger"

	"github.com/edgescout/edgescout/pkg/version"
)

var banner = `
            __                                  __
   ___  ____/ /___ ____  ______________  __  __/ /_
  / _ \/ __  / __ '/ _ \/ ___/ ___/ __ \/ / / / __/
 /  __/ /_/ / /_/ /  __(__  ) /__/ /_/ / /_/ / /_
 \___/\__,_/\__, /\___/____/\___/\____/\__,_/\__/
           /____/
`

// showBanner prints the tool banner and version
func showBanner() {
	gologger.Print().Msgf("%s\t%s\n\n", banner, au.BrightYellow(version.GetVersion()).String())
}
