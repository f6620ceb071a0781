package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
)

// bigClockFont is the figlet font used for the countdown. The doom
// font has glyphs for digits and the colon.
const bigClockFont = "doom"

// Clock formats a duration as MM:SS, rounded down to whole seconds.
// Minutes may exceed two digits for long focus sessions.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// BigClock renders the MM:SS countdown as large ASCII digits.
func BigClock(d time.Duration) string {
	fig := figure.NewFigure(Clock(d), bigClockFont, false)
	return strings.TrimRight(fig.String(), "\n")
}
