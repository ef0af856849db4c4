package command

import (
	"fmt"
	"io"

	"github.com/earthboundkid/versioninfo/v2"
)

// ShowVersion prints the build version and last commit
func (core Core) ShowVersion(w io.Writer, args []string) {
	fmt.Fprintf(w, "Version: %s -- Dernier commit: %s\n",
		versioninfo.Short(),
		versioninfo.LastCommit)
}

// ShowStats prints the runtime counters
func (core Core) ShowStats(w io.Writer, args []string) {
	if core.Metrics == nil {
		fmt.Fprintln(w, "Statistiques indisponibles")
		return
	}
	if _, err := core.Metrics.WriteTo(w); err != nil {
		core.logger().Error("writing stats", "err", err)
	}
}
