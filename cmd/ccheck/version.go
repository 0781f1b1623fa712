package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is replaced at release time via -ldflags; otherwise the
// module build info decides what is reported.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the ccheck version and build details",
	RunE:  runVersion,
}

// buildVersion resolves the version and VCS revision to report. A
// linked-in release version wins; failing that, the main module
// version from the embedded build info is used, and the revision comes
// from the vcs.revision build setting when the binary was built from a
// checkout.
func buildVersion() (ver, rev string) {
	ver = version

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ver, ""
	}

	if ver == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		ver = info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			rev = s.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
		}
	}
	return ver, rev
}

func runVersion(cmd *cobra.Command, args []string) error {
	ver, rev := buildVersion()

	out := cmd.OutOrStdout()
	if rev != "" {
		fmt.Fprintf(out, "ccheck %s (%s)\n", ver, rev)
	} else {
		fmt.Fprintf(out, "ccheck %s\n", ver)
	}
	fmt.Fprintf(out, "built with %s for %s/%s\n",
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
