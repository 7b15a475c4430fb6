package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	// Version information (set during build via ldflags, or detected from build info)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func init() {
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.Main.Version != "" && info.Main.Version != "(devel)" {
				Version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if len(setting.Value) >= 7 {
						GitCommit = setting.Value[:7]
					}
				case "vcs.time":
					BuildTime = setting.Value
				}
			}
		}
	}
}

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "zhsc",
		Short: "zhsc: a Chinese-keyword smart-contract compiler",
		Long: `zhsc compiles smart contracts written in a Chinese-keyword surface
syntax into Solidity. It covers contracts, functions, events, and
constructors; expressions with full operator precedence; and the
built-in identifiers (消息发送者, 区块时间戳, ...) Solidity contracts rely on.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print stage-by-stage diagnostics")

	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newExamplesCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
