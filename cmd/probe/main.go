package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/zhukov-alex/echoprobe/internal/app"
	"github.com/zhukov-alex/echoprobe/internal/config"
)

func main() {
	log.SetFlags(log.Llongfile | log.Ldate | log.Ltime | log.Lmicroseconds)

	var cfgFile string
	cobra.OnInitialize(config.NewConfigInit(&cfgFile))

	cmd := &cobra.Command{
		Use:          "echoprobe",
		Short:        "Send a fixed payload to localhost:6666 and verify the echo",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         app.ProbeCmd,
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "Path to an optional configuration file")

	if err := cmd.Execute(); err != nil {
		log.Fatalf("command error: %v", err)
	}
}
