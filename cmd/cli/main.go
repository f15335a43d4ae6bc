package main

import (
	"log"

	"github.com/solana-foundation/zk-blacklist/lib"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zkblacklist",
	Short: "maintain the blacklist sparse merkle tree and its exclusion witnesses",
}

var (
	config  = lib.Config{}
	l       = lib.LoggerI(nil)
	dataDir = ""
)

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rootHashCmd)
	rootCmd.AddCommand(emptyRootCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", lib.DefaultDataDirPath(), "custom data directory location")
	// the data directory flag must be parsed before the config that lives in it is loaded
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		c, err := lib.NewConfigFromFile(dataDir)
		if err != nil {
			log.Fatal(err.Error())
		}
		config = c
		l = lib.NewLogger(lib.LoggerConfig{Level: config.GetLogLevel()}, dataDir)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
