package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		printer().Error("%v", err)
		os.Exit(1)
	}
}
