package cmd

import "testing"

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "logview" {
		t.Errorf("Use = %q, want logview", rootCmd.Use)
	}
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config persistent flag")
	}
}

func TestDemoCommandRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "demo" {
			return
		}
	}
	t.Error("demo command not registered on root")
}
