package main

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("GUESS_TEST_KEY", "debug")
	if got := getEnv("GUESS_TEST_KEY", "warn"); got != "debug" {
		t.Errorf("getEnv set = %q, want debug", got)
	}
	t.Setenv("GUESS_TEST_KEY", "")
	if got := getEnv("GUESS_TEST_KEY", "warn"); got != "warn" {
		t.Errorf("getEnv empty = %q, want warn", got)
	}
}
