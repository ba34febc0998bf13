package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog keys for every line the session prints.
const (
	msgBanner   = "banner"
	msgPrompt   = "prompt"
	msgEcho     = "echo"
	msgTooSmall = "too_small"
	msgTooBig   = "too_big"
	msgWin      = "win"
)

var english = map[string]string{
	msgBanner:   "Guess the number!",
	msgPrompt:   "Please input your guess.",
	msgEcho:     "You guessed: %s",
	msgTooSmall: "Too small!",
	msgTooBig:   "Too big!",
	msgWin:      "You win!",
}

func init() {
	for k, v := range english {
		if err := message.SetString(language.English, k, v); err != nil {
			panic(err)
		}
	}
}
